package request

import (
	"encoding/json"
	"strings"

	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/pkg/money"
)

// CreateOrderRequest is the tagged order body; `type` selects which detail fields apply.
type CreateOrderRequest struct {
	Type         string      `json:"type" binding:"required,oneof=cake sweet wedding"`
	CustomerName string      `json:"customerName" binding:"required"`
	Date         string      `json:"date" binding:"required"`
	// Value has at most two decimal places; more is rejected with 422, never rounded.
	Value        json.Number `json:"value" binding:"required" swaggertype:"number" example:"65.50"`
	Observations string      `json:"observations"`

	Size        string `json:"size"`
	Flavor      string `json:"flavor"`
	Filling     string `json:"filling"`
	Finishing   string `json:"finishing"`
	NeedsTopper bool   `json:"needsTopper"`
	PickupTime  string `json:"pickupTime"`

	SweetType string `json:"sweetType"`
	Quantity  int    `json:"quantity"`
}

func (r *CreateOrderRequest) ToDraft() (order.Draft, error) {
	kind, err := order.NewKind(r.Type)
	if err != nil {
		return order.Draft{}, err
	}
	date, err := caldate.Normalize(r.Date)
	if err != nil {
		return order.Draft{}, err
	}
	value, err := money.Parse(r.Value)
	if err != nil {
		return order.Draft{}, err
	}

	d := order.Draft{
		Kind: kind,
		Common: order.Common{
			Customer:     r.CustomerName,
			Date:         date,
			Value:        value,
			Observations: r.Observations,
		},
	}
	switch kind {
	case order.KindCake:
		d.Cake = &order.CakeDetails{
			Size:        order.CakeSize(r.Size),
			Flavor:      r.Flavor,
			Filling:     r.Filling,
			Finishing:   r.Finishing,
			NeedsTopper: r.NeedsTopper,
			PickupTime:  strings.TrimSpace(r.PickupTime),
		}
	case order.KindSweet:
		d.Sweet = &order.SweetDetails{SweetType: r.SweetType, Quantity: r.Quantity, Flavor: r.Flavor}
	case order.KindWedding:
		d.Wedding = &order.WeddingDetails{Quantity: r.Quantity, Flavor: r.Flavor}
	}
	return d, nil
}

// UpdateOrderRequest carries only the fields to change. Type is accepted so clients may echo
// the whole order back, but it must match the stored order.
type UpdateOrderRequest struct {
	Type         *string      `json:"type"`
	CustomerName *string      `json:"customerName"`
	Date         *string      `json:"date"`
	// Value has at most two decimal places; more is rejected with 422, never rounded.
	Value        *json.Number `json:"value" swaggertype:"number" example:"65.50"`
	Observations *string      `json:"observations"`

	Size        *string `json:"size"`
	Flavor      *string `json:"flavor"`
	Filling     *string `json:"filling"`
	Finishing   *string `json:"finishing"`
	NeedsTopper *bool   `json:"needsTopper"`
	PickupTime  *string `json:"pickupTime"`

	SweetType *string `json:"sweetType"`
	Quantity  *int    `json:"quantity"`
}

func (r *UpdateOrderRequest) ToPatch() (order.Patch, error) {
	p := order.Patch{
		Customer:     r.CustomerName,
		Observations: r.Observations,
		Flavor:       r.Flavor,
		Filling:      r.Filling,
		Finishing:    r.Finishing,
		NeedsTopper:  r.NeedsTopper,
		PickupTime:   r.PickupTime,
		SweetType:    r.SweetType,
		Quantity:     r.Quantity,
	}
	if r.Date != nil {
		date, err := caldate.Normalize(*r.Date)
		if err != nil {
			return order.Patch{}, err
		}
		p.Date = &date
	}
	if r.Value != nil {
		value, err := money.Parse(*r.Value)
		if err != nil {
			return order.Patch{}, err
		}
		p.Value = &value
	}
	if r.Size != nil {
		size := order.CakeSize(*r.Size)
		p.Size = &size
	}
	return p, nil
}

// RequestedKind reports the kind named in the body, if any.
func (r *UpdateOrderRequest) RequestedKind() (order.Kind, bool, error) {
	if r.Type == nil {
		return "", false, nil
	}
	kind, err := order.NewKind(*r.Type)
	return kind, true, err
}
