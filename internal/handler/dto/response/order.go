package response

import (
	"encoding/json"
	"time"

	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/pkg/money"
)

type OrderResponse struct {
	ID           string      `json:"id"`
	Type         string      `json:"type"`
	CustomerName string      `json:"customerName"`
	Date         string      `json:"date"`
	Value        json.Number `json:"value" swaggertype:"number"`
	Observations string      `json:"observations,omitempty"`

	Size        string `json:"size,omitempty"`
	Flavor      string `json:"flavor,omitempty"`
	Filling     string `json:"filling,omitempty"`
	Finishing   string `json:"finishing,omitempty"`
	NeedsTopper *bool  `json:"needsTopper,omitempty"`
	PickupTime  string `json:"pickupTime,omitempty"`

	SweetType string `json:"sweetType,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type OrderListResponse struct {
	Orders   []*OrderResponse `json:"orders"`
	Revision uint64           `json:"revision"`
}

func FromOrder(o order.Order) *OrderResponse {
	res := &OrderResponse{
		ID:           o.ID(),
		Type:         o.Kind().String(),
		CustomerName: o.Customer(),
		Date:         o.Date().String(),
		Value:        money.Number(o.Value()),
		Observations: o.Observations(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}

	o.Accept(order.VisitorFuncs{
		Cake: func(c *order.Cake) {
			topper := c.NeedsTopper()
			res.Size = c.Size().String()
			res.Flavor = c.Flavor()
			res.Filling = c.Filling()
			res.Finishing = c.Finishing()
			res.NeedsTopper = &topper
			res.PickupTime = c.PickupTime().String()
		},
		Sweet: func(s *order.Sweet) {
			res.SweetType = s.SweetType()
			res.Quantity = s.Quantity()
			res.Flavor = s.Flavor()
		},
		Wedding: func(w *order.Wedding) {
			res.Quantity = w.Quantity()
			res.Flavor = w.Flavor()
		},
	})
	return res
}

func FromOrderList(orders []order.Order, revision uint64) *OrderListResponse {
	res := &OrderListResponse{
		Orders:   make([]*OrderResponse, len(orders)),
		Revision: revision,
	}
	for i, o := range orders {
		res.Orders[i] = FromOrder(o)
	}
	return res
}
