//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	ID           string
	Kind         order.Kind
	Customer     string
	Date         string
	Value        string
	Observations string
	Flavor       string

	Size        string
	Filling     string
	Finishing   string
	NeedsTopper bool
	PickupTime  string

	SweetType string
	Quantity  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCakeBuilder() *OrderBuilder {
	now := time.Now()
	return &OrderBuilder{
		ID:          uuid.NewString(),
		Kind:        order.KindCake,
		Customer:    "Festa da Maria",
		Date:        "2025-06-05",
		Value:       "65.00",
		Flavor:      "Morango",
		Size:        "M",
		Filling:     "Creme de morango",
		Finishing:   "Chantilly com morangos",
		NeedsTopper: false,
		PickupTime:  "18:00",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func NewSweetBuilder() *OrderBuilder {
	now := time.Now()
	return &OrderBuilder{
		ID:        uuid.NewString(),
		Kind:      order.KindSweet,
		Customer:  "Aniversário João",
		Date:      "2025-06-05",
		Value:     "18.00",
		SweetType: "Beijinho",
		Quantity:  30,
		Flavor:    "Coco",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewWeddingBuilder() *OrderBuilder {
	now := time.Now()
	return &OrderBuilder{
		ID:        uuid.NewString(),
		Kind:      order.KindWedding,
		Customer:  "Casamento Ana & Pedro",
		Date:      "2025-06-20",
		Value:     "120.00",
		Quantity:  150,
		Flavor:    "Brigadeiro",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithDate(date string) *OrderBuilder {
	b.Date = date
	return b
}

func (b *OrderBuilder) WithValue(value string) *OrderBuilder {
	b.Value = value
	return b
}

func (b *OrderBuilder) WithQuantity(q int) *OrderBuilder {
	b.Quantity = q
	return b
}

// Unpersisted drops the identity so the result behaves like a fresh draft.
func (b *OrderBuilder) Unpersisted() *OrderBuilder {
	b.ID = ""
	return b
}

// Build methods
func (b *OrderBuilder) BuildDraft() order.Draft {
	d := order.Draft{
		Kind: b.Kind,
		Common: order.Common{
			Customer:     b.Customer,
			Date:         caldate.Date(b.Date),
			Value:        decimal.RequireFromString(b.Value),
			Observations: b.Observations,
		},
	}
	switch b.Kind {
	case order.KindCake:
		d.Cake = &order.CakeDetails{
			Size:        order.CakeSize(b.Size),
			Flavor:      b.Flavor,
			Filling:     b.Filling,
			Finishing:   b.Finishing,
			NeedsTopper: b.NeedsTopper,
			PickupTime:  b.PickupTime,
		}
	case order.KindSweet:
		d.Sweet = &order.SweetDetails{SweetType: b.SweetType, Quantity: b.Quantity, Flavor: b.Flavor}
	case order.KindWedding:
		d.Wedding = &order.WeddingDetails{Quantity: b.Quantity, Flavor: b.Flavor}
	}
	return d
}

func (b *OrderBuilder) BuildDomain() (order.Order, error) {
	o, err := b.BuildDraft().Build()
	if err != nil {
		return nil, err
	}
	if b.ID == "" {
		return o, nil
	}
	return order.WithIdentity(o, b.ID, b.CreatedAt, b.UpdatedAt), nil
}

// MustBuildDomain panics on invalid builder state; for fixtures only.
func (b *OrderBuilder) MustBuildDomain() order.Order {
	o, err := b.BuildDomain()
	if err != nil {
		panic(fmt.Sprintf("builder produced invalid order: %v", err))
	}
	return o
}
