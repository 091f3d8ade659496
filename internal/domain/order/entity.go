package order

import (
	"strings"
	"time"

	"bakery-orders/internal/domain/caldate"

	"github.com/shopspring/decimal"
)

// Order is one customer request. It is implemented by *Cake, *Sweet and *Wedding only.
type Order interface {
	ID() string
	Kind() Kind
	Customer() string
	Date() caldate.Date
	Value() decimal.Decimal
	Observations() string
	Flavor() string
	CreatedAt() time.Time
	UpdatedAt() time.Time
	IsPersisted() bool
	Common() Common

	Accept(v Visitor)

	meta() *base
	clone() Order
	applyPatch(p Patch) (Order, error)
}

type base struct {
	id        string
	common    Common
	createdAt time.Time
	updatedAt time.Time
}

func (b *base) ID() string             { return b.id }
func (b *base) Customer() string       { return b.common.Customer }
func (b *base) Date() caldate.Date     { return b.common.Date }
func (b *base) Value() decimal.Decimal { return b.common.Value }
func (b *base) Observations() string   { return b.common.Observations }
func (b *base) CreatedAt() time.Time   { return b.createdAt }
func (b *base) UpdatedAt() time.Time   { return b.updatedAt }
func (b *base) IsPersisted() bool      { return b.id != "" }
func (b *base) Common() Common         { return b.common }
func (b *base) meta() *base            { return b }

// WithIdentity returns a copy of o carrying the id and timestamps assigned by persistence.
func WithIdentity(o Order, id string, createdAt, updatedAt time.Time) Order {
	cp := o.clone()
	m := cp.meta()
	m.id = id
	m.createdAt = createdAt
	m.updatedAt = updatedAt
	return cp
}

// Touch returns a copy of o with a new update timestamp.
func Touch(o Order, updatedAt time.Time) Order {
	cp := o.clone()
	cp.meta().updatedAt = updatedAt
	return cp
}

type CakeDetails struct {
	Size        CakeSize
	Flavor      string
	Filling     string
	Finishing   string
	NeedsTopper bool
	PickupTime  string
}

type Cake struct {
	base
	size        CakeSize
	flavor      string
	filling     string
	finishing   string
	needsTopper bool
	pickupTime  PickupTime
}

func NewCake(c Common, d CakeDetails) (*Cake, error) {
	common, err := c.normalized()
	if err != nil {
		return nil, err
	}
	if !d.Size.IsValid() {
		return nil, invalid(ErrInvalidCakeSize)
	}
	flavor := strings.TrimSpace(d.Flavor)
	if flavor == "" {
		return nil, invalid(ErrEmptyFlavor)
	}
	pickup, err := NewPickupTime(d.PickupTime)
	if err != nil {
		return nil, err
	}

	return &Cake{
		base:        base{common: common},
		size:        d.Size,
		flavor:      flavor,
		filling:     strings.TrimSpace(d.Filling),
		finishing:   strings.TrimSpace(d.Finishing),
		needsTopper: d.NeedsTopper,
		pickupTime:  pickup,
	}, nil
}

func (c *Cake) Kind() Kind             { return KindCake }
func (c *Cake) Size() CakeSize         { return c.size }
func (c *Cake) Flavor() string         { return c.flavor }
func (c *Cake) Filling() string        { return c.filling }
func (c *Cake) Finishing() string      { return c.finishing }
func (c *Cake) NeedsTopper() bool      { return c.needsTopper }
func (c *Cake) PickupTime() PickupTime { return c.pickupTime }
func (c *Cake) Accept(v Visitor)       { v.VisitCake(c) }

func (c *Cake) Details() CakeDetails {
	return CakeDetails{
		Size:        c.size,
		Flavor:      c.flavor,
		Filling:     c.filling,
		Finishing:   c.finishing,
		NeedsTopper: c.needsTopper,
		PickupTime:  c.pickupTime.String(),
	}
}

func (c *Cake) clone() Order {
	cp := *c
	return &cp
}

type SweetDetails struct {
	SweetType string
	Quantity  int
	Flavor    string
}

type Sweet struct {
	base
	sweetType string
	quantity  int
	flavor    string
}

func NewSweet(c Common, d SweetDetails) (*Sweet, error) {
	common, err := c.normalized()
	if err != nil {
		return nil, err
	}
	sweetType := strings.TrimSpace(d.SweetType)
	if sweetType == "" {
		return nil, invalid(ErrEmptySweetType)
	}
	if err := validateQuantity(d.Quantity); err != nil {
		return nil, err
	}

	return &Sweet{
		base:      base{common: common},
		sweetType: sweetType,
		quantity:  d.Quantity,
		flavor:    strings.TrimSpace(d.Flavor),
	}, nil
}

func (s *Sweet) Kind() Kind        { return KindSweet }
func (s *Sweet) SweetType() string { return s.sweetType }
func (s *Sweet) Quantity() int     { return s.quantity }
func (s *Sweet) Flavor() string    { return s.flavor }
func (s *Sweet) Accept(v Visitor)  { v.VisitSweet(s) }

func (s *Sweet) Details() SweetDetails {
	return SweetDetails{SweetType: s.sweetType, Quantity: s.quantity, Flavor: s.flavor}
}

func (s *Sweet) clone() Order {
	cp := *s
	return &cp
}

type WeddingDetails struct {
	Quantity int
	Flavor   string
}

// Wedding is an order of wedding favors.
type Wedding struct {
	base
	quantity int
	flavor   string
}

func NewWedding(c Common, d WeddingDetails) (*Wedding, error) {
	common, err := c.normalized()
	if err != nil {
		return nil, err
	}
	if err := validateQuantity(d.Quantity); err != nil {
		return nil, err
	}
	flavor := strings.TrimSpace(d.Flavor)
	if flavor == "" {
		return nil, invalid(ErrEmptyFlavor)
	}

	return &Wedding{
		base:     base{common: common},
		quantity: d.Quantity,
		flavor:   flavor,
	}, nil
}

func (w *Wedding) Kind() Kind       { return KindWedding }
func (w *Wedding) Quantity() int    { return w.quantity }
func (w *Wedding) Flavor() string   { return w.flavor }
func (w *Wedding) Accept(v Visitor) { v.VisitWedding(w) }

func (w *Wedding) Details() WeddingDetails {
	return WeddingDetails{Quantity: w.quantity, Flavor: w.flavor}
}

func (w *Wedding) clone() Order {
	cp := *w
	return &cp
}

// Draft is the input of an add: an order type, its common fields and the payload of that type.
type Draft struct {
	Kind Kind
	Common
	Cake    *CakeDetails
	Sweet   *SweetDetails
	Wedding *WeddingDetails
}

// Build validates the draft and returns an unpersisted Order.
func (d Draft) Build() (Order, error) {
	switch d.Kind {
	case KindCake:
		if d.Cake == nil || d.Sweet != nil || d.Wedding != nil {
			return nil, invalid(ErrMissingDetails)
		}
		return asOrder(NewCake(d.Common, *d.Cake))
	case KindSweet:
		if d.Sweet == nil || d.Cake != nil || d.Wedding != nil {
			return nil, invalid(ErrMissingDetails)
		}
		return asOrder(NewSweet(d.Common, *d.Sweet))
	case KindWedding:
		if d.Wedding == nil || d.Cake != nil || d.Sweet != nil {
			return nil, invalid(ErrMissingDetails)
		}
		return asOrder(NewWedding(d.Common, *d.Wedding))
	default:
		return nil, invalid(ErrInvalidKind)
	}
}

// asOrder keeps a failed constructor from leaking a typed nil into the interface.
func asOrder[T Order](o T, err error) (Order, error) {
	if err != nil {
		return nil, err
	}
	return o, nil
}
