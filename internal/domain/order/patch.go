package order

import (
	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

// Patch is a partial update. Nil fields are left untouched; id and type never change.
type Patch struct {
	Customer     *string
	Date         *caldate.Date
	Value        *decimal.Decimal
	Observations *string
	Flavor       *string

	// cake only
	Size        *CakeSize
	Filling     *string
	Finishing   *string
	NeedsTopper *bool
	PickupTime  *string

	// sweet only
	SweetType *string

	// sweet and wedding
	Quantity *int
}

func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// Apply merges p into o and returns the updated copy. o itself is not modified.
func (p Patch) Apply(o Order) (Order, error) {
	updated, err := o.applyPatch(p)
	if err != nil {
		return nil, err
	}
	m := o.meta()
	return WithIdentity(updated, m.id, m.createdAt, m.updatedAt), nil
}

func (p Patch) mergeCommon(c Common) Common {
	return Common{
		Customer:     patch.Coalesce(p.Customer, c.Customer),
		Date:         patch.Coalesce(p.Date, c.Date),
		Value:        patch.Coalesce(p.Value, c.Value),
		Observations: patch.Coalesce(p.Observations, c.Observations),
	}
}

func (p Patch) hasCakeFields() bool {
	return p.Size != nil || p.Filling != nil || p.Finishing != nil || p.NeedsTopper != nil || p.PickupTime != nil
}

func (c *Cake) applyPatch(p Patch) (Order, error) {
	if p.SweetType != nil || p.Quantity != nil {
		return nil, invalid(ErrFieldNotApplicable)
	}
	d := c.Details()
	return asOrder(NewCake(p.mergeCommon(c.common), CakeDetails{
		Size:        patch.Coalesce(p.Size, d.Size),
		Flavor:      patch.Coalesce(p.Flavor, d.Flavor),
		Filling:     patch.Coalesce(p.Filling, d.Filling),
		Finishing:   patch.Coalesce(p.Finishing, d.Finishing),
		NeedsTopper: patch.Coalesce(p.NeedsTopper, d.NeedsTopper),
		PickupTime:  patch.Coalesce(p.PickupTime, d.PickupTime),
	}))
}

func (s *Sweet) applyPatch(p Patch) (Order, error) {
	if p.hasCakeFields() {
		return nil, invalid(ErrFieldNotApplicable)
	}
	return asOrder(NewSweet(p.mergeCommon(s.common), SweetDetails{
		SweetType: patch.Coalesce(p.SweetType, s.sweetType),
		Quantity:  patch.Coalesce(p.Quantity, s.quantity),
		Flavor:    patch.Coalesce(p.Flavor, s.flavor),
	}))
}

func (w *Wedding) applyPatch(p Patch) (Order, error) {
	if p.hasCakeFields() || p.SweetType != nil {
		return nil, invalid(ErrFieldNotApplicable)
	}
	return asOrder(NewWedding(p.mergeCommon(w.common), WeddingDetails{
		Quantity: patch.Coalesce(p.Quantity, w.quantity),
		Flavor:   patch.Coalesce(p.Flavor, w.flavor),
	}))
}
