package converter

import (
	"bytes"
	"encoding/json"
	"time"

	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/pkg/errs"
	"bakery-orders/internal/pkg/money"
	"bakery-orders/internal/pkg/patch"
)

var ErrUnknownDocumentType = errs.New("unknown order document type")

// OrderDocument is the stored JSON shape of an order. Keys match the documents the
// web front-end has always written, so existing collections load unchanged.
type OrderDocument struct {
	Type         string      `json:"type"`
	CustomerName string      `json:"customerName"`
	Date         string      `json:"date"`
	Value        json.Number `json:"value"`
	Observations string      `json:"observations,omitempty"`

	Size        string `json:"size,omitempty"`
	Flavor      string `json:"flavor,omitempty"`
	Filling     string `json:"filling,omitempty"`
	Finishing   string `json:"finishing,omitempty"`
	NeedsTopper *bool  `json:"needsTopper,omitempty"`
	PickupTime  string `json:"pickupTime,omitempty"`

	SweetType string `json:"sweetType,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func OrderToDocument(o order.Order) OrderDocument {
	doc := OrderDocument{
		Type:         o.Kind().String(),
		CustomerName: o.Customer(),
		Date:         o.Date().String(),
		Value:        money.Number(o.Value()),
		Observations: o.Observations(),
	}
	if o.IsPersisted() {
		createdAt, updatedAt := o.CreatedAt(), o.UpdatedAt()
		doc.CreatedAt = &createdAt
		doc.UpdatedAt = &updatedAt
	}

	o.Accept(order.VisitorFuncs{
		Cake: func(c *order.Cake) {
			topper := c.NeedsTopper()
			doc.Size = c.Size().String()
			doc.Flavor = c.Flavor()
			doc.Filling = c.Filling()
			doc.Finishing = c.Finishing()
			doc.NeedsTopper = &topper
			doc.PickupTime = c.PickupTime().String()
		},
		Sweet: func(s *order.Sweet) {
			doc.SweetType = s.SweetType()
			doc.Quantity = s.Quantity()
			doc.Flavor = s.Flavor()
		},
		Wedding: func(w *order.Wedding) {
			doc.Quantity = w.Quantity()
			doc.Flavor = w.Flavor()
		},
	})
	return doc
}

// DocumentToOrder rebuilds a domain order. Dates in older formats are normalized on read.
func DocumentToOrder(id string, doc OrderDocument, createdAt, updatedAt time.Time) (order.Order, error) {
	kind, err := order.NewKind(doc.Type)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "document %s", id), ErrUnknownDocumentType)
	}
	date, err := caldate.Normalize(doc.Date)
	if err != nil {
		return nil, errs.Wrapf(err, "document %s date", id)
	}
	value, err := money.Parse(doc.Value)
	if err != nil {
		return nil, errs.Wrapf(err, "document %s value", id)
	}
	// older documents hold float values from the web client
	value = value.Round(money.Cents)

	draft := order.Draft{
		Kind: kind,
		Common: order.Common{
			Customer:     doc.CustomerName,
			Date:         date,
			Value:        value,
			Observations: doc.Observations,
		},
	}
	switch kind {
	case order.KindCake:
		draft.Cake = &order.CakeDetails{
			Size:        order.CakeSize(doc.Size),
			Flavor:      doc.Flavor,
			Filling:     doc.Filling,
			Finishing:   doc.Finishing,
			NeedsTopper: patch.Coalesce(doc.NeedsTopper, false),
			PickupTime:  doc.PickupTime,
		}
	case order.KindSweet:
		draft.Sweet = &order.SweetDetails{SweetType: doc.SweetType, Quantity: doc.Quantity, Flavor: doc.Flavor}
	case order.KindWedding:
		draft.Wedding = &order.WeddingDetails{Quantity: doc.Quantity, Flavor: doc.Flavor}
	}

	o, err := draft.Build()
	if err != nil {
		return nil, errs.Wrapf(err, "document %s", id)
	}
	return order.WithIdentity(o, id, createdAt, updatedAt), nil
}

// PatchToFields renders the set fields of p with document keys, ready for a jsonb merge.
func PatchToFields(p order.Patch) map[string]any {
	fields := make(map[string]any)
	patch.Set(fields, "customerName", p.Customer)
	patch.Set(fields, "observations", p.Observations)
	patch.Set(fields, "flavor", p.Flavor)
	patch.Set(fields, "filling", p.Filling)
	patch.Set(fields, "finishing", p.Finishing)
	patch.Set(fields, "needsTopper", p.NeedsTopper)
	patch.Set(fields, "pickupTime", p.PickupTime)
	patch.Set(fields, "sweetType", p.SweetType)
	patch.Set(fields, "quantity", p.Quantity)
	if p.Date != nil {
		fields["date"] = p.Date.String()
	}
	if p.Value != nil {
		fields["value"] = money.Number(*p.Value)
	}
	if p.Size != nil {
		fields["size"] = p.Size.String()
	}
	return fields
}

// AppliedFields renders the keys p touches with the values they took on in applied, so the
// stored document carries the trimmed and normalized form. A key applied left empty is
// written as "" to overwrite the previous value.
func AppliedFields(p order.Patch, applied order.Order) (map[string]any, error) {
	raw, err := json.Marshal(OrderToDocument(applied))
	if err != nil {
		return nil, errs.Wrap(err, "encode order document")
	}
	var doc map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, errs.Wrap(err, "decode order document")
	}

	fields := PatchToFields(p)
	for key := range fields {
		if v, ok := doc[key]; ok {
			fields[key] = v
		} else {
			fields[key] = ""
		}
	}
	return fields, nil
}
