package shared

import (
	"context"

	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/pkg/errs"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

// ErrDocumentNotFound is marked on adapter errors for ids absent from persistence.
var ErrDocumentNotFound = errs.New("document not found")

// OrderDocumentStore is the remote order collection keyed by id.
type OrderDocumentStore interface {
	// Insert assigns a fresh id plus createdAt/updatedAt and returns the stored order.
	Insert(ctx context.Context, o order.Order) (order.Order, error)
	// Update merges the set fields of p into the stored document and returns the result.
	Update(ctx context.Context, id string, p order.Patch) (order.Order, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]order.Order, error)
	DeleteAll(ctx context.Context) error
}

type ChangeOp string

const (
	OpAdded   ChangeOp = "added"
	OpUpdated ChangeOp = "updated"
	OpDeleted ChangeOp = "deleted"
	OpReset   ChangeOp = "reset"
	OpSeeded  ChangeOp = "seeded"
)

// ChangeEvent announces a committed mutation to other service instances.
type ChangeEvent struct {
	Origin   string   `json:"origin"`
	Revision uint64   `json:"revision"`
	Op       ChangeOp `json:"op"`
	OrderID  string   `json:"orderId,omitempty"`
}

type ChangeNotifier interface {
	Publish(ctx context.Context, ev ChangeEvent) error
	// Subscribe delivers events until ctx is done; the channel is then closed.
	Subscribe(ctx context.Context) (<-chan ChangeEvent, error)
	Close() error
}
