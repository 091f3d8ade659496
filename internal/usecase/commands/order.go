package commands

import (
	"context"
	"log/slog"

	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/pkg/clock"
	"bakery-orders/internal/pkg/errs"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/commands/order.go -package=commandsmock

// OrderStore is the part of orderstore.Store the commands need.
type OrderStore interface {
	Load(ctx context.Context) error
	Add(ctx context.Context, draft order.Draft) (order.Order, error)
	Import(ctx context.Context, drafts []order.Draft) ([]order.Order, error)
	Update(ctx context.Context, id string, p order.Patch) (order.Order, error)
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) error
	Revision() uint64
}

// MutationResult carries the revision the store reached after a command.
type MutationResult struct {
	Order    order.Order
	Revision uint64
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, draft order.Draft) (*MutationResult, error)
	UpdateOrder(ctx context.Context, id string, p order.Patch) (*MutationResult, error)
	DeleteOrder(ctx context.Context, id string) (uint64, error)
	RefreshOrders(ctx context.Context) (uint64, error)
	ResetOrders(ctx context.Context) (uint64, error)
	SeedOrders(ctx context.Context) (int, uint64, error)
}

type orderCommandsImpl struct {
	store      OrderStore
	clock      clock.Clock
	allowReset bool
	logger     *slog.Logger
}

func NewOrderCommands(store OrderStore, clk clock.Clock, allowReset bool, logger *slog.Logger) OrderCommands {
	return &orderCommandsImpl{
		store:      store,
		clock:      clk,
		allowReset: allowReset,
		logger:     logger,
	}
}

func (uc *orderCommandsImpl) CreateOrder(ctx context.Context, draft order.Draft) (*MutationResult, error) {
	created, err := uc.store.Add(ctx, draft)
	if err != nil {
		return nil, classify(err)
	}

	uc.logger.InfoContext(ctx, "Order created",
		slog.String("order_id", created.ID()),
		slog.String("type", created.Kind().String()),
		slog.String("date", created.Date().String()))

	return &MutationResult{Order: created, Revision: uc.store.Revision()}, nil
}

func (uc *orderCommandsImpl) UpdateOrder(ctx context.Context, id string, p order.Patch) (*MutationResult, error) {
	updated, err := uc.store.Update(ctx, id, p)
	if err != nil {
		return nil, classify(err)
	}

	uc.logger.InfoContext(ctx, "Order updated", slog.String("order_id", id))
	return &MutationResult{Order: updated, Revision: uc.store.Revision()}, nil
}

func (uc *orderCommandsImpl) DeleteOrder(ctx context.Context, id string) (uint64, error) {
	if err := uc.store.Delete(ctx, id); err != nil {
		return 0, classify(err)
	}

	uc.logger.InfoContext(ctx, "Order deleted", slog.String("order_id", id))
	return uc.store.Revision(), nil
}

func (uc *orderCommandsImpl) RefreshOrders(ctx context.Context) (uint64, error) {
	if err := uc.store.Load(ctx); err != nil {
		return 0, classify(err)
	}
	return uc.store.Revision(), nil
}

func (uc *orderCommandsImpl) ResetOrders(ctx context.Context) (uint64, error) {
	if !uc.allowReset {
		return 0, errs.ErrFeatureDisabled
	}
	if err := uc.store.Reset(ctx); err != nil {
		return 0, classify(err)
	}

	uc.logger.WarnContext(ctx, "All orders deleted")
	return uc.store.Revision(), nil
}

func (uc *orderCommandsImpl) SeedOrders(ctx context.Context) (int, uint64, error) {
	if !uc.allowReset {
		return 0, 0, errs.ErrFeatureDisabled
	}

	created, err := uc.store.Import(ctx, SampleOrders(uc.clock.Now()))
	if err != nil {
		return len(created), uc.store.Revision(), classify(err)
	}

	uc.logger.InfoContext(ctx, "Sample orders loaded", slog.Int("count", len(created)))
	return len(created), uc.store.Revision(), nil
}

// classify marks domain validation failures for the handler layer.
func classify(err error) error {
	if errs.Is(err, order.ErrInvalidOrder) {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	return err
}
