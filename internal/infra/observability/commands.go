package observability

import (
	"context"

	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/usecase/commands"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracedOrderCommands records one span per order command.
type tracedOrderCommands struct {
	next   commands.OrderCommands
	tracer trace.Tracer
}

func TraceOrderCommands(next commands.OrderCommands, provider trace.TracerProvider) commands.OrderCommands {
	return &tracedOrderCommands{
		next:   next,
		tracer: provider.Tracer(instrumentationName),
	}
}

func (t *tracedOrderCommands) CreateOrder(ctx context.Context, draft order.Draft) (*commands.MutationResult, error) {
	ctx, span := t.tracer.Start(ctx, "orders.create", trace.WithAttributes(
		attribute.String("order.type", draft.Kind.String()),
	))
	defer span.End()

	res, err := t.next.CreateOrder(ctx, draft)
	if err == nil {
		span.SetAttributes(attribute.String("order.id", res.Order.ID()), revisionAttr(res.Revision))
	}
	return res, record(span, err)
}

func (t *tracedOrderCommands) UpdateOrder(ctx context.Context, id string, p order.Patch) (*commands.MutationResult, error) {
	ctx, span := t.tracer.Start(ctx, "orders.update", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	res, err := t.next.UpdateOrder(ctx, id, p)
	if err == nil {
		span.SetAttributes(revisionAttr(res.Revision))
	}
	return res, record(span, err)
}

func (t *tracedOrderCommands) DeleteOrder(ctx context.Context, id string) (uint64, error) {
	ctx, span := t.tracer.Start(ctx, "orders.delete", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	rev, err := t.next.DeleteOrder(ctx, id)
	span.SetAttributes(revisionAttr(rev))
	return rev, record(span, err)
}

func (t *tracedOrderCommands) RefreshOrders(ctx context.Context) (uint64, error) {
	ctx, span := t.tracer.Start(ctx, "orders.refresh")
	defer span.End()

	rev, err := t.next.RefreshOrders(ctx)
	span.SetAttributes(revisionAttr(rev))
	return rev, record(span, err)
}

func (t *tracedOrderCommands) ResetOrders(ctx context.Context) (uint64, error) {
	ctx, span := t.tracer.Start(ctx, "orders.reset")
	defer span.End()

	rev, err := t.next.ResetOrders(ctx)
	span.SetAttributes(revisionAttr(rev))
	return rev, record(span, err)
}

func (t *tracedOrderCommands) SeedOrders(ctx context.Context) (int, uint64, error) {
	ctx, span := t.tracer.Start(ctx, "orders.seed")
	defer span.End()

	n, rev, err := t.next.SeedOrders(ctx)
	span.SetAttributes(attribute.Int("orders.count", n), revisionAttr(rev))
	return n, rev, record(span, err)
}

func revisionAttr(rev uint64) attribute.KeyValue {
	// #nosec G115 -- revisions stay far below MaxInt64
	return attribute.Int64("orders.revision", int64(rev))
}

func record(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
