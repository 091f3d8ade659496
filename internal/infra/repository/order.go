package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/infra"
	"bakery-orders/internal/infra/converter"
	"bakery-orders/internal/pkg/clock"
	"bakery-orders/internal/pkg/pgconv"
	"bakery-orders/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/repository/order.go -package=repositorymock

const pgErrCodeUniqueViolation = "23505"

type OrderQueries interface {
	InsertOrder(ctx context.Context, db DBTX, arg InsertOrderParams) error
	GetOrderForUpdate(ctx context.Context, db DBTX, id pgtype.UUID) (OrderRow, error)
	MergeOrder(ctx context.Context, db DBTX, arg MergeOrderParams) (OrderRow, error)
	DeleteOrder(ctx context.Context, db DBTX, id pgtype.UUID) (int64, error)
	ListOrders(ctx context.Context, db DBTX) ([]OrderRow, error)
	DeleteAllOrders(ctx context.Context, db DBTX) error
}

// OrderRepository keeps one jsonb document per order in the orders table.
type OrderRepository struct {
	queries OrderQueries
	db      DBTX
	tx      TxRunner
	clock   clock.Clock
	logger  *slog.Logger
}

var _ shared.OrderDocumentStore = (*OrderRepository)(nil)

func NewOrderRepository(queries OrderQueries, db DBTX, tx TxRunner, clk clock.Clock, logger *slog.Logger) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
		tx:      tx,
		clock:   clk,
		logger:  logger,
	}
}

func (r *OrderRepository) Insert(ctx context.Context, o order.Order) (order.Order, error) {
	now := r.clock.Now()
	stored := order.WithIdentity(o, uuid.NewString(), now, now)

	doc, err := json.Marshal(converter.OrderToDocument(stored))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindInvalidData, "encode order", err)
	}

	id, _ := pgconv.UUIDFromString(stored.ID())
	err = r.queries.InsertOrder(ctx, r.db, InsertOrderParams{
		ID:        id,
		Kind:      stored.Kind().String(),
		Doc:       doc,
		CreatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, r.wrap(err, "failed to insert order")
	}
	return stored, nil
}

// Update merges the patch into the stored document. The current document is locked and
// re-validated first so a patch can never leave an invalid order behind, and the merged
// keys carry the values of the validated order rather than the raw patch.
func (r *OrderRepository) Update(ctx context.Context, id string, p order.Patch) (order.Order, error) {
	pgID, err := pgconv.UUIDFromString(id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "order "+id, nil)
	}

	var updated order.Order
	err = r.tx.Within(ctx, func(ctx context.Context, db DBTX) error {
		row, err := r.queries.GetOrderForUpdate(ctx, db, pgID)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return infra.WrapRepoErr(r.logger, infra.KindNotFound, "order "+id, nil)
			}
			return r.wrap(err, "failed to load order for update")
		}
		current, err := r.decode(row)
		if err != nil {
			return err
		}
		applied, err := p.Apply(current)
		if err != nil {
			return infra.WrapRepoErr(r.logger, infra.KindInvalidData, "merge order "+id, err)
		}

		now := r.clock.Now()
		fields, err := converter.AppliedFields(p, applied)
		if err != nil {
			return infra.WrapRepoErr(r.logger, infra.KindInvalidData, "encode patch", err)
		}
		fields["updatedAt"] = now
		raw, err := json.Marshal(fields)
		if err != nil {
			return infra.WrapRepoErr(r.logger, infra.KindInvalidData, "encode patch", err)
		}

		merged, err := r.queries.MergeOrder(ctx, db, MergeOrderParams{
			ID:        pgID,
			Fields:    raw,
			UpdatedAt: pgconv.TimeToPgtype(now),
		})
		if err != nil {
			return r.wrap(err, "failed to update order")
		}
		updated, err = r.decode(merged)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	pgID, err := pgconv.UUIDFromString(id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "order "+id, nil)
	}

	affected, err := r.queries.DeleteOrder(ctx, r.db, pgID)
	if err != nil {
		return r.wrap(err, "failed to delete order")
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "order "+id, nil)
	}
	return nil
}

// List returns every readable document. Documents that no longer decode are logged and skipped.
func (r *OrderRepository) List(ctx context.Context) ([]order.Order, error) {
	rows, err := r.queries.ListOrders(ctx, r.db)
	if err != nil {
		return nil, r.wrap(err, "failed to list orders")
	}

	orders := make([]order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := r.decode(row)
		if err != nil {
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderRepository) DeleteAll(ctx context.Context) error {
	return r.tx.Within(ctx, func(ctx context.Context, db DBTX) error {
		if err := r.queries.DeleteAllOrders(ctx, db); err != nil {
			return r.wrap(err, "failed to delete all orders")
		}
		return nil
	})
}

func (r *OrderRepository) decode(row OrderRow) (order.Order, error) {
	id := pgconv.UUIDFromPgtype(row.ID)

	var doc converter.OrderDocument
	if err := json.Unmarshal(row.Doc, &doc); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindInvalidData, "decode order "+id, err)
	}
	// the kind column is authoritative for documents written without a type key
	if doc.Type == "" {
		doc.Type = row.Kind
	}

	o, err := converter.DocumentToOrder(id, doc, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindInvalidData, "decode order "+id, err)
	}
	return o, nil
}

func (r *OrderRepository) wrap(err error, msg string) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return infra.WrapRepoErr(r.logger, infra.KindTimeout, msg, err)
	case errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation:
		return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, msg, err)
	default:
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
	}
}
