package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxRunner runs fn inside a transaction, retrying serialization failures.
type TxRunner interface {
	Within(ctx context.Context, fn func(ctx context.Context, db DBTX) error) error
}

type OrderRow struct {
	ID        pgtype.UUID
	Kind      string
	Doc       []byte
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type InsertOrderParams struct {
	ID        pgtype.UUID
	Kind      string
	Doc       []byte
	CreatedAt pgtype.Timestamptz
}

type MergeOrderParams struct {
	ID        pgtype.UUID
	Fields    []byte
	UpdatedAt pgtype.Timestamptz
}

type Queries struct{}

func NewQueries() *Queries {
	return &Queries{}
}

const insertOrder = `
INSERT INTO orders (id, kind, doc, created_at, updated_at)
VALUES ($1, $2, $3::jsonb, $4, $4)
`

func (q *Queries) InsertOrder(ctx context.Context, db DBTX, arg InsertOrderParams) error {
	_, err := db.Exec(ctx, insertOrder, arg.ID, arg.Kind, string(arg.Doc), arg.CreatedAt)
	return err
}

const getOrderForUpdate = `
SELECT id, kind, doc, created_at, updated_at FROM orders WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetOrderForUpdate(ctx context.Context, db DBTX, id pgtype.UUID) (OrderRow, error) {
	var row OrderRow
	err := db.QueryRow(ctx, getOrderForUpdate, id).
		Scan(&row.ID, &row.Kind, &row.Doc, &row.CreatedAt, &row.UpdatedAt)
	return row, err
}

const mergeOrder = `
UPDATE orders SET doc = doc || $2::jsonb, updated_at = $3
WHERE id = $1
RETURNING id, kind, doc, created_at, updated_at
`

func (q *Queries) MergeOrder(ctx context.Context, db DBTX, arg MergeOrderParams) (OrderRow, error) {
	var row OrderRow
	err := db.QueryRow(ctx, mergeOrder, arg.ID, string(arg.Fields), arg.UpdatedAt).
		Scan(&row.ID, &row.Kind, &row.Doc, &row.CreatedAt, &row.UpdatedAt)
	return row, err
}

const deleteOrder = `DELETE FROM orders WHERE id = $1`

func (q *Queries) DeleteOrder(ctx context.Context, db DBTX, id pgtype.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteOrder, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listOrders = `
SELECT id, kind, doc, created_at, updated_at FROM orders ORDER BY created_at, id
`

func (q *Queries) ListOrders(ctx context.Context, db DBTX) ([]OrderRow, error) {
	rows, err := db.Query(ctx, listOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderRow
	for rows.Next() {
		var row OrderRow
		if err := rows.Scan(&row.ID, &row.Kind, &row.Doc, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, row)
	}
	return items, rows.Err()
}

const deleteAllOrders = `DELETE FROM orders`

func (q *Queries) DeleteAllOrders(ctx context.Context, db DBTX) error {
	_, err := db.Exec(ctx, deleteAllOrders)
	return err
}
