//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"bakery-orders/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// InsertOrderDocument writes a raw document, bypassing the application, so tests can
// seed legacy or malformed rows.
func InsertOrderDocument(t *testing.T, db repository.DBTX, kind string, doc map[string]any) uuid.UUID {
	t.Helper()

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	id := uuid.New()
	_, err = db.Exec(context.Background(),
		"INSERT INTO orders (id, kind, doc, created_at, updated_at) VALUES ($1, $2, $3::jsonb, now(), now())",
		id, kind, string(raw))
	require.NoError(t, err)
	return id
}

func CountOrders(t *testing.T, db repository.DBTX) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM orders").Scan(&n)
	require.NoError(t, err)
	return n
}

// OrderDocument returns the stored document of one order.
func OrderDocument(t *testing.T, db repository.DBTX, id string) map[string]any {
	t.Helper()

	var raw []byte
	err := db.QueryRow(context.Background(), "SELECT doc FROM orders WHERE id = $1", id).Scan(&raw)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

// ResetDB empties the order table.
func ResetDB(db repository.DBTX) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, "TRUNCATE orders")
	return err
}
