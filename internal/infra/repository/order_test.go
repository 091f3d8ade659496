//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/infra"
	"bakery-orders/internal/infra/converter"
	"bakery-orders/internal/infra/repository"
	"bakery-orders/internal/pkg/clock"
	"bakery-orders/internal/pkg/patch"
	"bakery-orders/internal/pkg/pgconv"
	"bakery-orders/internal/usecase/shared"
	"bakery-orders/tests/common/builder"
	repositorymock "bakery-orders/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// inlineTx runs the callback without a real transaction.
type inlineTx struct {
	calls int
}

func (t *inlineTx) Within(ctx context.Context, fn func(ctx context.Context, db repository.DBTX) error) error {
	t.calls++
	return fn(ctx, nil)
}

var testNow = time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*repository.OrderRepository, *repositorymock.MockOrderQueries, *inlineTx) {
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockOrderQueries(ctrl)
	tx := &inlineTx{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return repository.NewOrderRepository(q, nil, tx, clock.NewMockClock(testNow), logger), q, tx
}

func rowFor(t *testing.T, o order.Order) repository.OrderRow {
	t.Helper()
	doc, err := json.Marshal(converter.OrderToDocument(o))
	require.NoError(t, err)
	id, err := pgconv.UUIDFromString(o.ID())
	require.NoError(t, err)
	return repository.OrderRow{
		ID:        id,
		Kind:      o.Kind().String(),
		Doc:       doc,
		CreatedAt: pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func TestOrderRepository_Insert(t *testing.T) {
	ctx := context.Background()
	draft := builder.NewCakeBuilder().Unpersisted().MustBuildDomain()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: order inserted"},
		{
			name:       "error: database error occurs",
			returnErr:  errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "error: duplicate id",
			returnErr:  &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: deadline exceeded",
			returnErr:  context.DeadlineExceeded,
			expectKind: infra.KindTimeout,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, q, _ := newRepo(t)
			q.EXPECT().InsertOrder(ctx, nil, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.InsertOrderParams) error {
					assert.Equal(t, "cake", arg.Kind)
					assert.True(t, arg.ID.Valid)
					assert.Contains(t, string(arg.Doc), `"customerName":"Festa da Maria"`)
					return tc.returnErr
				})

			stored, err := repo.Insert(ctx, draft)

			if tc.returnErr != nil {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.True(t, stored.IsPersisted())
			assert.Equal(t, testNow, stored.CreatedAt())
			assert.Equal(t, testNow, stored.UpdatedAt())
		})
	}
}

func TestOrderRepository_Update(t *testing.T) {
	ctx := context.Background()
	existing := builder.NewSweetBuilder().MustBuildDomain()

	t.Run("success: patch merged", func(t *testing.T) {
		repo, q, tx := newRepo(t)
		q.EXPECT().GetOrderForUpdate(ctx, nil, gomock.Any()).Return(rowFor(t, existing), nil)
		q.EXPECT().MergeOrder(ctx, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.MergeOrderParams) (repository.OrderRow, error) {
				var fields map[string]any
				require.NoError(t, json.Unmarshal(arg.Fields, &fields))
				assert.Equal(t, 50.0, fields["quantity"])
				assert.Contains(t, fields, "updatedAt")

				merged, err := order.Patch{Quantity: patch.Ptr(50)}.Apply(existing)
				require.NoError(t, err)
				return rowFor(t, order.Touch(merged, testNow)), nil
			})

		updated, err := repo.Update(ctx, existing.ID(), order.Patch{Quantity: patch.Ptr(50)})
		require.NoError(t, err)
		assert.Equal(t, 50, updated.(*order.Sweet).Quantity())
		assert.Equal(t, 1, tx.calls)
	})

	t.Run("success: stored fields are the normalized values", func(t *testing.T) {
		repo, q, _ := newRepo(t)
		p := order.Patch{
			Customer:     patch.Ptr("  Ana Paula  "),
			Observations: patch.Ptr("   "),
			Flavor:       patch.Ptr(" Brigadeiro "),
		}
		q.EXPECT().GetOrderForUpdate(ctx, nil, gomock.Any()).Return(rowFor(t, existing), nil)
		q.EXPECT().MergeOrder(ctx, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.MergeOrderParams) (repository.OrderRow, error) {
				var fields map[string]any
				require.NoError(t, json.Unmarshal(arg.Fields, &fields))
				assert.Equal(t, "Ana Paula", fields["customerName"])
				assert.Equal(t, "", fields["observations"])
				assert.Equal(t, "Brigadeiro", fields["flavor"])
				assert.NotContains(t, fields, "quantity")

				merged, err := p.Apply(existing)
				require.NoError(t, err)
				return rowFor(t, order.Touch(merged, testNow)), nil
			})

		updated, err := repo.Update(ctx, existing.ID(), p)
		require.NoError(t, err)
		assert.Equal(t, "Ana Paula", updated.Customer())
	})

	t.Run("error: order missing", func(t *testing.T) {
		repo, q, _ := newRepo(t)
		q.EXPECT().GetOrderForUpdate(ctx, nil, gomock.Any()).Return(repository.OrderRow{}, pgx.ErrNoRows)

		_, err := repo.Update(ctx, existing.ID(), order.Patch{Quantity: patch.Ptr(50)})
		assert.ErrorIs(t, err, shared.ErrDocumentNotFound)
	})

	t.Run("error: malformed id is reported as missing", func(t *testing.T) {
		repo, _, tx := newRepo(t)

		_, err := repo.Update(ctx, "not-a-uuid", order.Patch{})
		assert.ErrorIs(t, err, shared.ErrDocumentNotFound)
		assert.Zero(t, tx.calls)
	})

	t.Run("error: patch not applicable to stored kind", func(t *testing.T) {
		repo, q, _ := newRepo(t)
		q.EXPECT().GetOrderForUpdate(ctx, nil, gomock.Any()).Return(rowFor(t, existing), nil)

		_, err := repo.Update(ctx, existing.ID(), order.Patch{Filling: patch.Ptr("Doce de leite")})
		assert.True(t, infra.IsKind(err, infra.KindInvalidData))
	})
}

func TestOrderRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := builder.NewCakeBuilder().ID

	t.Run("success", func(t *testing.T) {
		repo, q, _ := newRepo(t)
		q.EXPECT().DeleteOrder(ctx, nil, gomock.Any()).Return(int64(1), nil)

		assert.NoError(t, repo.Delete(ctx, id))
	})

	t.Run("error: no row deleted", func(t *testing.T) {
		repo, q, _ := newRepo(t)
		q.EXPECT().DeleteOrder(ctx, nil, gomock.Any()).Return(int64(0), nil)

		assert.ErrorIs(t, repo.Delete(ctx, id), shared.ErrDocumentNotFound)
	})

	t.Run("error: database failure", func(t *testing.T) {
		repo, q, _ := newRepo(t)
		q.EXPECT().DeleteOrder(ctx, nil, gomock.Any()).Return(int64(0), errors.New("connection reset"))

		err := repo.Delete(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.NotErrorIs(t, err, shared.ErrDocumentNotFound)
	})
}

func TestOrderRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("壊れたドキュメントは読み飛ばす", func(t *testing.T) {
		repo, q, _ := newRepo(t)
		cake := builder.NewCakeBuilder().MustBuildDomain()
		broken := rowFor(t, builder.NewSweetBuilder().MustBuildDomain())
		broken.Doc = []byte(`{"type":"sweet","customerName":"","date":"2025-06-05","value":1}`)

		q.EXPECT().ListOrders(ctx, nil).Return([]repository.OrderRow{rowFor(t, cake), broken}, nil)

		orders, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, cake.ID(), orders[0].ID())
	})

	t.Run("種類はカラムから補う", func(t *testing.T) {
		repo, q, _ := newRepo(t)
		wedding := builder.NewWeddingBuilder().MustBuildDomain()
		row := rowFor(t, wedding)
		row.Doc = []byte(`{"customerName":"Casamento","date":"2025-06-20","value":"120.00","quantity":150,"flavor":"Brigadeiro"}`)

		q.EXPECT().ListOrders(ctx, nil).Return([]repository.OrderRow{row}, nil)

		orders, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, order.KindWedding, orders[0].Kind())
	})

	t.Run("error: query failure", func(t *testing.T) {
		repo, q, _ := newRepo(t)
		q.EXPECT().ListOrders(ctx, nil).Return(nil, errors.New("connection refused"))

		_, err := repo.List(ctx)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestOrderRepository_DeleteAll(t *testing.T) {
	ctx := context.Background()
	repo, q, tx := newRepo(t)
	q.EXPECT().DeleteAllOrders(ctx, nil).Return(nil)

	assert.NoError(t, repo.DeleteAll(ctx))
	assert.Equal(t, 1, tx.calls)
}
