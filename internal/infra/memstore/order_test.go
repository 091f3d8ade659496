//go:build unit

package memstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/infra"
	"bakery-orders/internal/infra/memstore"
	"bakery-orders/internal/pkg/clock"
	"bakery-orders/internal/pkg/errs"
	"bakery-orders/internal/pkg/patch"
	"bakery-orders/internal/usecase/shared"
	"bakery-orders/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() (*memstore.OrderStore, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return memstore.NewOrderStore(clk, slog.New(slog.NewTextHandler(io.Discard, nil))), clk
}

func TestOrderStore(t *testing.T) {
	ctx := context.Background()

	t.Run("挿入でIDとタイムスタンプを割り当てる", func(t *testing.T) {
		s, clk := newStore()
		draft := builder.NewCakeBuilder().Unpersisted().MustBuildDomain()

		stored, err := s.Insert(ctx, draft)
		require.NoError(t, err)

		assert.NotEmpty(t, stored.ID())
		assert.Equal(t, clk.Now(), stored.CreatedAt())
		assert.Equal(t, clk.Now(), stored.UpdatedAt())
		assert.False(t, draft.IsPersisted())
	})

	t.Run("一覧は挿入順", func(t *testing.T) {
		s, _ := newStore()
		a, _ := s.Insert(ctx, builder.NewCakeBuilder().MustBuildDomain())
		b, _ := s.Insert(ctx, builder.NewSweetBuilder().MustBuildDomain())
		c, _ := s.Insert(ctx, builder.NewWeddingBuilder().MustBuildDomain())
		require.NoError(t, s.Delete(ctx, b.ID()))

		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, a.ID(), got[0].ID())
		assert.Equal(t, c.ID(), got[1].ID())
	})

	t.Run("部分更新でupdatedAtのみ進む", func(t *testing.T) {
		s, clk := newStore()
		stored, _ := s.Insert(ctx, builder.NewSweetBuilder().MustBuildDomain())
		clk.Add(time.Hour)

		updated, err := s.Update(ctx, stored.ID(), order.Patch{Quantity: patch.Ptr(45)})
		require.NoError(t, err)

		assert.Equal(t, 45, updated.(*order.Sweet).Quantity())
		assert.Equal(t, stored.CreatedAt(), updated.CreatedAt())
		assert.Equal(t, clk.Now(), updated.UpdatedAt())
	})

	t.Run("存在しないIDはNotFound", func(t *testing.T) {
		s, _ := newStore()

		_, err := s.Update(ctx, "missing", order.Patch{Flavor: patch.Ptr("Coco")})
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.True(t, errs.Is(err, shared.ErrDocumentNotFound))

		err = s.Delete(ctx, "missing")
		assert.ErrorIs(t, err, shared.ErrDocumentNotFound)
	})

	t.Run("全削除", func(t *testing.T) {
		s, _ := newStore()
		_, _ = s.Insert(ctx, builder.NewCakeBuilder().MustBuildDomain())
		_, _ = s.Insert(ctx, builder.NewCakeBuilder().MustBuildDomain())

		require.NoError(t, s.DeleteAll(ctx))
		assert.Zero(t, s.Len())
	})

	t.Run("キャンセル済みコンテキスト", func(t *testing.T) {
		s, _ := newStore()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := s.List(cctx)
		assert.True(t, infra.IsKind(err, infra.KindTimeout))
	})
}
