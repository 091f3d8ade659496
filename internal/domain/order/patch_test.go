//go:build unit

package order_test

import (
	"testing"

	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/pkg/errs"
	"bakery-orders/internal/pkg/patch"
	"bakery-orders/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchApply(t *testing.T) {
	t.Run("部分更新はIDと種類を保持する", func(t *testing.T) {
		original := builder.NewCakeBuilder().MustBuildDomain()

		updated, err := order.Patch{
			Customer:   patch.Ptr("Débora"),
			Date:       patch.Ptr(caldate.Date("07/06/2025")),
			Value:      patch.Ptr(decimal.RequireFromString("70")),
			PickupTime: patch.Ptr("09:30"),
		}.Apply(original)
		require.NoError(t, err)

		cake := updated.(*order.Cake)
		assert.Equal(t, original.ID(), cake.ID())
		assert.Equal(t, original.CreatedAt(), cake.CreatedAt())
		assert.Equal(t, order.KindCake, cake.Kind())
		assert.Equal(t, "Débora", cake.Customer())
		assert.Equal(t, caldate.Date("2025-06-07"), cake.Date())
		assert.Equal(t, order.PickupTime("09:30"), cake.PickupTime())
		// untouched fields survive
		assert.Equal(t, "Morango", cake.Flavor())
		assert.Equal(t, order.SizeM, cake.Size())

		assert.Equal(t, "Festa da Maria", original.Customer(), "original must not be modified")
	})

	t.Run("観察メモは空文字で消去できる", func(t *testing.T) {
		original := builder.NewSweetBuilder().With(func(b *builder.OrderBuilder) {
			b.Observations = "sem açúcar"
		}).MustBuildDomain()

		updated, err := order.Patch{Observations: patch.Ptr("")}.Apply(original)
		require.NoError(t, err)
		assert.Empty(t, updated.Observations())
	})

	t.Run("種類に合わないフィールドNG", func(t *testing.T) {
		cases := []struct {
			name  string
			order order.Order
			patch order.Patch
		}{
			{"ケーキに数量", builder.NewCakeBuilder().MustBuildDomain(), order.Patch{Quantity: patch.Ptr(3)}},
			{"ケーキにスイーツ種類", builder.NewCakeBuilder().MustBuildDomain(), order.Patch{SweetType: patch.Ptr("Beijinho")}},
			{"スイーツにサイズ", builder.NewSweetBuilder().MustBuildDomain(), order.Patch{Size: patch.Ptr(order.SizeG)}},
			{"ウェディングにトッパー", builder.NewWeddingBuilder().MustBuildDomain(), order.Patch{NeedsTopper: patch.Ptr(true)}},
			{"ウェディングにスイーツ種類", builder.NewWeddingBuilder().MustBuildDomain(), order.Patch{SweetType: patch.Ptr("Bombom")}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.patch.Apply(tc.order)
				require.Error(t, err)
				assert.ErrorIs(t, err, order.ErrFieldNotApplicable)
				assert.True(t, errs.Is(err, order.ErrInvalidOrder))
			})
		}
	})

	t.Run("更新後も不変条件を検証する", func(t *testing.T) {
		original := builder.NewWeddingBuilder().MustBuildDomain()

		_, err := order.Patch{Quantity: patch.Ptr(0)}.Apply(original)
		assert.ErrorIs(t, err, order.ErrInvalidQuantity)

		_, err = order.Patch{Value: patch.Ptr(decimal.NewFromInt(-1))}.Apply(original)
		assert.ErrorIs(t, err, order.ErrNegativeValue)

		_, err = order.Patch{Value: patch.Ptr(decimal.RequireFromString("120.999"))}.Apply(original)
		assert.ErrorIs(t, err, order.ErrValuePrecision)
	})

	t.Run("空パッチ", func(t *testing.T) {
		assert.True(t, order.Patch{}.IsEmpty())
		assert.False(t, order.Patch{Flavor: patch.Ptr("Coco")}.IsEmpty())
	})
}
