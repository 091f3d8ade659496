//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/pkg/clock"
	"bakery-orders/internal/usecase/queries"
	"bakery-orders/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryQueries(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC))

	t.Run("日次サマリー", func(t *testing.T) {
		q := queries.NewSummaryQueries(&stubSource{orders: fixtureOrders(), revision: 1}, clk)

		res, err := q.Daily(ctx, caldate.Date("2025-06-05"))
		require.NoError(t, err)
		assert.Equal(t, uint64(1), res.Revision)
		assert.Equal(t, 1, res.Data.TotalOrders)
		assert.Equal(t, 1, res.Data.CakesBySize[order.SizeM])
		require.Len(t, res.Data.PickupTimes, 1)
		assert.Equal(t, order.PickupTime("18:00"), res.Data.PickupTimes[0].Time)
	})

	t.Run("期間サマリーの合計金額", func(t *testing.T) {
		q := queries.NewSummaryQueries(&stubSource{orders: fixtureOrders(), revision: 1}, clk)

		res, err := q.Period(ctx, caldate.Date("2025-06-01"), caldate.Date("2025-06-30"))
		require.NoError(t, err)
		assert.Equal(t, 3, res.Data.TotalOrders)
		assert.True(t, decimal.RequireFromString("203.00").Equal(res.Data.TotalValue))
		assert.Len(t, res.Data.DailyBreakdown, 3)
	})

	t.Run("月次サマリー", func(t *testing.T) {
		q := queries.NewSummaryQueries(&stubSource{orders: fixtureOrders(), revision: 1}, clk)

		res, err := q.Monthly(ctx, 2025, 5)
		require.NoError(t, err)
		assert.Equal(t, 3, res.Data.TotalOrders)
		assert.Equal(t, 1, res.Data.TotalCakes)

		_, err = q.Monthly(ctx, 2025, -1)
		assert.ErrorIs(t, err, queries.ErrInvalidFilter)
	})

	t.Run("直近の日数は今日を含む", func(t *testing.T) {
		q := queries.NewSummaryQueries(&stubSource{orders: fixtureOrders(), revision: 1}, clk)

		res, err := q.Recent(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, caldate.Date("2025-06-20"), res.Data.Start)
		assert.Equal(t, caldate.Date("2025-06-21"), res.Data.End)
		assert.Equal(t, 150, res.Data.TotalWeddings)

		for _, days := range []int{0, queries.MaxRecentDays + 1} {
			_, err := q.Recent(ctx, days)
			assert.ErrorIs(t, err, queries.ErrInvalidFilter)
		}
	})

	t.Run("リビジョンが変わると再計算", func(t *testing.T) {
		source := &stubSource{orders: fixtureOrders(), revision: 1}
		q := queries.NewSummaryQueries(source, clk)

		first, err := q.Daily(ctx, caldate.Date("2025-06-05"))
		require.NoError(t, err)
		second, err := q.Daily(ctx, caldate.Date("2025-06-05"))
		require.NoError(t, err)
		assert.Equal(t, first.Data.TotalOrders, second.Data.TotalOrders)

		extra := builder.NewSweetBuilder().WithDate("2025-06-05").MustBuildDomain()
		source.replace(append(fixtureOrders(), extra), 2)

		third, err := q.Daily(ctx, caldate.Date("2025-06-05"))
		require.NoError(t, err)
		assert.Equal(t, uint64(2), third.Revision)
		assert.Equal(t, 2, third.Data.TotalOrders)
		assert.Equal(t, 30, third.Data.TotalSweets)
	})
}
