//go:build unit

package order_test

import (
	"testing"

	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/domain/order"
	"bakery-orders/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func juneOrders() []order.Order {
	return []order.Order{
		builder.NewCakeBuilder().WithDate("2025-06-05").MustBuildDomain(),
		builder.NewSweetBuilder().WithDate("2025-06-10").MustBuildDomain(),
		builder.NewCakeBuilder().WithDate("2025-06-15").MustBuildDomain(),
		builder.NewWeddingBuilder().WithDate("2025-06-20").MustBuildDomain(),
		builder.NewCakeBuilder().WithDate("2025-06-25").MustBuildDomain(),
		builder.NewSweetBuilder().WithDate("2025-07-01").MustBuildDomain(),
		builder.NewCakeBuilder().WithDate("2024-06-05").MustBuildDomain(),
	}
}

func ids(orders []order.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID())
	}
	return out
}

func TestByExactDate(t *testing.T) {
	orders := juneOrders()

	got := order.ByExactDate(orders, "2025-06-05")
	require.Len(t, got, 1)
	assert.Equal(t, orders[0].ID(), got[0].ID())

	assert.Empty(t, order.ByExactDate(orders, "2025-06-06"))
	assert.NotNil(t, order.ByExactDate(nil, "2025-06-06"))
}

func TestExactDateEqualsSingleDayRange(t *testing.T) {
	orders := juneOrders()

	for _, o := range orders {
		d := o.Date()
		assert.Equal(t, ids(order.ByExactDate(orders, d)), ids(order.ByDateRange(orders, d, d)), "date %s", d)
	}
}

func TestByDateRange(t *testing.T) {
	orders := juneOrders()

	t.Run("境界を含む", func(t *testing.T) {
		got := order.ByDateRange(orders, "2025-06-05", "2025-06-25")
		assert.Len(t, got, 5)
	})

	t.Run("月全体", func(t *testing.T) {
		got := order.ByDateRange(orders, "2025-06-01", "2025-06-30")
		assert.Len(t, got, 5)
	})

	t.Run("逆転した範囲は空", func(t *testing.T) {
		got := order.ByDateRange(orders, "2025-06-30", "2025-06-01")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("入力を変更しない", func(t *testing.T) {
		before := ids(orders)
		_ = order.ByDateRange(orders, "2025-06-10", "2025-06-20")
		assert.Equal(t, before, ids(orders))
	})
}

func TestByMonth(t *testing.T) {
	orders := juneOrders()

	june := order.ByMonth(orders, 2025, 5)
	assert.Len(t, june, 5)
	for _, o := range june {
		assert.True(t, o.Date().InMonth(2025, 5))
	}

	assert.Len(t, order.ByMonth(orders, 2025, 6), 1)
	assert.Len(t, order.ByMonth(orders, 2024, 5), 1)
	assert.Empty(t, order.ByMonth(orders, 2025, 0))
}

func TestSortByDate(t *testing.T) {
	orders := juneOrders()
	order.SortByDate(orders)

	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i].Date().Before(orders[i-1].Date()))
	}
	assert.Equal(t, caldate.Date("2024-06-05"), orders[0].Date())
}

func TestFindByID(t *testing.T) {
	orders := juneOrders()

	found, ok := order.FindByID(orders, orders[3].ID())
	require.True(t, ok)
	assert.Equal(t, order.KindWedding, found.Kind())

	_, ok = order.FindByID(orders, "missing")
	assert.False(t, ok)
}
