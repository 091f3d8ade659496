//go:build unit

package summary_test

import (
	"testing"

	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/domain/summary"
	"bakery-orders/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmpopts.EquateEmpty(),
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDaily(t *testing.T) {
	t.Run("ケーキとスイーツの日次集計", func(t *testing.T) {
		orders := []order.Order{
			builder.NewCakeBuilder().WithDate("2025-06-05").WithValue("65.00").MustBuildDomain(),
			builder.NewSweetBuilder().WithDate("2025-06-05").WithQuantity(30).WithValue("18.00").MustBuildDomain(),
			builder.NewSweetBuilder().WithDate("2025-06-06").MustBuildDomain(),
		}

		got := summary.Daily(orders, "2025-06-05")

		assert.Equal(t, map[order.CakeSize]int{order.SizeM: 1}, got.CakesBySize)
		assert.Equal(t, 30, got.TotalSweets)
		assert.Equal(t, 0, got.TotalWeddings)
		assert.Equal(t, 2, got.TotalOrders)
	})

	t.Run("受取時刻は時刻順", func(t *testing.T) {
		orders := []order.Order{
			builder.NewCakeBuilder().With(func(b *builder.OrderBuilder) {
				b.PickupTime = "21:00"
				b.Customer = "Débora"
				b.Size = "P"
				b.Flavor = "Chocolate"
			}).MustBuildDomain(),
			builder.NewCakeBuilder().With(func(b *builder.OrderBuilder) {
				b.PickupTime = "09:15"
				b.Customer = "Carlos"
			}).MustBuildDomain(),
			builder.NewCakeBuilder().With(func(b *builder.OrderBuilder) {
				b.PickupTime = ""
			}).MustBuildDomain(),
			builder.NewSweetBuilder().MustBuildDomain(),
		}

		got := summary.Daily(orders, "2025-06-05")

		want := []summary.PickupTime{
			{Time: "09:15", Customer: "Carlos", Details: "Bolo M - Morango"},
			{Time: "21:00", Customer: "Débora", Details: "Bolo P - Chocolate"},
		}
		if diff := cmp.Diff(want, got.PickupTimes, cmpOpts...); diff != "" {
			t.Errorf("PickupTimes mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, map[order.CakeSize]int{order.SizeM: 2, order.SizeP: 1}, got.CakesBySize)
	})

	t.Run("注文なしの日", func(t *testing.T) {
		got := summary.Daily(nil, "2025-06-05")

		assert.Zero(t, got.TotalOrders)
		assert.Empty(t, got.CakesBySize)
		assert.NotNil(t, got.PickupTimes)
	})
}

func TestPeriod(t *testing.T) {
	june := []order.Order{
		builder.NewCakeBuilder().WithDate("2025-06-25").WithValue("95.00").MustBuildDomain(),
		builder.NewSweetBuilder().WithDate("2025-06-10").WithValue("18.00").MustBuildDomain(),
		builder.NewCakeBuilder().WithDate("2025-06-05").WithValue("65.00").MustBuildDomain(),
		builder.NewWeddingBuilder().WithDate("2025-06-20").WithValue("120.00").MustBuildDomain(),
		builder.NewCakeBuilder().WithDate("2025-06-15").WithValue("85.00").MustBuildDomain(),
		builder.NewCakeBuilder().WithDate("2025-07-02").WithValue("50.00").MustBuildDomain(),
	}

	t.Run("6月の期間集計", func(t *testing.T) {
		got := summary.Period(june, "2025-06-01", "2025-06-30")

		assert.Equal(t, 5, got.TotalOrders)
		require.Len(t, got.DailyBreakdown, 5)
		dates := make([]caldate.Date, 0, len(got.DailyBreakdown))
		for _, d := range got.DailyBreakdown {
			dates = append(dates, d.Date)
		}
		assert.Equal(t, []caldate.Date{"2025-06-05", "2025-06-10", "2025-06-15", "2025-06-20", "2025-06-25"}, dates)
		assert.True(t, dec("383.00").Equal(got.TotalValue))
		assert.Equal(t, 30, got.TotalSweets)
		assert.Equal(t, 150, got.TotalWeddings)
		assert.Equal(t, 3, got.CakesBySize[order.SizeM])
	})

	t.Run("平均値の集計", func(t *testing.T) {
		got := summary.Period(june, "2025-06-01", "2025-06-30")

		assert.True(t, dec("76.60").Equal(got.AverageTicket), got.AverageTicket.String())
		assert.InDelta(t, 36.6, got.ItemsPerOrder, 1e-9)
		assert.True(t, dec("127.67").Equal(got.AverageCakeValue), got.AverageCakeValue.String())
	})

	t.Run("注文がなければ平均値はゼロ", func(t *testing.T) {
		got := summary.Period(june, "2024-01-01", "2024-01-31")

		assert.True(t, got.AverageTicket.IsZero())
		assert.Zero(t, got.ItemsPerOrder)
		assert.True(t, got.AverageCakeValue.IsZero())
	})

	t.Run("ケーキがなければケーキ単価はゼロ", func(t *testing.T) {
		got := summary.Period(june, "2025-06-10", "2025-06-10")

		assert.Equal(t, 1, got.TotalOrders)
		assert.True(t, dec("18.00").Equal(got.AverageTicket))
		assert.InDelta(t, 30.0, got.ItemsPerOrder, 1e-9)
		assert.True(t, got.AverageCakeValue.IsZero())
	})

	t.Run("日別合計は総額と一致する", func(t *testing.T) {
		got := summary.Period(june, "2025-06-01", "2025-07-31")

		sum := decimal.Zero
		orders := 0
		for _, d := range got.DailyBreakdown {
			sum = sum.Add(d.TotalValue)
			orders += d.TotalOrders
		}
		assert.True(t, sum.Equal(got.TotalValue))
		assert.Equal(t, got.TotalOrders, orders)
	})

	t.Run("同じ日の内訳", func(t *testing.T) {
		orders := []order.Order{
			builder.NewCakeBuilder().WithValue("10.10").MustBuildDomain(),
			builder.NewSweetBuilder().WithQuantity(25).WithValue("20.20").MustBuildDomain(),
			builder.NewWeddingBuilder().WithDate("2025-06-05").WithQuantity(80).WithValue("0.10").MustBuildDomain(),
		}

		got := summary.Period(orders, "2025-06-05", "2025-06-05")

		want := []summary.DayBreakdown{{
			Date:        "2025-06-05",
			TotalOrders: 3,
			TotalValue:  dec("30.40"),
			Cakes:       1,
			Sweets:      25,
			Weddings:    80,
		}}
		if diff := cmp.Diff(want, got.DailyBreakdown, cmpOpts...); diff != "" {
			t.Errorf("DailyBreakdown mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("逆転した範囲", func(t *testing.T) {
		got := summary.Period(june, "2025-06-30", "2025-06-01")

		assert.Zero(t, got.TotalOrders)
		assert.Empty(t, got.DailyBreakdown)
		assert.True(t, got.TotalValue.IsZero())
	})
}

func TestMonthly(t *testing.T) {
	orders := []order.Order{
		builder.NewCakeBuilder().WithDate("2025-06-05").WithValue("65.00").MustBuildDomain(),
		builder.NewWeddingBuilder().WithDate("2025-06-20").WithQuantity(150).WithValue("120.00").MustBuildDomain(),
		builder.NewSweetBuilder().WithDate("2025-05-31").MustBuildDomain(),
	}

	got := summary.Monthly(orders, 2025, 5)

	want := summary.MonthlySummary{
		Year:          2025,
		Month:         5,
		TotalValue:    dec("185.00"),
		TotalCakes:    1,
		TotalWeddings: 150,
		TotalOrders:   2,
	}
	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("MonthlySummary mismatch (-want +got):\n%s", diff)
	}
}

func TestLastDays(t *testing.T) {
	orders := []order.Order{
		builder.NewCakeBuilder().WithDate("2025-06-30").MustBuildDomain(),
		builder.NewCakeBuilder().WithDate("2025-05-31").MustBuildDomain(),
		builder.NewCakeBuilder().WithDate("2025-05-30").MustBuildDomain(),
	}

	got := summary.LastDays(orders, "2025-06-30", 30)

	assert.Equal(t, caldate.Date("2025-05-31"), got.Start)
	assert.Equal(t, caldate.Date("2025-06-30"), got.End)
	assert.Equal(t, 2, got.TotalOrders)
}

func TestAggregateTotalOrdersMatchesInput(t *testing.T) {
	orders := []order.Order{
		builder.NewCakeBuilder().MustBuildDomain(),
		builder.NewSweetBuilder().MustBuildDomain(),
		builder.NewWeddingBuilder().MustBuildDomain(),
		builder.NewCakeBuilder().With(func(b *builder.OrderBuilder) { b.Size = "Bolo de Corte 70 fatias" }).MustBuildDomain(),
	}

	got := summary.Aggregate(orders)

	assert.Equal(t, len(orders), got.TotalOrders)
	assert.Equal(t, 2, got.TotalCakes)
	assert.Equal(t, 1, got.CakesBySize[order.SizeSheet70])
	_, hasGG := got.CakesBySize[order.SizeGG]
	assert.False(t, hasGG, "zero counts are omitted")
}
