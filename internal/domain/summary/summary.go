package summary

import (
	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/domain/order"

	"github.com/shopspring/decimal"
)

type DailySummary struct {
	Date          caldate.Date
	CakesBySize   map[order.CakeSize]int
	TotalSweets   int
	TotalWeddings int
	PickupTimes   []PickupTime
	TotalOrders   int
}

type PeriodSummary struct {
	Start          caldate.Date
	End            caldate.Date
	CakesBySize    map[order.CakeSize]int
	TotalSweets    int
	TotalWeddings  int
	TotalValue     decimal.Decimal
	TotalOrders    int
	DailyBreakdown []DayBreakdown
	// ratios are zero when their divisor is zero
	AverageTicket    decimal.Decimal // TotalValue per order
	ItemsPerOrder    float64         // cakes, sweets and weddings per order, one decimal
	AverageCakeValue decimal.Decimal // TotalValue per cake
}

type MonthlySummary struct {
	Year          int
	Month         int // 0-based
	TotalValue    decimal.Decimal
	TotalCakes    int
	TotalSweets   int
	TotalWeddings int
	TotalOrders   int
}

func Daily(orders []order.Order, date caldate.Date) DailySummary {
	t := Aggregate(order.ByExactDate(orders, date))
	return DailySummary{
		Date:          date,
		CakesBySize:   t.CakesBySize,
		TotalSweets:   t.TotalSweets,
		TotalWeddings: t.TotalWeddings,
		PickupTimes:   t.PickupTimes,
		TotalOrders:   t.TotalOrders,
	}
}

func Period(orders []order.Order, start, end caldate.Date) PeriodSummary {
	t := Aggregate(order.ByDateRange(orders, start, end))
	return PeriodSummary{
		Start:          start,
		End:            end,
		CakesBySize:    t.CakesBySize,
		TotalSweets:    t.TotalSweets,
		TotalWeddings:  t.TotalWeddings,
		TotalValue:     t.TotalValue,
		TotalOrders:    t.TotalOrders,
		DailyBreakdown: t.DailyBreakdown,

		AverageTicket:    perUnit(t.TotalValue, t.TotalOrders),
		ItemsPerOrder:    itemsPerOrder(t),
		AverageCakeValue: perUnit(t.TotalValue, t.TotalCakes),
	}
}

func perUnit(total decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return total.DivRound(decimal.NewFromInt(int64(n)), 2)
}

func itemsPerOrder(t Totals) float64 {
	if t.TotalOrders == 0 {
		return 0
	}
	items := decimal.NewFromInt(int64(t.TotalCakes + t.TotalSweets + t.TotalWeddings))
	return items.DivRound(decimal.NewFromInt(int64(t.TotalOrders)), 1).InexactFloat64()
}

// Monthly summarizes a calendar month; monthIndex is 0-based.
func Monthly(orders []order.Order, year, monthIndex int) MonthlySummary {
	t := Aggregate(order.ByMonth(orders, year, monthIndex))
	return MonthlySummary{
		Year:          year,
		Month:         monthIndex,
		TotalValue:    t.TotalValue,
		TotalCakes:    t.TotalCakes,
		TotalSweets:   t.TotalSweets,
		TotalWeddings: t.TotalWeddings,
		TotalOrders:   t.TotalOrders,
	}
}

// LastDays is the period summary over [today-days, today].
func LastDays(orders []order.Order, today caldate.Date, days int) PeriodSummary {
	if days < 0 {
		days = 0
	}
	return Period(orders, today.AddDays(-days), today)
}
