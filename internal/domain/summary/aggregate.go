package summary

import (
	"fmt"
	"sort"

	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/domain/order"

	"github.com/shopspring/decimal"
)

type PickupTime struct {
	Time     order.PickupTime
	Customer string
	Details  string
}

type DayBreakdown struct {
	Date        caldate.Date
	TotalOrders int
	TotalValue  decimal.Decimal
	Cakes       int // order count
	Sweets      int // unit sum
	Weddings    int // unit sum
}

// Totals is the full reduction of an order set. Each summary view exposes a subset of it.
type Totals struct {
	CakesBySize    map[order.CakeSize]int
	TotalCakes     int
	TotalSweets    int
	TotalWeddings  int
	TotalValue     decimal.Decimal
	TotalOrders    int
	PickupTimes    []PickupTime
	DailyBreakdown []DayBreakdown
}

// Aggregate reduces orders into Totals. The input is only read.
func Aggregate(orders []order.Order) Totals {
	a := &aggregator{
		totals: Totals{
			CakesBySize:    map[order.CakeSize]int{},
			TotalValue:     decimal.Zero,
			PickupTimes:    []PickupTime{},
			DailyBreakdown: []DayBreakdown{},
		},
		days: map[caldate.Date]*DayBreakdown{},
	}
	order.Walk(orders, a)
	return a.result()
}

type aggregator struct {
	totals Totals
	days   map[caldate.Date]*DayBreakdown
}

func (a *aggregator) VisitCake(c *order.Cake) {
	day := a.count(c)
	day.Cakes++
	a.totals.TotalCakes++
	a.totals.CakesBySize[c.Size()]++

	if c.PickupTime().IsSet() {
		a.totals.PickupTimes = append(a.totals.PickupTimes, PickupTime{
			Time:     c.PickupTime(),
			Customer: c.Customer(),
			Details:  fmt.Sprintf("Bolo %s - %s", c.Size(), c.Flavor()),
		})
	}
}

func (a *aggregator) VisitSweet(s *order.Sweet) {
	day := a.count(s)
	day.Sweets += s.Quantity()
	a.totals.TotalSweets += s.Quantity()
}

func (a *aggregator) VisitWedding(w *order.Wedding) {
	day := a.count(w)
	day.Weddings += w.Quantity()
	a.totals.TotalWeddings += w.Quantity()
}

// count records the fields every order contributes and returns its day bucket.
func (a *aggregator) count(o order.Order) *DayBreakdown {
	a.totals.TotalOrders++
	a.totals.TotalValue = a.totals.TotalValue.Add(o.Value())

	day, ok := a.days[o.Date()]
	if !ok {
		day = &DayBreakdown{Date: o.Date(), TotalValue: decimal.Zero}
		a.days[o.Date()] = day
	}
	day.TotalOrders++
	day.TotalValue = day.TotalValue.Add(o.Value())
	return day
}

func (a *aggregator) result() Totals {
	for _, day := range a.days {
		a.totals.DailyBreakdown = append(a.totals.DailyBreakdown, *day)
	}
	sort.Slice(a.totals.DailyBreakdown, func(i, j int) bool {
		return a.totals.DailyBreakdown[i].Date.Before(a.totals.DailyBreakdown[j].Date)
	})
	// HH:MM sorts correctly as text
	sort.SliceStable(a.totals.PickupTimes, func(i, j int) bool {
		return a.totals.PickupTimes[i].Time < a.totals.PickupTimes[j].Time
	})
	return a.totals
}
