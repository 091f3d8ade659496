package order

import (
	"sort"

	"bakery-orders/internal/domain/caldate"
)

// Filters never modify their input and always return a non-nil slice.

func ByExactDate(orders []Order, date caldate.Date) []Order {
	return selectOrders(orders, func(o Order) bool {
		return o.Date() == date
	})
}

// ByDateRange selects orders within [start, end]. An inverted range selects nothing.
func ByDateRange(orders []Order, start, end caldate.Date) []Order {
	if start.After(end) {
		return []Order{}
	}
	return selectOrders(orders, func(o Order) bool {
		d := o.Date()
		return !d.Before(start) && !d.After(end)
	})
}

// ByMonth selects orders in the given year and 0-based month.
func ByMonth(orders []Order, year, monthIndex int) []Order {
	return selectOrders(orders, func(o Order) bool {
		return o.Date().InMonth(year, monthIndex)
	})
}

// FindByID returns the order with the given id, if present.
func FindByID(orders []Order, id string) (Order, bool) {
	for _, o := range orders {
		if o.ID() == id {
			return o, true
		}
	}
	return nil, false
}

// SortByDate orders by calendar day then creation time. The slice is sorted in place.
func SortByDate(orders []Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if c := orders[i].Date().Compare(orders[j].Date()); c != 0 {
			return c < 0
		}
		return orders[i].CreatedAt().Before(orders[j].CreatedAt())
	})
}

func selectOrders(orders []Order, keep func(Order) bool) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}
