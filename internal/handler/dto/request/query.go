package request

import (
	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/usecase/queries"
)

type OrderListQuery struct {
	Date  string `form:"date"`
	Start string `form:"start"`
	End   string `form:"end"`
	Year  *int   `form:"year"`
	Month *int   `form:"month"`
}

func (q *OrderListQuery) ToFilter() (queries.OrderFilter, error) {
	var f queries.OrderFilter
	var err error

	if f.Date, err = optionalDate(q.Date); err != nil {
		return f, err
	}
	if f.Start, err = optionalDate(q.Start); err != nil {
		return f, err
	}
	if f.End, err = optionalDate(q.End); err != nil {
		return f, err
	}
	f.Year = q.Year
	f.Month = q.Month
	return f, nil
}

type DailySummaryQuery struct {
	Date string `form:"date" binding:"required"`
}

type PeriodSummaryQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

// MonthlySummaryQuery takes a 0-based month, as the web client sends it.
type MonthlySummaryQuery struct {
	Year  *int `form:"year" binding:"required"`
	Month *int `form:"month" binding:"required"`
}

type RecentSummaryQuery struct {
	Days int `form:"days,default=30"`
}

func optionalDate(s string) (*caldate.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := caldate.Normalize(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
