package queries

import (
	"context"
	"fmt"
	"sync"

	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/domain/summary"
	"bakery-orders/internal/pkg/clock"
	"bakery-orders/internal/pkg/errs"
)

//go:generate mockgen -source=summary.go -destination=../../../tests/mock/queries/summary.go -package=queriesmock

const (
	MaxRecentDays = 366
	memoCapacity  = 256
)

// Revisioned pairs a result with the store revision it was computed from.
type Revisioned[T any] struct {
	Data     T
	Revision uint64
}

type SummaryQueries interface {
	Daily(ctx context.Context, date caldate.Date) (*Revisioned[summary.DailySummary], error)
	Period(ctx context.Context, start, end caldate.Date) (*Revisioned[summary.PeriodSummary], error)
	Monthly(ctx context.Context, year, monthIndex int) (*Revisioned[summary.MonthlySummary], error)
	Recent(ctx context.Context, days int) (*Revisioned[summary.PeriodSummary], error)
}

type summaryQueriesImpl struct {
	source OrderSnapshotSource
	clock  clock.Clock
	memo   *revisionMemo
}

func NewSummaryQueries(source OrderSnapshotSource, clk clock.Clock) SummaryQueries {
	return &summaryQueriesImpl{
		source: source,
		clock:  clk,
		memo:   &revisionMemo{entries: map[string]any{}},
	}
}

func (q *summaryQueriesImpl) Daily(ctx context.Context, date caldate.Date) (*Revisioned[summary.DailySummary], error) {
	return memoized(q, "daily:"+date.String(), func(s []order.Order) summary.DailySummary {
		return summary.Daily(s, date)
	}), nil
}

func (q *summaryQueriesImpl) Period(ctx context.Context, start, end caldate.Date) (*Revisioned[summary.PeriodSummary], error) {
	key := fmt.Sprintf("period:%s:%s", start, end)
	return memoized(q, key, func(s []order.Order) summary.PeriodSummary {
		return summary.Period(s, start, end)
	}), nil
}

func (q *summaryQueriesImpl) Monthly(ctx context.Context, year, monthIndex int) (*Revisioned[summary.MonthlySummary], error) {
	if err := validateMonth(year, monthIndex); err != nil {
		return nil, err
	}
	key := fmt.Sprintf("monthly:%d:%d", year, monthIndex)
	return memoized(q, key, func(s []order.Order) summary.MonthlySummary {
		return summary.Monthly(s, year, monthIndex)
	}), nil
}

// Recent summarizes the last days up to and including today in the business time zone.
func (q *summaryQueriesImpl) Recent(ctx context.Context, days int) (*Revisioned[summary.PeriodSummary], error) {
	if days < 1 || days > MaxRecentDays {
		return nil, errs.Wrapf(ErrInvalidFilter, "days must be between 1 and %d", MaxRecentDays)
	}
	today := caldate.FromTime(q.clock.Now())
	key := fmt.Sprintf("recent:%s:%d", today, days)
	return memoized(q, key, func(s []order.Order) summary.PeriodSummary {
		return summary.LastDays(s, today, days)
	}), nil
}

// memoized recomputes only when the store revision moved since the cached entry.
func memoized[T any](q *summaryQueriesImpl, key string, compute func([]order.Order) T) *Revisioned[T] {
	orders, rev := q.source.Snapshot()
	if cached, ok := q.memo.get(key, rev); ok {
		return &Revisioned[T]{Data: cached.(T), Revision: rev}
	}
	data := compute(orders)
	q.memo.put(key, rev, data)
	return &Revisioned[T]{Data: data, Revision: rev}
}

type revisionMemo struct {
	mu       sync.Mutex
	revision uint64
	entries  map[string]any
}

func (m *revisionMemo) get(key string, rev uint64) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rev != m.revision {
		return nil, false
	}
	v, ok := m.entries[key]
	return v, ok
}

func (m *revisionMemo) put(key string, rev uint64, v any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rev != m.revision || len(m.entries) >= memoCapacity {
		m.revision = rev
		m.entries = map[string]any{}
	}
	m.entries[key] = v
}
