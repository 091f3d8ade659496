package queries

import (
	"context"

	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/pkg/errs"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order.go -package=queriesmock

var ErrInvalidFilter = errs.New("invalid order filter")

// OrderSnapshotSource is the read side of orderstore.Store.
type OrderSnapshotSource interface {
	Snapshot() ([]order.Order, uint64)
	Get(id string) (order.Order, bool)
}

// OrderFilter selects at most one of: exact date, date range, month.
type OrderFilter struct {
	Date  *caldate.Date
	Start *caldate.Date
	End   *caldate.Date
	Year  *int
	Month *int // 0-based
}

func (f OrderFilter) validate() error {
	exact := f.Date != nil
	ranged := f.Start != nil || f.End != nil
	monthly := f.Year != nil || f.Month != nil

	selected := 0
	for _, set := range []bool{exact, ranged, monthly} {
		if set {
			selected++
		}
	}
	if selected > 1 {
		return errs.Wrap(ErrInvalidFilter, "date, start/end and year/month are mutually exclusive")
	}
	if ranged && (f.Start == nil || f.End == nil) {
		return errs.Wrap(ErrInvalidFilter, "start and end must be given together")
	}
	if monthly {
		if f.Year == nil || f.Month == nil {
			return errs.Wrap(ErrInvalidFilter, "year and month must be given together")
		}
		if err := validateMonth(*f.Year, *f.Month); err != nil {
			return err
		}
	}
	return nil
}

type OrderList struct {
	Orders   []order.Order
	Revision uint64
}

type OrderQueries interface {
	ListOrders(ctx context.Context, f OrderFilter) (*OrderList, error)
	GetOrder(ctx context.Context, id string) (order.Order, uint64, error)
}

type orderQueriesImpl struct {
	source OrderSnapshotSource
}

func NewOrderQueries(source OrderSnapshotSource) OrderQueries {
	return &orderQueriesImpl{source: source}
}

// ListOrders returns the filtered snapshot sorted by date.
func (q *orderQueriesImpl) ListOrders(ctx context.Context, f OrderFilter) (*OrderList, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	orders, rev := q.source.Snapshot()
	switch {
	case f.Date != nil:
		orders = order.ByExactDate(orders, *f.Date)
	case f.Start != nil:
		orders = order.ByDateRange(orders, *f.Start, *f.End)
	case f.Year != nil:
		orders = order.ByMonth(orders, *f.Year, *f.Month)
	}
	order.SortByDate(orders)

	return &OrderList{Orders: orders, Revision: rev}, nil
}

func (q *orderQueriesImpl) GetOrder(ctx context.Context, id string) (order.Order, uint64, error) {
	_, rev := q.source.Snapshot()
	o, ok := q.source.Get(id)
	if !ok {
		return nil, rev, errs.ErrOrderNotFound
	}
	return o, rev, nil
}

func validateMonth(year, monthIndex int) error {
	if year < 1 || year > 9999 {
		return errs.Wrapf(ErrInvalidFilter, "year %d out of range", year)
	}
	if monthIndex < 0 || monthIndex > 11 {
		return errs.Wrapf(ErrInvalidFilter, "month %d out of range 0-11", monthIndex)
	}
	return nil
}
