package observability

import (
	"context"

	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/domain/summary"
	"bakery-orders/internal/usecase/queries"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type tracedSummaryQueries struct {
	next   queries.SummaryQueries
	tracer trace.Tracer
}

func TraceSummaryQueries(next queries.SummaryQueries, provider trace.TracerProvider) queries.SummaryQueries {
	return &tracedSummaryQueries{
		next:   next,
		tracer: provider.Tracer(instrumentationName),
	}
}

func (t *tracedSummaryQueries) Daily(ctx context.Context, date caldate.Date) (*queries.Revisioned[summary.DailySummary], error) {
	ctx, span := t.tracer.Start(ctx, "summaries.daily", trace.WithAttributes(attribute.String("summary.date", date.String())))
	defer span.End()

	res, err := t.next.Daily(ctx, date)
	return res, record(span, err)
}

func (t *tracedSummaryQueries) Period(ctx context.Context, start, end caldate.Date) (*queries.Revisioned[summary.PeriodSummary], error) {
	ctx, span := t.tracer.Start(ctx, "summaries.period", trace.WithAttributes(
		attribute.String("summary.start", start.String()),
		attribute.String("summary.end", end.String()),
	))
	defer span.End()

	res, err := t.next.Period(ctx, start, end)
	return res, record(span, err)
}

func (t *tracedSummaryQueries) Monthly(ctx context.Context, year, monthIndex int) (*queries.Revisioned[summary.MonthlySummary], error) {
	ctx, span := t.tracer.Start(ctx, "summaries.monthly", trace.WithAttributes(
		attribute.Int("summary.year", year),
		attribute.Int("summary.month", monthIndex),
	))
	defer span.End()

	res, err := t.next.Monthly(ctx, year, monthIndex)
	return res, record(span, err)
}

func (t *tracedSummaryQueries) Recent(ctx context.Context, days int) (*queries.Revisioned[summary.PeriodSummary], error) {
	ctx, span := t.tracer.Start(ctx, "summaries.recent", trace.WithAttributes(attribute.Int("summary.days", days)))
	defer span.End()

	res, err := t.next.Recent(ctx, days)
	return res, record(span, err)
}
