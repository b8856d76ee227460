package queries

import (
	"context"
	"time"

	"padel-booking/internal/pkg/clock"
	"padel-booking/internal/pkg/errs"
)

// MaxReportSpan bounds a summary to roughly one year of bookings.
const MaxReportSpan = 366 * 24 * time.Hour

var ErrInvalidReportRange = errs.New("invalid report range")

type ReportReadStore interface {
	Summary(ctx context.Context, from, to time.Time) (*ReportSummary, error)
}

type ReportQueries interface {
	Summary(ctx context.Context, from, to *time.Time) (*ReportSummary, error)
}

type reportQueriesImpl struct {
	store ReportReadStore
	clock clock.Clock
}

func NewReportQueries(store ReportReadStore, clock clock.Clock) ReportQueries {
	return &reportQueriesImpl{store: store, clock: clock}
}

// Summary defaults to the current calendar month when a bound is missing.
func (q *reportQueriesImpl) Summary(ctx context.Context, from, to *time.Time) (*ReportSummary, error) {
	today := clock.StartOfDay(q.clock.Now().UTC())
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	if from != nil {
		start = clock.StartOfDay(from.UTC())
	}
	if to != nil {
		end = clock.StartOfDay(to.UTC())
	}

	if end.Before(start) || end.Sub(start) > MaxReportSpan {
		return nil, ErrInvalidReportRange
	}
	return q.store.Summary(ctx, start, end)
}
