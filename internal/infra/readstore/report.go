package readstore

import (
	"context"
	"time"

	"padel-booking/internal/infra"
	"padel-booking/internal/infra/pgquery"
	"padel-booking/internal/pkg/pgconv"
	"padel-booking/internal/usecase/queries"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type ReportQueries interface {
	CountBookingsByStatus(ctx context.Context, db pgquery.DBTX, r pgquery.DateRange) ([]pgquery.StatusCountRow, error)
	SumPaidRevenue(ctx context.Context, db pgquery.DBTX, r pgquery.DateRange) (int64, error)
	CountBookingsByCourt(ctx context.Context, db pgquery.DBTX, r pgquery.DateRange) ([]pgquery.CourtCountRow, error)
}

// ReportReadStore runs the aggregates concurrently, so db must be a pool rather than a
// single transaction.
type ReportReadStore struct {
	queries ReportQueries
	db      pgquery.DBTX
}

func NewReportReadStore(queries ReportQueries, db pgquery.DBTX) *ReportReadStore {
	return &ReportReadStore{queries: queries, db: db}
}

func (r *ReportReadStore) Summary(ctx context.Context, from, to time.Time) (*queries.ReportSummary, error) {
	rng := pgquery.DateRange{From: pgconv.DateToPgtype(from), To: pgconv.DateToPgtype(to)}

	var (
		statusRows []pgquery.StatusCountRow
		revenue    int64
		courtRows  []pgquery.CourtCountRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		statusRows, err = r.queries.CountBookingsByStatus(gctx, r.db, rng)
		return err
	})
	g.Go(func() error {
		var err error
		revenue, err = r.queries.SumPaidRevenue(gctx, r.db, rng)
		return err
	})
	g.Go(func() error {
		var err error
		courtRows, err = r.queries.CountBookingsByCourt(gctx, r.db, rng)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, infra.WrapRepoErr("failed to build report summary", err)
	}

	counts := lo.Associate(statusRows, func(row pgquery.StatusCountRow) (string, int64) {
		return row.Status, row.Count
	})
	return &queries.ReportSummary{
		From:             from,
		To:               to,
		StatusCounts:     counts,
		TotalBookings:    lo.Sum(lo.Values(counts)),
		PaidRevenueCents: revenue,
		Courts: lo.Map(courtRows, func(row pgquery.CourtCountRow, _ int) queries.CourtBookingCount {
			return queries.CourtBookingCount{CourtID: row.CourtID, CourtName: row.CourtName, Bookings: row.Count}
		}),
	}, nil
}
