package pgquery

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
)

type DateRange struct {
	From pgtype.Date
	To   pgtype.Date
}

func (r DateRange) where(col string) sq.And {
	return sq.And{sq.GtOrEq{col: r.From}, sq.LtOrEq{col: r.To}}
}

func countByStatusQuery(r DateRange) sq.SelectBuilder {
	return psql.Select("status", "COUNT(*) AS count").
		From("bookings").
		Where(r.where("booking_date")).
		GroupBy("status").
		OrderBy("status")
}

func paidRevenueQuery(r DateRange) sq.SelectBuilder {
	return psql.Select("COALESCE(SUM(price_cents), 0)::bigint").
		From("bookings").
		Where(r.where("booking_date")).
		Where(sq.Eq{"status": []string{"paid", "completed"}})
}

func countByCourtQuery(r DateRange) sq.SelectBuilder {
	return psql.Select("c.id AS court_id", "c.name AS court_name", "COUNT(b.id) AS count").
		From("courts c").
		LeftJoin("bookings b ON b.court_id = c.id AND b.booking_date >= ? AND b.booking_date <= ? AND b.status NOT IN ('cancelled', 'refunded')", r.From, r.To).
		GroupBy("c.id", "c.name", "c.sort_order").
		OrderBy("c.sort_order", "c.name")
}

func (q *Queries) CountBookingsByStatus(ctx context.Context, db DBTX, r DateRange) ([]StatusCountRow, error) {
	return collectAll[StatusCountRow](ctx, db, countByStatusQuery(r))
}

func (q *Queries) SumPaidRevenue(ctx context.Context, db DBTX, r DateRange) (int64, error) {
	return scalar[int64](ctx, db, paidRevenueQuery(r))
}

func (q *Queries) CountBookingsByCourt(ctx context.Context, db DBTX, r DateRange) ([]CourtCountRow, error) {
	return collectAll[CourtCountRow](ctx, db, countByCourtQuery(r))
}
