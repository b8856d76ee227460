package readstore

import (
	"context"

	"padel-booking/internal/infra"
	"padel-booking/internal/infra/pgquery"
	"padel-booking/internal/pkg/pgconv"
	"padel-booking/internal/usecase/queries"
)

type BookingViewQueries interface {
	FindBookingByRef(ctx context.Context, db pgquery.DBTX, ref string) (pgquery.BookingRow, error)
	ListBookings(ctx context.Context, db pgquery.DBTX, f pgquery.BookingFilter) ([]pgquery.BookingRow, error)
	CountBookings(ctx context.Context, db pgquery.DBTX, f pgquery.BookingFilter) (int64, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      pgquery.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db pgquery.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByRef always reads the current row; the success page depends on it never being cached.
func (r *BookingReadStore) FindByRef(ctx context.Context, ref string) (*queries.BookingView, error) {
	row, err := r.queries.FindBookingByRef(ctx, r.db, ref)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ref", err)
	}
	return rowToBookingView(row), nil
}

func (r *BookingReadStore) List(ctx context.Context, db pgquery.DBTX, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookings(ctx, db, toPgFilter(filter))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, rowToBookingView(row))
	}
	return views, nil
}

func (r *BookingReadStore) Count(ctx context.Context, db pgquery.DBTX, filter queries.BookingFilter) (int64, error) {
	n, err := r.queries.CountBookings(ctx, db, toPgFilter(filter))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	return n, nil
}

func toPgFilter(f queries.BookingFilter) pgquery.BookingFilter {
	pf := pgquery.BookingFilter{
		Status:  f.Status,
		CourtID: f.CourtID,
		Limit:   uint64(max(f.Limit, 0)),
		Offset:  uint64(max(f.Offset, 0)),
	}
	if f.Date != nil {
		d := pgconv.DateToPgtype(*f.Date)
		pf.Date = &d
	}
	return pf
}

func rowToBookingView(row pgquery.BookingRow) *queries.BookingView {
	return &queries.BookingView{
		ID:            row.ID,
		Ref:           row.BookingRef,
		Status:        row.Status,
		CourtID:       row.CourtID,
		CourtName:     row.CourtName,
		TimeSlotID:    row.TimeSlotID,
		StartTime:     row.StartTime,
		EndTime:       row.EndTime,
		Date:          pgconv.DateFromPgtype(row.BookingDate),
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		CustomerPhone: pgconv.StringPtrFromPgtype(row.CustomerPhone),
		Notes:         pgconv.StringPtrFromPgtype(row.Notes),
		PriceCents:    row.PriceCents,
		PaidAt:        pgconv.TimePtrFromPgtype(row.PaidAt),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
