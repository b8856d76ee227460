package repository

import (
	"context"
	"time"

	"padel-booking/internal/domain/booking"
	"padel-booking/internal/infra"
	"padel-booking/internal/infra/pgquery"
	"padel-booking/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	InsertBooking(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertBookingParams) error
	FindBookingByRef(ctx context.Context, db pgquery.DBTX, ref string) (pgquery.BookingRow, error)
	UpdateBookingStatus(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      pgquery.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db pgquery.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking, at time.Time) error {
	customer := b.Customer()
	params := pgquery.InsertBookingParams{
		ID:            b.ID(),
		BookingRef:    b.Ref(),
		CourtID:       b.CourtID(),
		TimeSlotID:    b.TimeSlotID(),
		BookingDate:   pgconv.DateToPgtype(b.Date()),
		CustomerName:  customer.Name(),
		CustomerEmail: customer.Email(),
		CustomerPhone: pgconv.OptionalStringToPgtype(customer.Phone()),
		Notes:         pgconv.OptionalStringToPgtype(b.Notes().Value()),
		Status:        b.Status().String(),
		PriceCents:    b.PriceCents(),
		CreatedAt:     at,
	}

	if err := r.queries.InsertBooking(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByRef(ctx context.Context, ref string) (*booking.Booking, error) {
	row, err := r.queries.FindBookingByRef(ctx, r.db, ref)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ref", err)
	}
	return rowToBooking(row)
}

// UpdateStatus only matches a row that is still in status from. paid_at is written
// with COALESCE in SQL so an existing value survives.
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking, from booking.Status) error {
	affected, err := r.queries.UpdateBookingStatus(ctx, r.db, pgquery.UpdateBookingStatusParams{
		BookingRef: b.Ref(),
		FromStatus: from.String(),
		ToStatus:   b.Status().String(),
		At:         b.UpdatedAt(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

// Rows come from the database, so values are trusted and not re-validated.
func rowToBooking(row pgquery.BookingRow) (*booking.Booking, error) {
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking status in database", err)
	}
	customer, err := booking.NewCustomer(row.CustomerName, row.CustomerEmail, pgconv.StringFromPgtype(row.CustomerPhone))
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking customer in database", err)
	}
	notes, err := booking.NewNotes(pgconv.StringFromPgtype(row.Notes))
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking notes in database", err)
	}

	return booking.ReconstructBooking(
		row.ID,
		row.BookingRef,
		row.CourtID,
		row.TimeSlotID,
		pgconv.DateFromPgtype(row.BookingDate),
		customer,
		notes,
		status,
		row.PriceCents,
		pgconv.TimePtrFromPgtype(row.PaidAt),
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}
