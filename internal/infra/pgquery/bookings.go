package pgquery

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var bookingColumns = []string{
	"b.id", "b.booking_ref", "b.court_id", "c.name AS court_name", "b.time_slot_id",
	"t.start_time", "t.end_time", "b.booking_date", "b.customer_name", "b.customer_email",
	"b.customer_phone", "b.notes", "b.status", "b.price_cents", "b.paid_at", "b.created_at", "b.updated_at",
}

type InsertBookingParams struct {
	ID            uuid.UUID
	BookingRef    string
	CourtID       uuid.UUID
	TimeSlotID    uuid.UUID
	BookingDate   pgtype.Date
	CustomerName  string
	CustomerEmail string
	CustomerPhone pgtype.Text
	Notes         pgtype.Text
	Status        string
	PriceCents    int64
	CreatedAt     time.Time
}

type BookingFilter struct {
	Status  *string
	Date    *pgtype.Date
	CourtID *uuid.UUID
	Limit   uint64
	Offset  uint64
}

type UpdateBookingStatusParams struct {
	BookingRef string
	FromStatus string
	ToStatus   string
	At         time.Time
}

func selectBookings() sq.SelectBuilder {
	return psql.Select(bookingColumns...).
		From("bookings b").
		Join("courts c ON c.id = b.court_id").
		Join("time_slots t ON t.id = b.time_slot_id")
}

func (f BookingFilter) where() sq.And {
	conds := sq.And{}
	if f.Status != nil {
		conds = append(conds, sq.Eq{"b.status": *f.Status})
	}
	if f.Date != nil {
		conds = append(conds, sq.Eq{"b.booking_date": *f.Date})
	}
	if f.CourtID != nil {
		conds = append(conds, sq.Eq{"b.court_id": *f.CourtID})
	}
	return conds
}

func (f BookingFilter) apply(b sq.SelectBuilder) sq.SelectBuilder {
	if conds := f.where(); len(conds) > 0 {
		return b.Where(conds)
	}
	return b
}

func listBookingsQuery(f BookingFilter) sq.SelectBuilder {
	return f.apply(selectBookings()).
		OrderBy("b.booking_date DESC", "t.start_time", "b.created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset)
}

func countBookingsQuery(f BookingFilter) sq.SelectBuilder {
	return f.apply(psql.Select("COUNT(*)").From("bookings b"))
}

func updateBookingStatusQuery(arg UpdateBookingStatusParams) sq.UpdateBuilder {
	b := psql.Update("bookings").
		Set("status", arg.ToStatus).
		Set("updated_at", arg.At)
	if arg.ToStatus == "paid" {
		// paid_at is written once and never moved afterwards.
		b = b.Set("paid_at", sq.Expr("COALESCE(paid_at, ?)", arg.At))
	}
	return b.Where(sq.Eq{"booking_ref": arg.BookingRef, "status": arg.FromStatus})
}

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) error {
	_, err := exec(ctx, db, psql.Insert("bookings").
		Columns(
			"id", "booking_ref", "court_id", "time_slot_id", "booking_date", "customer_name", "customer_email",
			"customer_phone", "notes", "status", "price_cents", "created_at", "updated_at",
		).
		Values(
			arg.ID, arg.BookingRef, arg.CourtID, arg.TimeSlotID, arg.BookingDate, arg.CustomerName, arg.CustomerEmail,
			arg.CustomerPhone, arg.Notes, arg.Status, arg.PriceCents, arg.CreatedAt, arg.CreatedAt,
		))
	return err
}

func (q *Queries) FindBookingByRef(ctx context.Context, db DBTX, ref string) (BookingRow, error) {
	return collectOne[BookingRow](ctx, db, selectBookings().Where(sq.Eq{"b.booking_ref": ref}))
}

func (q *Queries) ListBookings(ctx context.Context, db DBTX, f BookingFilter) ([]BookingRow, error) {
	return collectAll[BookingRow](ctx, db, listBookingsQuery(f))
}

func (q *Queries) CountBookings(ctx context.Context, db DBTX, f BookingFilter) (int64, error) {
	return scalar[int64](ctx, db, countBookingsQuery(f))
}

// UpdateBookingStatus only applies when the booking is still in FromStatus.
func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	return exec(ctx, db, updateBookingStatusQuery(arg))
}
