package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid booking status")
	ErrInvalidTransition   = errors.New("booking status transition not allowed")
	ErrInvalidCustomerName = errors.New("customer name is required and must be at most 100 characters")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrInvalidPhone        = errors.New("phone must be at most 32 characters")
	ErrNotesTooLong        = errors.New("notes must be at most 500 characters")
	ErrDateInPast          = errors.New("booking date cannot be in the past")
	ErrNegativePrice       = errors.New("price cannot be negative")
)

type Booking struct {
	id         uuid.UUID
	ref        string
	courtID    uuid.UUID
	timeSlotID uuid.UUID
	date       time.Time
	customer   Customer
	notes      Notes
	status     Status
	priceCents int64
	paidAt     *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

type NewBookingParams struct {
	CourtID    uuid.UUID
	TimeSlotID uuid.UUID
	Date       time.Time
	Customer   Customer
	Notes      Notes
	PriceCents int64
}

// NewBooking creates a pending booking. today is the current calendar day in the business timezone.
func NewBooking(p NewBookingParams, today time.Time) (*Booking, error) {
	date := calendarDay(p.Date)
	if date.Before(calendarDay(today)) {
		return nil, ErrDateInPast
	}
	if p.PriceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:         uuid.New(),
		ref:        NewRef(),
		courtID:    p.CourtID,
		timeSlotID: p.TimeSlotID,
		date:       date,
		customer:   p.Customer,
		notes:      p.Notes,
		status:     StatusPending,
		priceCents: p.PriceCents,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	ref string,
	courtID, timeSlotID uuid.UUID,
	date time.Time,
	customer Customer,
	notes Notes,
	status Status,
	priceCents int64,
	paidAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		ref:        ref,
		courtID:    courtID,
		timeSlotID: timeSlotID,
		date:       calendarDay(date),
		customer:   customer,
		notes:      notes,
		status:     status,
		priceCents: priceCents,
		paidAt:     paidAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ChangeStatus applies an admin status change. paidAt is stamped on the first move to paid only.
func (b *Booking) ChangeStatus(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	if next == StatusPaid && b.paidAt == nil {
		paidAt := now
		b.paidAt = &paidAt
	}
	b.status = next
	b.updatedAt = now
	return nil
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) Ref() string           { return b.ref }
func (b *Booking) CourtID() uuid.UUID    { return b.courtID }
func (b *Booking) TimeSlotID() uuid.UUID { return b.timeSlotID }
func (b *Booking) Date() time.Time       { return b.date }
func (b *Booking) Customer() Customer    { return b.customer }
func (b *Booking) Notes() Notes          { return b.notes }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) PriceCents() int64     { return b.priceCents }
func (b *Booking) PaidAt() *time.Time    { return b.paidAt }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
