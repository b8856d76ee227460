//go:build unit || e2e

package builder

import (
	"time"

	"padel-booking/internal/domain/booking"
	reqdto "padel-booking/internal/handler/dto/request"
	"padel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	Ref           string
	CourtID       uuid.UUID
	CourtName     string
	TimeSlotID    uuid.UUID
	StartTime     string
	EndTime       string
	Date          time.Time
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
	Status        booking.Status
	PriceCents    int64
	PaidAt        *time.Time
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	created := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:            uuid.New(),
		Ref:           "PB-7K3M9Q2X4W",
		CourtID:       uuid.New(),
		CourtName:     "Court 1",
		TimeSlotID:    uuid.New(),
		StartTime:     "18:00",
		EndTime:       "19:30",
		Date:          time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC),
		CustomerName:  "Ana García",
		CustomerEmail: "ana@example.com",
		Status:        booking.StatusPending,
		PriceCents:    3600,
		CreatedAt:     created,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

// PaidAtTime marks the booking paid at t.
func (b *BookingBuilder) PaidAtTime(t time.Time) *BookingBuilder {
	b.Status = booking.StatusPaid
	b.PaidAt = &t
	return b
}

func (b *BookingBuilder) BuildEntity() *booking.Booking {
	customer, err := booking.NewCustomer(b.CustomerName, b.CustomerEmail, b.CustomerPhone)
	if err != nil {
		panic(err)
	}
	notes, err := booking.NewNotes(b.Notes)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(
		b.ID, b.Ref, b.CourtID, b.TimeSlotID, b.Date,
		customer, notes, b.Status, b.PriceCents, b.PaidAt,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	v := &queries.BookingView{
		ID:            b.ID,
		Ref:           b.Ref,
		Status:        string(b.Status),
		CourtID:       b.CourtID,
		CourtName:     b.CourtName,
		TimeSlotID:    b.TimeSlotID,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Date:          b.Date,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		PriceCents:    b.PriceCents,
		PaidAt:        b.PaidAt,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
	if b.CustomerPhone != "" {
		phone := b.CustomerPhone
		v.CustomerPhone = &phone
	}
	if b.Notes != "" {
		notes := b.Notes
		v.Notes = &notes
	}
	return v
}

func (b *BookingBuilder) BuildCreateDTO() reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		CourtID:       b.CourtID,
		TimeSlotID:    b.TimeSlotID,
		Date:          b.Date.Format(reqdto.DateLayout),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
	}
	if b.CustomerPhone != "" {
		phone := b.CustomerPhone
		req.CustomerPhone = &phone
	}
	if b.Notes != "" {
		notes := b.Notes
		req.Notes = &notes
	}
	return req
}
