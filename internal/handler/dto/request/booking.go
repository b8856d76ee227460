package request

import (
	"strings"
	"time"

	"padel-booking/internal/domain/booking"
	"padel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type CreateBookingRequest struct {
	CourtID       uuid.UUID `json:"court_id" binding:"required"`
	TimeSlotID    uuid.UUID `json:"time_slot_id" binding:"required"`
	Date          string    `json:"date" binding:"required,datetime=2006-01-02"`
	CustomerName  string    `json:"customer_name" binding:"required,max=100"`
	CustomerEmail string    `json:"customer_email" binding:"required,email"`
	CustomerPhone *string   `json:"customer_phone,omitempty" binding:"omitempty,max=32"`
	Notes         *string   `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// ToDomain validates the customer fields and returns the parts of a new booking
// that come from the request. Price is filled in by the use case.
func (r CreateBookingRequest) ToDomain() (booking.NewBookingParams, error) {
	date, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return booking.NewBookingParams{}, err
	}

	phone := ""
	if r.CustomerPhone != nil {
		phone = *r.CustomerPhone
	}
	customer, err := booking.NewCustomer(r.CustomerName, r.CustomerEmail, phone)
	if err != nil {
		return booking.NewBookingParams{}, err
	}

	noteText := ""
	if r.Notes != nil {
		noteText = strings.TrimSpace(*r.Notes)
	}
	notes, err := booking.NewNotes(noteText)
	if err != nil {
		return booking.NewBookingParams{}, err
	}

	return booking.NewBookingParams{
		CourtID:    r.CourtID,
		TimeSlotID: r.TimeSlotID,
		Date:       date,
		Customer:   customer,
		Notes:      notes,
	}, nil
}

type ChangeBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid cancelled refunded completed"`
}

type BookingLookupQuery struct {
	Email      string `form:"email"`
	BookingRef string `form:"booking_ref"`
}

type BookingListQuery struct {
	Status  string `form:"status" binding:"omitempty,oneof=pending paid cancelled refunded completed"`
	Date    string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	CourtID string `form:"court_id" binding:"omitempty,uuid"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset  int    `form:"offset" binding:"omitempty,min=0"`
}

func (q BookingListQuery) ToFilter() (queries.BookingFilter, error) {
	f := queries.BookingFilter{Limit: q.Limit, Offset: q.Offset}
	if q.Status != "" {
		status := q.Status
		f.Status = &status
	}
	if q.Date != "" {
		d, err := time.Parse(DateLayout, q.Date)
		if err != nil {
			return f, err
		}
		f.Date = &d
	}
	if q.CourtID != "" {
		id, err := uuid.Parse(q.CourtID)
		if err != nil {
			return f, err
		}
		f.CourtID = &id
	}
	return f, nil
}
