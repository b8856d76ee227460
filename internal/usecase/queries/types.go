package queries

import (
	"time"

	"padel-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID            uuid.UUID  `json:"id"`
	Ref           string     `json:"booking_ref"`
	Status        string     `json:"status"`
	CourtID       uuid.UUID  `json:"court_id"`
	CourtName     string     `json:"court_name"`
	TimeSlotID    uuid.UUID  `json:"time_slot_id"`
	StartTime     string     `json:"start_time"`
	EndTime       string     `json:"end_time"`
	Date          time.Time  `json:"date"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	CustomerPhone *string    `json:"customer_phone,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	PriceCents    int64      `json:"price_cents"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// AccessFacts is the snapshot EvaluateAccess decides the success page from.
func (v *BookingView) AccessFacts() booking.AccessFacts {
	return booking.AccessFacts{
		Status:        booking.Status(v.Status),
		PaidAt:        v.PaidAt,
		CustomerEmail: v.CustomerEmail,
		BookingRef:    v.Ref,
	}
}

type CourtView struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Surface          string    `json:"surface"`
	HourlyPriceCents int64     `json:"hourly_price_cents"`
	IsActive         bool      `json:"is_active"`
	SortOrder        int       `json:"sort_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type TimeSlotView struct {
	ID        uuid.UUID `json:"id"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Label     string    `json:"label"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContentView struct {
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NotificationView struct {
	ID         uuid.UUID  `json:"id"`
	Kind       string     `json:"kind"`
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	BookingRef *string    `json:"booking_ref,omitempty"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type AuthorizedUserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

type CourtBookingCount struct {
	CourtID   uuid.UUID `json:"court_id"`
	CourtName string    `json:"court_name"`
	Bookings  int64     `json:"bookings"`
}

type ReportSummary struct {
	From             time.Time           `json:"from"`
	To               time.Time           `json:"to"`
	StatusCounts     map[string]int64    `json:"status_counts"`
	TotalBookings    int64               `json:"total_bookings"`
	PaidRevenueCents int64               `json:"paid_revenue_cents"`
	Courts           []CourtBookingCount `json:"courts"`
}

type BookingFilter struct {
	Status  *string
	Date    *time.Time
	CourtID *uuid.UUID
	Limit   int
	Offset  int
}

type BookingPage struct {
	Items  []*BookingView
	Total  int64
	Limit  int
	Offset int
}
