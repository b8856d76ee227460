package response

import (
	"time"

	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"

	"github.com/samber/lo"
)

const dateLayout = "2006-01-02"

type CreateBookingResponse struct {
	BookingRef string `json:"booking_ref"`
	Status     string `json:"status"`
	Date       string `json:"date"`
	PriceCents int64  `json:"price_cents"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingRef: r.Ref,
		Status:     r.Status.String(),
		Date:       r.Date.Format(dateLayout),
		PriceCents: r.PriceCents,
	}
}

// BookingResponse is what a customer sees about their own booking.
type BookingResponse struct {
	BookingRef   string     `json:"booking_ref"`
	Status       string     `json:"status"`
	CourtName    string     `json:"court_name"`
	Date         string     `json:"date"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	CustomerName string     `json:"customer_name"`
	PriceCents   int64      `json:"price_cents"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		BookingRef:   v.Ref,
		Status:       v.Status,
		CourtName:    v.CourtName,
		Date:         v.Date.Format(dateLayout),
		StartTime:    v.StartTime,
		EndTime:      v.EndTime,
		CustomerName: v.CustomerName,
		PriceCents:   v.PriceCents,
		PaidAt:       v.PaidAt,
	}
}

type SuccessPageResponse struct {
	Granted     bool             `json:"granted"`
	Booking     *BookingResponse `json:"booking,omitempty"`
	RedirectURL string           `json:"redirect_url,omitempty"`
}

func FromSuccessPage(r *queries.SuccessPageResult) *SuccessPageResponse {
	if !r.Granted || r.Booking == nil {
		return &SuccessPageResponse{Granted: false, RedirectURL: r.RedirectURL}
	}
	return &SuccessPageResponse{Granted: true, Booking: FromBookingView(r.Booking)}
}

type AdminBookingResponse struct {
	BookingResponse
	ID            string    `json:"id"`
	CourtID       string    `json:"court_id"`
	TimeSlotID    string    `json:"time_slot_id"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromAdminBookingView(v *queries.BookingView) *AdminBookingResponse {
	return &AdminBookingResponse{
		BookingResponse: *FromBookingView(v),
		ID:              v.ID.String(),
		CourtID:         v.CourtID.String(),
		TimeSlotID:      v.TimeSlotID.String(),
		CustomerEmail:   v.CustomerEmail,
		CustomerPhone:   lo.FromPtr(v.CustomerPhone),
		Notes:           lo.FromPtr(v.Notes),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

type BookingListResponse struct {
	Bookings []*AdminBookingResponse `json:"bookings"`
	Total    int64                   `json:"total"`
	Limit    int                     `json:"limit"`
	Offset   int                     `json:"offset"`
}

func FromBookingPage(p *queries.BookingPage) *BookingListResponse {
	return &BookingListResponse{
		Bookings: lo.Map(p.Items, func(v *queries.BookingView, _ int) *AdminBookingResponse {
			return FromAdminBookingView(v)
		}),
		Total:  p.Total,
		Limit:  p.Limit,
		Offset: p.Offset,
	}
}
