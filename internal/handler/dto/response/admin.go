package response

import (
	"padel-booking/internal/domain/setting"
	"padel-booking/internal/usecase/queries"
)

func FromSettings(s setting.Settings) *queries.SettingsView {
	return &queries.SettingsView{
		BusinessName:  s.BusinessName,
		ContactEmail:  s.ContactEmail,
		ContactPhone:  s.ContactPhone,
		Currency:      s.Currency,
		BookingsOpen:  s.BookingsOpen,
		ClosedMessage: s.ClosedMessage,
	}
}

func FromBookingWindow(w setting.BookingWindow) *queries.BookingWindowView {
	return &queries.BookingWindowView{Open: w.IsOpen(), Message: w.Message()}
}

type NotificationListResponse struct {
	Notifications []*queries.NotificationView `json:"notifications"`
	Unread        int64                       `json:"unread"`
}

func FromInbox(in *queries.NotificationInbox) *NotificationListResponse {
	items := in.Items
	if items == nil {
		items = []*queries.NotificationView{}
	}
	return &NotificationListResponse{Notifications: items, Unread: in.Unread}
}

type ReportSummaryResponse struct {
	From             string                      `json:"from"`
	To               string                      `json:"to"`
	StatusCounts     map[string]int64            `json:"status_counts"`
	TotalBookings    int64                       `json:"total_bookings"`
	PaidRevenueCents int64                       `json:"paid_revenue_cents"`
	Courts           []queries.CourtBookingCount `json:"courts"`
}

func FromReportSummary(r *queries.ReportSummary) *ReportSummaryResponse {
	courts := r.Courts
	if courts == nil {
		courts = []queries.CourtBookingCount{}
	}
	return &ReportSummaryResponse{
		From:             r.From.Format(dateLayout),
		To:               r.To.Format(dateLayout),
		StatusCounts:     r.StatusCounts,
		TotalBookings:    r.TotalBookings,
		PaidRevenueCents: r.PaidRevenueCents,
		Courts:           courts,
	}
}
