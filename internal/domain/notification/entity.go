package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindBookingCreated       Kind = "booking.created"
	KindBookingStatusChanged Kind = "booking.status_changed"
)

// Notification is an entry in the admin inbox. It is unread until ReadAt is set.
type Notification struct {
	ID         uuid.UUID
	Kind       Kind
	Title      string
	Body       string
	BookingRef *string
	ReadAt     *time.Time
	CreatedAt  time.Time
}

func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

func BookingCreated(ref, customerName, courtName string, date time.Time, slotLabel string, now time.Time) *Notification {
	return &Notification{
		ID:         uuid.New(),
		Kind:       KindBookingCreated,
		Title:      fmt.Sprintf("New booking %s", ref),
		Body:       fmt.Sprintf("%s booked %s on %s (%s)", customerName, courtName, date.Format("2006-01-02"), slotLabel),
		BookingRef: &ref,
		CreatedAt:  now,
	}
}

func BookingStatusChanged(ref, from, to string, now time.Time) *Notification {
	return &Notification{
		ID:         uuid.New(),
		Kind:       KindBookingStatusChanged,
		Title:      fmt.Sprintf("Booking %s is %s", ref, to),
		Body:       fmt.Sprintf("Status changed from %s to %s", from, to),
		BookingRef: &ref,
		CreatedAt:  now,
	}
}
