package shared

import (
	"context"
	"time"

	"padel-booking/internal/domain/booking"
	"padel-booking/internal/domain/content"
	"padel-booking/internal/domain/court"
	"padel-booking/internal/domain/notification"
	"padel-booking/internal/domain/timeslot"
	"padel-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Write repositories take the write time explicitly so every row in a transaction
// shares one timestamp.

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking, at time.Time) error
	// UpdateStatus is a compare-and-set on the previous status; it reports
	// KindConflict when another writer moved the booking first.
	UpdateStatus(ctx context.Context, b *booking.Booking, from booking.Status) error
}

type CourtRepository interface {
	Create(ctx context.Context, c *court.Court, at time.Time) error
	Update(ctx context.Context, c *court.Court, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TimeSlotRepository interface {
	Create(ctx context.Context, ts *timeslot.TimeSlot, at time.Time) error
	Update(ctx context.Context, ts *timeslot.TimeSlot, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContentRepository interface {
	Upsert(ctx context.Context, b *content.Block, at time.Time) error
	InsertIfMissing(ctx context.Context, b *content.Block, at time.Time) (bool, error)
}

type SettingRepository interface {
	Save(ctx context.Context, values map[string]string, at time.Time) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) error
	MarkRead(ctx context.Context, id uuid.UUID, at time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
	Create(ctx context.Context, u *user.User, at time.Time) error
}
