package shared

import (
	"context"

	"padel-booking/internal/domain/booking"
	"padel-booking/internal/domain/court"
	"padel-booking/internal/domain/setting"
	"padel-booking/internal/domain/timeslot"
	"padel-booking/internal/infra/pgquery"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Courts() CourtRepository
	TimeSlots() TimeSlotRepository
	Content() ContentRepository
	Settings() SettingRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() pgquery.DBTX
}

// CommandReads loads aggregates for the write side. Missing rows surface as
// infra.KindNotFound repository errors.
type CommandReads interface {
	BookingByRef(ctx context.Context, ref string) (*booking.Booking, error)
	CourtByID(ctx context.Context, id uuid.UUID) (*court.Court, error)
	TimeSlotByID(ctx context.Context, id uuid.UUID) (*timeslot.TimeSlot, error)
	Settings(ctx context.Context) (setting.Settings, error)
}
