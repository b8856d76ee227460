package commands

import (
	"context"
	"log/slog"
	"time"

	"padel-booking/internal/domain/booking"
	"padel-booking/internal/domain/court"
	"padel-booking/internal/domain/notification"
	"padel-booking/internal/domain/timeslot"
	reqdto "padel-booking/internal/handler/dto/request"
	"padel-booking/internal/infra"
	"padel-booking/internal/pkg/clock"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingsClosed    = errs.New("bookings are closed")
	ErrInvalidBooking    = errs.New("invalid booking")
	ErrCourtUnavailable  = errs.New("court not found")
	ErrSlotUnavailable   = errs.New("time slot not found")
	ErrSlotTaken         = errs.New("slot already booked")
	ErrBookingNotFound   = errs.New("booking not found")
	ErrInvalidTransition = errs.New("status transition not allowed")
	ErrConcurrentUpdate  = errs.New("booking was modified concurrently")
	ErrDatabaseOperation = errs.New("database operation failed")
)

type CreateBookingResult struct {
	ID         uuid.UUID
	Ref        string
	Status     booking.Status
	Date       time.Time
	PriceCents int64
}

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest) (*CreateBookingResult, error)
	ChangeStatus(ctx context.Context, ref string, req reqdto.ChangeBookingStatusRequest, actorID uuid.UUID) error
}

// maxRefAttempts bounds retries when a generated booking_ref is already stored.
const maxRefAttempts = 3

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	loc    *time.Location
	logger *slog.Logger
}

func NewBookingCommands(uow shared.UnitOfWork, clock clock.Clock, loc *time.Location, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		clock:  clock,
		loc:    loc,
		logger: logger,
	}
}

// Create stores a pending booking and its inbox notification in one transaction.
// The slot uniqueness is enforced by the database, not checked up front.
func (u *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest) (*CreateBookingResult, error) {
	params, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	now := u.clock.Now()
	today := clock.StartOfDay(now.In(u.loc))

	var created *booking.Booking
	for attempt := 1; ; attempt++ {
		created, err = u.insert(ctx, params, today, now)
		if err == nil || !infra.IsConstraint(err, infra.ConstraintBookingRef) {
			break
		}
		if attempt == maxRefAttempts {
			return nil, errs.Mark(err, ErrDatabaseOperation)
		}
		u.logger.WarnContext(ctx, "booking ref collision, retrying", "attempt", attempt)
	}
	if err != nil {
		return nil, err
	}

	u.logger.InfoContext(ctx, "booking created",
		"booking_ref", created.Ref(),
		"court_id", created.CourtID(),
		"date", created.Date().Format(reqdto.DateLayout))

	return &CreateBookingResult{
		ID:         created.ID(),
		Ref:        created.Ref(),
		Status:     created.Status(),
		Date:       created.Date(),
		PriceCents: created.PriceCents(),
	}, nil
}

// insert runs one attempt. A booking_ref collision comes back unmarked so Create can retry with a fresh ref.
func (u *bookingCommandsImpl) insert(ctx context.Context, params booking.NewBookingParams, today, now time.Time) (*booking.Booking, error) {
	var created *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		settings, err := tx.Reads().Settings(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		window := settings.BookingWindow()
		if !window.IsOpen() {
			return errs.Mark(errs.New(window.Message()), ErrBookingsClosed)
		}

		c, err := u.activeCourt(ctx, tx, params.CourtID)
		if err != nil {
			return err
		}
		slot, err := u.activeSlot(ctx, tx, params.TimeSlotID)
		if err != nil {
			return err
		}

		params.PriceCents = c.PriceCents(slot.Duration())
		b, err := booking.NewBooking(params, today)
		if err != nil {
			return errs.Mark(err, ErrInvalidBooking)
		}

		if err := tx.Bookings().Create(ctx, b, now); err != nil {
			if infra.IsConstraint(err, infra.ConstraintBookingSlot) {
				return errs.Mark(err, ErrSlotTaken)
			}
			if infra.IsConstraint(err, infra.ConstraintBookingRef) {
				return err
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}

		n := notification.BookingCreated(b.Ref(), b.Customer().Name(), c.Name(), b.Date(), slot.Label(), now)
		if err := tx.Notifications().Create(ctx, n); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (u *bookingCommandsImpl) activeCourt(ctx context.Context, tx shared.Tx, id uuid.UUID) (*court.Court, error) {
	c, err := tx.Reads().CourtByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtUnavailable
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	if !c.IsActive() {
		return nil, errs.Mark(court.ErrCourtNotActive, ErrCourtUnavailable)
	}
	return c, nil
}

func (u *bookingCommandsImpl) activeSlot(ctx context.Context, tx shared.Tx, id uuid.UUID) (*timeslot.TimeSlot, error) {
	ts, err := tx.Reads().TimeSlotByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotUnavailable
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	if !ts.IsActive() {
		return nil, errs.Mark(timeslot.ErrSlotNotActive, ErrSlotUnavailable)
	}
	return ts, nil
}

func (u *bookingCommandsImpl) ChangeStatus(ctx context.Context, ref string, req reqdto.ChangeBookingStatusRequest, actorID uuid.UUID) error {
	next, err := booking.NewStatus(req.Status)
	if err != nil {
		return errs.Mark(err, ErrInvalidTransition)
	}

	now := u.clock.Now()
	var from booking.Status
	var bookingRef string

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingByRef(ctx, booking.NormalizeRef(ref))
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}

		from = b.Status()
		if err := b.ChangeStatus(next, now); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err := tx.Bookings().UpdateStatus(ctx, b, from); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrConcurrentUpdate)
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}

		n := notification.BookingStatusChanged(b.Ref(), from.String(), next.String(), now)
		if err := tx.Notifications().Create(ctx, n); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		bookingRef = b.Ref()
		return nil
	})
	if err != nil {
		return err
	}

	u.logger.InfoContext(ctx, "booking status changed",
		"booking_ref", bookingRef,
		"from", from.String(),
		"to", next.String(),
		"actor_id", actorID)
	return nil
}
