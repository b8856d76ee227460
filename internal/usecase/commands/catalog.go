package commands

import (
	"context"
	"log/slog"

	"padel-booking/internal/domain/court"
	"padel-booking/internal/domain/timeslot"
	reqdto "padel-booking/internal/handler/dto/request"
	"padel-booking/internal/infra"
	"padel-booking/internal/pkg/clock"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCourt      = errs.New("invalid court")
	ErrCourtNotFound     = errs.New("court not found")
	ErrCourtNameTaken    = errs.New("court name already in use")
	ErrCourtInUse        = errs.New("court has bookings")
	ErrInvalidTimeSlot   = errs.New("invalid time slot")
	ErrTimeSlotNotFound  = errs.New("time slot not found")
	ErrTimeSlotDuplicate = errs.New("time slot already exists")
	ErrTimeSlotInUse     = errs.New("time slot has bookings")
)

type CatalogCommands interface {
	CreateCourt(ctx context.Context, req reqdto.CourtRequest) (uuid.UUID, error)
	UpdateCourt(ctx context.Context, id uuid.UUID, req reqdto.CourtRequest) error
	DeleteCourt(ctx context.Context, id uuid.UUID) error
	CreateTimeSlot(ctx context.Context, req reqdto.TimeSlotRequest) (uuid.UUID, error)
	UpdateTimeSlot(ctx context.Context, id uuid.UUID, req reqdto.TimeSlotRequest) error
	DeleteTimeSlot(ctx context.Context, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewCatalogCommands(uow shared.UnitOfWork, clock clock.Clock, logger *slog.Logger) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clock, logger: logger}
}

func (u *catalogCommandsImpl) CreateCourt(ctx context.Context, req reqdto.CourtRequest) (uuid.UUID, error) {
	c, err := court.NewCourt(req.ToAttributes())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCourt)
	}
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return courtWriteErr(tx.Courts().Create(ctx, c, u.clock.Now()))
	})
	if err != nil {
		return uuid.Nil, err
	}
	u.logger.InfoContext(ctx, "court created", "court_id", c.ID(), "name", c.Name())
	return c.ID(), nil
}

func (u *catalogCommandsImpl) UpdateCourt(ctx context.Context, id uuid.UUID, req reqdto.CourtRequest) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Reads().CourtByID(ctx, id)
		if err != nil {
			return courtWriteErr(err)
		}
		if err := c.Update(req.ToAttributes()); err != nil {
			return errs.Mark(err, ErrInvalidCourt)
		}
		return courtWriteErr(tx.Courts().Update(ctx, c, u.clock.Now()))
	})
}

func (u *catalogCommandsImpl) DeleteCourt(ctx context.Context, id uuid.UUID) error {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return courtWriteErr(tx.Courts().Delete(ctx, id))
	})
	if err != nil {
		return err
	}
	u.logger.InfoContext(ctx, "court deleted", "court_id", id)
	return nil
}

func courtWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrCourtNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, ErrCourtNameTaken)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, ErrCourtInUse)
	default:
		return errs.Mark(err, ErrDatabaseOperation)
	}
}

func (u *catalogCommandsImpl) CreateTimeSlot(ctx context.Context, req reqdto.TimeSlotRequest) (uuid.UUID, error) {
	ts, err := timeslot.NewTimeSlot(req.StartTime, req.EndTime, req.Label, req.Active())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidTimeSlot)
	}
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return timeSlotWriteErr(tx.TimeSlots().Create(ctx, ts, u.clock.Now()))
	})
	if err != nil {
		return uuid.Nil, err
	}
	u.logger.InfoContext(ctx, "time slot created", "time_slot_id", ts.ID(), "label", ts.Label())
	return ts.ID(), nil
}

func (u *catalogCommandsImpl) UpdateTimeSlot(ctx context.Context, id uuid.UUID, req reqdto.TimeSlotRequest) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ts, err := tx.Reads().TimeSlotByID(ctx, id)
		if err != nil {
			return timeSlotWriteErr(err)
		}
		if err := ts.Update(req.StartTime, req.EndTime, req.Label, req.Active()); err != nil {
			return errs.Mark(err, ErrInvalidTimeSlot)
		}
		return timeSlotWriteErr(tx.TimeSlots().Update(ctx, ts, u.clock.Now()))
	})
}

func (u *catalogCommandsImpl) DeleteTimeSlot(ctx context.Context, id uuid.UUID) error {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return timeSlotWriteErr(tx.TimeSlots().Delete(ctx, id))
	})
	if err != nil {
		return err
	}
	u.logger.InfoContext(ctx, "time slot deleted", "time_slot_id", id)
	return nil
}

func timeSlotWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrTimeSlotNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, ErrTimeSlotDuplicate)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, ErrTimeSlotInUse)
	default:
		return errs.Mark(err, ErrDatabaseOperation)
	}
}
