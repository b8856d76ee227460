package commands

import (
	"context"
	"log/slog"
	"strings"

	"padel-booking/internal/domain/setting"
	reqdto "padel-booking/internal/handler/dto/request"
	"padel-booking/internal/pkg/clock"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidSettings = errs.New("invalid settings")
	ErrNothingToUpdate = errs.New("no settings supplied")
)

type SettingsCommands interface {
	Update(ctx context.Context, req reqdto.UpdateSettingsRequest, actorID uuid.UUID) (setting.Settings, error)
	// SetBookingWindow stores an explicit open or closed state; the message is kept when omitted.
	SetBookingWindow(ctx context.Context, req reqdto.BookingWindowRequest, actorID uuid.UUID) (setting.BookingWindow, error)
}

type settingsCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewSettingsCommands(uow shared.UnitOfWork, clock clock.Clock, logger *slog.Logger) SettingsCommands {
	return &settingsCommandsImpl{uow: uow, clock: clock, logger: logger}
}

func (u *settingsCommandsImpl) Update(ctx context.Context, req reqdto.UpdateSettingsRequest, actorID uuid.UUID) (setting.Settings, error) {
	if req.IsEmpty() {
		return setting.Settings{}, ErrNothingToUpdate
	}

	var saved setting.Settings
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().Settings(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		next := req.Apply(current)
		next.Currency = strings.ToUpper(strings.TrimSpace(next.Currency))
		if err := next.Validate(); err != nil {
			return errs.Mark(err, ErrInvalidSettings)
		}
		if err := tx.Settings().Save(ctx, next.ToMap(), u.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		saved = next
		return nil
	})
	if err != nil {
		return setting.Settings{}, err
	}
	u.logger.InfoContext(ctx, "settings updated", "actor_id", actorID)
	return saved, nil
}

func (u *settingsCommandsImpl) SetBookingWindow(ctx context.Context, req reqdto.BookingWindowRequest, actorID uuid.UUID) (setting.BookingWindow, error) {
	if req.Open == nil {
		return setting.BookingWindow{}, ErrInvalidSettings
	}

	var window setting.BookingWindow
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().Settings(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		current.BookingsOpen = *req.Open
		if req.Message != nil {
			current.ClosedMessage = strings.TrimSpace(*req.Message)
		}
		values := map[string]string{setting.KeyBookingsOpen: current.ToMap()[setting.KeyBookingsOpen]}
		if req.Message != nil {
			values[setting.KeyClosedMessage] = current.ClosedMessage
		}
		if err := tx.Settings().Save(ctx, values, u.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		window = current.BookingWindow()
		return nil
	})
	if err != nil {
		return setting.BookingWindow{}, err
	}
	u.logger.InfoContext(ctx, "booking window changed", "open", window.IsOpen(), "actor_id", actorID)
	return window, nil
}
