package commands

import (
	"context"

	"padel-booking/internal/infra"
	"padel-booking/internal/pkg/clock"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.New("notification not found")

type NotificationCommands interface {
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type notificationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewNotificationCommands(uow shared.UnitOfWork, clock clock.Clock) NotificationCommands {
	return &notificationCommandsImpl{uow: uow, clock: clock}
}

func (u *notificationCommandsImpl) MarkRead(ctx context.Context, id uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Notifications().MarkRead(ctx, id, u.clock.Now())
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrNotificationNotFound)
		}
		return err
	})
}
