//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"padel-booking/internal/infra"
	"padel-booking/internal/pkg/clock"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationCommands_MarkRead(t *testing.T) {
	now := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	id := uuid.New()

	t.Run("marks read at clock time", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewNotificationCommands(m.uow, clock.NewMockClock(now))
		m.notifications.EXPECT().MarkRead(gomock.Any(), id, now).Return(nil)

		require.NoError(t, cmds.MarkRead(context.Background(), id))
	})

	t.Run("unknown notification", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewNotificationCommands(m.uow, clock.NewMockClock(now))
		m.notifications.EXPECT().MarkRead(gomock.Any(), id, now).
			Return(infra.WrapRepoErr("notification not found", nil, infra.KindNotFound))

		err := cmds.MarkRead(context.Background(), id)
		assert.True(t, errs.Is(err, commands.ErrNotificationNotFound))
	})

	t.Run("database failure is passed through", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		cmds := commands.NewNotificationCommands(m.uow, clock.NewMockClock(now))
		m.notifications.EXPECT().MarkRead(gomock.Any(), id, now).
			Return(infra.WrapRepoErr("failed to mark notification read", assert.AnError))

		err := cmds.MarkRead(context.Background(), id)
		require.Error(t, err)
		assert.False(t, errs.Is(err, commands.ErrNotificationNotFound))
	})
}
