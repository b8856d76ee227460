//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"padel-booking/internal/domain/setting"
	reqdto "padel-booking/internal/handler/dto/request"
	"padel-booking/internal/pkg/clock"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettingsCommands(t *testing.T) {
	now := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	actor := uuid.New()
	setup := func(t *testing.T) (*txMocks, commands.SettingsCommands) {
		m := newTxMocks(gomock.NewController(t))
		return m, commands.NewSettingsCommands(m.uow, clock.NewMockClock(now), discardLogger())
	}

	t.Run("partial update keeps other values", func(t *testing.T) {
		m, cmds := setup(t)
		m.reads.EXPECT().Settings(gomock.Any()).Return(setting.Defaults(), nil)
		m.settings.EXPECT().Save(gomock.Any(), gomock.Any(), now).
			DoAndReturn(func(_ context.Context, values map[string]string, _ time.Time) error {
				assert.Equal(t, "Padel Club", values[setting.KeyBusinessName])
				assert.Equal(t, "GBP", values[setting.KeyCurrency])
				return nil
			})

		saved, err := cmds.Update(context.Background(), reqdto.UpdateSettingsRequest{Currency: lo.ToPtr("gbp")}, actor)
		require.NoError(t, err)
		assert.Equal(t, "GBP", saved.Currency)
		assert.True(t, saved.BookingsOpen)
	})

	t.Run("empty update", func(t *testing.T) {
		_, cmds := setup(t)
		_, err := cmds.Update(context.Background(), reqdto.UpdateSettingsRequest{}, actor)
		assert.True(t, errs.Is(err, commands.ErrNothingToUpdate))
	})

	t.Run("invalid contact email", func(t *testing.T) {
		m, cmds := setup(t)
		m.reads.EXPECT().Settings(gomock.Any()).Return(setting.Defaults(), nil)

		_, err := cmds.Update(context.Background(), reqdto.UpdateSettingsRequest{ContactEmail: lo.ToPtr("front desk")}, actor)
		assert.True(t, errs.Is(err, commands.ErrInvalidSettings))
	})

	t.Run("close booking window with message", func(t *testing.T) {
		m, cmds := setup(t)
		m.reads.EXPECT().Settings(gomock.Any()).Return(setting.Defaults(), nil)
		m.settings.EXPECT().Save(gomock.Any(), map[string]string{
			setting.KeyBookingsOpen:  "false",
			setting.KeyClosedMessage: "Back in September",
		}, now).Return(nil)

		window, err := cmds.SetBookingWindow(context.Background(), reqdto.BookingWindowRequest{
			Open:    lo.ToPtr(false),
			Message: lo.ToPtr("Back in September"),
		}, actor)
		require.NoError(t, err)
		assert.False(t, window.IsOpen())
		assert.Equal(t, "Back in September", window.Message())
	})

	t.Run("reopen keeps stored message", func(t *testing.T) {
		m, cmds := setup(t)
		m.reads.EXPECT().Settings(gomock.Any()).Return(setting.Defaults(), nil)
		m.settings.EXPECT().Save(gomock.Any(), map[string]string{setting.KeyBookingsOpen: "true"}, now).Return(nil)

		window, err := cmds.SetBookingWindow(context.Background(), reqdto.BookingWindowRequest{Open: lo.ToPtr(true)}, actor)
		require.NoError(t, err)
		assert.True(t, window.IsOpen())
		assert.Empty(t, window.Message())
	})
}
