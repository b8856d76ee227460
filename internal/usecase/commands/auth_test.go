//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"padel-booking/internal/pkg/clock"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/pkg/jwt"
	"padel-booking/internal/pkg/password"
	"padel-booking/internal/usecase/commands"
	"padel-booking/tests/common/builder"
	queriesmock "padel-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	now := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	hash, err := password.HashPasswordWithCost("password123", bcrypt.MinCost)
	require.NoError(t, err)
	jwtService := jwt.NewService("test-secret-key-with-enough-length", time.Hour)

	setup := func(t *testing.T) (*txMocks, *queriesmock.MockUserReadStore, commands.AuthCommands) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		store := queriesmock.NewMockUserReadStore(ctrl)
		cmds := commands.NewAuthCommands(m.uow, store, jwtService, clock.NewMockClock(now), discardLogger())
		return m, store, cmds
	}

	t.Run("issues token and records last login", func(t *testing.T) {
		m, store, cmds := setup(t)
		view := builder.NewUserBuilder().BuildReadModel()
		store.EXPECT().FindByEmail(gomock.Any(), "admin@padel.example").Return(view, hash, nil)
		m.users.EXPECT().UpdateLastLogin(gomock.Any(), view.ID, now).Return(nil)

		result, err := cmds.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())
		require.NoError(t, err)

		assert.Equal(t, view.ID, result.UserID)
		assert.NotEmpty(t, result.AccessToken)
		claims, err := jwtService.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, view.ID, claims.UserID)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("last login failure does not fail login", func(t *testing.T) {
		m, store, cmds := setup(t)
		view := builder.NewUserBuilder().BuildReadModel()
		store.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(view, hash, nil)
		m.users.EXPECT().UpdateLastLogin(gomock.Any(), view.ID, now).Return(errors.New("connection reset"))

		_, err := cmds.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, store, cmds := setup(t)
		store.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(builder.NewUserBuilder().BuildReadModel(), hash, nil)

		_, err := cmds.Login(context.Background(), builder.NewAuthBuilder().WithPassword("wrong-password").BuildDTO())
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("unknown email looks like a wrong password", func(t *testing.T) {
		_, store, cmds := setup(t)
		store.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, "", errors.New("no rows"))

		_, err := cmds.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("inactive account", func(t *testing.T) {
		_, store, cmds := setup(t)
		store.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(builder.NewUserBuilder().AsInactive().BuildReadModel(), hash, nil)

		_, err := cmds.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())
		assert.True(t, errs.Is(err, commands.ErrUserInactive))
	})

	t.Run("malformed email", func(t *testing.T) {
		_, _, cmds := setup(t)

		_, err := cmds.Login(context.Background(), builder.NewAuthBuilder().WithEmail("nope").BuildDTO())
		assert.True(t, errs.Is(err, commands.ErrAuthenticationFailed))
	})
}
