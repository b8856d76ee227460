//go:build unit

package jwt

import (
	"testing"
	"time"

	"padel-booking/internal/domain/user"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	newService := func(now time.Time) *Service {
		s := NewService("unit-test-secret", time.Hour)
		s.now = func() time.Time { return now }
		return s
	}

	t.Run("round trip keeps user id and role", func(t *testing.T) {
		s := newService(base)
		id := uuid.New()

		token, expiresAt, err := s.GenerateToken(id, user.RoleOperator)
		require.NoError(t, err)
		assert.Equal(t, base.Add(time.Hour), expiresAt)

		claims, err := s.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, claims.UserID)
		assert.Equal(t, "operator", claims.Role)
		assert.Equal(t, id.String(), claims.Subject)
	})

	t.Run("expired token", func(t *testing.T) {
		token, _, err := newService(base).GenerateToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		_, err = newService(base.Add(2 * time.Hour)).ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := newService(base).GenerateToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		other := NewService("another-secret", time.Hour)
		other.now = func() time.Time { return base }
		_, err = other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		s := newService(base)
		claims := Claims{
			UserID: uuid.New(),
			Role:   "superuser",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    issuer,
				ExpiresAt: gojwt.NewNumericDate(base.Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(s.secretKey)
		require.NoError(t, err)

		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := newService(base).ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
