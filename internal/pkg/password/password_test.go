//go:build unit

package password_test

import (
	"testing"

	"padel-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPassword(t *testing.T) {
	hash, err := password.HashPasswordWithCost("court-secret-1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, password.ComparePassword(hash, "court-secret-1"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrInvalidPassword)

	_, err = password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}
