//go:build unit

package infra_test

import (
	"fmt"
	"testing"

	"padel-booking/internal/infra"
	"padel-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMarker = errs.New("marker")

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintBookingSlot}, want: infra.KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: infra.KindConflict},
		{name: "other pg error", err: &pgconn.PgError{Code: "57014"}, want: infra.KindDBFailure},
		{name: "plain error", err: assert.AnError, want: infra.KindDBFailure},
		{name: "explicit kind wins", err: pgx.ErrNoRows, kind: []infra.RepositoryErrorKind{infra.KindConflict}, want: infra.KindConflict},
		{name: "nil error with kind", err: nil, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tt.err, tt.kind...)
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tt.want), err.Error())
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}

	t.Run("constraint name is kept", func(t *testing.T) {
		err := infra.WrapRepoErr("insert booking", &pgconn.PgError{Code: "23505", ConstraintName: "bookings_booking_ref_key"})
		var repoErr infra.RepositoryError
		require.ErrorAs(t, err, &repoErr)
		assert.Equal(t, "bookings_booking_ref_key", repoErr.Constraint)
	})

	t.Run("IsKind on foreign errors", func(t *testing.T) {
		assert.False(t, infra.IsKind(assert.AnError, infra.KindNotFound))
	})
}

func TestIsConstraint(t *testing.T) {
	refTaken := infra.WrapRepoErr("insert booking", &pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintBookingRef})

	assert.True(t, infra.IsConstraint(refTaken, infra.ConstraintBookingRef))
	assert.False(t, infra.IsConstraint(refTaken, infra.ConstraintBookingSlot))
	assert.True(t, infra.IsConstraint(errs.Mark(refTaken, errMarker), infra.ConstraintBookingRef), "survives marking")
	assert.False(t, infra.IsConstraint(infra.WrapRepoErr("insert booking", nil, infra.KindDuplicateKey), infra.ConstraintBookingSlot))
	assert.False(t, infra.IsConstraint(assert.AnError, infra.ConstraintBookingRef))
}
