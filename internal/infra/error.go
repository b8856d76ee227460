package infra

import (
	"errors"

	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
)

// Constraint names callers branch on.
const (
	ConstraintBookingSlot = "bookings_active_slot_key"
	ConstraintBookingRef  = "bookings_booking_ref_key"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeCheckViolation      = "23514"
)

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err. An explicit kind wins; otherwise it is derived from the
// PostgreSQL error code, and no-rows errors become KindNotFound.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	e := RepositoryError{Kind: KindDBFailure, msg: msg}

	var pgErr *pgconn.PgError
	switch {
	case len(kind) > 0:
		e.Kind = kind[0]
	case pgconv.IsNoRows(err):
		e.Kind = KindNotFound
	case errors.As(err, &pgErr):
		e.Constraint = pgErr.ConstraintName
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			e.Kind = KindDuplicateKey
		case pgErrCodeForeignKeyViolation:
			e.Kind = KindForeignKeyViolated
		case pgErrCodeCheckViolation:
			e.Kind = KindConflict
		}
	}

	if err != nil {
		e.err = errs.Wrap(err, msg)
	}
	return e
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsConstraint reports whether err was raised by the named database constraint.
func IsConstraint(err error, name string) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint == name
	}
	return false
}
