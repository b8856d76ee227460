package queries

import (
	"context"
	"log/slog"
	"strings"

	"padel-booking/internal/domain/booking"
	"padel-booking/internal/infra"
	"padel-booking/internal/infra/pgquery"
	"padel-booking/internal/pkg/clock"
	"padel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

var (
	ErrBookingNotFound      = errs.New("booking not found")
	ErrLookupParamsRequired = errs.New("email and booking_ref are required")
	ErrInvalidBookingFilter = errs.New("invalid booking filter")
	ErrBookingReadFailed    = errs.New("failed to read bookings")
)

type BookingReadStore interface {
	FindByRef(ctx context.Context, ref string) (*BookingView, error)
	List(ctx context.Context, db pgquery.DBTX, filter BookingFilter) ([]*BookingView, error)
	Count(ctx context.Context, db pgquery.DBTX, filter BookingFilter) (int64, error)
}

// ReadOnlyRunner gives a consistent snapshot across several reads.
type ReadOnlyRunner interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error
}

// SuccessPageResult carries either the booking (granted) or where to send the customer.
type SuccessPageResult struct {
	Granted     bool
	Booking     *BookingView
	RedirectURL string
}

type BookingQueries interface {
	SuccessPage(ctx context.Context, ref string) *SuccessPageResult
	Lookup(ctx context.Context, email, ref string) (*BookingView, error)
	AdminGet(ctx context.Context, ref string) (*BookingView, error)
	AdminList(ctx context.Context, filter BookingFilter) (*BookingPage, error)
}

type bookingQueriesImpl struct {
	store  BookingReadStore
	runner ReadOnlyRunner
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingQueries(store BookingReadStore, runner ReadOnlyRunner, clock clock.Clock, logger *slog.Logger) BookingQueries {
	return &bookingQueriesImpl{
		store:  store,
		runner: runner,
		clock:  clock,
		logger: logger,
	}
}

// SuccessPage never fails: a booking that cannot be loaded is treated as access denied.
func (q *bookingQueriesImpl) SuccessPage(ctx context.Context, ref string) *SuccessPageResult {
	view, err := q.store.FindByRef(ctx, booking.NormalizeRef(ref))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			q.logger.InfoContext(ctx, "success page for unknown booking", "booking_ref", ref)
		} else {
			q.logger.ErrorContext(ctx, "failed to load booking for success page", "booking_ref", ref, "error", err.Error())
		}
		return &SuccessPageResult{Granted: false, RedirectURL: booking.LookupRoute}
	}

	facts := view.AccessFacts()
	if booking.EvaluateAccess(facts, q.clock.Now()) {
		return &SuccessPageResult{Granted: true, Booking: view}
	}

	return &SuccessPageResult{
		Granted:     false,
		RedirectURL: booking.BuildLookupURL(facts.CustomerEmail, facts.BookingRef),
	}
}

// Lookup answers ErrBookingNotFound both for unknown refs and for email mismatches.
func (q *bookingQueriesImpl) Lookup(ctx context.Context, email, ref string) (*BookingView, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(ref) == "" {
		return nil, ErrLookupParamsRequired
	}

	view, err := q.store.FindByRef(ctx, booking.NormalizeRef(ref))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrBookingReadFailed)
	}

	if !booking.EmailMatches(view.CustomerEmail, email) {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) AdminGet(ctx context.Context, ref string) (*BookingView, error) {
	view, err := q.store.FindByRef(ctx, booking.NormalizeRef(ref))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrBookingReadFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) AdminList(ctx context.Context, filter BookingFilter) (*BookingPage, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	page := &BookingPage{Limit: filter.Limit, Offset: filter.Offset}
	err = q.runner.WithinReadOnly(ctx, func(ctx context.Context, db pgquery.DBTX) error {
		items, err := q.store.List(ctx, db, filter)
		if err != nil {
			return err
		}
		total, err := q.store.Count(ctx, db, filter)
		if err != nil {
			return err
		}
		page.Items = items
		page.Total = total
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrBookingReadFailed)
	}
	return page, nil
}

func normalizeFilter(f BookingFilter) (BookingFilter, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit || f.Offset < 0 {
		return f, ErrInvalidBookingFilter
	}
	if f.Status != nil {
		if _, err := booking.NewStatus(*f.Status); err != nil {
			return f, errs.Mark(err, ErrInvalidBookingFilter)
		}
	}
	if f.CourtID != nil && *f.CourtID == uuid.Nil {
		return f, ErrInvalidBookingFilter
	}
	return f, nil
}
