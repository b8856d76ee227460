package queries

import (
	"context"

	"padel-booking/internal/domain/content"
	"padel-booking/internal/infra"
	"padel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCourtNotFound    = errs.New("court not found")
	ErrTimeSlotNotFound = errs.New("time slot not found")
	ErrContentNotFound  = errs.New("content not found")
)

type CourtReadStore interface {
	List(ctx context.Context, activeOnly bool) ([]*CourtView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CourtView, error)
}

type TimeSlotReadStore interface {
	List(ctx context.Context, activeOnly bool) ([]*TimeSlotView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*TimeSlotView, error)
}

type ContentReadStore interface {
	List(ctx context.Context, publishedOnly bool) ([]*ContentView, error)
	FindByKey(ctx context.Context, key string) (*ContentView, error)
}

// CatalogQueries serves courts, time slots and content blocks. The public flag hides
// inactive courts/slots and unpublished content.
type CatalogQueries interface {
	ListCourts(ctx context.Context, public bool) ([]*CourtView, error)
	GetCourt(ctx context.Context, id uuid.UUID) (*CourtView, error)
	ListTimeSlots(ctx context.Context, public bool) ([]*TimeSlotView, error)
	GetTimeSlot(ctx context.Context, id uuid.UUID) (*TimeSlotView, error)
	ListContent(ctx context.Context, public bool) ([]*ContentView, error)
	GetContent(ctx context.Context, key string, public bool) (*ContentView, error)
}

type catalogQueriesImpl struct {
	courts    CourtReadStore
	timeSlots TimeSlotReadStore
	content   ContentReadStore
}

func NewCatalogQueries(courts CourtReadStore, timeSlots TimeSlotReadStore, content ContentReadStore) CatalogQueries {
	return &catalogQueriesImpl{
		courts:    courts,
		timeSlots: timeSlots,
		content:   content,
	}
}

func (q *catalogQueriesImpl) ListCourts(ctx context.Context, public bool) ([]*CourtView, error) {
	return q.courts.List(ctx, public)
}

func (q *catalogQueriesImpl) GetCourt(ctx context.Context, id uuid.UUID) (*CourtView, error) {
	c, err := q.courts.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return c, nil
}

func (q *catalogQueriesImpl) ListTimeSlots(ctx context.Context, public bool) ([]*TimeSlotView, error) {
	return q.timeSlots.List(ctx, public)
}

func (q *catalogQueriesImpl) GetTimeSlot(ctx context.Context, id uuid.UUID) (*TimeSlotView, error) {
	ts, err := q.timeSlots.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTimeSlotNotFound
		}
		return nil, err
	}
	return ts, nil
}

func (q *catalogQueriesImpl) ListContent(ctx context.Context, public bool) ([]*ContentView, error) {
	return q.content.List(ctx, public)
}

func (q *catalogQueriesImpl) GetContent(ctx context.Context, key string, public bool) (*ContentView, error) {
	if !content.IsValidKey(key) {
		return nil, ErrContentNotFound
	}
	block, err := q.content.FindByKey(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	// Drafts are invisible to the public site.
	if public && !block.Published {
		return nil, ErrContentNotFound
	}
	return block, nil
}
