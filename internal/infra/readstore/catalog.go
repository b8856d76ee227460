package readstore

import (
	"context"

	"padel-booking/internal/infra"
	"padel-booking/internal/infra/pgquery"
	"padel-booking/internal/pkg/pgconv"
	"padel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Court, time slot and content rows share field names with their views, so they are
// mapped with copier.

type CourtViewQueries interface {
	ListCourts(ctx context.Context, db pgquery.DBTX, activeOnly bool) ([]pgquery.CourtRow, error)
	FindCourtByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.CourtRow, error)
}

type CourtReadStore struct {
	queries CourtViewQueries
	db      pgquery.DBTX
}

func NewCourtReadStore(queries CourtViewQueries, db pgquery.DBTX) *CourtReadStore {
	return &CourtReadStore{queries: queries, db: db}
}

func (r *CourtReadStore) List(ctx context.Context, activeOnly bool) ([]*queries.CourtView, error) {
	rows, err := r.queries.ListCourts(ctx, r.db, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courts", err)
	}
	views := make([]*queries.CourtView, 0, len(rows))
	if err := copier.Copy(&views, &rows); err != nil {
		return nil, infra.WrapRepoErr("failed to map courts", err)
	}
	return views, nil
}

func (r *CourtReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CourtView, error) {
	row, err := r.queries.FindCourtByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court by ID", err)
	}
	view := &queries.CourtView{}
	if err := copier.Copy(view, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map court", err)
	}
	return view, nil
}

type TimeSlotViewQueries interface {
	ListTimeSlots(ctx context.Context, db pgquery.DBTX, activeOnly bool) ([]pgquery.TimeSlotRow, error)
	FindTimeSlotByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.TimeSlotRow, error)
}

type TimeSlotReadStore struct {
	queries TimeSlotViewQueries
	db      pgquery.DBTX
}

func NewTimeSlotReadStore(queries TimeSlotViewQueries, db pgquery.DBTX) *TimeSlotReadStore {
	return &TimeSlotReadStore{queries: queries, db: db}
}

func (r *TimeSlotReadStore) List(ctx context.Context, activeOnly bool) ([]*queries.TimeSlotView, error) {
	rows, err := r.queries.ListTimeSlots(ctx, r.db, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time slots", err)
	}
	views := make([]*queries.TimeSlotView, 0, len(rows))
	if err := copier.Copy(&views, &rows); err != nil {
		return nil, infra.WrapRepoErr("failed to map time slots", err)
	}
	return views, nil
}

func (r *TimeSlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TimeSlotView, error) {
	row, err := r.queries.FindTimeSlotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("time slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find time slot by ID", err)
	}
	view := &queries.TimeSlotView{}
	if err := copier.Copy(view, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map time slot", err)
	}
	return view, nil
}

type ContentViewQueries interface {
	ListContent(ctx context.Context, db pgquery.DBTX, publishedOnly bool) ([]pgquery.ContentRow, error)
	FindContentByKey(ctx context.Context, db pgquery.DBTX, key string) (pgquery.ContentRow, error)
}

type ContentReadStore struct {
	queries ContentViewQueries
	db      pgquery.DBTX
}

func NewContentReadStore(queries ContentViewQueries, db pgquery.DBTX) *ContentReadStore {
	return &ContentReadStore{queries: queries, db: db}
}

func (r *ContentReadStore) List(ctx context.Context, publishedOnly bool) ([]*queries.ContentView, error) {
	rows, err := r.queries.ListContent(ctx, r.db, publishedOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list content", err)
	}
	views := make([]*queries.ContentView, 0, len(rows))
	if err := copier.Copy(&views, &rows); err != nil {
		return nil, infra.WrapRepoErr("failed to map content", err)
	}
	return views, nil
}

func (r *ContentReadStore) FindByKey(ctx context.Context, key string) (*queries.ContentView, error) {
	row, err := r.queries.FindContentByKey(ctx, r.db, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("content not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find content by key", err)
	}
	view := &queries.ContentView{}
	if err := copier.Copy(view, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map content", err)
	}
	return view, nil
}
