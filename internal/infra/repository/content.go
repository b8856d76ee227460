package repository

import (
	"context"
	"time"

	"padel-booking/internal/domain/content"
	"padel-booking/internal/infra"
	"padel-booking/internal/infra/pgquery"
)

type ContentWriteQueries interface {
	UpsertContent(ctx context.Context, db pgquery.DBTX, arg pgquery.UpsertContentParams) error
	InsertContentIfMissing(ctx context.Context, db pgquery.DBTX, arg pgquery.UpsertContentParams) (bool, error)
}

type ContentRepository struct {
	queries ContentWriteQueries
	db      pgquery.DBTX
}

func NewContentRepository(queries ContentWriteQueries, db pgquery.DBTX) *ContentRepository {
	return &ContentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ContentRepository) Upsert(ctx context.Context, b *content.Block, at time.Time) error {
	if err := r.queries.UpsertContent(ctx, r.db, toContentParams(b, at)); err != nil {
		return infra.WrapRepoErr("failed to upsert content", err)
	}
	return nil
}

// InsertIfMissing reports whether a row was written.
func (r *ContentRepository) InsertIfMissing(ctx context.Context, b *content.Block, at time.Time) (bool, error) {
	inserted, err := r.queries.InsertContentIfMissing(ctx, r.db, toContentParams(b, at))
	if err != nil {
		return false, infra.WrapRepoErr("failed to seed content", err)
	}
	return inserted, nil
}

func toContentParams(b *content.Block, at time.Time) pgquery.UpsertContentParams {
	return pgquery.UpsertContentParams{
		Key:       b.Key(),
		Title:     b.Title(),
		Body:      b.Body(),
		Published: b.Published(),
		At:        at,
	}
}
