package pgquery

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var courtColumns = []string{
	"id", "name", "description", "surface", "hourly_price_cents", "is_active", "sort_order", "created_at", "updated_at",
}

type CourtParams struct {
	ID               uuid.UUID
	Name             string
	Description      string
	Surface          string
	HourlyPriceCents int64
	IsActive         bool
	SortOrder        int32
	At               time.Time
}

func listCourtsQuery(activeOnly bool) sq.SelectBuilder {
	b := psql.Select(courtColumns...).From("courts")
	if activeOnly {
		b = b.Where(sq.Eq{"is_active": true})
	}
	return b.OrderBy("sort_order", "name")
}

func (q *Queries) ListCourts(ctx context.Context, db DBTX, activeOnly bool) ([]CourtRow, error) {
	return collectAll[CourtRow](ctx, db, listCourtsQuery(activeOnly))
}

func (q *Queries) FindCourtByID(ctx context.Context, db DBTX, id uuid.UUID) (CourtRow, error) {
	return collectOne[CourtRow](ctx, db, psql.Select(courtColumns...).From("courts").Where(sq.Eq{"id": id}))
}

func (q *Queries) InsertCourt(ctx context.Context, db DBTX, arg CourtParams) error {
	_, err := exec(ctx, db, psql.Insert("courts").
		Columns(courtColumns...).
		Values(arg.ID, arg.Name, arg.Description, arg.Surface, arg.HourlyPriceCents, arg.IsActive, arg.SortOrder, arg.At, arg.At))
	return err
}

func (q *Queries) UpdateCourt(ctx context.Context, db DBTX, arg CourtParams) (int64, error) {
	return exec(ctx, db, psql.Update("courts").
		SetMap(map[string]interface{}{
			"name":               arg.Name,
			"description":        arg.Description,
			"surface":            arg.Surface,
			"hourly_price_cents": arg.HourlyPriceCents,
			"is_active":          arg.IsActive,
			"sort_order":         arg.SortOrder,
			"updated_at":         arg.At,
		}).
		Where(sq.Eq{"id": arg.ID}))
}

func (q *Queries) DeleteCourt(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	return exec(ctx, db, psql.Delete("courts").Where(sq.Eq{"id": id}))
}
