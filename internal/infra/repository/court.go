package repository

import (
	"context"
	"time"

	"padel-booking/internal/domain/court"
	"padel-booking/internal/infra"
	"padel-booking/internal/infra/pgquery"
	"padel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CourtWriteQueries interface {
	FindCourtByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.CourtRow, error)
	InsertCourt(ctx context.Context, db pgquery.DBTX, arg pgquery.CourtParams) error
	UpdateCourt(ctx context.Context, db pgquery.DBTX, arg pgquery.CourtParams) (int64, error)
	DeleteCourt(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (int64, error)
}

type CourtRepository struct {
	queries CourtWriteQueries
	db      pgquery.DBTX
}

func NewCourtRepository(queries CourtWriteQueries, db pgquery.DBTX) *CourtRepository {
	return &CourtRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CourtRepository) FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error) {
	row, err := r.queries.FindCourtByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court by ID", err)
	}
	return court.ReconstructCourt(row.ID, court.Attributes{
		Name:             row.Name,
		Description:      row.Description,
		Surface:          court.Surface(row.Surface),
		HourlyPriceCents: row.HourlyPriceCents,
		IsActive:         row.IsActive,
		SortOrder:        int(row.SortOrder),
	}, row.CreatedAt, row.UpdatedAt), nil
}

func (r *CourtRepository) Create(ctx context.Context, c *court.Court, at time.Time) error {
	if err := r.queries.InsertCourt(ctx, r.db, toCourtParams(c, at)); err != nil {
		return infra.WrapRepoErr("failed to create court", err)
	}
	return nil
}

func (r *CourtRepository) Update(ctx context.Context, c *court.Court, at time.Time) error {
	affected, err := r.queries.UpdateCourt(ctx, r.db, toCourtParams(c, at))
	if err != nil {
		return infra.WrapRepoErr("failed to update court", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("court not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete fails with KindForeignKeyViolated while bookings still reference the court.
func (r *CourtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteCourt(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete court", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("court not found", nil, infra.KindNotFound)
	}
	return nil
}

func toCourtParams(c *court.Court, at time.Time) pgquery.CourtParams {
	return pgquery.CourtParams{
		ID:               c.ID(),
		Name:             c.Name(),
		Description:      c.Description(),
		Surface:          string(c.Surface()),
		HourlyPriceCents: c.HourlyPriceCents(),
		IsActive:         c.IsActive(),
		SortOrder:        int32(c.SortOrder()), // #nosec G115 -- bounded by the API
		At:               at,
	}
}
