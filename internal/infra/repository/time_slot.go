package repository

import (
	"context"
	"time"

	"padel-booking/internal/domain/timeslot"
	"padel-booking/internal/infra"
	"padel-booking/internal/infra/pgquery"
	"padel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TimeSlotWriteQueries interface {
	FindTimeSlotByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.TimeSlotRow, error)
	InsertTimeSlot(ctx context.Context, db pgquery.DBTX, arg pgquery.TimeSlotParams) error
	UpdateTimeSlot(ctx context.Context, db pgquery.DBTX, arg pgquery.TimeSlotParams) (int64, error)
	DeleteTimeSlot(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (int64, error)
}

type TimeSlotRepository struct {
	queries TimeSlotWriteQueries
	db      pgquery.DBTX
}

func NewTimeSlotRepository(queries TimeSlotWriteQueries, db pgquery.DBTX) *TimeSlotRepository {
	return &TimeSlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TimeSlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*timeslot.TimeSlot, error) {
	row, err := r.queries.FindTimeSlotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("time slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find time slot by ID", err)
	}

	start, err := timeslot.ParseClockTime(row.StartTime)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid start time in database", err)
	}
	end, err := timeslot.ParseClockTime(row.EndTime)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid end time in database", err)
	}
	return timeslot.ReconstructTimeSlot(row.ID, start, end, row.Label, row.IsActive, row.CreatedAt, row.UpdatedAt), nil
}

func (r *TimeSlotRepository) Create(ctx context.Context, ts *timeslot.TimeSlot, at time.Time) error {
	if err := r.queries.InsertTimeSlot(ctx, r.db, toTimeSlotParams(ts, at)); err != nil {
		return infra.WrapRepoErr("failed to create time slot", err)
	}
	return nil
}

func (r *TimeSlotRepository) Update(ctx context.Context, ts *timeslot.TimeSlot, at time.Time) error {
	affected, err := r.queries.UpdateTimeSlot(ctx, r.db, toTimeSlotParams(ts, at))
	if err != nil {
		return infra.WrapRepoErr("failed to update time slot", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("time slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TimeSlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteTimeSlot(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete time slot", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("time slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func toTimeSlotParams(ts *timeslot.TimeSlot, at time.Time) pgquery.TimeSlotParams {
	return pgquery.TimeSlotParams{
		ID:        ts.ID(),
		StartTime: ts.Start().String(),
		EndTime:   ts.End().String(),
		Label:     ts.Label(),
		IsActive:  ts.IsActive(),
		At:        at,
	}
}
