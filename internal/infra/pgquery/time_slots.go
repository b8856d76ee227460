package pgquery

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var timeSlotColumns = []string{"id", "start_time", "end_time", "label", "is_active", "created_at", "updated_at"}

type TimeSlotParams struct {
	ID        uuid.UUID
	StartTime string
	EndTime   string
	Label     string
	IsActive  bool
	At        time.Time
}

func (q *Queries) ListTimeSlots(ctx context.Context, db DBTX, activeOnly bool) ([]TimeSlotRow, error) {
	b := psql.Select(timeSlotColumns...).From("time_slots")
	if activeOnly {
		b = b.Where(sq.Eq{"is_active": true})
	}
	return collectAll[TimeSlotRow](ctx, db, b.OrderBy("start_time", "end_time"))
}

func (q *Queries) FindTimeSlotByID(ctx context.Context, db DBTX, id uuid.UUID) (TimeSlotRow, error) {
	return collectOne[TimeSlotRow](ctx, db, psql.Select(timeSlotColumns...).From("time_slots").Where(sq.Eq{"id": id}))
}

func (q *Queries) InsertTimeSlot(ctx context.Context, db DBTX, arg TimeSlotParams) error {
	_, err := exec(ctx, db, psql.Insert("time_slots").
		Columns(timeSlotColumns...).
		Values(arg.ID, arg.StartTime, arg.EndTime, arg.Label, arg.IsActive, arg.At, arg.At))
	return err
}

func (q *Queries) UpdateTimeSlot(ctx context.Context, db DBTX, arg TimeSlotParams) (int64, error) {
	return exec(ctx, db, psql.Update("time_slots").
		Set("start_time", arg.StartTime).
		Set("end_time", arg.EndTime).
		Set("label", arg.Label).
		Set("is_active", arg.IsActive).
		Set("updated_at", arg.At).
		Where(sq.Eq{"id": arg.ID}))
}

func (q *Queries) DeleteTimeSlot(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	return exec(ctx, db, psql.Delete("time_slots").Where(sq.Eq{"id": id}))
}
