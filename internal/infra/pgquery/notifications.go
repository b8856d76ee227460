package pgquery

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var notificationColumns = []string{"id", "kind", "title", "body", "booking_ref", "read_at", "created_at"}

type InsertNotificationParams struct {
	ID         uuid.UUID
	Kind       string
	Title      string
	Body       string
	BookingRef pgtype.Text
	CreatedAt  time.Time
}

func listNotificationsQuery(unreadOnly bool, limit uint64) sq.SelectBuilder {
	b := psql.Select(notificationColumns...).From("admin_notifications")
	if unreadOnly {
		b = b.Where(sq.Eq{"read_at": nil})
	}
	return b.OrderBy("created_at DESC").Limit(limit)
}

func (q *Queries) InsertNotification(ctx context.Context, db DBTX, arg InsertNotificationParams) error {
	_, err := exec(ctx, db, psql.Insert("admin_notifications").
		Columns("id", "kind", "title", "body", "booking_ref", "created_at").
		Values(arg.ID, arg.Kind, arg.Title, arg.Body, arg.BookingRef, arg.CreatedAt))
	return err
}

func (q *Queries) ListNotifications(ctx context.Context, db DBTX, unreadOnly bool, limit uint64) ([]NotificationRow, error) {
	return collectAll[NotificationRow](ctx, db, listNotificationsQuery(unreadOnly, limit))
}

func (q *Queries) CountUnreadNotifications(ctx context.Context, db DBTX) (int64, error) {
	return scalar[int64](ctx, db, psql.Select("COUNT(*)").From("admin_notifications").Where(sq.Eq{"read_at": nil}))
}

// MarkNotificationRead keeps the first read_at when called twice.
func (q *Queries) MarkNotificationRead(ctx context.Context, db DBTX, id uuid.UUID, at time.Time) (int64, error) {
	return exec(ctx, db, psql.Update("admin_notifications").
		Set("read_at", sq.Expr("COALESCE(read_at, ?)", at)).
		Where(sq.Eq{"id": id}))
}
