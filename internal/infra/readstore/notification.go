package readstore

import (
	"context"

	"padel-booking/internal/infra"
	"padel-booking/internal/infra/pgquery"
	"padel-booking/internal/pkg/pgconv"
	"padel-booking/internal/usecase/queries"

	"github.com/samber/lo"
)

type NotificationViewQueries interface {
	ListNotifications(ctx context.Context, db pgquery.DBTX, unreadOnly bool, limit uint64) ([]pgquery.NotificationRow, error)
	CountUnreadNotifications(ctx context.Context, db pgquery.DBTX) (int64, error)
}

type NotificationReadStore struct {
	queries NotificationViewQueries
	db      pgquery.DBTX
}

func NewNotificationReadStore(queries NotificationViewQueries, db pgquery.DBTX) *NotificationReadStore {
	return &NotificationReadStore{queries: queries, db: db}
}

func (r *NotificationReadStore) List(ctx context.Context, unreadOnly bool, limit int) ([]*queries.NotificationView, error) {
	rows, err := r.queries.ListNotifications(ctx, r.db, unreadOnly, uint64(max(limit, 0)))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	return lo.Map(rows, func(row pgquery.NotificationRow, _ int) *queries.NotificationView {
		return &queries.NotificationView{
			ID:         row.ID,
			Kind:       row.Kind,
			Title:      row.Title,
			Body:       row.Body,
			BookingRef: pgconv.StringPtrFromPgtype(row.BookingRef),
			ReadAt:     pgconv.TimePtrFromPgtype(row.ReadAt),
			CreatedAt:  row.CreatedAt,
		}
	}), nil
}

func (r *NotificationReadStore) CountUnread(ctx context.Context) (int64, error) {
	n, err := r.queries.CountUnreadNotifications(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return n, nil
}
