package repository

import (
	"context"
	"time"

	"padel-booking/internal/domain/notification"
	"padel-booking/internal/infra"
	"padel-booking/internal/infra/pgquery"
	"padel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	InsertNotification(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertNotificationParams) error
	MarkNotificationRead(ctx context.Context, db pgquery.DBTX, id uuid.UUID, at time.Time) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      pgquery.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db pgquery.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	params := pgquery.InsertNotificationParams{
		ID:         n.ID,
		Kind:       string(n.Kind),
		Title:      n.Title,
		Body:       n.Body,
		BookingRef: pgconv.StringPtrToPgtype(n.BookingRef),
		CreatedAt:  n.CreatedAt,
	}

	if err := r.queries.InsertNotification(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

// MarkRead keeps the first read time when called again.
func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID, at time.Time) error {
	affected, err := r.queries.MarkNotificationRead(ctx, r.db, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}
