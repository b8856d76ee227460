package queries

import "context"

const DefaultNotificationLimit = 50

type NotificationReadStore interface {
	List(ctx context.Context, unreadOnly bool, limit int) ([]*NotificationView, error)
	CountUnread(ctx context.Context) (int64, error)
}

type NotificationInbox struct {
	Items  []*NotificationView `json:"items"`
	Unread int64               `json:"unread"`
}

type NotificationQueries interface {
	Inbox(ctx context.Context, unreadOnly bool, limit int) (*NotificationInbox, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) Inbox(ctx context.Context, unreadOnly bool, limit int) (*NotificationInbox, error) {
	if limit <= 0 || limit > MaxPageLimit {
		limit = DefaultNotificationLimit
	}
	items, err := q.store.List(ctx, unreadOnly, limit)
	if err != nil {
		return nil, err
	}
	unread, err := q.store.CountUnread(ctx)
	if err != nil {
		return nil, err
	}
	return &NotificationInbox{Items: items, Unread: unread}, nil
}
