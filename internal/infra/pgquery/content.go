package pgquery

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
)

var contentColumns = []string{"key", "title", "body", "published", "updated_at"}

type UpsertContentParams struct {
	Key       string
	Title     string
	Body      string
	Published bool
	At        time.Time
}

func (q *Queries) ListContent(ctx context.Context, db DBTX, publishedOnly bool) ([]ContentRow, error) {
	b := psql.Select(contentColumns...).From("content_blocks")
	if publishedOnly {
		b = b.Where(sq.Eq{"published": true})
	}
	return collectAll[ContentRow](ctx, db, b.OrderBy("key"))
}

func (q *Queries) FindContentByKey(ctx context.Context, db DBTX, key string) (ContentRow, error) {
	return collectOne[ContentRow](ctx, db, psql.Select(contentColumns...).From("content_blocks").Where(sq.Eq{"key": key}))
}

func upsertContentQuery(arg UpsertContentParams, overwrite bool) sq.InsertBuilder {
	b := psql.Insert("content_blocks").
		Columns(contentColumns...).
		Values(arg.Key, arg.Title, arg.Body, arg.Published, arg.At)
	if overwrite {
		return b.Suffix("ON CONFLICT (key) DO UPDATE SET title = EXCLUDED.title, body = EXCLUDED.body, " +
			"published = EXCLUDED.published, updated_at = EXCLUDED.updated_at")
	}
	return b.Suffix("ON CONFLICT (key) DO NOTHING")
}

func (q *Queries) UpsertContent(ctx context.Context, db DBTX, arg UpsertContentParams) error {
	_, err := exec(ctx, db, upsertContentQuery(arg, true))
	return err
}

// InsertContentIfMissing reports whether a row was inserted.
func (q *Queries) InsertContentIfMissing(ctx context.Context, db DBTX, arg UpsertContentParams) (bool, error) {
	n, err := exec(ctx, db, upsertContentQuery(arg, false))
	return n > 0, err
}
