// Package pgquery is the data-access client for PostgreSQL. Every method takes the
// connection (pool or transaction) explicitly so callers decide the transaction scope.
package pgquery

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func collectOne[T any](ctx context.Context, db DBTX, b sq.Sqlizer) (T, error) {
	var zero T
	query, args, err := b.ToSql()
	if err != nil {
		return zero, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
}

func collectAll[T any](ctx context.Context, db DBTX, b sq.Sqlizer) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

func scalar[T any](ctx context.Context, db DBTX, b sq.Sqlizer) (T, error) {
	var v T
	query, args, err := b.ToSql()
	if err != nil {
		return v, err
	}
	err = db.QueryRow(ctx, query, args...).Scan(&v)
	return v, err
}

// exec returns the number of affected rows.
func exec(ctx context.Context, db DBTX, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
