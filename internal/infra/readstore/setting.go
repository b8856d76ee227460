package readstore

import (
	"context"

	"padel-booking/internal/infra"
	"padel-booking/internal/infra/pgquery"

	"github.com/samber/lo"
)

type SettingQueries interface {
	ListSettings(ctx context.Context, db pgquery.DBTX) ([]pgquery.SettingRow, error)
}

type SettingReadStore struct {
	queries SettingQueries
	db      pgquery.DBTX
}

func NewSettingReadStore(queries SettingQueries, db pgquery.DBTX) *SettingReadStore {
	return &SettingReadStore{queries: queries, db: db}
}

func (r *SettingReadStore) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.queries.ListSettings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list settings", err)
	}
	return lo.Associate(rows, func(row pgquery.SettingRow) (string, string) {
		return row.Key, row.Value
	}), nil
}
