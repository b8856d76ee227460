package repository

import (
	"context"
	"sort"
	"time"

	"padel-booking/internal/infra"
	"padel-booking/internal/infra/pgquery"

	"github.com/samber/lo"
)

type SettingWriteQueries interface {
	ListSettings(ctx context.Context, db pgquery.DBTX) ([]pgquery.SettingRow, error)
	UpsertSetting(ctx context.Context, db pgquery.DBTX, key, value string, at time.Time) error
}

type SettingRepository struct {
	queries SettingWriteQueries
	db      pgquery.DBTX
}

func NewSettingRepository(queries SettingWriteQueries, db pgquery.DBTX) *SettingRepository {
	return &SettingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SettingRepository) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.queries.ListSettings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list settings", err)
	}
	return lo.Associate(rows, func(row pgquery.SettingRow) (string, string) {
		return row.Key, row.Value
	}), nil
}

// Save upserts in key order so concurrent saves lock rows in the same order.
func (r *SettingRepository) Save(ctx context.Context, values map[string]string, at time.Time) error {
	keys := lo.Keys(values)
	sort.Strings(keys)
	for _, k := range keys {
		if err := r.queries.UpsertSetting(ctx, r.db, k, values[k], at); err != nil {
			return infra.WrapRepoErr("failed to save setting "+k, err)
		}
	}
	return nil
}
