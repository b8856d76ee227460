package pgquery

import (
	"context"
	"time"
)

func (q *Queries) ListSettings(ctx context.Context, db DBTX) ([]SettingRow, error) {
	return collectAll[SettingRow](ctx, db, psql.Select("key", "value", "updated_at").From("settings").OrderBy("key"))
}

func (q *Queries) UpsertSetting(ctx context.Context, db DBTX, key, value string, at time.Time) error {
	_, err := exec(ctx, db, psql.Insert("settings").
		Columns("key", "value", "updated_at").
		Values(key, value, at).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at"))
	return err
}
