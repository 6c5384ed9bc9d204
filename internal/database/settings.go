package database

import (
	"context"
	"database/sql"
	"errors"
)

// Setting keys.
const (
	SettingLastSection = "last_section"
	SettingTheme       = "theme"
	SettingBodyPart    = "workout_body"
	SettingEquipment   = "workout_equipment"
)

func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	value, err := withDBContextResult(d, ctx, func(ctx context.Context) (*string, error) {
		var value *string
		err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
		return value, err
	})
	if err != nil || value == nil {
		return "", false
	}
	return *value, true
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
		return wrapErr(EntitySetting, "set "+key, 0, err)
	})
}

func (d *Database) DeleteSetting(ctx context.Context, key string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
		if err != nil {
			return wrapErr(EntitySetting, "delete "+key, 0, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return wrapErr(EntitySetting, "delete "+key, 0, ErrNotFound)
		}
		return nil
	})
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
