package database

import (
	"context"
	"database/sql"
	"errors"
)

const settingSelectedIndex = "selected_index"

// GetSetting returns the stored value for key, or ErrNotFound.
func (d *Database) GetSetting(ctx context.Context, key string) (string, error) {
	return getSetting(ctx, d.DB, key)
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	return setSetting(ctx, d.DB, key, value)
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func getSetting(ctx context.Context, q queryer, key string) (string, error) {
	var value sql.NullString
	err := q.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !value.Valid) {
		return "", wrapSettingErr("get", key, ErrNotFound)
	}
	if err != nil {
		return "", wrapSettingErr("get", key, err)
	}
	return value.String, nil
}

func setSetting(ctx context.Context, e execer, key, value string) error {
	_, err := e.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapSettingErr("set", key, err)
}
