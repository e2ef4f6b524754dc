package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (l *localRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := l.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSettingNotFound
		}
		return "", fmt.Errorf("failed to read setting %q: %w", key, err)
	}
	return value, nil
}

func (l *localRepository) PutSetting(ctx context.Context, key string, value string) error {
	query, args, err := qb.Insert("settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to write setting %q: %w", key, err)
	}
	return nil
}
