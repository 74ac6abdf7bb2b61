package pg

import (
	"context"
	"errors"

	"stocksinfo/internal/application"

	"github.com/jackc/pgx/v5"
)

var _ application.Settings = (*SettingsRepo)(nil)

type SettingsRepo struct{ db *DB }

func NewSettingsRepo(db *DB) *SettingsRepo { return &SettingsRepo{db: db} }

func (r *SettingsRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var out []byte
	err := r.db.Pool.QueryRow(ctx, `SELECT value FROM settings WHERE key=$1`, key).Scan(&out)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, application.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SettingsRepo) Set(ctx context.Context, key string, value []byte) error {
	const up = `
        INSERT INTO settings(key, value, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE
          SET value=EXCLUDED.value, updated_at=EXCLUDED.updated_at`
	_, err := r.db.Pool.Exec(ctx, up, key, value)
	return err
}

func (r *SettingsRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM settings WHERE key=$1`, key)
	return err
}

func (r *SettingsRepo) Ping(ctx context.Context) error { return r.db.Ping(ctx) }

func (r *SettingsRepo) Close() error {
	r.db.Close()
	return nil
}
