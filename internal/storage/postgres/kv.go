// Package postgres implements model.Storage on a Postgres table.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtroode/studentportal-server/internal/model"
)

var _ model.Storage = (*KVRepository)(nil)

const (
	getQuery    = `SELECT value FROM kv_entries WHERE key = $1`
	setQuery    = `INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, NOW()) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	removeQuery = `DELETE FROM kv_entries WHERE key = $1`
)

type KVRepository struct {
	db *sql.DB
}

func NewKVRepository(db *sql.DB) *KVRepository {
	return &KVRepository{
		db: db,
	}
}

func (r *KVRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, getQuery, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to get value by key: %w", err)
	}

	return value, nil
}

func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, setQuery, key, value)
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

func (r *KVRepository) Remove(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, removeQuery, key)
	if err != nil {
		return fmt.Errorf("failed to remove value: %w", err)
	}

	return nil
}
