package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PostgresBlob хранит коллекции в таблице kv_blob: одна строка на ключ,
// значение - jsonb целиком. Таблицу создает миграция 00001_create_kv_blob.
type PostgresBlob struct {
	db *sqlx.DB
}

func NewPostgresBlob(db *sqlx.DB) *PostgresBlob {
	return &PostgresBlob{db: db}
}

func (p *PostgresBlob) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	query := `SELECT value FROM kv_blob WHERE key=$1`
	err := p.db.GetContext(ctx, &data, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return data, nil
}

func (p *PostgresBlob) Save(ctx context.Context, key string, data []byte) error {
	query := `
        INSERT INTO kv_blob (key, value, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	if _, err := p.db.ExecContext(ctx, query, key, data); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}
