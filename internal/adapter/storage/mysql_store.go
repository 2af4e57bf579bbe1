package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shopcart/internal/port"
)

type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore creates the kv table if needed and returns the store.
func NewMySQLStore(ctx context.Context, db *sql.DB) (*MySQLStore, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			k VARCHAR(255) PRIMARY KEY,
			v TEXT NOT NULL
		)`)
	if err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &MySQLStore{db: db}, nil
}

func (m *MySQLStore) Load(ctx context.Context, key string) (string, error) {
	var val string
	err := m.db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return "", port.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("query kv: %w", err)
	}
	return val, nil
}

func (m *MySQLStore) Save(ctx context.Context, key, value string) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO kv (k, v) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE v = VALUES(v)`, key, value)
	if err != nil {
		return fmt.Errorf("upsert kv: %w", err)
	}
	return nil
}

func (m *MySQLStore) Remove(ctx context.Context, key string) error {
	if _, err := m.db.ExecContext(ctx, `DELETE FROM kv WHERE k = ?`, key); err != nil {
		return fmt.Errorf("delete kv: %w", err)
	}
	return nil
}
