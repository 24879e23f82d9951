package store

import (
	"context"
	"database/sql"

	"gogokodo/pkg/logger"
)

// Postgres implements Store on a single upsert-only table. It is the only
// place in the codebase that speaks SQL.
type Postgres struct {
	DB *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{DB: db}
}

// EnsureSchema creates the backing table if it does not exist yet.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv_entries (
			namespace  TEXT NOT NULL,
			key        TEXT NOT NULL,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (namespace, key)
		)`)
	if err != nil {
		logger.Sugar.Errorf("Failed to ensure kv_entries schema: %v", err)
	}
	return err
}

func (s *Postgres) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	var value []byte
	err := s.DB.QueryRowContext(ctx,
		"SELECT value FROM kv_entries WHERE namespace = $1 AND key = $2",
		namespace, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to get %s/%s: %v", namespace, key, err)
		return nil, err
	}
	return value, nil
}

func (s *Postgres) Put(ctx context.Context, namespace, key string, value []byte) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO kv_entries (namespace, key, value, updated_at) VALUES ($1, $2, $3, NOW())
		ON CONFLICT (namespace, key) DO UPDATE SET value = $3, updated_at = NOW()`,
		namespace, key, value)
	if err != nil {
		logger.Sugar.Errorf("Failed to put %s/%s: %v", namespace, key, err)
	}
	return err
}
