package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/focusflow/internal/db"
)

// SQLiteKeyValueRepo implements KeyValueRepo on the kv_store table.
type SQLiteKeyValueRepo struct {
	db db.DBTX
}

// NewSQLiteKeyValueRepo creates a new SQLiteKeyValueRepo.
func NewSQLiteKeyValueRepo(conn db.DBTX) *SQLiteKeyValueRepo {
	return &SQLiteKeyValueRepo{db: conn}
}

func (r *SQLiteKeyValueRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, true, nil
}

func (r *SQLiteKeyValueRepo) Put(ctx context.Context, key, value string) error {
	query := `INSERT OR REPLACE INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, key, value, nowUTC()); err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}
