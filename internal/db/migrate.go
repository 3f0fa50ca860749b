package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := backfillCreatedAt(db); err != nil {
		return fmt.Errorf("backfilling sessions.created_at: %w", err)
	}
	return nil
}

// backfillCreatedAt fills created_at for rows written before the column
// existed, using the session end time.
func backfillCreatedAt(db *sql.DB) error {
	_, err := db.Exec(`UPDATE sessions SET created_at = end_time WHERE created_at IS NULL OR created_at = ''`)
	return err
}

var migrations = []string{
	// Matches the layout of databases written by earlier desktop builds, so
	// an existing focusflow.db can be opened in place.
	`CREATE TABLE IF NOT EXISTS sessions (
		id         TEXT PRIMARY KEY,
		task       TEXT NOT NULL,
		duration   INTEGER NOT NULL,
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		completed  BOOLEAN NOT NULL,
		tags       TEXT NOT NULL
	)`,

	`ALTER TABLE sessions ADD COLUMN created_at TEXT`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_start_time ON sessions(start_time)`,

	`CREATE TABLE IF NOT EXISTS timer_state (
		id                TEXT PRIMARY KEY CHECK(id = 'current'),
		status            TEXT NOT NULL CHECK(status IN ('idle','running','paused')),
		task              TEXT NOT NULL DEFAULT '',
		tags              TEXT NOT NULL DEFAULT '[]',
		planned_minutes   INTEGER NOT NULL DEFAULT 0,
		started_at        TEXT,
		resumed_at        TEXT,
		remaining_seconds INTEGER NOT NULL DEFAULT 0,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
