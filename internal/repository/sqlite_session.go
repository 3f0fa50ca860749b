package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/focusflow/internal/db"
	"github.com/alexanderramin/focusflow/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

const sessionColumns = `id, task, duration, start_time, end_time, completed, tags`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.FocusSession) error {
	query := `INSERT INTO sessions (id, task, duration, start_time, end_time, completed, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if err := r.write(ctx, query, s); err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Upsert(ctx context.Context, s *domain.FocusSession) error {
	query := `INSERT OR REPLACE INTO sessions (id, task, duration, start_time, end_time, completed, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if err := r.write(ctx, query, s); err != nil {
		return fmt.Errorf("upserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) write(ctx context.Context, query string, s *domain.FocusSession) error {
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Task,
		s.Duration,
		timeToString(s.StartTime),
		timeToString(s.EndTime),
		boolToInt(s.Completed),
		encodeTags(s.Tags),
		nowUTC(),
	)
	return err
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.FocusSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var raw sessionRow
	err := row.Scan(raw.dest()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	return raw.toDomain()
}

func (r *SQLiteSessionRepo) List(ctx context.Context, limit int) ([]*domain.FocusSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY start_time DESC, id`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*domain.FocusSession{}
	for rows.Next() {
		var raw sessionRow
		if err := rows.Scan(raw.dest()...); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		s, err := raw.toDomain()
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

// sessionRow holds the raw column values of one sessions row.
type sessionRow struct {
	s         domain.FocusSession
	startTime string
	endTime   string
	tags      string
}

func (r *sessionRow) dest() []any {
	return []any{&r.s.ID, &r.s.Task, &r.s.Duration, &r.startTime, &r.endTime, &r.s.Completed, &r.tags}
}

// toDomain fills in parsed fields after scanning raw strings.
func (r *sessionRow) toDomain() (*domain.FocusSession, error) {
	var err error
	if r.s.StartTime, err = parseTime(r.startTime); err != nil {
		return nil, fmt.Errorf("parsing start_time of session %s: %w", r.s.ID, err)
	}
	if r.s.EndTime, err = parseTime(r.endTime); err != nil {
		return nil, fmt.Errorf("parsing end_time of session %s: %w", r.s.ID, err)
	}
	r.s.Tags = decodeTags(r.tags)
	s := r.s
	return &s, nil
}
