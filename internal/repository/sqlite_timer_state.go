package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/focusflow/internal/db"
	"github.com/alexanderramin/focusflow/internal/domain"
)

// SQLiteTimerStateRepo persists the single active timer row.
type SQLiteTimerStateRepo struct {
	db db.DBTX
}

// NewSQLiteTimerStateRepo creates a new SQLiteTimerStateRepo.
func NewSQLiteTimerStateRepo(conn db.DBTX) *SQLiteTimerStateRepo {
	return &SQLiteTimerStateRepo{db: conn}
}

func (r *SQLiteTimerStateRepo) Get(ctx context.Context) (*domain.TimerState, error) {
	query := `SELECT status, task, tags, planned_minutes, started_at, resumed_at, remaining_seconds
		FROM timer_state WHERE id = 'current'`
	row := r.db.QueryRowContext(ctx, query)

	var t domain.TimerState
	var status, tags string
	var startedAt, resumedAt sql.NullString
	err := row.Scan(&status, &t.Task, &tags, &t.PlannedMinutes, &startedAt, &resumedAt, &t.RemainingSeconds)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.IdleTimer(), nil
		}
		return nil, fmt.Errorf("scanning timer state: %w", err)
	}

	t.Status = domain.TimerStatus(status)
	t.Tags = decodeTags(tags)
	if started := parseNullableTime(startedAt, time.RFC3339Nano); started != nil {
		t.StartedAt = *started
	}
	t.ResumedAt = parseNullableTime(resumedAt, time.RFC3339Nano)
	return &t, nil
}

func (r *SQLiteTimerStateRepo) Save(ctx context.Context, t *domain.TimerState) error {
	query := `INSERT OR REPLACE INTO timer_state
		(id, status, task, tags, planned_minutes, started_at, resumed_at, remaining_seconds, updated_at)
		VALUES ('current', ?, ?, ?, ?, ?, ?, ?, ?)`

	var startedAt *time.Time
	if !t.StartedAt.IsZero() {
		utc := t.StartedAt.UTC()
		startedAt = &utc
	}
	var resumedAt *time.Time
	if t.ResumedAt != nil {
		utc := t.ResumedAt.UTC()
		resumedAt = &utc
	}

	_, err := r.db.ExecContext(ctx, query,
		string(t.Status),
		t.Task,
		encodeTags(t.Tags),
		t.PlannedMinutes,
		nullableTimeToString(startedAt, storedTimeLayout),
		nullableTimeToString(resumedAt, storedTimeLayout),
		t.RemainingSeconds,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("saving timer state: %w", err)
	}
	return nil
}

func (r *SQLiteTimerStateRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM timer_state WHERE id = 'current'`); err != nil {
		return fmt.Errorf("clearing timer state: %w", err)
	}
	return nil
}
