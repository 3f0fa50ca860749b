package service

import (
	"context"

	"github.com/alexanderramin/focusflow/internal/domain"
)

// SessionService is the command surface for the timer and session history.
// Every error it returns is a *CommandError.
type SessionService interface {
	StartSession(ctx context.Context, duration int, task string, tags []string) (*domain.TimerState, error)
	PauseSession(ctx context.Context) (*domain.TimerState, error)
	ResumeSession(ctx context.Context) (*domain.TimerState, error)
	StopSession(ctx context.Context, completed bool) (*domain.FocusSession, error)
	CurrentTimer(ctx context.Context) (*domain.TimerState, error)
	GetSessions(ctx context.Context, limit int) ([]*domain.FocusSession, error)
	DeleteSession(ctx context.Context, id string) error
	ExportData(ctx context.Context) (string, error)
	ImportData(ctx context.Context, jsonData string) (int, error)
}

// Overview bundles everything the statistics view shows.
type Overview struct {
	Summary      domain.StatsSummary
	Daily        []domain.DailyStats
	Tags         []domain.TagStats
	SessionCount int
}

type StatsService interface {
	TagStats(ctx context.Context) ([]domain.TagStats, error)
	// DailyStats returns a zero-filled window; days <= 0 means the default 30.
	DailyStats(ctx context.Context, days int) ([]domain.DailyStats, error)
	Summary(ctx context.Context) (*domain.StatsSummary, error)
	Overview(ctx context.Context, days int) (*Overview, error)
}
