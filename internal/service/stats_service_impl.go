package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/alexanderramin/focusflow/internal/stats"
	"github.com/alexanderramin/focusflow/internal/timer"
)

const (
	// DefaultStatsDays is the daily-stats window used when none is given.
	DefaultStatsDays = 30
	// MaxStatsDays bounds the daily-stats window to roughly ten years.
	MaxStatsDays = 3660
)

type statsService struct {
	sessions repository.SessionRepo
	clock    timer.Clock
	observer UseCaseObserver
}

func NewStatsService(sessions repository.SessionRepo, clock timer.Clock, observers ...UseCaseObserver) StatsService {
	if clock == nil {
		clock = timer.SystemClock{}
	}
	return &statsService{sessions: sessions, clock: clock, observer: combineObservers(observers)}
}

// snapshot loads every session as values for the aggregator.
func (s *statsService) snapshot(ctx context.Context) ([]domain.FocusSession, error) {
	rows, err := s.sessions.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	out := make([]domain.FocusSession, len(rows))
	for i, r := range rows {
		out[i] = *r
	}
	return out, nil
}

func (s *statsService) TagStats(ctx context.Context) (tags []domain.TagStats, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "tag-stats", time.Now(), fields, &err)

	sessions, err := s.snapshot(ctx)
	if err != nil {
		return nil, commandError("get_tag_stats", err)
	}
	tags = stats.CalculateTagStats(sessions)
	fields["tag_count"] = len(tags)
	return tags, nil
}

// statsDays applies the default window and rejects windows longer than
// MaxStatsDays.
func statsDays(days int) (int, error) {
	switch {
	case days <= 0:
		return DefaultStatsDays, nil
	case days > MaxStatsDays:
		return 0, fmt.Errorf("%w: %d days (max %d)", domain.ErrInvalidStatsDays, days, MaxStatsDays)
	}
	return days, nil
}

func (s *statsService) DailyStats(ctx context.Context, days int) (daily []domain.DailyStats, err error) {
	fields := map[string]any{"days": days}
	defer observe(ctx, s.observer, "daily-stats", time.Now(), fields, &err)

	if days, err = statsDays(days); err != nil {
		return nil, commandError("get_stats", err)
	}
	sessions, err := s.snapshot(ctx)
	if err != nil {
		return nil, commandError("get_stats", err)
	}
	return stats.CalculateDailyStats(sessions, days, s.clock.Now()), nil
}

func (s *statsService) Summary(ctx context.Context) (summary *domain.StatsSummary, err error) {
	defer observe(ctx, s.observer, "stats-summary", time.Now(), nil, &err)

	sessions, err := s.snapshot(ctx)
	if err != nil {
		return nil, commandError("get_summary", err)
	}
	sum := stats.Summarize(sessions, s.clock.Now())
	return &sum, nil
}

func (s *statsService) Overview(ctx context.Context, days int) (ov *Overview, err error) {
	fields := map[string]any{"days": days}
	defer observe(ctx, s.observer, "stats-overview", time.Now(), fields, &err)

	if days, err = statsDays(days); err != nil {
		return nil, commandError("get_overview", err)
	}
	sessions, err := s.snapshot(ctx)
	if err != nil {
		return nil, commandError("get_overview", err)
	}
	now := s.clock.Now()
	fields["session_count"] = len(sessions)

	return &Overview{
		Summary:      stats.Summarize(sessions, now),
		Daily:        stats.CalculateDailyStats(sessions, days, now),
		Tags:         stats.CalculateTagStats(sessions),
		SessionCount: len(sessions),
	}, nil
}
