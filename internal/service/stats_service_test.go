package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/alexanderramin/focusflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Overview(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := repository.NewSQLiteSessionRepo(database)
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	svc := NewStatsService(sessions, testutil.NewFakeClock(now))
	ctx := context.Background()

	seed := []struct {
		minutes int
		at      time.Time
		tags    []string
	}{
		{25, now.Add(-2 * time.Hour), []string{"work"}},
		{50, now.Add(-26 * time.Hour), []string{"work", "study"}},
		{30, now.Add(-10 * 24 * time.Hour), []string{"study"}},
	}
	for _, s := range seed {
		require.NoError(t, sessions.Create(ctx,
			testutil.NewTestSession("t", s.minutes, testutil.WithStartTime(s.at), testutil.WithTags(s.tags...))))
	}

	ov, err := svc.Overview(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, ov.SessionCount)
	assert.Len(t, ov.Daily, 7)
	assert.Equal(t, "2025-06-15", ov.Daily[6].Date)
	assert.Equal(t, 25, ov.Daily[6].TotalMinutes)
	assert.Equal(t, 50, ov.Daily[5].TotalMinutes)

	assert.Equal(t, 25, ov.Summary.TodayTotal)
	assert.Equal(t, 75, ov.Summary.WeekTotal)
	assert.Equal(t, 105, ov.Summary.MonthTotal)
	assert.Equal(t, 3, ov.Summary.MonthCount)

	require.Len(t, ov.Tags, 2)
	assert.Equal(t, "work", ov.Tags[0].Tag)
	assert.Equal(t, 75, ov.Tags[0].TotalMinutes)
	assert.Equal(t, 80, ov.Tags[1].TotalMinutes)
}

func TestStatsService_DailyStatsDefaultWindow(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewStatsService(repository.NewSQLiteSessionRepo(database), nil)

	daily, err := svc.DailyStats(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, daily, DefaultStatsDays)

	tags, err := svc.TagStats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tags)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.WeekTotal)
}

func TestStatsService_RejectsOversizedWindow(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewStatsService(repository.NewSQLiteSessionRepo(database), nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		days    int
		wantErr bool
	}{
		{"upper bound", MaxStatsDays, false},
		{"one past the bound", MaxStatsDays + 1, true},
		{"max int", int(^uint(0) >> 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			daily, err := svc.DailyStats(ctx, tt.days)
			ov, ovErr := svc.Overview(ctx, tt.days)
			if !tt.wantErr {
				require.NoError(t, err)
				require.NoError(t, ovErr)
				assert.Len(t, daily, tt.days)
				assert.Len(t, ov.Daily, tt.days)
				return
			}
			for _, e := range []error{err, ovErr} {
				require.Error(t, e)
				assert.Equal(t, CodeInvalidArgument, CodeOf(e))
				assert.ErrorIs(t, e, domain.ErrInvalidStatsDays)
			}
			assert.Nil(t, daily)
			assert.Nil(t, ov)
		})
	}
}

func TestStatsService_ReportsEveryQuery(t *testing.T) {
	database := testutil.NewTestDB(t)
	obs := &recordingObserver{}
	svc := NewStatsService(repository.NewSQLiteSessionRepo(database), nil, obs)
	ctx := context.Background()

	_, err := svc.TagStats(ctx)
	require.NoError(t, err)
	_, err = svc.DailyStats(ctx, 7)
	require.NoError(t, err)
	_, err = svc.Summary(ctx)
	require.NoError(t, err)
	_, err = svc.Overview(ctx, MaxStatsDays+1)
	require.Error(t, err)

	names := make([]string, len(obs.events))
	for i, e := range obs.events {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"tag-stats", "daily-stats", "stats-summary", "stats-overview"}, names)
	assert.True(t, obs.events[0].Success())
	assert.False(t, obs.events[3].Success())
	assert.Equal(t, CodeInvalidArgument, obs.events[3].Code)
}
