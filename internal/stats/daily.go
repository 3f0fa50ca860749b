package stats

import (
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
)

// DateLayout is the key format of DailyStats.Date.
const DateLayout = "2006-01-02"

const (
	weekDays  = 7
	monthDays = 30
)

// CalculateDailyStats returns one entry per UTC day for the days ending at
// now, oldest first. Days without sessions are present with zero totals.
// Sessions starting outside the window are ignored.
func CalculateDailyStats(sessions []domain.FocusSession, days int, now time.Time) []domain.DailyStats {
	if days <= 0 {
		return []domain.DailyStats{}
	}

	today := truncateDay(now)
	result := make([]domain.DailyStats, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		key := today.AddDate(0, 0, i-days+1).Format(DateLayout)
		result[i] = domain.DailyStats{Date: key}
		index[key] = i
	}

	for _, s := range sessions {
		if s.StartTime.IsZero() {
			continue
		}
		i, ok := index[s.StartTime.UTC().Format(DateLayout)]
		if !ok {
			continue
		}
		result[i].TotalMinutes += s.Duration
		result[i].Count++
	}
	return result
}

// Summarize computes the today / last-7-days / last-30-days totals.
func Summarize(sessions []domain.FocusSession, now time.Time) domain.StatsSummary {
	var sum domain.StatsSummary
	for _, day := range CalculateDailyStats(sessions, monthDays, now) {
		sum.MonthTotal += day.TotalMinutes
		sum.MonthCount += day.Count
	}

	week := CalculateDailyStats(sessions, weekDays, now)
	for _, day := range week {
		sum.WeekTotal += day.TotalMinutes
	}
	sum.WeekAvg = sum.WeekTotal / weekDays

	today := week[len(week)-1]
	sum.TodayTotal = today.TotalMinutes
	sum.TodayCount = today.Count
	return sum
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
