package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/stats"
)

const dailyBarWidth = 24

// FormatSummary renders the today / week / month totals.
func FormatSummary(sum domain.StatsSummary) string {
	rows := [][]string{
		{"Today", stats.FormatMinutes(sum.TodayTotal), fmt.Sprintf("%d sessions", sum.TodayCount)},
		{"Last 7 days", stats.FormatMinutes(sum.WeekTotal), "avg " + stats.FormatMinutes(sum.WeekAvg) + "/day"},
		{"Last 30 days", stats.FormatMinutes(sum.MonthTotal), fmt.Sprintf("%d sessions", sum.MonthCount)},
	}
	return RenderTable([]string{"PERIOD", "FOCUS", ""}, rows)
}

// FormatDaily renders one bar per day, scaled to the busiest day.
func FormatDaily(daily []domain.DailyStats) string {
	if len(daily) == 0 {
		return Dim("No days in range.") + "\n"
	}
	peak := 0
	for _, d := range daily {
		if d.TotalMinutes > peak {
			peak = d.TotalMinutes
		}
	}

	var b strings.Builder
	for _, d := range daily {
		label := d.Date
		if d.Count == 0 {
			label = Dim(label)
		}
		fmt.Fprintf(&b, "%s  %s  %s\n", label, RenderBar(d.TotalMinutes, peak, dailyBarWidth), stats.FormatMinutes(d.TotalMinutes))
	}
	return b.String()
}

// FormatTags renders the per-tag breakdown.
func FormatTags(tags []domain.TagStats) string {
	if len(tags) == 0 {
		return Dim("No tagged sessions.") + "\n"
	}
	rows := make([][]string, 0, len(tags))
	for _, t := range tags {
		rows = append(rows, []string{
			StyleTag.Render("#" + t.Tag),
			stats.FormatMinutes(t.TotalMinutes),
			RenderProgress(t.Percentage/100, 20),
		})
	}
	return RenderTable([]string{"TAG", "FOCUS", "SHARE"}, rows)
}

// FormatStatistics renders the full statistics view.
func FormatStatistics(sum domain.StatsSummary, daily []domain.DailyStats, tags []domain.TagStats) string {
	var b strings.Builder
	b.WriteString(Header("Summary") + "\n")
	b.WriteString(FormatSummary(sum))
	b.WriteString("\n" + Header(fmt.Sprintf("Daily (%d days)", len(daily))) + "\n")
	b.WriteString(FormatDaily(daily))
	b.WriteString("\n" + Header("Tags") + "\n")
	b.WriteString(FormatTags(tags))
	return b.String()
}
