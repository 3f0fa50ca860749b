package formatter

import (
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/stats"
)

// FormatHistory renders sessions as a table in the order given.
func FormatHistory(sessions []*domain.FocusSession, now time.Time) string {
	if len(sessions) == 0 {
		return Dim("No sessions recorded yet.") + "\n"
	}

	var lastEnd time.Time
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		if s.EndTime.After(lastEnd) {
			lastEnd = s.EndTime
		}
		task := s.Task
		if task == "" {
			task = Dim("(untitled)")
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			HumanDateFrom(s.StartTime, now),
			ClockRange(s.StartTime, s.EndTime),
			task,
			stats.FormatMinutes(s.Duration),
			TagList(s.Tags),
			CompletedPill(s.Completed),
		})
	}

	out := Header("History") + "\n" +
		RenderTable([]string{"ID", "DATE", "TIME", "TASK", "DURATION", "TAGS", "STATUS"}, rows)
	if !lastEnd.IsZero() {
		out += "\n" + Dim("Last session ended "+HumanTimestampFrom(lastEnd, now)) + "\n"
	}
	return out
}
