package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/stats"
)

const timerBarWidth = 30

// FormatTimer renders the timer view for state at now.
func FormatTimer(state *domain.TimerState, now time.Time) string {
	if state == nil || !state.IsActive() {
		return RenderBox("Timer", TimerStatusPill(domain.TimerIdle)+"\n\n"+
			Dim("No focus session in progress. Start one with: focusflow start"))
	}

	var b strings.Builder
	b.WriteString(TimerStatusPill(state.Status))
	b.WriteString("\n\n")

	task := state.Task
	if task == "" {
		task = Dim("(untitled)")
	} else {
		task = Bold(task)
	}
	b.WriteString(task + "\n")
	if len(state.Tags) > 0 {
		b.WriteString(TagList(state.Tags) + "\n")
	}
	b.WriteString("\n")

	remaining := state.RemainingAt(now)
	b.WriteString(StyleTitle.Render(Countdown(remaining)))
	b.WriteString(Dim(fmt.Sprintf("  of %s", stats.FormatMinutes(state.PlannedMinutes))))
	b.WriteString("\n")
	b.WriteString(RenderProgress(state.ProgressAt(now), timerBarWidth))

	return RenderBox("Timer", b.String())
}
