package domain

import (
	"math"
	"time"
)

// TimerState is the persisted state of the single focus timer.
//
// While running, the authoritative remaining time is RemainingSeconds minus
// the time elapsed since ResumedAt. While paused, RemainingSeconds is frozen.
type TimerState struct {
	Status           TimerStatus
	Task             string
	Tags             []string
	PlannedMinutes   int
	StartedAt        time.Time
	ResumedAt        *time.Time
	RemainingSeconds int
}

// IdleTimer returns the zero timer.
func IdleTimer() *TimerState {
	return &TimerState{Status: TimerIdle}
}

// IsActive reports whether a session is in progress (running or paused).
func (t *TimerState) IsActive() bool {
	return t.Status == TimerRunning || t.Status == TimerPaused
}

// RemainingAt returns the seconds left at now. Never negative.
func (t *TimerState) RemainingAt(now time.Time) int {
	remaining := t.RemainingSeconds
	if t.Status == TimerRunning && t.ResumedAt != nil {
		elapsed := int(math.Floor(now.Sub(*t.ResumedAt).Seconds()))
		if elapsed > 0 {
			remaining -= elapsed
		}
	}
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ElapsedAt returns the focused seconds spent so far, excluding pauses.
func (t *TimerState) ElapsedAt(now time.Time) int {
	return t.PlannedMinutes*60 - t.RemainingAt(now)
}

// ProgressAt returns the completed fraction in [0,1].
func (t *TimerState) ProgressAt(now time.Time) float64 {
	total := t.PlannedMinutes * 60
	if total <= 0 {
		return 0
	}
	return float64(t.ElapsedAt(now)) / float64(total)
}
