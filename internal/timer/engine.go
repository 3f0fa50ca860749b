// Package timer implements the focus countdown state machine.
//
// The engine is a value wrapped around a domain.TimerState so that the
// service layer can load the state from storage, apply one transition and
// persist the result. All time arithmetic goes through a Clock.
package timer

import (
	"errors"
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/google/uuid"
)

var (
	ErrAlreadyActive   = errors.New("a focus session is already in progress")
	ErrInvalidDuration = domain.ErrInvalidDuration
	ErrNotRunning      = errors.New("timer is not running")
	ErrNotPaused       = errors.New("timer is not paused")
	ErrIdle            = errors.New("no focus session in progress")
)

// Engine applies timer transitions to a TimerState.
type Engine struct {
	clock Clock
	state domain.TimerState
}

// New returns an engine starting from state. A nil state means idle.
func New(clock Clock, state *domain.TimerState) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	e := &Engine{clock: clock, state: *domain.IdleTimer()}
	if state != nil {
		e.state = *state
		e.state.Tags = copyTags(state.Tags)
	}
	return e
}

// Start begins a new countdown of duration minutes.
func (e *Engine) Start(duration int, task string, tags []string) error {
	if e.state.IsActive() {
		return ErrAlreadyActive
	}
	if duration <= 0 {
		return ErrInvalidDuration
	}
	now := e.clock.Now()
	e.state = domain.TimerState{
		Status:           domain.TimerRunning,
		Task:             task,
		Tags:             copyTags(tags),
		PlannedMinutes:   duration,
		StartedAt:        now,
		ResumedAt:        &now,
		RemainingSeconds: duration * 60,
	}
	return nil
}

// Pause freezes the remaining time.
func (e *Engine) Pause() error {
	if e.state.Status != domain.TimerRunning {
		return ErrNotRunning
	}
	e.state.RemainingSeconds = e.state.RemainingAt(e.clock.Now())
	e.state.ResumedAt = nil
	e.state.Status = domain.TimerPaused
	return nil
}

// Resume restarts a paused countdown from where it was frozen.
func (e *Engine) Resume() error {
	if e.state.Status != domain.TimerPaused {
		return ErrNotPaused
	}
	now := e.clock.Now()
	e.state.ResumedAt = &now
	e.state.Status = domain.TimerRunning
	return nil
}

// Stop ends the session and returns its record. The recorded duration is
// the focused time in whole minutes, at least one.
func (e *Engine) Stop(completed bool) (domain.FocusSession, error) {
	if !e.state.IsActive() {
		return domain.FocusSession{}, ErrIdle
	}
	now := e.clock.Now()
	minutes := e.state.ElapsedAt(now) / 60
	if minutes < 1 {
		minutes = 1
	}

	start := e.state.StartedAt
	if start.IsZero() || start.After(now) {
		start = now.Add(-time.Duration(minutes) * time.Minute)
	}
	session := domain.FocusSession{
		ID:        uuid.New().String(),
		Task:      e.state.Task,
		Duration:  minutes,
		StartTime: start,
		EndTime:   now,
		Completed: completed,
		Tags:      copyTags(e.state.Tags),
	}
	e.state = *domain.IdleTimer()
	return session, nil
}

// Snapshot returns the state with RemainingSeconds recomputed at the
// current time. The snapshot is detached from the engine.
func (e *Engine) Snapshot() domain.TimerState {
	now := e.clock.Now()
	snap := e.state
	snap.Tags = copyTags(e.state.Tags)
	snap.RemainingSeconds = e.state.RemainingAt(now)
	if snap.Status == domain.TimerRunning {
		snap.ResumedAt = &now
	}
	return snap
}

// State returns the raw state for persistence.
func (e *Engine) State() *domain.TimerState {
	s := e.state
	s.Tags = copyTags(e.state.Tags)
	return &s
}

// Expired reports whether a running countdown has reached zero.
func (e *Engine) Expired() bool {
	return e.state.Status == domain.TimerRunning && e.state.RemainingAt(e.clock.Now()) == 0
}

func copyTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
