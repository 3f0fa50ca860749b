package testutil

import (
	"sync"
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/google/uuid"
)

// Session options
type SessionOption func(*domain.FocusSession)

func WithTags(tags ...string) SessionOption {
	return func(s *domain.FocusSession) {
		s.Tags = tags
	}
}

// WithStartTime moves the session so that it starts at t, keeping its
// duration.
func WithStartTime(t time.Time) SessionOption {
	return func(s *domain.FocusSession) {
		s.StartTime = t
		s.EndTime = t.Add(time.Duration(s.Duration) * time.Minute)
	}
}

func WithCompleted(done bool) SessionOption {
	return func(s *domain.FocusSession) {
		s.Completed = done
	}
}

func WithID(id string) SessionOption {
	return func(s *domain.FocusSession) {
		s.ID = id
	}
}

// NewTestSession returns a completed, untagged session that ended now.
func NewTestSession(task string, minutes int, opts ...SessionOption) *domain.FocusSession {
	end := time.Now().UTC().Truncate(time.Millisecond)
	s := &domain.FocusSession{
		ID:        uuid.New().String(),
		Task:      task,
		Duration:  minutes,
		StartTime: end.Add(-time.Duration(minutes) * time.Minute),
		EndTime:   end,
		Completed: true,
		Tags:      []string{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FakeClock is a manually advanced clock for timer tests.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a clock frozen at start.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
