package domain

import "time"

// FocusSession is one recorded interval of focused work.
type FocusSession struct {
	ID        string    `json:"id"`
	Task      string    `json:"task"`
	Duration  int       `json:"duration"` // minutes
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Completed bool      `json:"completed"`
	Tags      []string  `json:"tags"`
}

// HasTag reports whether the session carries tag.
func (s *FocusSession) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Validate checks the record invariants: a non-empty ID, a non-negative
// duration, and an end time that does not precede the start time when both
// are set.
func (s *FocusSession) Validate() error {
	if s.ID == "" {
		return ErrSessionMissingID
	}
	if s.Duration < 0 {
		return ErrNegativeDuration
	}
	if !s.StartTime.IsZero() && !s.EndTime.IsZero() && s.EndTime.Before(s.StartTime) {
		return ErrEndBeforeStart
	}
	return nil
}
