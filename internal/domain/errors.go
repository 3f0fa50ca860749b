package domain

import "errors"

var (
	ErrSessionMissingID = errors.New("session id is required")
	ErrNegativeDuration = errors.New("session duration must not be negative")
	ErrEndBeforeStart   = errors.New("session end time is before start time")
	ErrInvalidDuration  = errors.New("duration must be a positive number of minutes")
	ErrInvalidStatsDays = errors.New("stats window is out of range")
)
