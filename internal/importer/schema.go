package importer

import (
	"encoding/json"
	"fmt"
)

// SessionImport is one session record in an export document. Both the
// camelCase keys written by Export and the snake_case keys of older exports
// are accepted for the timestamps.
type SessionImport struct {
	ID          string   `json:"id"`
	Task        string   `json:"task"`
	Duration    int      `json:"duration"`
	StartTime   string   `json:"startTime,omitempty"`
	EndTime     string   `json:"endTime,omitempty"`
	LegacyStart string   `json:"start_time,omitempty"`
	LegacyEnd   string   `json:"end_time,omitempty"`
	Completed   bool     `json:"completed"`
	Tags        []string `json:"tags"`
}

func (s *SessionImport) start() string {
	if s.StartTime != "" {
		return s.StartTime
	}
	return s.LegacyStart
}

func (s *SessionImport) end() string {
	if s.EndTime != "" {
		return s.EndTime
	}
	return s.LegacyEnd
}

// Parse decodes an export document: a JSON array of sessions.
func Parse(data []byte) ([]SessionImport, error) {
	var records []SessionImport
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing session JSON: %w", err)
	}
	return records, nil
}
