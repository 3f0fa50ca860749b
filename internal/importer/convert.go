package importer

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/focusflow/internal/domain"
)

// Convert turns validated records into domain sessions. Call Validate first;
// Convert fails on the first unparseable timestamp.
func Convert(records []SessionImport) ([]*domain.FocusSession, error) {
	out := make([]*domain.FocusSession, 0, len(records))
	for i := range records {
		r := &records[i]
		start, err := parseOptionalTime(r.start())
		if err != nil {
			return nil, fmt.Errorf("session %s: start time: %w", r.ID, err)
		}
		end, err := parseOptionalTime(r.end())
		if err != nil {
			return nil, fmt.Errorf("session %s: end time: %w", r.ID, err)
		}
		tags := r.Tags
		if tags == nil {
			tags = []string{}
		}
		out = append(out, &domain.FocusSession{
			ID:        r.ID,
			Task:      r.Task,
			Duration:  r.Duration,
			StartTime: start.UTC(),
			EndTime:   end.UTC(),
			Completed: r.Completed,
			Tags:      tags,
		})
	}
	return out, nil
}

// Export encodes sessions as an export document.
func Export(sessions []*domain.FocusSession) ([]byte, error) {
	if sessions == nil {
		sessions = []*domain.FocusSession{}
	}
	data, err := json.Marshal(sessions)
	if err != nil {
		return nil, fmt.Errorf("encoding sessions: %w", err)
	}
	return data, nil
}
