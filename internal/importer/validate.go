package importer

import (
	"fmt"
	"time"
)

// Validate checks every record and returns all problems found. An empty
// result means the whole document can be imported.
func Validate(records []SessionImport) []error {
	var errs []error
	seen := make(map[string]int, len(records))

	for i := range records {
		r := &records[i]
		prefix := fmt.Sprintf("sessions[%d]", i)

		if r.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if first, dup := seen[r.ID]; dup {
			errs = append(errs, fmt.Errorf("%s.id %q duplicates sessions[%d]", prefix, r.ID, first))
		} else {
			seen[r.ID] = i
		}

		if r.Duration < 0 {
			errs = append(errs, fmt.Errorf("%s.duration must be >= 0 (got %d)", prefix, r.Duration))
		}

		start, startErr := parseOptionalTime(r.start())
		if startErr != nil {
			errs = append(errs, fmt.Errorf("%s.startTime: invalid timestamp %q (expected RFC 3339)", prefix, r.start()))
		}
		end, endErr := parseOptionalTime(r.end())
		if endErr != nil {
			errs = append(errs, fmt.Errorf("%s.endTime: invalid timestamp %q (expected RFC 3339)", prefix, r.end()))
		}
		if startErr == nil && endErr == nil && !start.IsZero() && !end.IsZero() && end.Before(start) {
			errs = append(errs, fmt.Errorf("%s.endTime %q is before startTime %q", prefix, r.end(), r.start()))
		}
	}
	return errs
}

func parseOptionalTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
