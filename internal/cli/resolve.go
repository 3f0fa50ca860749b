package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveSessionID resolves a session identifier which can be:
//   - A full session ID (passed through directly)
//   - A unique prefix, as shown in the history table
func resolveSessionID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("session id is required")
	}

	sessions, err := app.Sessions.GetSessions(ctx, 0)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, s := range sessions {
		if s.ID == input {
			return s.ID, nil
		}
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}

	switch len(matches) {
	case 0:
		// Let the delete command report NOT_FOUND.
		return input, nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("session prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
