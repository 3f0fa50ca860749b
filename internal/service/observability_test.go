package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/stretchr/testify/assert"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestObserve_LevelsByCode(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  string
	}{
		{"success", nil, "level=INFO", ""},
		{"not found", commandError("delete_session", repository.ErrNotFound), "level=WARN", "code=NOT_FOUND"},
		{"storage", commandError("get_sessions", errors.New("disk I/O error")), "level=ERROR", "code=STORAGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			obs := NewLogUseCaseObserver(&buf)
			err := tt.err
			observe(context.Background(), obs, "x", time.Now(), map[string]any{"limit": 5}, &err)

			out := buf.String()
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, "use_case=x")
			assert.Contains(t, out, "limit=5")
			if tt.wantCode != "" {
				assert.Contains(t, out, tt.wantCode)
			} else {
				assert.NotContains(t, out, "code=")
			}
		})
	}
}

func TestCombineObservers(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, combineObservers(nil))
	assert.Equal(t, NoopUseCaseObserver{}, combineObservers([]UseCaseObserver{nil}))

	a, b := &recordingObserver{}, &recordingObserver{}
	assert.Same(t, a, combineObservers([]UseCaseObserver{nil, a}))

	obs := combineObservers([]UseCaseObserver{a, nil, b})
	var err error
	observe(context.Background(), obs, "start-session", time.Now(), nil, &err)

	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
	assert.True(t, b.events[0].Success())
	assert.Equal(t, ErrorCode(""), b.events[0].Code)
}

func TestNewSlogUseCaseObserver_NilLogger(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, NewSlogUseCaseObserver(nil))
}
