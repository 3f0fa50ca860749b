// Package telemetry exports focus-session metrics over OTLP.
package telemetry

import (
	"context"

	"github.com/alexanderramin/focusflow/internal/domain"
)

// Recorder receives every recorded session.
type Recorder interface {
	RecordSession(ctx context.Context, s domain.FocusSession) error
	Close(ctx context.Context) error
}

// Config holds OTLP exporter settings.
type Config struct {
	Enabled     bool
	Endpoint    string
	Insecure    bool
	ServiceName string
}

// NoOpRecorder is used when telemetry is disabled or the exporter cannot be
// created.
type NoOpRecorder struct{}

func (NoOpRecorder) RecordSession(context.Context, domain.FocusSession) error { return nil }

func (NoOpRecorder) Close(context.Context) error { return nil }
