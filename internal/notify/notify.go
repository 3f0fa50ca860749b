// Package notify raises a desktop alert when a focus session completes.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/stats"
	"github.com/gen2brain/beeep"
)

const AppName = "FocusFlow"

// Notifier is told about every session the timer records.
type Notifier interface {
	SessionStopped(ctx context.Context, s domain.FocusSession, prefs domain.Settings) error
}

// Noop discards every event.
type Noop struct{}

func (Noop) SessionStopped(context.Context, domain.FocusSession, domain.Settings) error { return nil }

type sendFunc func(title, message string) error

// Desktop sends OS notifications through beeep. Sessions stopped early are
// not announced. With sound enabled the notification is an audible alert.
type Desktop struct {
	alert  sendFunc
	notify sendFunc
	logger *slog.Logger
}

// NewDesktop returns a notifier backed by the OS notification service.
func NewDesktop(logger *slog.Logger) *Desktop {
	beeep.AppName = AppName
	return newDesktop(
		func(title, message string) error { return beeep.Alert(title, message, "") },
		func(title, message string) error { return beeep.Notify(title, message, "") },
		logger,
	)
}

func newDesktop(alert, notify sendFunc, logger *slog.Logger) *Desktop {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Desktop{alert: alert, notify: notify, logger: logger}
}

func (d *Desktop) SessionStopped(ctx context.Context, s domain.FocusSession, prefs domain.Settings) error {
	if !s.Completed {
		return nil
	}
	title, message := Message(s)

	send := d.notify
	if prefs.SoundEnabled {
		// beeep has no volume control; any non-zero volume plays the system sound.
		if prefs.SoundVolume > 0 {
			send = d.alert
		}
	}
	if err := send(title, message); err != nil {
		d.logger.WarnContext(ctx, "desktop notification failed", "session_id", s.ID, "error", err)
		return fmt.Errorf("sending notification: %w", err)
	}
	return nil
}

// Message renders the notification title and body for a completed session.
func Message(s domain.FocusSession) (string, string) {
	task := s.Task
	if task == "" {
		task = "专注"
	}
	return AppName, fmt.Sprintf("%s 已完成 · %s", task, stats.FormatMinutes(s.Duration))
}
