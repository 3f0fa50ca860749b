package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focusflow/internal/db"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/importer"
	"github.com/alexanderramin/focusflow/internal/notify"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/alexanderramin/focusflow/internal/telemetry"
	"github.com/alexanderramin/focusflow/internal/timer"
)

// SettingsSource supplies the current preferences when a session stops.
type SettingsSource interface {
	Get() domain.Settings
}

// SessionHooks are told about every stopped session after it is committed.
// Nil fields are replaced by no-ops.
type SessionHooks struct {
	Notifier notify.Notifier
	Recorder telemetry.Recorder
	Settings SettingsSource
}

type defaultSettings struct{}

func (defaultSettings) Get() domain.Settings { return domain.DefaultSettings() }

type sessionService struct {
	sessions repository.SessionRepo
	timers   repository.TimerStateRepo
	uow      db.UnitOfWork
	clock    timer.Clock
	hooks    SessionHooks
	observer UseCaseObserver
}

func NewSessionService(
	sessions repository.SessionRepo,
	timers repository.TimerStateRepo,
	uow db.UnitOfWork,
	clock timer.Clock,
	hooks SessionHooks,
	observers ...UseCaseObserver,
) SessionService {
	if clock == nil {
		clock = timer.SystemClock{}
	}
	if hooks.Notifier == nil {
		hooks.Notifier = notify.Noop{}
	}
	if hooks.Recorder == nil {
		hooks.Recorder = telemetry.NoOpRecorder{}
	}
	if hooks.Settings == nil {
		hooks.Settings = defaultSettings{}
	}
	return &sessionService{
		sessions: sessions,
		timers:   timers,
		uow:      uow,
		clock:    clock,
		hooks:    hooks,
		observer: combineObservers(observers),
	}
}

// transition loads the timer, applies fn and saves the result in one
// transaction.
func (s *sessionService) transition(ctx context.Context, fn func(e *timer.Engine) error) (*domain.TimerState, error) {
	var snap domain.TimerState
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTimers := repository.NewSQLiteTimerStateRepo(tx)

		state, err := txTimers.Get(ctx)
		if err != nil {
			return err
		}
		engine := timer.New(s.clock, state)
		if err := fn(engine); err != nil {
			return err
		}
		if err := txTimers.Save(ctx, engine.State()); err != nil {
			return err
		}
		snap = engine.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *sessionService) StartSession(ctx context.Context, duration int, task string, tags []string) (state *domain.TimerState, err error) {
	fields := map[string]any{"duration": duration, "tag_count": len(tags)}
	defer observe(ctx, s.observer, "start-session", time.Now(), fields, &err)

	state, err = s.transition(ctx, func(e *timer.Engine) error {
		return e.Start(duration, strings.TrimSpace(task), normalizeTags(tags))
	})
	return state, commandError("start_session", err)
}

func (s *sessionService) PauseSession(ctx context.Context) (state *domain.TimerState, err error) {
	defer observe(ctx, s.observer, "pause-session", time.Now(), nil, &err)

	state, err = s.transition(ctx, func(e *timer.Engine) error { return e.Pause() })
	return state, commandError("pause_session", err)
}

func (s *sessionService) ResumeSession(ctx context.Context) (state *domain.TimerState, err error) {
	defer observe(ctx, s.observer, "resume-session", time.Now(), nil, &err)

	state, err = s.transition(ctx, func(e *timer.Engine) error { return e.Resume() })
	return state, commandError("resume_session", err)
}

func (s *sessionService) StopSession(ctx context.Context, completed bool) (session *domain.FocusSession, err error) {
	fields := map[string]any{"completed": completed}
	defer observe(ctx, s.observer, "stop-session", time.Now(), fields, &err)

	var recorded domain.FocusSession
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTimers := repository.NewSQLiteTimerStateRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)

		state, err := txTimers.Get(ctx)
		if err != nil {
			return err
		}
		engine := timer.New(s.clock, state)
		recorded, err = engine.Stop(completed)
		if err != nil {
			return err
		}
		if err := txSessions.Create(ctx, &recorded); err != nil {
			return err
		}
		return txTimers.Clear(ctx)
	})
	if err != nil {
		return nil, commandError("stop_session", err)
	}
	fields["session_id"] = recorded.ID
	fields["minutes"] = recorded.Duration

	if nerr := s.hooks.Notifier.SessionStopped(ctx, recorded, s.hooks.Settings.Get()); nerr != nil {
		fields["notify_error"] = nerr.Error()
	}
	if terr := s.hooks.Recorder.RecordSession(ctx, recorded); terr != nil {
		fields["telemetry_error"] = terr.Error()
	}
	return &recorded, nil
}

func (s *sessionService) CurrentTimer(ctx context.Context) (snap *domain.TimerState, err error) {
	defer observe(ctx, s.observer, "current-timer", time.Now(), nil, &err)

	state, err := s.timers.Get(ctx)
	if err != nil {
		return nil, commandError("current_timer", err)
	}
	current := timer.New(s.clock, state).Snapshot()
	return &current, nil
}

func (s *sessionService) GetSessions(ctx context.Context, limit int) (sessions []*domain.FocusSession, err error) {
	fields := map[string]any{"limit": limit}
	defer observe(ctx, s.observer, "get-sessions", time.Now(), fields, &err)

	sessions, err = s.sessions.List(ctx, limit)
	if err != nil {
		return nil, commandError("get_sessions", err)
	}
	fields["count"] = len(sessions)
	return sessions, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-session", time.Now(), map[string]any{"session_id": id}, &err)

	if strings.TrimSpace(id) == "" {
		return commandError("delete_session", domain.ErrSessionMissingID)
	}
	return commandError("delete_session", s.sessions.Delete(ctx, id))
}

func (s *sessionService) ExportData(ctx context.Context) (data string, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "export-data", time.Now(), fields, &err)

	sessions, err := s.sessions.List(ctx, 0)
	if err != nil {
		return "", commandError("export_data", err)
	}
	fields["count"] = len(sessions)

	raw, err := importer.Export(sessions)
	if err != nil {
		return "", commandError("export_data", err)
	}
	return string(raw), nil
}

func (s *sessionService) ImportData(ctx context.Context, jsonData string) (count int, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "import-data", time.Now(), fields, &err)

	records, err := importer.Parse([]byte(jsonData))
	if err != nil {
		return 0, commandError("import_data", err)
	}
	fields["records"] = len(records)

	if errs := importer.Validate(records); len(errs) > 0 {
		return 0, commandError("import_data", formatValidationErrors(errs))
	}

	sessions, err := importer.Convert(records)
	if err != nil {
		return 0, commandError("import_data", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		for _, sess := range sessions {
			if err := txSessions.Upsert(ctx, sess); err != nil {
				return fmt.Errorf("importing session %s: %w", sess.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, commandError("import_data", err)
	}
	return len(sessions), nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("%d invalid records:", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%w: %s", ErrInvalidImport, msg)
}

// normalizeTags trims tags and drops empty ones. Duplicates are kept.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

