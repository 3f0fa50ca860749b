package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/focusflow/internal/cli"
	"github.com/alexanderramin/focusflow/internal/config"
	"github.com/alexanderramin/focusflow/internal/db"
	"github.com/alexanderramin/focusflow/internal/notify"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/alexanderramin/focusflow/internal/service"
	"github.com/alexanderramin/focusflow/internal/settings"
	"github.com/alexanderramin/focusflow/internal/telemetry"
	"github.com/alexanderramin/focusflow/internal/timer"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfgPath, err := config.Path()
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLogOutput(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	timerRepo := repository.NewSQLiteTimerStateRepo(database)
	kvRepo := repository.NewSQLiteKeyValueRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	store := settings.NewStore(kvRepo, logger)
	if err := store.Load(ctx); err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	var notifier notify.Notifier = notify.Noop{}
	if cfg.Notify.Enabled {
		notifier = notify.NewDesktop(logger)
	}

	var recorder telemetry.Recorder = telemetry.NoOpRecorder{}
	if cfg.Telemetry.Enabled {
		exp, err := telemetry.NewExporter(ctx, telemetry.Config{
			Enabled:     cfg.Telemetry.Enabled,
			Endpoint:    cfg.Telemetry.Endpoint,
			Insecure:    cfg.Telemetry.Insecure,
			ServiceName: cfg.Telemetry.ServiceName,
		})
		if err != nil {
			logger.Warn("telemetry disabled", "error", err)
		} else {
			recorder = exp
		}
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := recorder.Close(shutdownCtx); err != nil {
			logger.Warn("flushing telemetry", "error", err)
		}
	}()

	observer := service.NewSlogUseCaseObserver(logger)
	clock := timer.SystemClock{}

	app := &cli.App{
		Sessions: service.NewSessionService(sessionRepo, timerRepo, uow, clock, service.SessionHooks{
			Notifier: notifier,
			Recorder: recorder,
			Settings: store,
		}, observer),
		Stats:      service.NewStatsService(sessionRepo, clock, observer),
		Settings:   store,
		Clock:      clock,
		Config:     cfg,
		ConfigPath: cfgPath,
	}

	// The live timer view needs a terminal on both ends.
	app.IsInteractive = func() bool {
		return isTerminal(os.Stdin) && isTerminal(os.Stdout)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
