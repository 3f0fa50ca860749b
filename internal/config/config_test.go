package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{
		"FOCUSFLOW_CONFIG", "FOCUSFLOW_DB", "FOCUSFLOW_LOG_LEVEL", "FOCUSFLOW_LOG_FILE",
		"FOCUSFLOW_NOTIFY", "FOCUSFLOW_OTEL_ENABLED", "FOCUSFLOW_OTEL_ENDPOINT", "FOCUSFLOW_OTEL_INSECURE",
	} {
		t.Setenv(k, "")
	}
	return home
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".focusflow", "focusflow.db"), cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Notify.Enabled)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "localhost:4317", cfg.Telemetry.Endpoint)
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\nnotify:\n  enabled: false\n"), 0644))
	t.Setenv("FOCUSFLOW_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Notify.Enabled)
	assert.Equal(t, "focusflow", cfg.Telemetry.ServiceName, "keys absent from the file keep defaults")
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  path: /from/file.db\n"), 0644))
	t.Setenv("FOCUSFLOW_CONFIG", path)
	t.Setenv("FOCUSFLOW_DB", "/from/env.db")
	t.Setenv("FOCUSFLOW_OTEL_ENABLED", "true")
	t.Setenv("FOCUSFLOW_OTEL_ENDPOINT", "collector:4317")
	t.Setenv("FOCUSFLOW_OTEL_INSECURE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/from/env.db", cfg.Database.Path)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "collector:4317", cfg.Telemetry.Endpoint)
	assert.False(t, cfg.Telemetry.Insecure)
}

func TestLoad_InvalidEnvValuesIgnored(t *testing.T) {
	isolate(t)
	t.Setenv("FOCUSFLOW_NOTIFY", "sometimes")
	t.Setenv("FOCUSFLOW_LOG_LEVEL", "chatty")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Notify.Enabled)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unclosed"), 0644))
	t.Setenv("FOCUSFLOW_CONFIG", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig("/tmp/ff")
	cfg.Log.Level = "info"
	require.NoError(t, cfg.Save(path))
	t.Setenv("FOCUSFLOW_CONFIG", path)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"bogus", slog.LevelWarn},
	}
	for _, tt := range tests {
		cfg := Config{Log: LogConfig{Level: tt.level}}
		assert.Equal(t, tt.want, cfg.SlogLevel(), tt.level)
	}
}

func TestPath(t *testing.T) {
	home := isolate(t)

	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".focusflow", "config.yaml"), p)

	t.Setenv("FOCUSFLOW_CONFIG", "/etc/focusflow.yaml")
	p, err = Path()
	require.NoError(t, err)
	assert.Equal(t, "/etc/focusflow.yaml", p)
}

func TestYAML_UsesFileKeys(t *testing.T) {
	data, err := DefaultConfig("/tmp/ff").YAML()
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "service_name: focusflow")
	assert.Contains(t, out, "path: /tmp/ff/focusflow.db")
}
