// Package config loads runtime configuration from an optional YAML file and
// FOCUSFLOW_* environment variables. Environment values win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Notify    NotifyConfig    `yaml:"notify"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// File receives log output instead of stderr when set.
	File string `yaml:"file"`
}

type NotifyConfig struct {
	Enabled bool `yaml:"enabled"`
}

// TelemetryConfig controls the OTLP metrics exporter. Disabled by default.
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Endpoint    string `yaml:"endpoint"`
	Insecure    bool   `yaml:"insecure"`
	ServiceName string `yaml:"service_name"`
}

// Dir returns the application directory, ~/.focusflow.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".focusflow"), nil
}

// DefaultConfig returns a Config rooted at dir.
func DefaultConfig(dir string) Config {
	return Config{
		Database: DatabaseConfig{Path: filepath.Join(dir, "focusflow.db")},
		Log:      LogConfig{Level: "warn"},
		Notify:   NotifyConfig{Enabled: true},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			Endpoint:    "localhost:4317",
			Insecure:    true,
			ServiceName: "focusflow",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file named by
// FOCUSFLOW_CONFIG (or ~/.focusflow/config.yaml), then env overrides.
// A missing file is not an error.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig(dir)

	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.mergeFile(path); err != nil {
		return Config{}, err
	}

	applyEnv(&cfg)
	return cfg, nil
}

// Path returns the config file location: FOCUSFLOW_CONFIG, or
// config.yaml in Dir.
func Path() (string, error) {
	if p := os.Getenv("FOCUSFLOW_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// mergeFile overlays the YAML file at path onto c. Keys absent from the file
// keep their current values.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// YAML renders c in the config file format.
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// Save writes c as YAML to path, creating the directory if needed.
func (c Config) Save(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FOCUSFLOW_DB"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("FOCUSFLOW_LOG_LEVEL"); v != "" {
		if _, ok := parseLevel(v); ok {
			cfg.Log.Level = v
		}
	}
	if v := os.Getenv("FOCUSFLOW_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("FOCUSFLOW_NOTIFY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Notify.Enabled = b
		}
	}
	if v := os.Getenv("FOCUSFLOW_OTEL_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Telemetry.Enabled = b
		}
	}
	if v := os.Getenv("FOCUSFLOW_OTEL_ENDPOINT"); v != "" {
		cfg.Telemetry.Endpoint = v
	}
	if v := os.Getenv("FOCUSFLOW_OTEL_INSECURE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Telemetry.Insecure = b
		}
	}
}

// SlogLevel maps Log.Level to a slog level. Unknown names map to warn.
func (c Config) SlogLevel() slog.Level {
	if lvl, ok := parseLevel(c.Log.Level); ok {
		return lvl
	}
	return slog.LevelWarn
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}
