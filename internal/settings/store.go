// Package settings owns the user preferences and their persistence.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/repository"
)

// Key is the storage key the settings JSON lives under.
const Key = "focusflow-settings"

// Store holds the in-memory settings. Mutations only touch memory; call
// Save to persist them.
type Store struct {
	mu      sync.RWMutex
	kv      repository.KeyValueRepo
	logger  *slog.Logger
	current domain.Settings
}

// NewStore returns a store holding the default settings. A nil logger
// discards log output.
func NewStore(kv repository.KeyValueRepo, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{kv: kv, logger: logger, current: domain.DefaultSettings()}
}

// Load replaces the in-memory settings with the stored ones. A missing key
// yields the defaults. Unparseable JSON is logged and also yields the
// defaults; only storage failures are returned.
func (s *Store) Load(ctx context.Context) error {
	raw, found, err := s.kv.Get(ctx, Key)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	loaded := domain.DefaultSettings()
	if found {
		if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
			s.logger.WarnContext(ctx, "failed to parse settings, using defaults",
				"key", Key, "error", err)
			loaded = domain.DefaultSettings()
		}
	}
	loaded.Normalize()

	s.mu.Lock()
	s.current = loaded
	s.mu.Unlock()
	return nil
}

// Save writes the in-memory settings to storage.
func (s *Store) Save(ctx context.Context) error {
	s.mu.RLock()
	data, err := json.Marshal(s.current)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := s.kv.Put(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// Get returns a copy of the current settings.
func (s *Store) Get() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace swaps in a whole settings value, normalized.
func (s *Store) Replace(next domain.Settings) {
	next.Normalize()
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
}

// ToggleSound flips SoundEnabled and returns the new value.
func (s *Store) ToggleSound() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.SoundEnabled = !s.current.SoundEnabled
	return s.current.SoundEnabled
}

func (s *Store) SetSoundEnabled(enabled bool) {
	s.mu.Lock()
	s.current.SoundEnabled = enabled
	s.mu.Unlock()
}

// SetVolume stores v clamped to [0,1] and returns the stored value.
func (s *Store) SetVolume(v float64) float64 {
	clamped := domain.ClampVolume(v)
	s.mu.Lock()
	s.current.SoundVolume = clamped
	s.mu.Unlock()
	return clamped
}

// SetDefaultDuration sets the preset session length in minutes.
func (s *Store) SetDefaultDuration(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("default duration %d: %w", minutes, domain.ErrInvalidDuration)
	}
	s.mu.Lock()
	s.current.DefaultDuration = minutes
	s.mu.Unlock()
	return nil
}

// Reset restores the defaults in memory.
func (s *Store) Reset() {
	s.mu.Lock()
	s.current = domain.DefaultSettings()
	s.mu.Unlock()
}
