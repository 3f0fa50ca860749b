package domain

import "math"

const (
	DefaultSoundEnabled  = true
	DefaultSoundVolume   = 0.7
	DefaultFocusDuration = 25
	MinSoundVolume       = 0.0
	MaxSoundVolume       = 1.0
)

// Settings holds the user preferences persisted under the settings key.
type Settings struct {
	SoundEnabled    bool    `json:"soundEnabled"`
	SoundVolume     float64 `json:"soundVolume"`
	DefaultDuration int     `json:"defaultDuration"`
}

// DefaultSettings returns the preferences used on first run and whenever the
// stored value cannot be read.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:    DefaultSoundEnabled,
		SoundVolume:     DefaultSoundVolume,
		DefaultDuration: DefaultFocusDuration,
	}
}

// ClampVolume limits v to [MinSoundVolume, MaxSoundVolume].
func ClampVolume(v float64) float64 {
	if math.IsNaN(v) {
		return MinSoundVolume
	}
	if v < MinSoundVolume {
		return MinSoundVolume
	}
	if v > MaxSoundVolume {
		return MaxSoundVolume
	}
	return v
}

// Normalize clamps the volume and restores the default duration when the
// stored one is not positive.
func (s *Settings) Normalize() {
	s.SoundVolume = ClampVolume(s.SoundVolume)
	if s.DefaultDuration <= 0 {
		s.DefaultDuration = DefaultFocusDuration
	}
}
