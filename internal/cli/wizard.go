package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func fg(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

// focusflowHuhTheme styles forms with the tomato accent on the focused field
// and mutes everything else.
func focusflowHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = fg(formatter.ColorTomato).Bold(true)
	t.Focused.Description = fg(formatter.ColorMuted)
	t.Focused.SelectSelector = fg(formatter.ColorTomato)
	t.Focused.SelectedOption = fg(formatter.ColorFocus)
	t.Focused.UnselectedOption = fg(formatter.ColorFg)
	t.Focused.FocusedButton = fg(formatter.ColorFg).Background(formatter.ColorTomato).Padding(0, 1)
	t.Focused.BlurredButton = fg(formatter.ColorMuted).Padding(0, 1)
	t.Focused.TextInput.Cursor = fg(formatter.ColorTomato)
	t.Focused.TextInput.Prompt = fg(formatter.ColorTomato)
	t.Focused.TextInput.Text = fg(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = fg(formatter.ColorMuted)

	muted := fg(formatter.ColorMuted)
	t.Blurred.Title = muted
	t.Blurred.Description = muted
	t.Blurred.SelectedOption = muted
	t.Blurred.UnselectedOption = muted
	t.Blurred.TextInput.Prompt = muted
	t.Blurred.TextInput.Text = muted

	return t
}

// settingsFormValues holds the raw strings bound to the settings form.
type settingsFormValues struct {
	SoundEnabled bool
	Volume       string
	Duration     string
}

func newSettingsFormValues(s domain.Settings) *settingsFormValues {
	return &settingsFormValues{
		SoundEnabled: s.SoundEnabled,
		Volume:       strconv.FormatFloat(s.SoundVolume, 'f', -1, 64),
		Duration:     strconv.Itoa(s.DefaultDuration),
	}
}

// apply parses the form values onto base. Volume is clamped.
func (v *settingsFormValues) apply(base domain.Settings) (domain.Settings, error) {
	if err := validateVolume(v.Volume); err != nil {
		return base, err
	}
	if err := validatePositiveInt(v.Duration); err != nil {
		return base, err
	}
	vol, _ := strconv.ParseFloat(strings.TrimSpace(v.Volume), 64)
	dur, _ := strconv.Atoi(strings.TrimSpace(v.Duration))

	base.SoundEnabled = v.SoundEnabled
	base.SoundVolume = domain.ClampVolume(vol)
	base.DefaultDuration = dur
	return base, nil
}

func settingsForm(v *settingsFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Completion sound").
				Affirmative("On").
				Negative("Off").
				Value(&v.SoundEnabled),
			huh.NewInput().
				Title("Volume").
				Description("0 to 1; values outside are clamped").
				Value(&v.Volume).
				Validate(validateVolume),
			huh.NewInput().
				Title("Default duration (minutes)").
				Value(&v.Duration).
				Validate(validatePositiveInt),
		),
	).WithTheme(focusflowHuhTheme()).WithShowHelp(false)
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a whole number")
	}
	if n <= 0 {
		return fmt.Errorf("must be greater than 0")
	}
	return nil
}

func validateVolume(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}
