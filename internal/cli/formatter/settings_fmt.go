package formatter

import (
	"fmt"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/stats"
)

// FormatSettings renders the settings view.
func FormatSettings(s domain.Settings) string {
	sound := StyleSuccess.Render("on")
	if !s.SoundEnabled {
		sound = StyleMuted.Render("off")
	}
	content := fmt.Sprintf("%-18s %s\n%-18s %s\n%-18s %s",
		"Sound", sound,
		"Volume", RenderProgress(s.SoundVolume, 10),
		"Default duration", stats.FormatMinutes(s.DefaultDuration),
	)
	return RenderBox("Settings", content)
}
