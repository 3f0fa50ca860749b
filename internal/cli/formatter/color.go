package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette. Tomato is the brand color used for titles and the countdown.
var (
	ColorTomato = lipgloss.Color("#ff6347")
	ColorFocus  = lipgloss.Color("#8ec07c")
	ColorPaused = lipgloss.Color("#fabd2f")
	ColorAlert  = lipgloss.Color("#fb4934")
	ColorBar    = lipgloss.Color("#83a598")
	ColorTag    = lipgloss.Color("#d3869b")
	ColorMuted  = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
)

var (
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorTomato).Bold(true)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorFocus)
	StyleWarn    = lipgloss.NewStyle().Foreground(ColorPaused)
	StyleError   = lipgloss.NewStyle().Foreground(ColorAlert)
	StyleBar     = lipgloss.NewStyle().Foreground(ColorBar)
	StyleTag     = lipgloss.NewStyle().Foreground(ColorTag)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold    = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

var statusPills = map[domain.TimerStatus]string{
	domain.TimerRunning: StyleSuccess.Render("● RUNNING"),
	domain.TimerPaused:  StyleWarn.Render("○ PAUSED"),
	domain.TimerIdle:    StyleMuted.Render("· IDLE"),
}

// TimerStatusPill renders status as a colored marker like "● RUNNING".
func TimerStatusPill(status domain.TimerStatus) string {
	if pill, ok := statusPills[status]; ok {
		return pill
	}
	return StyleMuted.Render(strings.ToUpper(string(status)))
}

func CompletedPill(completed bool) string {
	if completed {
		return StyleSuccess.Render("✔ done")
	}
	return StyleWarn.Render("◐ stopped")
}

// TagList renders "#work #study", or "--" for an untagged session.
func TagList(tags []string) string {
	if len(tags) == 0 {
		return Dim("--")
	}
	labels := make([]string, 0, len(tags))
	for _, t := range tags {
		labels = append(labels, StyleTag.Render("#"+t))
	}
	return strings.Join(labels, " ")
}

// Header renders an upper-cased section title over a rule of the same width.
func Header(text string) string {
	title := strings.ToUpper(text)
	return fmt.Sprintf("%s\n%s", StyleTitle.Render(title), Dim(strings.Repeat("─", lipgloss.Width(title))))
}

func Dim(text string) string { return StyleMuted.Render(text) }

func Bold(text string) string { return StyleBold.Render(text) }
