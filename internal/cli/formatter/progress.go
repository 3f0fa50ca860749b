package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func clampUnit(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar turns from yellow to green as the session nears its end.
func RenderProgress(pct float64, width int) string {
	pct = clampUnit(pct)
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleSuccess
	if pct < 0.5 {
		style = StyleWarn
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderBar renders value as a bar scaled against max, without brackets or
// a percentage. Used for the per-day chart.
func RenderBar(value, max, width int) string {
	if width < 1 {
		width = 1
	}
	filled := 0
	if max > 0 && value > 0 {
		filled = int(float64(value) / float64(max) * float64(width))
		if filled == 0 {
			filled = 1
		}
		if filled > width {
			filled = width
		}
	}
	return StyleBar.Render(strings.Repeat(filledBlock, filled)) +
		StyleMuted.Render(strings.Repeat(emptyBlock, width-filled))
}
