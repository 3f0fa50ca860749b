package stats

import "fmt"

// FormatMinutes renders a minute count as "{h}小时{m}分钟", or "{m}分钟" when
// under an hour. The output language is fixed.
func FormatMinutes(minutes int) string {
	hours := minutes / 60
	if hours > 0 {
		return fmt.Sprintf("%d小时%d分钟", hours, minutes%60)
	}
	return fmt.Sprintf("%d分钟", minutes)
}
