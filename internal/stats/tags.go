package stats

import "github.com/alexanderramin/focusflow/internal/domain"

// CalculateTagStats rolls up session minutes per tag.
//
// A session with N tags contributes its full duration to each of them, and
// the percentage denominator counts each (session, tag) pair once, so the
// percentages always sum to 100 when any session carries a tag. Entries come
// out in first-seen order; that order is incidental.
//
// Records are not validated: negative durations and repeated tags within a
// session are summed as they are.
func CalculateTagStats(sessions []domain.FocusSession) []domain.TagStats {
	totals := make(map[string]int)
	var order []string
	var totalAll int

	for _, s := range sessions {
		for _, tag := range s.Tags {
			if _, seen := totals[tag]; !seen {
				order = append(order, tag)
			}
			totals[tag] += s.Duration
			totalAll += s.Duration
		}
	}

	result := make([]domain.TagStats, 0, len(order))
	for _, tag := range order {
		result = append(result, domain.TagStats{
			Tag:          tag,
			TotalMinutes: totals[tag],
			Percentage:   percentage(totals[tag], totalAll),
		})
	}
	return result
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
