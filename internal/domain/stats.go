package domain

// TagStats is the per-tag rollup of session minutes. Derived on demand and
// never persisted.
type TagStats struct {
	Tag          string  `json:"tag"`
	TotalMinutes int     `json:"total_minutes"`
	Percentage   float64 `json:"percentage"`
}

// DailyStats is the per-day rollup of session minutes and session count.
type DailyStats struct {
	Date         string `json:"date"`
	TotalMinutes int    `json:"total_minutes"`
	Count        int    `json:"count"`
}

// StatsSummary holds the today / week / month totals shown on the
// statistics view.
type StatsSummary struct {
	TodayTotal int `json:"today_total"`
	TodayCount int `json:"today_count"`
	WeekTotal  int `json:"week_total"`
	WeekAvg    int `json:"week_avg"`
	MonthTotal int `json:"month_total"`
	MonthCount int `json:"month_count"`
}
