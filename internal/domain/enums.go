package domain

type TimerStatus string

const (
	TimerIdle    TimerStatus = "idle"
	TimerRunning TimerStatus = "running"
	TimerPaused  TimerStatus = "paused"
)

// View names the four screens of the application.
type View string

const (
	ViewTimer      View = "timer"
	ViewHistory    View = "history"
	ViewStatistics View = "statistics"
	ViewSettings   View = "settings"
)
