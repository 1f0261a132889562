package run

import "time"

// Run is one completed update cycle. MonthsAdded counts the periods
// fetched and ingested during the cycle; BarCount is the total bar count
// after the cycle finished.
type Run struct {
	RunID       string
	StartedAt   time.Time
	FinishedAt  time.Time
	MonthsAdded int
	BarCount    int64
}
