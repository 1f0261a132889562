package bars

import (
	"context"
	"time"
)

// Usecase regenerates one-minute bars from stored ticks.
//
//go:generate mockgen -source=interface.go -destination=mock/bars_mock.go -package=mock
type Usecase interface {
	// Rebuild deletes and regenerates bars for minutes in [from, to),
	// returning the number of bars written. A zero range rebuilds over the
	// full execution-tick extent.
	Rebuild(ctx context.Context, from, to time.Time) (int64, error)
	// Count returns the number of stored bars.
	Count(ctx context.Context) (int64, error)
}
