package session

import (
	"context"
	"time"
)

// Usecase stamps exchange session and holiday columns onto stored bars.
//
//go:generate mockgen -source=interface.go -destination=mock/session_mock.go -package=mock
type Usecase interface {
	// Annotate stamps session flags, session labels and holiday flags for
	// the bar minutes in [from, to), returning the count of open minutes
	// per exchange code. A zero range annotates every stored bar.
	// Re-annotating a range is idempotent.
	Annotate(ctx context.Context, from, to time.Time) (map[string]int64, error)
}
