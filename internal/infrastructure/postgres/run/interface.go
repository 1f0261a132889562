package run

import "context"

// RunRepository records update-cycle history for one instrument.
//
//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock
type RunRepository interface {
	// Insert stores a finished run.
	Insert(ctx context.Context, r *Run) error
	// Latest returns the most recently finished run, nil when no run has
	// completed yet.
	Latest(ctx context.Context) (*Run, error)
}
