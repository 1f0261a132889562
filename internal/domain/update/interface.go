package update

import (
	"context"

	"github.com/terrylica/exness-data-preprocess-sub001/pkg/period"
)

// Usecase runs one incremental update cycle end to end.
//
//go:generate mockgen -source=interface.go -destination=mock/update_mock.go -package=mock
type Usecase interface {
	// Run detects months missing since start, fetches and ingests both
	// feeds for each, regenerates bars over the affected range, annotates
	// them, and records the run. The first feed failure aborts the cycle
	// before any bar is touched.
	Run(ctx context.Context, start period.Period) (*Result, error)
}
