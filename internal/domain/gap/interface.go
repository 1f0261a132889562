package gap

import (
	"context"

	"github.com/terrylica/exness-data-preprocess-sub001/pkg/period"
)

// Usecase detects which monthly periods still need to be ingested.
//
//go:generate mockgen -source=interface.go -destination=mock/gap_mock.go -package=mock
type Usecase interface {
	// MissingPeriods returns the periods from start through the current
	// month that have no execution ticks, ascending.
	MissingPeriods(ctx context.Context, start period.Period) ([]period.Period, error)
}
