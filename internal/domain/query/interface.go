package query

import (
	"context"
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/feed"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/bar"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/tick"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/interval"
)

// Usecase reads stored ticks and bars back out.
//
//go:generate mockgen -source=interface.go -destination=mock/query_mock.go -package=mock
type Usecase interface {
	// Ticks returns ticks of one feed matching the filter, newest first.
	Ticks(ctx context.Context, variant feed.Variant, filter tick.Filter) ([]*tick.Tick, error)
	// Bars returns bars in [from, to) resampled to the named interval
	// ("1m", "5m", "15m", "30m", "1h", "4h", "1d"). Resampled bars carry
	// OHLC, spread averages and tick counts only.
	Bars(ctx context.Context, name string, from, to time.Time) ([]*interval.Bar, error)
	// BarRows returns full annotated minute rows in [from, to). A zero
	// range returns everything.
	BarRows(ctx context.Context, from, to time.Time) ([]*bar.Bar, error)
	// Coverage summarizes the stored dataset.
	Coverage(ctx context.Context) (*Coverage, error)
}
