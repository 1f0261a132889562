package tick

import (
	"context"
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/pkg/period"
)

// TickRepository is the interface for one variant's tick table. A
// repository instance is bound to an (instrument, variant) pair at
// construction.
//
//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock
type TickRepository interface {
	// InsertBatch persists ticks, silently skipping timestamps that
	// already exist, and returns the count of genuinely new rows.
	InsertBatch(ctx context.Context, ticks []*Tick) (int64, error)
	// GetRange returns all ticks in [from, to) ascending by timestamp.
	GetRange(ctx context.Context, from, to time.Time) ([]*Tick, error)
	// GetByFilter returns ticks matching the filter, newest first.
	GetByFilter(ctx context.Context, filter Filter) ([]*Tick, error)
	// MonthsPresent returns the distinct months holding at least one tick.
	MonthsPresent(ctx context.Context) ([]period.Period, error)
	// Stats returns min/max timestamp and total row count.
	Stats(ctx context.Context) (*Stats, error)
	// TableSize returns the table's total on-disk size in bytes.
	TableSize(ctx context.Context) (int64, error)
}
