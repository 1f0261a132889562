package bar

import (
	"context"
	"time"
)

// BarRepository is the interface for one instrument's minute-bar table.
// Zero from/to means "unbounded" wherever a range is taken.
//
//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock
type BarRepository interface {
	// DeleteRange removes bars with timestamp in [from, to); a zero range
	// truncates the table. Bars are always deleted and regenerated for a
	// range, never patched in place.
	DeleteRange(ctx context.Context, from, to time.Time) (int64, error)
	// InsertBatch bulk-inserts bars and returns the row count.
	InsertBatch(ctx context.Context, bars []*Bar) (int64, error)
	// GetRange returns full bar rows in [from, to) ascending.
	GetRange(ctx context.Context, from, to time.Time) ([]*Bar, error)
	// MinuteTimestamps returns the distinct bar minutes in [from, to)
	// ascending.
	MinuteTimestamps(ctx context.Context, from, to time.Time) ([]time.Time, error)
	// Bounds returns the first and last bar timestamp, nil when empty.
	Bounds(ctx context.Context) (*time.Time, *time.Time, error)
	// Count returns the total number of bars.
	Count(ctx context.Context) (int64, error)
	// UpdateSessionBatch merges per-minute session flags and labels in one
	// set-based update keyed on exact timestamp.
	UpdateSessionBatch(ctx context.Context, batch SessionBatch) (int64, error)
	// UpdateHolidayBatch merges per-date holiday flags in one set-based
	// update keyed on the bar's UTC date.
	UpdateHolidayBatch(ctx context.Context, batch HolidayBatch) (int64, error)
	// TableSize returns the bar table's total on-disk size in bytes.
	TableSize(ctx context.Context) (int64, error)
}
