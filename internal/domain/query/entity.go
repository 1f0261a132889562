package query

import (
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/feed"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/run"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/period"
)

// Coverage summarizes what the store currently holds for the instrument.
type Coverage struct {
	Instrument string

	// Earliest and Latest bound the execution ticks, nil when none are
	// stored.
	Earliest *time.Time
	Latest   *time.Time

	// TickCounts is the stored row count per feed.
	TickCounts map[feed.Variant]int64
	// MonthsPresent lists the periods with execution ticks, ascending.
	MonthsPresent []period.Period

	BarCount int64
	// StorageBytes is the combined on-disk size of the tick and bar
	// tables.
	StorageBytes int64

	// LastRun is the most recent completed update cycle, nil before the
	// first one.
	LastRun *run.Run
}
