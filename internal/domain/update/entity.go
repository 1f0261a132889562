package update

import (
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/feed"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/period"
)

// Result is the outcome of one completed update cycle.
type Result struct {
	RunID    string
	Started  time.Time
	Finished time.Time

	// MonthsAdded lists the periods fetched and ingested this cycle,
	// ascending. Empty means the store was already current.
	MonthsAdded []period.Period
	// TicksInserted counts genuinely new rows per feed.
	TicksInserted map[feed.Variant]int64
	// BarsBuilt is the number of bars regenerated this cycle.
	BarsBuilt int64
	// BarCount is the total bar count after the cycle.
	BarCount int64
	// MinutesOpen counts, per exchange code, the open minutes among the
	// bars annotated this cycle. Nil when nothing was rebuilt.
	MinutesOpen map[string]int64
}
