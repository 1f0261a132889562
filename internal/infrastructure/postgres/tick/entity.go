package tick

import (
	"time"
)

// Tick is a single quote: a UTC instant with bid and ask prices.
type Tick struct {
	Timestamp time.Time
	Bid       float64
	Ask       float64
}

// Filter represents the filter criteria for tick queries.
type Filter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// Stats summarizes one tick table's contents.
type Stats struct {
	Earliest *time.Time
	Latest   *time.Time
	Count    int64
}
