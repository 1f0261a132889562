package bar

import (
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/pkg/interval"
)

// Session labels stored in session_label_ref1/ref2. A day with a single
// session is "open" throughout; a day with an intraday closure splits
// into "morning", "break" and "afternoon".
const (
	SessionClosed    = "closed"
	SessionOpen      = "open"
	SessionMorning   = "morning"
	SessionBreak     = "break"
	SessionAfternoon = "afternoon"
)

// Bar is one minute's aggregate row. OHLC derives from execution-feed
// bids only. Pointer fields map to nullable columns: reference-feed
// fields are nil for minutes without reference ticks, ratio fields are
// nil when their denominator is zero or null. SessionFlags is keyed by
// exchange code in the calendar registry.
type Bar struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64

	SpreadAvgExecution float64
	SpreadAvgReference *float64
	TickCountExecution int64
	TickCountReference *int64

	RangePerSpread *float64
	RangePerCount  *float64
	BodyPerSpread  *float64
	BodyPerCount   *float64

	HourRef1         int
	HourRef2         int
	SessionLabelRef1 string
	SessionLabelRef2 string

	SessionFlags map[string]bool

	IsPrimaryHoliday   bool
	IsSecondaryHoliday bool
	IsMajorHoliday     bool
}

// ToIntervalBar strips the minute-level annotation columns for
// resampling.
func (b *Bar) ToIntervalBar() *interval.Bar {
	return &interval.Bar{
		Timestamp:          b.Timestamp,
		Open:               b.Open,
		High:               b.High,
		Low:                b.Low,
		Close:              b.Close,
		SpreadAvgExecution: b.SpreadAvgExecution,
		SpreadAvgReference: b.SpreadAvgReference,
		TickCountExecution: b.TickCountExecution,
		TickCountReference: b.TickCountReference,
	}
}

// SessionBatch carries per-minute session data for one bulk update.
// Flags is aligned with the repository's exchange codes (registry
// order); every inner slice and both label slices share Timestamps'
// length.
type SessionBatch struct {
	Timestamps []time.Time
	Flags      [][]bool
	LabelsRef1 []string
	LabelsRef2 []string
}

// HolidayBatch carries per-date holiday data for one bulk update. Days
// are UTC calendar dates in YYYY-MM-DD form; the major flag is derived
// in the store as primary AND secondary.
type HolidayBatch struct {
	Days      []string
	Primary   []bool
	Secondary []bool
}
