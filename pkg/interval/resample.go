package interval

import (
	"time"
)

// Bar is the interval-agnostic bar used for resampling. Reference-feed
// fields are pointers because a minute without reference ticks stores
// NULL, and averages over NULL-only buckets stay nil. Minute-level
// session and holiday columns are not carried into resampled output.
type Bar struct {
	Timestamp          time.Time
	Open               float64
	High               float64
	Low                float64
	Close              float64
	SpreadAvgExecution float64
	SpreadAvgReference *float64
	TickCountExecution int64
	TickCountReference *int64
}

// Resample buckets one-minute bars into the receiver interval. Input must
// be ordered ascending by timestamp; output preserves that order.
// Open = first, High = max, Low = min, Close = last, spread averages are
// the mean of the non-nil inputs, tick counts are summed.
func (i Interval) Resample(bars []*Bar) []*Bar {
	if len(bars) == 0 || i.Duration <= time.Minute {
		return bars
	}

	var (
		out     []*Bar
		current *Bar
		bucket  time.Time

		minutes       int64
		execSpreadSum float64
		refSpreadSum  float64
		refSpreadN    int64
	)

	flush := func() {
		if current == nil {
			return
		}
		current.SpreadAvgExecution = execSpreadSum / float64(minutes)
		if refSpreadN > 0 {
			avg := refSpreadSum / float64(refSpreadN)
			current.SpreadAvgReference = &avg
		}
		out = append(out, current)
		current = nil
	}

	for _, b := range bars {
		bucketTime := i.CalculateBucketTime(b.Timestamp)
		if current == nil || !bucketTime.Equal(bucket) {
			flush()
			bucket = bucketTime
			current = &Bar{
				Timestamp: bucketTime,
				Open:      b.Open,
				High:      b.High,
				Low:       b.Low,
				Close:     b.Close,
			}
			minutes = 0
			execSpreadSum = 0
			refSpreadSum = 0
			refSpreadN = 0
		}

		if b.High > current.High {
			current.High = b.High
		}
		if b.Low < current.Low {
			current.Low = b.Low
		}
		current.Close = b.Close
		current.TickCountExecution += b.TickCountExecution
		if b.TickCountReference != nil {
			if current.TickCountReference == nil {
				current.TickCountReference = new(int64)
			}
			*current.TickCountReference += *b.TickCountReference
		}
		minutes++
		execSpreadSum += b.SpreadAvgExecution
		if b.SpreadAvgReference != nil {
			refSpreadSum += *b.SpreadAvgReference
			refSpreadN++
		}
	}
	flush()

	return out
}
