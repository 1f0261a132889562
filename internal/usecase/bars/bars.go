package bars

import (
	"context"
	"math"
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/bar"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/tick"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/calendar"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/errors"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/logger"
)

// Usecase regenerates one-minute bars from stored ticks. Bars are always
// deleted and rebuilt for a range, never patched in place, so a rebuild
// over the same ticks is idempotent.
type Usecase struct {
	execution tick.TickRepository
	reference tick.TickRepository
	bars      bar.BarRepository

	ref1 *time.Location
	ref2 *time.Location

	chunkMonths int
	logger      logger.Interface
}

// NewUsecase creates a bar aggregator. chunkMonths bounds how many months
// of ticks are held in memory at once.
func NewUsecase(
	execution, reference tick.TickRepository,
	bars bar.BarRepository,
	registry *calendar.Registry,
	chunkMonths int,
	logger logger.Interface,
) (*Usecase, error) {
	ref1, err := registry.Provider(registry.Ref1())
	if err != nil {
		return nil, err
	}
	ref2, err := registry.Provider(registry.Ref2())
	if err != nil {
		return nil, err
	}
	if chunkMonths < 1 {
		chunkMonths = 1
	}

	return &Usecase{
		execution:   execution,
		reference:   reference,
		bars:        bars,
		ref1:        ref1.Timezone(),
		ref2:        ref2.Timezone(),
		chunkMonths: chunkMonths,
		logger:      logger,
	}, nil
}

// Rebuild deletes and regenerates bars for minutes in [from, to),
// returning the number of bars written. A zero range rebuilds over the
// full execution-tick extent.
func (u *Usecase) Rebuild(ctx context.Context, from, to time.Time) (int64, error) {
	full := from.IsZero() && to.IsZero()
	if full {
		stats, err := u.execution.Stats(ctx)
		if err != nil {
			return 0, errors.WithCode(errors.StoreFailure, err)
		}
		if stats.Earliest == nil {
			if _, err := u.bars.DeleteRange(ctx, time.Time{}, time.Time{}); err != nil {
				return 0, errors.WithCode(errors.StoreFailure, err)
			}
			return 0, nil
		}
		from = stats.Earliest.UTC().Truncate(time.Minute)
		to = stats.Latest.UTC().Truncate(time.Minute).Add(time.Minute)
	} else {
		if from.IsZero() || to.IsZero() || !from.Before(to) {
			return 0, errors.Tracef(errors.InvalidArgument, "invalid bar range [%s, %s)", from, to)
		}
		from = from.UTC().Truncate(time.Minute)
		to = ceilMinute(to.UTC())
	}

	// One delete up front; the chunked inserts below never collide.
	if full {
		if _, err := u.bars.DeleteRange(ctx, time.Time{}, time.Time{}); err != nil {
			return 0, errors.WithCode(errors.StoreFailure, err)
		}
	} else {
		if _, err := u.bars.DeleteRange(ctx, from, to); err != nil {
			return 0, errors.WithCode(errors.StoreFailure, err)
		}
	}

	var total int64
	for cursor := from; cursor.Before(to); {
		end := chunkEnd(cursor, u.chunkMonths, to)

		executionTicks, err := u.execution.GetRange(ctx, cursor, end)
		if err != nil {
			return total, errors.WithCode(errors.StoreFailure, err)
		}
		referenceTicks, err := u.reference.GetRange(ctx, cursor, end)
		if err != nil {
			return total, errors.WithCode(errors.StoreFailure, err)
		}

		inserted, err := u.bars.InsertBatch(ctx, buildBars(executionTicks, referenceTicks, u.ref1, u.ref2))
		if err != nil {
			return total, errors.WithCode(errors.StoreFailure, err)
		}
		total += inserted

		cursor = end
	}

	u.logger.InfoContext(ctx, "bars rebuilt",
		logger.NewField("from", from),
		logger.NewField("to", to),
		logger.NewField("bars", total),
	)
	return total, nil
}

// Count returns the number of stored bars.
func (u *Usecase) Count(ctx context.Context) (int64, error) {
	count, err := u.bars.Count(ctx)
	if err != nil {
		return 0, errors.WithCode(errors.StoreFailure, err)
	}
	return count, nil
}

// chunkEnd returns the first instant after cursor's month plus months-1
// further months, capped at to. Chunks therefore align to month starts
// after the first one.
func chunkEnd(cursor time.Time, months int, to time.Time) time.Time {
	monthStart := time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := monthStart.AddDate(0, months, 0)
	if end.After(to) {
		return to
	}
	return end
}

func ceilMinute(t time.Time) time.Time {
	truncated := t.Truncate(time.Minute)
	if truncated.Equal(t) {
		return t
	}
	return truncated.Add(time.Minute)
}

type referenceAgg struct {
	spreadSum float64
	count     int64
}

// buildBars aggregates ascending execution ticks into minute bars and
// left-joins reference ticks by truncated minute. OHLC comes from
// execution bids: open is the first bid of the minute, close the last,
// high/low the extremes. A minute with no reference ticks keeps nil
// reference fields. Session and holiday columns start closed; the
// annotator overwrites them afterwards.
func buildBars(execution, reference []*tick.Tick, ref1, ref2 *time.Location) []*bar.Bar {
	if len(execution) == 0 {
		return nil
	}

	referenceByMinute := make(map[time.Time]*referenceAgg)
	for _, t := range reference {
		minute := t.Timestamp.Truncate(time.Minute)
		agg := referenceByMinute[minute]
		if agg == nil {
			agg = &referenceAgg{}
			referenceByMinute[minute] = agg
		}
		agg.spreadSum += t.Ask - t.Bid
		agg.count++
	}

	var (
		out       []*bar.Bar
		current   *bar.Bar
		minute    time.Time
		spreadSum float64
	)
	flush := func() {
		if current == nil {
			return
		}
		current.SpreadAvgExecution = spreadSum / float64(current.TickCountExecution)
		if agg, ok := referenceByMinute[minute]; ok {
			avg := agg.spreadSum / float64(agg.count)
			count := agg.count
			current.SpreadAvgReference = &avg
			current.TickCountReference = &count
		}
		finalizeRatios(current)
		out = append(out, current)
	}

	for _, t := range execution {
		m := t.Timestamp.Truncate(time.Minute)
		if current == nil || !m.Equal(minute) {
			flush()
			minute = m
			current = &bar.Bar{
				Timestamp:        m,
				Open:             t.Bid,
				High:             t.Bid,
				Low:              t.Bid,
				Close:            t.Bid,
				HourRef1:         m.In(ref1).Hour(),
				HourRef2:         m.In(ref2).Hour(),
				SessionLabelRef1: bar.SessionClosed,
				SessionLabelRef2: bar.SessionClosed,
			}
			spreadSum = 0
		}

		if t.Bid > current.High {
			current.High = t.Bid
		}
		if t.Bid < current.Low {
			current.Low = t.Bid
		}
		current.Close = t.Bid
		current.TickCountExecution++
		spreadSum += t.Ask - t.Bid
	}
	flush()

	return out
}

func finalizeRatios(b *bar.Bar) {
	barRange := b.High - b.Low
	body := math.Abs(b.Close - b.Open)

	b.RangePerSpread = safeDiv(barRange, b.SpreadAvgExecution)
	b.RangePerCount = safeDiv(barRange, float64(b.TickCountExecution))
	b.BodyPerSpread = safeDiv(body, b.SpreadAvgExecution)
	b.BodyPerCount = safeDiv(body, float64(b.TickCountExecution))
}

// safeDiv returns nil instead of NaN/Inf when the denominator is zero.
func safeDiv(num, den float64) *float64 {
	if den == 0 {
		return nil
	}
	v := num / den
	return &v
}
