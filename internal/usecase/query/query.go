package query

import (
	"context"
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/feed"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/query"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/bar"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/run"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/tick"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/errors"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/interval"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/logger"
)

// Usecase is the read side: ticks, bars at any supported interval, and
// dataset coverage. It never writes.
type Usecase struct {
	instrument   string
	repositories map[feed.Variant]tick.TickRepository
	bars         bar.BarRepository
	runs         run.RunRepository
	logger       logger.Interface
}

// NewUsecase creates a query usecase over the instrument's stores.
func NewUsecase(
	instrument string,
	execution tick.TickRepository,
	reference tick.TickRepository,
	bars bar.BarRepository,
	runs run.RunRepository,
	logger logger.Interface,
) *Usecase {
	return &Usecase{
		instrument: instrument,
		repositories: map[feed.Variant]tick.TickRepository{
			feed.VariantExecution: execution,
			feed.VariantReference: reference,
		},
		bars:   bars,
		runs:   runs,
		logger: logger,
	}
}

// Ticks returns ticks of one feed matching the filter, newest first.
func (u *Usecase) Ticks(ctx context.Context, variant feed.Variant, filter tick.Filter) ([]*tick.Tick, error) {
	repository, ok := u.repositories[variant]
	if !ok {
		return nil, errors.Tracef(errors.InvalidArgument, "unknown feed variant %q", variant)
	}

	ticks, err := repository.GetByFilter(ctx, filter)
	if err != nil {
		return nil, errors.WithCode(errors.StoreFailure, err)
	}
	return ticks, nil
}

// Bars returns bars in [from, to) at the named interval. One-minute bars
// come straight from storage; anything larger is resampled on the way
// out.
func (u *Usecase) Bars(ctx context.Context, name string, from, to time.Time) ([]*interval.Bar, error) {
	iv, err := interval.GetInterval(name)
	if err != nil {
		return nil, errors.Tracef(errors.InvalidArgument, "unsupported interval %q", name)
	}

	rows, err := u.bars.GetRange(ctx, from, to)
	if err != nil {
		return nil, errors.WithCode(errors.StoreFailure, err)
	}

	minutes := make([]*interval.Bar, len(rows))
	for i, row := range rows {
		minutes[i] = row.ToIntervalBar()
	}
	if iv.Duration == time.Minute {
		return minutes, nil
	}
	return iv.Resample(minutes), nil
}

// BarRows returns full annotated minute rows in [from, to). A zero range
// returns everything.
func (u *Usecase) BarRows(ctx context.Context, from, to time.Time) ([]*bar.Bar, error) {
	rows, err := u.bars.GetRange(ctx, from, to)
	if err != nil {
		return nil, errors.WithCode(errors.StoreFailure, err)
	}
	return rows, nil
}

// Coverage summarizes the stored dataset from the store's current
// contents alone.
func (u *Usecase) Coverage(ctx context.Context) (*query.Coverage, error) {
	coverage := &query.Coverage{
		Instrument: u.instrument,
		TickCounts: make(map[feed.Variant]int64, len(u.repositories)),
	}

	var storage int64
	for variant, repository := range u.repositories {
		stats, err := repository.Stats(ctx)
		if err != nil {
			return nil, errors.WithCode(errors.StoreFailure, err)
		}
		coverage.TickCounts[variant] = stats.Count
		if variant == feed.VariantExecution {
			coverage.Earliest = stats.Earliest
			coverage.Latest = stats.Latest
		}

		size, err := repository.TableSize(ctx)
		if err != nil {
			return nil, errors.WithCode(errors.StoreFailure, err)
		}
		storage += size
	}

	months, err := u.repositories[feed.VariantExecution].MonthsPresent(ctx)
	if err != nil {
		return nil, errors.WithCode(errors.StoreFailure, err)
	}
	coverage.MonthsPresent = months

	barCount, err := u.bars.Count(ctx)
	if err != nil {
		return nil, errors.WithCode(errors.StoreFailure, err)
	}
	coverage.BarCount = barCount

	barSize, err := u.bars.TableSize(ctx)
	if err != nil {
		return nil, errors.WithCode(errors.StoreFailure, err)
	}
	coverage.StorageBytes = storage + barSize

	lastRun, err := u.runs.Latest(ctx)
	if err != nil {
		return nil, errors.WithCode(errors.StoreFailure, err)
	}
	coverage.LastRun = lastRun

	return coverage, nil
}
