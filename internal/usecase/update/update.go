package update

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/bars"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/feed"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/gap"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/ingest"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/session"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/update"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/run"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/errors"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/logger"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/period"
)

// Usecase drives one incremental update cycle: gap detection, per-month
// fetch/parse/ingest for both feeds, bar regeneration over the affected
// range, session annotation, and the run record. The first feed failure
// aborts the cycle before bars are touched; the skipped months simply
// show up as gaps again next cycle. Callers must not run two cycles for
// the same instrument concurrently.
type Usecase struct {
	gaps     gap.Usecase
	fetcher  feed.Fetcher
	parser   feed.Parser
	ingester ingest.Usecase
	bars     bars.Usecase
	sessions session.Usecase
	runs     run.RunRepository
	logger   logger.Interface

	now func() time.Time
}

// NewUsecase wires an update orchestrator from its collaborators.
func NewUsecase(
	gaps gap.Usecase,
	fetcher feed.Fetcher,
	parser feed.Parser,
	ingester ingest.Usecase,
	bars bars.Usecase,
	sessions session.Usecase,
	runs run.RunRepository,
	logger logger.Interface,
) *Usecase {
	return &Usecase{
		gaps:     gaps,
		fetcher:  fetcher,
		parser:   parser,
		ingester: ingester,
		bars:     bars,
		sessions: sessions,
		runs:     runs,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes one update cycle starting from the given period and
// returns its accounting.
func (u *Usecase) Run(ctx context.Context, start period.Period) (*update.Result, error) {
	result := &update.Result{
		RunID:         ulid.Make().String(),
		Started:       u.now().UTC(),
		TicksInserted: make(map[feed.Variant]int64, len(feed.Variants())),
	}

	missing, err := u.gaps.MissingPeriods(ctx, start)
	if err != nil {
		return nil, err
	}

	for _, p := range missing {
		for _, variant := range feed.Variants() {
			inserted, err := u.ingestMonth(ctx, variant, p)
			if err != nil {
				return nil, err
			}
			result.TicksInserted[variant] += inserted
		}
	}
	result.MonthsAdded = missing

	if len(missing) > 0 {
		// Regenerate only the contiguous span covering the new months,
		// unless the bar table is still empty: then the whole history
		// needs its first build.
		var from, to time.Time
		existing, err := u.bars.Count(ctx)
		if err != nil {
			return nil, err
		}
		if existing > 0 {
			from = missing[0].Start()
			to = missing[len(missing)-1].End()
		}

		built, err := u.bars.Rebuild(ctx, from, to)
		if err != nil {
			return nil, err
		}
		result.BarsBuilt = built

		minutesOpen, err := u.sessions.Annotate(ctx, from, to)
		if err != nil {
			return nil, err
		}
		result.MinutesOpen = minutesOpen
	}

	barCount, err := u.bars.Count(ctx)
	if err != nil {
		return nil, err
	}
	result.BarCount = barCount
	result.Finished = u.now().UTC()

	rec := &run.Run{
		RunID:       result.RunID,
		StartedAt:   result.Started,
		FinishedAt:  result.Finished,
		MonthsAdded: len(missing),
		BarCount:    barCount,
	}
	if err := u.runs.Insert(ctx, rec); err != nil {
		return nil, errors.WithCode(errors.StoreFailure, err)
	}

	u.logger.InfoContext(ctx, "update cycle finished",
		logger.NewField("run_id", result.RunID),
		logger.NewField("months_added", len(missing)),
		logger.NewField("bars_built", result.BarsBuilt),
		logger.NewField("bar_count", barCount),
	)
	return result, nil
}

func (u *Usecase) ingestMonth(ctx context.Context, variant feed.Variant, p period.Period) (int64, error) {
	path, err := u.fetcher.Fetch(ctx, variant, p)
	if err != nil {
		return 0, err
	}

	ticks, err := u.parser.Parse(ctx, path)
	if err != nil {
		return 0, err
	}

	inserted, err := u.ingester.Ingest(ctx, variant, ticks)
	if err != nil {
		return 0, err
	}

	u.logger.InfoContext(ctx, "month ingested",
		logger.NewField("variant", variant.String()),
		logger.NewField("period", p.String()),
		logger.NewField("inserted", inserted),
	)
	return inserted, nil
}
