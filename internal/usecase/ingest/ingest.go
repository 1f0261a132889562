package ingest

import (
	"context"
	"math"
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/feed"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/tick"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/errors"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/logger"
)

// Usecase validates parsed ticks and stores them into the per-variant
// tick tables.
type Usecase struct {
	repositories map[feed.Variant]tick.TickRepository
	logger       logger.Interface
}

// NewUsecase creates an ingest usecase over the two feed repositories.
func NewUsecase(execution, reference tick.TickRepository, logger logger.Interface) *Usecase {
	return &Usecase{
		repositories: map[feed.Variant]tick.TickRepository{
			feed.VariantExecution: execution,
			feed.VariantReference: reference,
		},
		logger: logger,
	}
}

// Ingest stores ticks into the variant's table and returns the count of
// genuinely new rows. The store skips rows whose timestamp already
// exists, so re-ingesting a month reports fewer rows than it was given.
func (u *Usecase) Ingest(ctx context.Context, variant feed.Variant, ticks []*tick.Tick) (int64, error) {
	repository, ok := u.repositories[variant]
	if !ok {
		return 0, errors.Tracef(errors.InvalidArgument, "unknown feed variant %q", variant)
	}

	for i, t := range ticks {
		if err := validate(t); err != nil {
			return 0, errors.Tracef(errors.MalformedRecord, "tick %d: %v", i, err)
		}
	}

	inserted, err := repository.InsertBatch(ctx, ticks)
	if err != nil {
		return 0, errors.WithCode(errors.StoreFailure, err)
	}

	u.logger.InfoContext(ctx, "ticks ingested",
		logger.NewField("variant", variant.String()),
		logger.NewField("given", len(ticks)),
		logger.NewField("inserted", inserted),
	)
	return inserted, nil
}

func validate(t *tick.Tick) error {
	if t.Timestamp.IsZero() {
		return errors.NewTracer(errors.MalformedRecord, "zero timestamp")
	}
	if t.Timestamp.Location() != time.UTC {
		return errors.Tracef(errors.MalformedRecord, "timestamp %s is not UTC", t.Timestamp)
	}
	for _, price := range []float64{t.Bid, t.Ask} {
		if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
			return errors.Tracef(errors.MalformedRecord, "price %v out of range", price)
		}
	}
	return nil
}
