package gap

import (
	"context"
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/tick"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/errors"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/logger"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/period"
)

// Usecase computes which monthly periods have no execution ticks yet.
type Usecase struct {
	execution tick.TickRepository
	logger    logger.Interface

	now func() time.Time
}

// NewUsecase creates a gap detector over the execution-feed repository.
func NewUsecase(execution tick.TickRepository, logger logger.Interface) *Usecase {
	return &Usecase{
		execution: execution,
		logger:    logger,
		now:       time.Now,
	}
}

// MissingPeriods returns the ordered difference between the expected
// months (start through the current month) and the months that already
// hold execution ticks. One set difference covers gaps before, inside
// and after the existing span alike.
func (u *Usecase) MissingPeriods(ctx context.Context, start period.Period) ([]period.Period, error) {
	if start.IsZero() {
		return nil, errors.NewTracer(errors.InvalidArgument, "start period is required")
	}
	current := period.FromTime(u.now().UTC())
	if current.Before(start) {
		return nil, errors.Tracef(errors.InvalidArgument, "start period %s is in the future", start)
	}

	present, err := u.execution.MonthsPresent(ctx)
	if err != nil {
		return nil, errors.WithCode(errors.StoreFailure, err)
	}

	expected := period.Range(start, current)
	missing := period.Diff(expected, present)

	u.logger.InfoContext(ctx, "gap detection finished",
		logger.NewField("expected", len(expected)),
		logger.NewField("present", len(present)),
		logger.NewField("missing", len(missing)),
	)
	return missing, nil
}
