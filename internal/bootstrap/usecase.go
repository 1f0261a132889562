package bootstrap

import (
	barsDomain "github.com/terrylica/exness-data-preprocess-sub001/internal/domain/bars"
	gapDomain "github.com/terrylica/exness-data-preprocess-sub001/internal/domain/gap"
	ingestDomain "github.com/terrylica/exness-data-preprocess-sub001/internal/domain/ingest"
	queryDomain "github.com/terrylica/exness-data-preprocess-sub001/internal/domain/query"
	sessionDomain "github.com/terrylica/exness-data-preprocess-sub001/internal/domain/session"
	updateDomain "github.com/terrylica/exness-data-preprocess-sub001/internal/domain/update"

	barsUc "github.com/terrylica/exness-data-preprocess-sub001/internal/usecase/bars"
	gapUc "github.com/terrylica/exness-data-preprocess-sub001/internal/usecase/gap"
	ingestUc "github.com/terrylica/exness-data-preprocess-sub001/internal/usecase/ingest"
	queryUc "github.com/terrylica/exness-data-preprocess-sub001/internal/usecase/query"
	sessionUc "github.com/terrylica/exness-data-preprocess-sub001/internal/usecase/session"
	updateUc "github.com/terrylica/exness-data-preprocess-sub001/internal/usecase/update"

	"github.com/terrylica/exness-data-preprocess-sub001/pkg/config"
)

// Usecase holds the pipeline usecases.
type Usecase struct {
	Ingest  ingestDomain.Usecase
	Gap     gapDomain.Usecase
	Bars    barsDomain.Usecase
	Session sessionDomain.Usecase
	Update  updateDomain.Usecase
	Query   queryDomain.Usecase
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase(app config.AppConfig) error {
	b.Usecase.Ingest = ingestUc.NewUsecase(b.Repository.ExecutionTicks, b.Repository.ReferenceTicks, b.Logger)
	b.Usecase.Gap = gapUc.NewUsecase(b.Repository.ExecutionTicks, b.Logger)

	bars, err := barsUc.NewUsecase(
		b.Repository.ExecutionTicks,
		b.Repository.ReferenceTicks,
		b.Repository.Bars,
		b.Registry,
		app.ChunkMonths,
		b.Logger,
	)
	if err != nil {
		return err
	}
	b.Usecase.Bars = bars

	b.Usecase.Session = sessionUc.NewUsecase(b.Repository.Bars, b.Registry, app.ChunkMonths, b.Logger)
	b.Usecase.Update = updateUc.NewUsecase(
		b.Usecase.Gap,
		b.Fetcher,
		b.Parser,
		b.Usecase.Ingest,
		b.Usecase.Bars,
		b.Usecase.Session,
		b.Repository.Runs,
		b.Logger,
	)
	b.Usecase.Query = queryUc.NewUsecase(
		app.Instrument,
		b.Repository.ExecutionTicks,
		b.Repository.ReferenceTicks,
		b.Repository.Bars,
		b.Repository.Runs,
		b.Logger,
	)

	return nil
}
