package bootstrap

import (
	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/feed"
	barInfra "github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/bar"
	runInfra "github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/run"
	tickInfra "github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/tick"
)

// Repository holds the per-instrument stores.
type Repository struct {
	ExecutionTicks tickInfra.TickRepository
	ReferenceTicks tickInfra.TickRepository
	Bars           barInfra.BarRepository
	Runs           runInfra.RunRepository
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository(instrument string) {
	b.Repository.ExecutionTicks = tickInfra.NewRepository(b.Postgres, instrument, feed.VariantExecution.String())
	b.Repository.ReferenceTicks = tickInfra.NewRepository(b.Postgres, instrument, feed.VariantReference.String())
	b.Repository.Bars = barInfra.NewRepository(b.Postgres, instrument, b.Registry.Codes())
	b.Repository.Runs = runInfra.NewRepository(b.Postgres, instrument)
}
