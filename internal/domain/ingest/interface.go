package ingest

import (
	"context"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/feed"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/tick"
)

// Usecase validates and stores parsed ticks.
//
//go:generate mockgen -source=interface.go -destination=mock/ingest_mock.go -package=mock
type Usecase interface {
	// Ingest stores ticks into the variant's table and returns the count
	// of genuinely new rows. Re-ingesting the same ticks returns zero.
	Ingest(ctx context.Context, variant feed.Variant, ticks []*tick.Tick) (int64, error)
}
