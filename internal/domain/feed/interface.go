package feed

import (
	"context"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/tick"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/period"
)

// Fetcher obtains one monthly archive for a feed variant and returns the
// path of a local file holding it.
//
//go:generate mockgen -source=interface.go -destination=mock/feed_mock.go -package=mock
type Fetcher interface {
	Fetch(ctx context.Context, variant Variant, p period.Period) (string, error)
}

// Parser decodes a monthly archive file into ticks in feed order.
type Parser interface {
	Parse(ctx context.Context, path string) ([]*tick.Tick, error)
}
