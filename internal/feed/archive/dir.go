package archive

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/feed"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/errors"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/period"
)

// DirFetcher serves pre-downloaded archives from a local directory,
// for air-gapped runs and tests. It accepts either the zip as published
// or an already-extracted csv with the same stem.
type DirFetcher struct {
	dir     string
	symbols map[feed.Variant]string
}

var _ feed.Fetcher = (*DirFetcher)(nil)

// NewDirFetcher creates a fetcher over dir.
func NewDirFetcher(dir string, cfg Config) (*DirFetcher, error) {
	if dir == "" {
		return nil, errors.NewTracer(errors.InvalidArgument, "archive dir is empty")
	}
	if cfg.Symbol == "" {
		return nil, errors.NewTracer(errors.InvalidArgument, "archive symbol is empty")
	}

	return &DirFetcher{
		dir:     dir,
		symbols: cfg.symbols(),
	}, nil
}

// Fetch returns the path of the month's archive inside the directory.
func (f *DirFetcher) Fetch(_ context.Context, variant feed.Variant, p period.Period) (string, error) {
	symbol, ok := f.symbols[variant]
	if !ok {
		return "", errors.Tracef(errors.InvalidArgument, "unknown feed variant %q", variant)
	}
	if p.IsZero() {
		return "", errors.NewTracer(errors.InvalidArgument, "archive period is zero")
	}

	zipName := archiveFilename(symbol, p)
	candidates := []string{
		filepath.Join(f.dir, zipName),
		filepath.Join(f.dir, strings.TrimSuffix(zipName, ".zip")+".csv"),
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.Size() > 0 {
			return candidate, nil
		}
	}

	return "", errors.Tracef(errors.ResourceUnavailable, "no archive for %s %s under %s", symbol, p, f.dir)
}
