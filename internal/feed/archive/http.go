package archive

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/feed"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/errors"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/logger"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/period"
)

// Config configures archive retrieval for one instrument.
type Config struct {
	// BaseURL of the archive tree, without trailing slash.
	BaseURL string
	// CacheDir keeps downloaded archives between runs.
	CacheDir string

	// Symbol is the bare instrument symbol; the variant suffixes select
	// the account flavor of the feed (the reference feed lives under a
	// suffixed symbol).
	Symbol          string
	ExecutionSuffix string
	ReferenceSuffix string

	Timeout    time.Duration
	RetryCount int
	RetryWait  time.Duration
}

func (c Config) symbols() map[feed.Variant]string {
	return map[feed.Variant]string{
		feed.VariantExecution: c.Symbol + c.ExecutionSuffix,
		feed.VariantReference: c.Symbol + c.ReferenceSuffix,
	}
}

// HTTPFetcher downloads monthly tick archives over HTTPS into a local
// cache directory. A file already in the cache is never fetched again.
type HTTPFetcher struct {
	client   *resty.Client
	baseURL  string
	cacheDir string
	symbols  map[feed.Variant]string
	logger   logger.Interface
}

var _ feed.Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates a fetcher. Network errors and 5xx responses are
// retried up to RetryCount times; 404 is not, a missing month stays
// missing.
func NewHTTPFetcher(cfg Config, logger logger.Interface) (*HTTPFetcher, error) {
	if cfg.Symbol == "" {
		return nil, errors.NewTracer(errors.InvalidArgument, "archive symbol is empty")
	}
	if cfg.BaseURL == "" {
		return nil, errors.NewTracer(errors.InvalidArgument, "archive base url is empty")
	}
	if cfg.CacheDir == "" {
		return nil, errors.NewTracer(errors.InvalidArgument, "archive cache dir is empty")
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &HTTPFetcher{
		client:   client,
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		cacheDir: cfg.CacheDir,
		symbols:  cfg.symbols(),
		logger:   logger,
	}, nil
}

// Fetch returns a local copy of the month's archive, downloading it on a
// cache miss.
func (f *HTTPFetcher) Fetch(ctx context.Context, variant feed.Variant, p period.Period) (string, error) {
	symbol, ok := f.symbols[variant]
	if !ok {
		return "", errors.Tracef(errors.InvalidArgument, "unknown feed variant %q", variant)
	}
	if p.IsZero() {
		return "", errors.NewTracer(errors.InvalidArgument, "archive period is zero")
	}

	filename := archiveFilename(symbol, p)
	local := filepath.Join(f.cacheDir, filename)
	if info, err := os.Stat(local); err == nil && info.Size() > 0 {
		return local, nil
	}

	if err := os.MkdirAll(f.cacheDir, 0o755); err != nil {
		return "", errors.Tracef(errors.ResourceUnavailable, "create cache dir %s: %v", f.cacheDir, err)
	}

	url := fmt.Sprintf("%s/%s/%d/%02d/%s", f.baseURL, symbol, p.Year, p.Month, filename)
	partial := local + ".part"

	resp, err := f.client.R().
		SetContext(ctx).
		SetOutput(partial).
		Get(url)
	if err != nil {
		_ = os.Remove(partial)
		return "", errors.Tracef(errors.ResourceUnavailable, "fetch %s: %v", url, err)
	}
	if !resp.IsSuccess() {
		_ = os.Remove(partial)
		return "", errors.Tracef(errors.ResourceUnavailable, "fetch %s: status %d", url, resp.StatusCode())
	}

	if err := os.Rename(partial, local); err != nil {
		return "", errors.Tracef(errors.ResourceUnavailable, "store archive %s: %v", local, err)
	}

	f.logger.InfoContext(ctx, "archive downloaded",
		logger.NewField("url", url),
		logger.NewField("path", local),
		logger.NewField("bytes", resp.Size()),
	)
	return local, nil
}

func archiveFilename(symbol string, p period.Period) string {
	return fmt.Sprintf("Exness_%s_%d_%02d.zip", symbol, p.Year, p.Month)
}
