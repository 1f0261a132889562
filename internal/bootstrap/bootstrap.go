package bootstrap

import (
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/feed"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/feed/archive"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/feed/exness"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/calendar"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/config"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/logger"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/postgres"
)

// Bootstrap wires the preprocessing pipeline for one instrument.
type Bootstrap struct {
	Usecase    Usecase
	Repository Repository
	Logger     logger.Interface

	Postgres postgres.PostgresClient
	Registry *calendar.Registry
	Fetcher  feed.Fetcher
	Parser   feed.Parser
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Postgres postgres.PostgresClient
	Config   *config.Config
	Logger   logger.Interface
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) (Bootstrap, error) {
	b.Postgres = config.Postgres
	b.Logger = config.Logger

	registry, err := newRegistry(config.Config.Calendar)
	if err != nil {
		return Bootstrap{}, err
	}
	b.Registry = registry

	fetcher, err := newFetcher(config.Config, b.Logger)
	if err != nil {
		return Bootstrap{}, err
	}
	b.Fetcher = fetcher
	b.Parser = exness.NewParser(b.Logger)

	b.registerRepository(config.Config.App.Instrument)
	if err := b.registerUsecase(config.Config.App); err != nil {
		return Bootstrap{}, err
	}

	return *b, nil
}

func newRegistry(cfg config.CalendarConfig) (*calendar.Registry, error) {
	registryConfig := calendar.RegistryConfig{
		Ref1:             cfg.Ref1,
		Ref2:             cfg.Ref2,
		PrimaryHoliday:   cfg.PrimaryHoliday,
		SecondaryHoliday: cfg.SecondaryHoliday,
	}
	if cfg.File != "" {
		definitions, err := calendar.LoadFile(cfg.File)
		if err != nil {
			return nil, err
		}
		registryConfig.Definitions = definitions
	}

	return calendar.NewRegistry(registryConfig)
}

// newFetcher selects the archive source: a local directory when
// configured, the HTTPS archive tree otherwise.
func newFetcher(cfg *config.Config, logger logger.Interface) (feed.Fetcher, error) {
	archiveConfig := archive.Config{
		BaseURL:         cfg.Archive.BaseURL,
		CacheDir:        cfg.Archive.CacheDir,
		Symbol:          cfg.App.Instrument,
		ExecutionSuffix: cfg.Archive.ExecutionSuffix,
		ReferenceSuffix: cfg.Archive.ReferenceSuffix,
		Timeout:         time.Duration(cfg.Archive.TimeoutSeconds) * time.Second,
		RetryCount:      cfg.Archive.RetryCount,
		RetryWait:       time.Duration(cfg.Archive.RetryWaitMs) * time.Millisecond,
	}

	if cfg.Archive.Dir != "" {
		return archive.NewDirFetcher(cfg.Archive.Dir, archiveConfig)
	}
	return archive.NewHTTPFetcher(archiveConfig, logger)
}
