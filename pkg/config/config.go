package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/postgres"
)

// Config represents the application configuration.
type Config struct {
	App      AppConfig       `envPrefix:"APP_"`
	Postgres postgres.Config `envPrefix:"POSTGRES_"`
	Archive  ArchiveConfig   `envPrefix:"ARCHIVE_"`
	Calendar CalendarConfig  `envPrefix:"CALENDAR_"`
	Export   ExportConfig    `envPrefix:"EXPORT_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"exness-data-preprocess"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Instrument is the Exness symbol whose feeds are processed. It also
	// prefixes every table name.
	Instrument string `env:"INSTRUMENT" envDefault:"EURUSD"`
	// StartPeriod is the first expected archive month (YYYY-MM).
	StartPeriod string `env:"START_PERIOD" envDefault:"2024-01"`
	// ChunkMonths bounds peak memory of bar rebuilds and session
	// annotation by processing this many months at a time.
	ChunkMonths int `env:"CHUNK_MONTHS" envDefault:"3"`
}

// ArchiveConfig configures the monthly tick-archive fetcher.
type ArchiveConfig struct {
	// BaseURL of the HTTPS archive tree. Leave Dir empty to fetch over
	// the network.
	BaseURL string `env:"BASE_URL" envDefault:"https://ticks.ex2archive.com/ticks"`
	// Dir switches to a local directory of pre-downloaded archives.
	Dir string `env:"DIR" envDefault:""`
	// CacheDir is where downloaded archives are kept between runs.
	CacheDir string `env:"CACHE_DIR" envDefault:"./archives"`

	// ExecutionSuffix and ReferenceSuffix are appended to the instrument
	// symbol to select the account variant of the archive.
	ExecutionSuffix string `env:"EXECUTION_SUFFIX" envDefault:""`
	ReferenceSuffix string `env:"REFERENCE_SUFFIX" envDefault:"z"`

	TimeoutSeconds int `env:"TIMEOUT_SECONDS" envDefault:"300"`
	RetryCount     int `env:"RETRY_COUNT" envDefault:"3"`
	RetryWaitMs    int `env:"RETRY_WAIT_MS" envDefault:"2000"`
}

// CalendarConfig selects the exchange-calendar set and the designated
// reference/holiday exchanges.
type CalendarConfig struct {
	// File points at a YAML definition set replacing the builtin
	// exchanges. Empty keeps the defaults.
	File             string `env:"FILE" envDefault:""`
	Ref1             string `env:"REF1" envDefault:"tokyo"`
	Ref2             string `env:"REF2" envDefault:"newyork"`
	PrimaryHoliday   string `env:"PRIMARY_HOLIDAY" envDefault:"newyork"`
	SecondaryHoliday string `env:"SECONDARY_HOLIDAY" envDefault:"tokyo"`
}

// ExportConfig configures cmd/export output.
type ExportConfig struct {
	Dir    string `env:"DIR" envDefault:"./export"`
	Format string `env:"FORMAT" envDefault:"csv"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
