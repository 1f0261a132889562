package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "EURUSD", cfg.App.Instrument)
	assert.Equal(t, "2024-01", cfg.App.StartPeriod)
	assert.Equal(t, 3, cfg.App.ChunkMonths)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "z", cfg.Archive.ReferenceSuffix)
	assert.Equal(t, "tokyo", cfg.Calendar.Ref1)
	assert.Equal(t, "csv", cfg.Export.Format)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("APP_INSTRUMENT", "XAUUSD")
	t.Setenv("APP_CHUNK_MONTHS", "6")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("ARCHIVE_DIR", "/data/archives")
	t.Setenv("CALENDAR_REF1", "london")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "XAUUSD", cfg.App.Instrument)
	assert.Equal(t, 6, cfg.App.ChunkMonths)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, "/data/archives", cfg.Archive.Dir)
	assert.Equal(t, "london", cfg.Calendar.Ref1)
}
