package calendar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrylica/exness-data-preprocess-sub001/pkg/errors"
)

func TestNewRegistry_Defaults(t *testing.T) {
	registry, err := NewRegistry(DefaultRegistryConfig())
	require.NoError(t, err)

	codes := registry.Codes()
	assert.Equal(t, []string{
		"sydney", "tokyo", "hongkong", "singapore", "frankfurt",
		"zurich", "london", "newyork", "toronto", "chicago",
	}, codes)

	for _, code := range codes {
		provider, err := registry.Provider(code)
		require.NoError(t, err)
		assert.Equal(t, code, provider.Code())
	}

	assert.Equal(t, "tokyo", registry.Ref1())
	assert.Equal(t, "newyork", registry.Ref2())
	assert.Equal(t, "newyork", registry.PrimaryHoliday())
	assert.Equal(t, "tokyo", registry.SecondaryHoliday())
}

func TestRegistry_UnknownExchange(t *testing.T) {
	registry, err := NewRegistry(DefaultRegistryConfig())
	require.NoError(t, err)

	_, err = registry.Provider("osaka")
	require.Error(t, err)
	assert.Equal(t, errors.UnknownExchange, errors.GetCode(err))
}

func TestNewRegistry_UnknownDesignatedExchange(t *testing.T) {
	cfg := DefaultRegistryConfig()
	cfg.Ref1 = "osaka"

	_, err := NewRegistry(cfg)
	require.Error(t, err)
	assert.Equal(t, errors.UnknownExchange, errors.GetCode(err))
}

func TestLoadFile(t *testing.T) {
	content := `exchanges:
  - code: tokyo
    name: Tokyo Stock Exchange
    timezone: Asia/Tokyo
    schedules:
      - sessions:
          - {open: "09:00", close: "11:30"}
          - {open: "12:30", close: "15:00"}
    holidays: ["2024-01-01"]
  - code: newyork
    name: New York Stock Exchange
    timezone: America/New_York
    schedules:
      - sessions:
          - {open: "09:30", close: "16:00"}
`
	path := filepath.Join(t.TempDir(), "exchanges.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	defs, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "tokyo", defs[0].Code)
	assert.Len(t, defs[0].Schedules[0].Sessions, 2)

	registry, err := NewRegistry(RegistryConfig{
		Definitions:      defs,
		Ref1:             "tokyo",
		Ref2:             "newyork",
		PrimaryHoliday:   "newyork",
		SecondaryHoliday: "tokyo",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"tokyo", "newyork"}, registry.Codes())
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("empty set", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("exchanges: []"), 0o644))
		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}
