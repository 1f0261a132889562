package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/bar"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/schema"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/tick"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/calendar"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/errors"
)

// TickSaver writes a tick range to one file.
type TickSaver interface {
	Save(ticks []*tick.Tick, path string) error
	Extension() string
}

// BarSaver writes annotated minute bars to one file. The column set
// depends on the configured exchange registry, so bar exports are
// header-driven rather than struct-driven.
type BarSaver interface {
	Save(bars []*bar.Bar, path string) error
	Extension() string
}

// NewTickSaver creates a tick saver by format.
func NewTickSaver(format string) (TickSaver, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVTickSaver{}, nil
	case "parquet":
		return ParquetTickSaver{}, nil
	default:
		return nil, errors.Tracef(errors.InvalidArgument, "unsupported tick export format %q", format)
	}
}

// NewBarSaver creates a bar saver by format. Bars export as csv only:
// the session columns vary with the registry, which rules out a static
// parquet schema.
func NewBarSaver(format string, registry *calendar.Registry) (BarSaver, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return NewCSVBarSaver(registry), nil
	default:
		return nil, errors.Tracef(errors.InvalidArgument, "unsupported bar export format %q", format)
	}
}

// Filename builds the export file name {instrument}_{kind}_{from}_{to}.{ext}
// from concrete UTC range bounds.
func Filename(instrument, kind string, from, to time.Time, ext string) string {
	const layout = "20060102T150405Z"
	return fmt.Sprintf("%s_%s_%s_%s.%s",
		schema.SanitizeInstrument(instrument), kind,
		from.UTC().Format(layout), to.UTC().Format(layout), ext)
}
