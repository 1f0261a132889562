package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/bar"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/schema"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/tick"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/calendar"
)

// tickTimeLayout matches the Exness archive format, so a tick export can
// be fed back through the parser.
const tickTimeLayout = "2006-01-02 15:04:05.000"

// CSVTickSaver writes ticks with the archive header Timestamp,Bid,Ask.
type CSVTickSaver struct{}

// Extension returns "csv".
func (CSVTickSaver) Extension() string { return "csv" }

// Save writes ticks to path.
func (CSVTickSaver) Save(ticks []*tick.Tick, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Timestamp", "Bid", "Ask"}); err != nil {
		return err
	}
	for _, t := range ticks {
		record := []string{
			t.Timestamp.UTC().Format(tickTimeLayout),
			floatStr(t.Bid),
			floatStr(t.Ask),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// CSVBarSaver writes annotated minute bars. The header is derived from
// the exchange registry: fixed columns first, then one session flag per
// exchange in registry order, then the holiday flags, matching the bar
// table's DDL order.
type CSVBarSaver struct {
	codes []string
}

// NewCSVBarSaver creates a bar saver for the registry's exchange set.
func NewCSVBarSaver(registry *calendar.Registry) CSVBarSaver {
	return CSVBarSaver{codes: registry.Codes()}
}

// Extension returns "csv".
func (CSVBarSaver) Extension() string { return "csv" }

// Save writes bars to path.
func (s CSVBarSaver) Save(bars []*bar.Bar, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(s.header()); err != nil {
		return err
	}
	for _, b := range bars {
		if err := w.Write(s.record(b)); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func (s CSVBarSaver) header() []string {
	header := []string{
		"timestamp", "open", "high", "low", "close",
		"spread_avg_execution", "spread_avg_reference",
		"tick_count_execution", "tick_count_reference",
		"range_per_spread", "range_per_count", "body_per_spread", "body_per_count",
		"hour_ref1", "hour_ref2", "session_label_ref1", "session_label_ref2",
	}
	for _, code := range s.codes {
		header = append(header, schema.SessionColumn(code))
	}
	return append(header, "is_primary_holiday", "is_secondary_holiday", "is_major_holiday")
}

func (s CSVBarSaver) record(b *bar.Bar) []string {
	record := []string{
		b.Timestamp.UTC().Format(time.RFC3339),
		floatStr(b.Open), floatStr(b.High), floatStr(b.Low), floatStr(b.Close),
		floatStr(b.SpreadAvgExecution), optFloat(b.SpreadAvgReference),
		strconv.FormatInt(b.TickCountExecution, 10), optInt(b.TickCountReference),
		optFloat(b.RangePerSpread), optFloat(b.RangePerCount),
		optFloat(b.BodyPerSpread), optFloat(b.BodyPerCount),
		strconv.Itoa(b.HourRef1), strconv.Itoa(b.HourRef2),
		b.SessionLabelRef1, b.SessionLabelRef2,
	}
	for _, code := range s.codes {
		record = append(record, strconv.FormatBool(b.SessionFlags[code]))
	}
	return append(record,
		strconv.FormatBool(b.IsPrimaryHoliday),
		strconv.FormatBool(b.IsSecondaryHoliday),
		strconv.FormatBool(b.IsMajorHoliday),
	)
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func optFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return floatStr(*f)
}

func optInt(n *int64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatInt(*n, 10)
}
