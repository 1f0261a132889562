package export

import (
	"github.com/parquet-go/parquet-go"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/tick"
)

// tickRow is the parquet schema of one exported tick.
type tickRow struct {
	Timestamp int64   `parquet:"timestamp"` // Unix milliseconds
	Bid       float64 `parquet:"bid"`
	Ask       float64 `parquet:"ask"`
}

// ParquetTickSaver writes ticks as a parquet file.
type ParquetTickSaver struct{}

// Extension returns "parquet".
func (ParquetTickSaver) Extension() string { return "parquet" }

// Save writes ticks to path.
func (ParquetTickSaver) Save(ticks []*tick.Tick, path string) error {
	rows := make([]tickRow, len(ticks))
	for i, t := range ticks {
		rows[i] = tickRow{
			Timestamp: t.Timestamp.UTC().UnixMilli(),
			Bid:       t.Bid,
			Ask:       t.Ask,
		}
	}
	return parquet.WriteFile(path, rows)
}
