package exness

import (
	"archive/zip"
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/tick"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/errors"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/logger"
)

// Timestamp layouts seen in Exness archives. Values are wall-clock UTC.
const (
	layoutMillis  = "2006-01-02 15:04:05.000"
	layoutSeconds = "2006-01-02 15:04:05"
)

// Parser decodes Exness monthly tick archives: either a zip wrapping one
// CSV or a bare CSV file. Columns are located through the header row, so
// column order does not matter. Rows must not go backwards in time;
// exact duplicates are allowed and get deduplicated by the store.
type Parser struct {
	logger logger.Interface
}

// NewParser creates an archive parser.
func NewParser(logger logger.Interface) *Parser {
	return &Parser{logger: logger}
}

// Parse reads the archive at path into ticks in file order.
func (p *Parser) Parse(ctx context.Context, path string) ([]*tick.Tick, error) {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return p.parseZip(ctx, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Tracef(errors.ResourceUnavailable, "open archive %s: %v", path, err)
	}
	defer f.Close()

	return p.parseCSV(ctx, path, f)
}

func (p *Parser) parseZip(ctx context.Context, path string) ([]*tick.Tick, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Tracef(errors.MalformedRecord, "archive %s is not a readable zip: %v", path, err)
	}
	defer archive.Close()

	for _, file := range archive.File {
		if !strings.EqualFold(filepath.Ext(file.Name), ".csv") {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, errors.Tracef(errors.MalformedRecord, "archive %s: open %s: %v", path, file.Name, err)
		}
		defer rc.Close()

		return p.parseCSV(ctx, path, rc)
	}

	return nil, errors.Tracef(errors.MalformedRecord, "archive %s holds no csv entry", path)
}

func (p *Parser) parseCSV(ctx context.Context, path string, r io.Reader) ([]*tick.Tick, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Tracef(errors.MalformedRecord, "%s: missing header row: %v", path, err)
	}
	cols, err := headerColumns(path, header)
	if err != nil {
		return nil, err
	}

	var (
		ticks []*tick.Tick
		prev  time.Time
	)
	row := 1
	for {
		row++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Tracef(errors.MalformedRecord, "%s row %d: %v", path, row, err)
		}
		if len(record) <= cols.max() {
			return nil, errors.Tracef(errors.MalformedRecord, "%s row %d: %d columns, expected at least %d", path, row, len(record), cols.max()+1)
		}

		ts, err := parseTimestamp(record[cols.timestamp])
		if err != nil {
			return nil, errors.Tracef(errors.MalformedRecord, "%s row %d: invalid timestamp %q", path, row, record[cols.timestamp])
		}
		if ts.Before(prev) {
			return nil, errors.Tracef(errors.MalformedRecord, "%s row %d: timestamp %s goes backwards", path, row, record[cols.timestamp])
		}
		prev = ts

		bid, err := strconv.ParseFloat(record[cols.bid], 64)
		if err != nil {
			return nil, errors.Tracef(errors.MalformedRecord, "%s row %d: invalid bid %q", path, row, record[cols.bid])
		}
		ask, err := strconv.ParseFloat(record[cols.ask], 64)
		if err != nil {
			return nil, errors.Tracef(errors.MalformedRecord, "%s row %d: invalid ask %q", path, row, record[cols.ask])
		}

		ticks = append(ticks, &tick.Tick{Timestamp: ts, Bid: bid, Ask: ask})
	}

	p.logger.InfoContext(ctx, "archive parsed",
		logger.NewField("path", path),
		logger.NewField("rows", len(ticks)),
	)
	return ticks, nil
}

type columns struct {
	timestamp int
	bid       int
	ask       int
}

func (c columns) max() int {
	m := c.timestamp
	if c.bid > m {
		m = c.bid
	}
	if c.ask > m {
		m = c.ask
	}
	return m
}

func headerColumns(path string, header []string) (columns, error) {
	cols := columns{timestamp: -1, bid: -1, ask: -1}
	for i, name := range header {
		// The first cell may carry a UTF-8 BOM.
		name = strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))
		switch {
		case strings.EqualFold(name, "Timestamp"):
			cols.timestamp = i
		case strings.EqualFold(name, "Bid"):
			cols.bid = i
		case strings.EqualFold(name, "Ask"):
			cols.ask = i
		}
	}

	if cols.timestamp < 0 || cols.bid < 0 || cols.ask < 0 {
		return cols, errors.Tracef(errors.MalformedRecord, "%s: header %v lacks Timestamp/Bid/Ask", path, header)
	}
	return cols, nil
}

func parseTimestamp(s string) (time.Time, error) {
	ts, err := time.ParseInLocation(layoutMillis, s, time.UTC)
	if err == nil {
		return ts, nil
	}
	return time.ParseInLocation(layoutSeconds, s, time.UTC)
}
