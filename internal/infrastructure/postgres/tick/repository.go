package tick

import (
	"context"
	"fmt"
	"time"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/schema"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/period"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/postgres"
)

// insertChunkSize caps the array length of a single unnest insert.
const insertChunkSize = 10000

// Repository persists ticks for one (instrument, variant) table.
type Repository struct {
	client postgres.PostgresClient
	table  string
}

var _ TickRepository = (*Repository)(nil)

// NewRepository creates a tick repository bound to the given instrument
// and feed variant ("execution" or "reference").
func NewRepository(client postgres.PostgresClient, instrument, variant string) *Repository {
	return &Repository{
		client: client,
		table:  schema.TickTable(instrument, variant),
	}
}

// InsertBatch inserts ticks through unnest arrays with ON CONFLICT DO
// NOTHING, so re-ingesting an interrupted batch is a no-op for rows that
// already landed. CopyFrom would be faster but cannot skip duplicate
// keys, and the exact new-row count is part of the ingest contract.
func (r *Repository) InsertBatch(ctx context.Context, ticks []*Tick) (int64, error) {
	if len(ticks) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(`INSERT INTO %s (timestamp, bid, ask)
		SELECT * FROM unnest($1::timestamptz[], $2::float8[], $3::float8[])
		ON CONFLICT (timestamp) DO NOTHING`, r.table)

	var inserted int64
	for start := 0; start < len(ticks); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(ticks) {
			end = len(ticks)
		}
		chunk := ticks[start:end]

		timestamps := make([]time.Time, len(chunk))
		bids := make([]float64, len(chunk))
		asks := make([]float64, len(chunk))
		for i, t := range chunk {
			timestamps[i] = t.Timestamp
			bids[i] = t.Bid
			asks[i] = t.Ask
		}

		tag, err := r.client.Exec(ctx, query, timestamps, bids, asks)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert ticks: %w", err)
		}
		inserted += tag.RowsAffected()
	}

	return inserted, nil
}

// GetRange retrieves all ticks in [from, to) ascending by timestamp.
func (r *Repository) GetRange(ctx context.Context, from, to time.Time) ([]*Tick, error) {
	query := fmt.Sprintf(`SELECT timestamp, bid, ask FROM %s
		WHERE timestamp >= $1 AND timestamp < $2
		ORDER BY timestamp ASC`, r.table)

	rows, err := r.client.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query tick range: %w", err)
	}
	defer rows.Close()

	return scanTicks(rows)
}

// GetByFilter retrieves ticks matching the filter, newest first.
func (r *Repository) GetByFilter(ctx context.Context, filter Filter) ([]*Tick, error) {
	query := fmt.Sprintf("SELECT timestamp, bid, ask FROM %s WHERE 1=1", r.table)
	args := []any{}
	argIndex := 1

	if filter.From != nil {
		query += fmt.Sprintf(" AND timestamp >= $%d", argIndex)
		args = append(args, *filter.From)
		argIndex++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND timestamp < $%d", argIndex)
		args = append(args, *filter.To)
		argIndex++
	}

	query += " ORDER BY timestamp DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
		argIndex++
	}

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, filter.Offset)
	}

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ticks: %w", err)
	}
	defer rows.Close()

	return scanTicks(rows)
}

func scanTicks(rows postgres.RowsInterface) ([]*Tick, error) {
	var ticks []*Tick
	for rows.Next() {
		tick := &Tick{}
		if err := rows.Scan(&tick.Timestamp, &tick.Bid, &tick.Ask); err != nil {
			return nil, fmt.Errorf("failed to scan tick: %w", err)
		}
		ticks = append(ticks, tick)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return ticks, nil
}

// MonthsPresent returns the distinct calendar months with at least one
// tick, ascending. This is the "existing coverage" half of gap detection.
func (r *Repository) MonthsPresent(ctx context.Context) ([]period.Period, error) {
	query := fmt.Sprintf(`SELECT DISTINCT date_trunc('month', timestamp AT TIME ZONE 'UTC')
		FROM %s ORDER BY 1 ASC`, r.table)

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query months present: %w", err)
	}
	defer rows.Close()

	var months []period.Period
	for rows.Next() {
		var monthStart time.Time
		if err := rows.Scan(&monthStart); err != nil {
			return nil, fmt.Errorf("failed to scan month: %w", err)
		}
		months = append(months, period.FromTime(monthStart))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return months, nil
}

// Stats returns min/max timestamp and total row count. Earliest and
// Latest are nil for an empty table.
func (r *Repository) Stats(ctx context.Context) (*Stats, error) {
	query := fmt.Sprintf("SELECT min(timestamp), max(timestamp), count(*) FROM %s", r.table)

	stats := &Stats{}
	err := r.client.QueryRow(ctx, query).Scan(&stats.Earliest, &stats.Latest, &stats.Count)
	if err != nil {
		return nil, fmt.Errorf("failed to query tick stats: %w", err)
	}

	return stats, nil
}

// TableSize returns the tick table's total relation size in bytes.
func (r *Repository) TableSize(ctx context.Context) (int64, error) {
	query := "SELECT COALESCE(pg_total_relation_size(to_regclass($1)), 0)"

	var size int64
	if err := r.client.QueryRow(ctx, query, r.table).Scan(&size); err != nil {
		return 0, fmt.Errorf("failed to query table size: %w", err)
	}

	return size, nil
}
