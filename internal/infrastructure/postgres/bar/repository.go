package bar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/schema"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/postgres"
)

// Repository persists one-minute bars for a single instrument. The
// session flag columns are derived from the exchange codes handed in at
// construction, in registry order.
type Repository struct {
	client postgres.PostgresClient
	table  string
	codes  []string
}

var _ BarRepository = (*Repository)(nil)

// NewRepository creates a bar repository for the instrument with the
// given exchange codes.
func NewRepository(client postgres.PostgresClient, instrument string, codes []string) *Repository {
	return &Repository{
		client: client,
		table:  schema.BarsTable(instrument),
		codes:  codes,
	}
}

// columns returns the full column list in insert/select order.
func (r *Repository) columns() []string {
	cols := []string{
		"timestamp", "open", "high", "low", "close",
		"spread_avg_execution", "spread_avg_reference",
		"tick_count_execution", "tick_count_reference",
		"range_per_spread", "range_per_count",
		"body_per_spread", "body_per_count",
		"hour_ref1", "hour_ref2",
		"session_label_ref1", "session_label_ref2",
	}
	for _, code := range r.codes {
		cols = append(cols, schema.SessionColumn(code))
	}
	return append(cols, "is_primary_holiday", "is_secondary_holiday", "is_major_holiday")
}

// DeleteRange deletes bars with timestamp in [from, to). A zero range
// deletes everything (full rebuild path).
func (r *Repository) DeleteRange(ctx context.Context, from, to time.Time) (int64, error) {
	var (
		query string
		args  []any
	)
	if from.IsZero() && to.IsZero() {
		query = fmt.Sprintf("DELETE FROM %s", r.table)
	} else {
		query = fmt.Sprintf("DELETE FROM %s WHERE timestamp >= $1 AND timestamp < $2", r.table)
		args = []any{from, to}
	}

	tag, err := r.client.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete bars: %w", err)
	}
	return tag.RowsAffected(), nil
}

// InsertBatch bulk-inserts bars via COPY. Bars never collide with
// existing rows because their range is deleted first.
func (r *Repository) InsertBatch(ctx context.Context, bars []*Bar) (int64, error) {
	if len(bars) == 0 {
		return 0, nil
	}

	copyCount, err := r.client.CopyFrom(
		ctx,
		pgx.Identifier{r.table},
		r.columns(),
		pgx.CopyFromSlice(len(bars), func(i int) ([]any, error) {
			return r.rowValues(bars[i]), nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy bars: %w", err)
	}

	return copyCount, nil
}

func (r *Repository) rowValues(b *Bar) []any {
	values := []any{
		b.Timestamp, b.Open, b.High, b.Low, b.Close,
		b.SpreadAvgExecution, b.SpreadAvgReference,
		b.TickCountExecution, b.TickCountReference,
		b.RangePerSpread, b.RangePerCount,
		b.BodyPerSpread, b.BodyPerCount,
		b.HourRef1, b.HourRef2,
		b.SessionLabelRef1, b.SessionLabelRef2,
	}
	for _, code := range r.codes {
		values = append(values, b.SessionFlags[code])
	}
	return append(values, b.IsPrimaryHoliday, b.IsSecondaryHoliday, b.IsMajorHoliday)
}

// GetRange returns full bar rows in [from, to) ascending. A zero range
// returns the entire table.
func (r *Repository) GetRange(ctx context.Context, from, to time.Time) ([]*Bar, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(r.columns(), ", "), r.table)
	var args []any
	if !from.IsZero() || !to.IsZero() {
		query += " WHERE timestamp >= $1 AND timestamp < $2"
		args = []any{from, to}
	}
	query += " ORDER BY timestamp ASC"

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bars: %w", err)
	}
	defer rows.Close()

	var bars []*Bar
	for rows.Next() {
		b := &Bar{SessionFlags: make(map[string]bool, len(r.codes))}
		flags := make([]bool, len(r.codes))

		dests := []any{
			&b.Timestamp, &b.Open, &b.High, &b.Low, &b.Close,
			&b.SpreadAvgExecution, &b.SpreadAvgReference,
			&b.TickCountExecution, &b.TickCountReference,
			&b.RangePerSpread, &b.RangePerCount,
			&b.BodyPerSpread, &b.BodyPerCount,
			&b.HourRef1, &b.HourRef2,
			&b.SessionLabelRef1, &b.SessionLabelRef2,
		}
		for i := range flags {
			dests = append(dests, &flags[i])
		}
		dests = append(dests, &b.IsPrimaryHoliday, &b.IsSecondaryHoliday, &b.IsMajorHoliday)

		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("failed to scan bar: %w", err)
		}
		for i, code := range r.codes {
			b.SessionFlags[code] = flags[i]
		}
		bars = append(bars, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return bars, nil
}

// MinuteTimestamps returns the distinct bar minutes in [from, to)
// ascending.
func (r *Repository) MinuteTimestamps(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	query := fmt.Sprintf(`SELECT timestamp FROM %s
		WHERE timestamp >= $1 AND timestamp < $2
		ORDER BY timestamp ASC`, r.table)

	rows, err := r.client.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query bar minutes: %w", err)
	}
	defer rows.Close()

	var minutes []time.Time
	for rows.Next() {
		var ts time.Time
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("failed to scan bar minute: %w", err)
		}
		minutes = append(minutes, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return minutes, nil
}

// Bounds returns the first and last bar timestamp, nil for an empty
// table.
func (r *Repository) Bounds(ctx context.Context) (*time.Time, *time.Time, error) {
	query := fmt.Sprintf("SELECT min(timestamp), max(timestamp) FROM %s", r.table)

	var first, last *time.Time
	if err := r.client.QueryRow(ctx, query).Scan(&first, &last); err != nil {
		return nil, nil, fmt.Errorf("failed to query bar bounds: %w", err)
	}

	return first, last, nil
}

// Count returns the total number of bars.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	query := fmt.Sprintf("SELECT count(*) FROM %s", r.table)

	var count int64
	if err := r.client.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bars: %w", err)
	}

	return count, nil
}

// UpdateSessionBatch merges session flags and labels for a set of
// minutes in one statement: the arrays are unnested into a derived table
// joined on exact timestamp. A per-row update loop over the same data is
// asymptotically far slower for large ranges.
func (r *Repository) UpdateSessionBatch(ctx context.Context, batch SessionBatch) (int64, error) {
	if len(batch.Timestamps) == 0 {
		return 0, nil
	}
	if len(batch.Flags) != len(r.codes) {
		return 0, fmt.Errorf("session batch has %d flag columns, expected %d", len(batch.Flags), len(r.codes))
	}
	for i, flags := range batch.Flags {
		if len(flags) != len(batch.Timestamps) {
			return 0, fmt.Errorf("session batch flag column %d has %d rows, expected %d", i, len(flags), len(batch.Timestamps))
		}
	}
	if len(batch.LabelsRef1) != len(batch.Timestamps) || len(batch.LabelsRef2) != len(batch.Timestamps) {
		return 0, fmt.Errorf("session batch label rows do not match timestamps")
	}

	var (
		sets     []string
		unnest   []string
		aliases  []string
		args     []any
		argIndex = 1
	)

	unnest = append(unnest, fmt.Sprintf("$%d::timestamptz[]", argIndex))
	aliases = append(aliases, "ts")
	args = append(args, batch.Timestamps)
	argIndex++

	for i, code := range r.codes {
		alias := fmt.Sprintf("f%d", i)
		sets = append(sets, fmt.Sprintf("%s = u.%s", schema.SessionColumn(code), alias))
		unnest = append(unnest, fmt.Sprintf("$%d::boolean[]", argIndex))
		aliases = append(aliases, alias)
		args = append(args, batch.Flags[i])
		argIndex++
	}

	for _, label := range []struct {
		column string
		alias  string
		values []string
	}{
		{"session_label_ref1", "l1", batch.LabelsRef1},
		{"session_label_ref2", "l2", batch.LabelsRef2},
	} {
		sets = append(sets, fmt.Sprintf("%s = u.%s", label.column, label.alias))
		unnest = append(unnest, fmt.Sprintf("$%d::text[]", argIndex))
		aliases = append(aliases, label.alias)
		args = append(args, label.values)
		argIndex++
	}

	query := fmt.Sprintf(`UPDATE %s AS b SET %s
		FROM (SELECT * FROM unnest(%s) AS t(%s)) AS u
		WHERE b.timestamp = u.ts`,
		r.table,
		strings.Join(sets, ", "),
		strings.Join(unnest, ", "),
		strings.Join(aliases, ", "),
	)

	tag, err := r.client.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update session flags: %w", err)
	}

	return tag.RowsAffected(), nil
}

// UpdateHolidayBatch merges per-date holiday flags keyed on the bar's
// UTC date. The major flag is both primary and secondary closed.
func (r *Repository) UpdateHolidayBatch(ctx context.Context, batch HolidayBatch) (int64, error) {
	if len(batch.Days) == 0 {
		return 0, nil
	}
	if len(batch.Primary) != len(batch.Days) || len(batch.Secondary) != len(batch.Days) {
		return 0, fmt.Errorf("holiday batch flag rows do not match days")
	}

	// Days arrive as text and both sides convert without consulting the
	// server timezone.
	query := fmt.Sprintf(`UPDATE %s AS b SET
		is_primary_holiday = u.p,
		is_secondary_holiday = u.s,
		is_major_holiday = u.p AND u.s
		FROM (SELECT * FROM unnest($1::text[], $2::boolean[], $3::boolean[]) AS t(day, p, s)) AS u
		WHERE (b.timestamp AT TIME ZONE 'UTC')::date = u.day::date`, r.table)

	tag, err := r.client.Exec(ctx, query, batch.Days, batch.Primary, batch.Secondary)
	if err != nil {
		return 0, fmt.Errorf("failed to update holiday flags: %w", err)
	}

	return tag.RowsAffected(), nil
}

// TableSize returns the bar table's total relation size in bytes.
func (r *Repository) TableSize(ctx context.Context) (int64, error) {
	query := "SELECT COALESCE(pg_total_relation_size(to_regclass($1)), 0)"

	var size int64
	if err := r.client.QueryRow(ctx, query, r.table).Scan(&size); err != nil {
		return 0, fmt.Errorf("failed to query table size: %w", err)
	}

	return size, nil
}
