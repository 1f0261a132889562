package run

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/schema"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/postgres"
)

// Repository persists update-run history for a single instrument.
type Repository struct {
	client postgres.PostgresClient
	table  string
}

var _ RunRepository = (*Repository)(nil)

// NewRepository creates a run repository for the instrument.
func NewRepository(client postgres.PostgresClient, instrument string) *Repository {
	return &Repository{
		client: client,
		table:  schema.RunsTable(instrument),
	}
}

// Insert stores a finished run.
func (r *Repository) Insert(ctx context.Context, rec *Run) error {
	query := fmt.Sprintf(`INSERT INTO %s (run_id, started_at, finished_at, months_added, bar_count)
		VALUES ($1, $2, $3, $4, $5)`, r.table)

	_, err := r.client.Exec(ctx, query,
		rec.RunID, rec.StartedAt, rec.FinishedAt, rec.MonthsAdded, rec.BarCount)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

// Latest returns the most recently finished run, nil when the table is
// empty.
func (r *Repository) Latest(ctx context.Context) (*Run, error) {
	query := fmt.Sprintf(`SELECT run_id, started_at, finished_at, months_added, bar_count
		FROM %s ORDER BY finished_at DESC LIMIT 1`, r.table)

	var rec Run
	err := r.client.QueryRow(ctx, query).
		Scan(&rec.RunID, &rec.StartedAt, &rec.FinishedAt, &rec.MonthsAdded, &rec.BarCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query latest run: %w", err)
	}

	return &rec, nil
}
