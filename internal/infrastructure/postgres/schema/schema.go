package schema

import (
	"context"
	"fmt"
	"strings"

	"github.com/terrylica/exness-data-preprocess-sub001/pkg/postgres"
)

// Statements returns the ordered DDL for one instrument. The bar table's
// session columns come from the exchange codes in registry order, and a
// trailing ALTER per code backfills the column when an exchange is added
// after the table was first created (the new column starts false
// everywhere; a full rebuild plus annotation fills it in).
func Statements(instrument string, codes []string) []string {
	stmts := []string{
		tickTableDDL(TickTable(instrument, "execution")),
		tickTableDDL(TickTable(instrument, "reference")),
		barsTableDDL(instrument, codes),
	}
	for _, code := range codes {
		stmts = append(stmts, fmt.Sprintf(
			"ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s boolean NOT NULL DEFAULT false",
			BarsTable(instrument), SessionColumn(code),
		))
	}
	stmts = append(stmts, runsTableDDL(RunsTable(instrument)))
	return stmts
}

func tickTableDDL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	timestamp timestamptz PRIMARY KEY,
	bid float8 NOT NULL,
	ask float8 NOT NULL
)`, table)
}

func barsTableDDL(instrument string, codes []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `CREATE TABLE IF NOT EXISTS %s (
	timestamp timestamptz PRIMARY KEY,
	open float8 NOT NULL,
	high float8 NOT NULL,
	low float8 NOT NULL,
	close float8 NOT NULL,
	spread_avg_execution float8,
	spread_avg_reference float8,
	tick_count_execution bigint NOT NULL,
	tick_count_reference bigint,
	range_per_spread float8,
	range_per_count float8,
	body_per_spread float8,
	body_per_count float8,
	hour_ref1 int NOT NULL,
	hour_ref2 int NOT NULL,
	session_label_ref1 text NOT NULL DEFAULT 'closed',
	session_label_ref2 text NOT NULL DEFAULT 'closed',
`, BarsTable(instrument))
	for _, code := range codes {
		fmt.Fprintf(&b, "\t%s boolean NOT NULL DEFAULT false,\n", SessionColumn(code))
	}
	b.WriteString(`	is_primary_holiday boolean NOT NULL DEFAULT false,
	is_secondary_holiday boolean NOT NULL DEFAULT false,
	is_major_holiday boolean NOT NULL DEFAULT false
)`)
	return b.String()
}

func runsTableDDL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	run_id text PRIMARY KEY,
	started_at timestamptz NOT NULL,
	finished_at timestamptz NOT NULL,
	months_added int NOT NULL,
	bar_count bigint NOT NULL
)`, table)
}

// Ensure executes the instrument's DDL against the store.
func Ensure(ctx context.Context, client postgres.PostgresClient, instrument string, codes []string) error {
	for _, stmt := range Statements(instrument, codes) {
		if _, err := client.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
