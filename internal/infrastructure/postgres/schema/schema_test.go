package schema

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock "github.com/terrylica/exness-data-preprocess-sub001/pkg/postgres/mock"
)

func TestSanitizeInstrument(t *testing.T) {
	assert.Equal(t, "eurusd", SanitizeInstrument("EURUSD"))
	assert.Equal(t, "btcusdt", SanitizeInstrument("BTC/USDT"))
	assert.Equal(t, "xau_usd", SanitizeInstrument("XAU_USD"))
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "eurusd_execution_ticks", TickTable("EURUSD", "execution"))
	assert.Equal(t, "eurusd_reference_ticks", TickTable("EURUSD", "reference"))
	assert.Equal(t, "eurusd_bars", BarsTable("EURUSD"))
	assert.Equal(t, "eurusd_update_runs", RunsTable("EURUSD"))
	assert.Equal(t, "is_tokyo_session", SessionColumn("tokyo"))
}

func TestStatements(t *testing.T) {
	codes := []string{"tokyo", "newyork"}
	stmts := Statements("EURUSD", codes)

	// Two tick tables, the bar table, one ALTER per exchange, runs table.
	require.Len(t, stmts, 3+len(codes)+1)

	assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS eurusd_execution_ticks")
	assert.Contains(t, stmts[1], "CREATE TABLE IF NOT EXISTS eurusd_reference_ticks")

	bars := stmts[2]
	assert.Contains(t, bars, "CREATE TABLE IF NOT EXISTS eurusd_bars")
	assert.Contains(t, bars, "spread_avg_reference float8,")
	assert.Contains(t, bars, "is_tokyo_session boolean NOT NULL DEFAULT false")
	assert.Contains(t, bars, "is_newyork_session boolean NOT NULL DEFAULT false")
	assert.Contains(t, bars, "is_major_holiday boolean NOT NULL DEFAULT false")
	// Session columns follow registry order.
	assert.Less(t, strings.Index(bars, "is_tokyo_session"), strings.Index(bars, "is_newyork_session"))

	assert.Contains(t, stmts[3], "ALTER TABLE eurusd_bars ADD COLUMN IF NOT EXISTS is_tokyo_session")
	assert.Contains(t, stmts[4], "ALTER TABLE eurusd_bars ADD COLUMN IF NOT EXISTS is_newyork_session")
	assert.Contains(t, stmts[5], "CREATE TABLE IF NOT EXISTS eurusd_update_runs")
}

func TestEnsure(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(client *mock.MockPostgresClient)
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(client *mock.MockPostgresClient) {
				client.EXPECT().
					Exec(gomock.Any(), gomock.Any()).
					Return(pgconn.NewCommandTag("CREATE TABLE"), nil).
					Times(len(Statements("EURUSD", []string{"tokyo"})))
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error stops at first failing statement",
			mockFn: func(client *mock.MockPostgresClient) {
				client.EXPECT().
					Exec(gomock.Any(), gomock.Any()).
					Return(pgconn.CommandTag{}, errors.New("permission denied"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "permission denied")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockPostgresClient(ctrl)
			tc.mockFn(client)

			err := Ensure(context.Background(), client, "EURUSD", []string{"tokyo"})
			tc.assertFn(t, err)
		})
	}
}
