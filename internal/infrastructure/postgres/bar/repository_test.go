package bar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock "github.com/terrylica/exness-data-preprocess-sub001/pkg/postgres/mock"
)

var testCodes = []string{"newyork", "london", "tokyo"}

func someBar(ts time.Time) *Bar {
	refSpread := 0.00011
	refCount := int64(40)
	ratio := 2.5
	return &Bar{
		Timestamp:          ts,
		Open:               1.1000,
		High:               1.1005,
		Low:                1.0998,
		Close:              1.1003,
		SpreadAvgExecution: 0.00012,
		SpreadAvgReference: &refSpread,
		TickCountExecution: 57,
		TickCountReference: &refCount,
		RangePerSpread:     &ratio,
		RangePerCount:      &ratio,
		BodyPerSpread:      &ratio,
		BodyPerCount:       &ratio,
		HourRef1:           18,
		HourRef2:           4,
		SessionLabelRef1:   SessionOpen,
		SessionLabelRef2:   SessionClosed,
		SessionFlags:       map[string]bool{"newyork": true, "london": false, "tokyo": false},
	}
}

func TestBarRepository_DeleteRange(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		from, to time.Time
		mockFn   func(client *mock.MockPostgresClient)
		assertFn func(t *testing.T, deleted int64, err error)
	}{
		{
			name: "ranged delete",
			from: from,
			to:   to,
			mockFn: func(client *mock.MockPostgresClient) {
				client.EXPECT().
					Exec(gomock.Any(), "DELETE FROM eurusd_bars WHERE timestamp >= $1 AND timestamp < $2", from, to).
					Return(pgconn.NewCommandTag("DELETE 120"), nil)
			},
			assertFn: func(t *testing.T, deleted int64, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(120), deleted)
			},
		},
		{
			name: "zero range deletes everything",
			mockFn: func(client *mock.MockPostgresClient) {
				client.EXPECT().
					Exec(gomock.Any(), "DELETE FROM eurusd_bars").
					Return(pgconn.NewCommandTag("DELETE 9000"), nil)
			},
			assertFn: func(t *testing.T, deleted int64, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(9000), deleted)
			},
		},
		{
			name: "error",
			from: from,
			to:   to,
			mockFn: func(client *mock.MockPostgresClient) {
				client.EXPECT().
					Exec(gomock.Any(), gomock.Any(), from, to).
					Return(pgconn.CommandTag{}, errors.New("deadlock detected"))
			},
			assertFn: func(t *testing.T, deleted int64, err error) {
				assert.Error(t, err)
				assert.Zero(t, deleted)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockPostgresClient(ctrl)
			tc.mockFn(client)

			repo := NewRepository(client, "EURUSD", testCodes)
			deleted, err := repo.DeleteRange(context.Background(), tc.from, tc.to)
			tc.assertFn(t, deleted, err)
		})
	}
}

func TestBarRepository_InsertBatch(t *testing.T) {
	ts := time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		bars     []*Bar
		mockFn   func(client *mock.MockPostgresClient)
		assertFn func(t *testing.T, inserted int64, err error)
	}{
		{
			name: "success",
			bars: []*Bar{someBar(ts), someBar(ts.Add(time.Minute))},
			mockFn: func(client *mock.MockPostgresClient) {
				client.EXPECT().
					CopyFrom(gomock.Any(), pgx.Identifier{"eurusd_bars"}, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error) {
						// fixed columns, one session column per exchange, holiday columns
						require.Len(t, columns, 17+len(testCodes)+3)
						assert.Equal(t, "timestamp", columns[0])
						assert.Equal(t, "is_newyork_session", columns[17])
						assert.Equal(t, "is_london_session", columns[18])
						assert.Equal(t, "is_tokyo_session", columns[19])
						assert.Equal(t, "is_major_holiday", columns[len(columns)-1])

						var n int64
						for src.Next() {
							values, err := src.Values()
							require.NoError(t, err)
							require.Len(t, values, len(columns))
							n++
						}
						return n, nil
					})
			},
			assertFn: func(t *testing.T, inserted int64, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(2), inserted)
			},
		},
		{
			name:   "empty batch is a no-op",
			bars:   nil,
			mockFn: func(client *mock.MockPostgresClient) {},
			assertFn: func(t *testing.T, inserted int64, err error) {
				assert.NoError(t, err)
				assert.Zero(t, inserted)
			},
		},
		{
			name: "error",
			bars: []*Bar{someBar(ts)},
			mockFn: func(client *mock.MockPostgresClient) {
				client.EXPECT().
					CopyFrom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("copy failed"))
			},
			assertFn: func(t *testing.T, inserted int64, err error) {
				assert.Error(t, err)
				assert.Zero(t, inserted)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockPostgresClient(ctrl)
			tc.mockFn(client)

			repo := NewRepository(client, "EURUSD", testCodes)
			inserted, err := repo.InsertBatch(context.Background(), tc.bars)
			tc.assertFn(t, inserted, err)
		})
	}
}

func TestBarRepository_GetRange(t *testing.T) {
	from := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockPostgresClient(ctrl)
	rows := mock.NewMockRowsInterface(ctrl)

	client.EXPECT().Query(gomock.Any(), gomock.Any(), from, to).Return(rows, nil)

	refSpread := 0.00011
	rows.EXPECT().Next().Return(true)
	rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
		require.Len(t, dest, 17+len(testCodes)+3)
		*dest[0].(*time.Time) = from.Add(10 * time.Minute)
		*dest[1].(*float64) = 1.1000  // open
		*dest[2].(*float64) = 1.1004  // high
		*dest[3].(*float64) = 1.0999  // low
		*dest[4].(*float64) = 1.1002  // close
		*dest[5].(*float64) = 0.00012 // spread_avg_execution
		*dest[6].(**float64) = &refSpread
		*dest[7].(*int64) = 57
		*dest[15].(*string) = SessionMorning
		*dest[16].(*string) = SessionClosed
		*dest[17].(*bool) = false // newyork
		*dest[18].(*bool) = true  // london
		*dest[19].(*bool) = false // tokyo
		*dest[20].(*bool) = true  // is_primary_holiday
		return nil
	})
	rows.EXPECT().Next().Return(false)
	rows.EXPECT().Err().Return(nil)
	rows.EXPECT().Close()

	repo := NewRepository(client, "EURUSD", testCodes)
	bars, err := repo.GetRange(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, bars, 1)

	b := bars[0]
	assert.Equal(t, 1.1000, b.Open)
	assert.Equal(t, 1.1002, b.Close)
	require.NotNil(t, b.SpreadAvgReference)
	assert.Equal(t, refSpread, *b.SpreadAvgReference)
	assert.Equal(t, SessionMorning, b.SessionLabelRef1)
	assert.Equal(t, map[string]bool{"newyork": false, "london": true, "tokyo": false}, b.SessionFlags)
	assert.True(t, b.IsPrimaryHoliday)
	assert.False(t, b.IsMajorHoliday)
}

func TestBarRepository_MinuteTimestamps(t *testing.T) {
	from := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockPostgresClient(ctrl)
	rows := mock.NewMockRowsInterface(ctrl)

	client.EXPECT().Query(gomock.Any(), gomock.Any(), from, to).Return(rows, nil)

	minutes := []time.Time{from, from.Add(time.Minute), from.Add(3 * time.Minute)}
	for _, m := range minutes {
		m := m
		rows.EXPECT().Next().Return(true)
		rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
			*dest[0].(*time.Time) = m
			return nil
		})
	}
	rows.EXPECT().Next().Return(false)
	rows.EXPECT().Err().Return(nil)
	rows.EXPECT().Close()

	repo := NewRepository(client, "EURUSD", testCodes)
	got, err := repo.MinuteTimestamps(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, minutes, got)
}

func TestBarRepository_Bounds(t *testing.T) {
	first := time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC)
	last := time.Date(2024, 6, 28, 20, 59, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		mockFn   func(client *mock.MockPostgresClient, row *mock.MockRowsInterface)
		assertFn func(t *testing.T, gotFirst, gotLast *time.Time, err error)
	}{
		{
			name: "populated table",
			mockFn: func(client *mock.MockPostgresClient, row *mock.MockRowsInterface) {
				client.EXPECT().QueryRow(gomock.Any(), "SELECT min(timestamp), max(timestamp) FROM eurusd_bars").Return(row)
				row.EXPECT().Scan(gomock.Any(), gomock.Any()).DoAndReturn(func(dest ...any) error {
					*dest[0].(**time.Time) = &first
					*dest[1].(**time.Time) = &last
					return nil
				})
			},
			assertFn: func(t *testing.T, gotFirst, gotLast *time.Time, err error) {
				require.NoError(t, err)
				assert.Equal(t, &first, gotFirst)
				assert.Equal(t, &last, gotLast)
			},
		},
		{
			name: "empty table has nil bounds",
			mockFn: func(client *mock.MockPostgresClient, row *mock.MockRowsInterface) {
				client.EXPECT().QueryRow(gomock.Any(), gomock.Any()).Return(row)
				row.EXPECT().Scan(gomock.Any(), gomock.Any()).Return(nil)
			},
			assertFn: func(t *testing.T, gotFirst, gotLast *time.Time, err error) {
				require.NoError(t, err)
				assert.Nil(t, gotFirst)
				assert.Nil(t, gotLast)
			},
		},
		{
			name: "error",
			mockFn: func(client *mock.MockPostgresClient, row *mock.MockRowsInterface) {
				client.EXPECT().QueryRow(gomock.Any(), gomock.Any()).Return(row)
				row.EXPECT().Scan(gomock.Any(), gomock.Any()).Return(errors.New("relation does not exist"))
			},
			assertFn: func(t *testing.T, gotFirst, gotLast *time.Time, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockPostgresClient(ctrl)
			row := mock.NewMockRowsInterface(ctrl)
			tc.mockFn(client, row)

			repo := NewRepository(client, "EURUSD", testCodes)
			gotFirst, gotLast, err := repo.Bounds(context.Background())
			tc.assertFn(t, gotFirst, gotLast, err)
		})
	}
}

func TestBarRepository_Count(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockPostgresClient(ctrl)
	row := mock.NewMockRowsInterface(ctrl)

	client.EXPECT().QueryRow(gomock.Any(), "SELECT count(*) FROM eurusd_bars").Return(row)
	row.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
		*dest[0].(*int64) = 1440
		return nil
	})

	repo := NewRepository(client, "EURUSD", testCodes)
	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1440), count)
}

func TestBarRepository_UpdateSessionBatch(t *testing.T) {
	minutes := []time.Time{
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 3, 0, 1, 0, 0, time.UTC),
	}

	validBatch := SessionBatch{
		Timestamps: minutes,
		Flags: [][]bool{
			{false, false},
			{true, true},
			{false, true},
		},
		LabelsRef1: []string{SessionClosed, SessionClosed},
		LabelsRef2: []string{SessionOpen, SessionOpen},
	}

	testCases := []struct {
		name     string
		batch    SessionBatch
		mockFn   func(client *mock.MockPostgresClient)
		assertFn func(t *testing.T, updated int64, err error)
	}{
		{
			name:  "success",
			batch: validBatch,
			mockFn: func(client *mock.MockPostgresClient) {
				client.EXPECT().
					Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
						assert.Contains(t, query, "UPDATE eurusd_bars AS b SET")
						assert.Contains(t, query, "is_newyork_session = u.f0")
						assert.Contains(t, query, "is_london_session = u.f1")
						assert.Contains(t, query, "is_tokyo_session = u.f2")
						assert.Contains(t, query, "session_label_ref1 = u.l1")
						assert.Contains(t, query, "session_label_ref2 = u.l2")
						assert.Contains(t, query, "unnest($1::timestamptz[], $2::boolean[], $3::boolean[], $4::boolean[], $5::text[], $6::text[])")
						assert.Contains(t, query, "WHERE b.timestamp = u.ts")
						// one array argument per unnest column
						require.Len(t, args, 6)
						assert.Equal(t, minutes, args[0])
						return pgconn.NewCommandTag("UPDATE 2"), nil
					})
			},
			assertFn: func(t *testing.T, updated int64, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(2), updated)
			},
		},
		{
			name:   "empty batch is a no-op",
			batch:  SessionBatch{},
			mockFn: func(client *mock.MockPostgresClient) {},
			assertFn: func(t *testing.T, updated int64, err error) {
				assert.NoError(t, err)
				assert.Zero(t, updated)
			},
		},
		{
			name: "flag column count mismatch",
			batch: SessionBatch{
				Timestamps: minutes,
				Flags:      [][]bool{{false, false}},
				LabelsRef1: []string{SessionClosed, SessionClosed},
				LabelsRef2: []string{SessionClosed, SessionClosed},
			},
			mockFn: func(client *mock.MockPostgresClient) {},
			assertFn: func(t *testing.T, updated int64, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "flag columns")
			},
		},
		{
			name: "flag row count mismatch",
			batch: SessionBatch{
				Timestamps: minutes,
				Flags: [][]bool{
					{false},
					{true, true},
					{false, true},
				},
				LabelsRef1: []string{SessionClosed, SessionClosed},
				LabelsRef2: []string{SessionClosed, SessionClosed},
			},
			mockFn: func(client *mock.MockPostgresClient) {},
			assertFn: func(t *testing.T, updated int64, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "label row count mismatch",
			batch: SessionBatch{
				Timestamps: minutes,
				Flags: [][]bool{
					{false, false},
					{true, true},
					{false, true},
				},
				LabelsRef1: []string{SessionClosed},
				LabelsRef2: []string{SessionClosed, SessionClosed},
			},
			mockFn: func(client *mock.MockPostgresClient) {},
			assertFn: func(t *testing.T, updated int64, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockPostgresClient(ctrl)
			tc.mockFn(client)

			repo := NewRepository(client, "EURUSD", testCodes)
			updated, err := repo.UpdateSessionBatch(context.Background(), tc.batch)
			tc.assertFn(t, updated, err)
		})
	}
}

func TestBarRepository_UpdateHolidayBatch(t *testing.T) {
	testCases := []struct {
		name     string
		batch    HolidayBatch
		mockFn   func(client *mock.MockPostgresClient)
		assertFn func(t *testing.T, updated int64, err error)
	}{
		{
			name: "success",
			batch: HolidayBatch{
				Days:      []string{"2024-07-04", "2024-07-05"},
				Primary:   []bool{true, false},
				Secondary: []bool{false, false},
			},
			mockFn: func(client *mock.MockPostgresClient) {
				client.EXPECT().
					Exec(gomock.Any(), gomock.Any(), []string{"2024-07-04", "2024-07-05"}, []bool{true, false}, []bool{false, false}).
					DoAndReturn(func(_ context.Context, query string, _ ...any) (pgconn.CommandTag, error) {
						assert.Contains(t, query, "is_major_holiday = u.p AND u.s")
						assert.Contains(t, query, "unnest($1::text[], $2::boolean[], $3::boolean[])")
						assert.Contains(t, query, "(b.timestamp AT TIME ZONE 'UTC')::date = u.day::date")
						return pgconn.NewCommandTag("UPDATE 2880"), nil
					})
			},
			assertFn: func(t *testing.T, updated int64, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(2880), updated)
			},
		},
		{
			name:   "empty batch is a no-op",
			batch:  HolidayBatch{},
			mockFn: func(client *mock.MockPostgresClient) {},
			assertFn: func(t *testing.T, updated int64, err error) {
				assert.NoError(t, err)
				assert.Zero(t, updated)
			},
		},
		{
			name: "flag rows do not match days",
			batch: HolidayBatch{
				Days:      []string{"2024-07-04"},
				Primary:   []bool{true, false},
				Secondary: []bool{false},
			},
			mockFn: func(client *mock.MockPostgresClient) {},
			assertFn: func(t *testing.T, updated int64, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "error",
			batch: HolidayBatch{
				Days:      []string{"2024-07-04"},
				Primary:   []bool{true},
				Secondary: []bool{false},
			},
			mockFn: func(client *mock.MockPostgresClient) {
				client.EXPECT().
					Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(pgconn.CommandTag{}, errors.New("connection reset"))
			},
			assertFn: func(t *testing.T, updated int64, err error) {
				assert.Error(t, err)
				assert.Zero(t, updated)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockPostgresClient(ctrl)
			tc.mockFn(client)

			repo := NewRepository(client, "EURUSD", testCodes)
			updated, err := repo.UpdateHolidayBatch(context.Background(), tc.batch)
			tc.assertFn(t, updated, err)
		})
	}
}

func TestBarRepository_TableSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockPostgresClient(ctrl)
	row := mock.NewMockRowsInterface(ctrl)

	client.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "eurusd_bars").Return(row)
	row.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
		*dest[0].(*int64) = 65536
		return nil
	})

	repo := NewRepository(client, "EURUSD", testCodes)
	size, err := repo.TableSize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(65536), size)
}
