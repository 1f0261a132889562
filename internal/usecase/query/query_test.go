package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/terrylica/exness-data-preprocess-sub001/internal/domain/feed"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/bar"
	barMock "github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/bar/mock"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/run"
	runMock "github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/run/mock"
	"github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/tick"
	tickMock "github.com/terrylica/exness-data-preprocess-sub001/internal/infrastructure/postgres/tick/mock"
	pkgErrors "github.com/terrylica/exness-data-preprocess-sub001/pkg/errors"
	loggerMock "github.com/terrylica/exness-data-preprocess-sub001/pkg/logger/mock"
	"github.com/terrylica/exness-data-preprocess-sub001/pkg/period"
)

func newTestUsecase(t *testing.T, ctrl *gomock.Controller) (*Usecase, *tickMock.MockTickRepository, *tickMock.MockTickRepository, *barMock.MockBarRepository, *runMock.MockRunRepository) {
	t.Helper()

	execution := tickMock.NewMockTickRepository(ctrl)
	reference := tickMock.NewMockTickRepository(ctrl)
	bars := barMock.NewMockBarRepository(ctrl)
	runs := runMock.NewMockRunRepository(ctrl)

	uc := NewUsecase("eurusd", execution, reference, bars, runs, loggerMock.NewMockInterface(ctrl))
	return uc, execution, reference, bars, runs
}

func ptrFloat(f float64) *float64 { return &f }

func ptrInt(n int64) *int64 { return &n }

func TestTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, execution, reference, _, _ := newTestUsecase(t, ctrl)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	filter := tick.Filter{From: &from, Limit: 100}
	want := []*tick.Tick{{Timestamp: from.Add(time.Hour), Bid: 1.1, Ask: 1.2}}

	reference.EXPECT().GetByFilter(gomock.Any(), filter).Return(want, nil)
	got, err := uc.Ticks(context.Background(), feed.VariantReference, filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	execution.EXPECT().GetByFilter(gomock.Any(), filter).Return(nil, assert.AnError)
	_, err = uc.Ticks(context.Background(), feed.VariantExecution, filter)
	require.Error(t, err)
	assert.Equal(t, pkgErrors.StoreFailure, pkgErrors.GetCode(err))

	_, err = uc.Ticks(context.Background(), feed.Variant("santiment"), filter)
	require.Error(t, err)
	assert.Equal(t, pkgErrors.InvalidArgument, pkgErrors.GetCode(err))
}

func TestBars_OneMinuteReadsStraightThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, bars, _ := newTestUsecase(t, ctrl)

	from := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)
	rows := []*bar.Bar{
		{
			Timestamp:          from,
			Open:               1.10,
			High:               1.12,
			Low:                1.09,
			Close:              1.11,
			SpreadAvgExecution: 0.0002,
			SpreadAvgReference: ptrFloat(0.0003),
			TickCountExecution: 5,
			TickCountReference: ptrInt(2),
			SessionLabelRef1:   bar.SessionMorning,
			SessionFlags:       map[string]bool{"tokyo": true},
		},
	}

	bars.EXPECT().GetRange(gomock.Any(), from, to).Return(rows, nil)

	got, err := uc.Bars(context.Background(), "1m", from, to)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rows[0].ToIntervalBar(), got[0])
}

func TestBars_ResamplesLargerIntervals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, bars, _ := newTestUsecase(t, ctrl)

	base := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	rows := []*bar.Bar{
		{Timestamp: base.Add(1 * time.Minute), Open: 1.10, High: 1.12, Low: 1.09, Close: 1.11, SpreadAvgExecution: 0.0002, TickCountExecution: 5},
		{Timestamp: base.Add(3 * time.Minute), Open: 1.11, High: 1.15, Low: 1.10, Close: 1.14, SpreadAvgExecution: 0.0004, SpreadAvgReference: ptrFloat(0.0003), TickCountExecution: 3, TickCountReference: ptrInt(2)},
		{Timestamp: base.Add(7 * time.Minute), Open: 1.20, High: 1.21, Low: 1.19, Close: 1.20, SpreadAvgExecution: 0.0006, TickCountExecution: 1},
	}

	bars.EXPECT().GetRange(gomock.Any(), base, base.Add(10*time.Minute)).Return(rows, nil)

	got, err := uc.Bars(context.Background(), "5m", base, base.Add(10*time.Minute))
	require.NoError(t, err)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, base, first.Timestamp)
	assert.Equal(t, 1.10, first.Open)
	assert.Equal(t, 1.15, first.High)
	assert.Equal(t, 1.09, first.Low)
	assert.Equal(t, 1.14, first.Close)
	assert.InDelta(t, 0.0003, first.SpreadAvgExecution, 1e-12)
	require.NotNil(t, first.SpreadAvgReference)
	assert.InDelta(t, 0.0003, *first.SpreadAvgReference, 1e-12)
	assert.Equal(t, int64(8), first.TickCountExecution)
	require.NotNil(t, first.TickCountReference)
	assert.Equal(t, int64(2), *first.TickCountReference)

	second := got[1]
	assert.Equal(t, base.Add(5*time.Minute), second.Timestamp)
	assert.Equal(t, int64(1), second.TickCountExecution)
	assert.Nil(t, second.SpreadAvgReference)
}

func TestBars_UnsupportedInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _, _ := newTestUsecase(t, ctrl)

	_, err := uc.Bars(context.Background(), "7m", time.Time{}, time.Time{})
	require.Error(t, err)
	assert.Equal(t, pkgErrors.InvalidArgument, pkgErrors.GetCode(err))
}

func TestBarRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, bars, _ := newTestUsecase(t, ctrl)

	rows := []*bar.Bar{{Timestamp: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)}}
	bars.EXPECT().GetRange(gomock.Any(), time.Time{}, time.Time{}).Return(rows, nil)

	got, err := uc.BarRows(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	bars.EXPECT().GetRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
	_, err = uc.BarRows(context.Background(), time.Time{}, time.Time{})
	require.Error(t, err)
	assert.Equal(t, pkgErrors.StoreFailure, pkgErrors.GetCode(err))
}

func TestCoverage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, execution, reference, bars, runs := newTestUsecase(t, ctrl)

	earliest := time.Date(2024, 1, 2, 0, 0, 5, 0, time.UTC)
	latest := time.Date(2024, 2, 29, 23, 59, 58, 0, time.UTC)
	months := []period.Period{{Year: 2024, Month: time.January}, {Year: 2024, Month: time.February}}
	lastRun := &run.Run{RunID: "01J0000000000000000000CAFE", MonthsAdded: 2, BarCount: 600}

	execution.EXPECT().Stats(gomock.Any()).Return(&tick.Stats{Earliest: &earliest, Latest: &latest, Count: 1000}, nil)
	execution.EXPECT().TableSize(gomock.Any()).Return(int64(2048), nil)
	execution.EXPECT().MonthsPresent(gomock.Any()).Return(months, nil)
	reference.EXPECT().Stats(gomock.Any()).Return(&tick.Stats{Count: 400}, nil)
	reference.EXPECT().TableSize(gomock.Any()).Return(int64(1024), nil)
	bars.EXPECT().Count(gomock.Any()).Return(int64(600), nil)
	bars.EXPECT().TableSize(gomock.Any()).Return(int64(4096), nil)
	runs.EXPECT().Latest(gomock.Any()).Return(lastRun, nil)

	got, err := uc.Coverage(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "eurusd", got.Instrument)
	assert.Equal(t, &earliest, got.Earliest)
	assert.Equal(t, &latest, got.Latest)
	assert.Equal(t, map[feed.Variant]int64{
		feed.VariantExecution: 1000,
		feed.VariantReference: 400,
	}, got.TickCounts)
	assert.Equal(t, months, got.MonthsPresent)
	assert.Equal(t, int64(600), got.BarCount)
	assert.Equal(t, int64(2048+1024+4096), got.StorageBytes)
	assert.Equal(t, lastRun, got.LastRun)
}

func TestCoverage_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, execution, reference, _, _ := newTestUsecase(t, ctrl)

	execution.EXPECT().Stats(gomock.Any()).Return(nil, assert.AnError)
	reference.EXPECT().Stats(gomock.Any()).Return(&tick.Stats{}, nil).AnyTimes()
	reference.EXPECT().TableSize(gomock.Any()).Return(int64(0), nil).AnyTimes()

	_, err := uc.Coverage(context.Background())
	require.Error(t, err)
	assert.Equal(t, pkgErrors.StoreFailure, pkgErrors.GetCode(err))
}
