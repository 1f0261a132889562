package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInterval(t *testing.T) {
	iv, err := GetInterval("5m")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, iv.Duration)

	_, err = GetInterval("7m")
	assert.Error(t, err)
}

func TestIsValidInterval(t *testing.T) {
	for _, name := range GetAllIntervalNames() {
		assert.True(t, IsValidInterval(name))
	}
	assert.False(t, IsValidInterval("2h"))
	assert.False(t, IsValidInterval(""))
}

func TestCalculateBucketTime(t *testing.T) {
	ts := time.Date(2024, 6, 3, 14, 37, 42, 0, time.UTC)

	testCases := []struct {
		interval Interval
		want     time.Time
	}{
		{Interval1m, time.Date(2024, 6, 3, 14, 37, 0, 0, time.UTC)},
		{Interval5m, time.Date(2024, 6, 3, 14, 35, 0, 0, time.UTC)},
		{Interval15m, time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC)},
		{Interval30m, time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC)},
		{Interval1h, time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)},
		{Interval4h, time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)},
		{Interval1d, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.interval.Name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.interval.CalculateBucketTime(ts))
		})
	}
}

func TestIsInBucket(t *testing.T) {
	a := time.Date(2024, 6, 3, 14, 31, 0, 0, time.UTC)
	b := time.Date(2024, 6, 3, 14, 34, 0, 0, time.UTC)
	c := time.Date(2024, 6, 3, 14, 35, 0, 0, time.UTC)

	assert.True(t, Interval5m.IsInBucket(a, b))
	assert.False(t, Interval5m.IsInBucket(b, c))
}

func ptrFloat(f float64) *float64 { return &f }

func ptrInt(n int64) *int64 { return &n }

func minuteBar(ts time.Time, open, high, low, close float64) *Bar {
	return &Bar{
		Timestamp:          ts,
		Open:               open,
		High:               high,
		Low:                low,
		Close:              close,
		SpreadAvgExecution: 0.0002,
		TickCountExecution: 10,
	}
}

func TestResample_5m(t *testing.T) {
	base := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	// Five consecutive minutes, then one in the next bucket.
	bars := []*Bar{
		minuteBar(base, 1.1000, 1.1005, 1.0998, 1.1002),
		minuteBar(base.Add(1*time.Minute), 1.1002, 1.1010, 1.1001, 1.1008),
		minuteBar(base.Add(2*time.Minute), 1.1008, 1.1009, 1.0995, 1.0996),
		minuteBar(base.Add(3*time.Minute), 1.0996, 1.1001, 1.0996, 1.1000),
		minuteBar(base.Add(4*time.Minute), 1.1000, 1.1003, 1.0999, 1.1001),
		minuteBar(base.Add(5*time.Minute), 1.1001, 1.1004, 1.1000, 1.1002),
	}
	bars[0].SpreadAvgReference = ptrFloat(0.0001)
	bars[0].TickCountReference = ptrInt(4)
	bars[1].SpreadAvgReference = ptrFloat(0.0003)
	bars[1].TickCountReference = ptrInt(6)

	out := Interval5m.Resample(bars)
	require.Len(t, out, 2)

	first := out[0]
	assert.Equal(t, base, first.Timestamp)
	assert.Equal(t, 1.1000, first.Open)
	assert.Equal(t, 1.1010, first.High)
	assert.Equal(t, 1.0995, first.Low)
	assert.Equal(t, 1.1001, first.Close)
	assert.Equal(t, int64(50), first.TickCountExecution)
	require.NotNil(t, first.TickCountReference)
	assert.Equal(t, int64(10), *first.TickCountReference)
	assert.InDelta(t, 0.0002, first.SpreadAvgExecution, 1e-12)
	require.NotNil(t, first.SpreadAvgReference)
	assert.InDelta(t, 0.0002, *first.SpreadAvgReference, 1e-12)

	second := out[1]
	assert.Equal(t, base.Add(5*time.Minute), second.Timestamp)
	assert.Equal(t, int64(10), second.TickCountExecution)
	// No reference data anywhere in the bucket stays nil.
	assert.Nil(t, second.SpreadAvgReference)
	assert.Nil(t, second.TickCountReference)
}

func TestResample_GapsKeepBucketsSeparate(t *testing.T) {
	// Two minutes forty minutes apart land in distinct 15m buckets even
	// though nothing exists in between.
	a := minuteBar(time.Date(2024, 6, 3, 9, 1, 0, 0, time.UTC), 1, 1, 1, 1)
	b := minuteBar(time.Date(2024, 6, 3, 9, 41, 0, 0, time.UTC), 2, 2, 2, 2)

	out := Interval15m.Resample([]*Bar{a, b})
	require.Len(t, out, 2)
	assert.Equal(t, time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), out[0].Timestamp)
	assert.Equal(t, time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC), out[1].Timestamp)
}

func TestResample_OneMinutePassthrough(t *testing.T) {
	bars := []*Bar{minuteBar(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), 1, 2, 0.5, 1.5)}
	assert.Equal(t, bars, Interval1m.Resample(bars))
	assert.Empty(t, Interval1h.Resample(nil))
}
