package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustExchange(t *testing.T, code string) *Exchange {
	t.Helper()
	for _, def := range Defaults() {
		if def.Code == code {
			ex, err := NewExchange(def)
			require.NoError(t, err)
			return ex
		}
	}
	t.Fatalf("no builtin definition for %s", code)
	return nil
}

func TestExchange_IsOpenAt_LunchBreak(t *testing.T) {
	tokyo := mustExchange(t, "tokyo")
	loc := tokyo.Timezone()

	// Monday 2024-06-03, a regular trading day.
	testCases := []struct {
		name  string
		local time.Time
		want  bool
	}{
		{name: "before open", local: time.Date(2024, 6, 3, 8, 59, 0, 0, loc), want: false},
		{name: "morning session", local: time.Date(2024, 6, 3, 11, 0, 0, 0, loc), want: true},
		{name: "last morning minute", local: time.Date(2024, 6, 3, 11, 29, 0, 0, loc), want: true},
		{name: "lunch break", local: time.Date(2024, 6, 3, 11, 45, 0, 0, loc), want: false},
		{name: "afternoon session", local: time.Date(2024, 6, 3, 12, 45, 0, 0, loc), want: true},
		{name: "after close", local: time.Date(2024, 6, 3, 15, 0, 0, 0, loc), want: false},
		{name: "midnight", local: time.Date(2024, 6, 3, 0, 0, 0, 0, loc), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			open, err := tokyo.IsOpenAt(context.Background(), tc.local.UTC())
			require.NoError(t, err)
			assert.Equal(t, tc.want, open)
		})
	}
}

func TestExchange_IsOpenAt_ScheduleChange(t *testing.T) {
	tokyo := mustExchange(t, "tokyo")
	loc := tokyo.Timezone()

	// The afternoon close moved from 15:00 to 15:30 effective 2024-11-05,
	// so 15:15 local flips from closed to open across that date.
	before, err := tokyo.IsOpenAt(context.Background(), time.Date(2024, 11, 1, 15, 15, 0, 0, loc))
	require.NoError(t, err)
	assert.False(t, before)

	after, err := tokyo.IsOpenAt(context.Background(), time.Date(2024, 11, 5, 15, 15, 0, 0, loc))
	require.NoError(t, err)
	assert.True(t, after)

	// The morning session is untouched by the change.
	morning, err := tokyo.IsOpenAt(context.Background(), time.Date(2024, 11, 5, 10, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.True(t, morning)
}

func TestExchange_IsOpenAt_WeekendAndHoliday(t *testing.T) {
	newyork := mustExchange(t, "newyork")
	loc := newyork.Timezone()

	saturday, err := newyork.IsOpenAt(context.Background(), time.Date(2024, 6, 1, 10, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.False(t, saturday)

	independenceDay, err := newyork.IsOpenAt(context.Background(), time.Date(2024, 7, 4, 10, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.False(t, independenceDay)

	regularDay, err := newyork.IsOpenAt(context.Background(), time.Date(2024, 7, 5, 10, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.True(t, regularDay)
}

func TestExchange_SessionsOn(t *testing.T) {
	tokyo := mustExchange(t, "tokyo")
	loc := tokyo.Timezone()

	t.Run("trading day has two sessions in UTC", func(t *testing.T) {
		sessions, err := tokyo.SessionsOn(context.Background(), time.Date(2024, 6, 3, 12, 0, 0, 0, loc))
		require.NoError(t, err)
		require.Len(t, sessions, 2)

		// JST is UTC+9: 09:00 local = 00:00 UTC.
		assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), sessions[0].Open)
		assert.Equal(t, time.Date(2024, 6, 3, 2, 30, 0, 0, time.UTC), sessions[0].Close)
		assert.Equal(t, time.Date(2024, 6, 3, 3, 30, 0, 0, time.UTC), sessions[1].Open)
		assert.Equal(t, time.Date(2024, 6, 3, 6, 0, 0, 0, time.UTC), sessions[1].Close)
	})

	t.Run("holiday has none", func(t *testing.T) {
		sessions, err := tokyo.SessionsOn(context.Background(), time.Date(2024, 1, 1, 12, 0, 0, 0, loc))
		require.NoError(t, err)
		assert.Empty(t, sessions)
	})

	t.Run("weekend has none", func(t *testing.T) {
		sessions, err := tokyo.SessionsOn(context.Background(), time.Date(2024, 6, 2, 12, 0, 0, 0, loc))
		require.NoError(t, err)
		assert.Empty(t, sessions)
	})
}

func TestExchange_HolidaysIn(t *testing.T) {
	newyork := mustExchange(t, "newyork")

	holidays, err := newyork.HolidaysIn(
		context.Background(),
		time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Contains(t, holidays, "2024-07-04")
	assert.NotContains(t, holidays, "2024-05-27")
	assert.Len(t, holidays, 1)
}

func TestNewExchange_Validation(t *testing.T) {
	testCases := []struct {
		name string
		def  Definition
	}{
		{
			name: "empty code",
			def:  Definition{Timezone: "UTC", Schedules: []Schedule{{Sessions: []Session{{Open: "09:00", Close: "17:00"}}}}},
		},
		{
			name: "bad timezone",
			def:  Definition{Code: "x", Timezone: "Mars/Olympus", Schedules: []Schedule{{Sessions: []Session{{Open: "09:00", Close: "17:00"}}}}},
		},
		{
			name: "no schedules",
			def:  Definition{Code: "x", Timezone: "UTC"},
		},
		{
			name: "inverted session",
			def:  Definition{Code: "x", Timezone: "UTC", Schedules: []Schedule{{Sessions: []Session{{Open: "17:00", Close: "09:00"}}}}},
		},
		{
			name: "overlapping sessions",
			def: Definition{Code: "x", Timezone: "UTC", Schedules: []Schedule{
				{Sessions: []Session{{Open: "09:00", Close: "12:00"}, {Open: "11:00", Close: "15:00"}}},
			}},
		},
		{
			name: "bad holiday date",
			def: Definition{Code: "x", Timezone: "UTC", Holidays: []string{"01/02/2024"},
				Schedules: []Schedule{{Sessions: []Session{{Open: "09:00", Close: "17:00"}}}}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewExchange(tc.def)
			assert.Error(t, err)
		})
	}
}
