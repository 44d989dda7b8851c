package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatePolicyDetermine(t *testing.T) {
	policy := DefaultLatePolicy

	tests := []struct {
		name     string
		hour     int
		minute   int
		expected Status
	}{
		{name: "well before start", hour: 8, minute: 0, expected: StatusPresent},
		{name: "one minute before start", hour: 8, minute: 59, expected: StatusPresent},
		{name: "exactly at start", hour: 9, minute: 0, expected: StatusPresent},
		{name: "last grace minute", hour: 9, minute: 15, expected: StatusPresent},
		{name: "first minute past grace", hour: 9, minute: 16, expected: StatusLate},
		{name: "mid morning", hour: 10, minute: 0, expected: StatusLate},
		{name: "late afternoon", hour: 16, minute: 45, expected: StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arrival := time.Date(2025, 3, 10, tt.hour, tt.minute, 0, 0, time.UTC)
			assert.Equal(t, tt.expected, policy.Determine(arrival))
		})
	}
}

func TestLatePolicyDetermineZeroTime(t *testing.T) {
	assert.Equal(t, StatusAbsent, DefaultLatePolicy.Determine(time.Time{}))
}

func TestLatePolicyDetermineCustomStart(t *testing.T) {
	policy := LatePolicy{StartHour: 8, StartMinute: 30, GraceMinutes: 10}

	onTime := time.Date(2025, 3, 10, 8, 40, 0, 0, time.UTC)
	assert.Equal(t, StatusPresent, policy.Determine(onTime))

	late := time.Date(2025, 3, 10, 8, 41, 0, 0, time.UTC)
	assert.Equal(t, StatusLate, policy.Determine(late))
}

func TestTotalHours(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("standard workday", func(t *testing.T) {
		checkOut := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)
		hours, err := TotalHours(checkIn, checkOut)
		require.NoError(t, err)
		assert.Equal(t, 8.5, hours)
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		checkOut := checkIn.Add(7*time.Hour + 23*time.Minute + 45*time.Second)
		hours, err := TotalHours(checkIn, checkOut)
		require.NoError(t, err)
		assert.Equal(t, 7.4, hours)
	})

	t.Run("same instant is zero", func(t *testing.T) {
		hours, err := TotalHours(checkIn, checkIn)
		require.NoError(t, err)
		assert.Equal(t, 0.0, hours)
	})

	t.Run("check-out before check-in is rejected", func(t *testing.T) {
		checkOut := checkIn.Add(-time.Minute)
		_, err := TotalHours(checkIn, checkOut)
		assert.ErrorIs(t, err, ErrCheckOutBeforeCheckIn)
	})
}

func TestDayOf(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// 23:30 UTC is already the next day in Jakarta (UTC+7)
	instant := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	day := DayOf(instant, loc)

	assert.Equal(t, 2025, day.Year())
	assert.Equal(t, time.March, day.Month())
	assert.Equal(t, 11, day.Day())
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, loc, day.Location())
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2025, time.February, time.UTC)

	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, end.Before(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 28, end.Day())
}
