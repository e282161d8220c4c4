package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentDateBounds(t *testing.T) {
	t.Run("Value with time-of-day is an exact lower bound", func(t *testing.T) {
		value := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
		from, to := AppointmentDateBounds(value)
		assert.Equal(t, value, from)
		assert.Nil(t, to)
	})

	t.Run("Bare date covers the whole day", func(t *testing.T) {
		value := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		from, to := AppointmentDateBounds(value)
		assert.Equal(t, value, from)
		require.NotNil(t, to)
		assert.Equal(t, value.Add(24*time.Hour), *to)
	})
}

func TestMonthBounds(t *testing.T) {
	now := time.Date(2025, 12, 15, 8, 0, 0, 0, time.UTC)
	from, to := MonthBounds(now)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestLastWeeks(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	weeks := LastWeeks(now, 5)
	require.Len(t, weeks, 5)

	assert.Equal(t, now, weeks[4].End)
	for i, week := range weeks {
		assert.Equal(t, week.End.AddDate(0, 0, -6), week.Start, "week %d", i)
		if i > 0 {
			assert.True(t, week.End.After(weeks[i-1].End))
		}
	}
	assert.Contains(t, weeks[0].Label, "Week 1")
	assert.Contains(t, weeks[4].Label, "Week 5")
}
