package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessHours(t *testing.T) {
	tests := []struct {
		weekday   int
		open      bool
		openHour  int
		closeHour int
	}{
		{Monday, true, 9, 21},
		{Tuesday, true, 9, 21},
		{Wednesday, true, 9, 21},
		{Thursday, true, 9, 21},
		{Friday, false, 0, 0},
		{Saturday, true, 9, 13},
		{Sunday, false, 0, 0},
	}

	for _, tt := range tests {
		w, open := BusinessHours(tt.weekday)
		assert.Equal(t, tt.open, open, "weekday %d", tt.weekday)
		if open {
			assert.Equal(t, tt.openHour, w.OpenHour)
			assert.Equal(t, tt.closeHour, w.CloseHour)
		}
	}
}

func TestWeekdayIndex(t *testing.T) {
	// 1 сентября 2025 — понедельник
	monday := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, WeekdayIndex(monday.AddDate(0, 0, i)))
	}
}

func TestWindowOn(t *testing.T) {
	date := time.Date(2025, time.September, 1, 17, 42, 13, 0, time.UTC)

	w, open := BusinessHours(WeekdayIndex(date))
	require.True(t, open)

	window := w.WindowOn(date)
	assert.Equal(t, time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2025, time.September, 1, 21, 0, 0, 0, time.UTC), window.End)
}
