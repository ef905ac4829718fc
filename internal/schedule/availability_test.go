package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mondayWindow(t *testing.T) Interval {
	t.Helper()
	date := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC) // понедельник
	w, open := BusinessHours(WeekdayIndex(date))
	require.True(t, open)
	return w.WindowOn(date)
}

func TestBuildSlotsFullDay(t *testing.T) {
	window := mondayWindow(t)

	slots := BuildSlots(1, window, time.Hour, nil)

	// Понедельник 09:00-21:00: двенадцать часовых слотов, все свободны
	require.Len(t, slots, 12)
	assert.Equal(t, window.Start, slots[0].StartTime)
	assert.Equal(t, window.End, slots[len(slots)-1].EndTime)
	for _, s := range slots {
		assert.True(t, s.IsAvailable)
		assert.Equal(t, int64(1), s.RoomID)
		assert.Equal(t, time.Hour, s.EndTime.Sub(s.StartTime))
	}
}

func TestBuildSlotsSaturday(t *testing.T) {
	date := time.Date(2025, time.September, 6, 0, 0, 0, 0, time.UTC) // суббота
	w, open := BusinessHours(WeekdayIndex(date))
	require.True(t, open)

	slots := BuildSlots(1, w.WindowOn(date), time.Hour, nil)

	// Суббота 09:00-13:00: ровно четыре слота, ни одного после 13:00
	require.Len(t, slots, 4)
	close := time.Date(2025, time.September, 6, 13, 0, 0, 0, time.UTC)
	for i, s := range slots {
		assert.Equal(t, 9+i, s.StartTime.Hour())
		assert.False(t, s.StartTime.After(close) || s.StartTime.Equal(close))
		assert.False(t, s.EndTime.After(close))
	}
}

func TestBuildSlotsMarksBusy(t *testing.T) {
	window := mondayWindow(t)
	day := window.Start.Truncate(24 * time.Hour)
	busy := []Interval{{
		Start: day.Add(14 * time.Hour),
		End:   day.Add(15 * time.Hour),
	}}

	slots := BuildSlots(1, window, time.Hour, busy)

	// Занятый слот помечается, но не выпадает из результата
	require.Len(t, slots, 12)
	for _, s := range slots {
		if s.StartTime.Hour() == 14 {
			assert.False(t, s.IsAvailable)
		} else {
			assert.True(t, s.IsAvailable, "slot %v", s.StartTime)
		}
	}
}

func TestBuildSlotsBoundaryDoesNotBlock(t *testing.T) {
	window := mondayWindow(t)
	day := window.Start.Truncate(24 * time.Hour)
	// Занято 14:00-15:00; слоты 13:00-14:00 и 15:00-16:00 свободны
	busy := []Interval{{Start: day.Add(14 * time.Hour), End: day.Add(15 * time.Hour)}}

	slots := BuildSlots(1, window, time.Hour, busy)
	for _, s := range slots {
		switch s.StartTime.Hour() {
		case 13, 15:
			assert.True(t, s.IsAvailable)
		case 14:
			assert.False(t, s.IsAvailable)
		}
	}
}

func TestBuildSlotsDropsPartialTail(t *testing.T) {
	window := mondayWindow(t)

	// 12 часов не делятся на 90 минут: последний слот 19:30-21:00, хвоста нет
	slots := BuildSlots(1, window, 90*time.Minute, nil)

	require.Len(t, slots, 8)
	assert.Equal(t, window.End, slots[len(slots)-1].EndTime)

	// Шаг 210 минут: помещаются три слота, остаток 90 минут отбрасывается
	slots = BuildSlots(1, window, 210*time.Minute, nil)
	require.Len(t, slots, 3)
	assert.True(t, slots[len(slots)-1].EndTime.Before(window.End))
}

func TestBuildSlotsOrderedAndDisjoint(t *testing.T) {
	window := mondayWindow(t)

	slots := BuildSlots(1, window, 45*time.Minute, nil)
	require.NotEmpty(t, slots)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i].StartTime.After(slots[i-1].StartTime))
		// Слоты стыкуются без пересечений
		assert.False(t, slots[i].StartTime.Before(slots[i-1].EndTime))
	}
}
