package schedule

import "time"

// Interval полуоткрытый интервал времени [Start, End).
// Единое представление занятости для бронирований, занятий и слотов учеников.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps проверяет пересечение двух интервалов.
// Границы не считаются пересечением: слот до 15:00 не конфликтует
// со слотом, начинающимся в 15:00.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}
