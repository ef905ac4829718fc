package schedule

import (
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
)

// BuildSlots генерирует слоты фиксированной длительности внутри рабочего окна.
// Слоты идут подряд без пересечений; последний слот — последний, целиком
// помещающийся в окно, неполный хвост отбрасывается. Занятые слоты
// помечаются, но никогда не пропускаются: результат всегда покрывает всё окно.
// step должен быть положительным, это проверяет вызывающая сторона.
func BuildSlots(roomID int64, window Interval, step time.Duration, busy []Interval) []model.TimeSlot {
	slots := []model.TimeSlot{}

	for start := window.Start; !start.Add(step).After(window.End); start = start.Add(step) {
		candidate := Interval{Start: start, End: start.Add(step)}

		available := true
		for _, b := range busy {
			if candidate.Overlaps(b) {
				available = false
				break
			}
		}

		slots = append(slots, model.TimeSlot{
			RoomID:      roomID,
			StartTime:   candidate.Start,
			EndTime:     candidate.End,
			IsAvailable: available,
		})
	}

	return slots
}
