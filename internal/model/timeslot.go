package model

import "time"

// TimeSlot слот расписания, вычисляемый движком доступности.
// Не хранится в базе: живёт только в ответе на запрос доступных слотов.
type TimeSlot struct {
	RoomID      int64     `json:"room_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
}
