package model

// Room репетиционная комната. Удаление всегда мягкое: комната деактивируется,
// но запись остаётся, пока на неё ссылаются бронирования.
type Room struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Capacity    int     `json:"capacity"`
	Equipment   *string `json:"equipment,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// RoomUpdate частичное обновление комнаты
type RoomUpdate struct {
	Name        *string
	Description *string
	Capacity    *int
	Equipment   *string
	IsActive    *bool
}

// ApplyTo переносит заполненные поля на комнату
func (u RoomUpdate) ApplyTo(room *Room) {
	if u.Name != nil {
		room.Name = *u.Name
	}
	if u.Description != nil {
		room.Description = u.Description
	}
	if u.Capacity != nil {
		room.Capacity = *u.Capacity
	}
	if u.Equipment != nil {
		room.Equipment = u.Equipment
	}
	if u.IsActive != nil {
		room.IsActive = *u.IsActive
	}
}
