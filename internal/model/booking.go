package model

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed" // Активное бронирование
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking разовое бронирование комнаты пользователем.
// Для одной комнаты два confirmed-бронирования не могут пересекаться по времени.
type Booking struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"user_id"`
	RoomID    int64         `json:"room_id"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Notes     *string       `json:"notes,omitempty"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`

	// Дополнительные поля для удобства (не из таблицы bookings)
	Room *Room `json:"room,omitempty"`
	User *User `json:"user,omitempty"`
}

// BookingUpdate частичное обновление бронирования
type BookingUpdate struct {
	StartTime *time.Time
	EndTime   *time.Time
	Notes     *string
	Status    *BookingStatus
}

// ApplyTo переносит заполненные поля на бронирование
func (u BookingUpdate) ApplyTo(b *Booking) {
	if u.StartTime != nil {
		b.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		b.EndTime = *u.EndTime
	}
	if u.Notes != nil {
		b.Notes = u.Notes
	}
	if u.Status != nil {
		b.Status = *u.Status
	}
}
