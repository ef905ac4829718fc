package model

import "time"

// Student ученик с постоянным еженедельным слотом в комнате.
// Время хранится как время суток ("14:00"), а не абсолютная дата:
// слот повторяется каждую неделю в указанный день.
// Weekday: 0 = понедельник ... 6 = воскресенье.
type Student struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	TeacherName string    `json:"teacher_name"`
	RoomID      int64     `json:"room_id"`
	Weekday     int       `json:"weekday"`
	StartTime   string    `json:"start_time"` // формат "HH:MM"
	EndTime     string    `json:"end_time"`   // формат "HH:MM"
	Notes       *string   `json:"notes,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// StudentUpdate частичное обновление ученика
type StudentUpdate struct {
	Name        *string
	Email       *string
	Phone       *string
	TeacherName *string
	RoomID      *int64
	Weekday     *int
	StartTime   *string
	EndTime     *string
	Notes       *string
	IsActive    *bool
}

// ApplyTo переносит заполненные поля на ученика
func (u StudentUpdate) ApplyTo(s *Student) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Email != nil {
		s.Email = u.Email
	}
	if u.Phone != nil {
		s.Phone = u.Phone
	}
	if u.TeacherName != nil {
		s.TeacherName = *u.TeacherName
	}
	if u.RoomID != nil {
		s.RoomID = *u.RoomID
	}
	if u.Weekday != nil {
		s.Weekday = *u.Weekday
	}
	if u.StartTime != nil {
		s.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		s.EndTime = *u.EndTime
	}
	if u.Notes != nil {
		s.Notes = u.Notes
	}
	if u.IsActive != nil {
		s.IsActive = *u.IsActive
	}
}
