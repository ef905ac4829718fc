package model

import "time"

type ClassStatus string

const (
	ClassStatusScheduled ClassStatus = "scheduled" // Запланированное занятие
	ClassStatusCancelled ClassStatus = "cancelled"
	ClassStatusCompleted ClassStatus = "completed"
)

// Class занятие, назначенное администратором. Поля IsRecurring и
// RecurrencePattern справочные: одна запись — одно занятие, шаблон
// не разворачивается в серию.
type Class struct {
	ID                int64       `json:"id"`
	RoomID            int64       `json:"room_id"`
	TeacherName       string      `json:"teacher_name"`
	ClassName         string      `json:"class_name"`
	StudentName       *string     `json:"student_name,omitempty"`
	StartTime         time.Time   `json:"start_time"`
	EndTime           time.Time   `json:"end_time"`
	IsRecurring       bool        `json:"is_recurring"`
	RecurrencePattern *string     `json:"recurrence_pattern,omitempty"`
	Notes             *string     `json:"notes,omitempty"`
	Status            ClassStatus `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`

	Room *Room `json:"room,omitempty"` // не из таблицы classes
}

// ClassUpdate частичное обновление занятия
type ClassUpdate struct {
	TeacherName       *string
	ClassName         *string
	StudentName       *string
	StartTime         *time.Time
	EndTime           *time.Time
	IsRecurring       *bool
	RecurrencePattern *string
	Notes             *string
	Status            *ClassStatus
}

// ApplyTo переносит заполненные поля на занятие
func (u ClassUpdate) ApplyTo(c *Class) {
	if u.TeacherName != nil {
		c.TeacherName = *u.TeacherName
	}
	if u.ClassName != nil {
		c.ClassName = *u.ClassName
	}
	if u.StudentName != nil {
		c.StudentName = u.StudentName
	}
	if u.StartTime != nil {
		c.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		c.EndTime = *u.EndTime
	}
	if u.IsRecurring != nil {
		c.IsRecurring = *u.IsRecurring
	}
	if u.RecurrencePattern != nil {
		c.RecurrencePattern = u.RecurrencePattern
	}
	if u.Notes != nil {
		c.Notes = u.Notes
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
}
