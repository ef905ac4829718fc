package handlers

import (
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
)

// errorResponse тело ошибки API
type errorResponse struct {
	Detail string `json:"detail"`
}

type registerRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type createBookingRequest struct {
	RoomID    int64     `json:"room_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Notes     *string   `json:"notes"`
}

type updateBookingRequest struct {
	StartTime *time.Time           `json:"start_time"`
	EndTime   *time.Time           `json:"end_time"`
	Notes     *string              `json:"notes"`
	Status    *model.BookingStatus `json:"status"`
}

type createRoomRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Capacity    int     `json:"capacity"`
	Equipment   *string `json:"equipment"`
}

type updateRoomRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Capacity    *int    `json:"capacity"`
	Equipment   *string `json:"equipment"`
	IsActive    *bool   `json:"is_active"`
}

type createClassRequest struct {
	RoomID            int64     `json:"room_id"`
	TeacherName       string    `json:"teacher_name"`
	ClassName         string    `json:"class_name"`
	StudentName       *string   `json:"student_name"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	IsRecurring       bool      `json:"is_recurring"`
	RecurrencePattern *string   `json:"recurrence_pattern"`
	Notes             *string   `json:"notes"`
}

type updateClassRequest struct {
	TeacherName       *string            `json:"teacher_name"`
	ClassName         *string            `json:"class_name"`
	StudentName       *string            `json:"student_name"`
	StartTime         *time.Time         `json:"start_time"`
	EndTime           *time.Time         `json:"end_time"`
	IsRecurring       *bool              `json:"is_recurring"`
	RecurrencePattern *string            `json:"recurrence_pattern"`
	Notes             *string            `json:"notes"`
	Status            *model.ClassStatus `json:"status"`
}

type createStudentRequest struct {
	Name        string  `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	TeacherName string  `json:"teacher_name"`
	RoomID      int64   `json:"room_id"`
	Weekday     int     `json:"weekday"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Notes       *string `json:"notes"`
}

type updateStudentRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	TeacherName *string `json:"teacher_name"`
	RoomID      *int64  `json:"room_id"`
	Weekday     *int    `json:"weekday"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Notes       *string `json:"notes"`
	IsActive    *bool   `json:"is_active"`
}

type updateUserRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"is_active"`
}
