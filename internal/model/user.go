package model

import "time"

type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	FullName       string    `json:"full_name"`
	Phone          *string   `json:"phone,omitempty"`
	IsActive       bool      `json:"is_active"`
	IsAdmin        bool      `json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserUpdate частичное обновление пользователя: применяются только заполненные поля
type UserUpdate struct {
	FullName *string
	Phone    *string
	IsActive *bool
}

// ApplyTo переносит заполненные поля на пользователя
func (u UserUpdate) ApplyTo(user *User) {
	if u.FullName != nil {
		user.FullName = *u.FullName
	}
	if u.Phone != nil {
		user.Phone = u.Phone
	}
	if u.IsActive != nil {
		user.IsActive = *u.IsActive
	}
}
