package service

import "errors"

// Ошибки бизнес-логики. HTTP-слой маппит их на коды ответов через errors.Is,
// сервисы оборачивают их в fmt.Errorf с контекстом.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("time conflict")
	ErrValidation         = errors.New("invalid input")
	ErrForbidden          = errors.New("not enough permissions")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)
