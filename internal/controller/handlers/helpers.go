package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Freeeeeet/studio_booking/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

// writeServiceError переводит ошибки сервисного слоя в HTTP-статусы.
// Неопознанные ошибки отдаются как 500 без деталей.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, errorResponse{Detail: "incorrect email or password"})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Detail: "not enough permissions"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Detail: err.Error()})
	case errors.Is(err, service.ErrEmailTaken):
		return c.JSON(http.StatusConflict, errorResponse{Detail: "email already registered"})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, errorResponse{Detail: err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Detail: "internal server error"})
	}
}

func badRequest(c echo.Context, detail string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Detail: detail})
}

// pathID разбирает числовой параметр пути
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// pagination разбирает limit/offset из query с разумными границами
func pagination(c echo.Context) (limit, offset int) {
	limit = defaultLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 && v <= maxLimit {
		limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
