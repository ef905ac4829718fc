package handlers

import (
	"net/http"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/service"
	"github.com/labstack/echo/v4"
)

// AdminHandler операции админки: пользователи, комнаты, все бронирования
type AdminHandler struct {
	auth     *service.AuthService
	rooms    *service.RoomService
	bookings *service.BookingService
}

func NewAdminHandler(auth *service.AuthService, rooms *service.RoomService, bookings *service.BookingService) *AdminHandler {
	return &AdminHandler{auth: auth, rooms: rooms, bookings: bookings}
}

// ListUsers GET /admin/users
func (h *AdminHandler) ListUsers(c echo.Context) error {
	limit, offset := pagination(c)

	users, err := h.auth.ListUsers(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, users)
}

// GetUser GET /admin/users/:id
func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	user, err := h.auth.GetUser(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateUser PUT /admin/users/:id
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := h.auth.UpdateUser(c.Request().Context(), id, model.UserUpdate{
		FullName: req.FullName,
		Phone:    req.Phone,
		IsActive: req.IsActive,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// ListRooms GET /admin/rooms — включая деактивированные
func (h *AdminHandler) ListRooms(c echo.Context) error {
	limit, offset := pagination(c)

	rooms, err := h.rooms.List(c.Request().Context(), false, limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, rooms)
}

// CreateRoom POST /admin/rooms
func (h *AdminHandler) CreateRoom(c echo.Context) error {
	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	room, err := h.rooms.Create(c.Request().Context(), &model.Room{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Equipment:   req.Equipment,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, room)
}

// UpdateRoom PUT /admin/rooms/:id
func (h *AdminHandler) UpdateRoom(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid room id")
	}

	var req updateRoomRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	room, err := h.rooms.Update(c.Request().Context(), id, model.RoomUpdate{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Equipment:   req.Equipment,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, room)
}

// DeleteRoom DELETE /admin/rooms/:id — деактивация
func (h *AdminHandler) DeleteRoom(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid room id")
	}

	if err := h.rooms.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "room deactivated"})
}

// ListBookings GET /admin/bookings — все бронирования
func (h *AdminHandler) ListBookings(c echo.Context) error {
	limit, offset := pagination(c)

	bookings, err := h.bookings.ListAll(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, bookings)
}
