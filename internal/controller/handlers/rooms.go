package handlers

import (
	"net/http"

	"github.com/Freeeeeet/studio_booking/internal/service"
	"github.com/labstack/echo/v4"
)

type RoomHandler struct {
	rooms *service.RoomService
}

func NewRoomHandler(rooms *service.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// List GET /rooms — только активные комнаты
func (h *RoomHandler) List(c echo.Context) error {
	limit, offset := pagination(c)

	rooms, err := h.rooms.List(c.Request().Context(), true, limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, rooms)
}

// Get GET /rooms/:id
func (h *RoomHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid room id")
	}

	room, err := h.rooms.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	if !room.IsActive {
		return c.JSON(http.StatusNotFound, errorResponse{Detail: "room not found"})
	}

	return c.JSON(http.StatusOK, room)
}
