package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	bookings *service.BookingService
}

func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// AvailableSlots GET /bookings/available-slots?room_id=&date=YYYY-MM-DD&duration=
// duration в минутах, по умолчанию 60
func (h *BookingHandler) AvailableSlots(c echo.Context) error {
	roomID, err := strconv.ParseInt(c.QueryParam("room_id"), 10, 64)
	if err != nil || roomID <= 0 {
		return badRequest(c, "room_id is required")
	}

	date, err := time.Parse("2006-01-02", c.QueryParam("date"))
	if err != nil {
		return badRequest(c, "date must be in YYYY-MM-DD format")
	}

	duration := service.DefaultSlotDuration
	if raw := c.QueryParam("duration"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "duration must be a number of minutes")
		}
		duration = time.Duration(minutes) * time.Minute
	}

	slots, err := h.bookings.GetAvailableSlots(c.Request().Context(), roomID, date, duration)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, slots)
}

// Create POST /bookings
func (h *BookingHandler) Create(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Detail: "not authenticated"})
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	booking, err := h.bookings.Create(c.Request().Context(), actor.UserID, req.RoomID, req.StartTime, req.EndTime, req.Notes)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, booking)
}

// MyBookings GET /bookings/my-bookings
func (h *BookingHandler) MyBookings(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Detail: "not authenticated"})
	}

	limit, offset := pagination(c)
	bookings, err := h.bookings.ListForUser(c.Request().Context(), actor.UserID, limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, bookings)
}

// Update PUT /bookings/:id — владелец или админ
func (h *BookingHandler) Update(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Detail: "not authenticated"})
	}

	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	booking, err := h.bookings.Update(c.Request().Context(), actor, id, model.BookingUpdate{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
		Status:    req.Status,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, booking)
}

// Delete DELETE /bookings/:id — отмена бронирования, владелец или админ
func (h *BookingHandler) Delete(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Detail: "not authenticated"})
	}

	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	if err := h.bookings.Cancel(c.Request().Context(), actor, id); err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "booking cancelled"})
}
