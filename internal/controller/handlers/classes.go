package handlers

import (
	"net/http"
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/service"
	"github.com/labstack/echo/v4"
)

type ClassHandler struct {
	classes *service.ClassService
}

func NewClassHandler(classes *service.ClassService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// List GET /classes
func (h *ClassHandler) List(c echo.Context) error {
	limit, offset := pagination(c)

	classes, err := h.classes.List(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, classes)
}

// Get GET /classes/:id
func (h *ClassHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid class id")
	}

	class, err := h.classes.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, class)
}

// ListByRoom GET /classes/room/:room_id?from=&to= (RFC 3339, опционально)
func (h *ClassHandler) ListByRoom(c echo.Context) error {
	roomID, err := pathID(c, "room_id")
	if err != nil {
		return badRequest(c, "invalid room id")
	}

	var from, to *time.Time
	if raw := c.QueryParam("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(c, "from must be in RFC 3339 format")
		}
		from = &t
	}
	if raw := c.QueryParam("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(c, "to must be in RFC 3339 format")
		}
		to = &t
	}

	classes, err := h.classes.ListByRoom(c.Request().Context(), roomID, from, to)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, classes)
}

// Create POST /classes — только админ
func (h *ClassHandler) Create(c echo.Context) error {
	var req createClassRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	class, err := h.classes.Create(c.Request().Context(), &model.Class{
		RoomID:            req.RoomID,
		TeacherName:       req.TeacherName,
		ClassName:         req.ClassName,
		StudentName:       req.StudentName,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		IsRecurring:       req.IsRecurring,
		RecurrencePattern: req.RecurrencePattern,
		Notes:             req.Notes,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, class)
}

// Update PUT /classes/:id — только админ
func (h *ClassHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid class id")
	}

	var req updateClassRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	class, err := h.classes.Update(c.Request().Context(), id, model.ClassUpdate{
		TeacherName:       req.TeacherName,
		ClassName:         req.ClassName,
		StudentName:       req.StudentName,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		IsRecurring:       req.IsRecurring,
		RecurrencePattern: req.RecurrencePattern,
		Notes:             req.Notes,
		Status:            req.Status,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, class)
}

// Delete DELETE /classes/:id — только админ
func (h *ClassHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid class id")
	}

	if err := h.classes.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "class deleted"})
}
