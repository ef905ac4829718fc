package handlers

import (
	"net/http"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/service"
	"github.com/labstack/echo/v4"
)

type StudentHandler struct {
	students *service.StudentService
}

func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List GET /students — только админ
func (h *StudentHandler) List(c echo.Context) error {
	limit, offset := pagination(c)

	students, err := h.students.List(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, students)
}

// Get GET /students/:id — только админ
func (h *StudentHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid student id")
	}

	student, err := h.students.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, student)
}

// ListByRoom GET /students/room/:room_id — только админ
func (h *StudentHandler) ListByRoom(c echo.Context) error {
	roomID, err := pathID(c, "room_id")
	if err != nil {
		return badRequest(c, "invalid room id")
	}

	students, err := h.students.ListByRoom(c.Request().Context(), roomID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, students)
}

// Create POST /students — только админ
func (h *StudentHandler) Create(c echo.Context) error {
	var req createStudentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	student, err := h.students.Create(c.Request().Context(), &model.Student{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		TeacherName: req.TeacherName,
		RoomID:      req.RoomID,
		Weekday:     req.Weekday,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Notes:       req.Notes,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, student)
}

// Update PUT /students/:id — только админ
func (h *StudentHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid student id")
	}

	var req updateStudentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	student, err := h.students.Update(c.Request().Context(), id, model.StudentUpdate{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		TeacherName: req.TeacherName,
		RoomID:      req.RoomID,
		Weekday:     req.Weekday,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Notes:       req.Notes,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, student)
}

// Delete DELETE /students/:id — мягкое удаление, только админ
func (h *StudentHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid student id")
	}

	if err := h.students.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "student deactivated"})
}
