package handlers

import (
	"net/http"

	"github.com/Freeeeeet/studio_booking/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	auth     *service.AuthService
	students *service.StudentService
}

func NewAuthHandler(auth *service.AuthService, students *service.StudentService) *AuthHandler {
	return &AuthHandler{auth: auth, students: students}
}

// Register POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := h.auth.Register(c.Request().Context(), req.Email, req.Password, req.FullName, req.Phone)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, user)
}

// Login POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me GET /auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Detail: "not authenticated"})
	}

	user, err := h.auth.GetUser(c.Request().Context(), actor.UserID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// MyClasses GET /auth/me/classes — слоты ученика, привязанные к email актора
func (h *AuthHandler) MyClasses(c echo.Context) error {
	email, ok := emailFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Detail: "not authenticated"})
	}

	students, err := h.students.ListForEmail(c.Request().Context(), email)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, students)
}
