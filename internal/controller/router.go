package controller

import (
	"github.com/Freeeeeet/studio_booking/internal/controller/handlers"
	"github.com/Freeeeeet/studio_booking/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Services сервисы, которые нужны HTTP-слою
type Services struct {
	Auth     *service.AuthService
	Rooms    *service.RoomService
	Bookings *service.BookingService
	Classes  *service.ClassService
	Students *service.StudentService
}

// NewRouter собирает echo-приложение: middleware, обработчики, маршруты
func NewRouter(svcs Services, jwtSecret string, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(requestLogger(logger))

	auth := handlers.NewAuthHandler(svcs.Auth, svcs.Students)
	rooms := handlers.NewRoomHandler(svcs.Rooms)
	bookings := handlers.NewBookingHandler(svcs.Bookings)
	classes := handlers.NewClassHandler(svcs.Classes)
	students := handlers.NewStudentHandler(svcs.Students)
	admin := handlers.NewAdminHandler(svcs.Auth, svcs.Rooms, svcs.Bookings)

	requireAuth := handlers.RequireAuth(jwtSecret)
	requireAdmin := handlers.RequireAdmin()

	e.GET("/health", handlers.Health)

	authGroup := e.Group("/auth")
	authGroup.POST("/register", auth.Register)
	authGroup.POST("/login", auth.Login)
	authGroup.GET("/me", auth.Me, requireAuth)
	authGroup.GET("/me/classes", auth.MyClasses, requireAuth)

	roomGroup := e.Group("/rooms")
	roomGroup.GET("", rooms.List)
	roomGroup.GET("/:id", rooms.Get)

	bookingGroup := e.Group("/bookings", requireAuth)
	bookingGroup.GET("/available-slots", bookings.AvailableSlots)
	bookingGroup.GET("/my-bookings", bookings.MyBookings)
	bookingGroup.POST("", bookings.Create)
	bookingGroup.PUT("/:id", bookings.Update)
	bookingGroup.DELETE("/:id", bookings.Delete)

	classGroup := e.Group("/classes")
	classGroup.GET("", classes.List)
	classGroup.GET("/:id", classes.Get)
	classGroup.GET("/room/:room_id", classes.ListByRoom)
	classGroup.POST("", classes.Create, requireAuth, requireAdmin)
	classGroup.PUT("/:id", classes.Update, requireAuth, requireAdmin)
	classGroup.DELETE("/:id", classes.Delete, requireAuth, requireAdmin)

	studentGroup := e.Group("/students", requireAuth, requireAdmin)
	studentGroup.GET("", students.List)
	studentGroup.GET("/:id", students.Get)
	studentGroup.GET("/room/:room_id", students.ListByRoom)
	studentGroup.POST("", students.Create)
	studentGroup.PUT("/:id", students.Update)
	studentGroup.DELETE("/:id", students.Delete)

	adminGroup := e.Group("/admin", requireAuth, requireAdmin)
	adminGroup.GET("/users", admin.ListUsers)
	adminGroup.GET("/users/:id", admin.GetUser)
	adminGroup.PUT("/users/:id", admin.UpdateUser)
	adminGroup.GET("/rooms", admin.ListRooms)
	adminGroup.POST("/rooms", admin.CreateRoom)
	adminGroup.PUT("/rooms/:id", admin.UpdateRoom)
	adminGroup.DELETE("/rooms/:id", admin.DeleteRoom)
	adminGroup.GET("/bookings", admin.ListBookings)

	return e
}

// requestLogger пишет строку на каждый запрос через zap
func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("Request",
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	})
}
