package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/studio_booking/internal/app"
	"github.com/Freeeeeet/studio_booking/internal/config"
	"github.com/Freeeeeet/studio_booking/internal/controller"
	"github.com/Freeeeeet/studio_booking/internal/repository"
	"github.com/Freeeeeet/studio_booking/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting studio booking service",
		zap.String("environment", cfg.Environment),
		zap.String("http_addr", cfg.HTTPAddr))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	userRepo := repository.NewUserRepository(pool)
	roomRepo := repository.NewRoomRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)

	seeder := app.NewSeeder(userRepo, roomRepo, logger)
	if err := seeder.Run(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Fatal("Failed to seed database", zap.Error(err))
	}

	svcs := controller.Services{
		Auth:     service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, logger),
		Rooms:    service.NewRoomService(roomRepo, logger),
		Bookings: service.NewBookingService(pool, roomRepo, bookingRepo, classRepo, studentRepo, cfg.StrictStudentConflicts, logger),
		Classes:  service.NewClassService(pool, roomRepo, bookingRepo, classRepo, logger),
		Students: service.NewStudentService(roomRepo, studentRepo, logger),
	}

	e := controller.NewRouter(svcs, cfg.JWTSecret, logger)

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}
