package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN       string `mapstructure:"DB_DSN"`
	HTTPAddr    string `mapstructure:"HTTP_ADDR"`
	Environment string `mapstructure:"ENV"`

	JWTSecret string        `mapstructure:"JWT_SECRET"`
	TokenTTL  time.Duration `mapstructure:"TOKEN_TTL_MINUTES"`

	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`

	// StrictStudentConflicts включает проверку слотов учеников при создании
	// бронирований (по умолчанию слоты учеников видны только в доступности)
	StrictStudentConflicts bool `mapstructure:"STRICT_STUDENT_CONFLICTS"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		DBDSN:          os.Getenv("DB_DSN"),
		HTTPAddr:       os.Getenv("HTTP_ADDR"),
		Environment:    os.Getenv("ENV"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
	}

	// Дефолтные значения
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}

	ttlMinutes := 30
	if raw := os.Getenv("TOKEN_TTL_MINUTES"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL_MINUTES must be a positive number, got %q", raw)
		}
		ttlMinutes = v
	}
	cfg.TokenTTL = time.Duration(ttlMinutes) * time.Minute

	if raw := os.Getenv("STRICT_STUDENT_CONFLICTS"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("STRICT_STUDENT_CONFLICTS must be a boolean, got %q", raw)
		}
		cfg.StrictStudentConflicts = v
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	return cfg, nil
}
