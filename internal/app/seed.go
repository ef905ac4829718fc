package app

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Seeder наполняет пустую базу стартовыми данными:
// админ из конфига и примерный набор комнат
type Seeder struct {
	users  *repository.UserRepository
	rooms  *repository.RoomRepository
	logger *zap.Logger
}

func NewSeeder(users *repository.UserRepository, rooms *repository.RoomRepository, logger *zap.Logger) *Seeder {
	return &Seeder{users: users, rooms: rooms, logger: logger}
}

// Run создаёт админа (если задан и ещё не существует) и примерные комнаты
// (если таблица комнат пуста). Повторные запуски ничего не меняют.
func (s *Seeder) Run(ctx context.Context, adminEmail, adminPassword string) error {
	if adminEmail != "" && adminPassword != "" {
		if err := s.ensureAdmin(ctx, adminEmail, adminPassword); err != nil {
			return err
		}
	}
	return s.ensureSampleRooms(ctx)
}

func (s *Seeder) ensureAdmin(ctx context.Context, email, password string) error {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("get admin user: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &model.User{
		Email:          email,
		HashedPassword: string(hash),
		FullName:       "System Administrator",
		IsActive:       true,
		IsAdmin:        true,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	s.logger.Info("Admin user created", zap.String("email", email))
	return nil
}

func (s *Seeder) ensureSampleRooms(ctx context.Context) error {
	count, err := s.rooms.Count(ctx)
	if err != nil {
		return fmt.Errorf("count rooms: %w", err)
	}
	if count > 0 {
		return nil
	}

	strPtr := func(v string) *string { return &v }
	sampleRooms := []*model.Room{
		{
			Name:        "Practice Room 1",
			Description: strPtr("Standard practice room with acoustic drum kit"),
			Capacity:    2,
			Equipment:   strPtr("Acoustic drum kit, sticks, practice pad"),
			IsActive:    true,
		},
		{
			Name:        "Practice Room 2",
			Description: strPtr("Electronic drum practice room"),
			Capacity:    1,
			Equipment:   strPtr("Electronic drum kit, headphones, amplifier"),
			IsActive:    true,
		},
		{
			Name:        "Recording Studio",
			Description: strPtr("Professional recording studio with full drum kit"),
			Capacity:    4,
			Equipment:   strPtr("Professional drum kit, microphones, recording equipment"),
			IsActive:    true,
		},
	}

	for _, room := range sampleRooms {
		if err := s.rooms.Create(ctx, room); err != nil {
			return fmt.Errorf("create sample room %q: %w", room.Name, err)
		}
	}

	s.logger.Info("Sample rooms created", zap.Int("count", len(sampleRooms)))
	return nil
}
