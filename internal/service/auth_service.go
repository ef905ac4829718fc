package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Claims полезная нагрузка access-токена. Разбирается и HTTP-middleware,
// и сервисом, поэтому живёт здесь.
type Claims struct {
	UserID  int64 `json:"uid"`
	IsAdmin bool  `json:"adm"`
	jwt.RegisteredClaims
}

type AuthService struct {
	userStore UserStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

func NewAuthService(userStore UserStore, jwtSecret string, tokenTTL time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		userStore: userStore,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
		now:       time.Now,
	}
}

// Register регистрирует нового пользователя. Email должен быть свободен.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string, phone *string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}
	if fullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrValidation)
	}

	existing, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:          email,
		HashedPassword: string(hash),
		FullName:       fullName,
		Phone:          phone,
		IsActive:       true,
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("User registered", zap.Int64("user_id", user.ID), zap.String("email", user.Email))

	return user, nil
}

// Login проверяет пароль и выдаёт подписанный access-токен
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("get user by email: %w", err)
	}
	if user == nil || !user.IsActive {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := s.now()
	claims := Claims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info("User logged in", zap.Int64("user_id", user.ID))

	return token, nil
}

// GetUser получает пользователя по ID
func (s *AuthService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	return user, nil
}

// ListUsers получает пользователей постранично (для админки)
func (s *AuthService) ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error) {
	return s.userStore.List(ctx, limit, offset)
}

// UpdateUser меняет пользователя, применяя только заполненные поля (админка)
func (s *AuthService) UpdateUser(ctx context.Context, id int64, upd model.UserUpdate) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.ApplyTo(user)
	if user.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrValidation)
	}

	if err := s.userStore.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.logger.Info("User updated", zap.Int64("user_id", user.ID))

	return user, nil
}
