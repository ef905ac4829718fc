package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"go.uber.org/zap"
)

type RoomService struct {
	roomStore RoomStore
	logger    *zap.Logger
}

func NewRoomService(roomStore RoomStore, logger *zap.Logger) *RoomService {
	return &RoomService{roomStore: roomStore, logger: logger}
}

// Create создаёт комнату
func (s *RoomService) Create(ctx context.Context, room *model.Room) (*model.Room, error) {
	if room.Name == "" {
		return nil, fmt.Errorf("%w: room name is required", ErrValidation)
	}
	if room.Capacity <= 0 {
		room.Capacity = 1
	}

	room.IsActive = true
	if err := s.roomStore.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.logger.Info("Room created", zap.Int64("room_id", room.ID), zap.String("name", room.Name))

	return room, nil
}

// Get получает комнату по ID, включая деактивированные
func (s *RoomService) Get(ctx context.Context, id int64) (*model.Room, error) {
	room, err := s.roomStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room %d", ErrNotFound, id)
	}
	return room, nil
}

// List получает комнаты; activeOnly отсекает деактивированные
func (s *RoomService) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*model.Room, error) {
	return s.roomStore.List(ctx, activeOnly, limit, offset)
}

// Update меняет комнату, применяя только заполненные поля
func (s *RoomService) Update(ctx context.Context, id int64, upd model.RoomUpdate) (*model.Room, error) {
	room, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.ApplyTo(room)
	if room.Name == "" {
		return nil, fmt.Errorf("%w: room name is required", ErrValidation)
	}

	if err := s.roomStore.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.logger.Info("Room updated", zap.Int64("room_id", room.ID))

	return room, nil
}

// Delete деактивирует комнату. Жёсткого удаления нет: на комнату
// могут ссылаться бронирования и занятия
func (s *RoomService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.roomStore.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("deactivate room: %w", err)
	}

	s.logger.Info("Room deactivated", zap.Int64("room_id", id))

	return nil
}
