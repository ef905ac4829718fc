package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"go.uber.org/zap"
)

type ClassService struct {
	db           TxBeginner
	roomStore    RoomStore
	bookingStore BookingStore
	classStore   ClassStore
	logger       *zap.Logger
}

func NewClassService(
	db TxBeginner,
	roomStore RoomStore,
	bookingStore BookingStore,
	classStore ClassStore,
	logger *zap.Logger,
) *ClassService {
	return &ClassService{
		db:           db,
		roomStore:    roomStore,
		bookingStore: bookingStore,
		classStore:   classStore,
		logger:       logger,
	}
}

// Create назначает занятие. Страж конфликтов для занятий строже, чем для
// бронирований: занятие не должно пересекаться ни с confirmed-бронированиями,
// ни со scheduled-занятиями комнаты. Слоты учеников не проверяются.
// Проверки и вставка выполняются в одной транзакции под блокировкой комнаты.
func (s *ClassService) Create(ctx context.Context, class *model.Class) (*model.Class, error) {
	if !class.EndTime.After(class.StartTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrValidation)
	}
	if class.TeacherName == "" || class.ClassName == "" {
		return nil, fmt.Errorf("%w: teacher name and class name are required", ErrValidation)
	}

	room, err := s.roomStore.GetByID(ctx, class.RoomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil || !room.IsActive {
		return nil, fmt.Errorf("%w: room %d", ErrNotFound, class.RoomID)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.roomStore.LockRow(ctx, tx, class.RoomID); err != nil {
		return nil, fmt.Errorf("lock room: %w", err)
	}

	bookingOverlap, err := s.bookingStore.HasConfirmedOverlap(ctx, tx, class.RoomID, class.StartTime, class.EndTime)
	if err != nil {
		return nil, fmt.Errorf("check booking overlap: %w", err)
	}
	if bookingOverlap {
		return nil, fmt.Errorf("%w: a booking already occupies this time", ErrConflict)
	}

	classOverlap, err := s.classStore.HasScheduledOverlap(ctx, tx, class.RoomID, class.StartTime, class.EndTime)
	if err != nil {
		return nil, fmt.Errorf("check class overlap: %w", err)
	}
	if classOverlap {
		return nil, fmt.Errorf("%w: another class already occupies this time", ErrConflict)
	}

	class.Status = model.ClassStatusScheduled
	if err := s.classStore.Create(ctx, tx, class); err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	s.logger.Info("Class scheduled",
		zap.Int64("class_id", class.ID),
		zap.Int64("room_id", class.RoomID),
		zap.String("teacher", class.TeacherName),
		zap.Time("start_time", class.StartTime))

	return class, nil
}

// Get получает занятие по ID
func (s *ClassService) Get(ctx context.Context, id int64) (*model.Class, error) {
	class, err := s.classStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get class: %w", err)
	}
	if class == nil {
		return nil, fmt.Errorf("%w: class %d", ErrNotFound, id)
	}
	return class, nil
}

// List получает занятия постранично
func (s *ClassService) List(ctx context.Context, limit, offset int) ([]*model.Class, error) {
	return s.classStore.List(ctx, limit, offset)
}

// ListByRoom получает занятия комнаты, опционально в диапазоне дат
func (s *ClassService) ListByRoom(ctx context.Context, roomID int64, from, to *time.Time) ([]*model.Class, error) {
	room, err := s.roomStore.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room %d", ErrNotFound, roomID)
	}
	return s.classStore.ListByRoom(ctx, roomID, from, to)
}

// Update меняет занятие, применяя только заполненные поля
func (s *ClassService) Update(ctx context.Context, id int64, upd model.ClassUpdate) (*model.Class, error) {
	class, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.ApplyTo(class)
	if !class.EndTime.After(class.StartTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrValidation)
	}

	if err := s.classStore.Update(ctx, class); err != nil {
		return nil, fmt.Errorf("update class: %w", err)
	}

	s.logger.Info("Class updated", zap.Int64("class_id", class.ID))

	return class, nil
}

// Delete удаляет занятие
func (s *ClassService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.classStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete class: %w", err)
	}

	s.logger.Info("Class deleted", zap.Int64("class_id", id))

	return nil
}
