package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/schedule"
	"go.uber.org/zap"
)

type StudentService struct {
	roomStore    RoomStore
	studentStore StudentStore
	logger       *zap.Logger
}

func NewStudentService(roomStore RoomStore, studentStore StudentStore, logger *zap.Logger) *StudentService {
	return &StudentService{
		roomStore:    roomStore,
		studentStore: studentStore,
		logger:       logger,
	}
}

// validateSchedule проверяет день недели и время слота ученика.
// Время хранится строками "HH:MM", поэтому порядок начала и конца
// проверяется после разбора.
func validateSchedule(weekday int, startTime, endTime string) error {
	if weekday < schedule.Monday || weekday > schedule.Sunday {
		return fmt.Errorf("%w: weekday must be between 0 (Monday) and 6 (Sunday)", ErrValidation)
	}

	startHour, startMinute, err := schedule.ParseTimeOfDay(startTime)
	if err != nil {
		return fmt.Errorf("%w: start_time must match HH:MM", ErrValidation)
	}
	endHour, endMinute, err := schedule.ParseTimeOfDay(endTime)
	if err != nil {
		return fmt.Errorf("%w: end_time must match HH:MM", ErrValidation)
	}

	if endHour*60+endMinute <= startHour*60+startMinute {
		return fmt.Errorf("%w: end_time must be after start_time", ErrValidation)
	}

	return nil
}

// Create заводит ученику постоянный еженедельный слот
func (s *StudentService) Create(ctx context.Context, student *model.Student) (*model.Student, error) {
	if student.Name == "" || student.TeacherName == "" {
		return nil, fmt.Errorf("%w: name and teacher name are required", ErrValidation)
	}
	if err := validateSchedule(student.Weekday, student.StartTime, student.EndTime); err != nil {
		return nil, err
	}

	room, err := s.roomStore.GetByID(ctx, student.RoomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil || !room.IsActive {
		return nil, fmt.Errorf("%w: room %d", ErrNotFound, student.RoomID)
	}

	student.IsActive = true
	if err := s.studentStore.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}

	s.logger.Info("Student schedule created",
		zap.Int64("student_id", student.ID),
		zap.Int64("room_id", student.RoomID),
		zap.Int("weekday", student.Weekday),
		zap.String("start_time", student.StartTime))

	return student, nil
}

// Get получает активного ученика
func (s *StudentService) Get(ctx context.Context, id int64) (*model.Student, error) {
	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	if student == nil {
		return nil, fmt.Errorf("%w: student %d", ErrNotFound, id)
	}
	return student, nil
}

// List получает активных учеников постранично
func (s *StudentService) List(ctx context.Context, limit, offset int) ([]*model.Student, error) {
	return s.studentStore.List(ctx, limit, offset)
}

// ListByRoom получает активных учеников комнаты
func (s *StudentService) ListByRoom(ctx context.Context, roomID int64) ([]*model.Student, error) {
	room, err := s.roomStore.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room %d", ErrNotFound, roomID)
	}
	return s.studentStore.ListByRoom(ctx, roomID)
}

// ListForEmail получает постоянные занятия, привязанные к email пользователя
func (s *StudentService) ListForEmail(ctx context.Context, email string) ([]*model.Student, error) {
	return s.studentStore.ListActiveByEmail(ctx, email)
}

// Update меняет ученика, применяя только заполненные поля
func (s *StudentService) Update(ctx context.Context, id int64, upd model.StudentUpdate) (*model.Student, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.ApplyTo(student)
	if err := validateSchedule(student.Weekday, student.StartTime, student.EndTime); err != nil {
		return nil, err
	}

	if err := s.studentStore.Update(ctx, student); err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}

	s.logger.Info("Student schedule updated", zap.Int64("student_id", student.ID))

	return student, nil
}

// Delete мягко удаляет ученика: слот перестаёт блокировать доступность,
// запись остаётся в базе
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.studentStore.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("deactivate student: %w", err)
	}

	s.logger.Info("Student schedule deactivated", zap.Int64("student_id", id))

	return nil
}
