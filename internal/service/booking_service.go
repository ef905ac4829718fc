package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/schedule"
	"go.uber.org/zap"
)

// DefaultSlotDuration длительность слота, если вызывающая сторона не задала свою
const DefaultSlotDuration = 60 * time.Minute

// bookingLeadTime минимальный зазор между "сейчас" и началом нового
// бронирования: бронировать в последнюю секунду нельзя
const bookingLeadTime = 15 * time.Minute

type BookingService struct {
	db           TxBeginner
	roomStore    RoomStore
	bookingStore BookingStore
	classStore   ClassStore
	studentStore StudentStore
	// strictStudentConflicts включает проверку слотов учеников в страже
	// конфликтов. По умолчанию выключено: слоты учеников блокируют только
	// выдачу доступности, но не создание бронирований.
	strictStudentConflicts bool
	logger                 *zap.Logger
	now                    func() time.Time
}

func NewBookingService(
	db TxBeginner,
	roomStore RoomStore,
	bookingStore BookingStore,
	classStore ClassStore,
	studentStore StudentStore,
	strictStudentConflicts bool,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		db:                     db,
		roomStore:              roomStore,
		bookingStore:           bookingStore,
		classStore:             classStore,
		studentStore:           studentStore,
		strictStudentConflicts: strictStudentConflicts,
		logger:                 logger,
		now:                    time.Now,
	}
}

// GetAvailableSlots вычисляет слоты комнаты на дату: рабочее окно дня
// нарезается шагом duration, каждый слот сверяется с confirmed-бронированиями,
// scheduled-занятиями и слотами учеников этого дня недели. Занятые слоты
// помечаются, но не выпадают из ответа. В закрытые дни (пятница, воскресенье)
// возвращается пустой список.
func (s *BookingService) GetAvailableSlots(ctx context.Context, roomID int64, date time.Time, duration time.Duration) ([]model.TimeSlot, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrValidation)
	}

	room, err := s.roomStore.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil || !room.IsActive {
		return nil, fmt.Errorf("%w: room %d", ErrNotFound, roomID)
	}

	weekday := schedule.WeekdayIndex(date)
	hours, open := schedule.BusinessHours(weekday)
	if !open {
		return []model.TimeSlot{}, nil
	}

	window := hours.WindowOn(date)
	fetchUntil := window.Start.Add(24 * time.Hour)

	bookings, err := s.bookingStore.ListConfirmedInRange(ctx, roomID, window.Start, fetchUntil)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	classes, err := s.classStore.ListScheduledInRange(ctx, roomID, window.Start, fetchUntil)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	students, err := s.studentStore.ListActiveForWeekday(ctx, roomID, weekday)
	if err != nil {
		return nil, fmt.Errorf("list student schedules: %w", err)
	}

	busy := make([]schedule.Interval, 0, len(bookings)+len(classes)+len(students))
	for _, b := range bookings {
		busy = append(busy, schedule.Interval{Start: b.StartTime, End: b.EndTime})
	}
	for _, c := range classes {
		busy = append(busy, schedule.Interval{Start: c.StartTime, End: c.EndTime})
	}

	studentBusy, err := projectStudents(date, students)
	if err != nil {
		return nil, err
	}
	busy = append(busy, studentBusy...)

	return schedule.BuildSlots(roomID, window, duration, busy), nil
}

// projectStudents привязывает слоты учеников ("HH:MM" на день недели)
// к конкретной дате
func projectStudents(date time.Time, students []*model.Student) ([]schedule.Interval, error) {
	intervals := make([]schedule.Interval, 0, len(students))
	for _, st := range students {
		start, err := schedule.ProjectTimeOfDay(date, st.StartTime)
		if err != nil {
			return nil, fmt.Errorf("project student %d schedule: %w", st.ID, err)
		}
		end, err := schedule.ProjectTimeOfDay(date, st.EndTime)
		if err != nil {
			return nil, fmt.Errorf("project student %d schedule: %w", st.ID, err)
		}
		intervals = append(intervals, schedule.Interval{Start: start, End: end})
	}
	return intervals, nil
}

// Create создаёт бронирование. Проверка пересечений и вставка выполняются
// в одной транзакции под блокировкой строки комнаты: два конкурентных запроса
// не смогут одновременно пройти проверку и оба вставить пересекающиеся
// интервалы. Страж сверяет только confirmed-бронирования; занятия и слоты
// учеников он не учитывает (текущее поведение, см. strictStudentConflicts).
func (s *BookingService) Create(ctx context.Context, userID, roomID int64, start, end time.Time, notes *string) (*model.Booking, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrValidation)
	}
	if start.Before(s.now().Add(bookingLeadTime)) {
		return nil, fmt.Errorf("%w: start time must be at least %d minutes from now", ErrValidation, int(bookingLeadTime.Minutes()))
	}

	room, err := s.roomStore.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil || !room.IsActive {
		return nil, fmt.Errorf("%w: room %d", ErrNotFound, roomID)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.roomStore.LockRow(ctx, tx, roomID); err != nil {
		return nil, fmt.Errorf("lock room: %w", err)
	}

	overlaps, err := s.bookingStore.HasConfirmedOverlap(ctx, tx, roomID, start, end)
	if err != nil {
		return nil, fmt.Errorf("check overlap: %w", err)
	}
	if overlaps {
		return nil, fmt.Errorf("%w: time slot is already booked", ErrConflict)
	}

	if s.strictStudentConflicts {
		blocked, err := s.overlapsStudentSchedule(ctx, roomID, start, end)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, fmt.Errorf("%w: time slot is reserved for a student", ErrConflict)
		}
	}

	booking := &model.Booking{
		UserID:    userID,
		RoomID:    roomID,
		StartTime: start,
		EndTime:   end,
		Notes:     notes,
		Status:    model.BookingStatusConfirmed,
	}

	if err := s.bookingStore.Create(ctx, tx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	s.logger.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("user_id", userID),
		zap.Int64("room_id", roomID),
		zap.Time("start_time", start),
		zap.Time("end_time", end))

	return booking, nil
}

// overlapsStudentSchedule проверяет пересечение интервала со слотами учеников
// на этот день недели. Вызывается только при включённом strictStudentConflicts.
func (s *BookingService) overlapsStudentSchedule(ctx context.Context, roomID int64, start, end time.Time) (bool, error) {
	students, err := s.studentStore.ListActiveForWeekday(ctx, roomID, schedule.WeekdayIndex(start))
	if err != nil {
		return false, fmt.Errorf("list student schedules: %w", err)
	}

	intervals, err := projectStudents(start, students)
	if err != nil {
		return false, err
	}

	candidate := schedule.Interval{Start: start, End: end}
	for _, iv := range intervals {
		if candidate.Overlaps(iv) {
			return true, nil
		}
	}
	return false, nil
}

// GetForActor получает бронирование, доступное актору
func (s *BookingService) GetForActor(ctx context.Context, actor Actor, id int64) (*model.Booking, error) {
	booking, err := s.bookingStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %d", ErrNotFound, id)
	}
	if !actor.CanManage(booking.UserID) {
		return nil, ErrForbidden
	}
	return booking, nil
}

// ListForUser получает бронирования пользователя
func (s *BookingService) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Booking, error) {
	return s.bookingStore.GetByUserID(ctx, userID, limit, offset)
}

// ListAll получает все бронирования (для админки)
func (s *BookingService) ListAll(ctx context.Context, limit, offset int) ([]*model.Booking, error) {
	return s.bookingStore.List(ctx, limit, offset)
}

// Update меняет бронирование от имени владельца или админа.
// Повторная проверка пересечений при переносе времени не выполняется —
// так вёл себя исходный сервис.
func (s *BookingService) Update(ctx context.Context, actor Actor, id int64, upd model.BookingUpdate) (*model.Booking, error) {
	booking, err := s.GetForActor(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	upd.ApplyTo(booking)
	if !booking.EndTime.After(booking.StartTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrValidation)
	}

	if err := s.bookingStore.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.logger.Info("Booking updated",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("actor_id", actor.UserID))

	return booking, nil
}

// Cancel отменяет бронирование владельца или от имени админа.
// Отмена — физическое удаление записи, а не смена статуса.
func (s *BookingService) Cancel(ctx context.Context, actor Actor, id int64) error {
	booking, err := s.GetForActor(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.bookingStore.Delete(ctx, booking.ID); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("Booking cancelled",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("actor_id", actor.UserID))

	return nil
}
