package service

// Фейковые хранилища для тестов сервисов. Поведение повторяет контракты
// репозиториев: "не найдено" — это (nil, nil), пересечения считаются по
// полуоткрытым интервалам.

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/repository/base"
	"github.com/Freeeeeet/studio_booking/internal/schedule"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

type fakeTx struct {
	pgx.Tx
	commits   int
	rollbacks int
}

func (t *fakeTx) Commit(ctx context.Context) error   { t.commits++; return nil }
func (t *fakeTx) Rollback(ctx context.Context) error { t.rollbacks++; return nil }

type fakeDB struct {
	lastTx *fakeTx
}

func (d *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	d.lastTx = &fakeTx{}
	return d.lastTx, nil
}

type fakeRoomStore struct {
	rooms  map[int64]*model.Room
	nextID int64
}

func newFakeRoomStore(rooms ...*model.Room) *fakeRoomStore {
	s := &fakeRoomStore{rooms: map[int64]*model.Room{}, nextID: 1}
	for _, r := range rooms {
		if r.ID == 0 {
			r.ID = s.nextID
		}
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
		s.rooms[r.ID] = r
	}
	return s
}

func (s *fakeRoomStore) Create(ctx context.Context, room *model.Room) error {
	room.ID = s.nextID
	s.nextID++
	s.rooms[room.ID] = room
	return nil
}

func (s *fakeRoomStore) GetByID(ctx context.Context, id int64) (*model.Room, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, nil
	}
	copied := *room
	return &copied, nil
}

func (s *fakeRoomStore) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*model.Room, error) {
	var out []*model.Room
	for _, r := range s.rooms {
		if !activeOnly || r.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeRoomStore) Update(ctx context.Context, room *model.Room) error {
	if _, ok := s.rooms[room.ID]; !ok {
		return fmt.Errorf("room not found")
	}
	s.rooms[room.ID] = room
	return nil
}

func (s *fakeRoomStore) Deactivate(ctx context.Context, id int64) error {
	room, ok := s.rooms[id]
	if !ok {
		return fmt.Errorf("room not found")
	}
	room.IsActive = false
	return nil
}

func (s *fakeRoomStore) LockRow(ctx context.Context, tx pgx.Tx, id int64) error {
	if _, ok := s.rooms[id]; !ok {
		return fmt.Errorf("room not found")
	}
	return nil
}

type fakeBookingStore struct {
	bookings []*model.Booking
	nextID   int64
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{nextID: 1}
}

func (s *fakeBookingStore) Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) error {
	booking.ID = s.nextID
	s.nextID++
	booking.CreatedAt = time.Now()
	copied := *booking
	s.bookings = append(s.bookings, &copied)
	return nil
}

func (s *fakeBookingStore) HasConfirmedOverlap(ctx context.Context, q base.Querier, roomID int64, start, end time.Time) (bool, error) {
	candidate := schedule.Interval{Start: start, End: end}
	for _, b := range s.bookings {
		if b.RoomID != roomID || b.Status != model.BookingStatusConfirmed {
			continue
		}
		if candidate.Overlaps(schedule.Interval{Start: b.StartTime, End: b.EndTime}) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeBookingStore) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	for _, b := range s.bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeBookingStore) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]*model.Booking, error) {
	var out []*model.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeBookingStore) List(ctx context.Context, limit, offset int) ([]*model.Booking, error) {
	return s.bookings, nil
}

func (s *fakeBookingStore) ListConfirmedInRange(ctx context.Context, roomID int64, from, to time.Time) ([]*model.Booking, error) {
	var out []*model.Booking
	for _, b := range s.bookings {
		if b.RoomID != roomID || b.Status != model.BookingStatusConfirmed {
			continue
		}
		if !b.StartTime.Before(from) && b.StartTime.Before(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeBookingStore) Update(ctx context.Context, booking *model.Booking) error {
	for i, b := range s.bookings {
		if b.ID == booking.ID {
			copied := *booking
			s.bookings[i] = &copied
			return nil
		}
	}
	return fmt.Errorf("booking not found")
}

func (s *fakeBookingStore) Delete(ctx context.Context, id int64) error {
	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("booking not found")
}

type fakeClassStore struct {
	classes []*model.Class
	nextID  int64
}

func newFakeClassStore() *fakeClassStore {
	return &fakeClassStore{nextID: 1}
}

func (s *fakeClassStore) Create(ctx context.Context, tx pgx.Tx, class *model.Class) error {
	class.ID = s.nextID
	s.nextID++
	class.CreatedAt = time.Now()
	copied := *class
	s.classes = append(s.classes, &copied)
	return nil
}

func (s *fakeClassStore) HasScheduledOverlap(ctx context.Context, q base.Querier, roomID int64, start, end time.Time) (bool, error) {
	candidate := schedule.Interval{Start: start, End: end}
	for _, c := range s.classes {
		if c.RoomID != roomID || c.Status != model.ClassStatusScheduled {
			continue
		}
		if candidate.Overlaps(schedule.Interval{Start: c.StartTime, End: c.EndTime}) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeClassStore) GetByID(ctx context.Context, id int64) (*model.Class, error) {
	for _, c := range s.classes {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeClassStore) List(ctx context.Context, limit, offset int) ([]*model.Class, error) {
	return s.classes, nil
}

func (s *fakeClassStore) ListByRoom(ctx context.Context, roomID int64, from, to *time.Time) ([]*model.Class, error) {
	var out []*model.Class
	for _, c := range s.classes {
		if c.RoomID != roomID {
			continue
		}
		if from != nil && c.StartTime.Before(*from) {
			continue
		}
		if to != nil && c.EndTime.After(*to) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *fakeClassStore) ListScheduledInRange(ctx context.Context, roomID int64, from, to time.Time) ([]*model.Class, error) {
	var out []*model.Class
	for _, c := range s.classes {
		if c.RoomID != roomID || c.Status != model.ClassStatusScheduled {
			continue
		}
		if !c.StartTime.Before(from) && c.StartTime.Before(to) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeClassStore) Update(ctx context.Context, class *model.Class) error {
	for i, c := range s.classes {
		if c.ID == class.ID {
			copied := *class
			s.classes[i] = &copied
			return nil
		}
	}
	return fmt.Errorf("class not found")
}

func (s *fakeClassStore) Delete(ctx context.Context, id int64) error {
	for i, c := range s.classes {
		if c.ID == id {
			s.classes = append(s.classes[:i], s.classes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("class not found")
}

type fakeStudentStore struct {
	students []*model.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{nextID: 1}
}

func (s *fakeStudentStore) Create(ctx context.Context, student *model.Student) error {
	student.ID = s.nextID
	s.nextID++
	student.CreatedAt = time.Now()
	copied := *student
	s.students = append(s.students, &copied)
	return nil
}

func (s *fakeStudentStore) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	for _, st := range s.students {
		if st.ID == id && st.IsActive {
			copied := *st
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeStudentStore) List(ctx context.Context, limit, offset int) ([]*model.Student, error) {
	var out []*model.Student
	for _, st := range s.students {
		if st.IsActive {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *fakeStudentStore) ListByRoom(ctx context.Context, roomID int64) ([]*model.Student, error) {
	var out []*model.Student
	for _, st := range s.students {
		if st.RoomID == roomID && st.IsActive {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *fakeStudentStore) ListActiveForWeekday(ctx context.Context, roomID int64, weekday int) ([]*model.Student, error) {
	var out []*model.Student
	for _, st := range s.students {
		if st.RoomID == roomID && st.Weekday == weekday && st.IsActive {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *fakeStudentStore) ListActiveByEmail(ctx context.Context, email string) ([]*model.Student, error) {
	var out []*model.Student
	for _, st := range s.students {
		if st.Email != nil && *st.Email == email && st.IsActive {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *fakeStudentStore) Update(ctx context.Context, student *model.Student) error {
	for i, st := range s.students {
		if st.ID == student.ID {
			copied := *student
			s.students[i] = &copied
			return nil
		}
	}
	return fmt.Errorf("student not found")
}

func (s *fakeStudentStore) Deactivate(ctx context.Context, id int64) error {
	for _, st := range s.students {
		if st.ID == id && st.IsActive {
			st.IsActive = false
			return nil
		}
	}
	return fmt.Errorf("student not found")
}

type fakeUserStore struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*model.User{}, nextID: 1}
}

func (s *fakeUserStore) Create(ctx context.Context, user *model.User) error {
	user.ID = s.nextID
	s.nextID++
	user.CreatedAt = time.Now()
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) List(ctx context.Context, limit, offset int) ([]*model.User, error) {
	var out []*model.User
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeUserStore) Update(ctx context.Context, user *model.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return fmt.Errorf("user not found")
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}
