package service

import (
	"context"
	"testing"
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type classFixture struct {
	svc      *ClassService
	db       *fakeDB
	rooms    *fakeRoomStore
	bookings *fakeBookingStore
	classes  *fakeClassStore
}

func newClassFixture(t *testing.T) *classFixture {
	t.Helper()
	f := &classFixture{
		db:       &fakeDB{},
		rooms:    newFakeRoomStore(&model.Room{ID: 1, Name: "Practice Room 1", Capacity: 2, IsActive: true}),
		bookings: newFakeBookingStore(),
		classes:  newFakeClassStore(),
	}
	f.svc = NewClassService(f.db, f.rooms, f.bookings, f.classes, testLogger())
	return f
}

func newClass(start, end time.Time) *model.Class {
	return &model.Class{
		RoomID:      1,
		TeacherName: "Ana",
		ClassName:   "Beginner drums",
		StartTime:   start,
		EndTime:     end,
	}
}

func TestCreateClassSuccess(t *testing.T) {
	f := newClassFixture(t)

	class, err := f.svc.Create(context.Background(), newClass(monday.Add(10*time.Hour), monday.Add(11*time.Hour)))
	require.NoError(t, err)

	assert.Equal(t, model.ClassStatusScheduled, class.Status)
	assert.NotZero(t, class.ID)
	require.NotNil(t, f.db.lastTx)
	assert.Equal(t, 1, f.db.lastTx.commits)
}

func TestCreateClassConflictsWithBooking(t *testing.T) {
	f := newClassFixture(t)
	f.bookings.bookings = append(f.bookings.bookings, &model.Booking{
		ID:        1,
		RoomID:    1,
		StartTime: monday.Add(10 * time.Hour),
		EndTime:   monday.Add(11 * time.Hour),
		Status:    model.BookingStatusConfirmed,
	})

	_, err := f.svc.Create(context.Background(), newClass(monday.Add(10*time.Hour+30*time.Minute), monday.Add(11*time.Hour+30*time.Minute)))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateClassConflictsWithClass(t *testing.T) {
	f := newClassFixture(t)

	_, err := f.svc.Create(context.Background(), newClass(monday.Add(10*time.Hour), monday.Add(12*time.Hour)))
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), newClass(monday.Add(11*time.Hour), monday.Add(13*time.Hour)))
	assert.ErrorIs(t, err, ErrConflict)

	// Встык после существующего занятия — без конфликта
	_, err = f.svc.Create(context.Background(), newClass(monday.Add(12*time.Hour), monday.Add(13*time.Hour)))
	assert.NoError(t, err)
}

func TestCreateClassValidation(t *testing.T) {
	f := newClassFixture(t)

	_, err := f.svc.Create(context.Background(), newClass(monday.Add(11*time.Hour), monday.Add(10*time.Hour)))
	assert.ErrorIs(t, err, ErrValidation)

	class := newClass(monday.Add(10*time.Hour), monday.Add(11*time.Hour))
	class.TeacherName = ""
	_, err = f.svc.Create(context.Background(), class)
	assert.ErrorIs(t, err, ErrValidation)

	class = newClass(monday.Add(10*time.Hour), monday.Add(11*time.Hour))
	class.RoomID = 99
	_, err = f.svc.Create(context.Background(), class)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateClassPartial(t *testing.T) {
	f := newClassFixture(t)
	class, err := f.svc.Create(context.Background(), newClass(monday.Add(10*time.Hour), monday.Add(11*time.Hour)))
	require.NoError(t, err)

	teacher := "Paulo"
	updated, err := f.svc.Update(context.Background(), class.ID, model.ClassUpdate{TeacherName: &teacher})
	require.NoError(t, err)
	assert.Equal(t, "Paulo", updated.TeacherName)
	assert.Equal(t, class.ClassName, updated.ClassName)
}

func TestDeleteClass(t *testing.T) {
	f := newClassFixture(t)
	class, err := f.svc.Create(context.Background(), newClass(monday.Add(10*time.Hour), monday.Add(11*time.Hour)))
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), class.ID))

	_, err = f.svc.Get(context.Background(), class.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = f.svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
