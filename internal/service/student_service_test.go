package service

import (
	"context"
	"testing"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStudentFixture(t *testing.T) (*StudentService, *fakeStudentStore) {
	t.Helper()
	rooms := newFakeRoomStore(&model.Room{ID: 1, Name: "Practice Room 1", IsActive: true})
	students := newFakeStudentStore()
	return NewStudentService(rooms, students, testLogger()), students
}

func validStudent() *model.Student {
	return &model.Student{
		Name:        "Marcos",
		TeacherName: "Ana",
		RoomID:      1,
		Weekday:     2,
		StartTime:   "15:00",
		EndTime:     "16:00",
	}
}

func TestCreateStudent(t *testing.T) {
	svc, _ := newStudentFixture(t)

	student, err := svc.Create(context.Background(), validStudent())
	require.NoError(t, err)
	assert.NotZero(t, student.ID)
	assert.True(t, student.IsActive)
}

func TestCreateStudentValidation(t *testing.T) {
	svc, _ := newStudentFixture(t)

	tests := []struct {
		name   string
		mutate func(*model.Student)
	}{
		{"пустое имя", func(s *model.Student) { s.Name = "" }},
		{"день недели вне диапазона", func(s *model.Student) { s.Weekday = 7 }},
		{"отрицательный день недели", func(s *model.Student) { s.Weekday = -1 }},
		{"кривое начало", func(s *model.Student) { s.StartTime = "25:00" }},
		{"кривой конец", func(s *model.Student) { s.EndTime = "15:61" }},
		{"конец раньше начала", func(s *model.Student) { s.StartTime = "16:00"; s.EndTime = "15:00" }},
		{"конец равен началу", func(s *model.Student) { s.EndTime = "15:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := validStudent()
			tt.mutate(student)
			_, err := svc.Create(context.Background(), student)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	student := validStudent()
	student.RoomID = 99
	_, err := svc.Create(context.Background(), student)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStudentValidatesMergedSchedule(t *testing.T) {
	svc, _ := newStudentFixture(t)
	student, err := svc.Create(context.Background(), validStudent())
	require.NoError(t, err)

	// Новое начало позже старого конца — после слияния расписание некорректно
	badStart := "17:00"
	_, err = svc.Update(context.Background(), student.ID, model.StudentUpdate{StartTime: &badStart})
	assert.ErrorIs(t, err, ErrValidation)

	newEnd := "17:30"
	updated, err := svc.Update(context.Background(), student.ID, model.StudentUpdate{StartTime: &badStart, EndTime: &newEnd})
	require.NoError(t, err)
	assert.Equal(t, "17:00", updated.StartTime)
	assert.Equal(t, "17:30", updated.EndTime)
}

func TestDeleteStudentIsSoft(t *testing.T) {
	svc, store := newStudentFixture(t)
	student, err := svc.Create(context.Background(), validStudent())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), student.ID))

	// Мягко удалённый ученик не возвращается
	_, err = svc.Get(context.Background(), student.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Но запись осталась в хранилище
	require.Len(t, store.students, 1)
	assert.False(t, store.students[0].IsActive)

	// И больше не блокирует доступность
	active, err := store.ListActiveForWeekday(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Empty(t, active)
}
