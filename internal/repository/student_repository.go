package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// Create создаёт постоянный еженедельный слот ученика
func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	query := `
		INSERT INTO students (name, email, phone, teacher_name, room_id,
			weekday, start_time, end_time, notes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		student.Name,
		student.Email,
		student.Phone,
		student.TeacherName,
		student.RoomID,
		student.Weekday,
		student.StartTime,
		student.EndTime,
		student.Notes,
		student.IsActive,
	).Scan(&student.ID, &student.CreatedAt)

	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}

	return nil
}

// GetByID получает активного ученика по ID. Мягко удалённые не возвращаются
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	query := `
		SELECT id, name, email, phone, teacher_name, room_id, weekday,
		       start_time, end_time, notes, is_active, created_at
		FROM students
		WHERE id = $1 AND is_active
	`

	var student model.Student
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.Phone,
		&student.TeacherName,
		&student.RoomID,
		&student.Weekday,
		&student.StartTime,
		&student.EndTime,
		&student.Notes,
		&student.IsActive,
		&student.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get student by id: %w", err)
	}

	return &student, nil
}

// List получает активных учеников постранично
func (r *StudentRepository) List(ctx context.Context, limit, offset int) ([]*model.Student, error) {
	query := `
		SELECT id, name, email, phone, teacher_name, room_id, weekday,
		       start_time, end_time, notes, is_active, created_at
		FROM students
		WHERE is_active
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// ListByRoom получает активных учеников комнаты
func (r *StudentRepository) ListByRoom(ctx context.Context, roomID int64) ([]*model.Student, error) {
	query := `
		SELECT id, name, email, phone, teacher_name, room_id, weekday,
		       start_time, end_time, notes, is_active, created_at
		FROM students
		WHERE room_id = $1 AND is_active
		ORDER BY weekday, start_time
	`

	rows, err := r.pool.Query(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("list students by room: %w", err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// ListActiveForWeekday получает активных учеников комнаты на день недели
// (0 = понедельник ... 6 = воскресенье)
func (r *StudentRepository) ListActiveForWeekday(ctx context.Context, roomID int64, weekday int) ([]*model.Student, error) {
	query := `
		SELECT id, name, email, phone, teacher_name, room_id, weekday,
		       start_time, end_time, notes, is_active, created_at
		FROM students
		WHERE room_id = $1 AND weekday = $2 AND is_active
		ORDER BY start_time
	`

	rows, err := r.pool.Query(ctx, query, roomID, weekday)
	if err != nil {
		return nil, fmt.Errorf("list students for weekday: %w", err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// ListActiveByEmail получает активных учеников с указанным email.
// Используется для показа пользователю его постоянных занятий.
func (r *StudentRepository) ListActiveByEmail(ctx context.Context, email string) ([]*model.Student, error) {
	query := `
		SELECT id, name, email, phone, teacher_name, room_id, weekday,
		       start_time, end_time, notes, is_active, created_at
		FROM students
		WHERE email = $1 AND is_active
		ORDER BY weekday, start_time
	`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("list students by email: %w", err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

func scanStudents(rows pgx.Rows) ([]*model.Student, error) {
	var students []*model.Student
	for rows.Next() {
		var student model.Student
		err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Email,
			&student.Phone,
			&student.TeacherName,
			&student.RoomID,
			&student.Weekday,
			&student.StartTime,
			&student.EndTime,
			&student.Notes,
			&student.IsActive,
			&student.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, &student)
	}
	return students, nil
}

// Update сохраняет изменённые поля ученика
func (r *StudentRepository) Update(ctx context.Context, student *model.Student) error {
	query := `
		UPDATE students
		SET name = $1, email = $2, phone = $3, teacher_name = $4, room_id = $5,
		    weekday = $6, start_time = $7, end_time = $8, notes = $9, is_active = $10
		WHERE id = $11
	`

	result, err := r.pool.Exec(
		ctx, query,
		student.Name,
		student.Email,
		student.Phone,
		student.TeacherName,
		student.RoomID,
		student.Weekday,
		student.StartTime,
		student.EndTime,
		student.Notes,
		student.IsActive,
		student.ID,
	)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("student not found")
	}

	return nil
}

// Deactivate мягко удаляет ученика
func (r *StudentRepository) Deactivate(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `UPDATE students SET is_active = FALSE WHERE id = $1 AND is_active`, id)
	if err != nil {
		return fmt.Errorf("deactivate student: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("student not found")
	}

	return nil
}
