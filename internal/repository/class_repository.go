package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClassRepository struct {
	pool *pgxpool.Pool
}

func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// Create вставляет занятие в рамках транзакции стража конфликтов
func (r *ClassRepository) Create(ctx context.Context, tx pgx.Tx, class *model.Class) error {
	query := `
		INSERT INTO classes (room_id, teacher_name, class_name, student_name,
			start_time, end_time, is_recurring, recurrence_pattern, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := tx.QueryRow(
		ctx, query,
		class.RoomID,
		class.TeacherName,
		class.ClassName,
		class.StudentName,
		class.StartTime,
		class.EndTime,
		class.IsRecurring,
		class.RecurrencePattern,
		class.Notes,
		class.Status,
	).Scan(&class.ID, &class.CreatedAt)

	if err != nil {
		return fmt.Errorf("create class: %w", err)
	}

	return nil
}

// HasScheduledOverlap проверяет пересечение [start, end) со
// scheduled-занятиями комнаты. В страже конфликтов выполняется на tx.
func (r *ClassRepository) HasScheduledOverlap(ctx context.Context, q base.Querier, roomID int64, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM classes
			WHERE room_id = $1
			  AND status = 'scheduled'
			  AND start_time < $3
			  AND end_time > $2
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, roomID, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check class overlap: %w", err)
	}

	return exists, nil
}

// GetByID получает занятие по ID
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*model.Class, error) {
	query := `
		SELECT id, room_id, teacher_name, class_name, student_name, start_time, end_time,
		       is_recurring, recurrence_pattern, notes, status, created_at
		FROM classes
		WHERE id = $1
	`

	var class model.Class
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&class.ID,
		&class.RoomID,
		&class.TeacherName,
		&class.ClassName,
		&class.StudentName,
		&class.StartTime,
		&class.EndTime,
		&class.IsRecurring,
		&class.RecurrencePattern,
		&class.Notes,
		&class.Status,
		&class.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get class by id: %w", err)
	}

	return &class, nil
}

// List получает занятия с комнатами постранично
func (r *ClassRepository) List(ctx context.Context, limit, offset int) ([]*model.Class, error) {
	query := `
		SELECT c.id, c.room_id, c.teacher_name, c.class_name, c.student_name,
		       c.start_time, c.end_time, c.is_recurring, c.recurrence_pattern,
		       c.notes, c.status, c.created_at,
		       r.id, r.name, r.description, r.capacity, r.equipment, r.is_active
		FROM classes c
		JOIN rooms r ON r.id = c.room_id
		ORDER BY c.start_time DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	var classes []*model.Class
	for rows.Next() {
		var class model.Class
		var room model.Room
		err := rows.Scan(
			&class.ID,
			&class.RoomID,
			&class.TeacherName,
			&class.ClassName,
			&class.StudentName,
			&class.StartTime,
			&class.EndTime,
			&class.IsRecurring,
			&class.RecurrencePattern,
			&class.Notes,
			&class.Status,
			&class.CreatedAt,
			&room.ID,
			&room.Name,
			&room.Description,
			&room.Capacity,
			&room.Equipment,
			&room.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		class.Room = &room
		classes = append(classes, &class)
	}

	return classes, nil
}

// ListByRoom получает занятия комнаты, опционально ограниченные диапазоном дат
func (r *ClassRepository) ListByRoom(ctx context.Context, roomID int64, from, to *time.Time) ([]*model.Class, error) {
	query := `
		SELECT id, room_id, teacher_name, class_name, student_name, start_time, end_time,
		       is_recurring, recurrence_pattern, notes, status, created_at
		FROM classes
		WHERE room_id = $1
		  AND ($2::timestamptz IS NULL OR start_time >= $2)
		  AND ($3::timestamptz IS NULL OR end_time <= $3)
		ORDER BY start_time
	`

	rows, err := r.pool.Query(ctx, query, roomID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list classes by room: %w", err)
	}
	defer rows.Close()

	return scanClasses(rows)
}

// ListScheduledInRange получает scheduled-занятия комнаты, начинающиеся
// в диапазоне [from, to), по возрастанию времени начала
func (r *ClassRepository) ListScheduledInRange(ctx context.Context, roomID int64, from, to time.Time) ([]*model.Class, error) {
	query := `
		SELECT id, room_id, teacher_name, class_name, student_name, start_time, end_time,
		       is_recurring, recurrence_pattern, notes, status, created_at
		FROM classes
		WHERE room_id = $1
		  AND status = 'scheduled'
		  AND start_time >= $2
		  AND start_time < $3
		ORDER BY start_time
	`

	rows, err := r.pool.Query(ctx, query, roomID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list scheduled classes: %w", err)
	}
	defer rows.Close()

	return scanClasses(rows)
}

func scanClasses(rows pgx.Rows) ([]*model.Class, error) {
	var classes []*model.Class
	for rows.Next() {
		var class model.Class
		err := rows.Scan(
			&class.ID,
			&class.RoomID,
			&class.TeacherName,
			&class.ClassName,
			&class.StudentName,
			&class.StartTime,
			&class.EndTime,
			&class.IsRecurring,
			&class.RecurrencePattern,
			&class.Notes,
			&class.Status,
			&class.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		classes = append(classes, &class)
	}
	return classes, nil
}

// Update сохраняет изменённые поля занятия
func (r *ClassRepository) Update(ctx context.Context, class *model.Class) error {
	query := `
		UPDATE classes
		SET teacher_name = $1, class_name = $2, student_name = $3, start_time = $4,
		    end_time = $5, is_recurring = $6, recurrence_pattern = $7, notes = $8, status = $9
		WHERE id = $10
	`

	result, err := r.pool.Exec(
		ctx, query,
		class.TeacherName,
		class.ClassName,
		class.StudentName,
		class.StartTime,
		class.EndTime,
		class.IsRecurring,
		class.RecurrencePattern,
		class.Notes,
		class.Status,
		class.ID,
	)
	if err != nil {
		return fmt.Errorf("update class: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("class not found")
	}

	return nil
}

// Delete удаляет занятие
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("class not found")
	}

	return nil
}
