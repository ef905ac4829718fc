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

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Create вставляет бронирование в рамках транзакции стража конфликтов.
// Проверка пересечений и вставка обязаны выполняться на одном tx.
func (r *BookingRepository) Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (user_id, room_id, start_time, end_time, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := tx.QueryRow(
		ctx, query,
		booking.UserID,
		booking.RoomID,
		booking.StartTime,
		booking.EndTime,
		booking.Notes,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

// HasConfirmedOverlap проверяет, пересекается ли [start, end) хоть с одним
// confirmed-бронированием комнаты. Интервалы полуоткрытые: касание границ
// пересечением не считается. Страж конфликтов передаёт сюда tx с блокировкой
// строки комнаты, чтобы проверка и вставка были атомарны.
func (r *BookingRepository) HasConfirmedOverlap(ctx context.Context, q base.Querier, roomID int64, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE room_id = $1
			  AND status = 'confirmed'
			  AND start_time < $3
			  AND end_time > $2
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, roomID, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check booking overlap: %w", err)
	}

	return exists, nil
}

// GetByID получает бронирование по ID
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	query := `
		SELECT id, user_id, room_id, start_time, end_time, notes, status, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking model.Booking
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Notes,
		&booking.Status,
		&booking.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking by id: %w", err)
	}

	return &booking, nil
}

// GetByUserID получает бронирования пользователя вместе с комнатами
func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]*model.Booking, error) {
	query := `
		SELECT b.id, b.user_id, b.room_id, b.start_time, b.end_time, b.notes, b.status, b.created_at,
		       r.id, r.name, r.description, r.capacity, r.equipment, r.is_active
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1
		ORDER BY b.start_time DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get bookings by user: %w", err)
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		var booking model.Booking
		var room model.Room
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.RoomID,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Notes,
			&booking.Status,
			&booking.CreatedAt,
			&room.ID,
			&room.Name,
			&room.Description,
			&room.Capacity,
			&room.Equipment,
			&room.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		booking.Room = &room
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

// List получает все бронирования с комнатой и владельцем (для админки)
func (r *BookingRepository) List(ctx context.Context, limit, offset int) ([]*model.Booking, error) {
	query := `
		SELECT b.id, b.user_id, b.room_id, b.start_time, b.end_time, b.notes, b.status, b.created_at,
		       r.id, r.name, r.description, r.capacity, r.equipment, r.is_active,
		       u.id, u.email, u.full_name, u.phone, u.is_active, u.is_admin, u.created_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		JOIN users u ON u.id = b.user_id
		ORDER BY b.start_time DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		var booking model.Booking
		var room model.Room
		var user model.User
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.RoomID,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Notes,
			&booking.Status,
			&booking.CreatedAt,
			&room.ID,
			&room.Name,
			&room.Description,
			&room.Capacity,
			&room.Equipment,
			&room.IsActive,
			&user.ID,
			&user.Email,
			&user.FullName,
			&user.Phone,
			&user.IsActive,
			&user.IsAdmin,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		booking.Room = &room
		booking.User = &user
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

// ListConfirmedInRange получает confirmed-бронирования комнаты,
// начинающиеся в диапазоне [from, to), по возрастанию времени начала
func (r *BookingRepository) ListConfirmedInRange(ctx context.Context, roomID int64, from, to time.Time) ([]*model.Booking, error) {
	query := `
		SELECT id, user_id, room_id, start_time, end_time, notes, status, created_at
		FROM bookings
		WHERE room_id = $1
		  AND status = 'confirmed'
		  AND start_time >= $2
		  AND start_time < $3
		ORDER BY start_time
	`

	rows, err := r.pool.Query(ctx, query, roomID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list confirmed bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		var booking model.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.RoomID,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Notes,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

// Update сохраняет изменённые поля бронирования
func (r *BookingRepository) Update(ctx context.Context, booking *model.Booking) error {
	query := `
		UPDATE bookings
		SET start_time = $1, end_time = $2, notes = $3, status = $4
		WHERE id = $5
	`

	result, err := r.pool.Exec(
		ctx, query,
		booking.StartTime,
		booking.EndTime,
		booking.Notes,
		booking.Status,
		booking.ID,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking not found")
	}

	return nil
}

// Delete удаляет бронирование. Отмена — это физическое удаление записи,
// а не смена статуса
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking not found")
	}

	return nil
}
