package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

// Create создаёт новую комнату
func (r *RoomRepository) Create(ctx context.Context, room *model.Room) error {
	query := `
		INSERT INTO rooms (name, description, capacity, equipment, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.pool.QueryRow(
		ctx, query,
		room.Name,
		room.Description,
		room.Capacity,
		room.Equipment,
		room.IsActive,
	).Scan(&room.ID)

	if err != nil {
		return fmt.Errorf("create room: %w", err)
	}

	return nil
}

// GetByID получает комнату по ID (включая деактивированные)
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*model.Room, error) {
	query := `
		SELECT id, name, description, capacity, equipment, is_active
		FROM rooms
		WHERE id = $1
	`

	var room model.Room
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Name,
		&room.Description,
		&room.Capacity,
		&room.Equipment,
		&room.IsActive,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room by id: %w", err)
	}

	return &room, nil
}

// List получает комнаты постранично, activeOnly отсекает деактивированные
func (r *RoomRepository) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*model.Room, error) {
	query := `
		SELECT id, name, description, capacity, equipment, is_active
		FROM rooms
		WHERE is_active OR NOT $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, activeOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*model.Room
	for rows.Next() {
		var room model.Room
		err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Description,
			&room.Capacity,
			&room.Equipment,
			&room.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

// Count возвращает общее количество комнат
func (r *RoomRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count rooms: %w", err)
	}
	return count, nil
}

// Update сохраняет изменённые поля комнаты
func (r *RoomRepository) Update(ctx context.Context, room *model.Room) error {
	query := `
		UPDATE rooms
		SET name = $1, description = $2, capacity = $3, equipment = $4, is_active = $5
		WHERE id = $6
	`

	result, err := r.pool.Exec(
		ctx, query,
		room.Name,
		room.Description,
		room.Capacity,
		room.Equipment,
		room.IsActive,
		room.ID,
	)
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room not found")
	}

	return nil
}

// Deactivate мягко удаляет комнату: на неё могут ссылаться бронирования
func (r *RoomRepository) Deactivate(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `UPDATE rooms SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate room: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room not found")
	}

	return nil
}

// LockRow берёт блокировку строки комнаты до конца транзакции.
// Сериализует check-then-insert в страже конфликтов: два конкурентных
// бронирования одной комнаты не пройдут проверку пересечений одновременно.
func (r *RoomRepository) LockRow(ctx context.Context, tx pgx.Tx, id int64) error {
	var roomID int64
	err := tx.QueryRow(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, id).Scan(&roomID)
	if err != nil {
		if base.IsNotFound(err) {
			return fmt.Errorf("room not found")
		}
		return fmt.Errorf("lock room row: %w", err)
	}
	return nil
}
