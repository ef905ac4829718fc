package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/repository/base"
	"github.com/jackc/pgx/v5"
)

// TxBeginner открывает транзакцию хранилища. Реализуется *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Интерфейсы хранилищ. Реализуются репозиториями из internal/repository,
// в тестах подменяются фейками.

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, limit, offset int) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

type RoomStore interface {
	Create(ctx context.Context, room *model.Room) error
	GetByID(ctx context.Context, id int64) (*model.Room, error)
	List(ctx context.Context, activeOnly bool, limit, offset int) ([]*model.Room, error)
	Update(ctx context.Context, room *model.Room) error
	Deactivate(ctx context.Context, id int64) error
	LockRow(ctx context.Context, tx pgx.Tx, id int64) error
}

type BookingStore interface {
	Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) error
	HasConfirmedOverlap(ctx context.Context, q base.Querier, roomID int64, start, end time.Time) (bool, error)
	GetByID(ctx context.Context, id int64) (*model.Booking, error)
	GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]*model.Booking, error)
	List(ctx context.Context, limit, offset int) ([]*model.Booking, error)
	ListConfirmedInRange(ctx context.Context, roomID int64, from, to time.Time) ([]*model.Booking, error)
	Update(ctx context.Context, booking *model.Booking) error
	Delete(ctx context.Context, id int64) error
}

type ClassStore interface {
	Create(ctx context.Context, tx pgx.Tx, class *model.Class) error
	HasScheduledOverlap(ctx context.Context, q base.Querier, roomID int64, start, end time.Time) (bool, error)
	GetByID(ctx context.Context, id int64) (*model.Class, error)
	List(ctx context.Context, limit, offset int) ([]*model.Class, error)
	ListByRoom(ctx context.Context, roomID int64, from, to *time.Time) ([]*model.Class, error)
	ListScheduledInRange(ctx context.Context, roomID int64, from, to time.Time) ([]*model.Class, error)
	Update(ctx context.Context, class *model.Class) error
	Delete(ctx context.Context, id int64) error
}

type StudentStore interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id int64) (*model.Student, error)
	List(ctx context.Context, limit, offset int) ([]*model.Student, error)
	ListByRoom(ctx context.Context, roomID int64) ([]*model.Student, error)
	ListActiveForWeekday(ctx context.Context, roomID int64, weekday int) ([]*model.Student, error)
	ListActiveByEmail(ctx context.Context, email string) ([]*model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Deactivate(ctx context.Context, id int64) error
}

// Actor от чьего имени выполняется операция. Владелец или админ может
// менять и отменять бронирование, остальные получают ErrForbidden.
type Actor struct {
	UserID  int64
	IsAdmin bool
}

// CanManage проверяет право действовать над ресурсом пользователя ownerID
func (a Actor) CanManage(ownerID int64) bool {
	return a.IsAdmin || a.UserID == ownerID
}
