package repo

import (
	"context"

	"gorm.io/gorm"

	"VenuePOS/internal/model"
)

// RoomRepository определяет контракт доступа к Room для хендлеров.
type RoomRepository interface {
	List(ctx context.Context) ([]model.Room, error)
	GetByID(ctx context.Context, id int64) (*model.Room, error)
	Create(ctx context.Context, room *model.Room) error
	Update(ctx context.Context, room *model.Room) error
	Delete(ctx context.Context, id int64) error
}

type roomRepo struct {
	db *gorm.DB
}

// NewRoomRepository создаёт реализацию репозитория для Room.
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) List(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	if err := r.db.WithContext(ctx).Order("id").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepo) GetByID(ctx context.Context, id int64) (*model.Room, error) {
	var room model.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepo) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// Update сохраняет запись целиком (Save пишет все колонки по первичному ключу).
func (r *roomRepo) Update(ctx context.Context, room *model.Room) error {
	tx := r.db.WithContext(ctx).Save(room)
	return tx.Error
}

func (r *roomRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.Room{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
