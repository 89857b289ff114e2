package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/model"
)

// RoomTypeRepository is the room classification data-access interface.
type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *model.RoomType) error
	GetByID(ctx context.Context, id string) (*model.RoomType, error)
	List(ctx context.Context) ([]model.RoomType, error)
}

type roomTypeRepo struct {
	db *gorm.DB
}

// NewRoomTypeRepo creates a RoomTypeRepository instance.
func NewRoomTypeRepo(db *gorm.DB) RoomTypeRepository {
	return &roomTypeRepo{db: db}
}

func (r *roomTypeRepo) Create(ctx context.Context, roomType *model.RoomType) error {
	return r.db.WithContext(ctx).Create(roomType).Error
}

func (r *roomTypeRepo) GetByID(ctx context.Context, id string) (*model.RoomType, error) {
	var roomType model.RoomType
	err := r.db.WithContext(ctx).
		Where("room_type_id = ?", id).
		First(&roomType).Error
	if err != nil {
		return nil, err
	}
	return &roomType, nil
}

func (r *roomTypeRepo) List(ctx context.Context) ([]model.RoomType, error) {
	var types []model.RoomType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error
	return types, err
}

// RoomRepository is the room data-access interface.
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	GetByID(ctx context.Context, id string) (*model.Room, error)
	List(ctx context.Context, roomTypeID string, includeInactive bool) ([]model.Room, error)
	Update(ctx context.Context, room *model.Room) error
	Delete(ctx context.Context, id, deletedBy string) error
}

type roomRepo struct {
	db *gorm.DB
}

// NewRoomRepo creates a RoomRepository instance.
func NewRoomRepo(db *gorm.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepo) GetByID(ctx context.Context, id string) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).
		Preload("RoomType").
		Where("room_id = ?", id).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepo) List(ctx context.Context, roomTypeID string, includeInactive bool) ([]model.Room, error) {
	var rooms []model.Room
	db := r.db.WithContext(ctx)
	if roomTypeID != "" {
		db = db.Where("room_type_id = ?", roomTypeID)
	}
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}
	err := db.Preload("RoomType").Order("name ASC").Find(&rooms).Error
	return rooms, err
}

func (r *roomRepo) Update(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepo) Delete(ctx context.Context, id, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Room{}).
		Where("room_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
