package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/model"
)

// TimeBlockRepository is the grid time row data-access interface.
type TimeBlockRepository interface {
	Create(ctx context.Context, block *model.TimeBlock) error
	GetByID(ctx context.Context, id string) (*model.TimeBlock, error)
	List(ctx context.Context, includeInactive bool) ([]model.TimeBlock, error)
	Update(ctx context.Context, block *model.TimeBlock) error
	Delete(ctx context.Context, id, deletedBy string) error
}

type timeBlockRepo struct {
	db *gorm.DB
}

// NewTimeBlockRepo creates a TimeBlockRepository instance.
func NewTimeBlockRepo(db *gorm.DB) TimeBlockRepository {
	return &timeBlockRepo{db: db}
}

func (r *timeBlockRepo) Create(ctx context.Context, block *model.TimeBlock) error {
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *timeBlockRepo) GetByID(ctx context.Context, id string) (*model.TimeBlock, error) {
	var block model.TimeBlock
	err := r.db.WithContext(ctx).
		Where("time_block_id = ?", id).
		First(&block).Error
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *timeBlockRepo) List(ctx context.Context, includeInactive bool) ([]model.TimeBlock, error) {
	var blocks []model.TimeBlock
	db := r.db.WithContext(ctx)
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}
	err := db.Order("sort_order ASC, start_time ASC").Find(&blocks).Error
	return blocks, err
}

func (r *timeBlockRepo) Update(ctx context.Context, block *model.TimeBlock) error {
	return r.db.WithContext(ctx).Save(block).Error
}

func (r *timeBlockRepo) Delete(ctx context.Context, id, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.TimeBlock{}).
		Where("time_block_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
