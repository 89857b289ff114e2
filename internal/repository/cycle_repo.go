package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/model"
)

// CycleRepository is the academic cycle data-access interface.
type CycleRepository interface {
	Create(ctx context.Context, cycle *model.Cycle) error
	GetByID(ctx context.Context, id string) (*model.Cycle, error)
	GetActive(ctx context.Context) (*model.Cycle, error)
	List(ctx context.Context) ([]model.Cycle, error)
	Update(ctx context.Context, cycle *model.Cycle) error
	SetActive(ctx context.Context, id string) error
	Delete(ctx context.Context, id, deletedBy string) error
}

type cycleRepo struct {
	db *gorm.DB
}

// NewCycleRepo creates a CycleRepository instance.
func NewCycleRepo(db *gorm.DB) CycleRepository {
	return &cycleRepo{db: db}
}

func (r *cycleRepo) Create(ctx context.Context, cycle *model.Cycle) error {
	return r.db.WithContext(ctx).Create(cycle).Error
}

func (r *cycleRepo) GetByID(ctx context.Context, id string) (*model.Cycle, error) {
	var cycle model.Cycle
	err := r.db.WithContext(ctx).
		Where("cycle_id = ?", id).
		First(&cycle).Error
	if err != nil {
		return nil, err
	}
	return &cycle, nil
}

func (r *cycleRepo) GetActive(ctx context.Context) (*model.Cycle, error) {
	var cycle model.Cycle
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		First(&cycle).Error
	if err != nil {
		return nil, err
	}
	return &cycle, nil
}

func (r *cycleRepo) List(ctx context.Context) ([]model.Cycle, error) {
	var cycles []model.Cycle
	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&cycles).Error
	return cycles, err
}

func (r *cycleRepo) Update(ctx context.Context, cycle *model.Cycle) error {
	return r.db.WithContext(ctx).Save(cycle).Error
}

// SetActive marks one cycle active and deactivates the rest in a single
// transaction. At most one cycle is active at a time.
func (r *cycleRepo) SetActive(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Cycle{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.Cycle{}).
			Where("cycle_id = ?", id).
			Update("is_active", true).Error
	})
}

func (r *cycleRepo) Delete(ctx context.Context, id, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Cycle{}).
		Where("cycle_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
