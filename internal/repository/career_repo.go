package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/model"
)

// CareerRepository is the career data-access interface.
type CareerRepository interface {
	Create(ctx context.Context, career *model.Career) error
	GetByID(ctx context.Context, id string) (*model.Career, error)
	List(ctx context.Context, facultyID string, includeInactive bool) ([]model.Career, error)
	Update(ctx context.Context, career *model.Career) error
	Delete(ctx context.Context, id, deletedBy string) error
}

type careerRepo struct {
	db *gorm.DB
}

// NewCareerRepo creates a CareerRepository instance.
func NewCareerRepo(db *gorm.DB) CareerRepository {
	return &careerRepo{db: db}
}

func (r *careerRepo) Create(ctx context.Context, career *model.Career) error {
	return r.db.WithContext(ctx).Create(career).Error
}

func (r *careerRepo) GetByID(ctx context.Context, id string) (*model.Career, error) {
	var career model.Career
	err := r.db.WithContext(ctx).
		Preload("Faculty").
		Where("career_id = ?", id).
		First(&career).Error
	if err != nil {
		return nil, err
	}
	return &career, nil
}

func (r *careerRepo) List(ctx context.Context, facultyID string, includeInactive bool) ([]model.Career, error) {
	var careers []model.Career
	db := r.db.WithContext(ctx)
	if facultyID != "" {
		db = db.Where("faculty_id = ?", facultyID)
	}
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}
	err := db.Preload("Faculty").Order("name ASC").Find(&careers).Error
	return careers, err
}

func (r *careerRepo) Update(ctx context.Context, career *model.Career) error {
	return r.db.WithContext(ctx).Save(career).Error
}

func (r *careerRepo) Delete(ctx context.Context, id, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Career{}).
		Where("career_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
