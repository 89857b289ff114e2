package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/model"
)

// StudyPlanRepository is the curriculum version data-access interface.
type StudyPlanRepository interface {
	Create(ctx context.Context, plan *model.StudyPlan) error
	GetByID(ctx context.Context, id string) (*model.StudyPlan, error)
	List(ctx context.Context, careerID string, includeInactive bool) ([]model.StudyPlan, error)
	Update(ctx context.Context, plan *model.StudyPlan) error
	Delete(ctx context.Context, id, deletedBy string) error
}

type studyPlanRepo struct {
	db *gorm.DB
}

// NewStudyPlanRepo creates a StudyPlanRepository instance.
func NewStudyPlanRepo(db *gorm.DB) StudyPlanRepository {
	return &studyPlanRepo{db: db}
}

func (r *studyPlanRepo) Create(ctx context.Context, plan *model.StudyPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *studyPlanRepo) GetByID(ctx context.Context, id string) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	err := r.db.WithContext(ctx).
		Preload("Career").
		Where("study_plan_id = ?", id).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *studyPlanRepo) List(ctx context.Context, careerID string, includeInactive bool) ([]model.StudyPlan, error) {
	var plans []model.StudyPlan
	db := r.db.WithContext(ctx)
	if careerID != "" {
		db = db.Where("career_id = ?", careerID)
	}
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}
	err := db.Preload("Career").
		Order("effective_year DESC, name ASC").
		Find(&plans).Error
	return plans, err
}

func (r *studyPlanRepo) Update(ctx context.Context, plan *model.StudyPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *studyPlanRepo) Delete(ctx context.Context, id, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.StudyPlan{}).
		Where("study_plan_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
