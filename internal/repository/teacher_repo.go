package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/model"
)

// TeacherRepository is the teaching staff data-access interface.
type TeacherRepository interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	CreateBatch(ctx context.Context, teachers []*model.Teacher) error
	GetByID(ctx context.Context, id string) (*model.Teacher, error)
	GetByEmail(ctx context.Context, email string) (*model.Teacher, error)
	List(ctx context.Context, facultyID, keyword string, includeInactive bool, offset, limit int) ([]model.Teacher, int64, error)
	Update(ctx context.Context, teacher *model.Teacher) error
	Delete(ctx context.Context, id, deletedBy string) error
}

type teacherRepo struct {
	db *gorm.DB
}

// NewTeacherRepo creates a TeacherRepository instance.
func NewTeacherRepo(db *gorm.DB) TeacherRepository {
	return &teacherRepo{db: db}
}

func (r *teacherRepo) Create(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

// CreateBatch inserts an imported roster in one transaction.
func (r *teacherRepo) CreateBatch(ctx context.Context, teachers []*model.Teacher) error {
	if len(teachers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(teachers, 100).Error
}

func (r *teacherRepo) GetByID(ctx context.Context, id string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Preload("Faculty").
		Where("teacher_id = ?", id).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) GetByEmail(ctx context.Context, email string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) List(ctx context.Context, facultyID, keyword string, includeInactive bool, offset, limit int) ([]model.Teacher, int64, error) {
	var (
		teachers []model.Teacher
		total    int64
	)
	db := r.db.WithContext(ctx).Model(&model.Teacher{})
	if facultyID != "" {
		db = db.Where("faculty_id = ?", facultyID)
	}
	if keyword != "" {
		pattern := "%" + keyword + "%"
		db = db.Where("first_names ILIKE ? OR last_names ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("last_names ASC, first_names ASC").
		Offset(offset).Limit(limit).
		Find(&teachers).Error
	return teachers, total, err
}

func (r *teacherRepo) Update(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Save(teacher).Error
}

func (r *teacherRepo) Delete(ctx context.Context, id, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Teacher{}).
		Where("teacher_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
