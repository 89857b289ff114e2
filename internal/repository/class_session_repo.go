package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/model"
)

// ClassSessionRepository is the placed class data-access interface.
// Conflict decisions never happen here; the placement engine accepts a
// change first and the repository persists the accepted state.
type ClassSessionRepository interface {
	Create(ctx context.Context, session *model.ClassSession) error
	GetByID(ctx context.Context, id string) (*model.ClassSession, error)
	ListByCycle(ctx context.Context, cycleID string) ([]model.ClassSession, error)
	ListByCareerAndCycle(ctx context.Context, careerID, cycleID string) ([]model.ClassSession, error)
	ListByTeacherAndCycle(ctx context.Context, teacherID, cycleID string) ([]model.ClassSession, error)
	Update(ctx context.Context, session *model.ClassSession) error
	UpdateSlot(ctx context.Context, id, day, startTime, updatedBy string) error
	Delete(ctx context.Context, id string) error
}

type classSessionRepo struct {
	db *gorm.DB
}

// NewClassSessionRepo creates a ClassSessionRepository instance.
func NewClassSessionRepo(db *gorm.DB) ClassSessionRepository {
	return &classSessionRepo{db: db}
}

func (r *classSessionRepo) Create(ctx context.Context, session *model.ClassSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *classSessionRepo) GetByID(ctx context.Context, id string) (*model.ClassSession, error) {
	var session model.ClassSession
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Teacher").
		Preload("Room").
		Where("session_id = ?", id).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListByCycle loads every session of the cycle across all careers.
// Room conflicts cross career boundaries, so the engine needs the
// whole cycle in its store, not just the career being viewed.
func (r *classSessionRepo) ListByCycle(ctx context.Context, cycleID string) ([]model.ClassSession, error) {
	var sessions []model.ClassSession
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Teacher").
		Preload("Room").
		Where("cycle_id = ?", cycleID).
		Find(&sessions).Error
	return sessions, err
}

func (r *classSessionRepo) ListByCareerAndCycle(ctx context.Context, careerID, cycleID string) ([]model.ClassSession, error) {
	var sessions []model.ClassSession
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Teacher").
		Preload("Room").
		Where("career_id = ? AND cycle_id = ?", careerID, cycleID).
		Find(&sessions).Error
	return sessions, err
}

func (r *classSessionRepo) ListByTeacherAndCycle(ctx context.Context, teacherID, cycleID string) ([]model.ClassSession, error) {
	var sessions []model.ClassSession
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Room").
		Where("teacher_id = ? AND cycle_id = ?", teacherID, cycleID).
		Find(&sessions).Error
	return sessions, err
}

func (r *classSessionRepo) Update(ctx context.Context, session *model.ClassSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *classSessionRepo) UpdateSlot(ctx context.Context, id, day, startTime, updatedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.ClassSession{}).
		Where("session_id = ?", id).
		Updates(map[string]interface{}{
			"day":        day,
			"start_time": startTime,
			"updated_by": updatedBy,
			"updated_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *classSessionRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", id).
		Delete(&model.ClassSession{}).Error
}
