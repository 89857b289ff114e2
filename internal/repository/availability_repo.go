package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/model"
)

// AvailabilityRepository is the teacher availability data-access
// interface. Saves replace the teacher's full declaration for a cycle.
type AvailabilityRepository interface {
	ListSlots(ctx context.Context, teacherID, cycleID string) ([]model.TeacherAvailability, error)
	ListPreferences(ctx context.Context, teacherID, cycleID string) ([]model.TeacherSubjectPreference, error)
	Replace(ctx context.Context, teacherID, cycleID string, slots []model.TeacherAvailability, prefs []model.TeacherSubjectPreference) error
	ListTeacherIDsForSlot(ctx context.Context, cycleID, day, timeBlockID string) ([]string, error)
}

type availabilityRepo struct {
	db *gorm.DB
}

// NewAvailabilityRepo creates an AvailabilityRepository instance.
func NewAvailabilityRepo(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepo{db: db}
}

func (r *availabilityRepo) ListSlots(ctx context.Context, teacherID, cycleID string) ([]model.TeacherAvailability, error) {
	var slots []model.TeacherAvailability
	err := r.db.WithContext(ctx).
		Preload("TimeBlock").
		Where("teacher_id = ? AND cycle_id = ?", teacherID, cycleID).
		Order("day ASC").
		Find(&slots).Error
	return slots, err
}

func (r *availabilityRepo) ListPreferences(ctx context.Context, teacherID, cycleID string) ([]model.TeacherSubjectPreference, error) {
	var prefs []model.TeacherSubjectPreference
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Where("teacher_id = ? AND cycle_id = ?", teacherID, cycleID).
		Find(&prefs).Error
	return prefs, err
}

// Replace swaps the teacher's declaration for the cycle atomically:
// delete everything, insert the new rows, all inside one transaction.
func (r *availabilityRepo) Replace(ctx context.Context, teacherID, cycleID string, slots []model.TeacherAvailability, prefs []model.TeacherSubjectPreference) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("teacher_id = ? AND cycle_id = ?", teacherID, cycleID).
			Delete(&model.TeacherAvailability{}).Error; err != nil {
			return err
		}
		if err := tx.Where("teacher_id = ? AND cycle_id = ?", teacherID, cycleID).
			Delete(&model.TeacherSubjectPreference{}).Error; err != nil {
			return err
		}
		if len(slots) > 0 {
			if err := tx.Create(&slots).Error; err != nil {
				return err
			}
		}
		if len(prefs) > 0 {
			if err := tx.Create(&prefs).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *availabilityRepo) ListTeacherIDsForSlot(ctx context.Context, cycleID, day, timeBlockID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.TeacherAvailability{}).
		Where("cycle_id = ? AND day = ? AND time_block_id = ?", cycleID, day, timeBlockID).
		Pluck("teacher_id", &ids).Error
	return ids, err
}
