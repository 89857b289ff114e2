package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/dto"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/model"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/repository"
)

// ── availability business errors ──

var (
	ErrAvailabilityBadBlock   = errors.New("availability references an unknown time block")
	ErrAvailabilityBadSubject = errors.New("availability references an unknown subject")
)

// AvailabilityService manages teacher availability declarations. A
// save replaces the teacher's whole declaration for the cycle, so the
// stored state always mirrors the last submitted form.
type AvailabilityService interface {
	Get(ctx context.Context, teacherID, cycleID string) (*dto.AvailabilityResponse, error)
	Save(ctx context.Context, teacherID string, req *dto.SaveAvailabilityRequest) (*dto.AvailabilityResponse, error)
}

type availabilityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAvailabilityService creates an AvailabilityService instance.
func NewAvailabilityService(repo *repository.Repository, logger *zap.Logger) AvailabilityService {
	return &availabilityService{repo: repo, logger: logger}
}

func (s *availabilityService) Get(ctx context.Context, teacherID, cycleID string) (*dto.AvailabilityResponse, error) {
	if _, err := s.repo.Teacher.GetByID(ctx, teacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("teacher lookup failed", zap.String("id", teacherID), zap.Error(err))
		return nil, err
	}

	slots, err := s.repo.Availability.ListSlots(ctx, teacherID, cycleID)
	if err != nil {
		s.logger.Error("availability slot list failed", zap.Error(err))
		return nil, err
	}
	prefs, err := s.repo.Availability.ListPreferences(ctx, teacherID, cycleID)
	if err != nil {
		s.logger.Error("availability preference list failed", zap.Error(err))
		return nil, err
	}

	return toAvailabilityResponse(teacherID, cycleID, slots, prefs), nil
}

func (s *availabilityService) Save(ctx context.Context, teacherID string, req *dto.SaveAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	if _, err := s.repo.Teacher.GetByID(ctx, teacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("teacher lookup failed", zap.String("id", teacherID), zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.Cycle.GetByID(ctx, req.CycleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCycleNotFound
		}
		s.logger.Error("cycle lookup failed", zap.String("id", req.CycleID), zap.Error(err))
		return nil, err
	}

	slots := make([]model.TeacherAvailability, 0, len(req.Slots))
	for _, slot := range req.Slots {
		if _, err := s.repo.TimeBlock.GetByID(ctx, slot.TimeBlockID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAvailabilityBadBlock
			}
			return nil, err
		}
		slots = append(slots, model.TeacherAvailability{
			TeacherID:   teacherID,
			CycleID:     req.CycleID,
			TimeBlockID: slot.TimeBlockID,
			Day:         slot.Day,
		})
	}

	if len(req.SubjectIDs) > 0 {
		subjects, err := s.repo.Subject.ListByIDs(ctx, req.SubjectIDs)
		if err != nil {
			s.logger.Error("subject batch lookup failed", zap.Error(err))
			return nil, err
		}
		if len(subjects) != len(uniqueStrings(req.SubjectIDs)) {
			return nil, ErrAvailabilityBadSubject
		}
	}
	prefs := make([]model.TeacherSubjectPreference, 0, len(req.SubjectIDs))
	for _, subjectID := range uniqueStrings(req.SubjectIDs) {
		prefs = append(prefs, model.TeacherSubjectPreference{
			TeacherID: teacherID,
			CycleID:   req.CycleID,
			SubjectID: subjectID,
		})
	}

	if err := s.repo.Availability.Replace(ctx, teacherID, req.CycleID, slots, prefs); err != nil {
		s.logger.Error("availability replace failed",
			zap.String("teacher_id", teacherID),
			zap.String("cycle_id", req.CycleID),
			zap.Error(err))
		return nil, err
	}

	return toAvailabilityResponse(teacherID, req.CycleID, slots, prefs), nil
}

// ── internal helpers ──

func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func toAvailabilityResponse(teacherID, cycleID string, slots []model.TeacherAvailability, prefs []model.TeacherSubjectPreference) *dto.AvailabilityResponse {
	resp := &dto.AvailabilityResponse{
		TeacherID:  teacherID,
		CycleID:    cycleID,
		Slots:      make([]dto.AvailabilitySlot, 0, len(slots)),
		SubjectIDs: make([]string, 0, len(prefs)),
	}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, dto.AvailabilitySlot{Day: slot.Day, TimeBlockID: slot.TimeBlockID})
	}
	for _, pref := range prefs {
		resp.SubjectIDs = append(resp.SubjectIDs, pref.SubjectID)
	}
	return resp
}
