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

// ── study plan business errors ──

var (
	ErrStudyPlanNotFound = errors.New("study plan not found")
)

// StudyPlanService is the curriculum version business interface.
type StudyPlanService interface {
	Create(ctx context.Context, req *dto.CreateStudyPlanRequest, callerID string) (*dto.StudyPlanResponse, error)
	GetByID(ctx context.Context, id string) (*dto.StudyPlanResponse, error)
	List(ctx context.Context, req *dto.StudyPlanListRequest) ([]dto.StudyPlanResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudyPlanRequest, callerID string) (*dto.StudyPlanResponse, error)
	Delete(ctx context.Context, id, callerID string) error
}

type studyPlanService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudyPlanService creates a StudyPlanService instance.
func NewStudyPlanService(repo *repository.Repository, logger *zap.Logger) StudyPlanService {
	return &studyPlanService{repo: repo, logger: logger}
}

func (s *studyPlanService) Create(ctx context.Context, req *dto.CreateStudyPlanRequest, callerID string) (*dto.StudyPlanResponse, error) {
	if _, err := s.repo.Career.GetByID(ctx, req.CareerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCareerNotFound
		}
		s.logger.Error("career lookup failed", zap.Error(err))
		return nil, err
	}

	plan := &model.StudyPlan{
		Name:          req.Name,
		CareerID:      req.CareerID,
		EffectiveYear: req.EffectiveYear,
		IsActive:      true,
	}
	plan.CreatedBy = &callerID
	plan.UpdatedBy = &callerID

	if err := s.repo.StudyPlan.Create(ctx, plan); err != nil {
		s.logger.Error("study plan create failed", zap.Error(err))
		return nil, err
	}
	return toStudyPlanResponse(plan), nil
}

func (s *studyPlanService) GetByID(ctx context.Context, id string) (*dto.StudyPlanResponse, error) {
	plan, err := s.repo.StudyPlan.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudyPlanNotFound
		}
		s.logger.Error("study plan lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toStudyPlanResponse(plan), nil
}

func (s *studyPlanService) List(ctx context.Context, req *dto.StudyPlanListRequest) ([]dto.StudyPlanResponse, error) {
	plans, err := s.repo.StudyPlan.List(ctx, req.CareerID, req.IncludeInactive)
	if err != nil {
		s.logger.Error("study plan list failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.StudyPlanResponse, 0, len(plans))
	for i := range plans {
		result = append(result, *toStudyPlanResponse(&plans[i]))
	}
	return result, nil
}

func (s *studyPlanService) Update(ctx context.Context, id string, req *dto.UpdateStudyPlanRequest, callerID string) (*dto.StudyPlanResponse, error) {
	plan, err := s.repo.StudyPlan.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudyPlanNotFound
		}
		s.logger.Error("study plan lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.EffectiveYear != nil {
		plan.EffectiveYear = *req.EffectiveYear
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	plan.UpdatedBy = &callerID

	if err := s.repo.StudyPlan.Update(ctx, plan); err != nil {
		s.logger.Error("study plan update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toStudyPlanResponse(plan), nil
}

func (s *studyPlanService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.repo.StudyPlan.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudyPlanNotFound
		}
		s.logger.Error("study plan lookup failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.StudyPlan.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("study plan delete failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── internal helpers ──

func toStudyPlanResponse(plan *model.StudyPlan) *dto.StudyPlanResponse {
	resp := &dto.StudyPlanResponse{
		ID:            plan.StudyPlanID,
		Name:          plan.Name,
		CareerID:      plan.CareerID,
		EffectiveYear: plan.EffectiveYear,
		IsActive:      plan.IsActive,
		CreatedAt:     plan.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if plan.Career != nil {
		resp.Career = toCareerResponse(plan.Career)
	}
	return resp
}
