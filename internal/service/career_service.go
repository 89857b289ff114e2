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

// ── career business errors ──

var (
	ErrCareerNotFound = errors.New("career not found")
)

// CareerService is the career business interface.
type CareerService interface {
	Create(ctx context.Context, req *dto.CreateCareerRequest, callerID string) (*dto.CareerResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CareerResponse, error)
	List(ctx context.Context, req *dto.CareerListRequest) ([]dto.CareerResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCareerRequest, callerID string) (*dto.CareerResponse, error)
	Delete(ctx context.Context, id, callerID string) error
}

type careerService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCareerService creates a CareerService instance.
func NewCareerService(repo *repository.Repository, logger *zap.Logger) CareerService {
	return &careerService{repo: repo, logger: logger}
}

func (s *careerService) Create(ctx context.Context, req *dto.CreateCareerRequest, callerID string) (*dto.CareerResponse, error) {
	if _, err := s.repo.Faculty.GetByID(ctx, req.FacultyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacultyNotFound
		}
		s.logger.Error("faculty lookup failed", zap.Error(err))
		return nil, err
	}

	career := &model.Career{
		Name:          req.Name,
		FacultyID:     req.FacultyID,
		DurationYears: req.DurationYears,
		IsActive:      true,
	}
	if career.DurationYears == 0 {
		career.DurationYears = 5
	}
	career.CreatedBy = &callerID
	career.UpdatedBy = &callerID

	if err := s.repo.Career.Create(ctx, career); err != nil {
		s.logger.Error("career create failed", zap.Error(err))
		return nil, err
	}
	return toCareerResponse(career), nil
}

func (s *careerService) GetByID(ctx context.Context, id string) (*dto.CareerResponse, error) {
	career, err := s.repo.Career.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCareerNotFound
		}
		s.logger.Error("career lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toCareerResponse(career), nil
}

func (s *careerService) List(ctx context.Context, req *dto.CareerListRequest) ([]dto.CareerResponse, error) {
	careers, err := s.repo.Career.List(ctx, req.FacultyID, req.IncludeInactive)
	if err != nil {
		s.logger.Error("career list failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.CareerResponse, 0, len(careers))
	for i := range careers {
		result = append(result, *toCareerResponse(&careers[i]))
	}
	return result, nil
}

func (s *careerService) Update(ctx context.Context, id string, req *dto.UpdateCareerRequest, callerID string) (*dto.CareerResponse, error) {
	career, err := s.repo.Career.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCareerNotFound
		}
		s.logger.Error("career lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		career.Name = *req.Name
	}
	if req.FacultyID != nil {
		if _, err := s.repo.Faculty.GetByID(ctx, *req.FacultyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFacultyNotFound
			}
			return nil, err
		}
		career.FacultyID = *req.FacultyID
	}
	if req.DurationYears != nil {
		career.DurationYears = *req.DurationYears
	}
	if req.IsActive != nil {
		career.IsActive = *req.IsActive
	}
	career.UpdatedBy = &callerID

	if err := s.repo.Career.Update(ctx, career); err != nil {
		s.logger.Error("career update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toCareerResponse(career), nil
}

func (s *careerService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.repo.Career.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCareerNotFound
		}
		s.logger.Error("career lookup failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.Career.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("career delete failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── internal helpers ──

func toCareerResponse(career *model.Career) *dto.CareerResponse {
	resp := &dto.CareerResponse{
		ID:            career.CareerID,
		Name:          career.Name,
		FacultyID:     career.FacultyID,
		DurationYears: career.DurationYears,
		IsActive:      career.IsActive,
		CreatedAt:     career.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if career.Faculty != nil {
		resp.Faculty = toFacultyResponse(career.Faculty)
	}
	return resp
}
