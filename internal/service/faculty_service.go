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

// ── faculty business errors ──

var (
	ErrFacultyNotFound = errors.New("faculty not found")
)

// FacultyService is the faculty business interface.
type FacultyService interface {
	Create(ctx context.Context, req *dto.CreateFacultyRequest, callerID string) (*dto.FacultyResponse, error)
	GetByID(ctx context.Context, id string) (*dto.FacultyResponse, error)
	List(ctx context.Context, req *dto.FacultyListRequest) ([]dto.FacultyResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateFacultyRequest, callerID string) (*dto.FacultyResponse, error)
	Delete(ctx context.Context, id, callerID string) error
}

type facultyService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFacultyService creates a FacultyService instance.
func NewFacultyService(repo *repository.Repository, logger *zap.Logger) FacultyService {
	return &facultyService{repo: repo, logger: logger}
}

func (s *facultyService) Create(ctx context.Context, req *dto.CreateFacultyRequest, callerID string) (*dto.FacultyResponse, error) {
	faculty := &model.Faculty{Name: req.Name, IsActive: true}
	faculty.CreatedBy = &callerID
	faculty.UpdatedBy = &callerID

	if err := s.repo.Faculty.Create(ctx, faculty); err != nil {
		s.logger.Error("faculty create failed", zap.Error(err))
		return nil, err
	}
	return toFacultyResponse(faculty), nil
}

func (s *facultyService) GetByID(ctx context.Context, id string) (*dto.FacultyResponse, error) {
	faculty, err := s.repo.Faculty.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacultyNotFound
		}
		s.logger.Error("faculty lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toFacultyResponse(faculty), nil
}

func (s *facultyService) List(ctx context.Context, req *dto.FacultyListRequest) ([]dto.FacultyResponse, error) {
	faculties, err := s.repo.Faculty.List(ctx, req.IncludeInactive)
	if err != nil {
		s.logger.Error("faculty list failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.FacultyResponse, 0, len(faculties))
	for i := range faculties {
		result = append(result, *toFacultyResponse(&faculties[i]))
	}
	return result, nil
}

func (s *facultyService) Update(ctx context.Context, id string, req *dto.UpdateFacultyRequest, callerID string) (*dto.FacultyResponse, error) {
	faculty, err := s.repo.Faculty.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacultyNotFound
		}
		s.logger.Error("faculty lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		faculty.Name = *req.Name
	}
	if req.IsActive != nil {
		faculty.IsActive = *req.IsActive
	}
	faculty.UpdatedBy = &callerID

	if err := s.repo.Faculty.Update(ctx, faculty); err != nil {
		s.logger.Error("faculty update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toFacultyResponse(faculty), nil
}

func (s *facultyService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.repo.Faculty.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFacultyNotFound
		}
		s.logger.Error("faculty lookup failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.Faculty.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("faculty delete failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── internal helpers ──

func toFacultyResponse(faculty *model.Faculty) *dto.FacultyResponse {
	return &dto.FacultyResponse{
		ID:        faculty.FacultyID,
		Name:      faculty.Name,
		IsActive:  faculty.IsActive,
		CreatedAt: faculty.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
