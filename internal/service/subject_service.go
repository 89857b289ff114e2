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

// ── subject business errors ──

var (
	ErrSubjectNotFound  = errors.New("subject not found")
	ErrSubjectCodeTaken = errors.New("subject code is already in use")
)

// SubjectService is the subject catalog business interface.
type SubjectService interface {
	Create(ctx context.Context, req *dto.CreateSubjectRequest, callerID string) (*dto.SubjectResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SubjectResponse, error)
	List(ctx context.Context, req *dto.SubjectListRequest) ([]dto.SubjectResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateSubjectRequest, callerID string) (*dto.SubjectResponse, error)
	Delete(ctx context.Context, id, callerID string) error
}

type subjectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubjectService creates a SubjectService instance.
func NewSubjectService(repo *repository.Repository, logger *zap.Logger) SubjectService {
	return &subjectService{repo: repo, logger: logger}
}

func (s *subjectService) Create(ctx context.Context, req *dto.CreateSubjectRequest, callerID string) (*dto.SubjectResponse, error) {
	if _, err := s.repo.Subject.GetByCode(ctx, req.Code); err == nil {
		return nil, ErrSubjectCodeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("subject code lookup failed", zap.Error(err))
		return nil, err
	}

	subject := &model.Subject{
		Code:        req.Code,
		Name:        req.Name,
		CreditUnits: req.CreditUnits,
		Kind:        req.Kind,
		FacultyID:   req.FacultyID,
		IsActive:    true,
	}
	if subject.CreditUnits == 0 {
		subject.CreditUnits = 4
	}
	if subject.Kind == "" {
		subject.Kind = "theory"
	}
	subject.CreatedBy = &callerID
	subject.UpdatedBy = &callerID

	if err := s.repo.Subject.Create(ctx, subject); err != nil {
		s.logger.Error("subject create failed", zap.Error(err))
		return nil, err
	}
	return toSubjectResponse(subject), nil
}

func (s *subjectService) GetByID(ctx context.Context, id string) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("subject lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toSubjectResponse(subject), nil
}

func (s *subjectService) List(ctx context.Context, req *dto.SubjectListRequest) ([]dto.SubjectResponse, int64, error) {
	subjects, total, err := s.repo.Subject.List(ctx, req.FacultyID, req.Keyword, req.IncludeInactive, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("subject list failed", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.SubjectResponse, 0, len(subjects))
	for i := range subjects {
		result = append(result, *toSubjectResponse(&subjects[i]))
	}
	return result, total, nil
}

func (s *subjectService) Update(ctx context.Context, id string, req *dto.UpdateSubjectRequest, callerID string) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("subject lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Code != nil && *req.Code != subject.Code {
		if _, err := s.repo.Subject.GetByCode(ctx, *req.Code); err == nil {
			return nil, ErrSubjectCodeTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		subject.Code = *req.Code
	}
	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.CreditUnits != nil {
		subject.CreditUnits = *req.CreditUnits
	}
	if req.Kind != nil {
		subject.Kind = *req.Kind
	}
	if req.FacultyID != nil {
		subject.FacultyID = req.FacultyID
	}
	if req.IsActive != nil {
		subject.IsActive = *req.IsActive
	}
	subject.UpdatedBy = &callerID

	if err := s.repo.Subject.Update(ctx, subject); err != nil {
		s.logger.Error("subject update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toSubjectResponse(subject), nil
}

func (s *subjectService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.repo.Subject.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		s.logger.Error("subject lookup failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.Subject.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("subject delete failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── internal helpers ──

func toSubjectResponse(subject *model.Subject) *dto.SubjectResponse {
	resp := &dto.SubjectResponse{
		ID:          subject.SubjectID,
		Code:        subject.Code,
		Name:        subject.Name,
		CreditUnits: subject.CreditUnits,
		Kind:        subject.Kind,
		IsActive:    subject.IsActive,
		CreatedAt:   subject.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if subject.FacultyID != nil {
		resp.FacultyID = *subject.FacultyID
	}
	return resp
}
