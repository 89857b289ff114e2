package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/dto"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/model"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/repository"
)

// ── cycle business errors ──

var (
	ErrCycleNotFound   = errors.New("cycle not found")
	ErrCycleDates      = errors.New("cycle end date must be after the start date")
	ErrCycleTransition = errors.New("invalid schedule status transition")
	ErrNoActiveCycle   = errors.New("no active cycle configured")
)

// CycleService is the academic cycle business interface.
type CycleService interface {
	Create(ctx context.Context, req *dto.CreateCycleRequest, callerID string) (*dto.CycleResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CycleResponse, error)
	GetActive(ctx context.Context) (*dto.CycleResponse, error)
	List(ctx context.Context) ([]dto.CycleResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCycleRequest, callerID string) (*dto.CycleResponse, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateCycleStatusRequest, callerID string) (*dto.CycleResponse, error)
	Activate(ctx context.Context, id string) error
	Delete(ctx context.Context, id, callerID string) error
}

type cycleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCycleService creates a CycleService instance.
func NewCycleService(repo *repository.Repository, logger *zap.Logger) CycleService {
	return &cycleService{repo: repo, logger: logger}
}

func (s *cycleService) Create(ctx context.Context, req *dto.CreateCycleRequest, callerID string) (*dto.CycleResponse, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrCycleDates
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil || !end.After(start) {
		return nil, ErrCycleDates
	}

	cycle := &model.Cycle{
		Name:           req.Name,
		StartDate:      start,
		EndDate:        end,
		ScheduleStatus: "planning",
	}
	cycle.CreatedBy = &callerID
	cycle.UpdatedBy = &callerID

	if err := s.repo.Cycle.Create(ctx, cycle); err != nil {
		s.logger.Error("cycle create failed", zap.Error(err))
		return nil, err
	}
	return toCycleResponse(cycle), nil
}

func (s *cycleService) GetByID(ctx context.Context, id string) (*dto.CycleResponse, error) {
	cycle, err := s.repo.Cycle.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCycleNotFound
		}
		s.logger.Error("cycle lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toCycleResponse(cycle), nil
}

func (s *cycleService) GetActive(ctx context.Context) (*dto.CycleResponse, error) {
	cycle, err := s.repo.Cycle.GetActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveCycle
		}
		s.logger.Error("active cycle lookup failed", zap.Error(err))
		return nil, err
	}
	return toCycleResponse(cycle), nil
}

func (s *cycleService) List(ctx context.Context) ([]dto.CycleResponse, error) {
	cycles, err := s.repo.Cycle.List(ctx)
	if err != nil {
		s.logger.Error("cycle list failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.CycleResponse, 0, len(cycles))
	for i := range cycles {
		result = append(result, *toCycleResponse(&cycles[i]))
	}
	return result, nil
}

func (s *cycleService) Update(ctx context.Context, id string, req *dto.UpdateCycleRequest, callerID string) (*dto.CycleResponse, error) {
	cycle, err := s.repo.Cycle.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCycleNotFound
		}
		s.logger.Error("cycle lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		cycle.Name = *req.Name
	}
	if req.StartDate != nil {
		start, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return nil, ErrCycleDates
		}
		cycle.StartDate = start
	}
	if req.EndDate != nil {
		end, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return nil, ErrCycleDates
		}
		cycle.EndDate = end
	}
	if !cycle.EndDate.After(cycle.StartDate) {
		return nil, ErrCycleDates
	}
	cycle.UpdatedBy = &callerID

	if err := s.repo.Cycle.Update(ctx, cycle); err != nil {
		s.logger.Error("cycle update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toCycleResponse(cycle), nil
}

// UpdateStatus walks the schedule lifecycle. Allowed transitions:
// planning → published, published → archived, published → planning.
func (s *cycleService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateCycleStatusRequest, callerID string) (*dto.CycleResponse, error) {
	cycle, err := s.repo.Cycle.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCycleNotFound
		}
		s.logger.Error("cycle lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if !validStatusTransition(cycle.ScheduleStatus, req.ScheduleStatus) {
		return nil, ErrCycleTransition
	}
	cycle.ScheduleStatus = req.ScheduleStatus
	cycle.UpdatedBy = &callerID

	if err := s.repo.Cycle.Update(ctx, cycle); err != nil {
		s.logger.Error("cycle status update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toCycleResponse(cycle), nil
}

func (s *cycleService) Activate(ctx context.Context, id string) error {
	if _, err := s.repo.Cycle.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCycleNotFound
		}
		s.logger.Error("cycle lookup failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.Cycle.SetActive(ctx, id); err != nil {
		s.logger.Error("cycle activate failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *cycleService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.repo.Cycle.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCycleNotFound
		}
		s.logger.Error("cycle lookup failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.Cycle.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("cycle delete failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── internal helpers ──

func validStatusTransition(from, to string) bool {
	switch from {
	case "planning":
		return to == "published"
	case "published":
		return to == "archived" || to == "planning"
	default:
		return false
	}
}

func toCycleResponse(cycle *model.Cycle) *dto.CycleResponse {
	return &dto.CycleResponse{
		ID:             cycle.CycleID,
		Name:           cycle.Name,
		StartDate:      cycle.StartDate.Format("2006-01-02"),
		EndDate:        cycle.EndDate.Format("2006-01-02"),
		ScheduleStatus: cycle.ScheduleStatus,
		IsActive:       cycle.IsActive,
		CreatedAt:      cycle.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
