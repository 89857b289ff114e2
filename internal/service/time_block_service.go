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

// ── time block business errors ──

var (
	ErrTimeBlockNotFound = errors.New("time block not found")
	ErrTimeBlockRange    = errors.New("time block end must be after its start")
)

// TimeBlockService manages the time rows of the weekly grid.
type TimeBlockService interface {
	Create(ctx context.Context, req *dto.CreateTimeBlockRequest, callerID string) (*dto.TimeBlockResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.TimeBlockResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTimeBlockRequest, callerID string) (*dto.TimeBlockResponse, error)
	Delete(ctx context.Context, id, callerID string) error
}

type timeBlockService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimeBlockService creates a TimeBlockService instance.
func NewTimeBlockService(repo *repository.Repository, logger *zap.Logger) TimeBlockService {
	return &timeBlockService{repo: repo, logger: logger}
}

func (s *timeBlockService) Create(ctx context.Context, req *dto.CreateTimeBlockRequest, callerID string) (*dto.TimeBlockResponse, error) {
	if req.EndTime <= req.StartTime {
		return nil, ErrTimeBlockRange
	}

	block := &model.TimeBlock{
		Label:     req.Label,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	block.CreatedBy = &callerID
	block.UpdatedBy = &callerID

	if err := s.repo.TimeBlock.Create(ctx, block); err != nil {
		s.logger.Error("time block create failed", zap.Error(err))
		return nil, err
	}
	return toTimeBlockResponse(block), nil
}

func (s *timeBlockService) List(ctx context.Context, includeInactive bool) ([]dto.TimeBlockResponse, error) {
	blocks, err := s.repo.TimeBlock.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("time block list failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.TimeBlockResponse, 0, len(blocks))
	for i := range blocks {
		result = append(result, *toTimeBlockResponse(&blocks[i]))
	}
	return result, nil
}

func (s *timeBlockService) Update(ctx context.Context, id string, req *dto.UpdateTimeBlockRequest, callerID string) (*dto.TimeBlockResponse, error) {
	block, err := s.repo.TimeBlock.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeBlockNotFound
		}
		s.logger.Error("time block lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Label != nil {
		block.Label = *req.Label
	}
	if req.StartTime != nil {
		block.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		block.EndTime = *req.EndTime
	}
	if block.EndTime <= block.StartTime {
		return nil, ErrTimeBlockRange
	}
	if req.SortOrder != nil {
		block.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		block.IsActive = *req.IsActive
	}
	block.UpdatedBy = &callerID

	if err := s.repo.TimeBlock.Update(ctx, block); err != nil {
		s.logger.Error("time block update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toTimeBlockResponse(block), nil
}

func (s *timeBlockService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.repo.TimeBlock.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTimeBlockNotFound
		}
		s.logger.Error("time block lookup failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.TimeBlock.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("time block delete failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── internal helpers ──

func toTimeBlockResponse(block *model.TimeBlock) *dto.TimeBlockResponse {
	return &dto.TimeBlockResponse{
		ID:        block.TimeBlockID,
		Label:     block.Label,
		StartTime: block.StartTime,
		EndTime:   block.EndTime,
		SortOrder: block.SortOrder,
		IsActive:  block.IsActive,
	}
}
