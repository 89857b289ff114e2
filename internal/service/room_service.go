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

// ── room business errors ──

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomTypeNotFound = errors.New("room type not found")
)

// RoomService is the room and room type business interface.
type RoomService interface {
	CreateType(ctx context.Context, req *dto.CreateRoomTypeRequest, callerID string) (*dto.RoomTypeResponse, error)
	ListTypes(ctx context.Context) ([]dto.RoomTypeResponse, error)
	Create(ctx context.Context, req *dto.CreateRoomRequest, callerID string) (*dto.RoomResponse, error)
	GetByID(ctx context.Context, id string) (*dto.RoomResponse, error)
	List(ctx context.Context, req *dto.RoomListRequest) ([]dto.RoomResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateRoomRequest, callerID string) (*dto.RoomResponse, error)
	Delete(ctx context.Context, id, callerID string) error
}

type roomService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRoomService creates a RoomService instance.
func NewRoomService(repo *repository.Repository, logger *zap.Logger) RoomService {
	return &roomService{repo: repo, logger: logger}
}

func (s *roomService) CreateType(ctx context.Context, req *dto.CreateRoomTypeRequest, callerID string) (*dto.RoomTypeResponse, error) {
	roomType := &model.RoomType{Name: req.Name}
	roomType.CreatedBy = &callerID
	roomType.UpdatedBy = &callerID

	if err := s.repo.RoomType.Create(ctx, roomType); err != nil {
		s.logger.Error("room type create failed", zap.Error(err))
		return nil, err
	}
	return &dto.RoomTypeResponse{ID: roomType.RoomTypeID, Name: roomType.Name}, nil
}

func (s *roomService) ListTypes(ctx context.Context) ([]dto.RoomTypeResponse, error) {
	types, err := s.repo.RoomType.List(ctx)
	if err != nil {
		s.logger.Error("room type list failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.RoomTypeResponse, 0, len(types))
	for _, t := range types {
		result = append(result, dto.RoomTypeResponse{ID: t.RoomTypeID, Name: t.Name})
	}
	return result, nil
}

func (s *roomService) Create(ctx context.Context, req *dto.CreateRoomRequest, callerID string) (*dto.RoomResponse, error) {
	if _, err := s.repo.RoomType.GetByID(ctx, req.RoomTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		s.logger.Error("room type lookup failed", zap.Error(err))
		return nil, err
	}

	room := &model.Room{
		Name:       req.Name,
		Capacity:   req.Capacity,
		RoomTypeID: req.RoomTypeID,
		Equipment:  req.Equipment,
		Location:   req.Location,
		IsActive:   true,
	}
	room.CreatedBy = &callerID
	room.UpdatedBy = &callerID

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.logger.Error("room create failed", zap.Error(err))
		return nil, err
	}
	return toRoomResponse(room), nil
}

func (s *roomService) GetByID(ctx context.Context, id string) (*dto.RoomResponse, error) {
	room, err := s.repo.Room.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("room lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toRoomResponse(room), nil
}

func (s *roomService) List(ctx context.Context, req *dto.RoomListRequest) ([]dto.RoomResponse, error) {
	rooms, err := s.repo.Room.List(ctx, req.RoomTypeID, req.IncludeInactive)
	if err != nil {
		s.logger.Error("room list failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		result = append(result, *toRoomResponse(&rooms[i]))
	}
	return result, nil
}

func (s *roomService) Update(ctx context.Context, id string, req *dto.UpdateRoomRequest, callerID string) (*dto.RoomResponse, error) {
	room, err := s.repo.Room.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("room lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.RoomTypeID != nil {
		if _, err := s.repo.RoomType.GetByID(ctx, *req.RoomTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRoomTypeNotFound
			}
			return nil, err
		}
		room.RoomTypeID = *req.RoomTypeID
		room.RoomType = nil
	}
	if req.Equipment != nil {
		room.Equipment = *req.Equipment
	}
	if req.Location != nil {
		room.Location = *req.Location
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}
	room.UpdatedBy = &callerID

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.logger.Error("room update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toRoomResponse(room), nil
}

func (s *roomService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.repo.Room.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		s.logger.Error("room lookup failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.Room.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("room delete failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── internal helpers ──

func toRoomResponse(room *model.Room) *dto.RoomResponse {
	resp := &dto.RoomResponse{
		ID:        room.RoomID,
		Name:      room.Name,
		Capacity:  room.Capacity,
		Equipment: room.Equipment,
		Location:  room.Location,
		IsActive:  room.IsActive,
		CreatedAt: room.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if room.RoomType != nil {
		resp.RoomType = &dto.RoomTypeResponse{ID: room.RoomType.RoomTypeID, Name: room.RoomType.Name}
	}
	return resp
}
