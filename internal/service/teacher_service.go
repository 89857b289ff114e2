package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/config"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/dto"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/model"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/repository"
)

// ── teacher business errors ──

var (
	ErrTeacherNotFound      = errors.New("teacher not found")
	ErrRosterImportDisabled = errors.New("roster import is disabled")
	ErrRosterUnreadable     = errors.New("roster file could not be read")
	ErrRosterEmpty          = errors.New("roster file has no data rows")
)

// TeacherService is the teaching staff business interface.
type TeacherService interface {
	Create(ctx context.Context, req *dto.CreateTeacherRequest, callerID string) (*dto.TeacherResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TeacherResponse, error)
	List(ctx context.Context, req *dto.TeacherListRequest) ([]dto.TeacherResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateTeacherRequest, callerID string) (*dto.TeacherResponse, error)
	Delete(ctx context.Context, id, callerID string) error
	ImportRoster(ctx context.Context, r io.Reader, facultyID *string, callerID string) (*dto.RosterImportResult, error)
}

type teacherService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeacherService creates a TeacherService instance.
func NewTeacherService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) TeacherService {
	return &teacherService{cfg: cfg, repo: repo, logger: logger}
}

func (s *teacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest, callerID string) (*dto.TeacherResponse, error) {
	teacher := &model.Teacher{
		FirstNames:   req.FirstNames,
		LastNames:    req.LastNames,
		Email:        req.Email,
		ContractType: req.ContractType,
		MaxLoad:      req.MaxLoad,
		MinLoad:      req.MinLoad,
		FacultyID:    req.FacultyID,
		IsActive:     true,
	}
	if teacher.ContractType == "" {
		teacher.ContractType = "full_time"
	}
	if teacher.MaxLoad == 0 {
		teacher.MaxLoad = 40
	}
	teacher.CreatedBy = &callerID
	teacher.UpdatedBy = &callerID

	if err := s.repo.Teacher.Create(ctx, teacher); err != nil {
		s.logger.Error("teacher create failed", zap.Error(err))
		return nil, err
	}
	return toTeacherResponse(teacher), nil
}

func (s *teacherService) GetByID(ctx context.Context, id string) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("teacher lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toTeacherResponse(teacher), nil
}

func (s *teacherService) List(ctx context.Context, req *dto.TeacherListRequest) ([]dto.TeacherResponse, int64, error) {
	teachers, total, err := s.repo.Teacher.List(ctx, req.FacultyID, req.Keyword, req.IncludeInactive, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("teacher list failed", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		result = append(result, *toTeacherResponse(&teachers[i]))
	}
	return result, total, nil
}

func (s *teacherService) Update(ctx context.Context, id string, req *dto.UpdateTeacherRequest, callerID string) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("teacher lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.FirstNames != nil {
		teacher.FirstNames = *req.FirstNames
	}
	if req.LastNames != nil {
		teacher.LastNames = *req.LastNames
	}
	if req.Email != nil {
		teacher.Email = *req.Email
	}
	if req.ContractType != nil {
		teacher.ContractType = *req.ContractType
	}
	if req.MaxLoad != nil {
		teacher.MaxLoad = *req.MaxLoad
	}
	if req.MinLoad != nil {
		teacher.MinLoad = *req.MinLoad
	}
	if req.FacultyID != nil {
		teacher.FacultyID = req.FacultyID
	}
	if req.IsActive != nil {
		teacher.IsActive = *req.IsActive
	}
	teacher.UpdatedBy = &callerID

	if err := s.repo.Teacher.Update(ctx, teacher); err != nil {
		s.logger.Error("teacher update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toTeacherResponse(teacher), nil
}

func (s *teacherService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.repo.Teacher.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		s.logger.Error("teacher lookup failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.Teacher.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("teacher delete failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// ImportRoster — bulk-load teachers from an xlsx roster
// ═══════════════════════════════════════════════════════════
//
// Expected sheet layout (first sheet, header row skipped):
//   A first_names | B last_names | C email | D contract_type | E max_load
//
// Rows missing a name are skipped and reported; duplicate emails are
// skipped so re-importing the same file is safe.

func (s *teacherService) ImportRoster(ctx context.Context, r io.Reader, facultyID *string, callerID string) (*dto.RosterImportResult, error) {
	if !s.cfg.Feature.RosterImportEnabled {
		return nil, ErrRosterImportDisabled
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		s.logger.Warn("roster open failed", zap.Error(err))
		return nil, ErrRosterUnreadable
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		s.logger.Warn("roster read failed", zap.Error(err))
		return nil, ErrRosterUnreadable
	}
	if len(rows) <= 1 {
		return nil, ErrRosterEmpty
	}

	result := &dto.RosterImportResult{}
	var batch []*model.Teacher

	for i, row := range rows[1:] {
		rowNum := i + 2
		cell := func(col int) string {
			if col < len(row) {
				return strings.TrimSpace(row[col])
			}
			return ""
		}

		firstNames, lastNames := cell(0), cell(1)
		if firstNames == "" && lastNames == "" {
			continue // blank row
		}
		if firstNames == "" || lastNames == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: incomplete name", rowNum))
			continue
		}

		email := cell(2)
		if email != "" {
			if _, err := s.repo.Teacher.GetByEmail(ctx, email); err == nil {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: email %s already registered", rowNum, email))
				continue
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Error("roster email lookup failed", zap.Error(err))
				return nil, err
			}
		}

		contractType := cell(3)
		if contractType != "hourly" {
			contractType = "full_time"
		}
		maxLoad := 40
		if v, err := strconv.Atoi(cell(4)); err == nil && v > 0 {
			maxLoad = v
		}

		teacher := &model.Teacher{
			FirstNames:   firstNames,
			LastNames:    lastNames,
			Email:        email,
			ContractType: contractType,
			MaxLoad:      maxLoad,
			FacultyID:    facultyID,
			IsActive:     true,
		}
		teacher.CreatedBy = &callerID
		teacher.UpdatedBy = &callerID
		batch = append(batch, teacher)
	}

	if err := s.repo.Teacher.CreateBatch(ctx, batch); err != nil {
		s.logger.Error("roster batch insert failed", zap.Error(err))
		return nil, err
	}
	result.Imported = len(batch)

	s.logger.Info("roster imported",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

// ── internal helpers ──

func toTeacherResponse(teacher *model.Teacher) *dto.TeacherResponse {
	resp := &dto.TeacherResponse{
		ID:           teacher.TeacherID,
		FirstNames:   teacher.FirstNames,
		LastNames:    teacher.LastNames,
		FullName:     teacher.FullName(),
		Email:        teacher.Email,
		ContractType: teacher.ContractType,
		MaxLoad:      teacher.MaxLoad,
		MinLoad:      teacher.MinLoad,
		IsActive:     teacher.IsActive,
		CreatedAt:    teacher.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if teacher.FacultyID != nil {
		resp.FacultyID = *teacher.FacultyID
	}
	return resp
}
