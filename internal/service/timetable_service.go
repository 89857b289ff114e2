package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/dto"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/model"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/repository"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/timetable"
)

// ── timetable business errors ──

var (
	ErrSessionNotFound = errors.New("class session not found")
	ErrScheduleLocked  = errors.New("cycle schedule is not open for editing")
	ErrNoTimeBlocks    = errors.New("no time blocks configured")
)

// gridDays are the columns of the weekly grid, in display order.
var gridDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// TimetableService drives the placement engine over persisted state.
// Every mutation loads the cycle's full schedule, replays the change
// through the engine's controller and persists only accepted results.
// A nil error with a non-nil ConflictResponse means the placement was
// rejected; the schedule is unchanged.
type TimetableService interface {
	GetView(ctx context.Context, req *dto.TimetableViewRequest) (*dto.TimetableViewResponse, error)
	AddSession(ctx context.Context, req *dto.CreateSessionRequest, callerID string) (*dto.SessionResponse, *dto.ConflictResponse, error)
	MoveSession(ctx context.Context, id string, req *dto.MoveSessionRequest, callerID string) (*dto.SessionResponse, *dto.ConflictResponse, error)
	UpdateSession(ctx context.Context, id string, req *dto.UpdateSessionRequest, callerID string) (*dto.SessionResponse, *dto.ConflictResponse, error)
	RemoveSession(ctx context.Context, id, callerID string) error
}

type timetableService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimetableService creates a TimetableService instance.
func NewTimetableService(repo *repository.Repository, logger *zap.Logger) TimetableService {
	return &timetableService{repo: repo, logger: logger}
}

// ────────────────────── GetView ──────────────────────

func (s *timetableService) GetView(ctx context.Context, req *dto.TimetableViewRequest) (*dto.TimetableViewResponse, error) {
	if _, err := s.repo.Career.GetByID(ctx, req.CareerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCareerNotFound
		}
		s.logger.Error("career lookup failed", zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.Cycle.GetByID(ctx, req.CycleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCycleNotFound
		}
		s.logger.Error("cycle lookup failed", zap.Error(err))
		return nil, err
	}

	blocks, grid, err := s.loadGrid(ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := s.repo.ClassSession.ListByCareerAndCycle(ctx, req.CareerID, req.CycleID)
	if err != nil {
		s.logger.Error("session list failed", zap.Error(err))
		return nil, err
	}
	store := timetable.NewStore(toEngineSessions(sessions))
	view := timetable.Render(grid, store, "")

	resp := &dto.TimetableViewResponse{
		CareerID: req.CareerID,
		CycleID:  req.CycleID,
		Days:     view.Days,
		Times:    make([]dto.TimeBlockResponse, 0, len(blocks)),
		Rows:     make([][]dto.TimetableCell, 0, len(view.Rows)),
	}
	for i := range blocks {
		resp.Times = append(resp.Times, *toTimeBlockResponse(&blocks[i]))
	}
	for _, row := range view.Rows {
		outRow := make([]dto.TimetableCell, 0, len(row))
		for _, cell := range row {
			outCell := dto.TimetableCell{Day: cell.Day, StartTime: cell.StartTime}
			if cell.Session != nil {
				outCell.Session = toSessionResponse(*cell.Session)
			}
			outRow = append(outRow, outCell)
		}
		resp.Rows = append(resp.Rows, outRow)
	}
	return resp, nil
}

// ────────────────────── AddSession ──────────────────────

func (s *timetableService) AddSession(ctx context.Context, req *dto.CreateSessionRequest, callerID string) (*dto.SessionResponse, *dto.ConflictResponse, error) {
	if err := s.requireEditable(ctx, req.CycleID); err != nil {
		return nil, nil, err
	}

	draft := timetable.Session{
		SubjectID:   req.SubjectID,
		RoomID:      req.RoomID,
		SectionCode: req.SectionCode,
		ColorTag:    req.ColorTag,
	}
	if req.TeacherID != nil {
		draft.TeacherID = *req.TeacherID
	}
	if draft.SectionCode == "" {
		draft.SectionCode = "01"
	}
	if draft.ColorTag == "" {
		draft.ColorTag = "color-blue"
	}
	if err := s.fillLabels(ctx, &draft); err != nil {
		return nil, nil, err
	}

	eng, err := s.loadEngine(ctx, req.CycleID, callerID)
	if err != nil {
		return nil, nil, err
	}

	eng.ctrl.OpenAdd(req.Day, req.StartTime, req.CareerID, req.CycleID)
	eng.ctrl.SetDraft(draft)
	res := eng.ctrl.SaveModal()
	if !res.OK() {
		return nil, toConflictResponse(res), nil
	}
	if eng.commitErr != nil {
		s.logger.Error("session create failed", zap.Error(eng.commitErr))
		return nil, nil, eng.commitErr
	}

	placed, _ := eng.ctrl.Store().Get(eng.lastCommit.Session.ID)
	return toSessionResponse(placed), nil, nil
}

// ────────────────────── MoveSession ──────────────────────

func (s *timetableService) MoveSession(ctx context.Context, id string, req *dto.MoveSessionRequest, callerID string) (*dto.SessionResponse, *dto.ConflictResponse, error) {
	existing, err := s.repo.ClassSession.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSessionNotFound
		}
		s.logger.Error("session lookup failed", zap.String("id", id), zap.Error(err))
		return nil, nil, err
	}
	if err := s.requireEditable(ctx, existing.CycleID); err != nil {
		return nil, nil, err
	}

	eng, err := s.loadEngine(ctx, existing.CycleID, callerID)
	if err != nil {
		return nil, nil, err
	}

	if !eng.ctrl.BeginDrag(id) {
		return nil, nil, ErrSessionNotFound
	}
	res := eng.ctrl.Drop(req.Day, req.StartTime)
	if !res.OK() {
		return nil, toConflictResponse(res), nil
	}
	if eng.commitErr != nil {
		s.logger.Error("session move failed", zap.String("id", id), zap.Error(eng.commitErr))
		return nil, nil, eng.commitErr
	}

	moved, _ := eng.ctrl.Store().Get(id)
	return toSessionResponse(moved), nil, nil
}

// ────────────────────── UpdateSession ──────────────────────

func (s *timetableService) UpdateSession(ctx context.Context, id string, req *dto.UpdateSessionRequest, callerID string) (*dto.SessionResponse, *dto.ConflictResponse, error) {
	existing, err := s.repo.ClassSession.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSessionNotFound
		}
		s.logger.Error("session lookup failed", zap.String("id", id), zap.Error(err))
		return nil, nil, err
	}
	if err := s.requireEditable(ctx, existing.CycleID); err != nil {
		return nil, nil, err
	}

	draft := timetable.Session{
		SubjectID:   req.SubjectID,
		RoomID:      req.RoomID,
		SectionCode: req.SectionCode,
		ColorTag:    req.ColorTag,
	}
	if req.TeacherID != nil {
		draft.TeacherID = *req.TeacherID
	}
	if draft.SectionCode == "" {
		draft.SectionCode = existing.SectionCode
	}
	if draft.ColorTag == "" {
		draft.ColorTag = existing.ColorTag
	}
	if err := s.fillLabels(ctx, &draft); err != nil {
		return nil, nil, err
	}

	eng, err := s.loadEngine(ctx, existing.CycleID, callerID)
	if err != nil {
		return nil, nil, err
	}

	if !eng.ctrl.OpenEdit(id) {
		return nil, nil, ErrSessionNotFound
	}
	eng.ctrl.SetDraft(draft)
	res := eng.ctrl.SaveModal()
	if !res.OK() {
		return nil, toConflictResponse(res), nil
	}
	if eng.commitErr != nil {
		s.logger.Error("session update failed", zap.String("id", id), zap.Error(eng.commitErr))
		return nil, nil, eng.commitErr
	}

	updated, _ := eng.ctrl.Store().Get(id)
	return toSessionResponse(updated), nil, nil
}

// ────────────────────── RemoveSession ──────────────────────

func (s *timetableService) RemoveSession(ctx context.Context, id, callerID string) error {
	existing, err := s.repo.ClassSession.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("session lookup failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if err := s.requireEditable(ctx, existing.CycleID); err != nil {
		return err
	}

	eng, err := s.loadEngine(ctx, existing.CycleID, callerID)
	if err != nil {
		return err
	}
	if !eng.ctrl.Remove(id) {
		return ErrSessionNotFound
	}
	if eng.commitErr != nil {
		s.logger.Error("session remove failed", zap.String("id", id), zap.Error(eng.commitErr))
		return eng.commitErr
	}
	return nil
}

// ── internal helpers ──

// engineState is one fully loaded controller plus the outcome of its
// persistence callback.
type engineState struct {
	ctrl       *timetable.Controller
	commitErr  error
	lastCommit timetable.Commit
}

// loadGrid builds the slot grid from the configured time blocks.
func (s *timetableService) loadGrid(ctx context.Context) ([]model.TimeBlock, *timetable.Grid, error) {
	blocks, err := s.repo.TimeBlock.List(ctx, false)
	if err != nil {
		s.logger.Error("time block list failed", zap.Error(err))
		return nil, nil, err
	}
	if len(blocks) == 0 {
		return nil, nil, ErrNoTimeBlocks
	}
	times := make([]string, 0, len(blocks))
	for _, block := range blocks {
		times = append(times, block.Label)
	}
	return blocks, timetable.NewGrid(gridDays, times), nil
}

// loadEngine assembles a controller over the cycle's full schedule.
// The whole cycle is loaded, not just one career, because room
// conflicts cross career boundaries.
func (s *timetableService) loadEngine(ctx context.Context, cycleID, callerID string) (*engineState, error) {
	_, grid, err := s.loadGrid(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := s.repo.ClassSession.ListByCycle(ctx, cycleID)
	if err != nil {
		s.logger.Error("session list failed", zap.Error(err))
		return nil, err
	}

	eng := &engineState{}
	store := timetable.NewStore(toEngineSessions(sessions))
	eng.ctrl = timetable.NewController(grid, store, func(cm timetable.Commit) {
		eng.lastCommit = cm
		eng.commitErr = s.persist(ctx, cm, callerID)
	})
	return eng, nil
}

// persist writes one accepted engine commit to the database.
func (s *timetableService) persist(ctx context.Context, cm timetable.Commit, callerID string) error {
	switch cm.Op {
	case timetable.CommitAdd:
		return s.repo.ClassSession.Create(ctx, toModelSession(cm.Session, callerID))
	case timetable.CommitMove:
		return s.repo.ClassSession.UpdateSlot(ctx, cm.Session.ID, cm.Session.Day, cm.Session.StartTime, callerID)
	case timetable.CommitUpdate:
		return s.repo.ClassSession.Update(ctx, toModelSession(cm.Session, callerID))
	case timetable.CommitRemove:
		return s.repo.ClassSession.Delete(ctx, cm.Session.ID)
	default:
		return nil
	}
}

// requireEditable rejects mutations against published or archived
// cycles.
func (s *timetableService) requireEditable(ctx context.Context, cycleID string) error {
	cycle, err := s.repo.Cycle.GetByID(ctx, cycleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCycleNotFound
		}
		s.logger.Error("cycle lookup failed", zap.String("id", cycleID), zap.Error(err))
		return err
	}
	if cycle.ScheduleStatus != "planning" {
		return ErrScheduleLocked
	}
	return nil
}

// fillLabels resolves the draft's display labels and validates that
// its references exist. Empty IDs stay empty; the engine reports them
// as missing required fields.
func (s *timetableService) fillLabels(ctx context.Context, draft *timetable.Session) error {
	if draft.SubjectID != "" {
		subject, err := s.repo.Subject.GetByID(ctx, draft.SubjectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubjectNotFound
			}
			return err
		}
		draft.SubjectName = subject.Name
	}
	if draft.RoomID != "" {
		room, err := s.repo.Room.GetByID(ctx, draft.RoomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		draft.RoomName = room.Name
	}
	if draft.TeacherID != "" {
		teacher, err := s.repo.Teacher.GetByID(ctx, draft.TeacherID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeacherNotFound
			}
			return err
		}
		draft.TeacherName = teacher.FullName()
	}
	return nil
}

func toEngineSessions(sessions []model.ClassSession) []timetable.Session {
	out := make([]timetable.Session, 0, len(sessions))
	for i := range sessions {
		out = append(out, toEngineSession(&sessions[i]))
	}
	return out
}

func toEngineSession(m *model.ClassSession) timetable.Session {
	s := timetable.Session{
		ID:          m.SessionID,
		CareerID:    m.CareerID,
		CycleID:     m.CycleID,
		SubjectID:   m.SubjectID,
		RoomID:      m.RoomID,
		SectionCode: m.SectionCode,
		Day:         m.Day,
		StartTime:   m.StartTime,
		ColorTag:    m.ColorTag,
	}
	if m.TeacherID != nil {
		s.TeacherID = *m.TeacherID
	}
	if m.Subject != nil {
		s.SubjectName = m.Subject.Name
	}
	if m.Teacher != nil {
		s.TeacherName = m.Teacher.FullName()
	}
	if m.Room != nil {
		s.RoomName = m.Room.Name
	}
	return s
}

func toModelSession(s timetable.Session, callerID string) *model.ClassSession {
	m := &model.ClassSession{
		SessionID:   s.ID,
		CareerID:    s.CareerID,
		CycleID:     s.CycleID,
		SubjectID:   s.SubjectID,
		RoomID:      s.RoomID,
		SectionCode: s.SectionCode,
		Day:         s.Day,
		StartTime:   s.StartTime,
		ColorTag:    s.ColorTag,
	}
	if s.TeacherID != "" {
		teacherID := s.TeacherID
		m.TeacherID = &teacherID
	}
	m.CreatedBy = &callerID
	m.UpdatedBy = &callerID
	return m
}

func toSessionResponse(s timetable.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:          s.ID,
		CareerID:    s.CareerID,
		CycleID:     s.CycleID,
		SubjectID:   s.SubjectID,
		SubjectName: s.SubjectName,
		TeacherID:   s.TeacherID,
		TeacherName: s.TeacherName,
		RoomID:      s.RoomID,
		RoomName:    s.RoomName,
		SectionCode: s.SectionCode,
		Day:         s.Day,
		StartTime:   s.StartTime,
		ColorTag:    s.ColorTag,
	}
}

func toConflictResponse(res timetable.CheckResult) *dto.ConflictResponse {
	return &dto.ConflictResponse{
		Code:                 res.Code.String(),
		Reason:               res.Reason,
		ConflictingSessionID: res.ConflictingID,
	}
}
