package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/dto"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/service"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/pkg/response"
)

// TimetableHandler serves the placement grid endpoints. Placement
// rejections are not errors: they come back as 409 responses carrying
// the conflict payload, so the client can keep its modal open and show
// the reason.
type TimetableHandler struct {
	timetableSvc service.TimetableService
}

// NewTimetableHandler creates a TimetableHandler.
func NewTimetableHandler(timetableSvc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableSvc: timetableSvc}
}

// GetView returns the weekly grid for a career and cycle.
// GET /api/v1/timetable?career_id=xxx&cycle_id=xxx
func (h *TimetableHandler) GetView(c *gin.Context) {
	var req dto.TimetableViewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	view, err := h.timetableSvc.GetView(c.Request.Context(), &req)
	if err != nil {
		h.handleTimetableError(c, err)
		return
	}

	response.OK(c, view)
}

// AddSession places a new class in an empty cell.
// POST /api/v1/timetable/sessions
func (h *TimetableHandler) AddSession(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	session, conflict, err := h.timetableSvc.AddSession(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleTimetableError(c, err)
		return
	}
	if conflict != nil {
		response.ConflictData(c, 30010, conflict.Reason, conflict)
		return
	}

	response.Created(c, session)
}

// MoveSession relocates a session to another cell.
// PUT /api/v1/timetable/sessions/:id/move
func (h *TimetableHandler) MoveSession(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.MoveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	session, conflict, err := h.timetableSvc.MoveSession(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleTimetableError(c, err)
		return
	}
	if conflict != nil {
		response.ConflictData(c, 30010, conflict.Reason, conflict)
		return
	}

	response.OK(c, session)
}

// UpdateSession rewrites a session's content in place.
// PUT /api/v1/timetable/sessions/:id
func (h *TimetableHandler) UpdateSession(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	session, conflict, err := h.timetableSvc.UpdateSession(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleTimetableError(c, err)
		return
	}
	if conflict != nil {
		response.ConflictData(c, 30010, conflict.Reason, conflict)
		return
	}

	response.OK(c, session)
}

// RemoveSession deletes a placed session.
// DELETE /api/v1/timetable/sessions/:id
func (h *TimetableHandler) RemoveSession(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.timetableSvc.RemoveSession(c.Request.Context(), c.Param("id"), callerID); err != nil {
		h.handleTimetableError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *TimetableHandler) handleTimetableError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		response.NotFound(c, 30001, "class session not found")
	case errors.Is(err, service.ErrScheduleLocked):
		response.Conflict(c, 30002, "cycle schedule is not open for editing")
	case errors.Is(err, service.ErrNoTimeBlocks):
		response.Conflict(c, 30003, "no time blocks configured")
	case errors.Is(err, service.ErrCareerNotFound):
		response.NotFound(c, 22001, "career not found")
	case errors.Is(err, service.ErrCycleNotFound):
		response.NotFound(c, 25001, "cycle not found")
	case errors.Is(err, service.ErrSubjectNotFound):
		response.NotFound(c, 23001, "subject not found")
	case errors.Is(err, service.ErrRoomNotFound):
		response.NotFound(c, 24001, "room not found")
	case errors.Is(err, service.ErrTeacherNotFound):
		response.NotFound(c, 27001, "teacher not found")
	default:
		response.InternalError(c)
	}
}
