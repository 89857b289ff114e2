package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/dto"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/service"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/pkg/response"
)

// CycleHandler serves the academic cycle endpoints.
type CycleHandler struct {
	cycleSvc service.CycleService
}

// NewCycleHandler creates a CycleHandler.
func NewCycleHandler(cycleSvc service.CycleService) *CycleHandler {
	return &CycleHandler{cycleSvc: cycleSvc}
}

// Create registers an academic cycle.
// POST /api/v1/cycles
func (h *CycleHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	cycle, err := h.cycleSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleCycleError(c, err)
		return
	}

	response.Created(c, cycle)
}

// Get returns one cycle.
// GET /api/v1/cycles/:id
func (h *CycleHandler) Get(c *gin.Context) {
	cycle, err := h.cycleSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleCycleError(c, err)
		return
	}

	response.OK(c, cycle)
}

// GetActive returns the currently active cycle.
// GET /api/v1/cycles/active
func (h *CycleHandler) GetActive(c *gin.Context) {
	cycle, err := h.cycleSvc.GetActive(c.Request.Context())
	if err != nil {
		h.handleCycleError(c, err)
		return
	}

	response.OK(c, cycle)
}

// List returns all cycles.
// GET /api/v1/cycles
func (h *CycleHandler) List(c *gin.Context) {
	cycles, err := h.cycleSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, cycles)
}

// Update edits a cycle's name or date range.
// PUT /api/v1/cycles/:id
func (h *CycleHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	cycle, err := h.cycleSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleCycleError(c, err)
		return
	}

	response.OK(c, cycle)
}

// UpdateStatus moves a cycle through the planning lifecycle.
// PUT /api/v1/cycles/:id/status
func (h *CycleHandler) UpdateStatus(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCycleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	cycle, err := h.cycleSvc.UpdateStatus(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleCycleError(c, err)
		return
	}

	response.OK(c, cycle)
}

// Activate marks a cycle as the active one.
// PUT /api/v1/cycles/:id/activate
func (h *CycleHandler) Activate(c *gin.Context) {
	if _, ok := MustGetUserID(c); !ok {
		return
	}

	if err := h.cycleSvc.Activate(c.Request.Context(), c.Param("id")); err != nil {
		h.handleCycleError(c, err)
		return
	}

	response.OK(c, nil)
}

// Delete soft-deletes a cycle.
// DELETE /api/v1/cycles/:id
func (h *CycleHandler) Delete(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.cycleSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		h.handleCycleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *CycleHandler) handleCycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCycleNotFound):
		response.NotFound(c, 25001, "cycle not found")
	case errors.Is(err, service.ErrCycleDates):
		response.BadRequest(c, 25002, "cycle end date must be after the start date")
	case errors.Is(err, service.ErrCycleTransition):
		response.Conflict(c, 25003, "invalid schedule status transition")
	case errors.Is(err, service.ErrNoActiveCycle):
		response.NotFound(c, 25004, "no active cycle configured")
	default:
		response.InternalError(c)
	}
}
