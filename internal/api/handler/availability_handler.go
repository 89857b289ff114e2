package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/dto"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/service"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/pkg/response"
)

// AvailabilityHandler serves the teacher availability endpoints.
type AvailabilityHandler struct {
	availabilitySvc service.AvailabilityService
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(availabilitySvc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilitySvc: availabilitySvc}
}

// Get returns a teacher's declared availability for a cycle.
// GET /api/v1/teachers/:id/availability?cycle_id=xxx
func (h *AvailabilityHandler) Get(c *gin.Context) {
	cycleID := c.Query("cycle_id")
	if cycleID == "" {
		response.BadRequest(c, 10001, "cycle_id is required")
		return
	}

	availability, err := h.availabilitySvc.Get(c.Request.Context(), c.Param("id"), cycleID)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}

	response.OK(c, availability)
}

// Save replaces a teacher's availability for a cycle in full.
// PUT /api/v1/teachers/:id/availability
func (h *AvailabilityHandler) Save(c *gin.Context) {
	if _, ok := MustGetUserID(c); !ok {
		return
	}

	var req dto.SaveAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	availability, err := h.availabilitySvc.Save(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}

	response.OK(c, availability)
}

func (h *AvailabilityHandler) handleAvailabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTeacherNotFound):
		response.NotFound(c, 27001, "teacher not found")
	case errors.Is(err, service.ErrCycleNotFound):
		response.NotFound(c, 25001, "cycle not found")
	case errors.Is(err, service.ErrAvailabilityBadBlock):
		response.BadRequest(c, 29001, "availability references an unknown time block")
	case errors.Is(err, service.ErrAvailabilityBadSubject):
		response.BadRequest(c, 29002, "availability references an unknown subject")
	default:
		response.InternalError(c)
	}
}
