package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/dto"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/service"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/pkg/response"
)

// TimeBlockHandler serves the time block endpoints.
type TimeBlockHandler struct {
	blockSvc service.TimeBlockService
}

// NewTimeBlockHandler creates a TimeBlockHandler.
func NewTimeBlockHandler(blockSvc service.TimeBlockService) *TimeBlockHandler {
	return &TimeBlockHandler{blockSvc: blockSvc}
}

// Create registers a time block.
// POST /api/v1/time-blocks
func (h *TimeBlockHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	block, err := h.blockSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleBlockError(c, err)
		return
	}

	response.Created(c, block)
}

// List returns time blocks in grid order.
// GET /api/v1/time-blocks
func (h *TimeBlockHandler) List(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	blocks, err := h.blockSvc.List(c.Request.Context(), includeInactive)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, blocks)
}

// Update edits a time block.
// PUT /api/v1/time-blocks/:id
func (h *TimeBlockHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	block, err := h.blockSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleBlockError(c, err)
		return
	}

	response.OK(c, block)
}

// Delete soft-deletes a time block.
// DELETE /api/v1/time-blocks/:id
func (h *TimeBlockHandler) Delete(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.blockSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		h.handleBlockError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *TimeBlockHandler) handleBlockError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTimeBlockNotFound):
		response.NotFound(c, 28001, "time block not found")
	case errors.Is(err, service.ErrTimeBlockRange):
		response.BadRequest(c, 28002, "time block end must be after its start")
	default:
		response.InternalError(c)
	}
}
