package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/dto"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/service"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/pkg/response"
)

// CareerHandler serves the career catalog endpoints.
type CareerHandler struct {
	careerSvc service.CareerService
}

// NewCareerHandler creates a CareerHandler.
func NewCareerHandler(careerSvc service.CareerService) *CareerHandler {
	return &CareerHandler{careerSvc: careerSvc}
}

// Create registers a career under a faculty.
// POST /api/v1/careers
func (h *CareerHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	career, err := h.careerSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleCareerError(c, err)
		return
	}

	response.Created(c, career)
}

// Get returns one career.
// GET /api/v1/careers/:id
func (h *CareerHandler) Get(c *gin.Context) {
	career, err := h.careerSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleCareerError(c, err)
		return
	}

	response.OK(c, career)
}

// List returns careers, optionally filtered by faculty.
// GET /api/v1/careers
func (h *CareerHandler) List(c *gin.Context) {
	var req dto.CareerListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	careers, err := h.careerSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, careers)
}

// Update edits a career.
// PUT /api/v1/careers/:id
func (h *CareerHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	career, err := h.careerSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleCareerError(c, err)
		return
	}

	response.OK(c, career)
}

// Delete soft-deletes a career.
// DELETE /api/v1/careers/:id
func (h *CareerHandler) Delete(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.careerSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		h.handleCareerError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *CareerHandler) handleCareerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCareerNotFound):
		response.NotFound(c, 22001, "career not found")
	case errors.Is(err, service.ErrFacultyNotFound):
		response.NotFound(c, 21001, "faculty not found")
	default:
		response.InternalError(c)
	}
}
