package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/dto"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/service"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/pkg/response"
)

// FacultyHandler serves the faculty catalog endpoints.
type FacultyHandler struct {
	facultySvc service.FacultyService
}

// NewFacultyHandler creates a FacultyHandler.
func NewFacultyHandler(facultySvc service.FacultyService) *FacultyHandler {
	return &FacultyHandler{facultySvc: facultySvc}
}

// Create registers a faculty.
// POST /api/v1/faculties
func (h *FacultyHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	faculty, err := h.facultySvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, faculty)
}

// Get returns one faculty.
// GET /api/v1/faculties/:id
func (h *FacultyHandler) Get(c *gin.Context) {
	faculty, err := h.facultySvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			response.NotFound(c, 21001, "faculty not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, faculty)
}

// List returns all faculties.
// GET /api/v1/faculties
func (h *FacultyHandler) List(c *gin.Context) {
	var req dto.FacultyListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	faculties, err := h.facultySvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, faculties)
}

// Update edits a faculty.
// PUT /api/v1/faculties/:id
func (h *FacultyHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	faculty, err := h.facultySvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			response.NotFound(c, 21001, "faculty not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, faculty)
}

// Delete soft-deletes a faculty.
// DELETE /api/v1/faculties/:id
func (h *FacultyHandler) Delete(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.facultySvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			response.NotFound(c, 21001, "faculty not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
