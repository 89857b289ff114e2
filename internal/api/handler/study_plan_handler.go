package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/dto"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/service"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/pkg/response"
)

// StudyPlanHandler serves the study plan endpoints.
type StudyPlanHandler struct {
	planSvc service.StudyPlanService
}

// NewStudyPlanHandler creates a StudyPlanHandler.
func NewStudyPlanHandler(planSvc service.StudyPlanService) *StudyPlanHandler {
	return &StudyPlanHandler{planSvc: planSvc}
}

// Create registers a study plan for a career.
// POST /api/v1/study-plans
func (h *StudyPlanHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateStudyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	plan, err := h.planSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.Created(c, plan)
}

// Get returns one study plan.
// GET /api/v1/study-plans/:id
func (h *StudyPlanHandler) Get(c *gin.Context) {
	plan, err := h.planSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OK(c, plan)
}

// List returns study plans, optionally filtered by career.
// GET /api/v1/study-plans
func (h *StudyPlanHandler) List(c *gin.Context) {
	var req dto.StudyPlanListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	plans, err := h.planSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, plans)
}

// Update edits a study plan.
// PUT /api/v1/study-plans/:id
func (h *StudyPlanHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStudyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	plan, err := h.planSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OK(c, plan)
}

// Delete soft-deletes a study plan.
// DELETE /api/v1/study-plans/:id
func (h *StudyPlanHandler) Delete(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.planSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *StudyPlanHandler) handlePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudyPlanNotFound):
		response.NotFound(c, 26001, "study plan not found")
	case errors.Is(err, service.ErrCareerNotFound):
		response.NotFound(c, 22001, "career not found")
	default:
		response.InternalError(c)
	}
}
