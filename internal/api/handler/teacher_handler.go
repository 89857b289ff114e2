package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/dto"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/service"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/pkg/response"
)

// TeacherHandler serves the teacher registry endpoints.
type TeacherHandler struct {
	teacherSvc service.TeacherService
}

// NewTeacherHandler creates a TeacherHandler.
func NewTeacherHandler(teacherSvc service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherSvc: teacherSvc}
}

// Create registers a teacher.
// POST /api/v1/teachers
func (h *TeacherHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	teacher, err := h.teacherSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}

	response.Created(c, teacher)
}

// Get returns one teacher.
// GET /api/v1/teachers/:id
func (h *TeacherHandler) Get(c *gin.Context) {
	teacher, err := h.teacherSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}

	response.OK(c, teacher)
}

// List returns a page of teachers.
// GET /api/v1/teachers
func (h *TeacherHandler) List(c *gin.Context) {
	var req dto.TeacherListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	teachers, total, err := h.teacherSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, teachers, total, req.GetPage(), req.GetPageSize())
}

// Update edits a teacher.
// PUT /api/v1/teachers/:id
func (h *TeacherHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	teacher, err := h.teacherSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}

	response.OK(c, teacher)
}

// Delete soft-deletes a teacher.
// DELETE /api/v1/teachers/:id
func (h *TeacherHandler) Delete(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.teacherSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		h.handleTeacherError(c, err)
		return
	}

	response.OK(c, nil)
}

// ImportRoster bulk-creates teachers from an uploaded xlsx roster.
// POST /api/v1/teachers/import
func (h *TeacherHandler) ImportRoster(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "roster file is required")
		return
	}

	var facultyID *string
	if v := c.PostForm("faculty_id"); v != "" {
		facultyID = &v
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 27003, "roster file could not be read")
		return
	}
	defer f.Close()

	result, err := h.teacherSvc.ImportRoster(c.Request.Context(), f, facultyID, callerID)
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *TeacherHandler) handleTeacherError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTeacherNotFound):
		response.NotFound(c, 27001, "teacher not found")
	case errors.Is(err, service.ErrRosterImportDisabled):
		response.Forbidden(c, 27002, "roster import is disabled")
	case errors.Is(err, service.ErrRosterUnreadable):
		response.BadRequest(c, 27003, "roster file could not be read")
	case errors.Is(err, service.ErrRosterEmpty):
		response.BadRequest(c, 27004, "roster file has no data rows")
	case errors.Is(err, service.ErrFacultyNotFound):
		response.NotFound(c, 21001, "faculty not found")
	default:
		response.InternalError(c)
	}
}
