package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/service"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/pkg/response"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	icsContentType  = "text/calendar; charset=utf-8"
)

// ExportHandler serves the schedule download endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportXLSX downloads the career's weekly grid as an Excel workbook.
// GET /api/v1/export/xlsx?career_id=xxx&cycle_id=xxx
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	careerID, cycleID, ok := exportParams(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportXLSX(c.Request.Context(), careerID, cycleID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, xlsxContentType, filename, buf.Bytes())
}

// ExportICS downloads the career's sessions as an iCalendar feed.
// GET /api/v1/export/ics?career_id=xxx&cycle_id=xxx
func (h *ExportHandler) ExportICS(c *gin.Context) {
	careerID, cycleID, ok := exportParams(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportICS(c.Request.Context(), careerID, cycleID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, icsContentType, filename, buf.Bytes())
}

func exportParams(c *gin.Context) (careerID, cycleID string, ok bool) {
	careerID = c.Query("career_id")
	cycleID = c.Query("cycle_id")
	if careerID == "" || cycleID == "" {
		response.BadRequest(c, 10001, "career_id and cycle_id are required")
		return "", "", false
	}
	return careerID, cycleID, true
}

func writeDownload(c *gin.Context, contentType, filename string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoSessions):
		response.NotFound(c, 31001, "no sessions placed for this career and cycle")
	case errors.Is(err, service.ErrExportGenerate):
		response.InternalError(c)
	case errors.Is(err, service.ErrCareerNotFound):
		response.NotFound(c, 22001, "career not found")
	case errors.Is(err, service.ErrCycleNotFound):
		response.NotFound(c, 25001, "cycle not found")
	default:
		response.InternalError(c)
	}
}
