package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/amowaisusmani/student-management-backend/internal/response"
	"github.com/amowaisusmani/student-management-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ExportHandler serves entity exports as downloadable CSV files.
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export godoc
// GET /api/v1/export/:entity
// Streams the full row set of one entity (students, courses, enrollments,
// attendance, exams, results) as a CSV attachment.
func (h *ExportHandler) Export(c *gin.Context) {
	entity := c.Param("entity")

	// Buffer before writing headers so failures still produce a clean
	// JSON error response.
	var buf bytes.Buffer
	if err := h.exportService.Export(c.Request.Context(), entity, &buf); err != nil {
		if errors.Is(err, service.ErrUnknownEntity) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+entity+`.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
