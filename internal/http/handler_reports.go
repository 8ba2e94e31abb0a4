package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

func (h *Handler) exportReport(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, ok := h.pathID(c)
	if !ok {
		return
	}

	result, err := h.reports.Export(c.Request.Context(), principal, projectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, xlsxContentType, result.Content)
}

func (h *Handler) exportReportPDF(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, ok := h.pathID(c)
	if !ok {
		return
	}

	result, err := h.reports.ExportPDF(c.Request.Context(), principal, projectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, pdfContentType, result.Content)
}
