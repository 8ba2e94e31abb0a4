package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nirbeaver/construction-management/internal/http/middleware"
	"github.com/nirbeaver/construction-management/internal/model"
	"github.com/nirbeaver/construction-management/internal/service"
)

type Handler struct {
	projects       *service.ProjectService
	subcontractors *service.SubcontractorService
	transactions   *service.TransactionService
	officeExpenses *service.OfficeExpenseService
	documents      *service.DocumentService
	reports        *service.ReportService
	log            zerolog.Logger
}

func NewHandler(
	projects *service.ProjectService,
	subcontractors *service.SubcontractorService,
	transactions *service.TransactionService,
	officeExpenses *service.OfficeExpenseService,
	documents *service.DocumentService,
	reports *service.ReportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		projects:       projects,
		subcontractors: subcontractors,
		transactions:   transactions,
		officeExpenses: officeExpenses,
		documents:      documents,
		reports:        reports,
		log:            log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.POST("/projects", h.createProject)
	protected.GET("/projects", h.listProjects)
	protected.GET("/projects/summary", h.projectSummary)
	protected.GET("/projects/:id", h.getProject)
	protected.PUT("/projects/:id", h.updateProject)
	protected.DELETE("/projects/:id", h.deleteProject)

	protected.POST("/projects/:id/subcontractors", h.addSubcontractor)
	protected.GET("/projects/:id/subcontractors", h.listSubcontractors)
	protected.GET("/subcontractors/:id", h.getSubcontractor)
	protected.PUT("/subcontractors/:id", h.updateSubcontractor)
	protected.DELETE("/subcontractors/:id", h.deleteSubcontractor)
	protected.POST("/subcontractors/:id/change-orders", h.addChangeOrder)
	protected.POST("/subcontractors/:id/payments", h.addPayment)

	protected.POST("/projects/:id/transactions", h.createTransaction)
	protected.GET("/projects/:id/transactions", h.listTransactions)
	protected.PUT("/transactions/:id", h.updateTransaction)
	protected.DELETE("/transactions/:id", h.deleteTransaction)

	protected.POST("/office-expenses", h.createOfficeExpense)
	protected.GET("/office-expenses", h.listOfficeExpenses)
	protected.DELETE("/office-expenses/:id", h.deleteOfficeExpense)

	protected.POST("/projects/:id/documents", h.uploadDocument)
	protected.GET("/projects/:id/documents", h.listDocuments)
	protected.DELETE("/documents/:id", h.deleteDocument)

	protected.POST("/projects/:id/reports/export", h.exportReport)
	protected.POST("/projects/:id/reports/export/pdf", h.exportReportPDF)
}

func (h *Handler) principal(c *gin.Context) (model.Principal, bool) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
	}
	return principal, ok
}

func (h *Handler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
