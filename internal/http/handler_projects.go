package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nirbeaver/construction-management/internal/model"
	"github.com/nirbeaver/construction-management/internal/service"
)

type projectRequest struct {
	Name           string      `json:"name" binding:"required"`
	Description    string      `json:"description"`
	CustomerName   string      `json:"customer_name"`
	CompanyName    string      `json:"company_name"`
	Address        string      `json:"address"`
	ContactPhones  []string    `json:"contact_phones" binding:"required"`
	ContactEmails  []string    `json:"contact_emails" binding:"required"`
	Status         string      `json:"status"`
	Budget         model.Cents `json:"budget"`
	EstimatedCost  model.Cents `json:"estimated_cost"`
	Spent          model.Cents `json:"spent"`
	StartDate      string      `json:"start_date" binding:"required"`
	Duration       int         `json:"duration" binding:"required"`
	DurationType   string      `json:"duration_type" binding:"required"`
	CompletedTasks int         `json:"completed_tasks"`
	TotalTasks     int         `json:"total_tasks"`
}

func (r projectRequest) toInput() service.ProjectInput {
	return service.ProjectInput{
		Name:           r.Name,
		Description:    r.Description,
		CustomerName:   r.CustomerName,
		CompanyName:    r.CompanyName,
		Address:        r.Address,
		ContactPhones:  r.ContactPhones,
		ContactEmails:  r.ContactEmails,
		Status:         model.ProjectStatus(r.Status),
		Budget:         r.Budget,
		EstimatedCost:  r.EstimatedCost,
		Spent:          r.Spent,
		StartDate:      r.StartDate,
		Duration:       r.Duration,
		DurationType:   model.DurationType(r.DurationType),
		CompletedTasks: r.CompletedTasks,
		TotalTasks:     r.TotalTasks,
	}
}

func (h *Handler) createProject(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projects.Create(c.Request.Context(), principal, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *Handler) listProjects(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projects, err := h.projects.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *Handler) getProject(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	view, err := h.projects.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": view.Project, "progress": view.Progress})
}

func (h *Handler) updateProject(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projects.Update(c.Request.Context(), principal, id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) deleteProject(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.projects.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) projectSummary(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	summary, err := h.projects.Summary(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"active_count":    summary.ActiveCount,
		"completed_count": summary.CompletedCount,
		"total_budget":    summary.TotalBudget,
		"delayed_count":   summary.DelayedCount,
	})
}
