package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nirbeaver/construction-management/internal/model"
	"github.com/nirbeaver/construction-management/internal/service"
)

type transactionRequest struct {
	Type        string      `json:"type" binding:"required"`
	Amount      model.Cents `json:"amount"`
	Date        string      `json:"date" binding:"required"`
	Category    string      `json:"category"`
	Subcategory string      `json:"subcategory"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	Recurring   bool        `json:"recurring"`
	Frequency   string      `json:"frequency"`
	Attachments []string    `json:"attachments"`
}

func (r transactionRequest) toInput() service.TransactionInput {
	return service.TransactionInput{
		Type:        model.TransactionType(r.Type),
		Amount:      r.Amount,
		Date:        r.Date,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Description: r.Description,
		Status:      model.TransactionStatus(r.Status),
		Recurring:   r.Recurring,
		Frequency:   model.RecurringFrequency(r.Frequency),
		Attachments: r.Attachments,
	}
}

func (h *Handler) createTransaction(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, ok := h.pathID(c)
	if !ok {
		return
	}
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.transactions.Create(c.Request.Context(), principal, projectID, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func (h *Handler) listTransactions(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, ok := h.pathID(c)
	if !ok {
		return
	}
	txs, err := h.transactions.ListByProject(c.Request.Context(), principal, projectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

func (h *Handler) updateTransaction(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.transactions.Update(c.Request.Context(), principal, id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (h *Handler) deleteTransaction(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.transactions.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type officeExpenseRequest struct {
	Date        string      `json:"date" binding:"required"`
	Category    string      `json:"category" binding:"required"`
	Subcategory string      `json:"subcategory"`
	Description string      `json:"description"`
	Amount      model.Cents `json:"amount"`
	Documents   []string    `json:"documents"`
}

func (h *Handler) createOfficeExpense(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var req officeExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.officeExpenses.Create(c.Request.Context(), principal, service.OfficeExpenseInput{
		Date:        req.Date,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Description: req.Description,
		Amount:      req.Amount,
		Documents:   req.Documents,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *Handler) listOfficeExpenses(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	expenses, err := h.officeExpenses.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

func (h *Handler) deleteOfficeExpense(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.officeExpenses.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
