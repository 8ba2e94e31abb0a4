package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nirbeaver/construction-management/internal/model"
	"github.com/nirbeaver/construction-management/internal/service"
)

type subcontractorRequest struct {
	Name           string      `json:"name" binding:"required"`
	Company        string      `json:"company"`
	Role           string      `json:"role"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	ContractAmount model.Cents `json:"contract_amount"`
	EstimatedCost  model.Cents `json:"estimated_cost"`
	StartDate      string      `json:"start_date" binding:"required"`
	Duration       int         `json:"duration" binding:"required"`
	DurationType   string      `json:"duration_type" binding:"required"`
	HasContract    bool        `json:"has_contract"`
}

func (r subcontractorRequest) toInput() service.SubcontractorInput {
	return service.SubcontractorInput{
		Name:           r.Name,
		Company:        r.Company,
		Role:           r.Role,
		Email:          r.Email,
		Phone:          r.Phone,
		ContractAmount: r.ContractAmount,
		EstimatedCost:  r.EstimatedCost,
		StartDate:      r.StartDate,
		Duration:       r.Duration,
		DurationType:   model.DurationType(r.DurationType),
		HasContract:    r.HasContract,
	}
}

func (h *Handler) addSubcontractor(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, ok := h.pathID(c)
	if !ok {
		return
	}
	var req subcontractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.subcontractors.Add(c.Request.Context(), principal, projectID, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *Handler) listSubcontractors(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, ok := h.pathID(c)
	if !ok {
		return
	}
	views, err := h.subcontractors.ListByProject(c.Request.Context(), principal, projectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subcontractors": subcontractorResponses(views)})
}

func (h *Handler) getSubcontractor(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	view, err := h.subcontractors.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, subcontractorResponse(*view))
}

func (h *Handler) updateSubcontractor(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req subcontractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.subcontractors.Update(c.Request.Context(), principal, id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *Handler) deleteSubcontractor(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.subcontractors.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type changeOrderRequest struct {
	Description  string      `json:"description"`
	Amount       model.Cents `json:"amount"`
	Date         string      `json:"date" binding:"required"`
	Duration     int         `json:"duration"`
	DurationType string      `json:"duration_type" binding:"required"`
	Documents    []string    `json:"documents"`
}

func (h *Handler) addChangeOrder(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	subID, ok := h.pathID(c)
	if !ok {
		return
	}
	var req changeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	co, err := h.subcontractors.AddChangeOrder(c.Request.Context(), principal, subID, service.ChangeOrderInput{
		Description:  req.Description,
		Amount:       req.Amount,
		Date:         req.Date,
		Duration:     req.Duration,
		DurationType: model.DurationType(req.DurationType),
		Documents:    req.Documents,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, co)
}

type paymentRequest struct {
	Amount      model.Cents `json:"amount" binding:"required"`
	Date        string      `json:"date" binding:"required"`
	Description string      `json:"description"`
	Method      string      `json:"method" binding:"required"`
	BankName    string      `json:"bank_name"`
	CheckNumber string      `json:"check_number"`
	CardType    string      `json:"card_type"`
	Last4Digits string      `json:"last4_digits"`
	AccountID   string      `json:"account_id"`
}

func (h *Handler) addPayment(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	subID, ok := h.pathID(c)
	if !ok {
		return
	}
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.subcontractors.AddPayment(c.Request.Context(), principal, subID, service.PaymentInput{
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
		Method:      model.PaymentMethod(req.Method),
		BankName:    req.BankName,
		CheckNumber: req.CheckNumber,
		CardType:    req.CardType,
		Last4Digits: req.Last4Digits,
		AccountID:   req.AccountID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

type subcontractorTotalsResponse struct {
	TotalChangeOrders  model.Cents `json:"total_change_orders"`
	TotalPayments      model.Cents `json:"total_payments"`
	TotalContractValue model.Cents `json:"total_contract_value"`
	RemainingBalance   model.Cents `json:"remaining_balance"`
	IsOverBudget       bool        `json:"is_over_budget"`
}

type subcontractorViewResponse struct {
	model.Subcontractor
	Totals subcontractorTotalsResponse `json:"totals"`
}

func subcontractorResponse(view service.SubcontractorView) subcontractorViewResponse {
	return subcontractorViewResponse{
		Subcontractor: view.Subcontractor,
		Totals: subcontractorTotalsResponse{
			TotalChangeOrders:  view.Totals.TotalChangeOrders,
			TotalPayments:      view.Totals.TotalPayments,
			TotalContractValue: view.Totals.TotalContractValue,
			RemainingBalance:   view.Totals.RemainingBalance,
			IsOverBudget:       view.Totals.IsOverBudget,
		},
	}
}

func subcontractorResponses(views []service.SubcontractorView) []subcontractorViewResponse {
	responses := make([]subcontractorViewResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, subcontractorResponse(view))
	}
	return responses
}
