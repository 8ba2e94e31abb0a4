package calc

import (
	"math"
	"time"

	"github.com/nirbeaver/construction-management/internal/model"
)

// ProgressPercent returns the task completion percentage, rounded to the
// nearest integer. A zero total is treated as a denominator of 1, so zero
// completed tasks always report 0. Inputs where completed exceeds total are
// not clamped; keeping completed <= total is the caller's job.
func ProgressPercent(completedTasks, totalTasks int) int {
	if totalTasks == 0 {
		totalTasks = 1
	}
	return int(math.Round(float64(completedTasks) / float64(totalTasks) * 100))
}

// Totals are the derived financials of a single subcontractor.
type Totals struct {
	TotalChangeOrders  model.Cents
	TotalPayments      model.Cents
	TotalContractValue model.Cents
	RemainingBalance   model.Cents
	IsOverBudget       bool
}

// SubcontractorTotals sums change orders and payments into contract totals.
// Change orders count regardless of approval status, so a rejected change
// order still moves the contract value; this mirrors how the totals have
// always been reported.
func SubcontractorTotals(sub model.Subcontractor) Totals {
	var totals Totals
	for _, co := range sub.ChangeOrders {
		totals.TotalChangeOrders += co.Amount
	}
	for _, p := range sub.Payments {
		totals.TotalPayments += p.Amount
	}
	totals.TotalContractValue = sub.ContractAmount + totals.TotalChangeOrders
	totals.RemainingBalance = totals.TotalContractValue - totals.TotalPayments
	totals.IsOverBudget = totals.TotalContractValue > sub.EstimatedCost
	return totals
}

// Summary is the dashboard roll-up across a set of projects.
type Summary struct {
	ActiveCount    int
	CompletedCount int
	TotalBudget    model.Cents
	DelayedCount   int
}

// ProjectFinancialSummary counts active, completed and delayed projects and
// sums their budgets. A project is delayed when its estimated end date is
// before now and it is not completed; projects whose end date does not
// parse are never counted as delayed.
func ProjectFinancialSummary(projects []model.Project, now time.Time) Summary {
	var summary Summary
	for _, p := range projects {
		switch p.Status {
		case model.ProjectStatusInProgress:
			summary.ActiveCount++
		case model.ProjectStatusCompleted:
			summary.CompletedCount++
		}
		summary.TotalBudget += p.Budget

		if p.Status == model.ProjectStatusCompleted {
			continue
		}
		end, err := time.Parse(dateLayout, p.EstimatedEndDate)
		if err != nil {
			continue
		}
		if end.Before(now) {
			summary.DelayedCount++
		}
	}
	return summary
}
