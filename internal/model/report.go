package model

import "time"

// SubcontractorReportLine is one subcontractor row in a financial report,
// with totals already computed by the service layer.
type SubcontractorReportLine struct {
	Name               string
	Company            string
	Role               string
	Status             SubcontractorStatus
	EndDate            string
	ContractAmount     Cents
	TotalChangeOrders  Cents
	TotalPayments      Cents
	TotalContractValue Cents
	RemainingBalance   Cents
	IsOverBudget       bool
}

// FinancialReport is the input to the xlsx and pdf generators.
type FinancialReport struct {
	Project        Project
	Progress       int
	Subcontractors []SubcontractorReportLine
	Transactions   []Transaction
	TotalExpenses  Cents
	TotalIncome    Cents
	GeneratedAt    time.Time
}
