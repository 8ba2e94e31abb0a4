package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nirbeaver/construction-management/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the financial report as a workbook with a summary sheet,
// a subcontractor sheet and a transaction sheet.
func (g *Generator) Generate(report model.FinancialReport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	if _, err := file.NewSheet("Subcontractors"); err != nil {
		return nil, err
	}
	if err := g.writeSubcontractors(file, "Subcontractors", report); err != nil {
		return nil, err
	}

	if _, err := file.NewSheet("Transactions"); err != nil {
		return nil, err
	}
	if err := g.writeTransactions(file, "Transactions", report); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.FinancialReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Project")
	set("B1", report.Project.Name)
	set("A2", "Customer")
	set("B2", report.Project.CustomerName)
	set("A3", "Status")
	set("B3", string(report.Project.Status))
	set("A4", "Start Date")
	set("B4", report.Project.StartDate)
	set("A5", "Estimated End Date")
	set("B5", report.Project.EstimatedEndDate)
	set("A6", "Progress (%)")
	set("B6", report.Progress)
	set("A7", "Budget")
	set("B7", report.Project.Budget.Dollars())
	set("A8", "Estimated Cost")
	set("B8", report.Project.EstimatedCost.Dollars())
	set("A9", "Spent")
	set("B9", report.Project.Spent.Dollars())
	set("A10", "Total Expenses")
	set("B10", report.TotalExpenses.Dollars())
	set("A11", "Total Income")
	set("B11", report.TotalIncome.Dollars())
	set("A12", "Generated At")
	set("B12", report.GeneratedAt.Format("2006-01-02 15:04"))

	return nil
}

func (g *Generator) writeSubcontractors(file *excelize.File, sheet string, report model.FinancialReport) error {
	headers := []string{
		"Name", "Company", "Role", "Status", "End Date",
		"Contract Amount", "Change Orders", "Payments",
		"Total Contract Value", "Remaining Balance", "Over Budget",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for row, line := range report.Subcontractors {
		values := []interface{}{
			line.Name,
			line.Company,
			line.Role,
			string(line.Status),
			line.EndDate,
			line.ContractAmount.Dollars(),
			line.TotalChangeOrders.Dollars(),
			line.TotalPayments.Dollars(),
			line.TotalContractValue.Dollars(),
			line.RemainingBalance.Dollars(),
			line.IsOverBudget,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Generator) writeTransactions(file *excelize.File, sheet string, report model.FinancialReport) error {
	headers := []string{"Date", "Type", "Category", "Subcategory", "Description", "Status", "Amount"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for row, tx := range report.Transactions {
		values := []interface{}{
			tx.Date,
			string(tx.Type),
			tx.Category,
			tx.Subcategory,
			tx.Description,
			string(tx.Status),
			tx.Amount.Dollars(),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	totalCell := fmt.Sprintf("G%d", len(report.Transactions)+3)
	labelCell := fmt.Sprintf("F%d", len(report.Transactions)+3)
	if err := file.SetCellValue(sheet, labelCell, "Total Expenses"); err != nil {
		return err
	}
	return file.SetCellValue(sheet, totalCell, report.TotalExpenses.Dollars())
}
