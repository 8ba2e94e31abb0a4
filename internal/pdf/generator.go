package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nirbeaver/construction-management/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() (*Generator, error) {
	return &Generator{fontName: "Helvetica"}, nil
}

// Generate renders the financial report as a single landscape A4 document.
func (g *Generator) Generate(report model.FinancialReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Project Financial Report", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, report.Project.Name, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", report.GeneratedAt.Format("2006-01-02")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	g.addProjectBlock(pdf, report)
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Subcontractors", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 9)

	headers := []string{"Company", "Role", "Status", "End Date", "Contract", "Change Orders", "Payments", "Contract Value", "Remaining"}
	widths := []float64{45, 30, 20, 24, 28, 28, 28, 32, 32}
	drawTableRow(pdf, g.fontName, headers, widths, true)
	for _, line := range report.Subcontractors {
		row := []string{
			line.Company,
			line.Role,
			string(line.Status),
			formatDate(line.EndDate),
			formatAmount(line.ContractAmount),
			formatAmount(line.TotalChangeOrders),
			formatAmount(line.TotalPayments),
			formatAmount(line.TotalContractValue),
			formatAmount(line.RemainingBalance),
		}
		drawTableRow(pdf, g.fontName, row, widths, false)
		if line.IsOverBudget {
			pdf.SetTextColor(200, 0, 0)
			pdf.MultiCell(0, 5, fmt.Sprintf("Warning: %s exceeds the estimated cost.", line.Company), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		}
	}

	pdf.Ln(4)
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Totals", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total expenses: $%s", formatAmount(report.TotalExpenses)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total income: $%s", formatAmount(report.TotalIncome)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Spent to date: $%s of $%s budget", formatAmount(report.Project.Spent), formatAmount(report.Project.Budget)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) addProjectBlock(pdf *gofpdf.Fpdf, report model.FinancialReport) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, "Project", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	lines := []string{
		fmt.Sprintf("Customer: %s", safeValue(report.Project.CustomerName)),
		fmt.Sprintf("Address: %s", safeValue(report.Project.Address)),
		fmt.Sprintf("Status: %s", string(report.Project.Status)),
		fmt.Sprintf("Schedule: %s to %s", formatDate(report.Project.StartDate), formatDate(report.Project.EstimatedEndDate)),
		fmt.Sprintf("Progress: %d%%", report.Progress),
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 9)
	for i, col := range cols {
		align := "L"
		if i > 3 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatAmount(value model.Cents) string {
	return fmt.Sprintf("%.2f", value.Dollars())
}

func formatDate(raw string) string {
	if raw == "" {
		return "-"
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed.Format("01/02/2006")
	}
	return raw
}
