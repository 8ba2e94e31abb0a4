package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nirbeaver/construction-management/internal/calc"
	"github.com/nirbeaver/construction-management/internal/model"
)

// ExcelGenerator renders a financial report as an xlsx workbook.
type ExcelGenerator interface {
	Generate(report model.FinancialReport) ([]byte, error)
}

// PDFGenerator renders a financial report as a pdf document.
type PDFGenerator interface {
	Generate(report model.FinancialReport) ([]byte, error)
}

type ReportService struct {
	projects       ProjectRepository
	subcontractors SubcontractorRepository
	transactions   TransactionRepository
	excel          ExcelGenerator
	pdf            PDFGenerator
}

func NewReportService(
	projects ProjectRepository,
	subcontractors SubcontractorRepository,
	transactions TransactionRepository,
	excel ExcelGenerator,
	pdf PDFGenerator,
) *ReportService {
	return &ReportService{
		projects:       projects,
		subcontractors: subcontractors,
		transactions:   transactions,
		excel:          excel,
		pdf:            pdf,
	}
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func (s *ReportService) Export(ctx context.Context, principal model.Principal, projectID uuid.UUID) (*ExportResult, error) {
	report, err := s.build(ctx, principal, projectID)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*report)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: buildFileName(report.Project, "xlsx"),
		Content:  content,
	}, nil
}

func (s *ReportService) ExportPDF(ctx context.Context, principal model.Principal, projectID uuid.UUID) (*ExportResult, error) {
	report, err := s.build(ctx, principal, projectID)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(*report)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: buildFileName(report.Project, "pdf"),
		Content:  content,
	}, nil
}

func (s *ReportService) build(ctx context.Context, principal model.Principal, projectID uuid.UUID) (*model.FinancialReport, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !principal.CanAccess(project.OwnerID) {
		return nil, ErrPermissionDenied
	}

	subs, err := s.subcontractors.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	txs, err := s.transactions.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	report := &model.FinancialReport{
		Project:      *project,
		Progress:     calc.ProgressPercent(project.CompletedTasks, project.TotalTasks),
		Transactions: txs,
		GeneratedAt:  time.Now().UTC(),
	}

	for _, sub := range subs {
		totals := calc.SubcontractorTotals(sub)
		report.Subcontractors = append(report.Subcontractors, model.SubcontractorReportLine{
			Name:               sub.Name,
			Company:            sub.Company,
			Role:               sub.Role,
			Status:             sub.Status,
			EndDate:            sub.EndDate,
			ContractAmount:     sub.ContractAmount,
			TotalChangeOrders:  totals.TotalChangeOrders,
			TotalPayments:      totals.TotalPayments,
			TotalContractValue: totals.TotalContractValue,
			RemainingBalance:   totals.RemainingBalance,
			IsOverBudget:       totals.IsOverBudget,
		})
	}

	for _, tx := range txs {
		switch tx.Type {
		case model.TransactionTypeExpense:
			report.TotalExpenses += tx.Amount
		case model.TransactionTypeIncome:
			report.TotalIncome += tx.Amount
		}
	}
	return report, nil
}

func buildFileName(project model.Project, ext string) string {
	name := sanitizeFileName(project.Name)
	if name == "" {
		name = project.ID.String()
	}
	return fmt.Sprintf("financial-%s-%s.%s", name, time.Now().UTC().Format("20060102"), ext)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
