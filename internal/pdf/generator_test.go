package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/nirbeaver/construction-management/internal/model"
)

func TestGenerateProducesPDF(t *testing.T) {
	generator, err := NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	report := model.FinancialReport{
		Project: model.Project{
			Name:             "Hillside Residence",
			CustomerName:     "J. Smith",
			Status:           model.ProjectStatusInProgress,
			StartDate:        "2024-03-01",
			EstimatedEndDate: "2024-09-01",
			Budget:           250_000_00,
			Spent:            75_000_00,
		},
		Progress: 40,
		Subcontractors: []model.SubcontractorReportLine{
			{
				Company:            "ACME LLC",
				Role:               "Plumbing",
				Status:             model.SubcontractorStatusActive,
				EndDate:            "2024-06-01",
				ContractAmount:     100_000_00,
				TotalContractValue: 105_000_00,
				RemainingBalance:   65_000_00,
				IsOverBudget:       true,
			},
		},
		TotalExpenses: 12_000_00,
		TotalIncome:   80_000_00,
		GeneratedAt:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	content, err := generator.Generate(report)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header: %q", content[:min(len(content), 8)])
	}
	if len(content) < 500 {
		t.Errorf("suspiciously small document: %d bytes", len(content))
	}
}

func TestGenerateEmptyReport(t *testing.T) {
	generator, err := NewGenerator()
	if err != nil {
		t.Fatal(err)
	}
	content, err := generator.Generate(model.FinancialReport{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Error("output does not start with %PDF header")
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2024-06-01", "06/01/2024"},
		{"", "-"},
		{"soon", "soon"},
	}
	for _, tc := range cases {
		if got := formatDate(tc.in); got != tc.want {
			t.Errorf("formatDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
