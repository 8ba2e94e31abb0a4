package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nirbeaver/construction-management/internal/model"
)

type fakeProjectRepo struct {
	projects map[uuid.UUID]model.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[uuid.UUID]model.Project)}
}

func (r *fakeProjectRepo) Create(_ context.Context, project *model.Project) error {
	r.projects[project.ID] = *project
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Project, error) {
	project, ok := r.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := project
	return &copied, nil
}

func (r *fakeProjectRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Project, error) {
	var result []model.Project
	for _, project := range r.projects {
		if project.OwnerID == ownerID {
			result = append(result, project)
		}
	}
	return result, nil
}

func (r *fakeProjectRepo) ListAll(_ context.Context) ([]model.Project, error) {
	var result []model.Project
	for _, project := range r.projects {
		result = append(result, project)
	}
	return result, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, project *model.Project) error {
	if _, ok := r.projects[project.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.projects[project.ID] = *project
	return nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.projects, id)
	return nil
}

func validProjectInput() ProjectInput {
	return ProjectInput{
		Name:          "Hillside Residence",
		CustomerName:  "J. Smith",
		ContactPhones: []string{"555-0100"},
		ContactEmails: []string{"smith@example.com"},
		Budget:        250_000_00,
		EstimatedCost: 200_000_00,
		StartDate:     "2024-03-01",
		Duration:      6,
		DurationType:  model.DurationMonths,
		TotalTasks:    10,
	}
}

func TestProjectCreateDerivesEndDate(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), zerolog.Nop())
	principal := model.Principal{UserID: "user-1", Role: model.RoleUser}

	project, err := svc.Create(context.Background(), principal, validProjectInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if project.EstimatedEndDate != "2024-09-01" {
		t.Errorf("EstimatedEndDate = %q, want 2024-09-01", project.EstimatedEndDate)
	}
	if project.Status != model.ProjectStatusPlanning {
		t.Errorf("Status = %q, want default Planning", project.Status)
	}
	if project.OwnerID != "user-1" {
		t.Errorf("OwnerID = %q, want user-1", project.OwnerID)
	}
}

func TestProjectCreateKeepsUnparsableStartDate(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), zerolog.Nop())
	principal := model.Principal{UserID: "user-1", Role: model.RoleUser}

	input := validProjectInput()
	input.StartDate = "soon"
	project, err := svc.Create(context.Background(), principal, input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if project.EstimatedEndDate != "soon" {
		t.Errorf("EstimatedEndDate = %q, want fallback to raw input", project.EstimatedEndDate)
	}
}

func TestProjectCreateValidation(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), zerolog.Nop())
	principal := model.Principal{UserID: "user-1", Role: model.RoleUser}

	cases := []struct {
		name   string
		mutate func(*ProjectInput)
	}{
		{"missing name", func(in *ProjectInput) { in.Name = "" }},
		{"no phones", func(in *ProjectInput) { in.ContactPhones = nil }},
		{"no emails", func(in *ProjectInput) { in.ContactEmails = nil }},
		{"negative budget", func(in *ProjectInput) { in.Budget = -1 }},
		{"zero duration", func(in *ProjectInput) { in.Duration = 0 }},
		{"bad duration type", func(in *ProjectInput) { in.DurationType = "fortnights" }},
		{"completed beyond total", func(in *ProjectInput) { in.CompletedTasks = 11 }},
		{"bad status", func(in *ProjectInput) { in.Status = "Paused" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validProjectInput()
			tc.mutate(&input)
			if _, err := svc.Create(context.Background(), principal, input); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestProjectGetComputesProgress(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo, zerolog.Nop())
	principal := model.Principal{UserID: "user-1", Role: model.RoleUser}

	input := validProjectInput()
	input.CompletedTasks = 5
	project, err := svc.Create(context.Background(), principal, input)
	if err != nil {
		t.Fatal(err)
	}

	view, err := svc.Get(context.Background(), principal, project.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if view.Progress != 50 {
		t.Errorf("Progress = %d, want 50", view.Progress)
	}
}

func TestProjectAccessScoping(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo, zerolog.Nop())
	owner := model.Principal{UserID: "owner", Role: model.RoleUser}
	stranger := model.Principal{UserID: "stranger", Role: model.RoleUser}
	manager := model.Principal{UserID: "mgr", Role: model.RoleManager}
	admin := model.Principal{UserID: "root", Role: model.RoleAdmin}

	project, err := svc.Create(context.Background(), owner, validProjectInput())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Get(context.Background(), stranger, project.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("stranger read: expected ErrPermissionDenied, got %v", err)
	}
	if _, err := svc.Get(context.Background(), manager, project.ID); err != nil {
		t.Errorf("manager read should succeed, got %v", err)
	}
	if err := svc.Delete(context.Background(), manager, project.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("manager delete of foreign project: expected ErrPermissionDenied, got %v", err)
	}
	if err := svc.Delete(context.Background(), admin, project.ID); err != nil {
		t.Errorf("admin delete should succeed, got %v", err)
	}
}

func TestProjectGetMissing(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), zerolog.Nop())
	principal := model.Principal{UserID: "user-1", Role: model.RoleUser}

	if _, err := svc.Get(context.Background(), principal, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectSummary(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo, zerolog.Nop())
	principal := model.Principal{UserID: "user-1", Role: model.RoleUser}

	active := validProjectInput()
	active.Status = model.ProjectStatusInProgress
	active.StartDate = "2020-01-01" // long past its schedule
	active.Duration = 1
	active.DurationType = model.DurationWeeks
	if _, err := svc.Create(context.Background(), principal, active); err != nil {
		t.Fatal(err)
	}

	completed := validProjectInput()
	completed.Status = model.ProjectStatusCompleted
	completed.Budget = 50_000_00
	if _, err := svc.Create(context.Background(), principal, completed); err != nil {
		t.Fatal(err)
	}

	summary, err := svc.Summary(context.Background(), principal)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.ActiveCount != 1 || summary.CompletedCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", summary.ActiveCount, summary.CompletedCount)
	}
	if summary.TotalBudget != 300_000_00 {
		t.Errorf("TotalBudget = %d, want 30000000", summary.TotalBudget)
	}
	if summary.DelayedCount != 1 {
		t.Errorf("DelayedCount = %d, want 1", summary.DelayedCount)
	}
}
