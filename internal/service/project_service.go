package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nirbeaver/construction-management/internal/calc"
	"github.com/nirbeaver/construction-management/internal/model"
)

// ProjectRepository is the persistence surface the project service needs.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Project, error)
	ListAll(ctx context.Context) ([]model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProjectService struct {
	repo ProjectRepository
	log  zerolog.Logger
}

func NewProjectService(repo ProjectRepository, log zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, log: log}
}

type ProjectInput struct {
	Name          string
	Description   string
	CustomerName  string
	CompanyName   string
	Address       string
	ContactPhones []string
	ContactEmails []string
	Status        model.ProjectStatus
	Budget        model.Cents
	EstimatedCost model.Cents
	Spent         model.Cents
	StartDate     string
	Duration      int
	DurationType  model.DurationType
	CompletedTasks int
	TotalTasks     int
}

// ProjectView is a project plus its derived task progress.
type ProjectView struct {
	model.Project
	Progress int
}

func (s *ProjectService) Create(ctx context.Context, principal model.Principal, input ProjectInput) (*model.Project, error) {
	if input.Status == "" {
		input.Status = model.ProjectStatusPlanning
	}
	if err := validateProjectInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	project := &model.Project{
		ID:             uuid.New(),
		OwnerID:        principal.UserID,
		Name:           input.Name,
		Description:    input.Description,
		CustomerName:   input.CustomerName,
		CompanyName:    input.CompanyName,
		Address:        input.Address,
		ContactPhones:  input.ContactPhones,
		ContactEmails:  input.ContactEmails,
		Status:         input.Status,
		Budget:         input.Budget,
		EstimatedCost:  input.EstimatedCost,
		Spent:          input.Spent,
		StartDate:      input.StartDate,
		Duration:       input.Duration,
		DurationType:   input.DurationType,
		CompletedTasks: input.CompletedTasks,
		TotalTasks:     input.TotalTasks,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.applyEndDate(project)

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Get(ctx context.Context, principal model.Principal, id uuid.UUID) (*ProjectView, error) {
	project, err := s.load(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	return &ProjectView{
		Project:  *project,
		Progress: calc.ProgressPercent(project.CompletedTasks, project.TotalTasks),
	}, nil
}

func (s *ProjectService) List(ctx context.Context, principal model.Principal) ([]model.Project, error) {
	if principal.IsAdmin() || principal.IsManager() {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByOwner(ctx, principal.UserID)
}

func (s *ProjectService) Update(ctx context.Context, principal model.Principal, id uuid.UUID, input ProjectInput) (*model.Project, error) {
	project, err := s.load(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = project.Status
	}
	if err := validateProjectInput(input); err != nil {
		return nil, err
	}

	project.Name = input.Name
	project.Description = input.Description
	project.CustomerName = input.CustomerName
	project.CompanyName = input.CompanyName
	project.Address = input.Address
	project.ContactPhones = input.ContactPhones
	project.ContactEmails = input.ContactEmails
	project.Status = input.Status
	project.Budget = input.Budget
	project.EstimatedCost = input.EstimatedCost
	project.Spent = input.Spent
	project.StartDate = input.StartDate
	project.Duration = input.Duration
	project.DurationType = input.DurationType
	project.CompletedTasks = input.CompletedTasks
	project.TotalTasks = input.TotalTasks
	project.UpdatedAt = time.Now().UTC()
	s.applyEndDate(project)

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if !principal.CanDelete(project.OwnerID) {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}

// Summary rolls the caller's projects up into the dashboard counters.
func (s *ProjectService) Summary(ctx context.Context, principal model.Principal) (calc.Summary, error) {
	projects, err := s.List(ctx, principal)
	if err != nil {
		return calc.Summary{}, err
	}
	return calc.ProjectFinancialSummary(projects, time.Now().UTC()), nil
}

func (s *ProjectService) load(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !principal.CanAccess(project.OwnerID) {
		return nil, ErrPermissionDenied
	}
	return project, nil
}

// applyEndDate recomputes the derived estimated end date. An unparsable
// start date keeps the raw value, matching the calculator's fallback.
func (s *ProjectService) applyEndDate(project *model.Project) {
	end, err := calc.EndDate(project.StartDate, project.Duration, project.DurationType)
	if err != nil {
		s.log.Warn().Str("project", project.Name).Str("start_date", project.StartDate).
			Msg("start date did not parse, keeping raw value as end date")
	}
	project.EstimatedEndDate = end
}

func validateProjectInput(input ProjectInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(input.ContactPhones) == 0 {
		return fmt.Errorf("%w: at least one contact phone is required", ErrInvalidInput)
	}
	if len(input.ContactEmails) == 0 {
		return fmt.Errorf("%w: at least one contact email is required", ErrInvalidInput)
	}
	if input.Budget < 0 || input.EstimatedCost < 0 || input.Spent < 0 {
		return fmt.Errorf("%w: monetary amounts must not be negative", ErrInvalidInput)
	}
	if input.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if err := validateDurationType(input.DurationType); err != nil {
		return err
	}
	if input.CompletedTasks < 0 || input.TotalTasks < 0 {
		return fmt.Errorf("%w: task counts must not be negative", ErrInvalidInput)
	}
	if input.CompletedTasks > input.TotalTasks {
		return fmt.Errorf("%w: completed tasks exceed total tasks", ErrInvalidInput)
	}
	switch input.Status {
	case model.ProjectStatusPlanning, model.ProjectStatusInProgress, model.ProjectStatusCompleted,
		model.ProjectStatusOnHold, model.ProjectStatusCancelled:
	default:
		return fmt.Errorf("%w: unknown project status %q", ErrInvalidInput, input.Status)
	}
	return nil
}

func validateDurationType(durationType model.DurationType) error {
	switch durationType {
	case model.DurationDays, model.DurationWeeks, model.DurationMonths:
		return nil
	default:
		return fmt.Errorf("%w: unknown duration type %q", ErrInvalidInput, durationType)
	}
}
