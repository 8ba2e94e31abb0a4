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

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Transaction, error)
	Update(ctx context.Context, tx *model.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TransactionService struct {
	repo     TransactionRepository
	projects ProjectRepository
	log      zerolog.Logger
}

func NewTransactionService(repo TransactionRepository, projects ProjectRepository, log zerolog.Logger) *TransactionService {
	return &TransactionService{repo: repo, projects: projects, log: log}
}

type TransactionInput struct {
	Type        model.TransactionType
	Amount      model.Cents
	Date        string
	Category    string
	Subcategory string
	Description string
	Status      model.TransactionStatus
	Recurring   bool
	Frequency   model.RecurringFrequency
	Attachments []string
}

func (s *TransactionService) Create(ctx context.Context, principal model.Principal, projectID uuid.UUID, input TransactionInput) (*model.Transaction, error) {
	project, err := s.loadProject(ctx, principal, projectID)
	if err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = model.TransactionStatusPending
	}
	if err := validateTransactionInput(input); err != nil {
		return nil, err
	}

	// classification failures never block creation
	if !calc.ClassifyTransaction(input.Category, input.Subcategory, calc.ProjectCategories) {
		s.log.Warn().Str("category", input.Category).Str("subcategory", input.Subcategory).
			Msg("transaction category did not classify")
	}

	now := time.Now().UTC()
	tx := &model.Transaction{
		ID:          uuid.New(),
		ProjectID:   projectID,
		OwnerID:     principal.UserID,
		Type:        input.Type,
		Amount:      input.Amount,
		Date:        input.Date,
		Category:    input.Category,
		Subcategory: input.Subcategory,
		Description: input.Description,
		Status:      input.Status,
		Recurring:   input.Recurring,
		Frequency:   input.Frequency,
		Attachments: input.Attachments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, err
	}

	// spent accumulates expenses; it is never decremented, even when a
	// transaction is later deleted
	if tx.Type == model.TransactionTypeExpense {
		project.Spent += tx.Amount
		project.UpdatedAt = now
		if err := s.projects.Update(ctx, project); err != nil {
			return nil, err
		}
	}
	return tx, nil
}

func (s *TransactionService) ListByProject(ctx context.Context, principal model.Principal, projectID uuid.UUID) ([]model.Transaction, error) {
	if _, err := s.loadProject(ctx, principal, projectID); err != nil {
		return nil, err
	}
	return s.repo.ListByProject(ctx, projectID)
}

func (s *TransactionService) Update(ctx context.Context, principal model.Principal, id uuid.UUID, input TransactionInput) (*model.Transaction, error) {
	tx, err := s.load(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = tx.Status
	}
	if err := validateTransactionInput(input); err != nil {
		return nil, err
	}
	if !calc.ClassifyTransaction(input.Category, input.Subcategory, calc.ProjectCategories) {
		s.log.Warn().Str("category", input.Category).Str("subcategory", input.Subcategory).
			Msg("transaction category did not classify")
	}

	tx.Type = input.Type
	tx.Amount = input.Amount
	tx.Date = input.Date
	tx.Category = input.Category
	tx.Subcategory = input.Subcategory
	tx.Description = input.Description
	tx.Status = input.Status
	tx.Recurring = input.Recurring
	tx.Frequency = input.Frequency
	tx.Attachments = input.Attachments
	tx.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *TransactionService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	tx, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if !principal.CanDelete(tx.OwnerID) {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}

func (s *TransactionService) load(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Transaction, error) {
	tx, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !principal.CanAccess(tx.OwnerID) {
		return nil, ErrPermissionDenied
	}
	return tx, nil
}

func (s *TransactionService) loadProject(ctx context.Context, principal model.Principal, projectID uuid.UUID) (*model.Project, error) {
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
	return project, nil
}

func validateTransactionInput(input TransactionInput) error {
	switch input.Type {
	case model.TransactionTypeExpense, model.TransactionTypeIncome,
		model.TransactionTypeInvoice, model.TransactionTypePayment:
	default:
		return fmt.Errorf("%w: unknown transaction type %q", ErrInvalidInput, input.Type)
	}
	if input.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	switch input.Status {
	case model.TransactionStatusPending, model.TransactionStatusCompleted, model.TransactionStatusCancelled:
	default:
		return fmt.Errorf("%w: unknown transaction status %q", ErrInvalidInput, input.Status)
	}
	if input.Recurring {
		switch input.Frequency {
		case model.RecurringMonthly, model.RecurringQuarterly, model.RecurringAnnually:
		default:
			return fmt.Errorf("%w: recurring transactions require a frequency", ErrInvalidInput)
		}
	}
	return nil
}
