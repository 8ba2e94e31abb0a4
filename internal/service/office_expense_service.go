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

type OfficeExpenseRepository interface {
	Create(ctx context.Context, expense *model.OfficeExpense) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.OfficeExpense, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.OfficeExpense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OfficeExpenseService tracks company-level expenses against the office
// taxonomy, outside any project.
type OfficeExpenseService struct {
	repo OfficeExpenseRepository
	log  zerolog.Logger
}

func NewOfficeExpenseService(repo OfficeExpenseRepository, log zerolog.Logger) *OfficeExpenseService {
	return &OfficeExpenseService{repo: repo, log: log}
}

type OfficeExpenseInput struct {
	Date        string
	Category    string
	Subcategory string
	Description string
	Amount      model.Cents
	Documents   []string
}

func (s *OfficeExpenseService) Create(ctx context.Context, principal model.Principal, input OfficeExpenseInput) (*model.OfficeExpense, error) {
	if input.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	if !calc.ClassifyTransaction(input.Category, input.Subcategory, calc.OfficeCategories) {
		s.log.Warn().Str("category", input.Category).Str("subcategory", input.Subcategory).
			Msg("office expense category did not classify")
	}

	now := time.Now().UTC()
	expense := &model.OfficeExpense{
		ID:          uuid.New(),
		OwnerID:     principal.UserID,
		Date:        input.Date,
		Category:    input.Category,
		Subcategory: input.Subcategory,
		Description: input.Description,
		Amount:      input.Amount,
		Documents:   input.Documents,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *OfficeExpenseService) List(ctx context.Context, principal model.Principal) ([]model.OfficeExpense, error) {
	return s.repo.ListByOwner(ctx, principal.UserID)
}

func (s *OfficeExpenseService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if !principal.CanDelete(expense.OwnerID) {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}
