package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nirbeaver/construction-management/internal/model"
)

type OfficeExpenseRepository struct {
	db *gorm.DB
}

func NewOfficeExpenseRepository(db *gorm.DB) *OfficeExpenseRepository {
	return &OfficeExpenseRepository{db: db}
}

func (r *OfficeExpenseRepository) Create(ctx context.Context, expense *model.OfficeExpense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *OfficeExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.OfficeExpense, error) {
	var expense model.OfficeExpense
	if err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *OfficeExpenseRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.OfficeExpense, error) {
	var expenses []model.OfficeExpense
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *OfficeExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.OfficeExpense{}, "id = ?", id).Error
}
