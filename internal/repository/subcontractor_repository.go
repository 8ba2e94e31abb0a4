package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nirbeaver/construction-management/internal/model"
)

type SubcontractorRepository struct {
	db *gorm.DB
}

func NewSubcontractorRepository(db *gorm.DB) *SubcontractorRepository {
	return &SubcontractorRepository{db: db}
}

func (r *SubcontractorRepository) Create(ctx context.Context, sub *model.Subcontractor) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

// GetByID loads the subcontractor with change orders and payments in
// insertion order.
func (r *SubcontractorRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Subcontractor, error) {
	var sub model.Subcontractor
	err := r.db.WithContext(ctx).
		Preload("ChangeOrders", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		First(&sub, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubcontractorRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Subcontractor, error) {
	var subs []model.Subcontractor
	err := r.db.WithContext(ctx).
		Preload("ChangeOrders", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&subs).Error
	return subs, err
}

func (r *SubcontractorRepository) Update(ctx context.Context, sub *model.Subcontractor) error {
	return r.db.WithContext(ctx).Omit("ChangeOrders", "Payments").Save(sub).Error
}

func (r *SubcontractorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Subcontractor{}, "id = ?", id).Error
}

func (r *SubcontractorRepository) AddChangeOrder(ctx context.Context, co *model.ChangeOrder) error {
	return r.db.WithContext(ctx).Create(co).Error
}

func (r *SubcontractorRepository) AddPayment(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}
