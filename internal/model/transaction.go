package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeInvoice TransactionType = "invoice"
	TransactionTypePayment TransactionType = "payment"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

type RecurringFrequency string

const (
	RecurringMonthly   RecurringFrequency = "monthly"
	RecurringQuarterly RecurringFrequency = "quarterly"
	RecurringAnnually  RecurringFrequency = "annually"
)

type Transaction struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID   uuid.UUID          `gorm:"type:uuid;index" json:"project_id"`
	OwnerID     string             `gorm:"index" json:"owner_id"`
	Type        TransactionType    `json:"type"`
	Amount      Cents              `json:"amount"`
	Date        string             `json:"date"`
	Category    string             `json:"category"`
	Subcategory string             `json:"subcategory"`
	Description string             `json:"description"`
	Status      TransactionStatus  `json:"status"`
	Recurring   bool               `json:"recurring"`
	Frequency   RecurringFrequency `json:"frequency,omitempty"`
	Attachments []string           `gorm:"serializer:json" json:"attachments"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// OfficeExpense is a company-level expense tracked outside any project,
// classified against the office taxonomy.
type OfficeExpense struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     string    `gorm:"index" json:"owner_id"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Description string    `json:"description"`
	Amount      Cents     `json:"amount"`
	Documents   []string  `gorm:"serializer:json" json:"documents"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
