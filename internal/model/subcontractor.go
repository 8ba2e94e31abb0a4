package model

import (
	"time"

	"github.com/google/uuid"
)

type SubcontractorStatus string

const (
	SubcontractorStatusActive    SubcontractorStatus = "active"
	SubcontractorStatusCompleted SubcontractorStatus = "completed"
	SubcontractorStatusPending   SubcontractorStatus = "pending"
)

type ChangeOrderStatus string

const (
	ChangeOrderStatusPending  ChangeOrderStatus = "pending"
	ChangeOrderStatusApproved ChangeOrderStatus = "approved"
	ChangeOrderStatusRejected ChangeOrderStatus = "rejected"
)

type PaymentMethod string

const (
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodZelle        PaymentMethod = "zelle"
	PaymentMethodVenmo        PaymentMethod = "venmo"
)

type Subcontractor struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID      uuid.UUID           `gorm:"type:uuid;index" json:"project_id"`
	Name           string              `json:"name"`
	Company        string              `json:"company"`
	Role           string              `json:"role"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	ContractAmount Cents               `json:"contract_amount"`
	EstimatedCost  Cents               `json:"estimated_cost"`
	ActualCost     Cents               `json:"actual_cost"`
	StartDate      string              `json:"start_date"`
	Duration       int                 `json:"duration"`
	DurationType   DurationType        `json:"duration_type"`
	// EndDate is derived from the schedule fields and extended when a
	// change order with additional days is recorded.
	EndDate      string              `json:"end_date"`
	Progress     int                 `json:"progress"`
	Status       SubcontractorStatus `json:"status"`
	HasContract  bool                `json:"has_contract"`
	ChangeOrders []ChangeOrder       `gorm:"foreignKey:SubcontractorID" json:"change_orders"`
	Payments     []Payment           `gorm:"foreignKey:SubcontractorID" json:"payments"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// ChangeOrder is a signed adjustment to a subcontractor's contract amount
// and schedule. Seq is sequential within the parent and doubles as the
// display order.
type ChangeOrder struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	SubcontractorID uuid.UUID         `gorm:"type:uuid;index" json:"subcontractor_id"`
	Seq             int               `json:"seq"`
	Description     string            `json:"description"`
	Amount          Cents             `json:"amount"`
	Date            string            `json:"date"`
	Status          ChangeOrderStatus `json:"status"`
	Duration        int               `json:"duration"`
	DurationType    DurationType      `json:"duration_type"`
	AdditionalDays  int               `json:"additional_days"`
	Documents       []string          `gorm:"serializer:json" json:"documents"`
	CreatedAt       time.Time         `json:"created_at"`
}

type Payment struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	SubcontractorID uuid.UUID     `gorm:"type:uuid;index" json:"subcontractor_id"`
	Seq             int           `json:"seq"`
	Amount          Cents         `json:"amount"`
	Date            string        `json:"date"`
	Description     string        `json:"description"`
	Method          PaymentMethod `json:"method"`
	BankName        string        `json:"bank_name,omitempty"`
	CheckNumber     string        `json:"check_number,omitempty"`
	CardType        string        `json:"card_type,omitempty"`
	Last4Digits     string        `json:"last4_digits,omitempty"`
	AccountID       string        `json:"account_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}
