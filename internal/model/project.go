package model

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "Planning"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
	ProjectStatusOnHold     ProjectStatus = "On Hold"
	ProjectStatusCancelled  ProjectStatus = "Cancelled"
)

type DurationType string

const (
	DurationDays   DurationType = "days"
	DurationWeeks  DurationType = "weeks"
	DurationMonths DurationType = "months"
)

type Project struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID       string        `gorm:"index" json:"owner_id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	CustomerName  string        `json:"customer_name"`
	CompanyName   string        `json:"company_name"`
	Address       string        `json:"address"`
	ContactPhones []string      `gorm:"serializer:json" json:"contact_phones"`
	ContactEmails []string      `gorm:"serializer:json" json:"contact_emails"`
	Status        ProjectStatus `json:"status"`
	Budget        Cents         `json:"budget"`
	EstimatedCost Cents         `json:"estimated_cost"`
	Spent         Cents         `json:"spent"`
	StartDate     string        `json:"start_date"`
	Duration      int           `json:"duration"`
	DurationType  DurationType  `json:"duration_type"`
	// EstimatedEndDate is derived from StartDate, Duration and DurationType.
	// It is recomputed on every create and update, never set by clients.
	EstimatedEndDate string    `json:"estimated_end_date"`
	CompletedTasks   int       `json:"completed_tasks"`
	TotalTasks       int       `json:"total_tasks"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
