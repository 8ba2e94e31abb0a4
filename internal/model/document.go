package model

import (
	"time"

	"github.com/google/uuid"
)

type DocumentType string

const (
	DocumentTypeBlueprint DocumentType = "blueprint"
	DocumentTypePermit    DocumentType = "permit"
	DocumentTypeContract  DocumentType = "contract"
	DocumentTypeInvoice   DocumentType = "invoice"
	DocumentTypeReport    DocumentType = "report"
	DocumentTypeOther     DocumentType = "other"
)

// Document is metadata for an uploaded file. URL is an opaque reference
// issued by the file-storage collaborator; file contents are never parsed.
type Document struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID    `gorm:"type:uuid;index" json:"project_id"`
	OwnerID   string       `gorm:"index" json:"owner_id"`
	Name      string       `json:"name"`
	Type      DocumentType `json:"type"`
	Category  string       `json:"category"`
	URL       string       `json:"url"`
	FileType  string       `json:"file_type"`
	Size      int64        `json:"size"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
