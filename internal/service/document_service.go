package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nirbeaver/construction-management/internal/model"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *model.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Document, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FileStore is the file-storage collaborator. References are opaque to the
// service.
type FileStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	Delete(ctx context.Context, ref string) error
}

type DocumentService struct {
	repo     DocumentRepository
	projects ProjectRepository
	store    FileStore
	log      zerolog.Logger
}

func NewDocumentService(repo DocumentRepository, projects ProjectRepository, store FileStore, log zerolog.Logger) *DocumentService {
	return &DocumentService{repo: repo, projects: projects, store: store, log: log}
}

type UploadDocumentInput struct {
	Name     string
	Type     model.DocumentType
	Category string
	FileType string
	Size     int64
	Content  io.Reader
}

func (s *DocumentService) Upload(ctx context.Context, principal model.Principal, projectID uuid.UUID, input UploadDocumentInput) (*model.Document, error) {
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
	if input.Name == "" {
		return nil, fmt.Errorf("%w: document name is required", ErrInvalidInput)
	}
	switch input.Type {
	case model.DocumentTypeBlueprint, model.DocumentTypePermit, model.DocumentTypeContract,
		model.DocumentTypeInvoice, model.DocumentTypeReport, model.DocumentTypeOther:
	case "":
		input.Type = model.DocumentTypeOther
	default:
		return nil, fmt.Errorf("%w: unknown document type %q", ErrInvalidInput, input.Type)
	}

	ref, err := s.store.Save(ctx, input.Name, input.Content)
	if err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	now := time.Now().UTC()
	doc := &model.Document{
		ID:        uuid.New(),
		ProjectID: projectID,
		OwnerID:   principal.UserID,
		Name:      input.Name,
		Type:      input.Type,
		Category:  input.Category,
		URL:       ref,
		FileType:  input.FileType,
		Size:      input.Size,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		if removeErr := s.store.Delete(ctx, ref); removeErr != nil {
			s.log.Error().Err(removeErr).Str("ref", ref).Msg("orphaned upload could not be removed")
		}
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) ListByProject(ctx context.Context, principal model.Principal, projectID uuid.UUID) ([]model.Document, error) {
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
	return s.repo.ListByProject(ctx, projectID)
}

func (s *DocumentService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if !principal.CanDelete(doc.OwnerID) {
		return ErrPermissionDenied
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, doc.URL); err != nil {
		// metadata is gone; losing the blob is logged, not fatal
		s.log.Error().Err(err).Str("ref", doc.URL).Msg("stored file could not be removed")
	}
	return nil
}
