package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nirbeaver/construction-management/internal/model"
)

type fakeDocumentRepo struct {
	docs      map[uuid.UUID]model.Document
	createErr error
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[uuid.UUID]model.Document)}
}

func (r *fakeDocumentRepo) Create(_ context.Context, doc *model.Document) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.docs[doc.ID] = *doc
	return nil
}

func (r *fakeDocumentRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Document, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := doc
	return &copied, nil
}

func (r *fakeDocumentRepo) ListByProject(_ context.Context, projectID uuid.UUID) ([]model.Document, error) {
	var result []model.Document
	for _, doc := range r.docs {
		if doc.ProjectID == projectID {
			result = append(result, doc)
		}
	}
	return result, nil
}

func (r *fakeDocumentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.docs, id)
	return nil
}

type fakeFileStore struct {
	saved   map[string][]byte
	counter int
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{saved: make(map[string][]byte)}
}

func (s *fakeFileStore) Save(_ context.Context, _ string, r io.Reader) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.counter++
	ref := fmt.Sprintf("/files/blob-%d", s.counter)
	s.saved[ref] = content
	return ref, nil
}

func (s *fakeFileStore) Delete(_ context.Context, ref string) error {
	if _, ok := s.saved[ref]; !ok {
		return errors.New("no such blob")
	}
	delete(s.saved, ref)
	return nil
}

func documentFixture(t *testing.T) (*DocumentService, *fakeDocumentRepo, *fakeFileStore, model.Principal, uuid.UUID) {
	t.Helper()
	projects := newFakeProjectRepo()
	principal := model.Principal{UserID: "owner", Role: model.RoleUser}
	projectID := uuid.New()
	projects.projects[projectID] = model.Project{ID: projectID, OwnerID: "owner"}

	repo := newFakeDocumentRepo()
	store := newFakeFileStore()
	return NewDocumentService(repo, projects, store, zerolog.Nop()), repo, store, principal, projectID
}

func TestDocumentUpload(t *testing.T) {
	svc, _, store, principal, projectID := documentFixture(t)

	doc, err := svc.Upload(context.Background(), principal, projectID, UploadDocumentInput{
		Name:     "permit.pdf",
		Type:     model.DocumentTypePermit,
		FileType: "application/pdf",
		Size:     4,
		Content:  strings.NewReader("data"),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if doc.URL == "" {
		t.Error("URL not set")
	}
	if string(store.saved[doc.URL]) != "data" {
		t.Errorf("stored content = %q, want data", store.saved[doc.URL])
	}
}

func TestDocumentUploadDefaultsTypeOther(t *testing.T) {
	svc, _, _, principal, projectID := documentFixture(t)

	doc, err := svc.Upload(context.Background(), principal, projectID, UploadDocumentInput{
		Name:    "notes.txt",
		Content: strings.NewReader("x"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if doc.Type != model.DocumentTypeOther {
		t.Errorf("Type = %q, want other", doc.Type)
	}
}

func TestDocumentUploadCleansUpOnInsertFailure(t *testing.T) {
	svc, repo, store, principal, projectID := documentFixture(t)
	repo.createErr = errors.New("insert failed")

	if _, err := svc.Upload(context.Background(), principal, projectID, UploadDocumentInput{
		Name:    "permit.pdf",
		Content: strings.NewReader("data"),
	}); err == nil {
		t.Fatal("expected error")
	}
	if len(store.saved) != 0 {
		t.Errorf("orphaned blobs left behind: %d", len(store.saved))
	}
}

func TestDocumentDeleteRemovesBlob(t *testing.T) {
	svc, _, store, principal, projectID := documentFixture(t)

	doc, err := svc.Upload(context.Background(), principal, projectID, UploadDocumentInput{
		Name:    "contract.pdf",
		Type:    model.DocumentTypeContract,
		Content: strings.NewReader("data"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(context.Background(), principal, doc.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.saved) != 0 {
		t.Errorf("blob not removed, %d left", len(store.saved))
	}
}

func TestDocumentUploadRejectsUnknownType(t *testing.T) {
	svc, _, _, principal, projectID := documentFixture(t)

	if _, err := svc.Upload(context.Background(), principal, projectID, UploadDocumentInput{
		Name:    "a.bin",
		Type:    "hologram",
		Content: strings.NewReader("x"),
	}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
