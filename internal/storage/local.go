// Package storage implements the file-storage collaborator: blobs go in,
// opaque references come out. Nothing here inspects file contents.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Local stores uploads on the local filesystem under uuid-based names and
// returns URL-path references.
type Local struct {
	dir     string
	baseURL string
}

func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Local{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Save writes the blob and returns its reference. The original file name
// only contributes its extension; the stored name is a fresh uuid.
func (s *Local) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	name := uuid.New().String() + strings.ToLower(filepath.Ext(originalName))
	target := filepath.Join(s.dir, name)

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", target, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	return s.baseURL + "/" + name, nil
}

// Delete removes a stored blob by its reference. References that do not
// belong to this store are rejected.
func (s *Local) Delete(ctx context.Context, ref string) error {
	name := path.Base(ref)
	if !strings.HasPrefix(ref, s.baseURL+"/") || name == "." || name == "/" {
		return fmt.Errorf("unknown reference %q", ref)
	}
	return os.Remove(filepath.Join(s.dir, name))
}

// Dir returns the directory served for downloads.
func (s *Local) Dir() string {
	return s.dir
}
