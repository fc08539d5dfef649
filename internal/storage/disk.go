package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const publicUploadPath = "/uploads"

// DiskStore writes attachments to a local directory. The server exposes the
// same directory read-only under /uploads.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory %s: %w", dir, err)
	}

	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Save(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	var _ = ctx

	// Generated filenames only; never trust a caller-supplied path.
	path := filepath.Join(s.dir, filepath.Base(filename))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create attachment file: %w", err)
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write attachment file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close attachment file: %w", err)
	}

	return publicUploadPath + "/" + filepath.Base(filename), nil
}

func (s *DiskStore) Delete(ctx context.Context, filename string) error {
	var _ = ctx

	err := os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete attachment file: %w", err)
	}

	return nil
}
