package storage

import (
	"context"
	"io"
)

// AttachmentStore persists uploaded file bodies and resolves the public URL
// a document should reference. Documents only ever hold the URL.
type AttachmentStore interface {
	// Save writes the body under filename and returns the public URL.
	Save(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, filename string) error
}
