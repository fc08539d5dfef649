// Package upload turns multipart file parts into stored attachments. All
// three resources share the same policy: allow-listed content types, a 5 MiB
// per-file cap, and a per-endpoint file count cap.
package upload

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"campushelp/internal/storage"
	"campushelp/internal/utils"
	"campushelp/pkg/types"
)

// MaxFileSize is the per-file size cap in bytes.
const MaxFileSize = 5 << 20

const filenameIDSize = 16

var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
	"text/plain":      true,
}

type Ingestor struct {
	store storage.AttachmentStore
}

func NewIngestor(store storage.AttachmentStore) *Ingestor {
	return &Ingestor{store: store}
}

// Ingest validates every file uploaded under field and persists each one
// under a generated filename. A single failing part aborts the whole request;
// files already written for earlier parts are left behind.
func (i *Ingestor) Ingest(ctx context.Context, form *multipart.Form, field string, maxFiles int) ([]types.Attachment, error) {

	attachments := make([]types.Attachment, 0)
	if form == nil {
		return attachments, nil
	}

	files := form.File[field]
	if len(files) == 0 {
		return attachments, nil
	}
	if len(files) > maxFiles {
		return nil, types.UploadError(fmt.Sprintf("too many files: at most %d allowed", maxFiles))
	}

	for _, header := range files {
		attachment, err := i.ingestOne(ctx, header)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, *attachment)
	}

	return attachments, nil
}

func (i *Ingestor) ingestOne(ctx context.Context, header *multipart.FileHeader) (*types.Attachment, error) {

	if header.Size > MaxFileSize {
		return nil, types.UploadError(fmt.Sprintf("file %q exceeds the %d byte limit", header.Filename, MaxFileSize))
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedContentTypes[contentType] {
		return nil, types.UploadError(fmt.Sprintf("file type %q is not allowed", contentType))
	}

	src, err := header.Open()
	if err != nil {
		return nil, utils.WrapErrorf(err, "failed to open uploaded file %q", header.Filename)
	}
	defer src.Close()

	filename := utils.NanoIDSize(filenameIDSize) + filepath.Ext(header.Filename)

	url, err := i.store.Save(ctx, filename, contentType, src)
	if err != nil {
		return nil, utils.WrapErrorf(err, "failed to store uploaded file %q", header.Filename)
	}

	return &types.Attachment{
		Name: header.Filename,
		URL:  url,
		Type: contentType,
	}, nil
}
