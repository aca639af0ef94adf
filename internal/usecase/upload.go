package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

// Upload is a file received from a client, not yet stored.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// storeUploads pushes every file to the store and returns the attachment metadata.
// A failure stops at the first file that could not be stored.
func storeUploads(ctx context.Context, store interfaces.IFileStore, uploader string, files []Upload, at time.Time) ([]entities.Attachment, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if store == nil {
		return nil, fmt.Errorf("file store not configured")
	}
	out := make([]entities.Attachment, 0, len(files))
	for _, f := range files {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			name = "file"
		}
		url, err := store.Put(ctx, name, f.ContentType, f.Body, f.Size)
		if err != nil {
			return nil, fmt.Errorf("store %s: %w", name, err)
		}
		out = append(out, entities.Attachment{
			URL:        url,
			Name:       name,
			Type:       f.ContentType,
			UploadedBy: uploader,
			UploadedAt: at,
		})
	}
	return out, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
