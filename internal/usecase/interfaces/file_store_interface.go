package interfaces

//go:generate mockgen -source=file_store_interface.go -destination=mocks/file_store_interface_mock.go -package=mock_interfaces

import (
	"context"
	"io"
)

// IFileStore keeps uploaded blobs and returns a URL the clients can fetch them from.
// The URL is stored as-is in attachment metadata.
type IFileStore interface {
	Put(ctx context.Context, name string, contentType string, body io.Reader, size int64) (string, error)
}
