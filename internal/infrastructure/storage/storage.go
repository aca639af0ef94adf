// Package storage keeps uploaded files (attachments, photos, payment proofs) in an object
// store and hands back the URL recorded in attachment metadata.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"fieldops/internal/infrastructure/config"
	"fieldops/internal/usecase/interfaces"
)

// Open selects the file store driver: minio, s3 or memory.
func Open(ctx context.Context, cfg config.FileStoreConfig) (interfaces.IFileStore, error) {
	switch cfg.Driver {
	case config.FileStoreMinIO:
		return NewMinIOStore(ctx, cfg)
	case config.FileStoreS3:
		return NewS3Store(ctx, cfg)
	case config.FileStoreMemory, "":
		return NewMemoryStore(cfg.PublicURL), nil
	default:
		return nil, fmt.Errorf("unknown file store driver %s", cfg.Driver)
	}
}

// objectKey files uploads under a date prefix with a unique id so equal names never clash.
func objectKey(name string, at time.Time) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "file"
	}
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, base)
	return fmt.Sprintf("%s/%s_%s", at.UTC().Format("2006/01/02"), uuid.NewString()[:8], base)
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
