package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"fieldops/internal/infrastructure/config"
	"fieldops/internal/usecase/interfaces"
)

type MinIOStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

var _ interfaces.IFileStore = (*MinIOStore)(nil)

// NewMinIOStore connects to MinIO and creates the bucket when it does not exist yet.
func NewMinIOStore(ctx context.Context, cfg config.FileStoreConfig) (*MinIOStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Infof("[storage] bucket %s created", cfg.Bucket)
	}

	baseURL := cfg.PublicURL
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}
	return &MinIOStore{client: client, bucket: cfg.Bucket, baseURL: baseURL}, nil
}

func (s *MinIOStore) Put(ctx context.Context, name string, contentType string, body io.Reader, size int64) (string, error) {
	key := objectKey(name, time.Now())
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if _, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	log.WithFields(log.Fields{"bucket": s.bucket, "key": key}).Info("[storage] file uploaded")
	return joinURL(s.baseURL, key), nil
}
