package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"fieldops/internal/infrastructure/config"
)

func TestObjectKey(t *testing.T) {
	at := time.Date(2025, 5, 14, 9, 0, 0, 0, time.UTC)
	cases := map[string]string{
		"boleta.pdf":          "_boleta.pdf",
		"../../etc/passwd":    "_passwd",
		`C:\fotos\obra 1.jpg`: "_obra_1.jpg",
		"":                    "_file",
		"factura (1) #2.png":  "_factura__1___2.png",
	}
	for name, suffix := range cases {
		t.Run(name, func(t *testing.T) {
			key := objectKey(name, at)
			if !strings.HasPrefix(key, "2025/05/14/") {
				t.Fatalf("expected date prefix, got %s", key)
			}
			if !strings.HasSuffix(key, suffix) {
				t.Fatalf("expected suffix %s, got %s", suffix, key)
			}
		})
	}
}

func TestMemoryStore_PutAndGet(t *testing.T) {
	s := NewMemoryStore("")
	url, err := s.Put(context.Background(), "recibo.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(url, memoryBaseURL+"/") {
		t.Fatalf("unexpected url %s", url)
	}
	data, contentType, ok := s.Get(url)
	if !ok || string(data) != "jpeg-bytes" || contentType != "image/jpeg" {
		t.Fatalf("unexpected object %q %q %v", data, contentType, ok)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), config.FileStoreConfig{Driver: "gcs"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestS3BaseURL(t *testing.T) {
	if got := s3BaseURL(config.FileStoreConfig{Bucket: "b"}, "sa-east-1"); got != "https://b.s3.sa-east-1.amazonaws.com" {
		t.Fatalf("unexpected url %s", got)
	}
	if got := s3BaseURL(config.FileStoreConfig{Bucket: "b", Endpoint: "http://minio:9000/"}, "x"); got != "http://minio:9000/b" {
		t.Fatalf("unexpected url %s", got)
	}
	if got := s3BaseURL(config.FileStoreConfig{Bucket: "b", PublicURL: "https://cdn.test"}, "x"); got != "https://cdn.test" {
		t.Fatalf("unexpected url %s", got)
	}
}
