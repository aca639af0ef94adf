package storage

import (
	"context"
	"io"
	"sync"
	"time"

	"fieldops/internal/usecase/interfaces"
)

const memoryBaseURL = "memory://files"

// MemoryStore keeps uploads in process. Used by tests and local runs without an object store.
type MemoryStore struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string]memoryObject
}

type memoryObject struct {
	contentType string
	data        []byte
}

var _ interfaces.IFileStore = (*MemoryStore)(nil)

func NewMemoryStore(baseURL string) *MemoryStore {
	if baseURL == "" {
		baseURL = memoryBaseURL
	}
	return &MemoryStore{baseURL: baseURL, objects: map[string]memoryObject{}}
}

func (s *MemoryStore) Put(ctx context.Context, name string, contentType string, body io.Reader, size int64) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	url := joinURL(s.baseURL, objectKey(name, time.Now()))
	s.mu.Lock()
	s.objects[url] = memoryObject{contentType: contentType, data: data}
	s.mu.Unlock()
	return url, nil
}

// Get returns the stored bytes and content type for a URL returned by Put.
func (s *MemoryStore) Get(url string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[url]
	return obj.data, obj.contentType, ok
}
