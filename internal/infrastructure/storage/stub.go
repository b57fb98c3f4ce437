package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	contentapp "github.com/evergreen/backend/internal/application/content"
)

// Ensure StubObjectStorage implements ObjectStorageService
var _ contentapp.ObjectStorageService = (*StubObjectStorage)(nil)

// StubObjectStorage is an in-memory ObjectStorageService for local
// development and tests. Presigned URLs are fabricated and keys are
// tracked so ObjectExists and DeleteObject behave consistently.
type StubObjectStorage struct {
	// BaseURL prefixes every generated URL
	BaseURL string

	mu   sync.Mutex
	keys map[string]bool
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com",
		keys:    make(map[string]bool),
	}
}

// GenerateUploadURL fabricates an upload URL and marks the key as stored,
// since the stub cannot observe the client's PUT
func (s *StubObjectStorage) GenerateUploadURL(
	ctx context.Context,
	storageKey, contentType string,
	expiresIn time.Duration,
) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	s.mu.Lock()
	s.keys[storageKey] = true
	s.mu.Unlock()

	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/upload/" + storageKey, expiresAt, nil
}

// GenerateDownloadURL fabricates a download URL
func (s *StubObjectStorage) GenerateDownloadURL(
	ctx context.Context,
	storageKey string,
	expiresIn time.Duration,
) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/download/" + storageKey, expiresAt, nil
}

// DeleteObject forgets a tracked key
func (s *StubObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	delete(s.keys, storageKey)
	s.mu.Unlock()
	return nil
}

// ObjectExists reports whether the key was uploaded through this stub
func (s *StubObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[storageKey], nil
}

// PublicURL returns the fabricated serving URL for a key
func (s *StubObjectStorage) PublicURL(storageKey string) string {
	return s.BaseURL + "/" + storageKey
}
