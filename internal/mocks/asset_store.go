package mocks

import (
	"context"
	"io"
	"sync"

	"github.com/mealworks/savor-api/internal/domain"
	"github.com/mealworks/savor-api/internal/store"
)

// MockAssetStore implements store.AssetStore for testing. It records
// every upload and removal so tests can assert on asset lifecycle
// interactions.
type MockAssetStore struct {
	mu sync.Mutex

	UploadFn func(ctx context.Context, key, contentType string, size int64, body io.Reader) (*domain.AssetRef, error)
	RemoveFn func(ctx context.Context, key string) error

	// Uploaded collects the keys passed to Upload, in order.
	Uploaded []string

	// Removed collects the keys passed to Remove, in order.
	Removed []string

	UploadError error
	RemoveError error
}

// Ensure MockAssetStore implements store.AssetStore.
var _ store.AssetStore = (*MockAssetStore)(nil)

// NewMockAssetStore creates a mock asset store.
func NewMockAssetStore() *MockAssetStore {
	return &MockAssetStore{}
}

// Upload implements the AssetStore interface.
func (m *MockAssetStore) Upload(
	ctx context.Context,
	key string,
	contentType string,
	size int64,
	body io.Reader,
) (*domain.AssetRef, error) {
	if m.UploadFn != nil {
		return m.UploadFn(ctx, key, contentType, size, body)
	}
	if m.UploadError != nil {
		return nil, m.UploadError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Uploaded = append(m.Uploaded, key)
	return &domain.AssetRef{
		URL: "https://assets.test/" + key,
		Key: key,
	}, nil
}

// Remove implements the AssetStore interface.
func (m *MockAssetStore) Remove(ctx context.Context, key string) error {
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Removed = append(m.Removed, key)
	return m.RemoveError
}
