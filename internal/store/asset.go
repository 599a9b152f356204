package store

import (
	"context"
	"io"

	"github.com/mealworks/savor-api/internal/domain"
)

// AssetStore defines the interface to the external object store that
// holds uploaded images. Upload must complete before the owning entity
// is persisted; Remove is best-effort on update and delete paths.
type AssetStore interface {
	// Upload stores the object under the given key and returns the
	// durable reference (URL plus deletion handle).
	Upload(
		ctx context.Context,
		key string,
		contentType string,
		size int64,
		body io.Reader,
	) (*domain.AssetRef, error)

	// Remove deletes the object identified by the deletion handle.
	Remove(ctx context.Context, key string) error
}
