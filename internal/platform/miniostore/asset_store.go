// Package miniostore implements the asset store on top of MinIO.
package miniostore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/mealworks/savor-api/internal/config"
	"github.com/mealworks/savor-api/internal/domain"
	"github.com/mealworks/savor-api/internal/store"
)

// AssetStore wraps a MinIO client for image storage.
type AssetStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// Ensure AssetStore implements store.AssetStore.
var _ store.AssetStore = (*AssetStore)(nil)

// New connects to MinIO and ensures the configured bucket exists.
func New(ctx context.Context, cfg config.StorageConfig) (*AssetStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio make bucket: %w", err)
		}
	}

	baseURL := cfg.PublicURL
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	return &AssetStore{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
	}, nil
}

// Upload stores the object under the given key and returns its durable
// URL alongside the key that later deletes it.
func (s *AssetStore) Upload(
	ctx context.Context,
	key string,
	contentType string,
	size int64,
	body io.Reader,
) (*domain.AssetRef, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("minio put object: %w", err)
	}

	return &domain.AssetRef{
		URL: fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, key),
		Key: key,
	}, nil
}

// Remove deletes the object identified by key.
func (s *AssetStore) Remove(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio remove object: %w", err)
	}
	return nil
}
