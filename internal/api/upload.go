package api

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mealworks/savor-api/internal/config"
	"github.com/mealworks/savor-api/internal/domain"
	"github.com/mealworks/savor-api/internal/store"
)

// uploadFieldName is the multipart form field that carries the image.
const uploadFieldName = "image"

// allowedMIMETypes groups the accepted content types by category.
var allowedMIMETypes = map[string][]string{
	"images": {"image/jpeg", "image/jpg", "image/png", "image/gif"},
	"videos": {"video/mp4", "video/mpeg", "video/ogg", "video/webm", "video/avi"},
	"pdfs":   {"application/pdf"},
}

// Uploader parses file attachments from multipart requests and moves
// them in and out of the asset store.
type Uploader struct {
	assets   store.AssetStore
	maxBytes int64
	allowed  map[string]bool
	logger   *slog.Logger
}

// NewUploader creates an Uploader constrained by the given upload config.
func NewUploader(assets store.AssetStore, cfg config.UploadConfig, logger *slog.Logger) *Uploader {
	allowed := make(map[string]bool)
	for _, group := range cfg.FileTypes {
		for _, mime := range allowedMIMETypes[group] {
			allowed[mime] = true
		}
	}

	return &Uploader{
		assets:   assets,
		maxBytes: cfg.MaxBytes,
		allowed:  allowed,
		logger:   logger.With(slog.String("component", "uploader")),
	}
}

// ParseRequest prepares the request for form decoding and returns the
// attached file, if any. A nil header with a nil error means no file was
// supplied. Requests that are not multipart pass through untouched.
func (u *Uploader) ParseRequest(r *http.Request) (*multipart.FileHeader, error) {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err != nil {
				return nil, fmt.Errorf("failed to parse form: %w", err)
			}
		}
		return nil, nil
	}

	r.Body = http.MaxBytesReader(nil, r.Body, u.maxBytes+1024*1024)
	if err := r.ParseMultipartForm(u.maxBytes); err != nil {
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File[uploadFieldName]) == 0 {
		return nil, nil
	}

	header := r.MultipartForm.File[uploadFieldName][0]
	if header.Size > u.maxBytes {
		return nil, domain.NewValidationError(
			uploadFieldName,
			fmt.Sprintf("exceeds the maximum upload size of %d bytes", u.maxBytes),
			domain.ErrValidation,
		)
	}

	mime := header.Header.Get("Content-Type")
	if !u.allowed[mime] {
		return nil, domain.NewValidationError(
			uploadFieldName,
			"has a file type that is not allowed",
			domain.ErrValidation,
		)
	}

	return header, nil
}

// Store uploads the attached file and returns its asset reference. The
// object key is collision-resistant: a fresh UUID plus the field name
// and original extension.
func (u *Uploader) Store(ctx context.Context, header *multipart.FileHeader) (*domain.AssetRef, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			u.logger.Warn("failed to close uploaded file", "error", cerr)
		}
	}()

	ext := filepath.Ext(header.Filename)
	key := fmt.Sprintf("%s-%s%s", uuid.New().String(), uploadFieldName, ext)
	contentType := header.Header.Get("Content-Type")

	ref, err := u.assets.Upload(ctx, key, contentType, header.Size, file)
	if err != nil {
		return nil, fmt.Errorf("asset upload failed: %w", err)
	}

	return ref, nil
}

// Discard removes a previously uploaded asset. Failures are logged and
// swallowed: asset removal is a best-effort compensating action that
// must never abort the primary operation.
func (u *Uploader) Discard(ctx context.Context, ref *domain.AssetRef) {
	if ref == nil || ref.Key == "" {
		return
	}
	if err := u.assets.Remove(ctx, ref.Key); err != nil {
		u.logger.Warn("failed to remove asset",
			slog.String("key", ref.Key),
			slog.Any("error", err))
	}
}
