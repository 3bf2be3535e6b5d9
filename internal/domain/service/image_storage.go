package service

import (
	"context"
	"errors"
	"io"

	"kampina/internal/domain/entity"
)

// ErrImageNotFound is returned by Open when nothing is stored under the filename.
var ErrImageNotFound = errors.New("image not found")

// ImageStorage uploads listing photos to an object storage provider.
type ImageStorage interface {
	// Upload stores the content and returns its public URL and storage key.
	Upload(ctx context.Context, originalName, contentType string, content io.Reader) (entity.Image, error)

	// Delete removes the object stored under filename.
	Delete(ctx context.Context, filename string) error

	// Open streams a stored object along with its content type.
	Open(ctx context.Context, filename string) (io.ReadCloser, string, error)

	// AllowedFormat reports whether a file with this name and content type may be uploaded.
	AllowedFormat(originalName, contentType string) bool
}
