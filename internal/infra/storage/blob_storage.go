// Package storage keeps campground images in a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"kampina/config"
	"kampina/internal/domain/entity"
	domainerrors "kampina/internal/domain/errors"
	"kampina/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selectable through storage.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

const defaultBucketURL = "mem://"

// BlobStorage implements service.ImageStorage on a gocloud bucket.
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	folder        string
	allowed       map[string]struct{}
	logger        *slog.Logger
}

// Params holds dependencies for the bucket, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket named by storage.bucketUrl
func New(params Params) (*BlobStorage, error) {
	cfg := params.Config.Storage
	bucketURL := cfg.BucketURL
	if bucketURL == "" {
		params.Logger.Warn("storage.bucketUrl is empty, images are kept in memory")
		bucketURL = defaultBucketURL
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket, cfg, params.Logger), nil
}

// NewBlobStorage wraps an already opened bucket
func NewBlobStorage(bucket *blob.Bucket, cfg *config.StorageConfig, logger *slog.Logger) *BlobStorage {
	allowed := make(map[string]struct{}, len(cfg.AllowedFormats))
	for _, format := range cfg.AllowedFormats {
		allowed[strings.ToLower(strings.TrimPrefix(format, "."))] = struct{}{}
	}

	return &BlobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		folder:        strings.Trim(cfg.Folder, "/"),
		allowed:       allowed,
		logger:        logger,
	}
}

// ImageStorage exposes the storage as the domain service.
func ImageStorage(s *BlobStorage) service.ImageStorage {
	return s
}

// AllowedFormat reports whether the extension is allowed and the content type, when present, is an image.
func (s *BlobStorage) AllowedFormat(originalName, contentType string) bool {
	if _, ok := s.allowed[extension(originalName)]; !ok {
		return false
	}
	if contentType == "" || contentType == "application/octet-stream" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)

	return err == nil && strings.HasPrefix(mediaType, "image/")
}

// Upload stores content under a fresh key inside the configured folder.
func (s *BlobStorage) Upload(ctx context.Context, originalName, contentType string, content io.Reader) (entity.Image, error) {
	if !s.AllowedFormat(originalName, contentType) {
		return entity.Image{}, domainerrors.ErrImageFormatNotAllowed.WrapMessage(originalName)
	}

	ext := extension(originalName)
	key := path.Join(s.folder, uuid.NewString()+"."+ext)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mime.TypeByExtension("." + ext)
	}

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return entity.Image{}, errors.Wrap(err, "failed to open blob writer")
	}
	if _, err := io.Copy(w, content); err != nil {
		_ = w.Close()

		return entity.Image{}, errors.Wrap(err, "failed to write blob")
	}
	if err := w.Close(); err != nil {
		return entity.Image{}, errors.Wrap(err, "failed to commit blob")
	}

	s.logger.DebugContext(ctx, "Image uploaded", slog.String("key", key))

	return entity.Image{
		URL:      s.publicBaseURL + "/" + key,
		Filename: key,
	}, nil
}

// Delete removes the object. A missing object is not an error.
func (s *BlobStorage) Delete(ctx context.Context, filename string) error {
	if filename == "" {
		return errors.New("image has no storage filename")
	}

	if err := s.bucket.Delete(ctx, filename); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete blob %s", filename)
	}

	return nil
}

// Open streams a stored object. The caller closes the reader.
func (s *BlobStorage) Open(ctx context.Context, filename string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, filename, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrImageNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to read blob %s", filename)
	}

	return r, r.ContentType(), nil
}

func extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// Module provides the image storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New, ImageStorage),
)
