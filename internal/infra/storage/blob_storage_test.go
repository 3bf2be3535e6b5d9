package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"kampina/config"
	domainerrors "kampina/internal/domain/errors"
	"kampina/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) *BlobStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobStorage(bucket, &config.StorageConfig{
		PublicBaseURL:  "https://cdn.example/",
		Folder:         "/campgrounds/",
		AllowedFormats: []string{"jpg", "jpeg", ".PNG", "webp"},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBlobStorage_AllowedFormat(t *testing.T) {
	s := newTestStorage(t)

	tests := []struct {
		name        string
		filename    string
		contentType string
		want        bool
	}{
		{"jpg", "a.jpg", "image/jpeg", true},
		{"upper case png", "A.PNG", "image/png", true},
		{"webp without type", "a.webp", "", true},
		{"octet stream", "a.jpeg", "application/octet-stream", true},
		{"gif", "a.gif", "image/gif", false},
		{"no extension", "image", "image/png", false},
		{"wrong content type", "a.jpg", "text/html", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.AllowedFormat(tt.filename, tt.contentType))
		})
	}
}

func TestBlobStorage_UploadOpenDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	img, err := s.Upload(ctx, "tent.JPG", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(img.Filename, "campgrounds/"))
	assert.True(t, strings.HasSuffix(img.Filename, ".jpg"))
	assert.Equal(t, "https://cdn.example/"+img.Filename, img.URL)

	r, contentType, err := s.Open(ctx, img.Filename)
	require.NoError(t, err)
	body, err := io.ReadAll(r)
	require.NoError(t, r.Close())
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(body))
	assert.Equal(t, "image/jpeg", contentType)

	require.NoError(t, s.Delete(ctx, img.Filename))
	_, _, err = s.Open(ctx, img.Filename)
	assert.True(t, errors.Is(err, service.ErrImageNotFound))

	// Deleting twice is tolerated.
	require.NoError(t, s.Delete(ctx, img.Filename))
}

func TestBlobStorage_UploadRejectsFormat(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Upload(context.Background(), "doc.pdf", "application/pdf", strings.NewReader("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrImageFormatNotAllowed))
}

func TestBlobStorage_DeleteRequiresFilename(t *testing.T) {
	s := newTestStorage(t)
	assert.Error(t, s.Delete(context.Background(), ""))
}
