package handler

import (
	"net/http"

	"kampina/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const imageCacheControl = "public, max-age=86400"

// ImageHandler streams uploaded images out of object storage.
// It backs the public base URL when images are kept in a local or in-memory bucket.
type ImageHandler struct {
	storage service.ImageStorage
}

// NewImageHandler is the constructor for ImageHandler, injected by Fx.
func NewImageHandler(storage service.ImageStorage) *ImageHandler {
	return &ImageHandler{storage: storage}
}

// Serve writes the object named by the wildcard path.
func (h *ImageHandler) Serve(c echo.Context) error {
	filename := c.Param("*")
	if filename == "" {
		return echo.ErrNotFound
	}

	body, contentType, err := h.storage.Open(c.Request().Context(), filename)
	if errors.Is(err, service.ErrImageNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return errors.WithStack(err)
	}
	defer body.Close()

	c.Response().Header().Set(echo.HeaderCacheControl, imageCacheControl)

	return c.Stream(http.StatusOK, contentType, body)
}
