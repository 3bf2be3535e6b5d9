package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"kampina/config"
	deliverycontext "kampina/internal/delivery/context"
	"kampina/internal/delivery/http/response"
	domainerrors "kampina/internal/domain/errors"
	"kampina/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	campgroundsPath    = "/campgrounds"
	somethingWrong     = "Something went wrong!"
	qrCodeCacheControl = "public, max-age=3600"
)

// CampgroundHandlerParams holds the dependencies of CampgroundHandler.
type CampgroundHandlerParams struct {
	fx.In

	Campgrounds usecase.CampgroundUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// CampgroundHandler serves the campground pages and form submissions.
type CampgroundHandler struct {
	campgrounds usecase.CampgroundUsecase
	maxFiles    int
	logger      *slog.Logger
}

// NewCampgroundHandler is the constructor for CampgroundHandler, injected by Fx.
func NewCampgroundHandler(params CampgroundHandlerParams) *CampgroundHandler {
	return &CampgroundHandler{
		campgrounds: params.Campgrounds,
		maxFiles:    params.Config.Storage.MaxFiles,
		logger:      params.Logger,
	}
}

// Index lists every campground together with the cluster map data.
func (h *CampgroundHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()

	campgrounds, err := h.campgrounds.List(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	clusterMap, err := h.campgrounds.ClusterMap(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "campgrounds/index", echo.Map{
		"Title":       "All Campgrounds",
		"Campgrounds": campgrounds,
		"ClusterMap":  clusterMap,
	})
}

// New renders the creation form.
func (h *CampgroundHandler) New(c echo.Context) error {
	return c.Render(http.StatusOK, "campgrounds/new", echo.Map{
		"Title":    "New Campground",
		"MaxFiles": h.maxFiles,
	})
}

// Create handles the creation form. Invalid input is a 400; any later failure is
// reported as a flash on the campground list.
func (h *CampgroundHandler) Create(c echo.Context) error {
	fields, _, err := bindCampground(c)
	if err != nil {
		return err
	}

	images, err := imageUploads(c)
	if err != nil {
		return err
	}

	user := deliverycontext.GetCurrentUser(c)
	campground, err := h.campgrounds.Create(c.Request().Context(), &usecase.CreateCampgroundInput{
		CampgroundFields: fields,
		AuthorID:         user.ID,
		Images:           images,
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Failed to create campground",
			slog.String("error", err.Error()),
		)

		return response.FlashError(c, userMessage(err, somethingWrong), campgroundsPath)
	}

	return response.FlashSuccess(c, "Successfully made a new campground!", campgroundPath(campground.ID))
}

// Show renders the detail page with author and reviews.
func (h *CampgroundHandler) Show(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.FlashError(c, domainerrors.ErrCampgroundNotFound.Message(), campgroundsPath)
	}

	campground, err := h.campgrounds.Get(c.Request().Context(), id)
	if errors.Is(err, domainerrors.ErrCampgroundNotFound) {
		return response.FlashError(c, domainerrors.ErrCampgroundNotFound.Message(), campgroundsPath)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "campgrounds/show", echo.Map{
		"Title":      campground.Title,
		"Campground": campground,
	})
}

// Edit renders the edit form of the campground loaded by the ownership gate.
func (h *CampgroundHandler) Edit(c echo.Context) error {
	campground := deliverycontext.GetCampground(c)

	return c.Render(http.StatusOK, "campgrounds/edit", echo.Map{
		"Title":      "Edit " + campground.Title,
		"Campground": campground,
	})
}

// Update applies the edit form to the campground loaded by the ownership gate.
func (h *CampgroundHandler) Update(c echo.Context) error {
	campground := deliverycontext.GetCampground(c)

	fields, deleteImages, err := bindCampground(c)
	if err != nil {
		return err
	}

	images, err := imageUploads(c)
	if err != nil {
		return err
	}

	updated, err := h.campgrounds.Update(c.Request().Context(), &usecase.UpdateCampgroundInput{
		CampgroundFields: fields,
		ID:               campground.ID,
		Images:           images,
		DeleteImages:     deleteImages,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.FlashSuccess(c, "Successfully updated campground!", campgroundPath(updated.ID))
}

// Delete removes the campground loaded by the ownership gate.
func (h *CampgroundHandler) Delete(c echo.Context) error {
	campground := deliverycontext.GetCampground(c)

	if err := h.campgrounds.Delete(c.Request().Context(), campground.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.FlashSuccess(c, "Successfully deleted campground!", campgroundsPath)
}

// QRCode returns a PNG linking to the campground page.
func (h *CampgroundHandler) QRCode(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrCampgroundNotFound)
	}

	png, err := h.campgrounds.ShareQRCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, qrCodeCacheControl)

	return c.Blob(http.StatusOK, "image/png", png)
}

func campgroundPath(id uuid.UUID) string {
	return fmt.Sprintf("%s/%s", campgroundsPath, id)
}
