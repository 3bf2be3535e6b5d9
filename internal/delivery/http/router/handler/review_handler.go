package handler

import (
	"log/slog"

	deliverycontext "kampina/internal/delivery/context"
	"kampina/internal/delivery/http/response"
	domainerrors "kampina/internal/domain/errors"
	"kampina/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler handles posting and removing reviews.
type ReviewHandler struct {
	reviews usecase.ReviewUsecase
	logger  *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(reviews usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
		logger:  logger,
	}
}

// Create posts a review by the current user on the :id campground.
func (h *ReviewHandler) Create(c echo.Context) error {
	campgroundID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.FlashError(c, domainerrors.ErrCampgroundNotFound.Message(), campgroundsPath)
	}

	rating, body, err := bindReview(c)
	if err != nil {
		return err
	}

	user := deliverycontext.GetCurrentUser(c)
	_, err = h.reviews.Create(c.Request().Context(), &usecase.CreateReviewInput{
		CampgroundID: campgroundID,
		AuthorID:     user.ID,
		Body:         body,
		Rating:       rating,
	})
	if errors.Is(err, domainerrors.ErrCampgroundNotFound) {
		return response.FlashError(c, domainerrors.ErrCampgroundNotFound.Message(), campgroundsPath)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.FlashSuccess(c, "Created new review!", campgroundPath(campgroundID))
}

// Delete removes the review loaded by the ownership gate.
func (h *ReviewHandler) Delete(c echo.Context) error {
	review := deliverycontext.GetReview(c)

	if err := h.reviews.Delete(c.Request().Context(), review.CampgroundID, review.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.FlashSuccess(c, "Successfully deleted review!", campgroundPath(review.CampgroundID))
}
