package middleware

import (
	"fmt"

	deliverycontext "kampina/internal/delivery/context"
	"kampina/internal/delivery/http/response"
	domainerrors "kampina/internal/domain/errors"
	"kampina/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OwnershipMiddlewareParams holds the dependencies of OwnershipMiddleware.
type OwnershipMiddlewareParams struct {
	fx.In

	Campgrounds usecase.CampgroundUsecase
	Reviews     usecase.ReviewUsecase
}

// OwnershipMiddleware guards mutations so only the recorded author may perform them.
// Both gates must run after RequireLogin.
type OwnershipMiddleware struct {
	campgrounds usecase.CampgroundUsecase
	reviews     usecase.ReviewUsecase
}

// NewOwnershipMiddleware is the constructor for OwnershipMiddleware.
func NewOwnershipMiddleware(params OwnershipMiddlewareParams) *OwnershipMiddleware {
	return &OwnershipMiddleware{
		campgrounds: params.Campgrounds,
		reviews:     params.Reviews,
	}
}

// RequireCampgroundAuthor loads the :id campground and stashes it for the handler.
func (m *OwnershipMiddleware) RequireCampgroundAuthor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return response.FlashError(c, domainerrors.ErrCampgroundNotFound.Message(), campgroundsPath)
		}

		campground, err := m.campgrounds.Find(c.Request().Context(), id)
		if errors.Is(err, domainerrors.ErrCampgroundNotFound) {
			return response.FlashError(c, domainerrors.ErrCampgroundNotFound.Message(), campgroundsPath)
		}
		if err != nil {
			return errors.WithStack(err)
		}

		if !campground.IsOwnedBy(currentUserID(c)) {
			return response.FlashError(c, domainerrors.ErrForbidden.Message(), campgroundPath(id))
		}

		deliverycontext.SetCampground(c, campground)

		return next(c)
	}
}

// RequireReviewAuthor loads the :reviewId review of the :id campground and stashes it for the handler.
func (m *OwnershipMiddleware) RequireReviewAuthor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		campgroundID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return response.FlashError(c, domainerrors.ErrCampgroundNotFound.Message(), campgroundsPath)
		}
		back := campgroundPath(campgroundID)

		reviewID, err := uuid.Parse(c.Param("reviewId"))
		if err != nil {
			return response.FlashError(c, domainerrors.ErrReviewNotFound.Message(), back)
		}

		review, err := m.reviews.Get(c.Request().Context(), reviewID)
		if errors.Is(err, domainerrors.ErrReviewNotFound) || (err == nil && review.CampgroundID != campgroundID) {
			return response.FlashError(c, domainerrors.ErrReviewNotFound.Message(), back)
		}
		if err != nil {
			return errors.WithStack(err)
		}

		if !review.IsOwnedBy(currentUserID(c)) {
			return response.FlashError(c, domainerrors.ErrForbidden.Message(), back)
		}

		deliverycontext.SetReview(c, review)

		return next(c)
	}
}

func currentUserID(c echo.Context) uuid.UUID {
	if user := deliverycontext.GetCurrentUser(c); user != nil {
		return user.ID
	}

	return uuid.Nil
}

func campgroundPath(id uuid.UUID) string {
	return fmt.Sprintf("%s/%s", campgroundsPath, id)
}
