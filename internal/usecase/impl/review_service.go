package impl

import (
	"context"
	"log/slog"

	deliverycontext "kampina/internal/delivery/context"
	"kampina/internal/domain/entity"
	domainerrors "kampina/internal/domain/errors"
	"kampina/internal/domain/repository"
	"kampina/internal/domain/service"
	"kampina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	metrics    service.DomainMetrics
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Metrics    service.DomainMetrics
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		metrics:    params.Metrics,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns a review by ID.
func (srv *reviewService) Get(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotFound, err.Error())
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}

// Create checks the campground and stores the review in the same transaction.
func (srv *reviewService) Create(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	review := &entity.Review{
		ID:           uuid.New(),
		CampgroundID: input.CampgroundID,
		AuthorID:     input.AuthorID,
		Body:         input.Body,
		Rating:       input.Rating,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewCampgroundRepository().FindByID(ctx, input.CampgroundID); err != nil {
			if errors.Is(err, repository.ErrCampgroundNotFound) {
				return errors.Wrap(domainerrors.ErrCampgroundNotFound, err.Error())
			}

			return errors.Wrap(err, "failed to find campground")
		}

		if err := repoFactory.NewReviewRepository().Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrCampgroundNotFound) {
				return errors.Wrap(domainerrors.ErrCampgroundNotFound, err.Error())
			}

			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create review", slog.Any("campgroundID", input.CampgroundID), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.ReviewCreated()
	srv.log(ctx).Debug("Review created", slog.Any("reviewID", review.ID), slog.Any("campgroundID", review.CampgroundID))

	return review, nil
}

// Delete removes the review when it belongs to the campground.
func (srv *reviewService) Delete(ctx context.Context, campgroundID, reviewID uuid.UUID) error {
	review, err := srv.Get(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.CampgroundID != campgroundID {
		return errors.Wrap(domainerrors.ErrReviewNotFound, "review belongs to another campground")
	}

	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(domainerrors.ErrReviewNotFound, err.Error())
		}

		return errors.Wrap(err, "failed to delete review")
	}

	srv.log(ctx).Info("Review deleted", slog.Any("reviewID", reviewID))

	return nil
}
