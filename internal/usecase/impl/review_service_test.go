package impl

import (
	"context"
	"testing"

	"kampina/internal/domain/entity"
	domainerrors "kampina/internal/domain/errors"
	"kampina/internal/domain/repository"
	mockRepo "kampina/internal/mocks/repository"
	mockSvc "kampina/internal/mocks/service"
	"kampina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	txManager  *mockRepo.MockTransactionManager
	reviewRepo *mockRepo.MockReviewRepository
	metrics    *mockSvc.MockDomainMetrics
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	fx := reviewServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		reviewRepo: mockRepo.NewMockReviewRepository(t),
		metrics:    mockSvc.NewMockDomainMetrics(t),
	}
	fx.service = NewReviewService(ReviewServiceParams{
		TxManager:  fx.txManager,
		ReviewRepo: fx.reviewRepo,
		Metrics:    fx.metrics,
		Logger:     newDiscardLogger(),
	})

	return fx
}

func expectReviewTx(t *testing.T, txManager *mockRepo.MockTransactionManager, campgroundRepo repository.CampgroundRepository, reviewRepo repository.ReviewRepository) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewCampgroundRepository().Return(campgroundRepo).Maybe()
			factory.EXPECT().NewReviewRepository().Return(reviewRepo).Maybe()

			return fn(factory)
		})
}

func TestReviewService_Create_Success(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	campgroundID, authorID := uuid.New(), uuid.New()

	txCampgrounds := mockRepo.NewMockCampgroundRepository(t)
	txReviews := mockRepo.NewMockReviewRepository(t)
	expectReviewTx(t, fx.txManager, txCampgrounds, txReviews)

	txCampgrounds.EXPECT().FindByID(ctx, campgroundID).Return(&entity.Campground{ID: campgroundID}, nil)
	txReviews.EXPECT().Create(ctx, mock.MatchedBy(func(r *entity.Review) bool {
		return r.CampgroundID == campgroundID && r.AuthorID == authorID && r.Rating == 4 && r.Body == "Lovely"
	})).Return(nil)
	fx.metrics.EXPECT().ReviewCreated().Return()

	review, err := fx.service.Create(ctx, &usecase.CreateReviewInput{
		CampgroundID: campgroundID,
		AuthorID:     authorID,
		Body:         "Lovely",
		Rating:       4,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, review.ID)
}

func TestReviewService_Create_CampgroundMissing(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	campgroundID := uuid.New()

	txCampgrounds := mockRepo.NewMockCampgroundRepository(t)
	expectReviewTx(t, fx.txManager, txCampgrounds, mockRepo.NewMockReviewRepository(t))
	txCampgrounds.EXPECT().FindByID(ctx, campgroundID).Return(nil, repository.ErrCampgroundNotFound)

	_, err := fx.service.Create(ctx, &usecase.CreateReviewInput{CampgroundID: campgroundID, Rating: 3, Body: "x"})

	assert.True(t, errors.Is(err, domainerrors.ErrCampgroundNotFound))
}

func TestReviewService_Delete(t *testing.T) {
	campgroundID := uuid.New()
	reviewID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.reviewRepo.EXPECT().FindByID(mock.Anything, reviewID).
			Return(&entity.Review{ID: reviewID, CampgroundID: campgroundID}, nil)
		fx.reviewRepo.EXPECT().Delete(mock.Anything, reviewID).Return(nil)

		require.NoError(t, fx.service.Delete(context.Background(), campgroundID, reviewID))
	})

	t.Run("review of another campground", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.reviewRepo.EXPECT().FindByID(mock.Anything, reviewID).
			Return(&entity.Review{ID: reviewID, CampgroundID: uuid.New()}, nil)

		err := fx.service.Delete(context.Background(), campgroundID, reviewID)

		assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.reviewRepo.EXPECT().FindByID(mock.Anything, reviewID).Return(nil, repository.ErrReviewNotFound)

		err := fx.service.Delete(context.Background(), campgroundID, reviewID)

		assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
	})
}
