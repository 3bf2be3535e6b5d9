package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"kampina/internal/domain/entity"
	domainerrors "kampina/internal/domain/errors"
	"kampina/internal/domain/repository"
	"kampina/internal/domain/service"
	mockRepo "kampina/internal/mocks/repository"
	mockSvc "kampina/internal/mocks/service"
	"kampina/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type campgroundServiceFixtures struct {
	service        usecase.CampgroundUsecase
	txManager      *mockRepo.MockTransactionManager
	campgroundRepo *mockRepo.MockCampgroundRepository
	geocoder       *mockSvc.MockGeocoder
	storage        *mockSvc.MockImageStorage
	qrcode         *mockSvc.MockQRCodeService
	metrics        *mockSvc.MockDomainMetrics
}

func createTestCampgroundService(t *testing.T) campgroundServiceFixtures {
	fx := campgroundServiceFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		campgroundRepo: mockRepo.NewMockCampgroundRepository(t),
		geocoder:       mockSvc.NewMockGeocoder(t),
		storage:        mockSvc.NewMockImageStorage(t),
		qrcode:         mockSvc.NewMockQRCodeService(t),
		metrics:        mockSvc.NewMockDomainMetrics(t),
	}
	fx.service = NewCampgroundService(CampgroundServiceParams{
		TxManager:      fx.txManager,
		CampgroundRepo: fx.campgroundRepo,
		Geocoder:       fx.geocoder,
		Storage:        fx.storage,
		QRCode:         fx.qrcode,
		Metrics:        fx.metrics,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return fx
}

func upload(name, contentType, body string) usecase.ImageUpload {
	return usecase.ImageUpload{
		Filename:    name,
		ContentType: contentType,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(body)), nil
		},
	}
}

// runTx makes the mocked transaction manager invoke fn with a factory over repo.
func runTx(t *testing.T, txManager *mockRepo.MockTransactionManager, repo repository.CampgroundRepository) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewCampgroundRepository().Return(repo).Maybe()

			return fn(factory)
		})
}

func TestCampgroundService_Create_Success(t *testing.T) {
	fx := createTestCampgroundService(t)
	ctx := context.Background()
	authorID := uuid.New()

	fx.geocoder.EXPECT().Geocode(ctx, "Shiraz, Fars").
		Return([]service.GeocodeResult{{Point: orb.Point{52.53, 29.61}}}, nil)
	fx.storage.EXPECT().AllowedFormat("tent.jpg", "image/jpeg").Return(true)
	fx.storage.EXPECT().Upload(ctx, "tent.jpg", "image/jpeg", mock.Anything).
		Return(entity.Image{URL: "https://cdn/c/1.jpg", Filename: "c/1.jpg"}, nil)
	fx.campgroundRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Campground")).Return(nil)
	fx.metrics.EXPECT().CampgroundCreated().Return()

	campground, err := fx.service.Create(ctx, &usecase.CreateCampgroundInput{
		CampgroundFields: usecase.CampgroundFields{
			Title:       "Misty Bay",
			Price:       12.5,
			Location:    "Shiraz, Fars",
			Description: "Quiet",
		},
		AuthorID: authorID,
		Images:   []usecase.ImageUpload{upload("tent.jpg", "image/jpeg", "x")},
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, campground.ID)
	assert.Equal(t, authorID, campground.AuthorID)
	assert.Equal(t, orb.Point{52.53, 29.61}, campground.Geometry)
	assert.Equal(t, []entity.Image{{URL: "https://cdn/c/1.jpg", Filename: "c/1.jpg"}}, campground.Images)
}

func TestCampgroundService_Create_GeocodeFallback(t *testing.T) {
	fx := createTestCampgroundService(t)
	ctx := context.Background()

	fx.geocoder.EXPECT().Geocode(ctx, "Nowhere").Return(nil, nil)
	fx.metrics.EXPECT().GeocodeFallback().Return()
	fx.campgroundRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Campground")).Return(nil)
	fx.metrics.EXPECT().CampgroundCreated().Return()

	campground, err := fx.service.Create(ctx, &usecase.CreateCampgroundInput{
		CampgroundFields: usecase.CampgroundFields{Title: "T", Location: "Nowhere", Description: "D"},
		AuthorID:         uuid.New(),
	})

	require.NoError(t, err)
	assert.Equal(t, orb.Point{0, 0}, campground.Geometry)
}

func TestCampgroundService_Create_GeocoderFailure(t *testing.T) {
	fx := createTestCampgroundService(t)
	fx.geocoder.EXPECT().Geocode(mock.Anything, "X").Return(nil, errors.New("timeout"))

	_, err := fx.service.Create(context.Background(), &usecase.CreateCampgroundInput{
		CampgroundFields: usecase.CampgroundFields{Location: "X"},
	})

	assert.Error(t, err)
}

func TestCampgroundService_Create_RejectsFormatBeforeUploading(t *testing.T) {
	fx := createTestCampgroundService(t)
	fx.geocoder.EXPECT().Geocode(mock.Anything, "X").Return(nil, nil)
	fx.metrics.EXPECT().GeocodeFallback().Return()
	fx.storage.EXPECT().AllowedFormat("a.jpg", "image/jpeg").Return(true)
	fx.storage.EXPECT().AllowedFormat("b.gif", "image/gif").Return(false)

	_, err := fx.service.Create(context.Background(), &usecase.CreateCampgroundInput{
		CampgroundFields: usecase.CampgroundFields{Location: "X"},
		Images: []usecase.ImageUpload{
			upload("a.jpg", "image/jpeg", "a"),
			upload("b.gif", "image/gif", "b"),
		},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrImageFormatNotAllowed))
}

func TestCampgroundService_Create_TooManyImages(t *testing.T) {
	fx := createTestCampgroundService(t)
	fx.geocoder.EXPECT().Geocode(mock.Anything, "X").Return(nil, nil)
	fx.metrics.EXPECT().GeocodeFallback().Return()

	images := make([]usecase.ImageUpload, 4)
	for i := range images {
		images[i] = upload("a.jpg", "image/jpeg", "a")
	}

	_, err := fx.service.Create(context.Background(), &usecase.CreateCampgroundInput{
		CampgroundFields: usecase.CampgroundFields{Location: "X"},
		Images:           images,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrTooManyImages))
}

func TestCampgroundService_Create_ReleasesUploadsWhenPersistFails(t *testing.T) {
	fx := createTestCampgroundService(t)
	ctx := context.Background()

	fx.geocoder.EXPECT().Geocode(ctx, "X").Return(nil, nil)
	fx.metrics.EXPECT().GeocodeFallback().Return()
	fx.storage.EXPECT().AllowedFormat("a.png", "image/png").Return(true)
	fx.storage.EXPECT().Upload(ctx, "a.png", "image/png", mock.Anything).
		Return(entity.Image{URL: "u", Filename: "c/a.png"}, nil)
	fx.campgroundRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))
	fx.storage.EXPECT().Delete(ctx, "c/a.png").Return(nil)

	_, err := fx.service.Create(ctx, &usecase.CreateCampgroundInput{
		CampgroundFields: usecase.CampgroundFields{Location: "X"},
		Images:           []usecase.ImageUpload{upload("a.png", "image/png", "a")},
	})

	assert.Error(t, err)
}

func TestCampgroundService_Update_Success(t *testing.T) {
	fx := createTestCampgroundService(t)
	ctx := context.Background()
	id := uuid.New()
	txRepo := mockRepo.NewMockCampgroundRepository(t)
	runTx(t, fx.txManager, txRepo)

	added := entity.Image{URL: "u/new.png", Filename: "c/new.png"}
	removed := entity.Image{URL: "u/old.png", Filename: "c/old.png"}

	fx.storage.EXPECT().AllowedFormat("new.png", "image/png").Return(true)
	fx.storage.EXPECT().Upload(ctx, "new.png", "image/png", mock.Anything).Return(added, nil)
	txRepo.EXPECT().UpdateFields(ctx, mock.MatchedBy(func(c *entity.Campground) bool {
		return c.ID == id && c.Title == "Renamed" && c.Price == 0
	})).Return(nil)
	txRepo.EXPECT().AppendImages(ctx, id, []entity.Image{added}).Return(nil)
	txRepo.EXPECT().RemoveImages(ctx, id, []string{"c/old.png"}).Return([]entity.Image{removed}, nil)
	fx.storage.EXPECT().Delete(ctx, "c/old.png").Return(errors.New("provider down"))
	fx.campgroundRepo.EXPECT().FindByID(ctx, id).Return(&entity.Campground{ID: id, Title: "Renamed"}, nil)

	campground, err := fx.service.Update(ctx, &usecase.UpdateCampgroundInput{
		CampgroundFields: usecase.CampgroundFields{Title: "Renamed", Location: "X", Description: "D"},
		ID:               id,
		Images:           []usecase.ImageUpload{upload("new.png", "image/png", "n")},
		DeleteImages:     []string{"c/old.png"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", campground.Title)
}

func TestCampgroundService_Update_NotFound(t *testing.T) {
	fx := createTestCampgroundService(t)
	ctx := context.Background()
	id := uuid.New()
	txRepo := mockRepo.NewMockCampgroundRepository(t)
	runTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().UpdateFields(ctx, mock.Anything).Return(repository.ErrCampgroundNotFound)

	_, err := fx.service.Update(ctx, &usecase.UpdateCampgroundInput{ID: id})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Equal(t, "Update failed: Campground not found", appErr.Message())
}

func TestCampgroundService_Update_RollbackReleasesNewUploads(t *testing.T) {
	fx := createTestCampgroundService(t)
	ctx := context.Background()
	id := uuid.New()
	txRepo := mockRepo.NewMockCampgroundRepository(t)
	runTx(t, fx.txManager, txRepo)

	added := entity.Image{URL: "u/new.png", Filename: "c/new.png"}
	fx.storage.EXPECT().AllowedFormat("new.png", "image/png").Return(true)
	fx.storage.EXPECT().Upload(ctx, "new.png", "image/png", mock.Anything).Return(added, nil)
	txRepo.EXPECT().UpdateFields(ctx, mock.Anything).Return(nil)
	txRepo.EXPECT().AppendImages(ctx, id, []entity.Image{added}).Return(errors.New("insert failed"))
	fx.storage.EXPECT().Delete(ctx, "c/new.png").Return(nil)

	_, err := fx.service.Update(ctx, &usecase.UpdateCampgroundInput{
		ID:     id,
		Images: []usecase.ImageUpload{upload("new.png", "image/png", "n")},
	})

	assert.Error(t, err)
}

func TestCampgroundService_Delete(t *testing.T) {
	t.Run("releases images", func(t *testing.T) {
		fx := createTestCampgroundService(t)
		id := uuid.New()
		fx.campgroundRepo.EXPECT().Delete(mock.Anything, id).
			Return([]entity.Image{{Filename: "c/1.jpg"}, {Filename: ""}}, nil)
		fx.storage.EXPECT().Delete(mock.Anything, "c/1.jpg").Return(nil)

		require.NoError(t, fx.service.Delete(context.Background(), id))
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestCampgroundService(t)
		id := uuid.New()
		fx.campgroundRepo.EXPECT().Delete(mock.Anything, id).Return(nil, repository.ErrCampgroundNotFound)

		err := fx.service.Delete(context.Background(), id)

		assert.True(t, errors.Is(err, domainerrors.ErrCampgroundNotFound))
	})
}

func TestCampgroundService_Get_NotFound(t *testing.T) {
	fx := createTestCampgroundService(t)
	id := uuid.New()
	fx.campgroundRepo.EXPECT().FindDetailByID(mock.Anything, id).Return(nil, repository.ErrCampgroundNotFound)

	_, err := fx.service.Get(context.Background(), id)

	assert.True(t, errors.Is(err, domainerrors.ErrCampgroundNotFound))
}

func TestCampgroundService_ClusterMap(t *testing.T) {
	fx := createTestCampgroundService(t)
	a := &entity.Campground{ID: uuid.New(), Title: "A", Location: "LA", Geometry: orb.Point{1, 2}}
	b := &entity.Campground{ID: uuid.New(), Title: "B", Location: "LB"}
	fx.campgroundRepo.EXPECT().List(mock.Anything).Return([]*entity.Campground{a, b}, nil)

	fc, err := fx.service.ClusterMap(context.Background())

	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, orb.Point{1, 2}, fc.Features[0].Geometry)
	assert.Equal(t, a.ID.String(), fc.Features[0].ID)
	assert.Equal(t, "A", fc.Features[0].Properties["title"])
	assert.Equal(t, "/campgrounds/"+b.ID.String(), fc.Features[1].Properties["url"])
}

func TestCampgroundService_ShareQRCode(t *testing.T) {
	fx := createTestCampgroundService(t)
	id := uuid.New()
	fx.campgroundRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Campground{ID: id}, nil)
	fx.qrcode.EXPECT().GenerateCampgroundQR(id).Return([]byte("png"), nil)

	png, err := fx.service.ShareQRCode(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
