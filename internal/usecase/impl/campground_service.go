package impl

import (
	"context"
	"log/slog"
	"strings"

	"kampina/config"
	deliverycontext "kampina/internal/delivery/context"
	"kampina/internal/domain/entity"
	domainerrors "kampina/internal/domain/errors"
	"kampina/internal/domain/repository"
	"kampina/internal/domain/service"
	"kampina/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// campgroundService implements the CampgroundUsecase interface.
type campgroundService struct {
	txManager      repository.TransactionManager
	campgroundRepo repository.CampgroundRepository
	geocoder       service.Geocoder
	storage        service.ImageStorage
	qrcode         service.QRCodeService
	metrics        service.DomainMetrics
	maxFiles       int
	logger         *slog.Logger
}

// CampgroundServiceParams holds dependencies for CampgroundService, injected by Fx.
type CampgroundServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CampgroundRepo repository.CampgroundRepository
	Geocoder       service.Geocoder
	Storage        service.ImageStorage
	QRCode         service.QRCodeService
	Metrics        service.DomainMetrics
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCampgroundService is the constructor for campgroundService.
func NewCampgroundService(params CampgroundServiceParams) usecase.CampgroundUsecase {
	maxFiles := 0
	if params.Config != nil && params.Config.Storage != nil {
		maxFiles = params.Config.Storage.MaxFiles
	}

	return &campgroundService{
		txManager:      params.TxManager,
		campgroundRepo: params.CampgroundRepo,
		geocoder:       params.Geocoder,
		storage:        params.Storage,
		qrcode:         params.QRCode,
		metrics:        params.Metrics,
		maxFiles:       maxFiles,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *campgroundService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every campground with its images.
func (srv *campgroundService) List(ctx context.Context) ([]*entity.Campground, error) {
	campgrounds, err := srv.campgroundRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campgrounds")
	}

	return campgrounds, nil
}

// ClusterMap converts every campground into a point feature for the map script.
func (srv *campgroundService) ClusterMap(ctx context.Context) (*geojson.FeatureCollection, error) {
	campgrounds, err := srv.List(ctx)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, c := range campgrounds {
		feature := geojson.NewFeature(c.Geometry)
		feature.ID = c.ID.String()
		feature.Properties["title"] = c.Title
		feature.Properties["location"] = c.Location
		feature.Properties["url"] = "/campgrounds/" + c.ID.String()
		fc.Append(feature)
	}

	return fc, nil
}

// Get returns the campground with author and reviews.
func (srv *campgroundService) Get(ctx context.Context, id uuid.UUID) (*entity.Campground, error) {
	campground, err := srv.campgroundRepo.FindDetailByID(ctx, id)
	if err != nil {
		return nil, mapCampgroundError(err, "failed to find campground detail")
	}

	return campground, nil
}

// Find returns the campground with its images only.
func (srv *campgroundService) Find(ctx context.Context, id uuid.UUID) (*entity.Campground, error) {
	campground, err := srv.campgroundRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCampgroundError(err, "failed to find campground")
	}

	return campground, nil
}

// Create geocodes the location, uploads the images and stores the campground.
func (srv *campgroundService) Create(ctx context.Context, input *usecase.CreateCampgroundInput) (*entity.Campground, error) {
	srv.log(ctx).Info("Creating campground", slog.Any("authorID", input.AuthorID), slog.String("title", input.Title))

	point, err := srv.geocode(ctx, input.Location)
	if err != nil {
		return nil, err
	}

	images, err := srv.uploadImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	campground := &entity.Campground{
		ID:          uuid.New(),
		Title:       input.Title,
		Price:       input.Price,
		Location:    input.Location,
		Description: input.Description,
		Geometry:    point,
		Images:      images,
		AuthorID:    input.AuthorID,
	}

	if err := srv.campgroundRepo.Create(ctx, campground); err != nil {
		srv.releaseImages(ctx, images)

		return nil, errors.Wrap(err, "failed to create campground")
	}

	srv.metrics.CampgroundCreated()
	srv.log(ctx).Debug("Campground created", slog.Any("campgroundID", campground.ID))

	return campground, nil
}

// Update applies the field edit, the new images and the image removals in one transaction.
// Files of removed images are released after commit.
func (srv *campgroundService) Update(ctx context.Context, input *usecase.UpdateCampgroundInput) (*entity.Campground, error) {
	srv.log(ctx).Info("Updating campground", slog.Any("campgroundID", input.ID))

	added, err := srv.uploadImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	var removed []entity.Image
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		campgroundRepo := repoFactory.NewCampgroundRepository()

		err := campgroundRepo.UpdateFields(ctx, &entity.Campground{
			ID:          input.ID,
			Title:       input.Title,
			Price:       input.Price,
			Location:    input.Location,
			Description: input.Description,
		})
		if err != nil {
			if errors.Is(err, repository.ErrCampgroundNotFound) {
				return errors.Wrap(domainerrors.ErrCampgroundUpdateNotFound, err.Error())
			}

			return errors.Wrap(err, "failed to update campground fields")
		}

		if len(added) > 0 {
			if err := campgroundRepo.AppendImages(ctx, input.ID, added); err != nil {
				return errors.Wrap(err, "failed to append images")
			}
		}

		if len(input.DeleteImages) > 0 {
			removed, err = campgroundRepo.RemoveImages(ctx, input.ID, input.DeleteImages)
			if err != nil {
				return errors.Wrap(err, "failed to remove images")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update campground", slog.Any("campgroundID", input.ID), slog.Any("error", err))
		srv.releaseImages(ctx, added)

		return nil, err
	}

	srv.releaseImages(ctx, removed)

	return srv.Find(ctx, input.ID)
}

// Delete removes the campground, its reviews and its images.
func (srv *campgroundService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting campground", slog.Any("campgroundID", id))

	removed, err := srv.campgroundRepo.Delete(ctx, id)
	if err != nil {
		return mapCampgroundError(err, "failed to delete campground")
	}

	srv.releaseImages(ctx, removed)

	return nil
}

// ShareQRCode renders the share link of an existing campground.
func (srv *campgroundService) ShareQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.Find(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateCampgroundQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

// geocode resolves the location. No match places the campground at the origin.
func (srv *campgroundService) geocode(ctx context.Context, location string) (orb.Point, error) {
	results, err := srv.geocoder.Geocode(ctx, location)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "failed to geocode location")
	}

	if len(results) == 0 {
		srv.log(ctx).Warn("Geocoding found no match, using the origin", slog.String("location", location))
		srv.metrics.GeocodeFallback()

		return orb.Point{0, 0}, nil
	}

	return results[0].Point, nil
}

// uploadImages stores every upload or none of them.
func (srv *campgroundService) uploadImages(ctx context.Context, uploads []usecase.ImageUpload) ([]entity.Image, error) {
	if len(uploads) == 0 {
		return nil, nil
	}
	if srv.maxFiles > 0 && len(uploads) > srv.maxFiles {
		return nil, domainerrors.ErrTooManyImages
	}

	for _, upload := range uploads {
		if !srv.storage.AllowedFormat(upload.Filename, upload.ContentType) {
			return nil, errors.Wrap(domainerrors.ErrImageFormatNotAllowed, upload.Filename)
		}
	}

	images := make([]entity.Image, 0, len(uploads))
	for _, upload := range uploads {
		img, err := srv.uploadImage(ctx, upload)
		if err != nil {
			srv.releaseImages(ctx, images)

			return nil, err
		}
		images = append(images, img)
	}

	return images, nil
}

func (srv *campgroundService) uploadImage(ctx context.Context, upload usecase.ImageUpload) (entity.Image, error) {
	file, err := upload.Open()
	if err != nil {
		return entity.Image{}, errors.Wrapf(err, "failed to open upload %s", upload.Filename)
	}
	defer file.Close()

	img, err := srv.storage.Upload(ctx, upload.Filename, upload.ContentType, file)
	if err != nil {
		return entity.Image{}, errors.Wrapf(err, "failed to upload %s", upload.Filename)
	}

	return img, nil
}

// releaseImages deletes stored files. Failures are logged and otherwise ignored.
func (srv *campgroundService) releaseImages(ctx context.Context, images []entity.Image) {
	for _, img := range images {
		if strings.TrimSpace(img.Filename) == "" {
			continue
		}
		if err := srv.storage.Delete(ctx, img.Filename); err != nil {
			srv.log(ctx).Warn("Failed to delete image from storage", slog.String("filename", img.Filename), slog.Any("error", err))
		}
	}
}

func mapCampgroundError(err error, message string) error {
	if errors.Is(err, repository.ErrCampgroundNotFound) {
		return errors.Wrap(domainerrors.ErrCampgroundNotFound, err.Error())
	}

	return errors.Wrap(err, message)
}
