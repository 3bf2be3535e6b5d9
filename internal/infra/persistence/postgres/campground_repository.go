package postgres

import (
	"context"

	"kampina/internal/domain/entity"
	domainerrors "kampina/internal/domain/errors"
	"kampina/internal/domain/repository"
	"kampina/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// campgroundRepository implements repository.CampgroundRepository using GORM.
type campgroundRepository struct {
	db *gorm.DB
}

// NewCampgroundRepository creates a new campground repository
func NewCampgroundRepository(db *gorm.DB) repository.CampgroundRepository {
	return &campgroundRepository{db: db}
}

func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func orderedReviews(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// List returns every campground with its images, newest first.
func (r *campgroundRepository) List(ctx context.Context) ([]*entity.Campground, error) {
	var models []model.CampgroundModel
	err := r.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campgrounds")
	}

	campgrounds := make([]*entity.Campground, 0, len(models))
	for i := range models {
		campgrounds = append(campgrounds, toCampgroundDomain(&models[i]))
	}

	return campgrounds, nil
}

// FindByID returns the campground with its images only.
func (r *campgroundRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campground, error) {
	var m model.CampgroundModel
	err := r.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampgroundNotFound
		}

		return nil, errors.Wrap(err, "failed to find campground by id")
	}

	return toCampgroundDomain(&m), nil
}

// FindDetailByID populates the author and the reviews with their authors.
func (r *campgroundRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.Campground, error) {
	var m model.CampgroundModel
	err := r.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Preload("Author").
		Preload("Reviews", orderedReviews).
		Preload("Reviews.Author").
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampgroundNotFound
		}

		return nil, errors.Wrap(err, "failed to find campground detail")
	}

	return toCampgroundDomain(&m), nil
}

// Create persists the campground and its images in one transaction.
func (r *campgroundRepository) Create(ctx context.Context, campground *entity.Campground) error {
	if campground.ID == uuid.Nil {
		campground.ID = uuid.New()
	}
	m := fromCampgroundDomain(campground)
	images := fromImagesDomain(campground.ID, 0, campground.Images)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return err
		}
		if len(images) == 0 {
			return nil
		}

		return tx.Create(&images).Error
	})
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("campground author does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create campground")
	}

	campground.CreatedAt = m.CreatedAt
	campground.UpdatedAt = m.UpdatedAt

	return nil
}

// UpdateFields overwrites the editable scalar fields.
func (r *campgroundRepository) UpdateFields(ctx context.Context, campground *entity.Campground) error {
	result := r.db.WithContext(ctx).
		Model(&model.CampgroundModel{}).
		Where("id = ?", campground.ID).
		Updates(map[string]any{
			"title":       campground.Title,
			"price":       campground.Price,
			"location":    campground.Location,
			"description": campground.Description,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage(result.Error.Error())
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update campground")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCampgroundNotFound
	}

	return nil
}

// AppendImages adds images after the existing ones.
func (r *campgroundRepository) AppendImages(ctx context.Context, campgroundID uuid.UUID, images []entity.Image) error {
	if len(images) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPosition int
		err := tx.Model(&model.CampgroundImageModel{}).
			Where("campground_id = ?", campgroundID).
			Select("COALESCE(MAX(position), -1)").
			Scan(&maxPosition).Error
		if err != nil {
			return errors.Wrap(err, "failed to read image positions")
		}

		models := fromImagesDomain(campgroundID, maxPosition+1, images)
		if err := tx.Create(&models).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrCampgroundNotFound
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to append images")
		}

		return nil
	})
}

// RemoveImages drops the images with the given filenames and returns the removed ones.
func (r *campgroundRepository) RemoveImages(ctx context.Context, campgroundID uuid.UUID, filenames []string) ([]entity.Image, error) {
	if len(filenames) == 0 {
		return nil, nil
	}

	var removed []model.CampgroundImageModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("campground_id = ? AND filename IN ?", campgroundID, filenames).
			Order("position ASC").
			Find(&removed).Error
		if err != nil {
			return errors.Wrap(err, "failed to find images")
		}
		if len(removed) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(removed))
		for _, img := range removed {
			ids = append(ids, img.ID)
		}

		return tx.Where("id IN ?", ids).Delete(&model.CampgroundImageModel{}).Error
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to remove images")
	}

	return toImagesDomain(removed), nil
}

// Delete removes the campground together with its images and reviews.
func (r *campgroundRepository) Delete(ctx context.Context, id uuid.UUID) ([]entity.Image, error) {
	var images []model.CampgroundImageModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("campground_id = ?", id).Order("position ASC").Find(&images).Error; err != nil {
			return errors.Wrap(err, "failed to find images")
		}
		if err := tx.Where("campground_id = ?", id).Delete(&model.ReviewModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete reviews")
		}
		if err := tx.Where("campground_id = ?", id).Delete(&model.CampgroundImageModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete images")
		}

		result := tx.Where("id = ?", id).Delete(&model.CampgroundModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete campground")
		}
		if result.RowsAffected == 0 {
			return repository.ErrCampgroundNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrCampgroundNotFound) {
			return nil, repository.ErrCampgroundNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete campground")
	}

	return toImagesDomain(images), nil
}

// DeleteAll removes every campground along with images and reviews.
func (r *campgroundRepository) DeleteAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tx = tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := tx.Delete(&model.ReviewModel{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.CampgroundImageModel{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.CampgroundModel{}).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete all campgrounds")
	}

	return nil
}

// --- Mapper Functions ---

func toCampgroundDomain(data *model.CampgroundModel) *entity.Campground {
	if data == nil {
		return nil
	}

	campground := &entity.Campground{
		ID:          data.ID,
		Title:       data.Title,
		Price:       data.Price,
		Description: data.Description,
		Location:    data.Location,
		Geometry:    orb.Point{data.Longitude, data.Latitude},
		Images:      toImagesDomain(data.Images),
		AuthorID:    data.AuthorID,
		Author:      toUserDomain(data.Author),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if len(data.Reviews) > 0 {
		campground.Reviews = make([]*entity.Review, 0, len(data.Reviews))
		for i := range data.Reviews {
			campground.Reviews = append(campground.Reviews, toReviewDomain(&data.Reviews[i]))
		}
	}

	return campground
}

func fromCampgroundDomain(data *entity.Campground) *model.CampgroundModel {
	return &model.CampgroundModel{
		ID:          data.ID,
		Title:       data.Title,
		Price:       data.Price,
		Description: data.Description,
		Location:    data.Location,
		Longitude:   data.Geometry.Lon(),
		Latitude:    data.Geometry.Lat(),
		AuthorID:    data.AuthorID,
	}
}

func toImagesDomain(models []model.CampgroundImageModel) []entity.Image {
	if len(models) == 0 {
		return nil
	}

	images := make([]entity.Image, 0, len(models))
	for _, m := range models {
		images = append(images, entity.Image{URL: m.URL, Filename: m.Filename})
	}

	return images
}

func fromImagesDomain(campgroundID uuid.UUID, startPosition int, images []entity.Image) []model.CampgroundImageModel {
	models := make([]model.CampgroundImageModel, 0, len(images))
	for i, img := range images {
		models = append(models, model.CampgroundImageModel{
			ID:           uuid.New(),
			CampgroundID: campgroundID,
			Position:     startPosition + i,
			URL:          img.URL,
			Filename:     img.Filename,
		})
	}

	return models
}
