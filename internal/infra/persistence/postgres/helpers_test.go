package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"kampina/config"
	"kampina/internal/domain/entity"
	"kampina/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with the application schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db = configure(db, slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{})
	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "hash",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedCampground(t *testing.T, db *gorm.DB, author *entity.User, images ...entity.Image) *entity.Campground {
	t.Helper()

	campground := &entity.Campground{
		Title:       "Misty Bay",
		Price:       12.5,
		Description: "Quiet spot by the water",
		Location:    "Shiraz, Fars",
		Geometry:    orb.Point{52.53, 29.61},
		Images:      images,
		AuthorID:    author.ID,
	}
	require.NoError(t, NewCampgroundRepository(db).Create(context.Background(), campground))

	return campground
}

func seedReview(t *testing.T, db *gorm.DB, campgroundID uuid.UUID, author *entity.User, rating int) *entity.Review {
	t.Helper()

	review := &entity.Review{
		CampgroundID: campgroundID,
		AuthorID:     author.ID,
		Body:         "Lovely",
		Rating:       rating,
	}
	require.NoError(t, NewReviewRepository(db).Create(context.Background(), review))

	return review
}

// countReviews returns how many reviews reference the campground.
func countReviews(t *testing.T, db *gorm.DB, campgroundID uuid.UUID) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&model.ReviewModel{}).Where("campground_id = ?", campgroundID).Count(&count).Error)

	return count
}
