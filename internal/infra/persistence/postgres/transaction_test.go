package postgres

import (
	"context"
	"testing"

	"kampina/internal/domain/entity"
	"kampina/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	author := seedUser(t, db, "owner")
	campground := seedCampground(t, db, author)
	ctx := context.Background()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		campground.Title = "In transaction"
		if err := f.NewCampgroundRepository().UpdateFields(ctx, campground); err != nil {
			return err
		}

		return f.NewCampgroundRepository().AppendImages(ctx, campground.ID, []entity.Image{{URL: "u", Filename: "f"}})
	})
	require.NoError(t, err)

	found, err := NewCampgroundRepository(db).FindByID(ctx, campground.ID)
	require.NoError(t, err)
	assert.Equal(t, "In transaction", found.Title)
	assert.Equal(t, []string{"f"}, found.ImageFilenames())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	author := seedUser(t, db, "owner")
	campground := seedCampground(t, db, author)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		campground.Title = "Never stored"
		if err := f.NewCampgroundRepository().UpdateFields(ctx, campground); err != nil {
			return err
		}
		if err := f.NewCampgroundRepository().AppendImages(ctx, campground.ID, []entity.Image{{URL: "u", Filename: "f"}}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	found, err := NewCampgroundRepository(db).FindByID(ctx, campground.ID)
	require.NoError(t, err)
	assert.Equal(t, "Misty Bay", found.Title)
	assert.Empty(t, found.Images)
}
