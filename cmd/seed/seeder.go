package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"kampina/internal/domain/entity"
	"kampina/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	maxPrice          = 999
	seedDescription   = "A quiet spot with room for tents, a fire ring and a view worth the drive."
	placeholderImage  = "/static/img/placeholder.svg"
	placeholderImages = 2
)

type city struct {
	Name     string
	Province string
	Lat      float64
	Lng      float64
}

//nolint:gochecknoglobals
var (
	descriptors = []string{
		"Forest", "Ancient", "Petrified", "Roaring", "Cascade", "Tumbling", "Silent",
		"Redwood", "Bullfrog", "Maple", "Misty", "Elk", "Grizzly", "Ocean", "Sea", "Sky",
		"Dusty", "Diamond",
	}
	places = []string{
		"Flats", "Village", "Canyon", "Pond", "Group Camp", "Horse Camp", "Ghost Town",
		"Camp", "Dispersed Camp", "Backcountry", "River", "Creek", "Creekside", "Bay",
		"Spring", "Bayshore", "Sands", "Mule Camp", "Hunting Camp", "Cliffs", "Hollow",
	}
	cities = []city{
		{"Tehran", "Tehrān", 35.6892, 51.3890},
		{"Mashhad", "Khorāsān-e Raẕavī", 36.2980, 59.6057},
		{"Isfahan", "Eşfahān", 32.6525, 51.6746},
		{"Karaj", "Alborz", 35.8400, 50.9391},
		{"Shiraz", "Fārs", 29.6100, 52.5425},
		{"Tabriz", "Āz̄arbāyjān-e Sharqī", 38.0800, 46.2919},
		{"Qom", "Qom", 34.6401, 50.8764},
		{"Ahvaz", "Khūzestān", 31.3203, 48.6692},
		{"Kermanshah", "Kermānshāh", 34.3142, 47.0650},
		{"Urmia", "Āz̄arbāyjān-e Gharbī", 37.5527, 45.0761},
		{"Rasht", "Gīlān", 37.2808, 49.5832},
		{"Zahedan", "Sīstān va Balūchestān", 29.4963, 60.8629},
		{"Kerman", "Kermān", 30.2839, 57.0834},
		{"Hamadan", "Hamadān", 34.7992, 48.5146},
		{"Yazd", "Yazd", 31.8974, 54.3569},
		{"Ardabil", "Ardabīl", 38.2498, 48.2933},
		{"Bandar Abbas", "Hormozgān", 27.1832, 56.2666},
		{"Zanjan", "Zanjān", 36.6736, 48.4787},
		{"Sanandaj", "Kordestān", 35.3219, 46.9862},
		{"Gorgan", "Golestān", 36.8427, 54.4439},
		{"Sari", "Māzandarān", 36.5633, 53.0601},
		{"Bushehr", "Būshehr", 28.9234, 50.8203},
		{"Khorramabad", "Lorestān", 33.4878, 48.3558},
		{"Kashan", "Eşfahān", 33.9850, 51.4100},
	}
)

// seeder replaces every campground with generated demo listings.
type seeder struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	rng       *rand.Rand
	logger    *slog.Logger
}

func (s *seeder) sample(items []string) string {
	return items[s.rng.IntN(len(items))]
}

// run deletes all campgrounds and creates count new ones authored by authorUsername.
func (s *seeder) run(ctx context.Context, authorUsername string, count int) error {
	author, err := s.userRepo.FindByUsername(ctx, authorUsername)
	if err != nil {
		return errors.Wrapf(err, "seed author %q", authorUsername)
	}

	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		campgroundRepo := repoFactory.NewCampgroundRepository()
		if err := campgroundRepo.DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "failed to clear campgrounds")
		}

		for range count {
			if err := campgroundRepo.Create(ctx, s.campground(author.ID)); err != nil {
				return errors.Wrap(err, "failed to create campground")
			}
		}
		s.logger.Info("Seeded campgrounds", slog.Int("count", count), slog.String("author", author.Username))

		return nil
	})
}

func (s *seeder) campground(authorID uuid.UUID) *entity.Campground {
	c := cities[s.rng.IntN(len(cities))]

	images := make([]entity.Image, 0, placeholderImages)
	for range placeholderImages {
		images = append(images, entity.Image{URL: placeholderImage})
	}

	return &entity.Campground{
		ID:          uuid.New(),
		Title:       fmt.Sprintf("%s %s", s.sample(descriptors), s.sample(places)),
		Price:       float64(s.rng.IntN(maxPrice) + 1),
		Description: seedDescription,
		Location:    fmt.Sprintf("%s, %s", c.Name, c.Province),
		Geometry:    orb.Point{c.Lng, c.Lat},
		Images:      images,
		AuthorID:    authorID,
	}
}
