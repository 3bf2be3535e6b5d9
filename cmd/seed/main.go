// Command seed replaces all campgrounds with generated demo data.
package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"

	"kampina/config"
	"kampina/internal/domain/repository"
	logs "kampina/internal/infra/log"
	"kampina/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
		fx.Invoke(run),
	).Run()
}

type runParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config    *config.Config
	Logger    *slog.Logger
	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
}

func run(params runParams) {
	s := &seeder{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec
		logger:    params.Logger,
	}

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				// The start context expires with the fx start timeout; seeding gets its own.
				err := s.run(context.Background(), params.Config.Seed.AuthorUsername, params.Config.Seed.Count)
				code := 0
				if err != nil {
					params.Logger.Error("Seeding failed", slog.Any("error", err))
					code = 1
				}
				if err := params.Shutdown(fx.ExitCode(code)); err != nil {
					os.Exit(code)
				}
			}()

			return nil
		},
	})
}
