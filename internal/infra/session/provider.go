package session

import (
	"context"
	"log/slog"
	"time"

	"kampina/config"
	"kampina/internal/domain/lifecycle"
	"kampina/internal/domain/repository"
	"kampina/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const postgresPurgeInterval = time.Hour

// purger is implemented by stores that cannot expire rows on their own.
type purger interface {
	RunPurger(ctx context.Context, logger *slog.Logger, interval time.Duration)
}

// StoreParams holds dependencies for the SessionStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// NewStore creates the SessionStore selected by session.store
func NewStore(params StoreParams) (repository.SessionStore, error) {
	logger := params.Logger
	backend := params.Config.Session.Store

	switch backend {
	case config.SessionStorePostgres:
		logger.Info("Using PostgreSQL session store")
		store := postgres.NewSessionStore(params.DB)
		if p, ok := store.(purger); ok {
			purgeCtx, cancel := context.WithCancel(context.Background())
			params.Lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go p.RunPurger(purgeCtx, logger, postgresPurgeInterval)
					return nil
				},
				OnStop: func(context.Context) error {
					cancel()
					return nil
				},
			})
		}

		return store, nil

	case config.SessionStoreRedis:
		cfg := params.Config.Redis
		if cfg == nil || cfg.Addr == "" {
			return nil, errors.New("redis.addr is required for the redis session store")
		}
		logger.Info("Using Redis session store", slog.String("addr", cfg.Addr))

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
			OnStop: func(context.Context) error {
				logger.Info("Closing Redis client")
				return client.Close()
			},
		})

		return NewRedisStore(client, cfg.KeyPrefix), nil

	case config.SessionStoreMongo:
		cfg := params.Config.Mongo
		if cfg == nil || cfg.URI == "" || cfg.Database == "" {
			return nil, errors.New("mongo.uri and mongo.database are required for the mongo session store")
		}
		collectionName := cfg.Collection
		if collectionName == "" {
			collectionName = "sessions"
		}
		logger.Info("Using MongoDB session store",
			slog.String("database", cfg.Database),
			slog.String("collection", collectionName),
		)

		// Connect does not block on the server; Ping in OnStart does.
		client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.URI))
		if err != nil {
			return nil, errors.Wrap(err, "failed to create mongo client")
		}
		collection := client.Database(cfg.Database).Collection(collectionName)

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx, nil); err != nil {
					return errors.Wrap(err, "failed to ping mongo")
				}

				return EnsureIndexes(ctx, collection)
			},
			OnStop: func(ctx context.Context) error {
				logger.Info("Disconnecting MongoDB client")
				return client.Disconnect(ctx)
			},
		})

		return NewMongoStore(collection), nil

	default:
		return nil, errors.Errorf("unknown session store: %s", backend)
	}
}

// Module provides the session store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
