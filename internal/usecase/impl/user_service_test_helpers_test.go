package impl

import (
	"io"
	"log/slog"
	"time"

	"kampina/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
		},
		Session: &config.SessionConfig{
			MaxAge:     7 * 24 * time.Hour,
			TouchAfter: 24 * time.Hour,
		},
		Storage: &config.StorageConfig{
			MaxFiles: 3,
		},
	}
}
