package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.Port = 8080

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Session)
	assert.Equal(t, "kampina_session", cfg.Session.CookieName)
	assert.Equal(t, 7*24*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, 24*time.Hour, cfg.Session.TouchAfter)
	assert.Equal(t, SessionStorePostgres, cfg.Session.Store)
	assert.Equal(t, []string{"jpg", "jpeg", "png", "webp"}, cfg.Storage.AllowedFormats)
	assert.Equal(t, "campgrounds", cfg.Storage.Folder)
	assert.Equal(t, "http://localhost:8080", cfg.QRCode.BaseURL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.NotNil(t, cfg.Auth)
	assert.NotNil(t, cfg.PasswordStrength)
	assert.NotNil(t, cfg.Database)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Session: &SessionConfig{
			CookieName: "custom",
			MaxAge:     time.Hour,
			TouchAfter: time.Minute,
			Store:      SessionStoreRedis,
		},
		Geocoding: &GeocodingConfig{Endpoint: "http://geo.local/search", Timeout: time.Second},
		Storage:   &StorageConfig{Folder: "photos", AllowedFormats: []string{"png"}, MaxFiles: 2},
	}

	applyDefaults(cfg)

	assert.Equal(t, "custom", cfg.Session.CookieName)
	assert.Equal(t, time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, time.Minute, cfg.Session.TouchAfter)
	assert.Equal(t, SessionStoreRedis, cfg.Session.Store)
	assert.Equal(t, "http://geo.local/search", cfg.Geocoding.Endpoint)
	assert.Equal(t, time.Second, cfg.Geocoding.Timeout)
	assert.Equal(t, "photos", cfg.Storage.Folder)
	assert.Equal(t, []string{"png"}, cfg.Storage.AllowedFormats)
	assert.Equal(t, 2, cfg.Storage.MaxFiles)
}
