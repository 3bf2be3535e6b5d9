package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"kampina/config"
	"kampina/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Session: &config.SessionConfig{
			CookieName: "kampina_session",
			MaxAge:     7 * 24 * time.Hour,
			TouchAfter: 24 * time.Hour,
		},
	}

	return cfg
}

func newRequest(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newSession() *entity.Session {
	return entity.NewSession(strings.Repeat("s", 43), time.Now(), time.Hour)
}

func ok(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
