package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kampina/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "abc"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestEchoValues(t *testing.T) {
	c := newEchoContext()

	assert.Empty(t, GetRequestID(c))
	assert.Nil(t, GetSession(c))
	assert.Nil(t, GetCurrentUser(c))
	assert.Nil(t, GetCampground(c))
	assert.Nil(t, GetReview(c))

	session := entity.NewSession("sid", time.Now(), time.Hour)
	user := &entity.User{ID: uuid.New()}
	campground := &entity.Campground{ID: uuid.New()}
	review := &entity.Review{ID: uuid.New()}

	SetRequestID(c, "req-1")
	SetSession(c, session)
	SetCurrentUser(c, user)
	SetCampground(c, campground)
	SetReview(c, review)

	assert.Equal(t, "req-1", GetRequestID(c))
	assert.Same(t, session, GetSession(c))
	assert.Same(t, user, GetCurrentUser(c))
	assert.Same(t, campground, GetCampground(c))
	assert.Same(t, review, GetReview(c))
}
