package middleware

import (
	"net/http"
	"testing"

	deliverycontext "kampina/internal/delivery/context"
	"kampina/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireLogin_Anonymous(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		wantReturnTo string
	}{
		{name: "get remembers path", method: http.MethodGet, target: "/campgrounds/new", wantReturnTo: "/campgrounds/new"},
		{name: "get keeps query", method: http.MethodGet, target: "/campgrounds/1/edit?x=1", wantReturnTo: "/campgrounds/1/edit?x=1"},
		{name: "post resumes at list", method: http.MethodPost, target: "/campgrounds/1/reviews", wantReturnTo: "/campgrounds"},
		{name: "delete resumes at list", method: http.MethodDelete, target: "/campgrounds/1", wantReturnTo: "/campgrounds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newRequest(tt.method, tt.target)
			session := newSession()
			deliverycontext.SetSession(c, session)

			called := false
			err := RequireLogin(func(c echo.Context) error {
				called = true

				return nil
			})(c)

			require.NoError(t, err)
			assert.False(t, called)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
			assert.Equal(t, tt.wantReturnTo, session.ReturnTo)
			assert.Equal(t, []string{"You must be signed in first!"}, session.Flashes[entity.FlashError])
		})
	}
}

func TestRequireLogin_Authenticated(t *testing.T) {
	c, rec := newRequest(http.MethodGet, "/campgrounds/new")
	deliverycontext.SetSession(c, newSession())
	deliverycontext.SetCurrentUser(c, &entity.User{ID: uuid.New()})

	require.NoError(t, RequireLogin(ok)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
