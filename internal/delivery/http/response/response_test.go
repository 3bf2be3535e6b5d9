package response

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "kampina/internal/delivery/context"
	"kampina/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(accept string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if accept != "" {
		req.Header.Set(echo.HeaderAccept, accept)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestFlashRedirect(t *testing.T) {
	c, rec := newContext("")
	session := entity.NewSession("sid", time.Now(), time.Hour)
	deliverycontext.SetSession(c, session)

	require.NoError(t, FlashSuccess(c, "Created new review!", "/campgrounds/1"))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/campgrounds/1", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, []string{"Created new review!"}, session.Flashes[entity.FlashSuccess])
	assert.True(t, session.Modified())
}

func TestFlashRedirect_WithoutSession(t *testing.T) {
	c, rec := newContext("")

	require.NoError(t, FlashError(c, "nope", "/login"))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestError(t *testing.T) {
	c, rec := newContext("")

	require.NoError(t, Error(c, http.StatusNotFound, "NOT_FOUND", "", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"code":404,"message":"Not Found","error":{"code":"NOT_FOUND"}}`, rec.Body.String())
}

func TestWantsJSON(t *testing.T) {
	tests := []struct {
		accept string
		want   bool
	}{
		{"", false},
		{"application/json", true},
		{"text/html,application/xhtml+xml,application/json;q=0.9", false},
		{"*/*", false},
	}

	for _, tt := range tests {
		c, _ := newContext(tt.accept)
		assert.Equal(t, tt.want, WantsJSON(c), tt.accept)
	}
}
