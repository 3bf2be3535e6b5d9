package middleware

import (
	"encoding/json"
	"net/http"
	"testing"

	"kampina/internal/delivery/http/response"
	"kampina/internal/delivery/http/view"
	domainerrors "kampina/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorMiddleware(debug bool) *ErrorMiddleware {
	cfg := newTestConfig()
	cfg.Env.Debug = debug

	return NewErrorMiddleware(cfg, newDiscardLogger())
}

func TestHandleHTTPError_JSON(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "app error",
			err:         errors.Wrap(domainerrors.ErrCampgroundUpdateNotFound, "update"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "CAMPGROUND_NOT_FOUND",
			wantMessage: "Update failed: Campground not found",
		},
		{
			name:        "validation error",
			err:         errors.WithStack(domainerrors.NewValidationError("title", "title is required")),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantMessage: "title is required",
		},
		{
			name:        "unmatched route",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Page Not Found",
		},
		{
			name:        "method not allowed",
			err:         echo.ErrMethodNotAllowed,
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unknown error",
			err:         errors.New("db exploded"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Oh No, Something Went Wrong!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newRequest(http.MethodGet, "/x")
			c.Request().Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)

			newErrorMiddleware(false).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Message)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Empty(t, body.Error.Details)
		})
	}
}

func TestHandleHTTPError_DetailsOnlyInDebug(t *testing.T) {
	c, rec := newRequest(http.MethodGet, "/x")
	c.Request().Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)

	newErrorMiddleware(true).HandleHTTPError(errors.New("db exploded"), c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Oh No, Something Went Wrong!", body.Message)
	assert.Contains(t, body.Error.Details, "db exploded")
}

func TestHandleHTTPError_RendersErrorPage(t *testing.T) {
	renderer, err := view.NewRenderer(newDiscardLogger())
	require.NoError(t, err)

	c, rec := newRequest(http.MethodGet, "/nowhere")
	c.Echo().Renderer = renderer

	newErrorMiddleware(false).HandleHTTPError(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
	assert.Contains(t, rec.Body.String(), "404 Page Not Found")
}

func TestHandleHTTPError_FallsBackToPlainText(t *testing.T) {
	c, rec := newRequest(http.MethodGet, "/x")

	newErrorMiddleware(false).HandleHTTPError(domainerrors.ErrForbidden, c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You do not have permission to do that!", rec.Body.String())
}

func TestHandleHTTPError_HeadHasNoBody(t *testing.T) {
	c, rec := newRequest(http.MethodHead, "/x")

	newErrorMiddleware(false).HandleHTTPError(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandleHTTPError_CommittedResponseIsLeftAlone(t *testing.T) {
	c, rec := newRequest(http.MethodGet, "/x")
	require.NoError(t, c.String(http.StatusOK, "partial"))

	newErrorMiddleware(false).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}
