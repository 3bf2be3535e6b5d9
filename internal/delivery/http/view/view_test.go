package view

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "kampina/internal/delivery/context"
	"kampina/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := NewRenderer(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return r
}

func newContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestNewRenderer_ParsesEveryPage(t *testing.T) {
	r := newRenderer(t)

	for _, name := range []string{
		"home", "error",
		"campgrounds/index", "campgrounds/new", "campgrounds/edit", "campgrounds/show",
		"users/register", "users/login",
	} {
		assert.True(t, r.Has(name), name)
	}
	assert.False(t, r.Has("layout"))
}

func TestRender_DrainsFlashesOnce(t *testing.T) {
	r := newRenderer(t)
	c := newContext()
	session := entity.NewSession("sid", time.Now(), time.Hour)
	session.AddFlash(entity.FlashSuccess, "Welcome back!")
	session.AddFlash(entity.FlashError, "<b>careful</b>")
	deliverycontext.SetSession(c, session)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "home", echo.Map{"Title": "Home"}, c))

	out := buf.String()
	assert.Contains(t, out, "Welcome back!")
	assert.Contains(t, out, "&lt;b&gt;careful&lt;/b&gt;")
	assert.Contains(t, out, "<title>Home | Kampina</title>")
	assert.Empty(t, session.Flashes)

	buf.Reset()
	require.NoError(t, r.Render(&buf, "home", echo.Map{}, c))
	assert.NotContains(t, buf.String(), "Welcome back!")
}

func TestRender_UnknownTemplate(t *testing.T) {
	r := newRenderer(t)

	err := r.Render(io.Discard, "missing", nil, newContext())
	require.Error(t, err)
}

func TestRender_ShowOwnerControls(t *testing.T) {
	r := newRenderer(t)
	owner := &entity.User{ID: uuid.New(), Username: "ranger"}
	reviewer := &entity.User{ID: uuid.New(), Username: "hiker"}
	campground := &entity.Campground{
		ID:       uuid.New(),
		Title:    "Misty Bay",
		Price:    12.5,
		Location: "Shiraz, Fars",
		Geometry: orb.Point{52.5, 29.6},
		AuthorID: owner.ID,
		Author:   owner,
		Reviews: []*entity.Review{
			{ID: uuid.New(), Body: "lovely", Rating: 4, AuthorID: reviewer.ID, Author: reviewer},
		},
	}

	tests := []struct {
		name      string
		user      *entity.User
		editLink  bool
		reviewDel bool
		reviewBox bool
	}{
		{name: "anonymous"},
		{name: "owner", user: owner, editLink: true, reviewBox: true},
		{name: "reviewer", user: reviewer, reviewDel: true, reviewBox: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext()
			if tt.user != nil {
				deliverycontext.SetCurrentUser(c, tt.user)
			}

			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, "campgrounds/show", echo.Map{"Title": campground.Title, "Campground": campground}, c))
			out := buf.String()

			assert.Contains(t, out, "Misty Bay")
			assert.Contains(t, out, "$12.50/night")
			assert.Contains(t, out, "★★★★☆")
			assert.Contains(t, out, "Submitted by ranger")
			assert.Equal(t, tt.editLink, bytes.Contains(buf.Bytes(), []byte("/edit\"")))
			assert.Equal(t, tt.reviewDel, bytes.Contains(buf.Bytes(), []byte("/reviews/"+campground.Reviews[0].ID.String())))
			assert.Equal(t, tt.reviewBox, bytes.Contains(buf.Bytes(), []byte("Leave a Review")))
		})
	}
}

func TestRender_IndexEmbedsClusterMap(t *testing.T) {
	r := newRenderer(t)
	fc := geojson.NewFeatureCollection()
	f := geojson.NewFeature(orb.Point{1, 2})
	f.Properties["title"] = "Quiet Pines"
	fc.Append(f)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "campgrounds/index", echo.Map{"ClusterMap": fc}, newContext()))

	out := buf.String()
	assert.Contains(t, out, `"FeatureCollection"`)
	assert.Contains(t, out, "Quiet Pines")
	assert.Contains(t, out, "No campgrounds yet.")
}

func TestStaticFS(t *testing.T) {
	f, err := StaticFS().Open("css/app.css")
	require.NoError(t, err)
	require.NoError(t, f.Close())
}
