package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"kampina/config"
	"kampina/internal/delivery/http/middleware"
	"kampina/internal/delivery/http/router"
	"kampina/internal/delivery/http/router/handler"
	"kampina/internal/delivery/http/view"
	deliverymiddleware "kampina/internal/delivery/middleware"
	"kampina/internal/domain/entity"
	"kampina/internal/infra/metrics"
	mockSvc "kampina/internal/mocks/service"
	mockUsecase "kampina/internal/mocks/usecase"
	"kampina/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionID = "test-session-id"

type serverFixtures struct {
	echo        *echo.Echo
	users       *mockUsecase.MockUserUsecase
	sessions    *mockUsecase.MockSessionUsecase
	campgrounds *mockUsecase.MockCampgroundUsecase
	reviews     *mockUsecase.MockReviewUsecase
	storage     *mockSvc.MockImageStorage
	session     *entity.Session
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Session: &config.SessionConfig{
			CookieName: "kampina_session",
			MaxAge:     7 * 24 * time.Hour,
			TouchAfter: 24 * time.Hour,
		},
		Storage: &config.StorageConfig{MaxFiles: 3},
		Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	return cfg
}

// createTestServer wires the real middleware chain and routes on top of mocked usecases.
// A non-nil user is attached to the session every request loads.
func createTestServer(t *testing.T, user *entity.User) serverFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := newTestConfig()
	fx := serverFixtures{
		users:       mockUsecase.NewMockUserUsecase(t),
		sessions:    mockUsecase.NewMockSessionUsecase(t),
		campgrounds: mockUsecase.NewMockCampgroundUsecase(t),
		reviews:     mockUsecase.NewMockReviewUsecase(t),
		storage:     mockSvc.NewMockImageStorage(t),
		session:     entity.NewSession(testSessionID, time.Now(), time.Hour),
	}

	if user != nil {
		fx.session.Login(user.ID)
		fx.session.MarkSaved()
		fx.users.EXPECT().GetUser(mock.Anything, user.ID).Return(user, nil).Maybe()
	}
	fx.sessions.EXPECT().Load(mock.Anything, mock.Anything).Return(fx.session, nil).Maybe()
	fx.sessions.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Maybe()
	fx.sessions.EXPECT().MaxAge().Return(cfg.Session.MaxAge).Maybe()

	renderer, err := view.NewRenderer(logger)
	require.NoError(t, err)

	params := HTTPParams{
		Config:        cfg,
		Logger:        logger,
		Metrics:       metrics.New(),
		RequestID:     deliverymiddleware.NewRequestIDMiddleware(logger),
		RequestLogger: deliverymiddleware.NewLoggerMiddleware(logger, cfg),
		SessionMiddleware: middleware.NewSessionMiddleware(middleware.SessionMiddlewareParams{
			Sessions: fx.sessions,
			Users:    fx.users,
			Config:   cfg,
			Logger:   logger,
		}),
		ErrorMiddleware: middleware.NewErrorMiddleware(cfg, logger),
		RouterParams: router.RouterParams{
			CampgroundHandler: handler.NewCampgroundHandler(handler.CampgroundHandlerParams{
				Campgrounds: fx.campgrounds,
				Config:      cfg,
				Logger:      logger,
			}),
			ReviewHandler: handler.NewReviewHandler(fx.reviews, logger),
			UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
				Users:    fx.users,
				Sessions: fx.sessions,
				Logger:   logger,
			}),
			ImageHandler: handler.NewImageHandler(fx.storage),
			OwnershipMiddleware: middleware.NewOwnershipMiddleware(middleware.OwnershipMiddlewareParams{
				Campgrounds: fx.campgrounds,
				Reviews:     fx.reviews,
			}),
		},
	}
	fx.echo = NewEcho(params, renderer)

	return fx
}

func (fx serverFixtures) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return req
}

func TestServer_Health(t *testing.T) {
	fx := createTestServer(t, nil)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_HomePage(t *testing.T) {
	fx := createTestServer(t, nil)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "View Campgrounds")
	assert.Contains(t, rec.Body.String(), `href="/login"`)
}

func TestServer_StaticAssets(t *testing.T) {
	fx := createTestServer(t, nil)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/static/css/app.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "#cluster-map")
}

func TestServer_UnknownRouteRendersNotFound(t *testing.T) {
	fx := createTestServer(t, nil)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page Not Found")
}

func TestServer_AnonymousIsSentToLogin(t *testing.T) {
	fx := createTestServer(t, nil)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/campgrounds/new", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, "/campgrounds/new", fx.session.ReturnTo)
	assert.Contains(t, rec.Header().Get(echo.HeaderSetCookie), "kampina_session="+testSessionID)
}

func TestServer_Index(t *testing.T) {
	fx := createTestServer(t, nil)
	campground := &entity.Campground{ID: uuid.New(), Title: "Misty Bay", Location: "Shiraz, Fars"}
	fx.campgrounds.EXPECT().List(mock.Anything).Return([]*entity.Campground{campground}, nil)
	fx.campgrounds.EXPECT().ClusterMap(mock.Anything).Return(geojson.NewFeatureCollection(), nil)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/campgrounds", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Misty Bay")
	assert.Contains(t, rec.Body.String(), "/campgrounds/"+campground.ID.String())
}

func TestServer_ShowMissingCampgroundFlashes(t *testing.T) {
	fx := createTestServer(t, nil)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/campgrounds/not-a-uuid", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/campgrounds", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, []string{"Cannot find that campground!"}, fx.session.Flashes[entity.FlashError])
}

func TestServer_CreateCampground(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "ranger"}
	fx := createTestServer(t, user)
	created := &entity.Campground{ID: uuid.New()}

	fx.campgrounds.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in *usecase.CreateCampgroundInput) bool {
		return in.Title == "Misty Bay" && in.Price == 12.5 && in.AuthorID == user.ID && len(in.Images) == 0
	})).Return(created, nil)

	rec := fx.do(formRequest(http.MethodPost, "/campgrounds", url.Values{
		"campground[title]":       {"  Misty Bay "},
		"campground[price]":       {"12.5"},
		"campground[location]":    {"Shiraz, Fars"},
		"campground[description]": {"Quiet"},
	}))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/campgrounds/"+created.ID.String(), rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, []string{"Successfully made a new campground!"}, fx.session.Flashes[entity.FlashSuccess])
}

func TestServer_CreateCampgroundValidation(t *testing.T) {
	tests := []struct {
		name    string
		values  url.Values
		message string
	}{
		{
			name:    "missing title",
			values:  url.Values{"campground[price]": {"1"}, "campground[location]": {"x"}, "campground[description]": {"y"}},
			message: "title is required",
		},
		{
			name:    "price not a number",
			values:  url.Values{"campground[title]": {"t"}, "campground[price]": {"cheap"}, "campground[location]": {"x"}, "campground[description]": {"y"}},
			message: "price must be a number",
		},
		{
			name:    "negative price",
			values:  url.Values{"campground[title]": {"t"}, "campground[price]": {"-1"}, "campground[location]": {"x"}, "campground[description]": {"y"}},
			message: "price must be greater than or equal to 0",
		},
		{
			name:    "html in description",
			values:  url.Values{"campground[title]": {"t"}, "campground[price]": {"1"}, "campground[location]": {"x"}, "campground[description]": {"<script>alert(1)</script>"}},
			message: "description must not include HTML!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestServer(t, &entity.User{ID: uuid.New()})

			rec := fx.do(formRequest(http.MethodPost, "/campgrounds", tt.values))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
		})
	}
}

func TestServer_DeleteViaMethodOverride(t *testing.T) {
	user := &entity.User{ID: uuid.New()}
	fx := createTestServer(t, user)
	campground := &entity.Campground{ID: uuid.New(), AuthorID: user.ID}
	fx.campgrounds.EXPECT().Find(mock.Anything, campground.ID).Return(campground, nil)
	fx.campgrounds.EXPECT().Delete(mock.Anything, campground.ID).Return(nil)

	rec := fx.do(httptest.NewRequest(http.MethodPost, "/campgrounds/"+campground.ID.String()+"?_method=DELETE", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/campgrounds", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, []string{"Successfully deleted campground!"}, fx.session.Flashes[entity.FlashSuccess])
}

func TestServer_UpdateByStrangerIsRefused(t *testing.T) {
	fx := createTestServer(t, &entity.User{ID: uuid.New()})
	campground := &entity.Campground{ID: uuid.New(), AuthorID: uuid.New()}
	fx.campgrounds.EXPECT().Find(mock.Anything, campground.ID).Return(campground, nil)

	rec := fx.do(formRequest(http.MethodPost, "/campgrounds/"+campground.ID.String()+"?_method=PUT", url.Values{
		"campground[title]": {"hijack"},
	}))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/campgrounds/"+campground.ID.String(), rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, []string{"You do not have permission to do that!"}, fx.session.Flashes[entity.FlashError])
}

func TestServer_PostReview(t *testing.T) {
	user := &entity.User{ID: uuid.New()}
	fx := createTestServer(t, user)
	campgroundID := uuid.New()
	fx.reviews.EXPECT().Create(mock.Anything, &usecase.CreateReviewInput{
		CampgroundID: campgroundID,
		AuthorID:     user.ID,
		Body:         "Lovely",
		Rating:       4,
	}).Return(&entity.Review{ID: uuid.New()}, nil)

	rec := fx.do(formRequest(http.MethodPost, "/campgrounds/"+campgroundID.String()+"/reviews", url.Values{
		"review[rating]": {"4"},
		"review[body]":   {"Lovely"},
	}))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/campgrounds/"+campgroundID.String(), rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, []string{"Created new review!"}, fx.session.Flashes[entity.FlashSuccess])
}

func TestServer_PostReviewRejectsBadRating(t *testing.T) {
	fx := createTestServer(t, &entity.User{ID: uuid.New()})

	rec := fx.do(formRequest(http.MethodPost, "/campgrounds/"+uuid.NewString()+"/reviews", url.Values{
		"review[rating]": {"9"},
		"review[body]":   {"x"},
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "rating must be between 1 and 5")
}

func TestServer_LoginResumesReturnTo(t *testing.T) {
	fx := createTestServer(t, nil)
	user := &entity.User{ID: uuid.New(), Username: "ranger"}
	fx.session.SetReturnTo("/campgrounds/new")

	rotated := entity.NewSession("rotated-id", time.Now(), time.Hour)
	rotated.SetReturnTo("/campgrounds/new")
	fx.users.EXPECT().Login(mock.Anything, &usecase.LoginInput{Username: "ranger", Password: "pw"}).Return(user, nil)
	fx.sessions.EXPECT().Rotate(mock.Anything, fx.session).Return(rotated, nil)

	rec := fx.do(formRequest(http.MethodPost, "/login", url.Values{
		"username": {"ranger"},
		"password": {"pw"},
	}))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/campgrounds/new", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Header().Get(echo.HeaderSetCookie), "kampina_session=rotated-id")
	assert.True(t, rotated.IsAuthenticated())
	assert.Empty(t, rotated.ReturnTo)
	assert.Equal(t, []string{"Welcome back!"}, rotated.Flashes[entity.FlashSuccess])
}

func TestServer_ServesUploadedImages(t *testing.T) {
	fx := createTestServer(t, nil)
	fx.storage.EXPECT().Open(mock.Anything, "campgrounds/a.png").
		Return(io.NopCloser(strings.NewReader("png-bytes")), "image/png", nil)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/uploads/campgrounds/a.png", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestServer_MetricsEndpoint(t *testing.T) {
	fx := createTestServer(t, nil)
	fx.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_server_requests_total{method="GET",route="/health",status_code="200"} 1`)
}
