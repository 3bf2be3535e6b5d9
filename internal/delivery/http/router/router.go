// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kampina/internal/delivery/http/middleware"
	"kampina/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CampgroundHandler   *handler.CampgroundHandler
	ReviewHandler       *handler.ReviewHandler
	UserHandler         *handler.UserHandler
	ImageHandler        *handler.ImageHandler
	OwnershipMiddleware *middleware.OwnershipMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	campgroundHandler *handler.CampgroundHandler
	reviewHandler     *handler.ReviewHandler
	userHandler       *handler.UserHandler
	imageHandler      *handler.ImageHandler
	ownership         *middleware.OwnershipMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		campgroundHandler: params.CampgroundHandler,
		reviewHandler:     params.ReviewHandler,
		userHandler:       params.UserHandler,
		imageHandler:      params.ImageHandler,
		ownership:         params.OwnershipMiddleware,
	}
}

// RegisterRoutes sets up all the page routes on the session-aware group.
// Every handler runs through Catch.
func (r *router) RegisterRoutes(e *echo.Group) {
	c := middleware.Catch
	requireLogin := middleware.RequireLogin
	campgroundAuthor := r.ownership.RequireCampgroundAuthor
	reviewAuthor := r.ownership.RequireReviewAuthor

	e.GET("/", c(handler.Home))
	e.GET("/health", c(handler.HealthCheck))
	e.GET("/uploads/*", c(r.imageHandler.Serve))

	// User routes
	e.GET("/register", c(r.userHandler.RegisterForm))
	e.POST("/register", c(r.userHandler.Register))
	e.GET("/login", c(r.userHandler.LoginForm))
	e.POST("/login", c(r.userHandler.Login))
	e.GET("/logout", c(r.userHandler.Logout))

	// Campground routes
	campgrounds := e.Group("/campgrounds")
	{
		campgrounds.GET("", c(r.campgroundHandler.Index))
		campgrounds.POST("", c(r.campgroundHandler.Create), requireLogin)
		campgrounds.GET("/new", c(r.campgroundHandler.New), requireLogin)
		campgrounds.GET("/:id", c(r.campgroundHandler.Show))
		campgrounds.GET("/:id/qrcode", c(r.campgroundHandler.QRCode))
		campgrounds.GET("/:id/edit", c(r.campgroundHandler.Edit), requireLogin, campgroundAuthor)
		campgrounds.PUT("/:id", c(r.campgroundHandler.Update), requireLogin, campgroundAuthor)
		campgrounds.PATCH("/:id", c(r.campgroundHandler.Update), requireLogin, campgroundAuthor)
		campgrounds.DELETE("/:id", c(r.campgroundHandler.Delete), requireLogin, campgroundAuthor)
	}

	// Review routes nested under their campground
	campgrounds.POST("/:id/reviews", c(r.reviewHandler.Create), requireLogin)
	campgrounds.DELETE("/:id/reviews/:reviewId", c(r.reviewHandler.Delete), requireLogin, reviewAuthor)
}
