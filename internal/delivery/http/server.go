package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"kampina/config"
	"kampina/internal/delivery"
	"kampina/internal/delivery/http/middleware"
	"kampina/internal/delivery/http/router"
	"kampina/internal/delivery/http/validator"
	"kampina/internal/delivery/http/view"
	deliverymiddleware "kampina/internal/delivery/middleware"
	"kampina/internal/domain/lifecycle"
	"kampina/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config            *config.Config
	Logger            *slog.Logger
	Metrics           *metrics.Metrics
	RequestID         *deliverymiddleware.RequestIDMiddleware
	RequestLogger     *deliverymiddleware.LoggerMiddleware
	SessionMiddleware *middleware.SessionMiddleware
	ErrorMiddleware   *middleware.ErrorMiddleware
	RouterParams      router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	renderer, err := view.NewRenderer(params.Logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}

	echoServer := NewEcho(params, renderer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

// NewEcho assembles the middleware chain and the routes.
func NewEcho(params HTTPParams, renderer echo.Renderer) *echo.Echo {
	cfg := params.Config

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Renderer = renderer
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// HTML forms can only POST; ?_method= selects PUT, PATCH or DELETE.
	echoServer.Pre(echomiddleware.MethodOverrideWithConfig(echomiddleware.MethodOverrideConfig{
		Getter: echomiddleware.MethodFromQuery("_method"),
	}))

	echoServer.Use(params.RequestID.Process)
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(echomiddleware.Secure())
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	echoServer.Use(params.RequestLogger.Handle)
	echoServer.Use(params.Metrics.Middleware())

	echoServer.StaticFS("/static", view.StaticFS())
	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		echoServer.GET(cfg.Metrics.Path, params.Metrics.Handler())
	}

	// Pages get the cookie session; static assets and metrics do not.
	pages := echoServer.Group("", params.SessionMiddleware.Handle)
	router.NewRouter(params.RouterParams).RegisterRoutes(pages)

	return echoServer
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
