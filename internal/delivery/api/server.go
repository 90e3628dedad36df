package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"

	"tuition/config"
	"tuition/internal/delivery"
	apimiddleware "tuition/internal/delivery/api/middleware"
	"tuition/internal/delivery/api/router"
	"tuition/internal/delivery/api/validator"
	"tuition/internal/delivery/middleware"
	"tuition/internal/domain/lifecycle"
	"tuition/internal/errors"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the API server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the configuration and profile API; it listens once Serve is called.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params.Cfg, params.Logger),
	}
	router.NewRouter(params.RouterParams).RegisterRoutes(srv.server)

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho returns an echo instance with the shared middleware chain, error
// handler and validator installed but no routes.
func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Recover first so panics in later middleware are caught
	e.Use(echomiddleware.Recover())

	// Request ID before the logger so log lines carry it
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	e.Use(echomiddleware.CORSWithConfig(corsConfig(cfg)))
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	// The public config and form payloads are large JSON documents; QR images are already compressed
	e.Use(echomiddleware.GzipWithConfig(echomiddleware.GzipConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().Method != http.MethodGet || c.Path() == "/teachers/:userId/qr"
		},
	}))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func corsConfig(cfg *config.Config) echomiddleware.CORSConfig {
	corsCfg := echomiddleware.DefaultCORSConfig
	if len(cfg.HTTP.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.AllowOrigins
	}
	corsCfg.AllowHeaders = []string{
		echo.HeaderAuthorization,
		echo.HeaderContentType,
		echo.HeaderXRequestID,
	}
	corsCfg.ExposeHeaders = []string{echo.HeaderXRequestID}

	return corsCfg
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))

	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
