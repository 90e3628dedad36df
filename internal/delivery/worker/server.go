package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tuition/config"
	"tuition/internal/delivery"
	"tuition/internal/delivery/middleware"
	"tuition/internal/delivery/worker/handler"
	"tuition/internal/domain/lifecycle"
	"tuition/internal/errors"
	"tuition/internal/infra/metrics"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	DB          *gorm.DB
	PushHandler *handler.PushHandler
	Metrics     *metrics.Metrics `optional:"true"`
}

// NewServer creates the activity worker's HTTP server: the Pub/Sub push
// endpoint plus health and metrics.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	// Events are written to Postgres, so the worker is only healthy while the database answers
	e.GET("/health", healthCheck(params.DB))

	if params.Metrics != nil && params.Cfg.Metrics != nil && params.Cfg.Metrics.Enabled {
		e.Use(params.Metrics.Middleware())
		e.GET(params.Cfg.Metrics.Path, echo.WrapHandler(params.Metrics.Handler()))
	}

	// Pub/Sub push endpoint
	e.POST("/push", params.PushHandler.HandlePush)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func healthCheck(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}

		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
