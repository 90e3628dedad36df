package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"tuition/config"
	deliverycontext "tuition/internal/delivery/context"
)

// LoggerMiddleware logs one line per request when debug is on.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			// Let the error handler write the response so the logged status is final.
			c.Error(err)
		}
		m.logRequest(c, start, err)

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()
	ctx := req.Context()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if actorID := deliverycontext.GetActorID(ctx); actorID != nil {
		fields = append(fields, slog.String("user_id", actorID.String()))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	// The request-scoped logger already carries request_id.
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, logLevel, "HTTP Request", fields...)
}
