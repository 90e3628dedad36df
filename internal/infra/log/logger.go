package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"tuition/config"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the process logger, tagged with the service name and environment.
func New(params Params) (*slog.Logger, error) {
	return newLogger(os.Stdout, params.Config)
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.Env.Debug}

	var handler slog.Handler
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	if cfg.Env.ServiceName != "" {
		logger = logger.With(slog.String("service", cfg.Env.ServiceName))
	}
	if cfg.Env.Env != "" {
		logger = logger.With(slog.String("env", cfg.Env.Env))
	}

	return logger, nil
}

// parseLogLevel converts string log level to slog.Level; empty means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
