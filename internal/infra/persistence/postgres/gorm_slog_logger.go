package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tuition/config"
	deliverycontext "tuition/internal/delivery/context"
	"tuition/internal/errors"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output to the request-scoped slog logger so SQL
// lines carry the request_id of the call that issued them.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{
		logger:        baseLogger,
		level:         logger.Warn,
		slowThreshold: defaultSlowQueryThreshold,
	}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Env.Log.SlowQuery > 0 {
		l.slowThreshold = cfg.Env.Log.SlowQuery
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) log(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, attrs ...slog.Attr) {
	if l.logger == nil || l.level < threshold {
		return
	}

	deliverycontext.GetLoggerOrDefault(ctx, l.logger).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Info, slog.LevelInfo, "GORM info", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Warn, slog.LevelWarn, "GORM warn", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Error, slog.LevelError, "GORM error", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	query := func() []slog.Attr {
		sql, rows := sqlAndRows()

		return []slog.Attr{
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		}
	}

	switch {
	case err != nil && expectedQueryError(err):
		// Missing rows and unique violations are answered as 404/400 by the repositories.
		l.log(ctx, logger.Info, slog.LevelDebug, "GORM query rejected", append(query(), slog.String("error", err.Error()))...)
	case err != nil:
		l.log(ctx, logger.Error, slog.LevelError, "GORM query failed", append(query(), slog.String("error", err.Error()))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		l.log(ctx, logger.Warn, slog.LevelWarn, "GORM slow query", append(query(), slog.Duration("slowThreshold", l.slowThreshold))...)
	default:
		l.log(ctx, logger.Info, slog.LevelInfo, "GORM query", query()...)
	}
}

func expectedQueryError(err error) bool {
	return errors.IsAny(err, gorm.ErrRecordNotFound, gorm.ErrDuplicatedKey) || isUniqueConstraintViolation(err)
}
