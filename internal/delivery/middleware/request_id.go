package middleware

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	deliverycontext "tuition/internal/delivery/context"
)

// maxRequestIDLength bounds client supplied ids before they reach logs and events.
const maxRequestIDLength = 128

// RequestIDMiddleware assigns every request an id and a logger tagged with it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the caller's X-Request-Id when present, otherwise generates one.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := strings.TrimSpace(c.Request().Header.Get(deliverycontext.HeaderXRequestID))
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		// Usecases and event publishers read both from context.Context.
		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
