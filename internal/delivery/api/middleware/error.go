package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"tuition/internal/delivery/api/response"
	"tuition/internal/delivery/api/validator"
	deliverycontext "tuition/internal/delivery/context"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}
		_ = response.HandleAppError(c, appErr)

		return
	}

	if fields, ok := validator.FieldErrors(err); ok {
		_ = response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), fields)

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.logUnhandled(c, err)

	// For 500 errors, do not expose internal error details to the client
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
