package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "tuition/internal/delivery/context"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/errors"
)

// CodeOK is the business code of every successful response.
const CodeOK = "OK"

// Envelope is the body of every JSON response.
type Envelope struct {
	Success bool       `json:"success"`
	Code    string     `json:"code"`
	Message string     `json:"message,omitempty"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Code:    CodeOK,
		Data:    data,
		Meta:    meta(c),
	})
}

// SuccessWithMessage returns a successful response with a human readable message
func SuccessWithMessage(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Code:    CodeOK,
		Message: message,
		Data:    data,
		Meta:    meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = nil
	}

	return c.JSON(statusCode, Envelope{
		Success: false,
		Code:    errorCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders domain errors. Anything else is returned with a
// stack so the central error handler logs it as a 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), errorDetails(appErr))
	}

	return errors.WithStack(err)
}

// errorDetails prefers structured field errors over the plain detail string.
func errorDetails(appErr domainerrors.AppError) any {
	var fieldErr *domainerrors.FieldErrorsError
	if errors.As(appErr, &fieldErr) && fieldErr.Fields() != nil {
		return fieldErr.Fields()
	}
	if details := appErr.Details(); details != "" {
		return details
	}

	return nil
}
