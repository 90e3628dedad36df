package errors

import (
	"net/http"

	"tuition/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is reports whether target carries the same business error code, so copies
// made by WithDetails still match the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Configuration errors
	ErrConfigNotFound = NewBaseError(
		http.StatusNotFound,
		"CONFIG_NOT_FOUND",
		"configuration not found",
		"",
	)

	ErrTaxonomyItemNotFound = NewBaseError(
		http.StatusNotFound,
		"TAXONOMY_ITEM_NOT_FOUND",
		"taxonomy item not found",
		"",
	)

	ErrSectionNotFound = NewBaseError(
		http.StatusNotFound,
		"SECTION_NOT_FOUND",
		"profile section not found",
		"",
	)

	ErrTemplateNotFound = NewBaseError(
		http.StatusNotFound,
		"TEMPLATE_NOT_FOUND",
		"profile template not found",
		"",
	)

	ErrDuplicateKey = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_KEY",
		"an item with the same key already exists",
		"",
	)

	ErrInvalidEnum = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ENUM",
		"value is not one of the allowed options",
		"",
	)

	ErrLimitExceeded = NewBaseError(
		http.StatusBadRequest,
		"LIMIT_EXCEEDED",
		"configured limit exceeded",
		"",
	)

	ErrVersionConflict = NewBaseError(
		http.StatusConflict,
		"VERSION_CONFLICT",
		"the resource was modified by another request, reload and retry",
		"",
	)

	// Teacher profile errors
	ErrTeacherProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"TEACHER_PROFILE_NOT_FOUND",
		"teacher profile not found",
		"",
	)

	ErrTeacherProfileExists = NewBaseError(
		http.StatusConflict,
		"TEACHER_PROFILE_EXISTS",
		"teacher profile already exists",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"email is already registered",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"password is too weak",
		"",
	)

	// Notification errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"notification not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// FieldErrorsError carries per-field validation failures alongside a base error.
type FieldErrorsError struct {
	*BaseError
	fields any
}

// WithFields attaches structured field errors to a copy of the error.
func (e *BaseError) WithFields(details string, fields any) *FieldErrorsError {
	return &FieldErrorsError{
		BaseError: e.WithDetails(details),
		fields:    fields,
	}
}

// Fields returns the structured field errors.
func (e *FieldErrorsError) Fields() any {
	return e.fields
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap returns the underlying database error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
