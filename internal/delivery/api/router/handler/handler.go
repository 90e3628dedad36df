// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tuition/internal/delivery/api/middleware"
	"tuition/internal/delivery/api/response"
	"tuition/internal/delivery/api/validator"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/domain/entity"
	"tuition/internal/errors"
)

// queryKey selects the config an admin or public request works on.
const queryKey = "key"

// bind decodes the request into req and runs its validate tags.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request")
	}

	return validate(c, req)
}

// bindBody decodes only the request body, for bodies that are JSON arrays.
func bindBody(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return nil
}

func validate(c echo.Context, req any) error {
	if err := c.Validate(req); err != nil {
		if fields, ok := validator.FieldErrors(err); ok {
			return domainerrors.ErrValidationFailed.WithFields("request validation failed", fields)
		}

		return errors.WithStack(err)
	}

	return nil
}

// bindListQuery reads the paging parameters shared by list endpoints.
func bindListQuery(c echo.Context) (entity.ListQuery, error) {
	var query entity.ListQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return query, domainerrors.ErrValidationFailed.WithDetails("invalid paging parameters")
	}

	return query, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// currentUser returns the authenticated caller or renders 401.
func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized.WithDetails("invalid user ID in token")
	}

	return userID, nil
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
