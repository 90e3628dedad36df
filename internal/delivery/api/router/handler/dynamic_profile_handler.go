package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"tuition/internal/delivery/api/response"
	"tuition/internal/domain/entity"
	"tuition/internal/usecase"
)

// DynamicProfileHandlerParams holds dependencies for DynamicProfileHandler, injected by Fx.
type DynamicProfileHandlerParams struct {
	fx.In

	DynamicProfileUC usecase.DynamicProfileUsecase
	Logger           *slog.Logger
}

// DynamicProfileHandler serves the authenticated teacher's dynamic profile.
type DynamicProfileHandler struct {
	dynamicProfileUC usecase.DynamicProfileUsecase
	logger           *slog.Logger
}

// NewDynamicProfileHandler is the constructor for DynamicProfileHandler
func NewDynamicProfileHandler(params DynamicProfileHandlerParams) *DynamicProfileHandler {
	return &DynamicProfileHandler{
		dynamicProfileUC: params.DynamicProfileUC,
		logger:           params.Logger,
	}
}

// UpdateLayoutRequest is the body of a layout update.
type UpdateLayoutRequest struct {
	ProfileLayout []entity.LayoutEntry `json:"profileLayout" validate:"required,dive"`
}

// GetDynamicProfile returns the teacher's profile together with the public config.
func (h *DynamicProfileHandler) GetDynamicProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.dynamicProfileUC.GetDynamicProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// UpdateDynamicProfile merges section data and custom fields.
func (h *DynamicProfileHandler) UpdateDynamicProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.UpdateDynamicProfileInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.dynamicProfileUC.UpdateDynamicProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// EnableDynamicProfile switches the teacher to the dynamic profile.
func (h *DynamicProfileHandler) EnableDynamicProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.dynamicProfileUC.EnableDynamicProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "dynamic profile enabled", profile)
}

// DisableDynamicProfile switches the teacher back to legacy fields.
func (h *DynamicProfileHandler) DisableDynamicProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.dynamicProfileUC.DisableDynamicProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "dynamic profile disabled", profile)
}

// UpdateProfileLayout replaces the teacher's section placement.
func (h *DynamicProfileHandler) UpdateProfileLayout(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateLayoutRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.dynamicProfileUC.UpdateProfileLayout(c.Request().Context(), userID, req.ProfileLayout)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetProfileTemplate returns a template of the default config.
func (h *DynamicProfileHandler) GetProfileTemplate(c echo.Context) error {
	template, err := h.dynamicProfileUC.GetProfileTemplate(c.Request().Context(), c.Param("templateId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, template)
}

// ApplyProfileTemplate copies a template's layout into the teacher's profile.
func (h *DynamicProfileHandler) ApplyProfileTemplate(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.dynamicProfileUC.ApplyProfileTemplate(c.Request().Context(), userID, c.Param("templateId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "template applied", profile)
}

// GetProfileForm returns the render plan of the teacher's effective sections.
func (h *DynamicProfileHandler) GetProfileForm(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	schema, err := h.dynamicProfileUC.GetProfileForm(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schema)
}

// GetProfileCompleteness reports the share of required fields filled in.
func (h *DynamicProfileHandler) GetProfileCompleteness(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	completeness, err := h.dynamicProfileUC.GetProfileCompleteness(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, completeness)
}
