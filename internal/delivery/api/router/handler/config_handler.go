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

// ConfigHandlerParams holds dependencies for ConfigHandler, injected by Fx.
type ConfigHandlerParams struct {
	fx.In

	ConfigUC usecase.ConfigUsecase
	Logger   *slog.Logger
}

// ConfigHandler serves the admin configuration store and its public projection.
type ConfigHandler struct {
	configUC usecase.ConfigUsecase
	logger   *slog.Logger
}

// NewConfigHandler is the constructor for ConfigHandler
func NewConfigHandler(params ConfigHandlerParams) *ConfigHandler {
	return &ConfigHandler{
		configUC: params.ConfigUC,
		logger:   params.Logger,
	}
}

// TaxonomyItemRequest is the body of a taxonomy create request.
type TaxonomyItemRequest struct {
	Code        string         `json:"code" validate:"required,max=64"`
	Name        string         `json:"name" validate:"required,max=255"`
	Description string         `json:"description" validate:"max=2000"`
	Active      *bool          `json:"active"`
	Order       int            `json:"order" validate:"gte=0"`
	Attributes  map[string]any `json:"attributes"`
}

func (r *TaxonomyItemRequest) toEntity(kind entity.TaxonomyKind) *entity.TaxonomyItem {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return &entity.TaxonomyItem{
		Kind:        kind,
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
		Active:      active,
		Order:       r.Order,
		Attributes:  r.Attributes,
	}
}

// GetConfig returns the full config, seeding it on first access.
func (h *ConfigHandler) GetConfig(c echo.Context) error {
	cfg, err := h.configUC.GetConfig(c.Request().Context(), c.QueryParam(queryKey))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cfg)
}

// UpdateConfig applies a shallow partial update.
func (h *ConfigHandler) UpdateConfig(c echo.Context) error {
	var req usecase.UpdateConfigInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	cfg, err := h.configUC.UpdateConfig(c.Request().Context(), c.QueryParam(queryKey), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cfg)
}

// GetPublicConfig returns the active and visible projection. No authentication.
func (h *ConfigHandler) GetPublicConfig(c echo.Context) error {
	cfg, err := h.configUC.GetPublicConfig(c.Request().Context(), c.QueryParam(queryKey))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cfg)
}

// AddTaxonomyItem returns the create handler for one taxonomy kind.
func (h *ConfigHandler) AddTaxonomyItem(kind entity.TaxonomyKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req TaxonomyItemRequest
		if err := bind(c, &req); err != nil {
			return response.HandleAppError(c, err)
		}

		item, err := h.configUC.AddTaxonomyItem(c.Request().Context(), c.QueryParam(queryKey), kind, req.toEntity(kind))
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusCreated, item)
	}
}

// UpdateTaxonomyItem returns the update handler for one taxonomy kind.
func (h *ConfigHandler) UpdateTaxonomyItem(kind entity.TaxonomyKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req usecase.UpdateTaxonomyItemInput
		if err := bind(c, &req); err != nil {
			return response.HandleAppError(c, err)
		}

		item, err := h.configUC.UpdateTaxonomyItem(c.Request().Context(), c.QueryParam(queryKey), kind, c.Param("code"), &req)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, item)
	}
}

// RemoveTaxonomyItem returns the delete handler for one taxonomy kind.
// Removing an absent code succeeds.
func (h *ConfigHandler) RemoveTaxonomyItem(kind entity.TaxonomyKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		code := c.Param("code")
		if err := h.configUC.RemoveTaxonomyItem(c.Request().Context(), c.QueryParam(queryKey), kind, code); err != nil {
			return response.HandleAppError(c, err)
		}

		return response.SuccessWithMessage(c, http.StatusOK, string(kind)+" removed", map[string]string{"code": code})
	}
}

// AddProfileSection creates a profile section.
func (h *ConfigHandler) AddProfileSection(c echo.Context) error {
	var req entity.ProfileSection
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	section, err := h.configUC.AddProfileSection(c.Request().Context(), c.QueryParam(queryKey), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, section)
}

// UpdateProfileSection merges into a profile section.
func (h *ConfigHandler) UpdateProfileSection(c echo.Context) error {
	var req usecase.UpdateProfileSectionInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	section, err := h.configUC.UpdateProfileSection(c.Request().Context(), c.QueryParam(queryKey), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, section)
}

// RemoveProfileSection deletes a profile section. Removing an absent id succeeds.
func (h *ConfigHandler) RemoveProfileSection(c echo.Context) error {
	id := c.Param("id")
	if err := h.configUC.RemoveProfileSection(c.Request().Context(), c.QueryParam(queryKey), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "profile section removed", map[string]string{"id": id})
}

// ReorderProfileSections takes a JSON array of {id, order}.
func (h *ConfigHandler) ReorderProfileSections(c echo.Context) error {
	var orders []entity.SectionOrder
	if err := bindBody(c, &orders); err != nil {
		return response.HandleAppError(c, err)
	}
	for i := range orders {
		if err := validate(c, &orders[i]); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	sections, err := h.configUC.ReorderProfileSections(c.Request().Context(), c.QueryParam(queryKey), orders)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sections)
}

// AddProfileTemplate creates a profile template.
func (h *ConfigHandler) AddProfileTemplate(c echo.Context) error {
	var req entity.ProfileTemplate
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	template, err := h.configUC.AddProfileTemplate(c.Request().Context(), c.QueryParam(queryKey), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, template)
}

// GetProfileTemplate returns one template of the config.
func (h *ConfigHandler) GetProfileTemplate(c echo.Context) error {
	template, err := h.configUC.GetProfileTemplate(c.Request().Context(), c.QueryParam(queryKey), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, template)
}

// UpdateProfileTemplate merges into a profile template.
func (h *ConfigHandler) UpdateProfileTemplate(c echo.Context) error {
	var req usecase.UpdateProfileTemplateInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	template, err := h.configUC.UpdateProfileTemplate(c.Request().Context(), c.QueryParam(queryKey), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, template)
}

// RemoveProfileTemplate deletes a profile template. Teachers who applied it keep their layout.
func (h *ConfigHandler) RemoveProfileTemplate(c echo.Context) error {
	id := c.Param("id")
	if err := h.configUC.RemoveProfileTemplate(c.Request().Context(), c.QueryParam(queryKey), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "profile template removed", map[string]string{"id": id})
}
