package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"tuition/internal/delivery/api/response"
	"tuition/internal/usecase"
)

// TeacherHandlerParams holds dependencies for TeacherHandler, injected by Fx.
type TeacherHandlerParams struct {
	fx.In

	TeacherProfileUC usecase.TeacherProfileUsecase
	Logger           *slog.Logger
}

// TeacherHandler covers teacher onboarding, admin review and share codes.
type TeacherHandler struct {
	teacherProfileUC usecase.TeacherProfileUsecase
	logger           *slog.Logger
}

// NewTeacherHandler is the constructor for TeacherHandler
func NewTeacherHandler(params TeacherHandlerParams) *TeacherHandler {
	return &TeacherHandler{
		teacherProfileUC: params.TeacherProfileUC,
		logger:           params.Logger,
	}
}

// CreateProfile creates the caller's teacher profile.
func (h *TeacherHandler) CreateProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.CreateTeacherProfileInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.teacherProfileUC.CreateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// GetProfile returns the caller's teacher profile.
func (h *TeacherHandler) GetProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.teacherProfileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// ListProfiles pages through teacher profiles for review.
func (h *TeacherHandler) ListProfiles(c echo.Context) error {
	query, err := bindListQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.teacherProfileUC.ListProfiles(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// ApproveProfile approves a teacher.
func (h *TeacherHandler) ApproveProfile(c echo.Context) error {
	adminID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	teacherID, err := uuidParam(c, "userId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.teacherProfileUC.ApproveProfile(c.Request().Context(), adminID, teacherID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "teacher approved", profile)
}

// RejectProfile rejects a teacher with a reason shown to them.
func (h *TeacherHandler) RejectProfile(c echo.Context) error {
	adminID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	teacherID, err := uuidParam(c, "userId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.RejectTeacherInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.teacherProfileUC.RejectProfile(c.Request().Context(), adminID, teacherID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "teacher rejected", profile)
}

// GetShareQRCode renders a PNG linking to the teacher's public profile.
func (h *TeacherHandler) GetShareQRCode(c echo.Context) error {
	teacherID, err := uuidParam(c, "userId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.teacherProfileUC.GetShareQRCode(c.Request().Context(), teacherID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveShareQRCode returns the approved teacher a scanned QR code links to.
func (h *TeacherHandler) ResolveShareQRCode(c echo.Context) error {
	var req usecase.ResolveQRCodeInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.teacherProfileUC.ResolveShareQRCode(c.Request().Context(), req.Data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}
