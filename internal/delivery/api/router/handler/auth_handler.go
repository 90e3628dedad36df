package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"tuition/internal/delivery/api/middleware"
	"tuition/internal/delivery/api/response"
	"tuition/internal/usecase"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler handles registration and login.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Register creates a teacher or student account and returns an access token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req usecase.RegisterInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}

// Login exchanges credentials for an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// Me echoes the identity carried by the access token.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	roles, _ := middleware.GetRoles(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"userId": userID,
		"roles":  roles.ToStrings(),
	})
}
