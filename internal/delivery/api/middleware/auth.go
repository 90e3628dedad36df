package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tuition/internal/delivery/api/response"
	deliverycontext "tuition/internal/delivery/context"
	"tuition/internal/domain/entity"
	"tuition/internal/domain/service"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"

	bearerPrefix = "Bearer "
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and exposes the caller's
// id and roles to handlers and, through the request context, to usecases.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.UserID == uuid.Nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))

		ctx := deliverycontext.WithActorID(c.Request().Context(), claims.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole allows the request when the caller holds any of the roles.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			for _, role := range allowed {
				if roles.Contains(role) {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied")
		}
	}
}

// GetUserID returns the authenticated user's id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}
