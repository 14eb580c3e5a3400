package middleware

import (
	"net/http"
	"strings"

	"verifiedtutors/internal/domain/entity"
	"verifiedtutors/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		// Reset tokens open the password reset endpoint only, never the API.
		if claims.Type != service.TokenTypeAccess {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token type")
		}

		if claims.UserID == uuid.Nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "User ID missing from token")
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, entity.Role(claims.Role))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has one of
// the given roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleVal := c.Get(ContextKeyRole)
			role, ok := roleVal.(entity.Role)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Permission denied: role information missing")
			}

			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "Permission denied: require '"+rolesLabel(roles)+"' role")
		}
	}
}

func rolesLabel(roles []entity.Role) string {
	labels := make([]string, 0, len(roles))
	for _, r := range roles {
		labels = append(labels, r.String())
	}

	return strings.Join(labels, "' or '")
}

// UserID extracts the authenticated user's ID from the echo context.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return id, ok
}

// UserRole extracts the authenticated user's role from the echo context.
func UserRole(c echo.Context) entity.Role {
	role, _ := c.Get(ContextKeyRole).(entity.Role)

	return role
}
