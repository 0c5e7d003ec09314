package middleware

import (
	"strings"

	deliverycontext "cafeteria/internal/delivery/context"
	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
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

// Authenticate validates the bearer access token and stores the caller's id
// and roles on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrInvalidToken.WithDetails("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrInvalidToken.WithDetails("token must be a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Type != service.TokenTypeAccess || claims.UserID == uuid.Nil {
			return domainerrors.ErrInvalidToken
		}

		SetIdentity(c, claims.UserID, entity.RolesFromStrings(claims.Roles))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithUserID(c.Request().Context(), claims.UserID)))

		return next(c)
	}
}

// RequireRole only lets callers holding role through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return m.RequireAnyRole(role)
}

// RequireAnyRole only lets callers holding at least one of roles through.
func (m *AuthMiddleware) RequireAnyRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			granted, ok := GetRoles(c)
			if !ok || !granted.ContainsAny(roles...) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// RequireStaff lets USER_ADMIN and SUPPLIER callers through.
func (m *AuthMiddleware) RequireStaff() echo.MiddlewareFunc {
	return m.RequireAnyRole(entity.RoleUserAdmin, entity.RoleSupplier)
}

// SetIdentity records the authenticated caller on the echo context.
func SetIdentity(c echo.Context, userID uuid.UUID, roles entity.Roles) {
	c.Set(contextKeyUserID, userID)
	c.Set(contextKeyRoles, roles)
}

// GetUserID returns the authenticated caller.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetRoles returns the roles of the authenticated caller.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}
