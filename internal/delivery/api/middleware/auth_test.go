package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/domain/service"
	mockService "cafeteria/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authorization string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("valid access token", func(t *testing.T) {
		tokenSvc := mockService.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{
			UserID: userID,
			Roles:  []string{"CUSTOMER", "UNKNOWN"},
			Type:   service.TokenTypeAccess,
		}, nil)

		c := newAuthContext("Bearer good")
		err := NewAuthMiddleware(tokenSvc).Authenticate(okHandler)(c)

		require.NoError(t, err)
		gotID, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, userID, gotID)
		roles, ok := GetRoles(c)
		require.True(t, ok)
		assert.Equal(t, entity.Roles{entity.RoleCustomer}, roles)
	})

	t.Run("missing header", func(t *testing.T) {
		tokenSvc := mockService.NewMockTokenService(t)

		err := NewAuthMiddleware(tokenSvc).Authenticate(okHandler)(newAuthContext(""))

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})

	t.Run("not a bearer token", func(t *testing.T) {
		tokenSvc := mockService.NewMockTokenService(t)

		err := NewAuthMiddleware(tokenSvc).Authenticate(okHandler)(newAuthContext("Basic abc"))

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})

	t.Run("refresh token is rejected", func(t *testing.T) {
		tokenSvc := mockService.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("refresh").Return(&service.Claims{
			UserID: userID,
			Type:   service.TokenTypeRefresh,
		}, nil)

		err := NewAuthMiddleware(tokenSvc).Authenticate(okHandler)(newAuthContext("Bearer refresh"))

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})

	t.Run("invalid token", func(t *testing.T) {
		tokenSvc := mockService.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))

		err := NewAuthMiddleware(tokenSvc).Authenticate(okHandler)(newAuthContext("Bearer bad"))

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})
}

func TestAuthMiddleware_RequireAnyRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	tests := []struct {
		name    string
		roles   entity.Roles
		set     bool
		allowed bool
	}{
		{name: "admin passes staff check", roles: entity.Roles{entity.RoleUserAdmin}, set: true, allowed: true},
		{name: "supplier passes staff check", roles: entity.Roles{entity.RoleSupplier}, set: true, allowed: true},
		{name: "customer is forbidden", roles: entity.Roles{entity.RoleCustomer}, set: true, allowed: false},
		{name: "no identity is forbidden", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newAuthContext("")
			if tt.set {
				SetIdentity(c, uuid.New(), tt.roles)
			}

			err := m.RequireStaff()(okHandler)(c)

			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	c := newAuthContext("")
	SetIdentity(c, uuid.New(), entity.Roles{entity.RoleSupplier})

	err := m.RequireRole(entity.RoleUserAdmin)(okHandler)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
