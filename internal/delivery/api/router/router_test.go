package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cafeteria/internal/delivery/api/middleware"
	"cafeteria/internal/delivery/api/router/handler"
	"cafeteria/internal/delivery/api/validator"
	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/domain/service"
	mockService "cafeteria/internal/mocks/service"
	mockUsecase "cafeteria/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testTokens = map[string]entity.Role{
	"customer-token": entity.RoleCustomer,
	"supplier-token": entity.RoleSupplier,
	"admin-token":    entity.RoleUserAdmin,
}

func newTestEcho(t *testing.T) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(mock.Anything).
		RunAndReturn(func(token string) (*service.Claims, error) {
			role, ok := testTokens[token]
			if !ok {
				return nil, domainerrors.ErrInvalidToken
			}

			return &service.Claims{UserID: uuid.New(), Roles: []string{role.String()}, Type: service.TokenTypeAccess}, nil
		}).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mockUsecase.NewMockAuthUsecase(t), Logger: logger}),
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			UserAdminUC: mockUsecase.NewMockUserAdminUsecase(t),
			AuthUC:      mockUsecase.NewMockAuthUsecase(t),
			Logger:      logger,
		}),
		CategoryHandler:  handler.NewCategoryHandler(handler.CategoryHandlerParams{CategoryUC: mockUsecase.NewMockCategoryUsecase(t), Logger: logger}),
		ProductHandler:   handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: mockUsecase.NewMockProductUsecase(t), Logger: logger}),
		InventoryHandler: handler.NewInventoryHandler(handler.InventoryHandlerParams{InventoryUC: mockUsecase.NewMockInventoryUsecase(t), Logger: logger}),
		OrderHandler:     handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: mockUsecase.NewMockOrderUsecase(t), Logger: logger}),
		AuthMiddleware:   middleware.NewAuthMiddleware(tokenSvc),
	}).RegisterRoutes(e)

	return e
}

// Every case is rejected before a use case is reached, so the use case mocks
// carry no expectations.
func TestRouter_Guards(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name   string
		method string
		target string
		token  string
		want   int
	}{
		{name: "health is public", method: http.MethodGet, target: "/health", want: http.StatusOK},
		{name: "catalog needs a token", method: http.MethodGet, target: "/api/products", want: http.StatusUnauthorized},
		{name: "unknown token", method: http.MethodGet, target: "/api/products", token: "forged", want: http.StatusUnauthorized},
		{name: "customer cannot see inventory", method: http.MethodGet, target: "/api/inventory", token: "customer-token", want: http.StatusForbidden},
		{name: "customer cannot list the kitchen queue", method: http.MethodGet, target: "/api/orders/pending", token: "customer-token", want: http.StatusForbidden},
		{name: "customer cannot create categories", method: http.MethodPost, target: "/api/categories", token: "customer-token", want: http.StatusForbidden},
		{name: "supplier cannot administer users", method: http.MethodGet, target: "/api/admin/user/check-username", token: "supplier-token", want: http.StatusForbidden},
		{name: "supplier cannot delete orders", method: http.MethodDelete, target: "/api/orders/" + id, token: "supplier-token", want: http.StatusForbidden},
		{name: "supplier reaches stock update", method: http.MethodPatch, target: "/api/products/" + id + "/stock", token: "supplier-token", want: http.StatusBadRequest},
		{name: "admin reaches status listing", method: http.MethodGet, target: "/api/orders/status/bogus", token: "admin-token", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t)
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.token != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}
