package handler

import (
	"net/http"
	"testing"

	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"
	mockUsecase "cafeteria/internal/mocks/usecase"
	"cafeteria/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProductHandler(t *testing.T) (*ProductHandler, *mockUsecase.MockProductUsecase) {
	productUC := mockUsecase.NewMockProductUsecase(t)

	return NewProductHandler(ProductHandlerParams{ProductUC: productUC, Logger: newDiscardLogger()}), productUC
}

func newTestProductView(t *testing.T, stock int) *usecase.ProductView {
	t.Helper()

	product, err := entity.NewProduct(entity.MustWord("Cappuccino"), entity.MustWord("Milk foam coffee"),
		decimal.RequireFromString("2.5"), uuid.New(), "")
	require.NoError(t, err)

	return &usecase.ProductView{Product: product, StockQuantity: stock}
}

func TestProductHandler_CreateProduct(t *testing.T) {
	t.Run("with initial stock", func(t *testing.T) {
		h, productUC := newTestProductHandler(t)
		categoryID := uuid.New()
		view := newTestProductView(t, 75)
		productUC.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(in usecase.CreateProductInput) bool {
			return in.Name == "Cappuccino" &&
				in.Price.Equal(decimal.RequireFromString("2.50")) &&
				in.CategoryID == categoryID &&
				in.InitialStock != nil && *in.InitialStock == 75
		})).Return(view, nil)

		rec := serve(h.CreateProduct, testRequest{
			method: http.MethodPost,
			route:  "/api/products",
			target: "/api/products",
			body:   `{"name":"Cappuccino","description":"Milk foam coffee","price":"2.50","categoryId":"` + categoryID.String() + `","stockQuantity":75}`,
			userID: uuid.New(),
			roles:  entity.Roles{entity.RoleUserAdmin},
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		got := decodeData[ProductResponse](t, rec)
		assert.Equal(t, "2.50", got.Price)
		assert.Equal(t, 75, got.StockQuantity)
	})

	t.Run("missing price", func(t *testing.T) {
		h, _ := newTestProductHandler(t)

		rec := serve(h.CreateProduct, testRequest{
			method: http.MethodPost,
			route:  "/api/products",
			target: "/api/products",
			body:   `{"name":"Cappuccino","description":"Milk foam coffee","categoryId":"` + uuid.NewString() + `"}`,
			userID: uuid.New(),
			roles:  entity.Roles{entity.RoleUserAdmin},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})
}

func TestProductHandler_SearchProducts(t *testing.T) {
	t.Run("passes filters", func(t *testing.T) {
		h, productUC := newTestProductHandler(t)
		minPrice := decimal.RequireFromString("1")
		minStock := 5
		active := true
		productUC.EXPECT().SearchProducts(mock.Anything, mock.MatchedBy(func(q usecase.ProductSearchQuery) bool {
			return q.Name == "cof" &&
				q.Active != nil && *q.Active == active &&
				q.MinPrice != nil && q.MinPrice.Equal(minPrice) &&
				q.MaxPrice == nil &&
				q.MinStock != nil && *q.MinStock == minStock
		}), entity.PageRequest{Page: 0, Size: 100}).
			Return(entity.NewPage([]*usecase.ProductView{newTestProductView(t, 5)}, entity.PageRequest{Size: 100}, 1), nil)

		rec := serve(h.SearchProducts, testRequest{
			method: http.MethodGet,
			route:  "/api/products",
			target: "/api/products?name=cof&active=true&minPrice=1&minStock=5&size=500",
			userID: uuid.New(),
			roles:  entity.Roles{entity.RoleCustomer},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		page := decodeData[map[string]any](t, rec)
		assert.EqualValues(t, 100, page["size"])
		assert.EqualValues(t, 1, page["totalElements"])
	})

	t.Run("bad boolean", func(t *testing.T) {
		h, _ := newTestProductHandler(t)

		rec := serve(h.SearchProducts, testRequest{
			method: http.MethodGet,
			route:  "/api/products",
			target: "/api/products?active=maybe",
			userID: uuid.New(),
			roles:  entity.Roles{entity.RoleCustomer},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ARGUMENT", errorCode(t, rec))
	})
}

func TestProductHandler_UpdateStock(t *testing.T) {
	t.Run("sets quantity", func(t *testing.T) {
		h, productUC := newTestProductHandler(t)
		view := newTestProductView(t, 40)
		productUC.EXPECT().UpdateStock(mock.Anything, view.Product.ID, 40).Return(view, nil)

		rec := serve(h.UpdateStock, testRequest{
			method: http.MethodPatch,
			route:  "/api/products/:id/stock",
			target: "/api/products/" + view.Product.ID.String() + "/stock?quantity=40",
			userID: uuid.New(),
			roles:  entity.Roles{entity.RoleSupplier},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 40, decodeData[ProductResponse](t, rec).StockQuantity)
	})

	t.Run("quantity is required", func(t *testing.T) {
		h, _ := newTestProductHandler(t)

		rec := serve(h.UpdateStock, testRequest{
			method: http.MethodPatch,
			route:  "/api/products/:id/stock",
			target: "/api/products/" + uuid.NewString() + "/stock",
			userID: uuid.New(),
			roles:  entity.Roles{entity.RoleSupplier},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	h, productUC := newTestProductHandler(t)
	id := uuid.New()
	productUC.EXPECT().GetProduct(mock.Anything, id).Return(nil, domainerrors.ErrProductNotFound)

	rec := serve(h.GetProduct, testRequest{
		method: http.MethodGet,
		route:  "/api/products/:id",
		target: "/api/products/" + id.String(),
		userID: uuid.New(),
		roles:  entity.Roles{entity.RoleCustomer},
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", errorCode(t, rec))
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	h, productUC := newTestProductHandler(t)
	id := uuid.New()
	productUC.EXPECT().DeleteProduct(mock.Anything, id).Return(nil)

	rec := serve(h.DeleteProduct, testRequest{
		method: http.MethodDelete,
		route:  "/api/products/:id",
		target: "/api/products/" + id.String(),
		userID: uuid.New(),
		roles:  entity.Roles{entity.RoleUserAdmin},
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestProductHandler_InvalidID(t *testing.T) {
	h, _ := newTestProductHandler(t)

	rec := serve(h.GetProduct, testRequest{
		method: http.MethodGet,
		route:  "/api/products/:id",
		target: "/api/products/42",
		userID: uuid.New(),
		roles:  entity.Roles{entity.RoleCustomer},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
