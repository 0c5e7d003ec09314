package handler

import (
	"log/slog"
	"net/http"

	"cafeteria/internal/delivery/api/response"
	"cafeteria/internal/domain/entity"
	"cafeteria/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the product catalog.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

type CreateProductRequest struct {
	Name          string           `json:"name" validate:"required,min=2,max=100"`
	Description   string           `json:"description" validate:"required,min=2,max=500"`
	Price         *decimal.Decimal `json:"price" validate:"required"`
	CategoryID    uuid.UUID        `json:"categoryId" validate:"required"`
	ImageURL      string           `json:"imageUrl" validate:"omitempty,url,max=255"`
	StockQuantity *int             `json:"stockQuantity" validate:"omitempty,min=0,max=9999"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string          `json:"description" validate:"omitempty,min=2,max=500"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *uuid.UUID       `json:"categoryId"`
	ImageURL    *string          `json:"imageUrl" validate:"omitempty,max=255"`
	Active      *bool            `json:"active"`
}

func toProductResponses(page entity.Page[*usecase.ProductView]) entity.Page[ProductResponse] {
	return entity.MapPage(page, newProductResponse)
}

// CreateProduct creates a product and, with stockQuantity, its inventory.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.productUC.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        *req.Price,
		CategoryID:   req.CategoryID,
		ImageURL:     req.ImageURL,
		InitialStock: req.StockQuantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProductResponse(view))
}

// SearchProducts pages through products matching the query filters.
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return errors.WithStack(err)
	}

	query := usecase.ProductSearchQuery{Name: c.QueryParam("name")}
	if query.CategoryID, err = queryUUID(c, "categoryId"); err != nil {
		return errors.WithStack(err)
	}
	if query.Active, err = queryBool(c, "active"); err != nil {
		return errors.WithStack(err)
	}
	if query.MinPrice, err = queryDecimal(c, "minPrice"); err != nil {
		return errors.WithStack(err)
	}
	if query.MaxPrice, err = queryDecimal(c, "maxPrice"); err != nil {
		return errors.WithStack(err)
	}
	if query.MinStock, err = queryInt(c, "minStock"); err != nil {
		return errors.WithStack(err)
	}

	products, err := h.productUC.SearchProducts(c.Request().Context(), query, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, toProductResponses(products))
}

// ListActiveProducts pages through active products.
func (h *ProductHandler) ListActiveProducts(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return errors.WithStack(err)
	}

	products, err := h.productUC.ListActiveProducts(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, toProductResponses(products))
}

// ListProductsByCategory pages through the products of :categoryId.
func (h *ProductHandler) ListProductsByCategory(c echo.Context) error {
	categoryID, err := pathID(c, "categoryId")
	if err != nil {
		return errors.WithStack(err)
	}

	page, err := pageRequest(c)
	if err != nil {
		return errors.WithStack(err)
	}

	products, err := h.productUC.ListProductsByCategory(c.Request().Context(), categoryID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, toProductResponses(products))
}

// ListLowStockProducts pages through products running out of stock.
func (h *ProductHandler) ListLowStockProducts(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return errors.WithStack(err)
	}

	products, err := h.productUC.ListLowStockProducts(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, toProductResponses(products))
}

// GetProduct returns one product with its stock.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	view, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(view))
}

// UpdateProduct edits a product.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.productUC.UpdateProduct(c.Request().Context(), id, usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		Active:      req.Active,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(view))
}

// UpdateStock sets the product stock to ?quantity.
func (h *ProductHandler) UpdateStock(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	quantity, err := requiredQueryInt(c, "quantity")
	if err != nil {
		return errors.WithStack(err)
	}

	view, err := h.productUC.UpdateStock(c.Request().Context(), id, quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(view))
}

// DeleteProduct deactivates a product.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
