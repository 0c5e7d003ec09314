package usecase

import (
	"context"

	"cafeteria/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines a new product. InitialStock, when set, creates
// the product's inventory record with default stock levels.
type CreateProductInput struct {
	Name         string
	Description  string
	Price        decimal.Decimal
	CategoryID   uuid.UUID
	ImageURL     string
	InitialStock *int
}

// UpdateProductInput lists the editable product fields. Nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	CategoryID  *uuid.UUID
	ImageURL    *string
	Active      *bool
}

// ProductSearchQuery filters products.
type ProductSearchQuery struct {
	Name       string
	CategoryID *uuid.UUID
	Active     *bool
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	MinStock   *int
}

// ProductView is a product with the quantity currently held in its inventory.
type ProductView struct {
	Product       *entity.Product `json:"product"`
	StockQuantity int             `json:"stockQuantity"`
}

// ProductUsecase manages the product catalog.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductView, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
	SearchProducts(ctx context.Context, query ProductSearchQuery, page entity.PageRequest) (entity.Page[*ProductView], error)
	ListActiveProducts(ctx context.Context, page entity.PageRequest) (entity.Page[*ProductView], error)
	ListProductsByCategory(ctx context.Context, categoryID uuid.UUID, page entity.PageRequest) (entity.Page[*ProductView], error)

	// ListLowStockProducts returns products holding fewer than entity.LowStockThreshold units.
	ListLowStockProducts(ctx context.Context, page entity.PageRequest) (entity.Page[*ProductView], error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductView, error)

	// UpdateStock sets the inventory quantity, creating the record when missing.
	UpdateStock(ctx context.Context, id uuid.UUID, quantity int) (*ProductView, error)

	// DeleteProduct deactivates the product.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
