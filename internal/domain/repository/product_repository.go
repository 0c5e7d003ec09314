package repository

import (
	"context"
	"errors"

	"cafeteria/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductSearchCriteria filters products. Nil and empty fields are ignored.
// Stock bounds are evaluated against the product's inventory, a product
// without inventory counting as zero.
type ProductSearchCriteria struct {
	Name       string
	CategoryID *uuid.UUID
	Active     *bool
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	MinStock   *int
	StockBelow *int
}

// ProductRepository persists products.
type ProductRepository interface {
	// FindByID retrieves a product by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByName retrieves a product by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	// Search returns a page of products matching criteria, ordered by name.
	Search(ctx context.Context, criteria ProductSearchCriteria, page entity.PageRequest) (entity.Page[*entity.Product], error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update saves every mutable field of product.
	Update(ctx context.Context, product *entity.Product) error
}
