package repository

import (
	"context"
	"errors"

	"cafeteria/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrInventoryNotFound is returned when an inventory record does not exist.
	ErrInventoryNotFound = errors.New("inventory not found")

	// ErrInventoryAlreadyExists is returned when a product already has an inventory record.
	ErrInventoryAlreadyExists = errors.New("inventory already exists")
)

// InventoryFilter narrows inventory listings. All set conditions must hold.
type InventoryFilter struct {
	Active         *bool
	BelowMinimum   bool
	AtReorderPoint bool
	OutOfStock     bool
	AboveMaximum   bool
	MinQuantity    *int
	MaxQuantity    *int
}

// InventoryRepository persists inventory records.
type InventoryRepository interface {
	// FindByID retrieves an inventory record by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error)

	// FindByProductID retrieves the inventory record of a product.
	FindByProductID(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error)

	// FindByProductIDs returns the records that exist for the given products.
	FindByProductIDs(ctx context.Context, productIDs []uuid.UUID) ([]*entity.Inventory, error)

	// LockByID is FindByID taking a row lock until the surrounding
	// transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error)

	// LockByProductIDs is FindByProductIDs taking row locks until the
	// surrounding transaction ends.
	LockByProductIDs(ctx context.Context, productIDs []uuid.UUID) ([]*entity.Inventory, error)

	// Find lists records matching filter, ordered by current quantity.
	Find(ctx context.Context, filter InventoryFilter) ([]*entity.Inventory, error)

	// Count counts records matching filter.
	Count(ctx context.Context, filter InventoryFilter) (int64, error)

	// Create persists a new inventory record.
	Create(ctx context.Context, inventory *entity.Inventory) error

	// Update saves quantities, levels and activation of each record.
	Update(ctx context.Context, inventories ...*entity.Inventory) error

	// Delete removes an inventory record.
	Delete(ctx context.Context, id uuid.UUID) error
}
