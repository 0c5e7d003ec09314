package usecase

import (
	"context"

	"cafeteria/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateInventoryInput defines a new inventory record. Unset levels fall back
// to entity.DefaultStockLevels.
type CreateInventoryInput struct {
	ProductID         uuid.UUID
	CurrentQuantity   int
	MinimumStockLevel *int
	MaximumStockLevel *int
	ReorderPoint      *int
	ReorderQuantity   *int
}

// UpdateInventoryInput lists the editable levels. Nil fields are left unchanged.
type UpdateInventoryInput struct {
	CurrentQuantity   *int
	MinimumStockLevel *int
	MaximumStockLevel *int
	ReorderPoint      *int
	ReorderQuantity   *int
	Active            *bool
}

// InventoryQuery narrows inventory listings. All set conditions must hold.
type InventoryQuery struct {
	Active         *bool
	BelowMinimum   bool
	AtReorderPoint bool
	OutOfStock     bool
	AboveMaximum   bool
	MinQuantity    *int
	MaxQuantity    *int
}

// InventoryUsecase manages stock records.
type InventoryUsecase interface {
	CreateInventory(ctx context.Context, input CreateInventoryInput) (*entity.Inventory, error)
	GetInventory(ctx context.Context, id uuid.UUID) (*entity.Inventory, error)
	GetInventoryByProduct(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error)
	ListInventories(ctx context.Context, query InventoryQuery) ([]*entity.Inventory, error)
	CountInventories(ctx context.Context, query InventoryQuery) (int64, error)
	UpdateInventory(ctx context.Context, id uuid.UUID, input UpdateInventoryInput) (*entity.Inventory, error)
	SetQuantity(ctx context.Context, id uuid.UUID, quantity int) (*entity.Inventory, error)
	AddQuantity(ctx context.Context, id uuid.UUID, quantity int) (*entity.Inventory, error)
	RemoveQuantity(ctx context.Context, id uuid.UUID, quantity int) (*entity.Inventory, error)
	ActivateInventory(ctx context.Context, id uuid.UUID) (*entity.Inventory, error)
	DeactivateInventory(ctx context.Context, id uuid.UUID) (*entity.Inventory, error)
	DeleteInventory(ctx context.Context, id uuid.UUID) error
}
