package impl

import (
	"context"
	"log/slog"

	deliverycontext "cafeteria/internal/delivery/context"
	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/domain/repository"
	"cafeteria/internal/domain/service"
	"cafeteria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	txManager     repository.TransactionManager
	inventoryRepo repository.InventoryRepository
	cache         service.CatalogCache
	logger        *slog.Logger
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	InventoryRepo repository.InventoryRepository
	Cache         service.CatalogCache
	Logger        *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		txManager:     params.TxManager,
		inventoryRepo: params.InventoryRepo,
		cache:         params.Cache,
		logger:        params.Logger,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateInventory creates the stock record of a product.
func (srv *inventoryService) CreateInventory(ctx context.Context, input usecase.CreateInventoryInput) (*entity.Inventory, error) {
	levels := mergeStockLevels(entity.DefaultStockLevels(input.CurrentQuantity), input.MinimumStockLevel,
		input.MaximumStockLevel, input.ReorderPoint, input.ReorderQuantity)

	var inventory *entity.Inventory
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewProductRepository().FindByID(ctx, input.ProductID); err != nil {
			return wrapRepositoryError(err, "failed to find product")
		}

		var err error
		inventory, err = entity.NewInventory(input.ProductID, input.CurrentQuantity, levels)
		if err != nil {
			return err
		}

		return wrapRepositoryError(repoFactory.NewInventoryRepository().Create(ctx, inventory), "failed to create inventory")
	})
	if err != nil {
		return nil, err
	}

	invalidateCatalog(ctx, srv.cache, srv.log(ctx), productsCacheNamespace)
	srv.log(ctx).Info("Inventory created",
		slog.String("inventoryID", inventory.ID.String()),
		slog.String("productID", inventory.ProductID.String()),
		slog.Int("quantity", inventory.CurrentQuantity),
	)

	return inventory, nil
}

// GetInventory returns an inventory record by id.
func (srv *inventoryService) GetInventory(ctx context.Context, id uuid.UUID) (*entity.Inventory, error) {
	inventory, err := srv.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepositoryError(err, "failed to find inventory")
	}

	return inventory, nil
}

// GetInventoryByProduct returns the inventory record of a product.
func (srv *inventoryService) GetInventoryByProduct(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error) {
	inventory, err := srv.inventoryRepo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, wrapRepositoryError(err, "failed to find inventory")
	}

	return inventory, nil
}

// ListInventories lists records matching query.
func (srv *inventoryService) ListInventories(ctx context.Context, query usecase.InventoryQuery) ([]*entity.Inventory, error) {
	filter, err := inventoryFilter(query)
	if err != nil {
		return nil, err
	}

	inventories, err := srv.inventoryRepo.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventories")
	}

	return inventories, nil
}

// CountInventories counts records matching query.
func (srv *inventoryService) CountInventories(ctx context.Context, query usecase.InventoryQuery) (int64, error) {
	filter, err := inventoryFilter(query)
	if err != nil {
		return 0, err
	}

	count, err := srv.inventoryRepo.Count(ctx, filter)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count inventories")
	}

	return count, nil
}

// UpdateInventory applies the set fields of input. Levels are validated together.
func (srv *inventoryService) UpdateInventory(ctx context.Context, id uuid.UUID, input usecase.UpdateInventoryInput) (*entity.Inventory, error) {
	return srv.modify(ctx, id, "Inventory updated", func(inventory *entity.Inventory) error {
		if input.MinimumStockLevel != nil || input.MaximumStockLevel != nil ||
			input.ReorderPoint != nil || input.ReorderQuantity != nil {
			levels := mergeStockLevels(inventory.Levels(), input.MinimumStockLevel,
				input.MaximumStockLevel, input.ReorderPoint, input.ReorderQuantity)
			if err := inventory.UpdateLevels(levels); err != nil {
				return err
			}
		}
		if input.CurrentQuantity != nil {
			if err := inventory.UpdateQuantity(*input.CurrentQuantity); err != nil {
				return err
			}
		}
		if input.Active != nil {
			if *input.Active {
				inventory.Activate()
			} else {
				inventory.Deactivate()
			}
		}

		return nil
	})
}

// SetQuantity sets the units on hand.
func (srv *inventoryService) SetQuantity(ctx context.Context, id uuid.UUID, quantity int) (*entity.Inventory, error) {
	return srv.modify(ctx, id, "Inventory quantity set", func(inventory *entity.Inventory) error {
		return inventory.UpdateQuantity(quantity)
	})
}

// AddQuantity increases the units on hand.
func (srv *inventoryService) AddQuantity(ctx context.Context, id uuid.UUID, quantity int) (*entity.Inventory, error) {
	return srv.modify(ctx, id, "Inventory quantity added", func(inventory *entity.Inventory) error {
		return inventory.AddQuantity(quantity)
	})
}

// RemoveQuantity decreases the units on hand.
func (srv *inventoryService) RemoveQuantity(ctx context.Context, id uuid.UUID, quantity int) (*entity.Inventory, error) {
	return srv.modify(ctx, id, "Inventory quantity removed", func(inventory *entity.Inventory) error {
		return inventory.RemoveQuantity(quantity)
	})
}

// ActivateInventory re-enables a record.
func (srv *inventoryService) ActivateInventory(ctx context.Context, id uuid.UUID) (*entity.Inventory, error) {
	return srv.modify(ctx, id, "Inventory activated", func(inventory *entity.Inventory) error {
		inventory.Activate()

		return nil
	})
}

// DeactivateInventory disables a record.
func (srv *inventoryService) DeactivateInventory(ctx context.Context, id uuid.UUID) (*entity.Inventory, error) {
	return srv.modify(ctx, id, "Inventory deactivated", func(inventory *entity.Inventory) error {
		inventory.Deactivate()

		return nil
	})
}

// DeleteInventory removes a record.
func (srv *inventoryService) DeleteInventory(ctx context.Context, id uuid.UUID) error {
	if err := srv.inventoryRepo.Delete(ctx, id); err != nil {
		return wrapRepositoryError(err, "failed to delete inventory")
	}

	invalidateCatalog(ctx, srv.cache, srv.log(ctx), productsCacheNamespace)
	srv.log(ctx).Info("Inventory deleted", slog.String("inventoryID", id.String()))

	return nil
}

func (srv *inventoryService) modify(ctx context.Context, id uuid.UUID, logMessage string, change func(*entity.Inventory) error) (*entity.Inventory, error) {
	var inventory *entity.Inventory
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		inventoryRepo := repoFactory.NewInventoryRepository()

		var err error
		inventory, err = inventoryRepo.LockByID(ctx, id)
		if err != nil {
			return wrapRepositoryError(err, "failed to lock inventory")
		}
		if err := change(inventory); err != nil {
			return err
		}

		return wrapRepositoryError(inventoryRepo.Update(ctx, inventory), "failed to update inventory")
	})
	if err != nil {
		return nil, err
	}

	invalidateCatalog(ctx, srv.cache, srv.log(ctx), productsCacheNamespace)
	srv.log(ctx).Info(logMessage,
		slog.String("inventoryID", id.String()),
		slog.Int("quantity", inventory.CurrentQuantity),
	)

	return inventory, nil
}

func mergeStockLevels(levels entity.StockLevels, minimum, maximum, reorderPoint, reorderQuantity *int) entity.StockLevels {
	if minimum != nil {
		levels.MinimumStockLevel = *minimum
	}
	if maximum != nil {
		levels.MaximumStockLevel = *maximum
	}
	if reorderPoint != nil {
		levels.ReorderPoint = *reorderPoint
	}
	if reorderQuantity != nil {
		levels.ReorderQuantity = *reorderQuantity
	}

	return levels
}

func inventoryFilter(query usecase.InventoryQuery) (repository.InventoryFilter, error) {
	if query.MinQuantity != nil && query.MaxQuantity != nil && *query.MinQuantity > *query.MaxQuantity {
		return repository.InventoryFilter{}, domainerrors.InvalidArgument("minimum quantity cannot be greater than maximum quantity")
	}

	return repository.InventoryFilter(query), nil
}
