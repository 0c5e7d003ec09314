package postgres

import (
	"context"

	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/domain/repository"
	"cafeteria/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository returns a GORM backed repository.InventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (repo *inventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error) {
	return repo.first(repo.db.WithContext(ctx), "id = ?", id)
}

func (repo *inventoryRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error) {
	return repo.first(
		repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}),
		"id = ?", id,
	)
}

func (repo *inventoryRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error) {
	return repo.first(repo.db.WithContext(ctx), "product_id = ?", productID)
}

func (repo *inventoryRepository) first(db *gorm.DB, cond string, arg any) (*entity.Inventory, error) {
	var m model.InventoryModel
	if err := db.Where(cond, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInventoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory")
	}

	return toInventoryDomain(&m), nil
}

func (repo *inventoryRepository) FindByProductIDs(ctx context.Context, productIDs []uuid.UUID) ([]*entity.Inventory, error) {
	return repo.findByProductIDs(repo.db.WithContext(ctx), productIDs)
}

// LockByProductIDs locks rows in product id order so concurrent reservations
// over overlapping products cannot deadlock.
func (repo *inventoryRepository) LockByProductIDs(ctx context.Context, productIDs []uuid.UUID) ([]*entity.Inventory, error) {
	return repo.findByProductIDs(
		repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}),
		productIDs,
	)
}

func (repo *inventoryRepository) findByProductIDs(db *gorm.DB, productIDs []uuid.UUID) ([]*entity.Inventory, error) {
	if len(productIDs) == 0 {
		return []*entity.Inventory{}, nil
	}

	var models []*model.InventoryModel
	if err := db.Where("product_id IN ?", productIDs).Order("product_id").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find inventories by product ids")
	}

	return toInventoryDomains(models), nil
}

func (repo *inventoryRepository) Find(ctx context.Context, filter repository.InventoryFilter) ([]*entity.Inventory, error) {
	var models []*model.InventoryModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).
		Scopes(inventoryFilter(filter)).
		Order("current_quantity").
		Order("product_id").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventories")
	}

	return toInventoryDomains(models), nil
}

func (repo *inventoryRepository) Count(ctx context.Context, filter repository.InventoryFilter) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.InventoryModel{}).
		Scopes(inventoryFilter(filter)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count inventories")
	}

	return count, nil
}

func (repo *inventoryRepository) Create(ctx context.Context, inventory *entity.Inventory) error {
	m := fromInventoryDomain(inventory)
	if err := repo.db.WithContext(ctx).Omit("Product").Create(m).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrInventoryAlreadyExists
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrProductNotFound.WithDetails("inventory product does not exist")
		case isCheckConstraintViolation(err):
			return domainerrors.InvalidArgument("quantity cannot be negative")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create inventory")
		}
	}

	inventory.ID = m.ID

	return nil
}

func (repo *inventoryRepository) Update(ctx context.Context, inventories ...*entity.Inventory) error {
	for _, inv := range inventories {
		result := repo.db.WithContext(ctx).Model(&model.InventoryModel{}).
			Where("id = ?", inv.ID).
			Updates(map[string]any{
				"current_quantity":    inv.CurrentQuantity,
				"minimum_stock_level": inv.MinimumStockLevel,
				"maximum_stock_level": inv.MaximumStockLevel,
				"reorder_point":       inv.ReorderPoint,
				"reorder_quantity":    inv.ReorderQuantity,
				"active":              inv.Active,
			})
		if result.Error != nil {
			if isCheckConstraintViolation(result.Error) {
				return domainerrors.InvalidArgument("quantity cannot be negative")
			}

			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update inventory")
		}
		if result.RowsAffected == 0 {
			return repository.ErrInventoryNotFound
		}
	}

	return nil
}

func (repo *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.InventoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete inventory")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInventoryNotFound
	}

	return nil
}

func inventoryFilter(filter repository.InventoryFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Active != nil {
			db = db.Where("active = ?", *filter.Active)
		}
		if filter.BelowMinimum {
			db = db.Where("current_quantity < minimum_stock_level")
		}
		if filter.AtReorderPoint {
			db = db.Where("current_quantity <= reorder_point")
		}
		if filter.OutOfStock {
			db = db.Where("current_quantity = 0")
		}
		if filter.AboveMaximum {
			db = db.Where("current_quantity > maximum_stock_level")
		}
		if filter.MinQuantity != nil {
			db = db.Where("current_quantity >= ?", *filter.MinQuantity)
		}
		if filter.MaxQuantity != nil {
			db = db.Where("current_quantity <= ?", *filter.MaxQuantity)
		}

		return db
	}
}

// --- Mapper Functions ---

func toInventoryDomain(m *model.InventoryModel) *entity.Inventory {
	if m == nil {
		return nil
	}

	return &entity.Inventory{
		ID:                m.ID,
		ProductID:         m.ProductID,
		CurrentQuantity:   m.CurrentQuantity,
		MinimumStockLevel: m.MinimumStockLevel,
		MaximumStockLevel: m.MaximumStockLevel,
		ReorderPoint:      m.ReorderPoint,
		ReorderQuantity:   m.ReorderQuantity,
		Active:            m.Active,
		CreatedAt:         m.CreatedAt,
		LastUpdated:       m.LastUpdated,
	}
}

func toInventoryDomains(models []*model.InventoryModel) []*entity.Inventory {
	result := make([]*entity.Inventory, len(models))
	for i, m := range models {
		result[i] = toInventoryDomain(m)
	}

	return result
}

func fromInventoryDomain(i *entity.Inventory) *model.InventoryModel {
	return &model.InventoryModel{
		ID:                i.ID,
		ProductID:         i.ProductID,
		CurrentQuantity:   i.CurrentQuantity,
		MinimumStockLevel: i.MinimumStockLevel,
		MaximumStockLevel: i.MaximumStockLevel,
		ReorderPoint:      i.ReorderPoint,
		ReorderQuantity:   i.ReorderQuantity,
		Active:            i.Active,
		CreatedAt:         i.CreatedAt,
		LastUpdated:       i.LastUpdated,
	}
}
