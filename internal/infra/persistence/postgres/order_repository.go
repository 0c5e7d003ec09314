package postgres

import (
	"context"

	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/domain/repository"
	"cafeteria/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository returns a GORM backed repository.OrderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

func (repo *orderRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *orderRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.Order, error) {
	var m model.OrderModel
	if err := db.Scopes(preloadItems).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&m), nil
}

func (repo *orderRepository) Find(ctx context.Context, filter repository.OrderFilter, page entity.PageRequest) (entity.Page[*entity.Order], error) {
	query := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.OrderModel{}).Scopes(orderFilter(filter))

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return entity.Page[*entity.Order]{}, errors.Wrap(err, "failed to count orders")
	}

	var models []*model.OrderModel
	err := query.Scopes(preloadItems, paginate(page)).
		Order("order_date DESC").
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return entity.Page[*entity.Order]{}, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, len(models))
	for i, m := range models {
		orders[i] = toOrderDomain(m)
	}

	return entity.NewPage(orders, page, total), nil
}

func (repo *orderRepository) Count(ctx context.Context, filter repository.OrderFilter) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.OrderModel{}).
		Scopes(orderFilter(filter)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

func (repo *orderRepository) SumTotalAmount(ctx context.Context, filter repository.OrderFilter) (decimal.Decimal, error) {
	var sum decimal.Decimal
	row := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.OrderModel{}).
		Scopes(orderFilter(filter)).
		Select("COALESCE(SUM(total_amount), 0)").
		Row()
	if err := row.Scan(&sum); err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum order totals")
	}

	return sum, nil
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	m := fromOrderDomain(order)
	if err := repo.db.WithContext(ctx).Omit("Customer").Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WithDetails("order customer or product does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = m.ID

	return nil
}

// Update rewrites the header and swaps the stored lines for order.Items.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.OrderModel{}).
			Where("id = ?", order.ID).
			Updates(map[string]any{
				"status":            string(order.Status),
				"total_amount":      order.TotalAmount,
				"last_updated_date": order.LastUpdatedDate,
				"notes":             order.Notes,
			})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
		}
		if result.RowsAffected == 0 {
			return repository.ErrOrderNotFound
		}

		if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItemModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to clear order items")
		}

		items := fromOrderItemsDomain(order.ID, order.Items)
		if len(items) == 0 {
			return nil
		}
		if err := tx.Omit("Product").Create(&items).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrProductNotFound.WithDetails("order item product does not exist")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to save order items")
		}

		return nil
	})
}

func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.OrderModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func orderFilter(filter repository.OrderFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.CustomerID != nil {
			db = db.Where("customer_id = ?", *filter.CustomerID)
		}
		if len(filter.Statuses) > 0 {
			statuses := make([]string, len(filter.Statuses))
			for i, s := range filter.Statuses {
				statuses[i] = string(s)
			}
			db = db.Where("status IN ?", statuses)
		}
		if filter.MinAmount != nil {
			db = db.Where("total_amount >= ?", *filter.MinAmount)
		}
		if filter.MaxAmount != nil {
			db = db.Where("total_amount <= ?", *filter.MaxAmount)
		}
		if filter.MinItems != nil {
			db = db.Where("(SELECT COUNT(*) FROM order_items WHERE order_items.order_id = orders.id) >= ?", *filter.MinItems)
		}

		return db
	}
}

// --- Mapper Functions ---

func toOrderDomain(m *model.OrderModel) *entity.Order {
	if m == nil {
		return nil
	}

	items := make([]*entity.OrderItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = &entity.OrderItem{
			ID:               it.ID,
			OrderID:          it.OrderID,
			ProductID:        it.ProductID,
			ProductName:      it.ProductName,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			TotalPrice:       it.TotalPrice,
			ReservedQuantity: it.ReservedQuantity,
		}
	}

	return &entity.Order{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		Items:           items,
		Status:          entity.OrderStatus(m.Status),
		TotalAmount:     m.TotalAmount,
		OrderDate:       m.OrderDate,
		LastUpdatedDate: m.LastUpdatedDate,
		Notes:           m.Notes,
	}
}

func fromOrderDomain(o *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		Status:          string(o.Status),
		TotalAmount:     o.TotalAmount,
		OrderDate:       o.OrderDate,
		LastUpdatedDate: o.LastUpdatedDate,
		Notes:           o.Notes,
		Items:           fromOrderItemsDomain(o.ID, o.Items),
	}
}

func fromOrderItemsDomain(orderID uuid.UUID, items []*entity.OrderItem) []*model.OrderItemModel {
	result := make([]*model.OrderItemModel, len(items))
	for i, it := range items {
		result[i] = &model.OrderItemModel{
			ID:               it.ID,
			OrderID:          orderID,
			ProductID:        it.ProductID,
			ProductName:      it.ProductName,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			TotalPrice:       it.TotalPrice,
			ReservedQuantity: it.ReservedQuantity,
			Position:         i,
		}
	}

	return result
}
