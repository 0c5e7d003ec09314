package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "cafeteria/internal/delivery/context"
	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/domain/repository"
	"cafeteria/internal/domain/service"
	"cafeteria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. Every mutation runs in
// a transaction holding a row lock on the order; stock moves on confirm and
// on cancel of a confirmed order.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	publisher   service.EventPublisher
	idempotency service.IdempotencyStore
	cache       service.CatalogCache
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	Publisher   service.EventPublisher
	Idempotency service.IdempotencyStore
	Cache       service.CatalogCache
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		publisher:   params.Publisher,
		idempotency: params.Idempotency,
		cache:       params.Cache,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder opens a PENDING order for an enabled customer and adds the
// requested items.
func (srv *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	idempotencyKey := customerScopedKey(input.CustomerID, input.IdempotencyKey)
	if idempotencyKey != "" {
		reserved, err := srv.idempotency.Reserve(ctx, idempotencyKey)
		if err != nil {
			return nil, errors.Wrap(err, "failed to reserve idempotency key")
		}
		if !reserved {
			return nil, domainerrors.ErrDuplicateRequest.WithDetails(input.IdempotencyKey)
		}
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findEnabledUser(ctx, repoFactory.NewUserRepository(), input.CustomerID); err != nil {
			return err
		}

		var err error
		order, err = entity.NewOrder(input.CustomerID, input.Notes)
		if err != nil {
			return err
		}

		productRepo := repoFactory.NewProductRepository()
		for _, item := range input.Items {
			if err := addProduct(ctx, productRepo, order, item); err != nil {
				return err
			}
		}

		return errors.Wrap(repoFactory.NewOrderRepository().Create(ctx, order), "failed to create order")
	})
	if err != nil {
		if idempotencyKey != "" {
			if releaseErr := srv.idempotency.Release(ctx, idempotencyKey); releaseErr != nil {
				srv.log(ctx).Warn("Failed to release idempotency key", slog.Any("error", releaseErr))
			}
		}

		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderID", order.ID.String()),
		slog.String("customerID", order.CustomerID.String()),
		slog.Int("items", order.ItemCount()),
	)
	srv.publish(ctx, order, "")

	return order, nil
}

// GetOrder returns an order with its items.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepositoryError(err, "failed to find order")
	}

	return order, nil
}

// ListOrders pages through orders matching query, newest first.
func (srv *orderService) ListOrders(ctx context.Context, query usecase.OrderQuery, page entity.PageRequest) (entity.Page[*entity.Order], error) {
	filter, err := orderFilter(query)
	if err != nil {
		return entity.Page[*entity.Order]{}, err
	}

	orders, err := srv.orderRepo.Find(ctx, filter, page)
	if err != nil {
		return entity.Page[*entity.Order]{}, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// CountOrders counts orders matching query.
func (srv *orderService) CountOrders(ctx context.Context, query usecase.OrderQuery) (int64, error) {
	filter, err := orderFilter(query)
	if err != nil {
		return 0, err
	}

	count, err := srv.orderRepo.Count(ctx, filter)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// SumRevenue adds up the totals of the matching orders.
func (srv *orderService) SumRevenue(ctx context.Context, query usecase.OrderQuery) (decimal.Decimal, error) {
	filter, err := orderFilter(query)
	if err != nil {
		return decimal.Zero, err
	}

	sum, err := srv.orderRepo.SumTotalAmount(ctx, filter)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum order totals")
	}

	return sum, nil
}

// HasActiveOrder reports whether the customer has an order that is neither
// delivered nor cancelled.
func (srv *orderService) HasActiveOrder(ctx context.Context, customerID uuid.UUID) (bool, error) {
	count, err := srv.orderRepo.Count(ctx, repository.OrderFilter{
		CustomerID: &customerID,
		Statuses:   entity.ActiveOrderStatuses(),
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to count active orders")
	}

	return count > 0, nil
}

// AddItem adds a product line, or increases the quantity of an existing one.
func (srv *orderService) AddItem(ctx context.Context, orderID uuid.UUID, input usecase.OrderItemInput) (*entity.Order, error) {
	return srv.modify(ctx, orderID, func(repoFactory repository.RepositoryFactory, order *entity.Order) error {
		return addProduct(ctx, repoFactory.NewProductRepository(), order, input)
	})
}

// UpdateItemQuantity sets the quantity of an existing line.
func (srv *orderService) UpdateItemQuantity(ctx context.Context, orderID, itemID uuid.UUID, quantity int) (*entity.Order, error) {
	return srv.modify(ctx, orderID, func(_ repository.RepositoryFactory, order *entity.Order) error {
		return order.UpdateItemQuantity(itemID, quantity)
	})
}

// RemoveItem drops a line. Unknown item ids leave the order unchanged.
func (srv *orderService) RemoveItem(ctx context.Context, orderID, itemID uuid.UUID) (*entity.Order, error) {
	return srv.modify(ctx, orderID, func(_ repository.RepositoryFactory, order *entity.Order) error {
		return order.RemoveItem(itemID)
	})
}

// UpdateNotes replaces the customer notes.
func (srv *orderService) UpdateNotes(ctx context.Context, orderID uuid.UUID, notes string) (*entity.Order, error) {
	return srv.modify(ctx, orderID, func(_ repository.RepositoryFactory, order *entity.Order) error {
		order.UpdateNotes(notes)

		return nil
	})
}

// ConfirmOrder confirms a pending order and takes its items out of stock.
func (srv *orderService) ConfirmOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.transition(ctx, orderID, func(repoFactory repository.RepositoryFactory, order *entity.Order) error {
		if err := order.Confirm(); err != nil {
			return err
		}

		return reserveStock(ctx, repoFactory.NewInventoryRepository(), order)
	})
	if err != nil {
		return nil, err
	}

	invalidateCatalog(ctx, srv.cache, srv.log(ctx), productsCacheNamespace)

	return order, nil
}

// StartPreparing moves a confirmed order to PREPARING.
func (srv *orderService) StartPreparing(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	return srv.transition(ctx, orderID, func(_ repository.RepositoryFactory, order *entity.Order) error {
		return order.StartPreparing()
	})
}

// MarkAsReady moves a preparing order to READY.
func (srv *orderService) MarkAsReady(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	return srv.transition(ctx, orderID, func(_ repository.RepositoryFactory, order *entity.Order) error {
		return order.MarkAsReady()
	})
}

// DeliverOrder moves a ready order to DELIVERED.
func (srv *orderService) DeliverOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	return srv.transition(ctx, orderID, func(_ repository.RepositoryFactory, order *entity.Order) error {
		return order.Deliver()
	})
}

// CancelOrder cancels a pending or confirmed order. Stock reserved on confirm
// is put back.
func (srv *orderService) CancelOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	restored := false
	order, err := srv.transition(ctx, orderID, func(repoFactory repository.RepositoryFactory, order *entity.Order) error {
		wasConfirmed := order.Status == entity.OrderStatusConfirmed
		if err := order.Cancel(); err != nil {
			return err
		}
		if !wasConfirmed {
			return nil
		}

		var err error
		restored, err = restoreStock(ctx, repoFactory.NewInventoryRepository(), order)

		return err
	})
	if err != nil {
		return nil, err
	}

	if restored {
		invalidateCatalog(ctx, srv.cache, srv.log(ctx), productsCacheNamespace)
	}

	return order, nil
}

// DeleteOrder removes an order and its items.
func (srv *orderService) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	if err := srv.orderRepo.Delete(ctx, orderID); err != nil {
		return wrapRepositoryError(err, "failed to delete order")
	}

	srv.log(ctx).Info("Order deleted", slog.String("orderID", orderID.String()))

	return nil
}

// modify locks the order, applies change and saves the order with its items.
func (srv *orderService) modify(
	ctx context.Context,
	orderID uuid.UUID,
	change func(repoFactory repository.RepositoryFactory, order *entity.Order) error,
) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		var err error
		order, err = orderRepo.LockByID(ctx, orderID)
		if err != nil {
			return wrapRepositoryError(err, "failed to find order")
		}
		if err := change(repoFactory, order); err != nil {
			return err
		}

		return wrapRepositoryError(orderRepo.Update(ctx, order), "failed to update order")
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// transition is modify for status changes; the change is logged and published
// once committed.
func (srv *orderService) transition(
	ctx context.Context,
	orderID uuid.UUID,
	change func(repoFactory repository.RepositoryFactory, order *entity.Order) error,
) (*entity.Order, error) {
	var previous entity.OrderStatus
	order, err := srv.modify(ctx, orderID, func(repoFactory repository.RepositoryFactory, order *entity.Order) error {
		previous = order.Status

		return change(repoFactory, order)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status changed",
		slog.String("orderID", order.ID.String()),
		slog.String("from", previous.String()),
		slog.String("to", order.Status.String()),
	)
	srv.publish(ctx, order, previous)

	return order, nil
}

// publish sends an OrderEvent. Failures are logged only.
func (srv *orderService) publish(ctx context.Context, order *entity.Order, previous entity.OrderStatus) {
	event := &service.OrderEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:        order.ID.String(),
		CustomerID:     order.CustomerID.String(),
		Status:         order.Status.String(),
		PreviousStatus: previous.String(),
		TotalAmount:    order.TotalAmount.StringFixed(2),
		OccurredAt:     time.Now().UTC(),
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("orderID", event.OrderID),
			slog.String("status", event.Status),
			slog.Any("error", err),
		)
	}
}

// customerScopedKey namespaces a client idempotency key by customer so equal
// keys from different customers never collide. An empty key stays empty.
func customerScopedKey(customerID uuid.UUID, key string) string {
	if key == "" {
		return ""
	}

	return customerID.String() + ":" + key
}

func addProduct(ctx context.Context, productRepo repository.ProductRepository, order *entity.Order, item usecase.OrderItemInput) error {
	product, err := productRepo.FindByID(ctx, item.ProductID)
	if err != nil {
		return wrapRepositoryError(err, "failed to find product")
	}
	if !product.Active {
		return domainerrors.InvalidArgument("product is not available: " + product.Name.String())
	}

	return order.AddItem(product, item.Quantity)
}

// reserveStock takes each line out of its product's active inventory and
// records the reserved quantity on the line. Products without an active
// inventory are not tracked.
func reserveStock(ctx context.Context, inventoryRepo repository.InventoryRepository, order *entity.Order) error {
	inventories, err := lockInventories(ctx, inventoryRepo, order.Items)
	if err != nil {
		return err
	}

	changed := make([]*entity.Inventory, 0, len(inventories))
	for _, item := range order.Items {
		inventory, ok := inventories[item.ProductID]
		if !ok || !inventory.Active {
			continue
		}
		if err := inventory.RemoveQuantity(item.Quantity); err != nil {
			return domainerrors.ErrInsufficientStock.WithDetails(inventory.ProductID.String())
		}
		item.ReservedQuantity = item.Quantity
		changed = appendInventory(changed, inventory)
	}

	return updateInventories(ctx, inventoryRepo, changed)
}

// restoreStock gives back exactly what reserveStock recorded, whatever the
// inventory's current state. It reports whether any stock moved.
func restoreStock(ctx context.Context, inventoryRepo repository.InventoryRepository, order *entity.Order) (bool, error) {
	reserved := make([]*entity.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		if item.ReservedQuantity > 0 {
			reserved = append(reserved, item)
		}
	}
	if len(reserved) == 0 {
		return false, nil
	}

	inventories, err := lockInventories(ctx, inventoryRepo, reserved)
	if err != nil {
		return false, err
	}

	changed := make([]*entity.Inventory, 0, len(inventories))
	for _, item := range reserved {
		if inventory, ok := inventories[item.ProductID]; ok {
			if err := inventory.AddQuantity(item.ReservedQuantity); err != nil {
				return false, err
			}
			changed = appendInventory(changed, inventory)
		}
		item.ReservedQuantity = 0
	}

	return len(changed) > 0, updateInventories(ctx, inventoryRepo, changed)
}

// lockInventories locks the inventory rows of the given lines, keyed by product.
func lockInventories(ctx context.Context, inventoryRepo repository.InventoryRepository, items []*entity.OrderItem) (map[uuid.UUID]*entity.Inventory, error) {
	seen := make(map[uuid.UUID]struct{}, len(items))
	productIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; !ok {
			seen[item.ProductID] = struct{}{}
			productIDs = append(productIDs, item.ProductID)
		}
	}

	locked, err := inventoryRepo.LockByProductIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock inventories")
	}

	inventories := make(map[uuid.UUID]*entity.Inventory, len(locked))
	for _, inventory := range locked {
		inventories[inventory.ProductID] = inventory
	}

	return inventories, nil
}

func appendInventory(changed []*entity.Inventory, inventory *entity.Inventory) []*entity.Inventory {
	for _, c := range changed {
		if c == inventory {
			return changed
		}
	}

	return append(changed, inventory)
}

func updateInventories(ctx context.Context, inventoryRepo repository.InventoryRepository, changed []*entity.Inventory) error {
	if len(changed) == 0 {
		return nil
	}

	return wrapRepositoryError(inventoryRepo.Update(ctx, changed...), "failed to update inventories")
}

func orderFilter(query usecase.OrderQuery) (repository.OrderFilter, error) {
	if query.MinAmount != nil && query.MaxAmount != nil && query.MinAmount.GreaterThan(*query.MaxAmount) {
		return repository.OrderFilter{}, domainerrors.InvalidArgument("minimum amount cannot be greater than maximum amount")
	}
	if query.MinItems != nil && *query.MinItems < 0 {
		return repository.OrderFilter{}, domainerrors.InvalidArgument("minimum item count cannot be negative")
	}

	return repository.OrderFilter(query), nil
}
