package impl

import (
	"context"
	"testing"

	deliverycontext "cafeteria/internal/delivery/context"
	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/domain/repository"
	"cafeteria/internal/domain/service"
	mockRepo "cafeteria/internal/mocks/repository"
	mockService "cafeteria/internal/mocks/service"
	"cafeteria/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service       usecase.OrderUsecase
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	orderRepo     *mockRepo.MockOrderRepository
	userRepo      *mockRepo.MockUserRepository
	productRepo   *mockRepo.MockProductRepository
	inventoryRepo *mockRepo.MockInventoryRepository
	publisher     *mockService.MockEventPublisher
	idempotency   *mockService.MockIdempotencyStore
	cache         *mockService.MockCatalogCache
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	idempotency := mockService.NewMockIdempotencyStore(t)
	cache := mockService.NewMockCatalogCache(t)

	return orderServiceFixtures{
		service: NewOrderService(OrderServiceParams{
			TxManager:   txManager,
			OrderRepo:   orderRepo,
			Publisher:   publisher,
			Idempotency: idempotency,
			Cache:       cache,
			Logger:      newDiscardLogger(),
		}),
		txManager:     txManager,
		factory:       mockRepo.NewMockRepositoryFactory(t),
		orderRepo:     orderRepo,
		userRepo:      mockRepo.NewMockUserRepository(t),
		productRepo:   mockRepo.NewMockProductRepository(t),
		inventoryRepo: mockRepo.NewMockInventoryRepository(t),
		publisher:     publisher,
		idempotency:   idempotency,
		cache:         cache,
	}
}

// expectLocked wires a transaction that locks order.
func (fx orderServiceFixtures) expectLocked(ctx context.Context, order *entity.Order) {
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.orderRepo.EXPECT().LockByID(ctx, order.ID).Return(order, nil)
}

func (fx orderServiceFixtures) expectEvent(status, previous entity.OrderStatus) {
	fx.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Status == status.String() && e.PreviousStatus == previous.String()
		})).
		Return(nil)
}

func newOrderWithItem(t *testing.T, product *entity.Product, quantity int) *entity.Order {
	t.Helper()

	order, err := entity.NewOrder(uuid.New(), "")
	require.NoError(t, err)
	require.NoError(t, order.AddItem(product, quantity))

	return order
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	t.Run("merges lines and publishes", func(t *testing.T) {
		fx := createTestOrderService(t)
		customer := newTestUser(t)
		product := newProduct(t, "Croissant", "2.50")

		fx.idempotency.EXPECT().Reserve(ctx, customer.ID.String()+":key-1").Return(true, nil)
		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
		fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
		fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
		fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
		fx.publisher.EXPECT().
			PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
				return e.Status == "PENDING" && e.PreviousStatus == "" &&
					e.RequestID == "req-1" && e.TotalAmount == "7.50"
			})).
			Return(nil)

		order, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
			CustomerID: customer.ID,
			Notes:      "no sugar",
			Items: []usecase.OrderItemInput{
				{ProductID: product.ID, Quantity: 2},
				{ProductID: product.ID, Quantity: 1},
			},
			IdempotencyKey: "key-1",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPending, order.Status)
		require.Len(t, order.Items, 1)
		assert.Equal(t, 3, order.Items[0].Quantity)
		assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("7.50")))
	})

	t.Run("replayed key", func(t *testing.T) {
		fx := createTestOrderService(t)
		customerID := uuid.New()

		fx.idempotency.EXPECT().Reserve(ctx, customerID.String()+":key-1").Return(false, nil)

		_, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
			CustomerID:     customerID,
			IdempotencyKey: "key-1",
		})

		assert.ErrorIs(t, err, domainerrors.ErrDuplicateRequest)
	})

	t.Run("failure releases key", func(t *testing.T) {
		fx := createTestOrderService(t)
		customer := newTestUser(t)
		customer.SetEnabled(false)

		fx.idempotency.EXPECT().Reserve(ctx, customer.ID.String()+":key-2").Return(true, nil)
		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
		fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
		fx.idempotency.EXPECT().Release(ctx, customer.ID.String()+":key-2").Return(nil)

		_, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
			CustomerID:     customer.ID,
			IdempotencyKey: "key-2",
		})

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("same key from different customers", func(t *testing.T) {
		fx := createTestOrderService(t)
		first := newTestUser(t)
		first.SetEnabled(false)
		second := newTestUser(t)
		second.SetEnabled(false)

		reserved := map[string]bool{}
		fx.idempotency.EXPECT().Reserve(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, key string) (bool, error) {
				if reserved[key] {
					return false, nil
				}
				reserved[key] = true

				return true, nil
			}).
			Times(2)
		fx.idempotency.EXPECT().Release(ctx, mock.Anything).Return(nil).Times(2)
		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
		fx.userRepo.EXPECT().FindByID(ctx, first.ID).Return(first, nil)
		fx.userRepo.EXPECT().FindByID(ctx, second.ID).Return(second, nil)

		for _, customer := range []*entity.User{first, second} {
			_, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
				CustomerID:     customer.ID,
				IdempotencyKey: "shared",
			})

			assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
		}
		assert.Len(t, reserved, 2)
	})

	t.Run("inactive product", func(t *testing.T) {
		fx := createTestOrderService(t)
		customer := newTestUser(t)
		product := newProduct(t, "Croissant", "2.50")
		product.Deactivate()

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
		fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
		fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

		_, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
			CustomerID: customer.ID,
			Items:      []usecase.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	})
}

func TestOrderService_ConfirmOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("reserves stock", func(t *testing.T) {
		fx := createTestOrderService(t)
		product := newProduct(t, "Croissant", "2.50")
		order := newOrderWithItem(t, product, 2)
		inventory := newInventory(t, product.ID, 10)

		fx.expectLocked(ctx, order)
		fx.factory.EXPECT().NewInventoryRepository().Return(fx.inventoryRepo)
		fx.inventoryRepo.EXPECT().LockByProductIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Inventory{inventory}, nil)
		fx.inventoryRepo.EXPECT().Update(ctx, inventory).Return(nil)
		fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)
		fx.cache.EXPECT().Invalidate(ctx, productsCacheNamespace).Return(nil)
		fx.expectEvent(entity.OrderStatusConfirmed, entity.OrderStatusPending)

		got, err := fx.service.ConfirmOrder(ctx, order.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusConfirmed, got.Status)
		assert.Equal(t, 8, inventory.CurrentQuantity)
		assert.Equal(t, 2, got.Items[0].ReservedQuantity)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		fx := createTestOrderService(t)
		product := newProduct(t, "Croissant", "2.50")
		order := newOrderWithItem(t, product, 2)

		fx.expectLocked(ctx, order)
		fx.factory.EXPECT().NewInventoryRepository().Return(fx.inventoryRepo)
		fx.inventoryRepo.EXPECT().LockByProductIDs(ctx, []uuid.UUID{product.ID}).
			Return([]*entity.Inventory{newInventory(t, product.ID, 1)}, nil)

		_, err := fx.service.ConfirmOrder(ctx, order.ID)

		assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	})

	t.Run("inactive inventory is not tracked", func(t *testing.T) {
		fx := createTestOrderService(t)
		product := newProduct(t, "Croissant", "2.50")
		order := newOrderWithItem(t, product, 2)
		inventory := newInventory(t, product.ID, 0)
		inventory.Deactivate()

		fx.expectLocked(ctx, order)
		fx.factory.EXPECT().NewInventoryRepository().Return(fx.inventoryRepo)
		fx.inventoryRepo.EXPECT().LockByProductIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Inventory{inventory}, nil)
		fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)
		fx.cache.EXPECT().Invalidate(ctx, productsCacheNamespace).Return(nil)
		fx.expectEvent(entity.OrderStatusConfirmed, entity.OrderStatusPending)

		got, err := fx.service.ConfirmOrder(ctx, order.ID)

		require.NoError(t, err)
		assert.Equal(t, 0, inventory.CurrentQuantity)
		assert.Zero(t, got.Items[0].ReservedQuantity)
	})

	t.Run("empty order", func(t *testing.T) {
		fx := createTestOrderService(t)
		order, err := entity.NewOrder(uuid.New(), "")
		require.NoError(t, err)

		fx.expectLocked(ctx, order)

		_, err = fx.service.ConfirmOrder(ctx, order.ID)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
	})
}

func TestOrderService_CancelOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed order returns stock", func(t *testing.T) {
		fx := createTestOrderService(t)
		product := newProduct(t, "Croissant", "2.50")
		order := newOrderWithItem(t, product, 2)
		require.NoError(t, order.Confirm())
		order.Items[0].ReservedQuantity = 2
		inventory := newInventory(t, product.ID, 8)

		fx.expectLocked(ctx, order)
		fx.factory.EXPECT().NewInventoryRepository().Return(fx.inventoryRepo)
		fx.inventoryRepo.EXPECT().LockByProductIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Inventory{inventory}, nil)
		fx.inventoryRepo.EXPECT().Update(ctx, inventory).Return(nil)
		fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)
		fx.cache.EXPECT().Invalidate(ctx, productsCacheNamespace).Return(nil)
		fx.expectEvent(entity.OrderStatusCancelled, entity.OrderStatusConfirmed)

		got, err := fx.service.CancelOrder(ctx, order.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCancelled, got.Status)
		assert.Equal(t, 10, inventory.CurrentQuantity)
		assert.Zero(t, got.Items[0].ReservedQuantity)
	})

	t.Run("untracked line is not credited", func(t *testing.T) {
		fx := createTestOrderService(t)
		product := newProduct(t, "Croissant", "2.50")
		order := newOrderWithItem(t, product, 2)
		require.NoError(t, order.Confirm())
		// Inventory created after the order was confirmed without one.
		inventory := newInventory(t, product.ID, 5)

		fx.expectLocked(ctx, order)
		fx.factory.EXPECT().NewInventoryRepository().Return(fx.inventoryRepo)
		fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)
		fx.expectEvent(entity.OrderStatusCancelled, entity.OrderStatusConfirmed)

		got, err := fx.service.CancelOrder(ctx, order.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCancelled, got.Status)
		assert.Equal(t, 5, inventory.CurrentQuantity)
		fx.inventoryRepo.AssertNotCalled(t, "LockByProductIDs", mock.Anything, mock.Anything)
	})

	t.Run("reservation returns to deactivated inventory", func(t *testing.T) {
		fx := createTestOrderService(t)
		product := newProduct(t, "Croissant", "2.50")
		order := newOrderWithItem(t, product, 2)
		require.NoError(t, order.Confirm())
		order.Items[0].ReservedQuantity = 2
		inventory := newInventory(t, product.ID, 8)
		inventory.Deactivate()

		fx.expectLocked(ctx, order)
		fx.factory.EXPECT().NewInventoryRepository().Return(fx.inventoryRepo)
		fx.inventoryRepo.EXPECT().LockByProductIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Inventory{inventory}, nil)
		fx.inventoryRepo.EXPECT().Update(ctx, inventory).Return(nil)
		fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)
		fx.cache.EXPECT().Invalidate(ctx, productsCacheNamespace).Return(nil)
		fx.expectEvent(entity.OrderStatusCancelled, entity.OrderStatusConfirmed)

		_, err := fx.service.CancelOrder(ctx, order.ID)

		require.NoError(t, err)
		assert.Equal(t, 10, inventory.CurrentQuantity)
		assert.False(t, inventory.Active)
	})

	t.Run("pending order leaves stock alone", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := newOrderWithItem(t, newProduct(t, "Croissant", "2.50"), 2)

		fx.expectLocked(ctx, order)
		fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)
		fx.expectEvent(entity.OrderStatusCancelled, entity.OrderStatusPending)

		got, err := fx.service.CancelOrder(ctx, order.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCancelled, got.Status)
	})
}

func TestOrderService_DeliverOutOfSequence(t *testing.T) {
	ctx := context.Background()
	fx := createTestOrderService(t)
	order := newOrderWithItem(t, newProduct(t, "Croissant", "2.50"), 1)
	require.NoError(t, order.Confirm())

	fx.expectLocked(ctx, order)

	_, err := fx.service.DeliverOrder(ctx, order.ID)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}

func TestOrderService_PublishFailureDoesNotFailRequest(t *testing.T) {
	ctx := context.Background()
	fx := createTestOrderService(t)
	order := newOrderWithItem(t, newProduct(t, "Croissant", "2.50"), 1)
	require.NoError(t, order.Confirm())

	fx.expectLocked(ctx, order)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(assert.AnError)

	got, err := fx.service.StartPreparing(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPreparing, got.Status)
}

func TestOrderService_ItemChanges(t *testing.T) {
	ctx := context.Background()

	t.Run("add item", func(t *testing.T) {
		fx := createTestOrderService(t)
		croissant := newProduct(t, "Croissant", "2.50")
		tea := newProduct(t, "Tea", "1.25")
		order := newOrderWithItem(t, croissant, 2)

		fx.expectLocked(ctx, order)
		fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
		fx.productRepo.EXPECT().FindByID(ctx, tea.ID).Return(tea, nil)
		fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

		got, err := fx.service.AddItem(ctx, order.ID, usecase.OrderItemInput{ProductID: tea.ID, Quantity: 2})

		require.NoError(t, err)
		assert.Len(t, got.Items, 2)
		assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("7.50")))
	})

	t.Run("remove unknown item is a no-op", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := newOrderWithItem(t, newProduct(t, "Croissant", "2.50"), 2)

		fx.expectLocked(ctx, order)
		fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

		got, err := fx.service.RemoveItem(ctx, order.ID, uuid.New())

		require.NoError(t, err)
		assert.Len(t, got.Items, 1)
	})

	t.Run("missing order", func(t *testing.T) {
		fx := createTestOrderService(t)
		id := uuid.New()

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
		fx.orderRepo.EXPECT().LockByID(ctx, id).Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.UpdateNotes(ctx, id, "extra hot")

		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestOrderService_Queries(t *testing.T) {
	ctx := context.Background()

	t.Run("has active order", func(t *testing.T) {
		fx := createTestOrderService(t)
		customerID := uuid.New()

		fx.orderRepo.EXPECT().
			Count(ctx, repository.OrderFilter{CustomerID: &customerID, Statuses: entity.ActiveOrderStatuses()}).
			Return(int64(1), nil)

		active, err := fx.service.HasActiveOrder(ctx, customerID)

		require.NoError(t, err)
		assert.True(t, active)
	})

	t.Run("revenue of delivered orders", func(t *testing.T) {
		fx := createTestOrderService(t)
		statuses := []entity.OrderStatus{entity.OrderStatusDelivered}

		fx.orderRepo.EXPECT().
			SumTotalAmount(ctx, repository.OrderFilter{Statuses: statuses}).
			Return(decimal.RequireFromString("42.50"), nil)

		sum, err := fx.service.SumRevenue(ctx, usecase.OrderQuery{Statuses: statuses})

		require.NoError(t, err)
		assert.True(t, sum.Equal(decimal.RequireFromString("42.50")))
	})

	t.Run("inverted amount range", func(t *testing.T) {
		fx := createTestOrderService(t)
		minAmount := decimal.NewFromInt(10)
		maxAmount := decimal.NewFromInt(5)

		_, err := fx.service.ListOrders(ctx, usecase.OrderQuery{MinAmount: &minAmount, MaxAmount: &maxAmount}, entity.NewPageRequest(0, 20))

		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	})
}
