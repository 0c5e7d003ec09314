package impl

import (
	"context"
	"testing"

	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/domain/repository"
	mockRepo "cafeteria/internal/mocks/repository"
	mockService "cafeteria/internal/mocks/service"
	"cafeteria/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inventoryServiceFixtures struct {
	service       usecase.InventoryUsecase
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	inventoryRepo *mockRepo.MockInventoryRepository
	productRepo   *mockRepo.MockProductRepository
	cache         *mockService.MockCatalogCache
}

func createTestInventoryService(t *testing.T) inventoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	cache := mockService.NewMockCatalogCache(t)

	return inventoryServiceFixtures{
		service: NewInventoryService(InventoryServiceParams{
			TxManager:     txManager,
			InventoryRepo: inventoryRepo,
			Cache:         cache,
			Logger:        newDiscardLogger(),
		}),
		txManager:     txManager,
		factory:       factory,
		inventoryRepo: inventoryRepo,
		productRepo:   mockRepo.NewMockProductRepository(t),
		cache:         cache,
	}
}

// expectModify wires a transactional, row-locked load of inventory.
func (fx inventoryServiceFixtures) expectModify(ctx context.Context, inventory *entity.Inventory) {
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewInventoryRepository().Return(fx.inventoryRepo)
	fx.inventoryRepo.EXPECT().LockByID(ctx, inventory.ID).Return(inventory, nil)
}

func TestInventoryService_CreateInventory(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit levels override defaults", func(t *testing.T) {
		fx := createTestInventoryService(t)
		product := newProduct(t, "Bagel", "1.10")
		minimum, reorder := 5, 8

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
		fx.factory.EXPECT().NewInventoryRepository().Return(fx.inventoryRepo)
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.inventoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Inventory")).Return(nil)
		fx.cache.EXPECT().Invalidate(ctx, productsCacheNamespace).Return(nil)

		inventory, err := fx.service.CreateInventory(ctx, usecase.CreateInventoryInput{
			ProductID:         product.ID,
			CurrentQuantity:   30,
			MinimumStockLevel: &minimum,
			ReorderPoint:      &reorder,
		})

		require.NoError(t, err)
		assert.Equal(t, 30, inventory.CurrentQuantity)
		assert.Equal(t, 5, inventory.MinimumStockLevel)
		assert.Equal(t, 8, inventory.ReorderPoint)
		assert.Equal(t, entity.DefaultMaximumStockLevel, inventory.MaximumStockLevel)
	})

	t.Run("product already tracked", func(t *testing.T) {
		fx := createTestInventoryService(t)
		product := newProduct(t, "Bagel", "1.10")

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
		fx.factory.EXPECT().NewInventoryRepository().Return(fx.inventoryRepo)
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.inventoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Inventory")).
			Return(repository.ErrInventoryAlreadyExists)

		_, err := fx.service.CreateInventory(ctx, usecase.CreateInventoryInput{ProductID: product.ID})

		assert.ErrorIs(t, err, domainerrors.ErrInventoryAlreadyExists)
	})

	t.Run("maximum below minimum", func(t *testing.T) {
		fx := createTestInventoryService(t)
		product := newProduct(t, "Bagel", "1.10")
		minimum, maximum := 10, 5

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

		_, err := fx.service.CreateInventory(ctx, usecase.CreateInventoryInput{
			ProductID:         product.ID,
			MinimumStockLevel: &minimum,
			MaximumStockLevel: &maximum,
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	})
}

func TestInventoryService_RemoveQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("decrements", func(t *testing.T) {
		fx := createTestInventoryService(t)
		inventory := newInventory(t, uuid.New(), 10)

		fx.expectModify(ctx, inventory)
		fx.inventoryRepo.EXPECT().Update(ctx, inventory).Return(nil)
		fx.cache.EXPECT().Invalidate(ctx, productsCacheNamespace).Return(nil)

		got, err := fx.service.RemoveQuantity(ctx, inventory.ID, 4)

		require.NoError(t, err)
		assert.Equal(t, 6, got.CurrentQuantity)
	})

	t.Run("more than available", func(t *testing.T) {
		fx := createTestInventoryService(t)
		inventory := newInventory(t, uuid.New(), 3)

		fx.expectModify(ctx, inventory)

		_, err := fx.service.RemoveQuantity(ctx, inventory.ID, 4)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	})
}

func TestInventoryService_UpdateInventory(t *testing.T) {
	ctx := context.Background()
	fx := createTestInventoryService(t)
	inventory := newInventory(t, uuid.New(), 10)
	maximum, quantity, active := 50, 20, false

	fx.expectModify(ctx, inventory)
	fx.inventoryRepo.EXPECT().Update(ctx, inventory).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, productsCacheNamespace).Return(nil)

	got, err := fx.service.UpdateInventory(ctx, inventory.ID, usecase.UpdateInventoryInput{
		MaximumStockLevel: &maximum,
		CurrentQuantity:   &quantity,
		Active:            &active,
	})

	require.NoError(t, err)
	assert.Equal(t, 50, got.MaximumStockLevel)
	assert.Equal(t, 20, got.CurrentQuantity)
	assert.False(t, got.Active)
}

func TestInventoryService_ListInventories(t *testing.T) {
	ctx := context.Background()

	t.Run("passes filter", func(t *testing.T) {
		fx := createTestInventoryService(t)
		active := true
		inventories := []*entity.Inventory{newInventory(t, uuid.New(), 0)}

		fx.inventoryRepo.EXPECT().
			Find(ctx, repository.InventoryFilter{Active: &active, OutOfStock: true}).
			Return(inventories, nil)

		got, err := fx.service.ListInventories(ctx, usecase.InventoryQuery{Active: &active, OutOfStock: true})

		require.NoError(t, err)
		assert.Equal(t, inventories, got)
	})

	t.Run("inverted quantity range", func(t *testing.T) {
		fx := createTestInventoryService(t)
		minimum, maximum := 10, 5

		_, err := fx.service.ListInventories(ctx, usecase.InventoryQuery{MinQuantity: &minimum, MaxQuantity: &maximum})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	})
}

func TestInventoryService_GetInventory_NotFound(t *testing.T) {
	ctx := context.Background()
	fx := createTestInventoryService(t)
	id := uuid.New()

	fx.inventoryRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrInventoryNotFound)

	_, err := fx.service.GetInventory(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrInventoryNotFound)
}
