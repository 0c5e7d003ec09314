package impl

import (
	"context"
	"encoding/json"
	"testing"

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

type productServiceFixtures struct {
	service       usecase.ProductUsecase
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	productRepo   *mockRepo.MockProductRepository
	categoryRepo  *mockRepo.MockCategoryRepository
	inventoryRepo *mockRepo.MockInventoryRepository
	cache         *mockService.MockCatalogCache
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	cache := mockService.NewMockCatalogCache(t)

	return productServiceFixtures{
		service: NewProductService(ProductServiceParams{
			TxManager:     txManager,
			ProductRepo:   productRepo,
			CategoryRepo:  categoryRepo,
			InventoryRepo: inventoryRepo,
			Cache:         cache,
			Logger:        newDiscardLogger(),
		}),
		txManager:     txManager,
		factory:       factory,
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		inventoryRepo: inventoryRepo,
		cache:         cache,
	}
}

func newProduct(t *testing.T, name string, price string) *entity.Product {
	t.Helper()

	p, err := entity.NewProduct(entity.MustWord(name), entity.MustWord("Tasty"), decimal.RequireFromString(price), uuid.New(), "")
	require.NoError(t, err)

	return p
}

func newInventory(t *testing.T, productID uuid.UUID, quantity int) *entity.Inventory {
	t.Helper()

	inv, err := entity.NewInventory(productID, quantity, entity.DefaultStockLevels(quantity))
	require.NoError(t, err)

	return inv
}

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("with initial stock", func(t *testing.T) {
		fx := createTestProductService(t)
		category := newCategory(t, "Beverages", nil)
		stock := 25

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewCategoryRepository().Return(fx.categoryRepo)
		fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
		fx.factory.EXPECT().NewInventoryRepository().Return(fx.inventoryRepo)
		fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
		fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
		fx.inventoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Inventory")).
			Run(func(_ context.Context, inventory *entity.Inventory) {
				assert.Equal(t, 25, inventory.CurrentQuantity)
				assert.Equal(t, entity.DefaultMaximumStockLevel, inventory.MaximumStockLevel)
				assert.True(t, inventory.Active)
			}).
			Return(nil)
		fx.cache.EXPECT().Invalidate(ctx, productsCacheNamespace).Return(nil)

		view, err := fx.service.CreateProduct(ctx, usecase.CreateProductInput{
			Name:         "Espresso",
			Description:  "Short coffee",
			Price:        decimal.RequireFromString("1.50"),
			CategoryID:   category.ID,
			InitialStock: &stock,
		})

		require.NoError(t, err)
		assert.Equal(t, 25, view.StockQuantity)
		assert.Equal(t, category.ID, view.Product.CategoryID)
		assert.True(t, view.Product.Active)
	})

	t.Run("unknown category", func(t *testing.T) {
		fx := createTestProductService(t)
		categoryID := uuid.New()

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewCategoryRepository().Return(fx.categoryRepo)
		fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

		_, err := fx.service.CreateProduct(ctx, usecase.CreateProductInput{
			Name:        "Espresso",
			Description: "Short coffee",
			Price:       decimal.RequireFromString("1.50"),
			CategoryID:  categoryID,
		})

		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	})

	t.Run("negative price", func(t *testing.T) {
		fx := createTestProductService(t)
		category := newCategory(t, "Beverages", nil)

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewCategoryRepository().Return(fx.categoryRepo)
		fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)

		_, err := fx.service.CreateProduct(ctx, usecase.CreateProductInput{
			Name:        "Espresso",
			Description: "Short coffee",
			Price:       decimal.RequireFromString("-1"),
			CategoryID:  category.ID,
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	})
}

func TestProductService_GetProduct_ReadsStockFromInventory(t *testing.T) {
	ctx := context.Background()

	t.Run("with inventory", func(t *testing.T) {
		fx := createTestProductService(t)
		product := newProduct(t, "Latte", "2.80")

		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.inventoryRepo.EXPECT().FindByProductIDs(ctx, []uuid.UUID{product.ID}).
			Return([]*entity.Inventory{newInventory(t, product.ID, 7)}, nil)

		view, err := fx.service.GetProduct(ctx, product.ID)

		require.NoError(t, err)
		assert.Equal(t, 7, view.StockQuantity)
	})

	t.Run("without inventory", func(t *testing.T) {
		fx := createTestProductService(t)
		product := newProduct(t, "Latte", "2.80")

		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.inventoryRepo.EXPECT().FindByProductIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Inventory{}, nil)

		view, err := fx.service.GetProduct(ctx, product.ID)

		require.NoError(t, err)
		assert.Equal(t, 0, view.StockQuantity)
	})

	t.Run("missing product", func(t *testing.T) {
		fx := createTestProductService(t)
		id := uuid.New()

		fx.productRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.GetProduct(ctx, id)

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestProductService_UpdateStock(t *testing.T) {
	ctx := context.Background()

	t.Run("creates missing inventory", func(t *testing.T) {
		fx := createTestProductService(t)
		product := newProduct(t, "Lemonade", "2.00")

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
		fx.factory.EXPECT().NewInventoryRepository().Return(fx.inventoryRepo)
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.inventoryRepo.EXPECT().LockByProductIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Inventory{}, nil)
		fx.inventoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Inventory")).Return(nil)
		fx.cache.EXPECT().Invalidate(ctx, productsCacheNamespace).Return(nil)

		view, err := fx.service.UpdateStock(ctx, product.ID, 80)

		require.NoError(t, err)
		assert.Equal(t, 80, view.StockQuantity)
	})

	t.Run("updates existing inventory", func(t *testing.T) {
		fx := createTestProductService(t)
		product := newProduct(t, "Lemonade", "2.00")
		inventory := newInventory(t, product.ID, 3)

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
		fx.factory.EXPECT().NewInventoryRepository().Return(fx.inventoryRepo)
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.inventoryRepo.EXPECT().LockByProductIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Inventory{inventory}, nil)
		fx.inventoryRepo.EXPECT().Update(ctx, inventory).Return(nil)
		fx.cache.EXPECT().Invalidate(ctx, productsCacheNamespace).Return(nil)

		view, err := fx.service.UpdateStock(ctx, product.ID, 40)

		require.NoError(t, err)
		assert.Equal(t, 40, view.StockQuantity)
		assert.Equal(t, 40, inventory.CurrentQuantity)
	})

	t.Run("negative quantity", func(t *testing.T) {
		fx := createTestProductService(t)

		_, err := fx.service.UpdateStock(ctx, uuid.New(), -1)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	})
}

func TestProductService_ListLowStockProducts(t *testing.T) {
	ctx := context.Background()
	fx := createTestProductService(t)
	product := newProduct(t, "Muffin", "1.20")
	page := entity.NewPageRequest(0, 20)

	fx.productRepo.EXPECT().
		Search(ctx, mock.MatchedBy(func(c repository.ProductSearchCriteria) bool {
			return c.StockBelow != nil && *c.StockBelow == entity.LowStockThreshold
		}), page).
		Return(entity.NewPage([]*entity.Product{product}, page, 1), nil)
	fx.inventoryRepo.EXPECT().FindByProductIDs(ctx, []uuid.UUID{product.ID}).
		Return([]*entity.Inventory{newInventory(t, product.ID, 4)}, nil)

	result, err := fx.service.ListLowStockProducts(ctx, page)

	require.NoError(t, err)
	require.Len(t, result.Content, 1)
	assert.Equal(t, 4, result.Content[0].StockQuantity)
	assert.Equal(t, int64(1), result.TotalElements)
}

func TestProductService_ListActiveProducts_Cache(t *testing.T) {
	ctx := context.Background()
	page := entity.NewPageRequest(0, 20)

	t.Run("miss", func(t *testing.T) {
		fx := createTestProductService(t)
		product := newProduct(t, "Muffin", "1.20")

		fx.cache.EXPECT().Get(ctx, productsCacheNamespace, "active:0:20").Return(nil, service.ErrCacheMiss)
		fx.productRepo.EXPECT().
			Search(ctx, mock.MatchedBy(func(c repository.ProductSearchCriteria) bool {
				return c.Active != nil && *c.Active
			}), page).
			Return(entity.NewPage([]*entity.Product{product}, page, 1), nil)
		fx.inventoryRepo.EXPECT().FindByProductIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Inventory{}, nil)
		fx.cache.EXPECT().Set(ctx, productsCacheNamespace, "active:0:20", mock.Anything).Return(nil)

		result, err := fx.service.ListActiveProducts(ctx, page)

		require.NoError(t, err)
		assert.Len(t, result.Content, 1)
	})

	t.Run("hit", func(t *testing.T) {
		fx := createTestProductService(t)
		product := newProduct(t, "Muffin", "1.20")
		cached := entity.NewPage([]*usecase.ProductView{{Product: product, StockQuantity: 12}}, page, 1)
		data, err := json.Marshal(cached)
		require.NoError(t, err)

		fx.cache.EXPECT().Get(ctx, productsCacheNamespace, "active:0:20").Return(data, nil)

		result, err := fx.service.ListActiveProducts(ctx, page)

		require.NoError(t, err)
		require.Len(t, result.Content, 1)
		assert.Equal(t, 12, result.Content[0].StockQuantity)
		assert.True(t, result.Content[0].Product.Price.Equal(product.Price))
	})

	t.Run("cache failure falls back to database", func(t *testing.T) {
		fx := createTestProductService(t)

		fx.cache.EXPECT().Get(ctx, productsCacheNamespace, "active:0:20").Return(nil, assert.AnError)
		fx.productRepo.EXPECT().Search(ctx, mock.Anything, page).
			Return(entity.NewPage([]*entity.Product{}, page, 0), nil)
		fx.cache.EXPECT().Set(ctx, productsCacheNamespace, "active:0:20", mock.Anything).Return(assert.AnError)

		result, err := fx.service.ListActiveProducts(ctx, page)

		require.NoError(t, err)
		assert.Empty(t, result.Content)
	})
}

func TestProductService_DeleteProduct_Deactivates(t *testing.T) {
	ctx := context.Background()
	fx := createTestProductService(t)
	product := newProduct(t, "Muffin", "1.20")

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Update(ctx, product).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, productsCacheNamespace).Return(nil)

	require.NoError(t, fx.service.DeleteProduct(ctx, product.ID))
	assert.False(t, product.Active)
}
