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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	categoryRepo *mockRepo.MockCategoryRepository
	cache        *mockService.MockCatalogCache
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	cache := mockService.NewMockCatalogCache(t)

	return categoryServiceFixtures{
		service: NewCategoryService(CategoryServiceParams{
			TxManager:    txManager,
			CategoryRepo: categoryRepo,
			Cache:        cache,
			Logger:       newDiscardLogger(),
		}),
		txManager:    txManager,
		factory:      factory,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// inTx wires the transaction and the transactional category repository.
func (fx categoryServiceFixtures) inTx() {
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewCategoryRepository().Return(fx.categoryRepo)
}

func newCategory(t *testing.T, name string, parent *entity.Category) *entity.Category {
	t.Helper()

	c, err := entity.NewCategory(entity.MustWord(name), entity.MustWord("Some description"))
	require.NoError(t, err)
	if parent != nil {
		id := parent.ID
		c.ParentID = &id
	}

	return c
}

func TestCategoryService_CreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("root", func(t *testing.T) {
		fx := createTestCategoryService(t)
		fx.inTx()
		fx.categoryRepo.EXPECT().FindAll(ctx).Return([]*entity.Category{}, nil)
		fx.categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)
		fx.cache.EXPECT().Invalidate(ctx, categoriesCacheNamespace).Return(nil)

		details, err := fx.service.CreateCategory(ctx, usecase.CreateCategoryInput{
			Name:        "Beverages",
			Description: "Things to drink",
		})

		require.NoError(t, err)
		assert.Equal(t, "Beverages", details.Path)
		assert.Equal(t, 0, details.Depth)
		assert.True(t, details.Category.IsRoot())
		assert.True(t, details.Category.Active)
	})

	t.Run("subcategory", func(t *testing.T) {
		fx := createTestCategoryService(t)
		beverages := newCategory(t, "Beverages", nil)

		fx.inTx()
		fx.categoryRepo.EXPECT().FindAll(ctx).Return([]*entity.Category{beverages}, nil)
		fx.categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)
		fx.cache.EXPECT().Invalidate(ctx, categoriesCacheNamespace).Return(nil)

		details, err := fx.service.CreateCategory(ctx, usecase.CreateCategoryInput{
			Name:        "HotBeverages",
			Description: "Coffee and tea",
			ParentID:    &beverages.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, "Beverages > HotBeverages", details.Path)
		assert.Equal(t, 1, details.Depth)
		require.NotNil(t, details.Category.ParentID)
		assert.Equal(t, beverages.ID, *details.Category.ParentID)
	})

	t.Run("name clash ignores case and accents", func(t *testing.T) {
		fx := createTestCategoryService(t)
		fx.inTx()
		fx.categoryRepo.EXPECT().FindAll(ctx).Return([]*entity.Category{newCategory(t, "Café", nil)}, nil)

		_, err := fx.service.CreateCategory(ctx, usecase.CreateCategoryInput{
			Name:        "cafe",
			Description: "Duplicate",
		})

		assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
	})

	t.Run("unknown parent", func(t *testing.T) {
		fx := createTestCategoryService(t)
		parentID := uuid.New()
		fx.inTx()
		fx.categoryRepo.EXPECT().FindAll(ctx).Return([]*entity.Category{}, nil)

		_, err := fx.service.CreateCategory(ctx, usecase.CreateCategoryInput{
			Name:        "Orphan",
			Description: "No parent",
			ParentID:    &parentID,
		})

		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	})

	t.Run("invalid name", func(t *testing.T) {
		fx := createTestCategoryService(t)

		_, err := fx.service.CreateCategory(ctx, usecase.CreateCategoryInput{
			Name:        "1st",
			Description: "Starts with a digit",
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	})
}

func TestCategoryService_GetCategory(t *testing.T) {
	ctx := context.Background()
	fx := createTestCategoryService(t)
	beverages := newCategory(t, "Beverages", nil)
	hot := newCategory(t, "HotBeverages", beverages)

	fx.categoryRepo.EXPECT().FindAll(ctx).Return([]*entity.Category{beverages, hot}, nil).Once()

	details, err := fx.service.GetCategory(ctx, beverages.ID)

	require.NoError(t, err)
	assert.True(t, details.HasSubcategories)
	assert.Equal(t, "Beverages", details.Path)

	fx.categoryRepo.EXPECT().FindAll(ctx).Return([]*entity.Category{beverages}, nil).Once()
	_, err = fx.service.GetCategory(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_MoveCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects cycle", func(t *testing.T) {
		fx := createTestCategoryService(t)
		a := newCategory(t, "Alpha", nil)
		b := newCategory(t, "Beta", a)

		fx.inTx()
		fx.categoryRepo.EXPECT().FindAll(ctx).Return([]*entity.Category{a, b}, nil)

		_, err := fx.service.MoveCategory(ctx, a.ID, &b.ID)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	})

	t.Run("to root", func(t *testing.T) {
		fx := createTestCategoryService(t)
		a := newCategory(t, "Alpha", nil)
		b := newCategory(t, "Beta", a)

		fx.inTx()
		fx.categoryRepo.EXPECT().FindAll(ctx).Return([]*entity.Category{a, b}, nil)
		fx.categoryRepo.EXPECT().Update(ctx, b).Return(nil)
		fx.cache.EXPECT().Invalidate(ctx, categoriesCacheNamespace).Return(nil)

		details, err := fx.service.MoveCategory(ctx, b.ID, nil)

		require.NoError(t, err)
		assert.True(t, details.Category.IsRoot())
		assert.Equal(t, "Beta", details.Path)
	})
}

func TestCategoryService_UpdateCategory_RenameKeepsOwnName(t *testing.T) {
	ctx := context.Background()
	fx := createTestCategoryService(t)
	beverages := newCategory(t, "Beverages", nil)
	name := "BEVERAGES"

	fx.inTx()
	fx.categoryRepo.EXPECT().FindAll(ctx).Return([]*entity.Category{beverages}, nil)
	fx.categoryRepo.EXPECT().Update(ctx, beverages).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, categoriesCacheNamespace).Return(nil)

	details, err := fx.service.UpdateCategory(ctx, beverages.ID, usecase.UpdateCategoryInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "BEVERAGES", details.Category.Name.String())
}

func TestCategoryService_DeactivateCategory_Cascades(t *testing.T) {
	ctx := context.Background()
	fx := createTestCategoryService(t)
	food := newCategory(t, "Food", nil)
	salads := newCategory(t, "Salads", food)
	drinks := newCategory(t, "Drinks", nil)

	fx.inTx()
	fx.categoryRepo.EXPECT().FindAll(ctx).Return([]*entity.Category{food, salads, drinks}, nil)
	fx.categoryRepo.EXPECT().Update(ctx, food, salads).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, categoriesCacheNamespace).Return(nil)

	changed, err := fx.service.DeactivateCategory(ctx, food.ID)

	require.NoError(t, err)
	assert.Equal(t, []*entity.Category{food, salads}, changed)
	assert.False(t, salads.Active)
	assert.True(t, drinks.Active)
}

func TestCategoryService_ListActiveCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss loads and stores", func(t *testing.T) {
		fx := createTestCategoryService(t)
		tea := newCategory(t, "Tea", nil)
		coffee := newCategory(t, "Coffee", nil)
		old := newCategory(t, "Old", nil)
		old.Deactivate()

		fx.cache.EXPECT().Get(ctx, categoriesCacheNamespace, activeCategoriesCacheKey).Return(nil, service.ErrCacheMiss)
		fx.categoryRepo.EXPECT().FindAll(ctx).Return([]*entity.Category{tea, old, coffee}, nil)
		fx.cache.EXPECT().Set(ctx, categoriesCacheNamespace, activeCategoriesCacheKey, mock.Anything).Return(nil)

		categories, err := fx.service.ListActiveCategories(ctx)

		require.NoError(t, err)
		assert.Equal(t, []*entity.Category{coffee, tea}, categories)
	})

	t.Run("cache hit", func(t *testing.T) {
		fx := createTestCategoryService(t)
		tea := newCategory(t, "Tea", nil)
		data, err := json.Marshal([]*entity.Category{tea})
		require.NoError(t, err)

		fx.cache.EXPECT().Get(ctx, categoriesCacheNamespace, activeCategoriesCacheKey).Return(data, nil)

		categories, err := fx.service.ListActiveCategories(ctx)

		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, tea.ID, categories[0].ID)
		assert.True(t, categories[0].Name.Equals(tea.Name))
	})
}

func TestCategoryService_DeleteCategory_InUse(t *testing.T) {
	ctx := context.Background()
	fx := createTestCategoryService(t)
	id := uuid.New()

	fx.categoryRepo.EXPECT().Delete(ctx, id).Return(repository.ErrCategoryInUse)

	err := fx.service.DeleteCategory(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrCategoryInUse)
}
