package handler

import (
	"net/http"
	"testing"

	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"
	mockUsecase "cafeteria/internal/mocks/usecase"
	"cafeteria/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCategoryHandler(t *testing.T) (*CategoryHandler, *mockUsecase.MockCategoryUsecase) {
	categoryUC := mockUsecase.NewMockCategoryUsecase(t)

	return NewCategoryHandler(CategoryHandlerParams{CategoryUC: categoryUC, Logger: newDiscardLogger()}), categoryUC
}

func newTestCategory(t *testing.T, name string) *entity.Category {
	t.Helper()

	category, err := entity.NewCategory(entity.MustWord(name), entity.MustWord("Drinks and more"))
	require.NoError(t, err)

	return category
}

func adminRequest(method, route, target, body string) testRequest {
	return testRequest{
		method: method,
		route:  route,
		target: target,
		body:   body,
		userID: uuid.New(),
		roles:  entity.Roles{entity.RoleUserAdmin},
	}
}

func TestCategoryHandler_CreateSubcategory(t *testing.T) {
	h, categoryUC := newTestCategoryHandler(t)
	parent := newTestCategory(t, "Beverages")
	child := newTestCategory(t, "HotBeverages")
	child.ParentID = &parent.ID
	categoryUC.EXPECT().CreateCategory(mock.Anything, usecase.CreateCategoryInput{
		Name:        "HotBeverages",
		Description: "Drinks and more",
		ParentID:    &parent.ID,
	}).Return(&usecase.CategoryDetails{Category: child, Path: "Beverages > HotBeverages", Depth: 1}, nil)

	rec := serve(h.CreateSubcategory, adminRequest(http.MethodPost,
		"/api/categories/:id/subcategories",
		"/api/categories/"+parent.ID.String()+"/subcategories",
		`{"name":"HotBeverages","description":"Drinks and more"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeData[CategoryDetailsResponse](t, rec)
	assert.Equal(t, "Beverages > HotBeverages", got.Path)
	assert.Equal(t, 1, got.Depth)
	require.NotNil(t, got.ParentCategoryID)
	assert.Equal(t, parent.ID, *got.ParentCategoryID)
}

func TestCategoryHandler_MoveCategory(t *testing.T) {
	t.Run("null parent makes a root", func(t *testing.T) {
		h, categoryUC := newTestCategoryHandler(t)
		category := newTestCategory(t, "Salads")
		categoryUC.EXPECT().MoveCategory(mock.Anything, category.ID, (*uuid.UUID)(nil)).
			Return(&usecase.CategoryDetails{Category: category, Path: "Salads"}, nil)

		rec := serve(h.MoveCategory, adminRequest(http.MethodPatch,
			"/api/categories/:id/parent",
			"/api/categories/"+category.ID.String()+"/parent",
			`{"parentId":null}`))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, decodeData[CategoryDetailsResponse](t, rec).ParentCategoryID)
	})

	t.Run("cycle", func(t *testing.T) {
		h, categoryUC := newTestCategoryHandler(t)
		id, parentID := uuid.New(), uuid.New()
		categoryUC.EXPECT().MoveCategory(mock.Anything, id, &parentID).
			Return(nil, domainerrors.InvalidArgument("category cannot become its own descendant"))

		rec := serve(h.MoveCategory, adminRequest(http.MethodPatch,
			"/api/categories/:id/parent",
			"/api/categories/"+id.String()+"/parent",
			`{"parentId":"`+parentID.String()+`"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ARGUMENT", errorCode(t, rec))
	})
}

func TestCategoryHandler_DeactivateCategory(t *testing.T) {
	h, categoryUC := newTestCategoryHandler(t)
	parent := newTestCategory(t, "Beverages")
	child := newTestCategory(t, "ColdBeverages")
	parent.Deactivate()
	child.Deactivate()
	categoryUC.EXPECT().DeactivateCategory(mock.Anything, parent.ID).Return([]*entity.Category{parent, child}, nil)

	rec := serve(h.DeactivateCategory, adminRequest(http.MethodPatch,
		"/api/categories/:id/deactivate",
		"/api/categories/"+parent.ID.String()+"/deactivate", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[[]CategoryResponse](t, rec)
	require.Len(t, got, 2)
	assert.False(t, got[1].Active)
}

func TestCategoryHandler_DeleteCategory_InUse(t *testing.T) {
	h, categoryUC := newTestCategoryHandler(t)
	id := uuid.New()
	categoryUC.EXPECT().DeleteCategory(mock.Anything, id).Return(domainerrors.ErrCategoryInUse)

	rec := serve(h.DeleteCategory, adminRequest(http.MethodDelete,
		"/api/categories/:id", "/api/categories/"+id.String(), ""))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CATEGORY_IN_USE", errorCode(t, rec))
}

func TestCategoryHandler_SearchCategories(t *testing.T) {
	h, categoryUC := newTestCategoryHandler(t)
	active := false
	categoryUC.EXPECT().SearchCategories(mock.Anything, usecase.CategorySearchQuery{Name: "bev", Active: &active},
		entity.PageRequest{Page: 2, Size: 20}).
		Return(entity.NewPage([]*entity.Category{newTestCategory(t, "Beverages")}, entity.PageRequest{Page: 2, Size: 20}, 41), nil)

	rec := serve(h.SearchCategories, testRequest{
		method: http.MethodGet,
		route:  "/api/categories",
		target: "/api/categories?name=bev&active=false&page=2",
		userID: uuid.New(),
		roles:  entity.Roles{entity.RoleCustomer},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeData[map[string]any](t, rec)
	assert.EqualValues(t, 3, page["totalPages"])
	assert.Equal(t, true, page["last"])
	assert.Equal(t, false, page["hasNext"])
}
