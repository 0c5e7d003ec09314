package handler

import (
	"log/slog"
	"net/http"

	"cafeteria/internal/delivery/api/response"
	"cafeteria/internal/domain/entity"
	"cafeteria/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Logger     *slog.Logger
}

// CategoryHandler serves the category hierarchy.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler.
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		logger:     params.Logger,
	}
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"required,min=5,max=255"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=50"`
	Description *string `json:"description" validate:"omitempty,min=5,max=255"`
}

type MoveCategoryRequest struct {
	ParentID *uuid.UUID `json:"parentId"`
}

// CreateCategory creates a root category.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	return h.create(c, nil)
}

// CreateSubcategory creates a category under :id.
func (h *CategoryHandler) CreateSubcategory(c echo.Context) error {
	parentID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	return h.create(c, &parentID)
}

func (h *CategoryHandler) create(c echo.Context, parentID *uuid.UUID) error {
	var req CreateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	details, err := h.categoryUC.CreateCategory(c.Request().Context(), usecase.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    parentID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCategoryDetailsResponse(details))
}

// SearchCategories pages through categories filtered by name and active flag.
func (h *CategoryHandler) SearchCategories(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return errors.WithStack(err)
	}

	active, err := queryBool(c, "active")
	if err != nil {
		return errors.WithStack(err)
	}

	categories, err := h.categoryUC.SearchCategories(c.Request().Context(), usecase.CategorySearchQuery{
		Name:   c.QueryParam("name"),
		Active: active,
	}, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, entity.MapPage(categories, newCategoryResponse))
}

// ListActiveCategories returns every active category sorted by name.
func (h *CategoryHandler) ListActiveCategories(c echo.Context) error {
	categories, err := h.categoryUC.ListActiveCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryResponses(categories))
}

// GetCategory returns a category with its path and depth.
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	details, err := h.categoryUC.GetCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryDetailsResponse(details))
}

// ListSubcategories returns the direct children of :id.
func (h *CategoryHandler) ListSubcategories(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	children, err := h.categoryUC.ListSubcategories(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryResponses(children))
}

// UpdateCategory changes the name or description.
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req UpdateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	details, err := h.categoryUC.UpdateCategory(c.Request().Context(), id, usecase.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryDetailsResponse(details))
}

// MoveCategory re-parents :id. A null parentId makes it a root.
func (h *CategoryHandler) MoveCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req MoveCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	details, err := h.categoryUC.MoveCategory(c.Request().Context(), id, req.ParentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryDetailsResponse(details))
}

// ActivateCategory activates :id only.
func (h *CategoryHandler) ActivateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	details, err := h.categoryUC.ActivateCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryDetailsResponse(details))
}

// DeactivateCategory deactivates :id and its descendants.
func (h *CategoryHandler) DeactivateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	changed, err := h.categoryUC.DeactivateCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryResponses(changed))
}

// DeleteCategory removes an unreferenced category.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
