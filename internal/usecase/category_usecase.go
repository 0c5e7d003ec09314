package usecase

import (
	"context"

	"cafeteria/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput defines a new category. A nil ParentID creates a root.
type CreateCategoryInput struct {
	Name        string
	Description string
	ParentID    *uuid.UUID
}

// UpdateCategoryInput lists the editable texts. Nil fields are left unchanged.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

// CategorySearchQuery filters categories.
type CategorySearchQuery struct {
	Name   string
	Active *bool
}

// CategoryDetails is a category together with its position in the hierarchy.
type CategoryDetails struct {
	Category         *entity.Category
	Path             string
	Depth            int
	HasSubcategories bool
}

// CategoryUsecase manages the category hierarchy.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*CategoryDetails, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*CategoryDetails, error)
	SearchCategories(ctx context.Context, query CategorySearchQuery, page entity.PageRequest) (entity.Page[*entity.Category], error)
	ListActiveCategories(ctx context.Context) ([]*entity.Category, error)
	ListSubcategories(ctx context.Context, id uuid.UUID) ([]*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*CategoryDetails, error)

	// MoveCategory re-parents id; a nil parentID turns it into a root.
	MoveCategory(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) (*CategoryDetails, error)
	ActivateCategory(ctx context.Context, id uuid.UUID) (*CategoryDetails, error)

	// DeactivateCategory disables id and every descendant and returns all changed categories.
	DeactivateCategory(ctx context.Context, id uuid.UUID) ([]*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
