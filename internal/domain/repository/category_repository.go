package repository

import (
	"context"
	"errors"

	"cafeteria/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrCategoryNotFound is returned when a category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryInUse is returned when a category cannot be removed because other rows reference it.
	ErrCategoryInUse = errors.New("category in use")
)

// CategorySearchCriteria filters categories. Empty fields are ignored.
type CategorySearchCriteria struct {
	Name   string
	Active *bool
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	// FindByID retrieves a category by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAll loads every category; used to build a CategoryTree.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindChildren returns the direct subcategories of parentID.
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.Category, error)

	// Search returns a page of categories matching criteria, ordered by name.
	Search(ctx context.Context, criteria CategorySearchCriteria, page entity.PageRequest) (entity.Page[*entity.Category], error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update saves name, description, parent and activation of each category.
	Update(ctx context.Context, categories ...*entity.Category) error

	// Delete removes a category. ErrCategoryInUse is returned when products or
	// subcategories still point to it.
	Delete(ctx context.Context, id uuid.UUID) error
}
