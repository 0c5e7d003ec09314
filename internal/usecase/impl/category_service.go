package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"

	deliverycontext "cafeteria/internal/delivery/context"
	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/domain/repository"
	"cafeteria/internal/domain/service"
	"cafeteria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	categoriesCacheNamespace = "categories"
	activeCategoriesCacheKey = "active"
)

// categoryService implements the CategoryUsecase interface. Hierarchy rules
// run against a CategoryTree built from the whole category table.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	cache        service.CatalogCache
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Cache        service.CatalogCache
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		cache:        params.Cache,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCategory creates a root category or, with a parent, a subcategory.
func (srv *categoryService) CreateCategory(ctx context.Context, input usecase.CreateCategoryInput) (*usecase.CategoryDetails, error) {
	name, err := entity.NewWord(input.Name)
	if err != nil {
		return nil, err
	}
	description, err := entity.NewWord(input.Description)
	if err != nil {
		return nil, err
	}

	var details *usecase.CategoryDetails
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		tree, all, err := loadCategoryTree(ctx, categoryRepo)
		if err != nil {
			return err
		}
		if err := ensureUniqueCategoryName(all, name, uuid.Nil); err != nil {
			return err
		}

		category, err := entity.NewCategory(name, description)
		if err != nil {
			return err
		}
		if input.ParentID != nil {
			if _, ok := tree.Get(*input.ParentID); !ok {
				return domainerrors.ErrCategoryNotFound.WithDetails("parent " + input.ParentID.String())
			}
			parentID := *input.ParentID
			category.ParentID = &parentID
		}
		if err := tree.Insert(category); err != nil {
			return err
		}

		if err := categoryRepo.Create(ctx, category); err != nil {
			return errors.Wrap(err, "failed to create category")
		}
		details = describeCategory(tree, category)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.invalidate(ctx)
	srv.log(ctx).Info("Category created",
		slog.String("categoryID", details.Category.ID.String()),
		slog.String("path", details.Path),
	)

	return details, nil
}

// GetCategory returns a category with its path and depth.
func (srv *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*usecase.CategoryDetails, error) {
	tree, _, err := loadCategoryTree(ctx, srv.categoryRepo)
	if err != nil {
		return nil, err
	}

	category, ok := tree.Get(id)
	if !ok {
		return nil, domainerrors.ErrCategoryNotFound
	}

	return describeCategory(tree, category), nil
}

// SearchCategories pages through categories matching query.
func (srv *categoryService) SearchCategories(ctx context.Context, query usecase.CategorySearchQuery, page entity.PageRequest) (entity.Page[*entity.Category], error) {
	result, err := srv.categoryRepo.Search(ctx, repository.CategorySearchCriteria{
		Name:   query.Name,
		Active: query.Active,
	}, page)
	if err != nil {
		return entity.Page[*entity.Category]{}, errors.Wrap(err, "failed to search categories")
	}

	return result, nil
}

// ListActiveCategories returns active categories by name. The result is cached.
func (srv *categoryService) ListActiveCategories(ctx context.Context) ([]*entity.Category, error) {
	if cached, err := srv.cache.Get(ctx, categoriesCacheNamespace, activeCategoriesCacheKey); err == nil {
		var categories []*entity.Category
		if err := json.Unmarshal(cached, &categories); err == nil {
			return categories, nil
		}
	} else if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Category cache read failed", slog.Any("error", err))
	}

	all, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	active := make([]*entity.Category, 0, len(all))
	for _, c := range all {
		if c.Active {
			active = append(active, c)
		}
	}
	slices.SortFunc(active, func(a, b *entity.Category) int {
		return a.Name.Compare(b.Name)
	})

	if data, err := json.Marshal(active); err == nil {
		if err := srv.cache.Set(ctx, categoriesCacheNamespace, activeCategoriesCacheKey, data); err != nil {
			srv.log(ctx).Warn("Category cache write failed", slog.Any("error", err))
		}
	}

	return active, nil
}

// ListSubcategories returns the direct children of id.
func (srv *categoryService) ListSubcategories(ctx context.Context, id uuid.UUID) ([]*entity.Category, error) {
	if _, err := srv.categoryRepo.FindByID(ctx, id); err != nil {
		return nil, wrapRepositoryError(err, "failed to find category")
	}

	children, err := srv.categoryRepo.FindChildren(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subcategories")
	}

	return children, nil
}

// UpdateCategory changes name and description.
func (srv *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input usecase.UpdateCategoryInput) (*usecase.CategoryDetails, error) {
	return srv.modify(ctx, id, func(tree *entity.CategoryTree, all []*entity.Category, category *entity.Category) ([]*entity.Category, error) {
		if input.Name != nil {
			name, err := entity.NewWord(*input.Name)
			if err != nil {
				return nil, err
			}
			if err := ensureUniqueCategoryName(all, name, id); err != nil {
				return nil, err
			}
			if err := category.ChangeName(name); err != nil {
				return nil, err
			}
		}
		if input.Description != nil {
			description, err := entity.NewWord(*input.Description)
			if err != nil {
				return nil, err
			}
			if err := category.ChangeDescription(description); err != nil {
				return nil, err
			}
		}

		return []*entity.Category{category}, nil
	})
}

// MoveCategory re-parents a category after checking for cycles.
func (srv *categoryService) MoveCategory(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) (*usecase.CategoryDetails, error) {
	return srv.modify(ctx, id, func(tree *entity.CategoryTree, _ []*entity.Category, category *entity.Category) ([]*entity.Category, error) {
		if err := tree.SetParent(id, parentID); err != nil {
			return nil, err
		}

		return []*entity.Category{category}, nil
	})
}

// ActivateCategory activates a single category.
func (srv *categoryService) ActivateCategory(ctx context.Context, id uuid.UUID) (*usecase.CategoryDetails, error) {
	return srv.modify(ctx, id, func(_ *entity.CategoryTree, _ []*entity.Category, category *entity.Category) ([]*entity.Category, error) {
		category.Activate()

		return []*entity.Category{category}, nil
	})
}

// DeactivateCategory deactivates a category and its whole subtree.
func (srv *categoryService) DeactivateCategory(ctx context.Context, id uuid.UUID) ([]*entity.Category, error) {
	var changed []*entity.Category
	_, err := srv.modify(ctx, id, func(tree *entity.CategoryTree, _ []*entity.Category, _ *entity.Category) ([]*entity.Category, error) {
		var err error
		changed, err = tree.Deactivate(id)

		return changed, err
	})
	if err != nil {
		return nil, err
	}

	return changed, nil
}

// DeleteCategory removes a category nothing refers to.
func (srv *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return wrapRepositoryError(err, "failed to delete category")
	}

	srv.invalidate(ctx)
	srv.log(ctx).Info("Category deleted", slog.String("categoryID", id.String()))

	return nil
}

// modify runs change inside a transaction against the full tree and persists
// every category change returns.
func (srv *categoryService) modify(
	ctx context.Context,
	id uuid.UUID,
	change func(tree *entity.CategoryTree, all []*entity.Category, category *entity.Category) ([]*entity.Category, error),
) (*usecase.CategoryDetails, error) {
	var details *usecase.CategoryDetails
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		tree, all, err := loadCategoryTree(ctx, categoryRepo)
		if err != nil {
			return err
		}
		category, ok := tree.Get(id)
		if !ok {
			return domainerrors.ErrCategoryNotFound
		}

		changed, err := change(tree, all, category)
		if err != nil {
			return err
		}
		if err := categoryRepo.Update(ctx, changed...); err != nil {
			return wrapRepositoryError(err, "failed to update category")
		}
		details = describeCategory(tree, category)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.invalidate(ctx)

	return details, nil
}

func (srv *categoryService) invalidate(ctx context.Context) {
	invalidateCatalog(ctx, srv.cache, srv.log(ctx), categoriesCacheNamespace)
}

func loadCategoryTree(ctx context.Context, categoryRepo repository.CategoryRepository) (*entity.CategoryTree, []*entity.Category, error) {
	all, err := categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load categories")
	}

	tree, err := entity.NewCategoryTree(all)
	if err != nil {
		return nil, nil, errors.Wrap(err, "stored category hierarchy is inconsistent")
	}

	return tree, all, nil
}

// ensureUniqueCategoryName compares names ignoring case and accents. except is
// the category being renamed, uuid.Nil when creating.
func ensureUniqueCategoryName(all []*entity.Category, name entity.Word, except uuid.UUID) error {
	for _, c := range all {
		if c.ID != except && c.Name.Equals(name) {
			return domainerrors.ErrCategoryAlreadyExists.WithDetails(name.String())
		}
	}

	return nil
}

func describeCategory(tree *entity.CategoryTree, category *entity.Category) *usecase.CategoryDetails {
	return &usecase.CategoryDetails{
		Category:         category,
		Path:             tree.Path(category.ID),
		Depth:            tree.Depth(category.ID),
		HasSubcategories: tree.HasSubcategories(category.ID),
	}
}
