package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

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

const productsCacheNamespace = "products"

// productService implements the ProductUsecase interface. Stock figures are
// read from and written to the product's inventory record.
type productService struct {
	txManager     repository.TransactionManager
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	inventoryRepo repository.InventoryRepository
	cache         service.CatalogCache
	logger        *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ProductRepo   repository.ProductRepository
	CategoryRepo  repository.CategoryRepository
	InventoryRepo repository.InventoryRepository
	Cache         service.CatalogCache
	Logger        *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:     params.TxManager,
		productRepo:   params.ProductRepo,
		categoryRepo:  params.CategoryRepo,
		inventoryRepo: params.InventoryRepo,
		cache:         params.Cache,
		logger:        params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct adds a product to an existing category.
func (srv *productService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*usecase.ProductView, error) {
	name, err := entity.NewWord(input.Name)
	if err != nil {
		return nil, err
	}
	description, err := entity.NewWord(input.Description)
	if err != nil {
		return nil, err
	}
	if input.InitialStock != nil && *input.InitialStock < 0 {
		return nil, domainerrors.InvalidArgument("stock quantity cannot be negative")
	}

	var view *usecase.ProductView
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewCategoryRepository().FindByID(ctx, input.CategoryID); err != nil {
			return wrapRepositoryError(err, "failed to find category")
		}

		product, err := entity.NewProduct(name, description, input.Price, input.CategoryID, input.ImageURL)
		if err != nil {
			return err
		}
		if err := repoFactory.NewProductRepository().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		view = &usecase.ProductView{Product: product}
		if input.InitialStock != nil {
			stock := *input.InitialStock
			inventory, err := entity.NewInventory(product.ID, stock, entity.DefaultStockLevels(stock))
			if err != nil {
				return err
			}
			if err := repoFactory.NewInventoryRepository().Create(ctx, inventory); err != nil {
				return wrapRepositoryError(err, "failed to create inventory")
			}
			view.StockQuantity = stock
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateCatalog(ctx, srv.cache, srv.log(ctx), productsCacheNamespace)
	srv.log(ctx).Info("Product created",
		slog.String("productID", view.Product.ID.String()),
		slog.String("categoryID", input.CategoryID.String()),
	)

	return view, nil
}

// GetProduct returns a product with its stock.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*usecase.ProductView, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepositoryError(err, "failed to find product")
	}

	views, err := withStock(ctx, srv.inventoryRepo, []*entity.Product{product})
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

// SearchProducts pages through products matching query.
func (srv *productService) SearchProducts(ctx context.Context, query usecase.ProductSearchQuery, page entity.PageRequest) (entity.Page[*usecase.ProductView], error) {
	if query.MinPrice != nil && query.MaxPrice != nil && query.MinPrice.GreaterThan(*query.MaxPrice) {
		return entity.Page[*usecase.ProductView]{}, domainerrors.InvalidArgument("minimum price cannot be greater than maximum price")
	}

	return srv.search(ctx, repository.ProductSearchCriteria{
		Name:       query.Name,
		CategoryID: query.CategoryID,
		Active:     query.Active,
		MinPrice:   query.MinPrice,
		MaxPrice:   query.MaxPrice,
		MinStock:   query.MinStock,
	}, page)
}

// ListActiveProducts pages through active products. Pages are cached.
func (srv *productService) ListActiveProducts(ctx context.Context, page entity.PageRequest) (entity.Page[*usecase.ProductView], error) {
	key := fmt.Sprintf("active:%d:%d", page.Page, page.Size)

	return srv.cached(ctx, key, func() (entity.Page[*usecase.ProductView], error) {
		active := true

		return srv.search(ctx, repository.ProductSearchCriteria{Active: &active}, page)
	})
}

// ListProductsByCategory pages through the products of one category. Pages are cached.
func (srv *productService) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID, page entity.PageRequest) (entity.Page[*usecase.ProductView], error) {
	if _, err := srv.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return entity.Page[*usecase.ProductView]{}, wrapRepositoryError(err, "failed to find category")
	}

	key := fmt.Sprintf("category:%s:%d:%d", categoryID, page.Page, page.Size)

	return srv.cached(ctx, key, func() (entity.Page[*usecase.ProductView], error) {
		return srv.search(ctx, repository.ProductSearchCriteria{CategoryID: &categoryID}, page)
	})
}

// ListLowStockProducts returns products holding fewer than entity.LowStockThreshold units.
func (srv *productService) ListLowStockProducts(ctx context.Context, page entity.PageRequest) (entity.Page[*usecase.ProductView], error) {
	threshold := entity.LowStockThreshold

	return srv.search(ctx, repository.ProductSearchCriteria{StockBelow: &threshold}, page)
}

// UpdateProduct applies the set fields of input.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input usecase.UpdateProductInput) (*usecase.ProductView, error) {
	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		var err error
		product, err = productRepo.FindByID(ctx, id)
		if err != nil {
			return wrapRepositoryError(err, "failed to find product")
		}
		if input.CategoryID != nil {
			if _, err := repoFactory.NewCategoryRepository().FindByID(ctx, *input.CategoryID); err != nil {
				return wrapRepositoryError(err, "failed to find category")
			}
		}
		if err := applyProductChanges(product, input); err != nil {
			return err
		}

		return wrapRepositoryError(productRepo.Update(ctx, product), "failed to update product")
	})
	if err != nil {
		return nil, err
	}

	invalidateCatalog(ctx, srv.cache, srv.log(ctx), productsCacheNamespace)

	views, err := withStock(ctx, srv.inventoryRepo, []*entity.Product{product})
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

// UpdateStock sets the inventory quantity of a product, creating the
// inventory record with default levels when the product has none.
func (srv *productService) UpdateStock(ctx context.Context, id uuid.UUID, quantity int) (*usecase.ProductView, error) {
	if quantity < 0 {
		return nil, domainerrors.InvalidArgument("stock quantity cannot be negative")
	}

	var view *usecase.ProductView
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := repoFactory.NewProductRepository().FindByID(ctx, id)
		if err != nil {
			return wrapRepositoryError(err, "failed to find product")
		}

		inventoryRepo := repoFactory.NewInventoryRepository()
		locked, err := inventoryRepo.LockByProductIDs(ctx, []uuid.UUID{id})
		if err != nil {
			return errors.Wrap(err, "failed to lock inventory")
		}

		var inventory *entity.Inventory
		if len(locked) == 0 {
			inventory, err = entity.NewInventory(id, quantity, entity.DefaultStockLevels(quantity))
			if err != nil {
				return err
			}
			if err := inventoryRepo.Create(ctx, inventory); err != nil {
				return wrapRepositoryError(err, "failed to create inventory")
			}
		} else {
			inventory = locked[0]
			if err := inventory.UpdateQuantity(quantity); err != nil {
				return err
			}
			if err := inventoryRepo.Update(ctx, inventory); err != nil {
				return wrapRepositoryError(err, "failed to update inventory")
			}
		}

		view = &usecase.ProductView{Product: product, StockQuantity: inventory.CurrentQuantity}

		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateCatalog(ctx, srv.cache, srv.log(ctx), productsCacheNamespace)
	srv.log(ctx).Info("Product stock updated",
		slog.String("productID", id.String()),
		slog.Int("quantity", quantity),
	)

	return view, nil
}

// DeleteProduct deactivates the product.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return wrapRepositoryError(err, "failed to find product")
		}
		product.Deactivate()

		return wrapRepositoryError(productRepo.Update(ctx, product), "failed to deactivate product")
	})
	if err != nil {
		return err
	}

	invalidateCatalog(ctx, srv.cache, srv.log(ctx), productsCacheNamespace)
	srv.log(ctx).Info("Product deactivated", slog.String("productID", id.String()))

	return nil
}

func (srv *productService) search(ctx context.Context, criteria repository.ProductSearchCriteria, page entity.PageRequest) (entity.Page[*usecase.ProductView], error) {
	result, err := srv.productRepo.Search(ctx, criteria, page)
	if err != nil {
		return entity.Page[*usecase.ProductView]{}, errors.Wrap(err, "failed to search products")
	}

	views, err := withStock(ctx, srv.inventoryRepo, result.Content)
	if err != nil {
		return entity.Page[*usecase.ProductView]{}, err
	}

	return entity.Page[*usecase.ProductView]{
		Content:       views,
		Number:        result.Number,
		Size:          result.Size,
		TotalElements: result.TotalElements,
	}, nil
}

// cached serves key from the products namespace, calling load on a miss.
// Cache failures only cost a database round trip.
func (srv *productService) cached(
	ctx context.Context,
	key string,
	load func() (entity.Page[*usecase.ProductView], error),
) (entity.Page[*usecase.ProductView], error) {
	if data, err := srv.cache.Get(ctx, productsCacheNamespace, key); err == nil {
		var page entity.Page[*usecase.ProductView]
		if err := json.Unmarshal(data, &page); err == nil {
			return page, nil
		}
	} else if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Product cache read failed", slog.Any("error", err))
	}

	page, err := load()
	if err != nil {
		return page, err
	}

	if data, err := json.Marshal(page); err == nil {
		if err := srv.cache.Set(ctx, productsCacheNamespace, key, data); err != nil {
			srv.log(ctx).Warn("Product cache write failed", slog.Any("error", err))
		}
	}

	return page, nil
}

func applyProductChanges(product *entity.Product, input usecase.UpdateProductInput) error {
	if input.Name != nil {
		name, err := entity.NewWord(*input.Name)
		if err != nil {
			return err
		}
		if err := product.ChangeName(name); err != nil {
			return err
		}
	}
	if input.Description != nil {
		description, err := entity.NewWord(*input.Description)
		if err != nil {
			return err
		}
		if err := product.ChangeDescription(description); err != nil {
			return err
		}
	}
	if input.Price != nil {
		if err := product.ChangePrice(*input.Price); err != nil {
			return err
		}
	}
	if input.CategoryID != nil {
		if err := product.ChangeCategory(*input.CategoryID); err != nil {
			return err
		}
	}
	if input.ImageURL != nil {
		product.ChangeImageURL(*input.ImageURL)
	}
	if input.Active != nil {
		if *input.Active {
			product.Activate()
		} else {
			product.Deactivate()
		}
	}

	return nil
}

// withStock pairs every product with its inventory quantity. Products without
// an inventory record hold zero units.
func withStock(ctx context.Context, inventoryRepo repository.InventoryRepository, products []*entity.Product) ([]*usecase.ProductView, error) {
	views := make([]*usecase.ProductView, 0, len(products))
	if len(products) == 0 {
		return views, nil
	}

	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	inventories, err := inventoryRepo.FindByProductIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load stock")
	}

	stock := make(map[uuid.UUID]int, len(inventories))
	for _, inv := range inventories {
		stock[inv.ProductID] = inv.CurrentQuantity
	}
	for _, p := range products {
		views = append(views, &usecase.ProductView{Product: p, StockQuantity: stock[p.ID]})
	}

	return views, nil
}

func invalidateCatalog(ctx context.Context, cache service.CatalogCache, logger *slog.Logger, namespace string) {
	if err := cache.Invalidate(ctx, namespace); err != nil {
		logger.Warn("Catalog cache invalidation failed",
			slog.String("namespace", namespace),
			slog.Any("error", err),
		)
	}
}
