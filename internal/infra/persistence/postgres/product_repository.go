package postgres

import (
	"context"

	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/domain/repository"
	"cafeteria/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository returns a GORM backed repository.ProductRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var m model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&m), nil
}

func (repo *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	var m model.ProductModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by name")
	}

	return toProductDomain(&m), nil
}

// Search joins the inventory only when a stock bound is requested.
func (repo *productRepository) Search(ctx context.Context, criteria repository.ProductSearchCriteria, page entity.PageRequest) (entity.Page[*entity.Product], error) {
	query := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.ProductModel{})
	if criteria.Name != "" {
		query = query.Where("products.name ILIKE ?", containsPattern(criteria.Name))
	}
	if criteria.CategoryID != nil {
		query = query.Where("products.category_id = ?", *criteria.CategoryID)
	}
	if criteria.Active != nil {
		query = query.Where("products.active = ?", *criteria.Active)
	}
	if criteria.MinPrice != nil {
		query = query.Where("products.price >= ?", *criteria.MinPrice)
	}
	if criteria.MaxPrice != nil {
		query = query.Where("products.price <= ?", *criteria.MaxPrice)
	}
	if criteria.MinStock != nil || criteria.StockBelow != nil {
		query = query.Joins("LEFT JOIN inventories ON inventories.product_id = products.id")
		if criteria.MinStock != nil {
			query = query.Where("COALESCE(inventories.current_quantity, 0) >= ?", *criteria.MinStock)
		}
		if criteria.StockBelow != nil {
			query = query.Where("COALESCE(inventories.current_quantity, 0) < ?", *criteria.StockBelow)
		}
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return entity.Page[*entity.Product]{}, errors.Wrap(err, "failed to count products")
	}

	var models []*model.ProductModel
	err := query.Select("products.*").
		Scopes(paginate(page)).
		Order("products.name").
		Find(&models).Error
	if err != nil {
		return entity.Page[*entity.Product]{}, errors.Wrap(err, "failed to search products")
	}

	products := make([]*entity.Product, len(models))
	for i, m := range models {
		products[i] = toProductDomain(m)
	}

	return entity.NewPage(products, page, total), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	m := fromProductDomain(product)
	if err := repo.db.WithContext(ctx).Omit("Category").Create(m).Error; err != nil {
		switch {
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrCategoryNotFound.WithDetails("product category does not exist")
		case isCheckConstraintViolation(err), isNotNullConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
		}
	}

	product.ID = m.ID

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name.String(),
			"description": product.Description.String(),
			"price":       product.Price,
			"category_id": product.CategoryID,
			"active":      product.Active,
			"image_url":   product.ImageURL,
			"updated_at":  product.UpdatedAt,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WithDetails("product category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(m *model.ProductModel) *entity.Product {
	if m == nil {
		return nil
	}

	name, _ := entity.NewWord(m.Name)
	description, _ := entity.NewWord(m.Description)

	return &entity.Product{
		ID:          m.ID,
		Name:        name,
		Description: description,
		Price:       m.Price,
		CategoryID:  m.CategoryID,
		Active:      m.Active,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          p.ID,
		Name:        p.Name.String(),
		Description: p.Description.String(),
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		Active:      p.Active,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
