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

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository returns a GORM backed repository.CategoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var m model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&m), nil
}

func (repo *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var models []*model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("registration_date").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return toCategoryDomains(models), nil
}

func (repo *categoryRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.Category, error) {
	var models []*model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("name").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subcategories")
	}

	return toCategoryDomains(models), nil
}

func (repo *categoryRepository) Search(ctx context.Context, criteria repository.CategorySearchCriteria, page entity.PageRequest) (entity.Page[*entity.Category], error) {
	query := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.CategoryModel{})
	if criteria.Name != "" {
		query = query.Where("name ILIKE ?", containsPattern(criteria.Name))
	}
	if criteria.Active != nil {
		query = query.Where("active = ?", *criteria.Active)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return entity.Page[*entity.Category]{}, errors.Wrap(err, "failed to count categories")
	}

	var models []*model.CategoryModel
	if err := query.Scopes(paginate(page)).Order("name").Find(&models).Error; err != nil {
		return entity.Page[*entity.Category]{}, errors.Wrap(err, "failed to search categories")
	}

	return entity.NewPage(toCategoryDomains(models), page, total), nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	m := fromCategoryDomain(category)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrCategoryAlreadyExists.WrapMessage("create category")
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrCategoryNotFound.WithDetails("parent category does not exist")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
		}
	}

	category.ID = m.ID

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, categories ...*entity.Category) error {
	for _, c := range categories {
		result := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).
			Where("id = ?", c.ID).
			Updates(map[string]any{
				"name":                      c.Name.String(),
				"description":               c.Description.String(),
				"parent_id":                 c.ParentID,
				"active":                    c.Active,
				"last_activity_change_date": c.LastActivityChangeDate,
			})
		if result.Error != nil {
			if isUniqueConstraintViolation(result.Error) {
				return domainerrors.ErrCategoryAlreadyExists.WrapMessage("update category")
			}

			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
		}
		if result.RowsAffected == 0 {
			return repository.ErrCategoryNotFound
		}
	}

	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryInUse
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCategoryDomain(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	// Stored rows were validated on the way in.
	name, _ := entity.NewWord(m.Name)
	description, _ := entity.NewWord(m.Description)

	return &entity.Category{
		ID:                     m.ID,
		Name:                   name,
		Description:            description,
		ParentID:               m.ParentID,
		Active:                 m.Active,
		RegistrationDate:       m.RegistrationDate,
		LastActivityChangeDate: m.LastActivityChangeDate,
	}
}

func toCategoryDomains(models []*model.CategoryModel) []*entity.Category {
	result := make([]*entity.Category, len(models))
	for i, m := range models {
		result[i] = toCategoryDomain(m)
	}

	return result
}

func fromCategoryDomain(c *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:                     c.ID,
		Name:                   c.Name.String(),
		Description:            c.Description.String(),
		ParentID:               c.ParentID,
		Active:                 c.Active,
		RegistrationDate:       c.RegistrationDate,
		LastActivityChangeDate: c.LastActivityChangeDate,
	}
}
