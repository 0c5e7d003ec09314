package postgres

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/domain/repository"
	"cafeteria/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID reads from the primary so the returned version is never stale.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by their login e-mail, case-insensitively.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("LOWER(username) = ?", strings.ToLower(username)).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// ExistsByUsername reports whether any user, enabled or not, has username.
func (repo *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("LOWER(username) = ?", strings.ToLower(username)).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check username")
	}

	return count > 0, nil
}

// Search returns enabled users whose username and full name contain the criteria.
func (repo *userRepository) Search(ctx context.Context, criteria repository.UserSearchCriteria, page entity.PageRequest) (entity.Page[*entity.User], error) {
	query := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.UserModel{}).Where("enabled = ?", true)
	if criteria.Username != "" {
		query = query.Where("username ILIKE ?", containsPattern(criteria.Username))
	}
	if criteria.FullName != "" {
		query = query.Where("full_name ILIKE ?", containsPattern(criteria.FullName))
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return entity.Page[*entity.User]{}, errors.Wrap(err, "failed to count users")
	}

	var models []*model.UserModel
	if err := query.Scopes(paginate(page)).Order("username").Find(&models).Error; err != nil {
		return entity.Page[*entity.User]{}, errors.Wrap(err, "failed to search users")
	}

	users := make([]*entity.User, len(models))
	for i, m := range models {
		users[i] = toUserDomain(m)
	}

	return entity.NewPage(users, page, total), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username already registered")
		case isNotNullConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WrapMessage("required field missing")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
		}
	}

	user.ID = userM.ID
	user.Version = userM.Version

	return nil
}

// Update writes the user only when the stored version equals expectedVersion
// and bumps the version in the same statement.
func (repo *userRepository) Update(ctx context.Context, user *entity.User, expectedVersion int64) error {
	roles, err := json.Marshal(user.Roles.ToStrings())
	if err != nil {
		return errors.Wrap(err, "failed to encode roles")
	}

	now := time.Now()
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ? AND version = ?", user.ID, expectedVersion).
		Updates(map[string]any{
			"username":    user.Username,
			"password":    user.Password,
			"full_name":   user.FullName,
			"enabled":     user.Enabled,
			"roles":       gorm.Expr("?::jsonb", string(roles)),
			"modified_at": now,
			"modified_by": user.ModifiedBy,
			"version":     gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", user.ID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check user existence")
		}
		if count == 0 {
			return repository.ErrUserNotFound
		}

		return repository.ErrVersionConflict
	}

	user.Version = expectedVersion + 1
	user.ModifiedAt = now

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:         data.ID,
		Version:    data.Version,
		Username:   data.Username,
		Password:   data.Password,
		FullName:   data.FullName,
		Enabled:    data.Enabled,
		Roles:      entity.RolesFromStrings(data.Roles),
		CreatedAt:  data.CreatedAt,
		ModifiedAt: data.ModifiedAt,
		CreatedBy:  data.CreatedBy,
		ModifiedBy: data.ModifiedBy,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:         data.ID,
		Version:    data.Version,
		Username:   data.Username,
		Password:   data.Password,
		FullName:   data.FullName,
		Enabled:    data.Enabled,
		Roles:      data.Roles.ToStrings(),
		CreatedAt:  data.CreatedAt,
		ModifiedAt: data.ModifiedAt,
		CreatedBy:  data.CreatedBy,
		ModifiedBy: data.ModifiedBy,
	}
}
