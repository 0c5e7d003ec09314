package impl

import (
	"context"
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

// userAdminService implements the UserAdminUsecase interface.
type userAdminService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserAdminServiceParams holds dependencies for UserAdminService, injected by Fx.
type UserAdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserAdminService is the constructor for userAdminService.
func NewUserAdminService(params UserAdminServiceParams) usecase.UserAdminUsecase {
	return &userAdminService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *userAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser creates an account with explicit roles.
func (srv *userAdminService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	roles, err := parseRoles(input.Roles)
	if err != nil {
		return nil, err
	}

	user, err := createAccount(ctx, srv.userRepo, srv.hasher, newAccount{
		username:   input.Username,
		password:   input.Password,
		rePassword: input.RePassword,
		fullName:   input.FullName,
		roles:      roles,
		createdBy:  input.CreatedBy,
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User created",
		slog.String("userID", user.ID.String()),
		slog.Any("roles", user.Roles),
		slog.String("createdBy", input.CreatedBy),
	)

	return user, nil
}

// GetUser returns an enabled user.
func (srv *userAdminService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return findEnabledUser(ctx, srv.userRepo, id)
}

// UpdateUser edits full name, roles and the enabled flag.
func (srv *userAdminService) UpdateUser(ctx context.Context, id uuid.UUID, expectedVersion int64, input usecase.UpdateUserInput) (*entity.User, error) {
	var roles entity.Roles
	if input.Roles != nil {
		parsed, err := parseRoles(input.Roles)
		if err != nil {
			return nil, err
		}
		roles = parsed
	}

	return srv.modify(ctx, id, expectedVersion, input.ModifiedBy, func(user *entity.User) error {
		if input.FullName != nil {
			user.ChangeFullName(*input.FullName)
		}
		if roles != nil {
			if err := user.SetRoles(roles); err != nil {
				return err
			}
		}
		if input.Enabled != nil {
			user.SetEnabled(*input.Enabled)
		}

		return nil
	})
}

// DeleteUser anonymizes and disables the account.
func (srv *userAdminService) DeleteUser(ctx context.Context, id uuid.UUID, expectedVersion int64, deletedBy string) (*entity.User, error) {
	return srv.modify(ctx, id, expectedVersion, deletedBy, func(user *entity.User) error {
		user.AnonymizeAndDisable()

		return nil
	})
}

// modify loads an enabled user, applies change and saves it with an optimistic
// version check.
func (srv *userAdminService) modify(ctx context.Context, id uuid.UUID, expectedVersion int64, actor string, change func(*entity.User) error) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := findEnabledUser(ctx, userRepo, id)
		if err != nil {
			return err
		}
		if user.Version != expectedVersion {
			return domainerrors.ErrVersionConflict
		}

		if err := change(user); err != nil {
			return err
		}
		user.ModifiedBy = actor

		if err := userRepo.Update(ctx, user, expectedVersion); err != nil {
			return wrapRepositoryError(err, "failed to update user")
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User modification failed",
			slog.String("userID", id.String()),
			slog.Int64("expectedVersion", expectedVersion),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("User modified",
		slog.String("userID", id.String()),
		slog.Int64("version", updated.Version),
		slog.String("modifiedBy", actor),
	)

	return updated, nil
}

// SearchUsers pages through enabled users.
func (srv *userAdminService) SearchUsers(ctx context.Context, query usecase.UserSearchQuery, page entity.PageRequest) (entity.Page[*entity.User], error) {
	result, err := srv.userRepo.Search(ctx, repository.UserSearchCriteria{
		Username: query.Username,
		FullName: query.FullName,
	}, page)
	if err != nil {
		return entity.Page[*entity.User]{}, errors.Wrap(err, "failed to search users")
	}

	return result, nil
}

// UsernameExists reports whether the login e-mail is taken.
func (srv *userAdminService) UsernameExists(ctx context.Context, username string) (bool, error) {
	exists, err := srv.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return false, errors.Wrap(err, "failed to check username")
	}

	return exists, nil
}

// parseRoles rejects unknown role names and requires at least one role.
func parseRoles(names []string) (entity.Roles, error) {
	if len(names) == 0 {
		return nil, domainerrors.InvalidArgument("user must have at least one role")
	}

	roles := make(entity.Roles, 0, len(names))
	for _, name := range names {
		role := entity.Role(name)
		if !role.IsValid() {
			return nil, domainerrors.InvalidArgument("unknown role: " + name)
		}
		if !roles.Contains(role) {
			roles = append(roles, role)
		}
	}

	return roles, nil
}
