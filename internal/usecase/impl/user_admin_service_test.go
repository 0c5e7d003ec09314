package impl

import (
	"context"
	"strings"
	"testing"

	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/domain/repository"
	mockRepo "cafeteria/internal/mocks/repository"
	mockService "cafeteria/internal/mocks/service"
	"cafeteria/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userAdminServiceFixtures struct {
	service   usecase.UserAdminUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockService.MockPasswordHasher
}

func createTestUserAdminService(t *testing.T) userAdminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)

	return userAdminServiceFixtures{
		service: NewUserAdminService(UserAdminServiceParams{
			TxManager: txManager,
			UserRepo:  userRepo,
			Hasher:    hasher,
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		factory:   factory,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}

// expectVersionedUpdate mimics the repository bumping the version on success.
func expectVersionedUpdate(userRepo *mockRepo.MockUserRepository, expectedVersion int64) {
	userRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.User"), expectedVersion).
		RunAndReturn(func(_ context.Context, user *entity.User, _ int64) error {
			user.Version++

			return nil
		})
}

func TestUserAdminService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("with explicit roles", func(t *testing.T) {
		fx := createTestUserAdminService(t)

		fx.userRepo.EXPECT().ExistsByUsername(ctx, "chef@example.com").Return(false, nil)
		fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
		fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

		user, err := fx.service.CreateUser(ctx, usecase.CreateUserInput{
			Username:   "chef@example.com",
			Password:   "secret123",
			RePassword: "secret123",
			FullName:   "Chef",
			Roles:      []string{"SUPPLIER", "USER_ADMIN", "SUPPLIER"},
			CreatedBy:  "admin@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.Roles{entity.RoleSupplier, entity.RoleUserAdmin}, user.Roles)
		assert.Equal(t, "admin@example.com", user.CreatedBy)
	})

	t.Run("unknown role", func(t *testing.T) {
		fx := createTestUserAdminService(t)

		_, err := fx.service.CreateUser(ctx, usecase.CreateUserInput{
			Username: "chef@example.com",
			Roles:    []string{"WIZARD"},
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	})

	t.Run("no roles", func(t *testing.T) {
		fx := createTestUserAdminService(t)

		_, err := fx.service.CreateUser(ctx, usecase.CreateUserInput{Username: "chef@example.com"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	})
}

func TestUserAdminService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("matching version is persisted and incremented", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		user := newTestUser(t)
		user.Version = 3
		fullName := "Jane Smith"

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		expectVersionedUpdate(fx.userRepo, 3)

		updated, err := fx.service.UpdateUser(ctx, user.ID, 3, usecase.UpdateUserInput{
			FullName:   &fullName,
			Roles:      []string{"USER_ADMIN"},
			ModifiedBy: "admin@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(4), updated.Version)
		assert.Equal(t, "Jane Smith", updated.FullName)
		assert.Equal(t, entity.Roles{entity.RoleUserAdmin}, updated.Roles)
		assert.Equal(t, "admin@example.com", updated.ModifiedBy)
	})

	t.Run("stale version", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		user := newTestUser(t)
		user.Version = 5

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		_, err := fx.service.UpdateUser(ctx, user.ID, 4, usecase.UpdateUserInput{})

		assert.ErrorIs(t, err, domainerrors.ErrVersionConflict)
	})

	t.Run("concurrent update detected by repository", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		user := newTestUser(t)

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.userRepo.EXPECT().Update(ctx, user, int64(0)).Return(repository.ErrVersionConflict)

		_, err := fx.service.UpdateUser(ctx, user.ID, 0, usecase.UpdateUserInput{})

		assert.ErrorIs(t, err, domainerrors.ErrVersionConflict)
	})

	t.Run("missing user", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		id := uuid.New()

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
		fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.UpdateUser(ctx, id, 0, usecase.UpdateUserInput{})

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestUserAdminService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	fx := createTestUserAdminService(t)
	user := newTestUser(t)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	expectVersionedUpdate(fx.userRepo, 0)

	deleted, err := fx.service.DeleteUser(ctx, user.ID, 0, "admin@example.com")

	require.NoError(t, err)
	assert.False(t, deleted.Enabled)
	assert.Equal(t, "Anonymous Smith", deleted.FullName)
	assert.True(t, strings.HasSuffix(deleted.Username, "@acme.com"))
	assert.NotEqual(t, "jane@example.com", deleted.Username)
	assert.Equal(t, int64(1), deleted.Version)
}

func TestUserAdminService_SearchUsers(t *testing.T) {
	ctx := context.Background()
	fx := createTestUserAdminService(t)
	user := newTestUser(t)
	page := entity.NewPageRequest(0, 20)

	fx.userRepo.EXPECT().
		Search(ctx, repository.UserSearchCriteria{FullName: "jane"}, page).
		Return(entity.NewPage([]*entity.User{user}, page, 1), nil)

	result, err := fx.service.SearchUsers(ctx, usecase.UserSearchQuery{FullName: "jane"}, page)

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.TotalElements)
	assert.Equal(t, []*entity.User{user}, result.Content)
}
