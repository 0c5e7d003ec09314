package impl

import (
	"context"
	"testing"
	"time"

	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"
	"cafeteria/internal/domain/repository"
	"cafeteria/internal/domain/service"
	mockRepo "cafeteria/internal/mocks/repository"
	mockService "cafeteria/internal/mocks/service"
	"cafeteria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	return authServiceFixtures{
		service: NewAuthService(AuthServiceParams{
			UserRepo:     userRepo,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func newTestUser(t *testing.T, roles ...entity.Role) *entity.User {
	t.Helper()

	if len(roles) == 0 {
		roles = entity.Roles{entity.RoleCustomer}
	}
	user, err := entity.NewUser("jane@example.com", "hashed", "Jane Doe", roles)
	require.NoError(t, err)

	return user
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates customer", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.userRepo.EXPECT().ExistsByUsername(ctx, "jane@example.com").Return(false, nil)
		fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
		fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

		user, err := fx.service.Register(ctx, usecase.RegisterInput{
			Username:   "jane@example.com",
			Password:   "secret123",
			RePassword: "secret123",
			FullName:   "Jane Doe",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.Roles{entity.RoleCustomer}, user.Roles)
		assert.Equal(t, "hashed", user.Password)
		assert.Equal(t, systemActor, user.CreatedBy)
		assert.True(t, user.Enabled)
	})

	t.Run("password mismatch", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Register(ctx, usecase.RegisterInput{
			Username:   "jane@example.com",
			Password:   "secret123",
			RePassword: "other",
		})

		assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
	})

	t.Run("username taken", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.userRepo.EXPECT().ExistsByUsername(ctx, "jane@example.com").Return(true, nil)

		_, err := fx.service.Register(ctx, usecase.RegisterInput{
			Username:   "jane@example.com",
			Password:   "secret123",
			RePassword: "secret123",
		})

		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("invalid username", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.userRepo.EXPECT().ExistsByUsername(ctx, "not-an-email").Return(false, nil)
		fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)

		_, err := fx.service.Register(ctx, usecase.RegisterInput{
			Username:   "not-an-email",
			Password:   "secret123",
			RePassword: "secret123",
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues tokens", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := newTestUser(t)

		fx.userRepo.EXPECT().FindByUsername(ctx, user.Username).Return(user, nil)
		fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"CUSTOMER"}).Return("access", "refresh", nil)
		fx.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)

		out, err := fx.service.Login(ctx, usecase.LoginInput{Username: user.Username, Password: "secret123"})

		require.NoError(t, err)
		assert.Equal(t, "access", out.AccessToken)
		assert.Equal(t, "refresh", out.RefreshToken)
		assert.Equal(t, 15*time.Minute, out.ExpiresIn)
		assert.Same(t, user, out.User)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.userRepo.EXPECT().FindByUsername(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Username: "ghost@example.com", Password: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := newTestUser(t)

		fx.userRepo.EXPECT().FindByUsername(ctx, user.Username).Return(user, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Username: user.Username, Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("disabled user", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := newTestUser(t)
		user.SetEnabled(false)

		fx.userRepo.EXPECT().FindByUsername(ctx, user.Username).Return(user, nil)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Username: user.Username, Password: "secret123"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("repository failure", func(t *testing.T) {
		fx := createTestAuthService(t)
		dbErr := errors.New("connection reset")

		fx.userRepo.EXPECT().FindByUsername(ctx, "jane@example.com").Return(nil, dbErr)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Username: "jane@example.com", Password: "x"})

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("issues access token", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := newTestUser(t, entity.RoleSupplier)

		fx.tokenService.EXPECT().ValidateToken("refresh").
			Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.tokenService.EXPECT().GenerateAccessToken(user.ID, []string{"SUPPLIER"}).Return("access", nil)
		fx.tokenService.EXPECT().GetAccessTokenDuration().Return(time.Hour)

		out, err := fx.service.RefreshToken(ctx, "refresh")

		require.NoError(t, err)
		assert.Equal(t, "access", out.AccessToken)
		assert.Equal(t, time.Hour, out.ExpiresIn)
	})

	t.Run("access token rejected", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().ValidateToken("access").
			Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeAccess}, nil)

		_, err := fx.service.RefreshToken(ctx, "access")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().ValidateToken("garbage").Return(nil, errors.New("malformed"))

		_, err := fx.service.RefreshToken(ctx, "garbage")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAuthService(t)
		id := uuid.New()

		fx.tokenService.EXPECT().ValidateToken("refresh").
			Return(&service.Claims{UserID: id, Type: service.TokenTypeRefresh}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.RefreshToken(ctx, "refresh")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestAuthService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("enabled user", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := newTestUser(t)

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		got, err := fx.service.GetProfile(ctx, user.ID)

		require.NoError(t, err)
		assert.Same(t, user, got)
	})

	t.Run("disabled user is hidden", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := newTestUser(t)
		user.SetEnabled(false)

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		_, err := fx.service.GetProfile(ctx, user.ID)

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
