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

// systemActor is recorded as creator of self-registered and seeded accounts.
const systemActor = "system"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a CUSTOMER account.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	user, err := createAccount(ctx, srv.userRepo, srv.hasher, newAccount{
		username:   input.Username,
		password:   input.Password,
		rePassword: input.RePassword,
		fullName:   input.FullName,
		roles:      entity.Roles{entity.RoleCustomer},
		createdBy:  systemActor,
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()))

	return user, nil
}

// Login verifies credentials and issues a token pair.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.Enabled || !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Rejected login attempt", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("User logged in", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    srv.tokenService.GetAccessTokenDuration(),
		User:         user,
	}, nil
}

// RefreshToken issues a new access token carrying the user's current roles.
func (srv *authService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if !user.Enabled {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.RefreshOutput{
		AccessToken: accessToken,
		ExpiresIn:   srv.tokenService.GetAccessTokenDuration(),
	}, nil
}

// GetProfile returns the caller's account.
func (srv *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return findEnabledUser(ctx, srv.userRepo, userID)
}

// newAccount carries everything createAccount needs.
type newAccount struct {
	username   string
	password   string
	rePassword string
	fullName   string
	roles      entity.Roles
	createdBy  string
}

// createAccount is shared by self-registration and user administration.
func createAccount(ctx context.Context, userRepo repository.UserRepository, hasher service.PasswordHasher, acct newAccount) (*entity.User, error) {
	if acct.password != acct.rePassword {
		return nil, domainerrors.ErrPasswordMismatch
	}

	exists, err := userRepo.ExistsByUsername(ctx, acct.username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check username")
	}
	if exists {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	hash, err := hasher.Hash(acct.password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user, err := entity.NewUser(acct.username, hash, acct.fullName, acct.roles)
	if err != nil {
		return nil, err
	}
	user.CreatedBy = acct.createdBy
	user.ModifiedBy = acct.createdBy

	if err := userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

// findEnabledUser hides disabled accounts behind ErrUserNotFound.
func findEnabledUser(ctx context.Context, userRepo repository.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepositoryError(err, "failed to find user")
	}
	if !user.Enabled {
		return nil, domainerrors.ErrUserNotFound
	}

	return user, nil
}
