// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"cafeteria/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required for self-registration.
type RegisterInput struct {
	Username   string
	Password   string
	RePassword string
	FullName   string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
	User         *entity.User
}

// RefreshOutput carries a freshly issued access token.
type RefreshOutput struct {
	AccessToken string
	ExpiresIn   time.Duration
}

// AuthUsecase covers the public authentication flows and the caller's own profile.
type AuthUsecase interface {
	// Register creates an enabled CUSTOMER account.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login checks credentials of an enabled user and issues a token pair.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// RefreshToken issues a new access token from a valid refresh token.
	RefreshToken(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// GetProfile returns the enabled user behind an authenticated request.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
