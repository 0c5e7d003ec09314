package usecase

import (
	"context"

	"cafeteria/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput defines the data an administrator supplies for a new account.
type CreateUserInput struct {
	Username   string
	Password   string
	RePassword string
	FullName   string
	Roles      []string
	CreatedBy  string
}

// UpdateUserInput lists the editable user fields. Nil fields are left unchanged.
type UpdateUserInput struct {
	FullName   *string
	Roles      []string
	Enabled    *bool
	ModifiedBy string
}

// UserSearchQuery filters users by case-insensitive substring.
type UserSearchQuery struct {
	Username string
	FullName string
}

// UserAdminUsecase defines user administration. Writes to an existing user
// carry the version the caller last read; a stale version is rejected with
// ErrVersionConflict.
type UserAdminUsecase interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, expectedVersion int64, input UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID, expectedVersion int64, deletedBy string) (*entity.User, error)
	SearchUsers(ctx context.Context, query UserSearchQuery, page entity.PageRequest) (entity.Page[*entity.User], error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}
