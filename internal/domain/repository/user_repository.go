// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cafeteria/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrVersionConflict is returned when an update was based on a stale version.
	ErrVersionConflict = errors.New("version conflict")
)

// UserSearchCriteria filters users. Empty fields are ignored; text fields match
// case-insensitively anywhere in the value.
type UserSearchCriteria struct {
	Username string
	FullName string
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, enabled or not.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their login e-mail.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsername reports whether the login e-mail is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Search returns a page of enabled users matching criteria.
	Search(ctx context.Context, criteria UserSearchCriteria, page entity.PageRequest) (entity.Page[*entity.User], error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update persists user only if the stored version still equals expectedVersion.
	// On success user.Version holds the new version; otherwise ErrVersionConflict
	// or ErrUserNotFound is returned.
	Update(ctx context.Context, user *entity.User, expectedVersion int64) error
}
