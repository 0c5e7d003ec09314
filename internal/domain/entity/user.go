// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"net/mail"
	"time"

	domainerrors "cafeteria/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	anonymousEmailDomain = "@acme.com"
	anonymousFullName    = "Anonymous Smith"
	anonymousPassword    = "blank"
)

// User is an account that can authenticate against the API.
type User struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Version    int64     // Optimistic lock counter, incremented on every update.
	Username   string    // Login e-mail, unique.
	Password   string    // Password hash.
	FullName   string    // Display name.
	Enabled    bool      // Disabled users cannot log in and are hidden from lookups.
	Roles      Roles     // Granted roles.
	CreatedAt  time.Time // Timestamp of when this user account was created.
	ModifiedAt time.Time // Timestamp of the last modification to this user's data.
	CreatedBy  string    // Username of the creator, "system" for self-registration.
	ModifiedBy string    // Username of the last modifier.
}

// NewUser creates an enabled user with an already hashed password.
func NewUser(username, passwordHash, fullName string, roles Roles) (*User, error) {
	if _, err := mail.ParseAddress(username); err != nil {
		return nil, domainerrors.InvalidArgument("username must be a valid e-mail address")
	}
	if passwordHash == "" {
		return nil, domainerrors.InvalidArgument("password cannot be empty")
	}
	for _, role := range roles {
		if !role.IsValid() {
			return nil, domainerrors.InvalidArgument("unknown role: " + role.String())
		}
	}

	now := time.Now()

	return &User{
		ID:         uuid.Must(uuid.NewV7()),
		Username:   username,
		Password:   passwordHash,
		FullName:   fullName,
		Enabled:    true,
		Roles:      roles,
		CreatedAt:  now,
		ModifiedAt: now,
	}, nil
}

// HasRole reports whether the user was granted role.
func (u *User) HasRole(role Role) bool {
	return u.Roles.Contains(role)
}

// ChangeFullName updates the display name.
func (u *User) ChangeFullName(fullName string) {
	u.FullName = fullName
	u.ModifiedAt = time.Now()
}

// SetRoles replaces the granted roles.
func (u *User) SetRoles(roles Roles) error {
	for _, role := range roles {
		if !role.IsValid() {
			return domainerrors.InvalidArgument("unknown role: " + role.String())
		}
	}
	u.Roles = roles
	u.ModifiedAt = time.Now()

	return nil
}

// SetEnabled enables or disables the account.
func (u *User) SetEnabled(enabled bool) {
	u.Enabled = enabled
	u.ModifiedAt = time.Now()
}

// AnonymizeAndDisable wipes personal data and disables the account. This is how
// users are deleted.
func (u *User) AnonymizeAndDisable() {
	u.Username = uuid.NewString() + anonymousEmailDomain
	u.FullName = anonymousFullName
	u.Password = anonymousPassword
	u.Enabled = false
	u.ModifiedAt = time.Now()
}
