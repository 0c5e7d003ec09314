package entity

import (
	"time"

	domainerrors "cafeteria/internal/domain/errors"

	"github.com/google/uuid"
)

// Category groups products. Categories form a forest through ParentID; the
// hierarchy rules live in CategoryTree.
type Category struct {
	ID                     uuid.UUID  // Identifier of the category.
	Name                   Word       // Unique name.
	Description            Word       // Short description.
	ParentID               *uuid.UUID // Parent category, nil for a root.
	Active                 bool       // Inactive categories are hidden from the active listing.
	RegistrationDate       time.Time  // Creation time.
	LastActivityChangeDate time.Time  // Time of the last activation change.
}

// NewCategory creates an active root category.
func NewCategory(name, description Word) (*Category, error) {
	if name.IsZero() {
		return nil, domainerrors.InvalidArgument("category name cannot be null")
	}
	if description.IsZero() {
		return nil, domainerrors.InvalidArgument("category description cannot be null")
	}

	now := time.Now()

	return &Category{
		ID:                     uuid.Must(uuid.NewV7()),
		Name:                   name,
		Description:            description,
		Active:                 true,
		RegistrationDate:       now,
		LastActivityChangeDate: now,
	}, nil
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// ChangeName renames the category.
func (c *Category) ChangeName(name Word) error {
	if name.IsZero() {
		return domainerrors.InvalidArgument("category name cannot be null")
	}
	c.Name = name

	return nil
}

// ChangeDescription replaces the description.
func (c *Category) ChangeDescription(description Word) error {
	if description.IsZero() {
		return domainerrors.InvalidArgument("category description cannot be null")
	}
	c.Description = description

	return nil
}

// Activate enables this category only; descendants are left untouched.
func (c *Category) Activate() {
	c.Active = true
	c.LastActivityChangeDate = time.Now()
}

// Deactivate disables this category only. Use CategoryTree.Deactivate to cascade.
func (c *Category) Deactivate() {
	c.Active = false
	c.LastActivityChangeDate = time.Now()
}
