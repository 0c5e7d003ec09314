package entity

import (
	"time"

	domainerrors "cafeteria/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item. Stock is not held here: the product's
// Inventory record is the single stock counter.
type Product struct {
	ID          uuid.UUID       // Identifier of the product.
	Name        Word            // Display name.
	Description Word            // Short description.
	Price       decimal.Decimal // Current unit price, never negative.
	CategoryID  uuid.UUID       // Category the product belongs to.
	Active      bool            // Inactive products are hidden from the active listings.
	ImageURL    string          // Optional image location.
	CreatedAt   time.Time       // Creation time.
	UpdatedAt   time.Time       // Time of the last change.
}

// NewProduct creates an active product.
func NewProduct(name, description Word, price decimal.Decimal, categoryID uuid.UUID, imageURL string) (*Product, error) {
	if name.IsZero() {
		return nil, domainerrors.InvalidArgument("product name cannot be null")
	}
	if description.IsZero() {
		return nil, domainerrors.InvalidArgument("product description cannot be null")
	}
	if categoryID == uuid.Nil {
		return nil, domainerrors.InvalidArgument("product category cannot be null")
	}
	if price.IsNegative() {
		return nil, domainerrors.InvalidArgument("product price cannot be negative")
	}

	now := time.Now()

	return &Product{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
		Active:      true,
		ImageURL:    imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ChangeName renames the product.
func (p *Product) ChangeName(name Word) error {
	if name.IsZero() {
		return domainerrors.InvalidArgument("product name cannot be null")
	}
	p.Name = name
	p.touch()

	return nil
}

// ChangeDescription replaces the description.
func (p *Product) ChangeDescription(description Word) error {
	if description.IsZero() {
		return domainerrors.InvalidArgument("product description cannot be null")
	}
	p.Description = description
	p.touch()

	return nil
}

// ChangePrice sets a new unit price. Existing order lines keep their snapshot.
func (p *Product) ChangePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return domainerrors.InvalidArgument("product price cannot be negative")
	}
	p.Price = price
	p.touch()

	return nil
}

// ChangeCategory moves the product to another category.
func (p *Product) ChangeCategory(categoryID uuid.UUID) error {
	if categoryID == uuid.Nil {
		return domainerrors.InvalidArgument("product category cannot be null")
	}
	p.CategoryID = categoryID
	p.touch()

	return nil
}

// ChangeImageURL replaces the image location.
func (p *Product) ChangeImageURL(imageURL string) {
	p.ImageURL = imageURL
	p.touch()
}

// Activate makes the product visible again.
func (p *Product) Activate() {
	p.Active = true
	p.touch()
}

// Deactivate hides the product. This is how products are deleted.
func (p *Product) Deactivate() {
	p.Active = false
	p.touch()
}

func (p *Product) touch() {
	p.UpdatedAt = time.Now()
}
