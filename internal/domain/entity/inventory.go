package entity

import (
	"time"

	domainerrors "cafeteria/internal/domain/errors"

	"github.com/google/uuid"
)

// Default levels used when stock is set through a product before any inventory exists.
const (
	DefaultMaximumStockLevel = 1000
	// LowStockThreshold is the quantity under which a product is reported as low on stock.
	LowStockThreshold = 10
)

// Inventory tracks the stock of exactly one product and is the only place
// where stock quantities are stored.
type Inventory struct {
	ID                uuid.UUID // Identifier of the inventory record.
	ProductID         uuid.UUID // Tracked product, one inventory per product.
	CurrentQuantity   int       // Units on hand.
	MinimumStockLevel int       // Lower bound used by the low-stock report.
	MaximumStockLevel int       // Upper bound used by the overstock report.
	ReorderPoint      int       // Quantity at or below which the product should be reordered.
	ReorderQuantity   int       // Suggested reorder size.
	Active            bool      // Inactive records are excluded from stock reservation.
	CreatedAt         time.Time // Creation time.
	LastUpdated       time.Time // Time of the last change.
}

// StockLevels groups the configurable thresholds of an inventory record.
type StockLevels struct {
	MinimumStockLevel int
	MaximumStockLevel int
	ReorderPoint      int
	ReorderQuantity   int
}

// Validate checks the thresholds as a whole.
func (l StockLevels) Validate() error {
	switch {
	case l.MinimumStockLevel < 0:
		return domainerrors.InvalidArgument("minimum stock level cannot be negative")
	case l.MaximumStockLevel < 0:
		return domainerrors.InvalidArgument("maximum stock level cannot be negative")
	case l.ReorderPoint < 0:
		return domainerrors.InvalidArgument("reorder point cannot be negative")
	case l.ReorderQuantity < 0:
		return domainerrors.InvalidArgument("reorder quantity cannot be negative")
	case l.MaximumStockLevel < l.MinimumStockLevel:
		return domainerrors.InvalidArgument("maximum stock level cannot be less than minimum stock level")
	}

	return nil
}

// NewInventory creates an active inventory record for a product.
func NewInventory(productID uuid.UUID, currentQuantity int, levels StockLevels) (*Inventory, error) {
	if productID == uuid.Nil {
		return nil, domainerrors.InvalidArgument("product cannot be null")
	}
	if currentQuantity < 0 {
		return nil, domainerrors.InvalidArgument("current quantity cannot be negative")
	}
	if err := levels.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	return &Inventory{
		ID:                uuid.Must(uuid.NewV7()),
		ProductID:         productID,
		CurrentQuantity:   currentQuantity,
		MinimumStockLevel: levels.MinimumStockLevel,
		MaximumStockLevel: levels.MaximumStockLevel,
		ReorderPoint:      levels.ReorderPoint,
		ReorderQuantity:   levels.ReorderQuantity,
		Active:            true,
		CreatedAt:         now,
		LastUpdated:       now,
	}, nil
}

// DefaultStockLevels returns the thresholds used for inventories created
// implicitly from a product stock change.
func DefaultStockLevels(quantity int) StockLevels {
	return StockLevels{
		MaximumStockLevel: max(quantity, DefaultMaximumStockLevel),
	}
}

// Levels returns the current thresholds.
func (i *Inventory) Levels() StockLevels {
	return StockLevels{
		MinimumStockLevel: i.MinimumStockLevel,
		MaximumStockLevel: i.MaximumStockLevel,
		ReorderPoint:      i.ReorderPoint,
		ReorderQuantity:   i.ReorderQuantity,
	}
}

// UpdateLevels replaces all thresholds at once.
func (i *Inventory) UpdateLevels(levels StockLevels) error {
	if err := levels.Validate(); err != nil {
		return err
	}

	i.MinimumStockLevel = levels.MinimumStockLevel
	i.MaximumStockLevel = levels.MaximumStockLevel
	i.ReorderPoint = levels.ReorderPoint
	i.ReorderQuantity = levels.ReorderQuantity
	i.touch()

	return nil
}

// UpdateQuantity sets the units on hand.
func (i *Inventory) UpdateQuantity(quantity int) error {
	if quantity < 0 {
		return domainerrors.InvalidArgument("quantity cannot be negative")
	}
	i.CurrentQuantity = quantity
	i.touch()

	return nil
}

// AddQuantity increases the units on hand.
func (i *Inventory) AddQuantity(quantity int) error {
	if quantity < 0 {
		return domainerrors.InvalidArgument("quantity to add cannot be negative")
	}
	i.CurrentQuantity += quantity
	i.touch()

	return nil
}

// RemoveQuantity decreases the units on hand, never below zero.
func (i *Inventory) RemoveQuantity(quantity int) error {
	if quantity < 0 {
		return domainerrors.InvalidArgument("quantity to remove cannot be negative")
	}
	if quantity > i.CurrentQuantity {
		return domainerrors.InvalidArgument("cannot remove more quantity than available")
	}
	i.CurrentQuantity -= quantity
	i.touch()

	return nil
}

// UpdateMinimumStockLevel sets the lower threshold.
func (i *Inventory) UpdateMinimumStockLevel(level int) error {
	if level < 0 {
		return domainerrors.InvalidArgument("minimum stock level cannot be negative")
	}
	if level > i.MaximumStockLevel {
		return domainerrors.InvalidArgument("minimum stock level cannot be greater than maximum stock level")
	}
	i.MinimumStockLevel = level
	i.touch()

	return nil
}

// UpdateMaximumStockLevel sets the upper threshold.
func (i *Inventory) UpdateMaximumStockLevel(level int) error {
	if level < 0 {
		return domainerrors.InvalidArgument("maximum stock level cannot be negative")
	}
	if level < i.MinimumStockLevel {
		return domainerrors.InvalidArgument("maximum stock level cannot be less than minimum stock level")
	}
	i.MaximumStockLevel = level
	i.touch()

	return nil
}

// UpdateReorderPoint sets the reorder trigger level.
func (i *Inventory) UpdateReorderPoint(point int) error {
	if point < 0 {
		return domainerrors.InvalidArgument("reorder point cannot be negative")
	}
	i.ReorderPoint = point
	i.touch()

	return nil
}

// UpdateReorderQuantity sets the suggested reorder size.
func (i *Inventory) UpdateReorderQuantity(quantity int) error {
	if quantity < 0 {
		return domainerrors.InvalidArgument("reorder quantity cannot be negative")
	}
	i.ReorderQuantity = quantity
	i.touch()

	return nil
}

// Activate re-enables the record.
func (i *Inventory) Activate() {
	i.Active = true
	i.touch()
}

// Deactivate disables the record.
func (i *Inventory) Deactivate() {
	i.Active = false
	i.touch()
}

// IsBelowMinimumStock reports current < minimum.
func (i *Inventory) IsBelowMinimumStock() bool {
	return i.CurrentQuantity < i.MinimumStockLevel
}

// IsAtReorderPoint reports current <= reorder point.
func (i *Inventory) IsAtReorderPoint() bool {
	return i.CurrentQuantity <= i.ReorderPoint
}

// IsOutOfStock reports current == 0.
func (i *Inventory) IsOutOfStock() bool {
	return i.CurrentQuantity == 0
}

// IsAboveMaximumStock reports current > maximum.
func (i *Inventory) IsAboveMaximumStock() bool {
	return i.CurrentQuantity > i.MaximumStockLevel
}

func (i *Inventory) touch() {
	i.LastUpdated = time.Now()
}
