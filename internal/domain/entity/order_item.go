package entity

import (
	domainerrors "cafeteria/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is a single product line inside an Order. It has no life outside its order.
type OrderItem struct {
	ID               uuid.UUID       // Identifier of the line.
	OrderID          uuid.UUID       // Owning order.
	ProductID        uuid.UUID       // Ordered product.
	ProductName      string          // Product name at the time the line was added.
	Quantity         int             // Number of units, always positive.
	UnitPrice        decimal.Decimal // Product price at the time the line was added.
	TotalPrice       decimal.Decimal // UnitPrice multiplied by Quantity.
	ReservedQuantity int             // Units taken out of inventory on confirm, zero when untracked.
}

// NewOrderItem creates a line for the given product snapshot.
func NewOrderItem(orderID uuid.UUID, product *Product, quantity int, unitPrice decimal.Decimal) (*OrderItem, error) {
	if product == nil {
		return nil, domainerrors.InvalidArgument("product cannot be null")
	}
	if quantity <= 0 {
		return nil, domainerrors.InvalidArgument("quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, domainerrors.InvalidArgument("unit price cannot be negative")
	}

	item := &OrderItem{
		ID:          uuid.Must(uuid.NewV7()),
		OrderID:     orderID,
		ProductID:   product.ID,
		ProductName: product.Name.String(),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
	item.recalculate()

	return item, nil
}

// UpdateQuantity replaces the quantity and recomputes the line total.
func (i *OrderItem) UpdateQuantity(quantity int) error {
	if quantity <= 0 {
		return domainerrors.InvalidArgument("quantity must be positive")
	}

	i.Quantity = quantity
	i.recalculate()

	return nil
}

// UpdateUnitPrice replaces the unit price and recomputes the line total.
func (i *OrderItem) UpdateUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return domainerrors.InvalidArgument("unit price cannot be negative")
	}

	i.UnitPrice = unitPrice
	i.recalculate()

	return nil
}

func (i *OrderItem) recalculate() {
	i.TotalPrice = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
