package entity

import (
	"time"

	domainerrors "cafeteria/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the aggregate root of the ordering context. Items are owned by the
// order and every mutation goes through its methods so that TotalAmount always
// equals the sum of the item totals.
type Order struct {
	ID              uuid.UUID       // Identifier of the order.
	CustomerID      uuid.UUID       // User who placed the order.
	Items           []*OrderItem    // Lines of the order.
	Status          OrderStatus     // Current pipeline step.
	TotalAmount     decimal.Decimal // Sum of all line totals.
	OrderDate       time.Time       // Creation time.
	LastUpdatedDate time.Time       // Time of the last mutation.
	Notes           string          // Free text from the customer.
}

// NewOrder opens a pending, empty order for a customer.
func NewOrder(customerID uuid.UUID, notes string) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, domainerrors.InvalidArgument("customer cannot be null")
	}

	now := time.Now()

	return &Order{
		ID:              uuid.Must(uuid.NewV7()),
		CustomerID:      customerID,
		Items:           []*OrderItem{},
		Status:          OrderStatusPending,
		TotalAmount:     decimal.Zero,
		OrderDate:       now,
		LastUpdatedDate: now,
		Notes:           notes,
	}, nil
}

// AddItem adds quantity units of product. A product already in the order has its
// line quantity increased and keeps its original unit price.
func (o *Order) AddItem(product *Product, quantity int) error {
	if err := o.ensureModifiable(); err != nil {
		return err
	}
	if product == nil {
		return domainerrors.InvalidArgument("product cannot be null")
	}
	if quantity <= 0 {
		return domainerrors.InvalidArgument("quantity must be positive")
	}

	if existing := o.findItemByProduct(product.ID); existing != nil {
		if err := existing.UpdateQuantity(existing.Quantity + quantity); err != nil {
			return err
		}
	} else {
		item, err := NewOrderItem(o.ID, product, quantity, product.Price)
		if err != nil {
			return err
		}
		o.Items = append(o.Items, item)
	}

	o.touch()

	return nil
}

// RemoveItem drops the line with the given id. Unknown ids are ignored.
func (o *Order) RemoveItem(itemID uuid.UUID) error {
	if err := o.ensureModifiable(); err != nil {
		return err
	}

	kept := o.Items[:0]
	for _, item := range o.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	o.Items = kept
	o.touch()

	return nil
}

// UpdateItemQuantity sets the quantity of an existing line.
func (o *Order) UpdateItemQuantity(itemID uuid.UUID, quantity int) error {
	if err := o.ensureModifiable(); err != nil {
		return err
	}

	item := o.FindItem(itemID)
	if item == nil {
		return domainerrors.InvalidArgument("item not found in order")
	}
	if err := item.UpdateQuantity(quantity); err != nil {
		return err
	}
	o.touch()

	return nil
}

// Confirm moves a non-empty pending order to CONFIRMED.
func (o *Order) Confirm() error {
	if o.Status == OrderStatusPending && len(o.Items) == 0 {
		return domainerrors.InvalidState("cannot confirm order with no items")
	}

	return o.transition(OrderStatusConfirmed, "can only confirm pending orders")
}

// StartPreparing moves a confirmed order to PREPARING.
func (o *Order) StartPreparing() error {
	return o.transition(OrderStatusPreparing, "can only start preparing confirmed orders")
}

// MarkAsReady moves a preparing order to READY.
func (o *Order) MarkAsReady() error {
	return o.transition(OrderStatusReady, "can only mark preparing orders as ready")
}

// Deliver moves a ready order to DELIVERED.
func (o *Order) Deliver() error {
	return o.transition(OrderStatusDelivered, "can only deliver ready orders")
}

// Cancel moves a pending or confirmed order to CANCELLED.
func (o *Order) Cancel() error {
	return o.transition(OrderStatusCancelled, "cannot cancel order in status: "+o.Status.String())
}

// UpdateNotes replaces the order notes.
func (o *Order) UpdateNotes(notes string) {
	o.Notes = notes
	o.LastUpdatedDate = time.Now()
}

// FindItem returns the line with the given id or nil.
func (o *Order) FindItem(itemID uuid.UUID) *OrderItem {
	for _, item := range o.Items {
		if item.ID == itemID {
			return item
		}
	}

	return nil
}

// ItemCount returns the number of lines.
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// TotalProductCount returns the sum of all line quantities.
func (o *Order) TotalProductCount() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}

	return total
}

// IsActive reports whether the order is neither cancelled nor delivered.
func (o *Order) IsActive() bool {
	return o.Status.IsActive()
}

// CanBeModified reports whether items may still be changed.
func (o *Order) CanBeModified() bool {
	return o.Status.CanBeModified()
}

// CanBeCancelled reports whether the order may still be cancelled.
func (o *Order) CanBeCancelled() bool {
	return o.Status.CanBeCancelled()
}

func (o *Order) ensureModifiable() error {
	if !o.Status.CanBeModified() {
		return domainerrors.InvalidState("cannot modify order in status: " + o.Status.String())
	}

	return nil
}

func (o *Order) findItemByProduct(productID uuid.UUID) *OrderItem {
	for _, item := range o.Items {
		if item.ProductID == productID {
			return item
		}
	}

	return nil
}

// transition moves the order to next, or fails with an invalid state error
// carrying reason when the pipeline does not allow the step.
func (o *Order) transition(next OrderStatus, reason string) error {
	if !o.Status.CanTransitionTo(next) {
		return domainerrors.InvalidState(reason)
	}
	o.Status = next
	o.LastUpdatedDate = time.Now()

	return nil
}

// touch recomputes the total after any item change.
func (o *Order) touch() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.TotalPrice)
	}
	o.TotalAmount = total
	o.LastUpdatedDate = time.Now()
}
