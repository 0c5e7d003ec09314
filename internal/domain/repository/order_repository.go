package repository

import (
	"context"
	"errors"

	"cafeteria/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows order listings. All set conditions must hold.
type OrderFilter struct {
	CustomerID *uuid.UUID
	Statuses   []entity.OrderStatus
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	MinItems   *int
}

// OrderRepository persists Order aggregates together with their items.
type OrderRepository interface {
	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// LockByID is FindByID taking a row lock on the order until the
	// surrounding transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// Find returns a page of orders matching filter, newest first.
	Find(ctx context.Context, filter OrderFilter, page entity.PageRequest) (entity.Page[*entity.Order], error)

	// Count counts orders matching filter.
	Count(ctx context.Context, filter OrderFilter) (int64, error)

	// SumTotalAmount adds up the totals of orders matching filter.
	SumTotalAmount(ctx context.Context, filter OrderFilter) (decimal.Decimal, error)

	// Create persists a new order and its items.
	Create(ctx context.Context, order *entity.Order) error

	// Update saves the order header and replaces its items with order.Items.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order and its items.
	Delete(ctx context.Context, id uuid.UUID) error
}
