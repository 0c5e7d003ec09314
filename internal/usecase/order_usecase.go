package usecase

import (
	"context"

	"cafeteria/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemInput is one requested line.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput defines a new PENDING order. Items are optional and are
// added in the given order. A non-empty IdempotencyKey makes a replay fail
// with ErrDuplicateRequest.
type CreateOrderInput struct {
	CustomerID     uuid.UUID
	Notes          string
	Items          []OrderItemInput
	IdempotencyKey string
}

// OrderQuery narrows order listings, counts and revenue sums.
type OrderQuery struct {
	CustomerID *uuid.UUID
	Statuses   []entity.OrderStatus
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	MinItems   *int
}

// OrderUsecase drives the order lifecycle.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, query OrderQuery, page entity.PageRequest) (entity.Page[*entity.Order], error)
	CountOrders(ctx context.Context, query OrderQuery) (int64, error)

	// SumRevenue adds up the totals of the matching orders.
	SumRevenue(ctx context.Context, query OrderQuery) (decimal.Decimal, error)
	HasActiveOrder(ctx context.Context, customerID uuid.UUID) (bool, error)

	AddItem(ctx context.Context, orderID uuid.UUID, input OrderItemInput) (*entity.Order, error)
	UpdateItemQuantity(ctx context.Context, orderID, itemID uuid.UUID, quantity int) (*entity.Order, error)
	RemoveItem(ctx context.Context, orderID, itemID uuid.UUID) (*entity.Order, error)
	UpdateNotes(ctx context.Context, orderID uuid.UUID, notes string) (*entity.Order, error)

	// ConfirmOrder reserves stock for every item whose product has an active
	// inventory record.
	ConfirmOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
	StartPreparing(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
	MarkAsReady(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
	DeliverOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// CancelOrder returns reserved stock when the order was already confirmed.
	CancelOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
}
