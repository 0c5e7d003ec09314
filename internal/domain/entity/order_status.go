package entity

import (
	"strings"

	domainerrors "cafeteria/internal/domain/errors"
)

// OrderStatus is a step in the order pipeline.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

var orderStatusDescriptions = map[OrderStatus]string{
	OrderStatusPending:   "Order is pending confirmation",
	OrderStatusConfirmed: "Order has been confirmed",
	OrderStatusPreparing: "Order is being prepared",
	OrderStatusReady:     "Order is ready for pickup/delivery",
	OrderStatusDelivered: "Order has been delivered",
	OrderStatusCancelled: "Order has been cancelled",
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady},
	OrderStatusReady:     {OrderStatusDelivered},
}

// ParseOrderStatus converts a case-insensitive status name into an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", domainerrors.InvalidArgument("unknown order status: " + s)
	}

	return status, nil
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusDescriptions[s]

	return ok
}

// Description returns a human readable explanation of the status.
func (s OrderStatus) Description() string {
	return orderStatusDescriptions[s]
}

// ActiveOrderStatuses lists the statuses of orders still in the pipeline.
func ActiveOrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady}
}

// IsActive reports whether the order is still moving through the pipeline.
func (s OrderStatus) IsActive() bool {
	return s != OrderStatusCancelled && s != OrderStatusDelivered
}

// CanBeModified reports whether items may still be changed.
func (s OrderStatus) CanBeModified() bool {
	return s == OrderStatusPending
}

// CanBeCancelled reports whether the order may still be cancelled.
func (s OrderStatus) CanBeCancelled() bool {
	return s.CanTransitionTo(OrderStatusCancelled)
}

// CanTransitionTo reports whether the pipeline allows a step from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}
