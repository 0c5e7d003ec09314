package handler

import (
	"context"
	"log/slog"
	"net/http"

	"cafeteria/internal/delivery/api/response"
	"cafeteria/internal/domain/entity"
	"cafeteria/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the order pipeline. Customers reach only their own
// orders; staff reach all of them.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	CustomerID *uuid.UUID         `json:"customerId"`
	Notes      string             `json:"notes" validate:"max=500"`
	Items      []OrderItemRequest `json:"items" validate:"omitempty,dive"`
}

type UpdateItemQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes" validate:"max=500"`
}

type RevenueResponse struct {
	Revenue string `json:"revenue"`
}

// CreateOrder opens an order for the caller. Only USER_ADMIN may place an
// order on behalf of another customer.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, roles, err := caller(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	customerID := userID
	if req.CustomerID != nil && roles.Contains(entity.RoleUserAdmin) {
		customerID = *req.CustomerID
	}

	items := make([]usecase.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = usecase.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		CustomerID:     customerID,
		Notes:          req.Notes,
		Items:          items,
		IdempotencyKey: c.Request().Header.Get(headerIdempotencyKey),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOrderResponse(order))
}

// List returns a handler paging through the orders that match query.
func (h *OrderHandler) List(query usecase.OrderQuery) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h.list(c, query)
	}
}

func (h *OrderHandler) list(c echo.Context, query usecase.OrderQuery) error {
	page, err := pageRequest(c)
	if err != nil {
		return errors.WithStack(err)
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), query, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, entity.MapPage(orders, newOrderResponse))
}

// ListByStatus pages through the orders in :status.
func (h *OrderHandler) ListByStatus(c echo.Context) error {
	status, err := pathStatus(c)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.list(c, usecase.OrderQuery{Statuses: []entity.OrderStatus{status}})
}

// ListByAmountRange pages through orders whose total lies within ?min and ?max.
func (h *OrderHandler) ListByAmountRange(c echo.Context) error {
	minAmount, err := queryDecimal(c, "min")
	if err != nil {
		return errors.WithStack(err)
	}
	maxAmount, err := queryDecimal(c, "max")
	if err != nil {
		return errors.WithStack(err)
	}

	return h.list(c, usecase.OrderQuery{MinAmount: minAmount, MaxAmount: maxAmount})
}

// ListByMinItems pages through orders holding at least :n lines.
func (h *OrderHandler) ListByMinItems(c echo.Context) error {
	n, err := pathInt(c, "n")
	if err != nil {
		return errors.WithStack(err)
	}

	return h.list(c, usecase.OrderQuery{MinItems: &n})
}

// Count returns a handler counting the orders that match query.
func (h *OrderHandler) Count(query usecase.OrderQuery) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h.count(c, query)
	}
}

func (h *OrderHandler) count(c echo.Context, query usecase.OrderQuery) error {
	count, err := h.orderUC.CountOrders(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count})
}

// CountByStatus counts the orders in :status.
func (h *OrderHandler) CountByStatus(c echo.Context) error {
	status, err := pathStatus(c)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.count(c, usecase.OrderQuery{Statuses: []entity.OrderStatus{status}})
}

// CountByCustomer counts the orders of :customerId.
func (h *OrderHandler) CountByCustomer(c echo.Context) error {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return errors.WithStack(err)
	}

	return h.count(c, usecase.OrderQuery{CustomerID: &customerID})
}

// TotalRevenue sums the totals of delivered orders.
func (h *OrderHandler) TotalRevenue(c echo.Context) error {
	return h.revenue(c, entity.OrderStatusDelivered)
}

// RevenueByStatus sums the totals of the orders in :status.
func (h *OrderHandler) RevenueByStatus(c echo.Context) error {
	status, err := pathStatus(c)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.revenue(c, status)
}

func (h *OrderHandler) revenue(c echo.Context, status entity.OrderStatus) error {
	sum, err := h.orderUC.SumRevenue(c.Request().Context(), usecase.OrderQuery{
		Statuses: []entity.OrderStatus{status},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, RevenueResponse{Revenue: sum.StringFixed(2)})
}

// ListByCustomer pages through the orders of :customerId.
func (h *OrderHandler) ListByCustomer(c echo.Context) error {
	customerID, err := h.customer(c)
	if err != nil {
		return err
	}

	return h.list(c, usecase.OrderQuery{CustomerID: &customerID})
}

// ListByCustomerAndStatus pages through the orders of :customerId in :status.
func (h *OrderHandler) ListByCustomerAndStatus(c echo.Context) error {
	customerID, err := h.customer(c)
	if err != nil {
		return err
	}

	status, err := pathStatus(c)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.list(c, usecase.OrderQuery{CustomerID: &customerID, Statuses: []entity.OrderStatus{status}})
}

// HasActiveOrder reports whether :customerId has an order in the pipeline.
func (h *OrderHandler) HasActiveOrder(c echo.Context) error {
	customerID, err := h.customer(c)
	if err != nil {
		return err
	}

	active, err := h.orderUC.HasActiveOrder(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"hasActiveOrder": active})
}

// GetOrder returns one order.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.ownedOrder(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// AddItem adds a product line to the order.
func (h *OrderHandler) AddItem(c echo.Context) error {
	var req OrderItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	return h.mutate(c, func(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
		return h.orderUC.AddItem(ctx, orderID, usecase.OrderItemInput{ProductID: req.ProductID, Quantity: req.Quantity})
	})
}

// UpdateItemQuantity changes the quantity of :itemId.
func (h *OrderHandler) UpdateItemQuantity(c echo.Context) error {
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return errors.WithStack(err)
	}

	var req UpdateItemQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	return h.mutate(c, func(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
		return h.orderUC.UpdateItemQuantity(ctx, orderID, itemID, req.Quantity)
	})
}

// RemoveItem drops :itemId from the order.
func (h *OrderHandler) RemoveItem(c echo.Context) error {
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return errors.WithStack(err)
	}

	return h.mutate(c, func(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
		return h.orderUC.RemoveItem(ctx, orderID, itemID)
	})
}

// UpdateNotes replaces the customer notes.
func (h *OrderHandler) UpdateNotes(c echo.Context) error {
	var req UpdateNotesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	return h.mutate(c, func(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
		return h.orderUC.UpdateNotes(ctx, orderID, req.Notes)
	})
}

// ConfirmOrder confirms a pending order.
func (h *OrderHandler) ConfirmOrder(c echo.Context) error {
	return h.mutate(c, h.orderUC.ConfirmOrder)
}

// CancelOrder cancels a pending or confirmed order.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	return h.mutate(c, h.orderUC.CancelOrder)
}

// StartPreparing moves a confirmed order to the kitchen.
func (h *OrderHandler) StartPreparing(c echo.Context) error {
	return h.staffTransition(c, h.orderUC.StartPreparing)
}

// MarkAsReady marks a prepared order as ready.
func (h *OrderHandler) MarkAsReady(c echo.Context) error {
	return h.staffTransition(c, h.orderUC.MarkAsReady)
}

// DeliverOrder hands a ready order to the customer.
func (h *OrderHandler) DeliverOrder(c echo.Context) error {
	return h.staffTransition(c, h.orderUC.DeliverOrder)
}

// DeleteOrder removes an order for good.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

type orderChange func(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

// mutate applies change to :id once the caller is known to own it or be staff.
func (h *OrderHandler) mutate(c echo.Context, change orderChange) error {
	order, err := h.ownedOrder(c)
	if err != nil {
		return err
	}

	updated, err := change(c.Request().Context(), order.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(updated))
}

// staffTransition applies change to :id. Access is checked by the route.
func (h *OrderHandler) staffTransition(c echo.Context, change orderChange) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := change(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

func (h *OrderHandler) ownedOrder(c echo.Context) (*entity.Order, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := ensureOwnerOrStaff(c, order.CustomerID); err != nil {
		return nil, errors.WithStack(err)
	}

	return order, nil
}

func (h *OrderHandler) customer(c echo.Context) (uuid.UUID, error) {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return uuid.Nil, errors.WithStack(err)
	}

	if err := ensureOwnerOrStaff(c, customerID); err != nil {
		return uuid.Nil, errors.WithStack(err)
	}

	return customerID, nil
}
