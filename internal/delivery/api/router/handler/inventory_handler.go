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

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// InventoryHandler serves stock records to staff.
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler.
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

type CreateInventoryRequest struct {
	ProductID         uuid.UUID `json:"productId" validate:"required"`
	CurrentQuantity   int       `json:"currentQuantity" validate:"min=0"`
	MinimumStockLevel *int      `json:"minimumStockLevel" validate:"omitempty,min=0"`
	MaximumStockLevel *int      `json:"maximumStockLevel" validate:"omitempty,min=0"`
	ReorderPoint      *int      `json:"reorderPoint" validate:"omitempty,min=0"`
	ReorderQuantity   *int      `json:"reorderQuantity" validate:"omitempty,min=0"`
}

type UpdateInventoryRequest struct {
	CurrentQuantity   *int  `json:"currentQuantity" validate:"omitempty,min=0"`
	MinimumStockLevel *int  `json:"minimumStockLevel" validate:"omitempty,min=0"`
	MaximumStockLevel *int  `json:"maximumStockLevel" validate:"omitempty,min=0"`
	ReorderPoint      *int  `json:"reorderPoint" validate:"omitempty,min=0"`
	ReorderQuantity   *int  `json:"reorderQuantity" validate:"omitempty,min=0"`
	Active            *bool `json:"active"`
}

// CreateInventory creates the stock record of a product.
func (h *InventoryHandler) CreateInventory(c echo.Context) error {
	var req CreateInventoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	inv, err := h.inventoryUC.CreateInventory(c.Request().Context(), usecase.CreateInventoryInput{
		ProductID:         req.ProductID,
		CurrentQuantity:   req.CurrentQuantity,
		MinimumStockLevel: req.MinimumStockLevel,
		MaximumStockLevel: req.MaximumStockLevel,
		ReorderPoint:      req.ReorderPoint,
		ReorderQuantity:   req.ReorderQuantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newInventoryResponse(inv))
}

// List returns a handler listing the records that match query.
func (h *InventoryHandler) List(query usecase.InventoryQuery) echo.HandlerFunc {
	return func(c echo.Context) error {
		inventories, err := h.inventoryUC.ListInventories(c.Request().Context(), query)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, newInventoryResponses(inventories))
	}
}

// Count returns a handler counting the records that match query.
func (h *InventoryHandler) Count(query usecase.InventoryQuery) echo.HandlerFunc {
	return func(c echo.Context) error {
		count, err := h.inventoryUC.CountInventories(c.Request().Context(), query)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, map[string]int64{"count": count})
	}
}

// ListByQuantityRange lists records holding between ?min and ?max units.
func (h *InventoryHandler) ListByQuantityRange(c echo.Context) error {
	minQuantity, err := requiredQueryInt(c, "min")
	if err != nil {
		return errors.WithStack(err)
	}
	maxQuantity, err := requiredQueryInt(c, "max")
	if err != nil {
		return errors.WithStack(err)
	}

	return h.List(usecase.InventoryQuery{MinQuantity: &minQuantity, MaxQuantity: &maxQuantity})(c)
}

// GetInventoryByProduct returns the record of :productId.
func (h *InventoryHandler) GetInventoryByProduct(c echo.Context) error {
	productID, err := pathID(c, "productId")
	if err != nil {
		return errors.WithStack(err)
	}

	inv, err := h.inventoryUC.GetInventoryByProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInventoryResponse(inv))
}

// GetInventory returns one record.
func (h *InventoryHandler) GetInventory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	inv, err := h.inventoryUC.GetInventory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInventoryResponse(inv))
}

// UpdateInventory edits quantity, levels and the active flag.
func (h *InventoryHandler) UpdateInventory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req UpdateInventoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return errors.WithStack(err)
	}

	inv, err := h.inventoryUC.UpdateInventory(c.Request().Context(), id, usecase.UpdateInventoryInput{
		CurrentQuantity:   req.CurrentQuantity,
		MinimumStockLevel: req.MinimumStockLevel,
		MaximumStockLevel: req.MaximumStockLevel,
		ReorderPoint:      req.ReorderPoint,
		ReorderQuantity:   req.ReorderQuantity,
		Active:            req.Active,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInventoryResponse(inv))
}

// SetQuantity sets the quantity of :id to ?quantity.
func (h *InventoryHandler) SetQuantity(c echo.Context) error {
	return h.changeQuantity(c, h.inventoryUC.SetQuantity)
}

// AddQuantity adds ?quantity units to :id.
func (h *InventoryHandler) AddQuantity(c echo.Context) error {
	return h.changeQuantity(c, h.inventoryUC.AddQuantity)
}

// RemoveQuantity takes ?quantity units from :id.
func (h *InventoryHandler) RemoveQuantity(c echo.Context) error {
	return h.changeQuantity(c, h.inventoryUC.RemoveQuantity)
}

type quantityChange func(ctx context.Context, id uuid.UUID, quantity int) (*entity.Inventory, error)

func (h *InventoryHandler) changeQuantity(c echo.Context, change quantityChange) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	quantity, err := requiredQueryInt(c, "quantity")
	if err != nil {
		return errors.WithStack(err)
	}

	inv, err := change(c.Request().Context(), id, quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInventoryResponse(inv))
}

// ActivateInventory includes :id in stock reservation again.
func (h *InventoryHandler) ActivateInventory(c echo.Context) error {
	return h.toggle(c, h.inventoryUC.ActivateInventory)
}

// DeactivateInventory excludes :id from stock reservation.
func (h *InventoryHandler) DeactivateInventory(c echo.Context) error {
	return h.toggle(c, h.inventoryUC.DeactivateInventory)
}

func (h *InventoryHandler) toggle(c echo.Context, change func(ctx context.Context, id uuid.UUID) (*entity.Inventory, error)) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	inv, err := change(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInventoryResponse(inv))
}

// DeleteInventory removes a record.
func (h *InventoryHandler) DeleteInventory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.inventoryUC.DeleteInventory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
