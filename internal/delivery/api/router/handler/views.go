package handler

import (
	"time"

	"cafeteria/internal/domain/entity"
	"cafeteria/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public view of a user. The password hash never leaves the server.
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	FullName   string    `json:"fullName"`
	Enabled    bool      `json:"enabled"`
	Roles      []string  `json:"roles"`
	Version    int64     `json:"version"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
	CreatedBy  string    `json:"createdBy,omitempty"`
	ModifiedBy string    `json:"modifiedBy,omitempty"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		FullName:   user.FullName,
		Enabled:    user.Enabled,
		Roles:      user.Roles.ToStrings(),
		Version:    user.Version,
		CreatedAt:  user.CreatedAt,
		ModifiedAt: user.ModifiedAt,
		CreatedBy:  user.CreatedBy,
		ModifiedBy: user.ModifiedBy,
	}
}

type CategoryResponse struct {
	ID                     uuid.UUID  `json:"id"`
	Name                   string     `json:"name"`
	Description            string     `json:"description"`
	ParentCategoryID       *uuid.UUID `json:"parentCategoryId"`
	Active                 bool       `json:"active"`
	RegistrationDate       time.Time  `json:"registrationDate"`
	LastActivityChangeDate time.Time  `json:"lastActivityChangeDate"`
}

func newCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:                     category.ID,
		Name:                   category.Name.String(),
		Description:            category.Description.String(),
		ParentCategoryID:       category.ParentID,
		Active:                 category.Active,
		RegistrationDate:       category.RegistrationDate,
		LastActivityChangeDate: category.LastActivityChangeDate,
	}
}

func newCategoryResponses(categories []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		out[i] = newCategoryResponse(category)
	}

	return out
}

// CategoryDetailsResponse adds the hierarchy position to a category.
type CategoryDetailsResponse struct {
	CategoryResponse
	Path             string `json:"path"`
	Depth            int    `json:"depth"`
	HasSubcategories bool   `json:"hasSubcategories"`
}

func newCategoryDetailsResponse(details *usecase.CategoryDetails) CategoryDetailsResponse {
	return CategoryDetailsResponse{
		CategoryResponse: newCategoryResponse(details.Category),
		Path:             details.Path,
		Depth:            details.Depth,
		HasSubcategories: details.HasSubcategories,
	}
}

type ProductResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         string    `json:"price"`
	CategoryID    uuid.UUID `json:"categoryId"`
	Active        bool      `json:"active"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	StockQuantity int       `json:"stockQuantity"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newProductResponse(view *usecase.ProductView) ProductResponse {
	p := view.Product

	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name.String(),
		Description:   p.Description.String(),
		Price:         p.Price.StringFixed(2),
		CategoryID:    p.CategoryID,
		Active:        p.Active,
		ImageURL:      p.ImageURL,
		StockQuantity: view.StockQuantity,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type InventoryResponse struct {
	ID                uuid.UUID `json:"id"`
	ProductID         uuid.UUID `json:"productId"`
	CurrentQuantity   int       `json:"currentQuantity"`
	MinimumStockLevel int       `json:"minimumStockLevel"`
	MaximumStockLevel int       `json:"maximumStockLevel"`
	ReorderPoint      int       `json:"reorderPoint"`
	ReorderQuantity   int       `json:"reorderQuantity"`
	Active            bool      `json:"active"`
	BelowMinimum      bool      `json:"belowMinimumStock"`
	AtReorderPoint    bool      `json:"atReorderPoint"`
	OutOfStock        bool      `json:"outOfStock"`
	CreatedAt         time.Time `json:"createdAt"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

func newInventoryResponse(inv *entity.Inventory) InventoryResponse {
	return InventoryResponse{
		ID:                inv.ID,
		ProductID:         inv.ProductID,
		CurrentQuantity:   inv.CurrentQuantity,
		MinimumStockLevel: inv.MinimumStockLevel,
		MaximumStockLevel: inv.MaximumStockLevel,
		ReorderPoint:      inv.ReorderPoint,
		ReorderQuantity:   inv.ReorderQuantity,
		Active:            inv.Active,
		BelowMinimum:      inv.IsBelowMinimumStock(),
		AtReorderPoint:    inv.IsAtReorderPoint(),
		OutOfStock:        inv.IsOutOfStock(),
		CreatedAt:         inv.CreatedAt,
		LastUpdated:       inv.LastUpdated,
	}
}

func newInventoryResponses(inventories []*entity.Inventory) []InventoryResponse {
	out := make([]InventoryResponse, len(inventories))
	for i, inv := range inventories {
		out[i] = newInventoryResponse(inv)
	}

	return out
}

type OrderItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unitPrice"`
	TotalPrice  string    `json:"totalPrice"`
}

type OrderResponse struct {
	ID                uuid.UUID           `json:"id"`
	CustomerID        uuid.UUID           `json:"customerId"`
	Status            string              `json:"status"`
	StatusDescription string              `json:"statusDescription"`
	TotalAmount       string              `json:"totalAmount"`
	ItemCount         int                 `json:"itemCount"`
	TotalProductCount int                 `json:"totalProductCount"`
	Notes             string              `json:"notes,omitempty"`
	OrderDate         time.Time           `json:"orderDate"`
	LastUpdatedDate   time.Time           `json:"lastUpdatedDate"`
	Items             []OrderItemResponse `json:"items"`
}

func newOrderResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			TotalPrice:  item.TotalPrice.StringFixed(2),
		}
	}

	return OrderResponse{
		ID:                order.ID,
		CustomerID:        order.CustomerID,
		Status:            order.Status.String(),
		StatusDescription: order.Status.Description(),
		TotalAmount:       order.TotalAmount.StringFixed(2),
		ItemCount:         order.ItemCount(),
		TotalProductCount: order.TotalProductCount(),
		Notes:             order.Notes,
		OrderDate:         order.OrderDate,
		LastUpdatedDate:   order.LastUpdatedDate,
		Items:             items,
	}
}
