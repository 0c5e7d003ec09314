// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cafeteria/internal/delivery/api/middleware"
	"cafeteria/internal/delivery/api/router/handler"
	"cafeteria/internal/domain/entity"
	"cafeteria/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	CategoryHandler  *handler.CategoryHandler
	ProductHandler   *handler.ProductHandler
	InventoryHandler *handler.InventoryHandler
	OrderHandler     *handler.OrderHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	userHandler      *handler.UserHandler
	categoryHandler  *handler.CategoryHandler
	productHandler   *handler.ProductHandler
	inventoryHandler *handler.InventoryHandler
	orderHandler     *handler.OrderHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		userHandler:      params.UserHandler,
		categoryHandler:  params.CategoryHandler,
		productHandler:   params.ProductHandler,
		inventoryHandler: params.InventoryHandler,
		orderHandler:     params.OrderHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	publicGroup := e.Group("/api/public")
	{
		publicGroup.POST("/register", r.authHandler.Register)
		publicGroup.POST("/login", r.authHandler.Login)
		publicGroup.POST("/refresh", r.authHandler.RefreshToken)
	}

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate) // everything below needs an access token

	adminOnly := r.authMiddleware.RequireRole(entity.RoleUserAdmin)
	staffOnly := r.authMiddleware.RequireStaff()

	api.GET("/users/profile", r.authHandler.GetProfile)

	r.registerUserRoutes(api.Group("/admin/user", adminOnly))
	r.registerCategoryRoutes(api.Group("/categories"), adminOnly)
	r.registerProductRoutes(api.Group("/products"), adminOnly, staffOnly)
	r.registerInventoryRoutes(api.Group("/inventory", staffOnly))
	r.registerOrderRoutes(api.Group("/orders"), adminOnly, staffOnly)
}

func (r *router) registerUserRoutes(g *echo.Group) {
	g.POST("", r.userHandler.CreateUser)
	g.POST("/search", r.userHandler.SearchUsers)
	g.GET("/check-username", r.userHandler.CheckUsername)
	g.GET("/:id", r.userHandler.GetUser)
	g.PUT("/:id", r.userHandler.UpdateUser)
	g.DELETE("/:id", r.userHandler.DeleteUser)
}

func (r *router) registerCategoryRoutes(g *echo.Group, adminOnly echo.MiddlewareFunc) {
	h := r.categoryHandler

	g.GET("", h.SearchCategories)
	g.GET("/active", h.ListActiveCategories)
	g.GET("/:id", h.GetCategory)
	g.GET("/:id/subcategories", h.ListSubcategories)

	g.POST("", h.CreateCategory, adminOnly)
	g.POST("/:id/subcategories", h.CreateSubcategory, adminOnly)
	g.PUT("/:id", h.UpdateCategory, adminOnly)
	g.PATCH("/:id/parent", h.MoveCategory, adminOnly)
	g.PATCH("/:id/activate", h.ActivateCategory, adminOnly)
	g.PATCH("/:id/deactivate", h.DeactivateCategory, adminOnly)
	g.DELETE("/:id", h.DeleteCategory, adminOnly)
}

func (r *router) registerProductRoutes(g *echo.Group, adminOnly, staffOnly echo.MiddlewareFunc) {
	h := r.productHandler

	g.GET("", h.SearchProducts)
	g.GET("/active", h.ListActiveProducts)
	g.GET("/category/:categoryId", h.ListProductsByCategory)
	g.GET("/low-stock", h.ListLowStockProducts, staffOnly)
	g.GET("/:id", h.GetProduct)

	g.POST("", h.CreateProduct, adminOnly)
	g.PUT("/:id", h.UpdateProduct, adminOnly)
	g.PATCH("/:id/stock", h.UpdateStock, staffOnly)
	g.DELETE("/:id", h.DeleteProduct, adminOnly)
}

func (r *router) registerInventoryRoutes(g *echo.Group) {
	h := r.inventoryHandler
	active, inactive := true, false

	g.POST("", h.CreateInventory)
	g.GET("", h.List(usecase.InventoryQuery{}))
	g.GET("/active", h.List(usecase.InventoryQuery{Active: &active}))
	g.GET("/inactive", h.List(usecase.InventoryQuery{Active: &inactive}))
	g.GET("/low-stock", h.List(usecase.InventoryQuery{BelowMinimum: true}))
	g.GET("/reorder-point", h.List(usecase.InventoryQuery{AtReorderPoint: true}))
	g.GET("/out-of-stock", h.List(usecase.InventoryQuery{OutOfStock: true}))
	g.GET("/overstocked", h.List(usecase.InventoryQuery{AboveMaximum: true}))
	g.GET("/quantity-range", h.ListByQuantityRange)
	g.GET("/count", h.Count(usecase.InventoryQuery{}))
	g.GET("/count/active", h.Count(usecase.InventoryQuery{Active: &active}))
	g.GET("/product/:productId", h.GetInventoryByProduct)
	g.GET("/:id", h.GetInventory)
	g.PUT("/:id", h.UpdateInventory)
	g.PATCH("/:id/quantity", h.SetQuantity)
	g.PATCH("/:id/add-quantity", h.AddQuantity)
	g.PATCH("/:id/remove-quantity", h.RemoveQuantity)
	g.PATCH("/:id/activate", h.ActivateInventory)
	g.PATCH("/:id/deactivate", h.DeactivateInventory)
	g.DELETE("/:id", h.DeleteInventory)
}

func (r *router) registerOrderRoutes(g *echo.Group, adminOnly, staffOnly echo.MiddlewareFunc) {
	h := r.orderHandler

	g.POST("", h.CreateOrder)

	staff := g.Group("", staffOnly)
	{
		staff.GET("", h.List(usecase.OrderQuery{}))
		staff.GET("/active", h.List(usecase.OrderQuery{Statuses: entity.ActiveOrderStatuses()}))
		for path, status := range map[string]entity.OrderStatus{
			"/pending":   entity.OrderStatusPending,
			"/confirmed": entity.OrderStatusConfirmed,
			"/preparing": entity.OrderStatusPreparing,
			"/ready":     entity.OrderStatusReady,
			"/delivered": entity.OrderStatusDelivered,
			"/cancelled": entity.OrderStatusCancelled,
		} {
			staff.GET(path, h.List(usecase.OrderQuery{Statuses: []entity.OrderStatus{status}}))
		}
		staff.GET("/status/:status", h.ListByStatus)
		staff.GET("/amount-range", h.ListByAmountRange)
		staff.GET("/min-items/:n", h.ListByMinItems)

		staff.GET("/count", h.Count(usecase.OrderQuery{}))
		staff.GET("/count/active", h.Count(usecase.OrderQuery{Statuses: entity.ActiveOrderStatuses()}))
		staff.GET("/count/status/:status", h.CountByStatus)
		staff.GET("/count/customer/:customerId", h.CountByCustomer)

		staff.GET("/revenue/total", h.TotalRevenue)
		staff.GET("/revenue/status/:status", h.RevenueByStatus)

		staff.PATCH("/:id/start-preparing", h.StartPreparing)
		staff.PATCH("/:id/ready", h.MarkAsReady)
		staff.PATCH("/:id/deliver", h.DeliverOrder)
	}

	// Owner or staff, checked by the handler against the loaded order.
	g.GET("/customer/:customerId", h.ListByCustomer)
	g.GET("/customer/:customerId/status/:status", h.ListByCustomerAndStatus)
	g.GET("/customer/:customerId/has-active", h.HasActiveOrder)
	g.GET("/:id", h.GetOrder)
	g.POST("/:id/items", h.AddItem)
	g.PUT("/:id/items/:itemId", h.UpdateItemQuantity)
	g.DELETE("/:id/items/:itemId", h.RemoveItem)
	g.PATCH("/:id/confirm", h.ConfirmOrder)
	g.PATCH("/:id/cancel", h.CancelOrder)
	g.PATCH("/:id/notes", h.UpdateNotes)

	g.DELETE("/:id", h.DeleteOrder, adminOnly)
}
