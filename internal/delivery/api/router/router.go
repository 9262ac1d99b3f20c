// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"zakaz/internal/delivery/api/middleware"
	"zakaz/internal/delivery/api/router/handler"
	"zakaz/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	ShopHandler         *handler.ShopHandler
	ProductHandler      *handler.ProductHandler
	OrderHandler        *handler.OrderHandler
	RatingHandler       *handler.RatingHandler
	CourierHandler      *handler.CourierHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	shopHandler         *handler.ShopHandler
	productHandler      *handler.ProductHandler
	orderHandler        *handler.OrderHandler
	ratingHandler       *handler.RatingHandler
	courierHandler      *handler.CourierHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		shopHandler:         params.ShopHandler,
		productHandler:      params.ProductHandler,
		orderHandler:        params.OrderHandler,
		ratingHandler:       params.RatingHandler,
		courierHandler:      params.CourierHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Public catalog
	apiV1.POST("/auth/register", r.userHandler.Register)
	apiV1.GET("/shops", r.shopHandler.GetShops)
	apiV1.GET("/shops/:id", r.shopHandler.GetShop)
	apiV1.GET("/products", r.productHandler.GetProducts)
	apiV1.GET("/categories", r.productHandler.GetCategories)
	apiV1.GET("/ratings", r.ratingHandler.GetRatings)

	authed := apiV1.Group("", r.authMiddleware.Authenticate)

	shopOnly := r.authMiddleware.RequireRole(entity.RoleShop)
	customerOnly := r.authMiddleware.RequireRole(entity.RoleCustomer)
	courierOnly := r.authMiddleware.RequireRole(entity.RoleCourier)
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	authed.GET("/me", r.userHandler.Me)

	authed.POST("/shops", r.shopHandler.CreateShop, shopOnly)
	authed.POST("/products", r.productHandler.CreateProduct, shopOnly)
	authed.PATCH("/products/:id", r.productHandler.UpdateProduct, shopOnly)

	orders := authed.Group("/orders")
	{
		orders.POST("", r.orderHandler.CreateOrder, customerOnly)
		orders.GET("", r.orderHandler.GetOrders)
		orders.GET("/:id", r.orderHandler.GetOrder)
		orders.PATCH("/:id/status", r.orderHandler.UpdateOrderStatus,
			r.authMiddleware.RequireRole(entity.RoleShop, entity.RoleCourier))
		orders.POST("/:id/accept", r.orderHandler.AcceptOrder, courierOnly)
	}

	authed.PUT("/courier/location", r.courierHandler.UpdateLocation, courierOnly)
	authed.GET("/couriers/:id/location", r.courierHandler.GetLocation)

	authed.POST("/ratings", r.ratingHandler.CreateRating)

	notifications := authed.Group("/notifications")
	{
		notifications.GET("", r.notificationHandler.GetNotifications)
		notifications.POST("", r.notificationHandler.CreateNotification, adminOnly)
		notifications.PATCH("/:id/read", r.notificationHandler.MarkRead)
	}
}
