// Package router contains routing setup for the HTTP delivery.
package router

import (
	"retrokick/internal/delivery/http/middleware"
	"retrokick/internal/delivery/http/router/handler"
	"retrokick/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	AuthHandler     *handler.AuthHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	authHandler     *handler.AuthHandler

	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:      params.CatalogHandler,
		cartHandler:         params.CartHandler,
		checkoutHandler:     params.CheckoutHandler,
		orderHandler:        params.OrderHandler,
		authHandler:         params.AuthHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Catalog routes (public, read-only)
	api.GET("/products", r.catalogHandler.ListProducts)
	api.GET("/products/:id", r.catalogHandler.GetProduct)

	// Cart routes, keyed by the X-Cart-Session header
	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}

	// Checkout flow, keyed by the same session header as the cart
	checkoutGroup := api.Group("/checkout")
	{
		checkoutGroup.POST("", r.checkoutHandler.StartCheckout)
		checkoutGroup.GET("", r.checkoutHandler.GetSession)
		checkoutGroup.POST("/shipping", r.checkoutHandler.SubmitShipping)
		checkoutGroup.POST("/payment", r.checkoutHandler.ConfirmPayment)
	}

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Order routes: placement and lookup are public (the storefront
	// client calls them after the external payment confirms)
	api.POST("/orders", r.orderHandler.PlaceOrder)
	api.GET("/orders/:orderId", r.orderHandler.GetOrder)

	// Admin routes that require authentication and the "admin" role
	adminGroup := api.Group("/admin")
	adminGroup.POST("/login", r.authHandler.AdminLogin)

	adminOrders := api.Group("/orders")
	adminOrders.Use(r.authMiddleware.Authenticate)
	adminOrders.Use(r.authMiddleware.RequireRole(service.RoleAdmin))
	{
		adminOrders.GET("", r.orderHandler.ListOrders)
		adminOrders.PATCH("/:orderId/status", r.orderHandler.UpdateStatus)
	}

	adminStats := adminGroup.Group("/stats")
	adminStats.Use(r.authMiddleware.Authenticate)
	adminStats.Use(r.authMiddleware.RequireRole(service.RoleAdmin))
	{
		adminStats.GET("", r.orderHandler.Stats)
	}
}
