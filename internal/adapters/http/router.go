package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/retailstack/backend/internal/adapters/config"
	"github.com/retailstack/backend/internal/adapters/http/controllers"
	"github.com/retailstack/backend/internal/adapters/http/middleware"
)

// Each service binary assembles its own router; they share the listen
// and shutdown plumbing below.

type InventoryRouter struct {
	healthController *controllers.HealthController
	stockController  *controllers.StockController
	rateLimiter      middleware.RateLimiter
}

func NewInventoryRouter(
	healthController *controllers.HealthController,
	stockController *controllers.StockController,
	rateLimiter middleware.RateLimiter,
) *InventoryRouter {
	return &InventoryRouter{
		healthController: healthController,
		stockController:  stockController,
		rateLimiter:      rateLimiter,
	}
}

func (r *InventoryRouter) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.GET("/stock/:productID", r.stockController.GetStock)
		v1Group.PUT("/stock/:productID", middleware.RateLimit(rl, 30, 1*time.Minute), r.stockController.SetStock)
		v1Group.POST("/stock/:productID/reduce", middleware.RateLimit(rl, 60, 1*time.Minute), r.stockController.ReduceStock)
		v1Group.POST("/stock/:productID/restore", middleware.RateLimit(rl, 60, 1*time.Minute), r.stockController.RestoreStock)
	}
}

func (r *InventoryRouter) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	return listenAndServe(ctx, config, r.SetupRoutes)
}

type OrderRouter struct {
	healthController *controllers.HealthController
	orderController  *controllers.OrderController
	rateLimiter      middleware.RateLimiter
}

func NewOrderRouter(
	healthController *controllers.HealthController,
	orderController *controllers.OrderController,
	rateLimiter middleware.RateLimiter,
) *OrderRouter {
	return &OrderRouter{
		healthController: healthController,
		orderController:  orderController,
		rateLimiter:      rateLimiter,
	}
}

func (r *OrderRouter) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.POST("/orders", middleware.RateLimit(rl, 15, 1*time.Minute), r.orderController.PlaceOrder)
		v1Group.GET("/orders/:id", r.orderController.GetOrderByID)
		v1Group.GET("/customers/:customerID/orders", r.orderController.GetOrdersByCustomer)
	}
}

func (r *OrderRouter) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	return listenAndServe(ctx, config, r.SetupRoutes)
}

type CartRouter struct {
	healthController *controllers.HealthController
	cartController   *controllers.CartController
	rateLimiter      middleware.RateLimiter
}

func NewCartRouter(
	healthController *controllers.HealthController,
	cartController *controllers.CartController,
	rateLimiter middleware.RateLimiter,
) *CartRouter {
	return &CartRouter{
		healthController: healthController,
		cartController:   cartController,
		rateLimiter:      rateLimiter,
	}
}

func (r *CartRouter) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.GET("/carts/:customerID", r.cartController.GetCart)
		v1Group.POST("/carts", middleware.RateLimit(rl, 30, 1*time.Minute), r.cartController.AddItem)
		v1Group.PUT("/carts/:customerID/items/:productID", middleware.RateLimit(rl, 30, 1*time.Minute), r.cartController.UpdateQuantity)
		v1Group.DELETE("/carts/:customerID/items/:productID", r.cartController.RemoveItem)
		v1Group.DELETE("/carts/:customerID", r.cartController.ClearCart)
	}
}

func (r *CartRouter) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	return listenAndServe(ctx, config, r.SetupRoutes)
}

type NotificationRouter struct {
	healthController       *controllers.HealthController
	notificationController *controllers.NotificationController
	rateLimiter            middleware.RateLimiter
}

func NewNotificationRouter(
	healthController *controllers.HealthController,
	notificationController *controllers.NotificationController,
	rateLimiter middleware.RateLimiter,
) *NotificationRouter {
	return &NotificationRouter{
		healthController:       healthController,
		notificationController: notificationController,
		rateLimiter:            rateLimiter,
	}
}

func (r *NotificationRouter) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.POST("/notifications", middleware.RateLimit(rl, 60, 1*time.Minute), r.notificationController.SendNotification)
		v1Group.GET("/customers/:customerID/notifications", r.notificationController.GetNotificationsByCustomer)
	}
}

func (r *NotificationRouter) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	return listenAndServe(ctx, config, r.SetupRoutes)
}

func listenAndServe(ctx context.Context, config config.HTTPConfig, setup func(*gin.Engine)) error {
	engine := gin.Default()
	setup(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
