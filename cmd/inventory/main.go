package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/retailstack/backend/internal/adapters/config"
	"github.com/retailstack/backend/internal/adapters/http"
	"github.com/retailstack/backend/internal/adapters/http/controllers"
	"github.com/retailstack/backend/internal/adapters/httpclient"
	"github.com/retailstack/backend/internal/adapters/mongo"
	"github.com/retailstack/backend/internal/adapters/mongo/repository"
	"github.com/retailstack/backend/internal/adapters/redis"
	"github.com/retailstack/backend/internal/core/logger"
	"github.com/retailstack/backend/internal/core/service"
)

// @title       Inventory Service API
// @version     1.0
// @description Stock ledger with product-cache synchronization

// @host     localhost:8081
// @BasePath /

//go:generate swag init -d ../.. -g cmd/inventory/main.go -o ../../docs/inventory --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// cancellable context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database connection
	mongoClient, err := mongo.NewConnection(cfg.Mongo)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to MongoDB", err, nil)
	}
	defer mongo.Disconnect(mongoClient)
	logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Mongo.Database})

	// initialize redis connection
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	// repositories and outbound clients
	database := mongoClient.Database(cfg.Mongo.Database)
	stockRepository := repository.NewStockRepository(database)
	productCacheClient := httpclient.NewProductCacheClient(cfg.Clients.ProductCacheURL, cfg.Clients.Timeout)
	rateLimiter := redis.NewRateLimiter(redisClient)

	// services
	stockService := service.NewStockService(stockRepository, productCacheClient)

	// reconciliation sweep (uses cancellable context)
	reconciler := service.NewReconciler(stockRepository, productCacheClient, cfg.Reconciler.Interval, cfg.Reconciler.Overlap)
	go reconciler.Start(ctx)
	logger.Info(ctx, "Reconciler started", map[string]any{"interval": cfg.Reconciler.Interval.String(), "overlap": cfg.Reconciler.Overlap.String()})

	// controllers
	stockController := controllers.NewStockController(stockService)
	healthController := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "mongodb", Check: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }},
		{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx) }},
	})

	// router
	router := http.NewInventoryRouter(healthController, stockController, rateLimiter)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]interface{}{"signal": sig.String()})
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	err = router.ListenAndServe(ctx, cfg.HTTP)
	if err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
}
