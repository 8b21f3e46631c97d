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
	"github.com/retailstack/backend/internal/adapters/mongo"
	"github.com/retailstack/backend/internal/adapters/mongo/repository"
	"github.com/retailstack/backend/internal/adapters/redis"
	"github.com/retailstack/backend/internal/core/logger"
	"github.com/retailstack/backend/internal/core/service"
)

// @title       Notification Service API
// @version     1.0
// @description Customer notification recording and delivery

// @host     localhost:8082
// @BasePath /

//go:generate swag init -d ../.. -g cmd/notification/main.go -o ../../docs/notification --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

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

	// repositories and rate limiter
	database := mongoClient.Database(cfg.Mongo.Database)
	notificationRepository := repository.NewNotificationRepository(database)
	rateLimiter := redis.NewRateLimiter(redisClient)

	// services
	notificationService := service.NewNotificationService(notificationRepository)

	// controllers
	notificationController := controllers.NewNotificationController(notificationService)
	healthController := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "mongodb", Check: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }},
		{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx) }},
	})

	// router
	router := http.NewNotificationRouter(healthController, notificationController, rateLimiter)

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
