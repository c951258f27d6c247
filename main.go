// File: hotelops/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelops/config"
	"hotelops/cron"
	"hotelops/database"
	bookingRepo "hotelops/database/repository/booking"
	inventoryRepo "hotelops/database/repository/inventory"
	roomRepo "hotelops/database/repository/room"
	staffRepo "hotelops/database/repository/staff"
	statsRepo "hotelops/database/repository/stats"
	"hotelops/handlers"
	"hotelops/middleware"
	"hotelops/routes"
	"hotelops/services/frontdesk"
	"hotelops/services/stats"
	"hotelops/services/tasks"
	"hotelops/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitEventCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	rooms := roomRepo.NewMongoRoomRepo()
	staff := staffRepo.NewMongoStaffRepo()
	inventory := inventoryRepo.NewMongoInventoryRepo()
	statsRepository := statsRepo.NewMongoStatsRepo()

	// services.
	statsService := &stats.DefaultService{
		Repo:     statsRepository,
		Cache:    utils.GetCacheClient(),
		CacheTTL: time.Duration(config.AppConfig.StatsCacheTTLSeconds) * time.Second,
		Logger:   logger,
	}

	publisher := tasks.NewAsynqPublisher()
	defer publisher.Close()

	frontDeskService := &frontdesk.DefaultService{
		Bookings:  bookings,
		Rooms:     rooms,
		Staff:     staff,
		Inventory: inventory,
		Events:    publisher,
		Logger:    logger,
	}

	// Stats worker: consumes source-write events and applies deltas.
	deduper := &cron.RedisDeduper{
		Client: utils.GetEventCacheClient(),
		TTL:    time.Duration(config.AppConfig.EventDedupeTTLHours) * time.Hour,
	}
	cron.InitStatsWorker(statsService, deduper, logger)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetEventCacheClient()},
		database.MongoClient,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		FrontDesk: handlers.NewFrontDeskHandler(frontDeskService, logger),
		Stats:     handlers.NewStatsHandler(statsService, logger),
		Auth:      handlers.NewAuthHandler(logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
