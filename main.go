// File: sproutly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sproutly/config"
	"sproutly/database"
	assignmentRepo "sproutly/database/repository/assignment"
	catalogRepo "sproutly/database/repository/catalog"
	slotRepo "sproutly/database/repository/slot"
	subscriptionRepo "sproutly/database/repository/subscription"
	"sproutly/handlers"
	"sproutly/metrics"
	"sproutly/middleware"
	"sproutly/routes"
	assignmentSvc "sproutly/services/assignment"
	"sproutly/services/availability"
	slotSvc "sproutly/services/slot"
	"sproutly/services/wizard"
	"sproutly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	metrics.Register()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	slots := slotRepo.NewMongoSlotRepo()
	assignments := assignmentRepo.NewMongoAssignmentRepo()
	catalog := catalogRepo.NewMongoCatalogRepo()
	subscriptions := subscriptionRepo.NewMongoSubscriptionRepo()

	// services.
	registry := &slotSvc.DefaultRegistry{
		Repo:        slots,
		Catalog:     catalog,
		Assignments: assignments,
	}

	assignmentService := &assignmentSvc.DefaultService{
		Repo:    assignments,
		Slots:   slots,
		Catalog: catalog,
	}

	availabilityQuery := &availability.DefaultQuery{
		Slots:         slots,
		Catalog:       catalog,
		Subscriptions: subscriptions,
		Now:           time.Now,
	}

	sessionTTL := time.Duration(config.AppConfig.WizardSessionTTLMin) * time.Minute
	sessionStore := wizard.NewRedisSessionStore(utils.GetWizardCacheClient(), sessionTTL)
	orchestrator := &wizard.DefaultOrchestrator{
		Store:       sessionStore,
		Registry:    registry,
		Assignments: assignmentService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Slot:         handlers.NewSlotHandler(registry, assignmentService),
		Assignment:   handlers.NewAssignmentHandler(assignmentService),
		Availability: handlers.NewAvailabilityHandler(availabilityQuery),
		Wizard:       handlers.NewWizardHandler(orchestrator),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetWizardCacheClient()},
		database.MongoClient,
	)

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
