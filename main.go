// File: homehero/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homehero/auth"
	"homehero/config"
	"homehero/database"
	bookingRepoPkg "homehero/database/repository/booking"
	serviceRepoPkg "homehero/database/repository/service"
	"homehero/handlers"
	"homehero/middleware"
	"homehero/routes"
	bookingSvc "homehero/services/booking"
	"homehero/services/catalog"
	"homehero/services/stats"
	"homehero/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	if config.AppConfig.SeedOnStart {
		if err := database.SeedServices(); err != nil {
			logger.Sugar().Warnf("main: seeding failed: %v", err)
		}
	}

	// Identity resolution mode is fixed here, once, at startup. With no
	// Firebase configuration the resolver runs lenient, trusting
	// self-asserted identity; protected routes still work but without
	// token verification.
	var verifier auth.TokenVerifier
	fb, err := auth.NewFirebaseVerifier(context.Background())
	if err != nil {
		logger.Sugar().Warnf("main: firebase init failed, continuing without token verification: %v", err)
	} else if fb != nil {
		verifier = fb
	}
	resolver := auth.NewResolver(verifier)
	if resolver.Strict() {
		logger.Sugar().Info("main: token verification enabled (strict mode)")
	} else {
		logger.Sugar().Warn("main: token verification disabled, using lenient authentication")
	}

	storageSvc, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	svcRepo := serviceRepoPkg.NewMongoServiceRepo()
	bkRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:  svcRepo,
		Cache: utils.GetCacheClient(),
	}
	bookingService := &bookingSvc.DefaultBookingService{
		Repo:     bkRepo,
		Services: svcRepo,
	}
	statsService := &stats.DefaultStatsService{
		Services: svcRepo,
		Bookings: bkRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Resolver: resolver,
		Services: handlers.NewServiceHandler(catalogService),
		Bookings: handlers.NewBookingHandler(bookingService),
		Stats:    handlers.NewStatsHandler(statsService),
	}
	if storageSvc != nil {
		handlerBundle.Storage = handlers.NewStorageHandler(storageSvc)
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
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
