// File: fundilink/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"fundilink/appstate"
	"fundilink/backend"
	"fundilink/chat"
	"fundilink/config"
	"fundilink/dashboard"
	"fundilink/handlers"
	"fundilink/intake"
	"fundilink/matching"
	"fundilink/middleware"
	"fundilink/rating"
	"fundilink/routes"
	"fundilink/session"
	"fundilink/signup"
	"fundilink/utils"
)

func newStateStore() (appstate.Store, error) {
	switch config.AppConfig.StateStore {
	case "redis":
		return appstate.NewRedisStore(
			config.AppConfig.RedisAddr,
			config.AppConfig.RedisPassword,
			config.AppConfig.RedisStateDB,
		)
	case "memory":
		return appstate.NewMemoryStore(), nil
	default:
		return appstate.NewBadgerStore(config.AppConfig.StateDir)
	}
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	store, err := newStateStore()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open state store: %v", err)
	}
	state := appstate.New(store)
	defer state.Close()

	sessions := session.NewManager(state)
	apiClient := backend.NewClient(
		config.AppConfig.BackendAPIURL,
		time.Duration(config.AppConfig.BackendTimeoutMS)*time.Millisecond,
		sessions,
	)

	// services.
	matchingService := matching.NewService(apiClient, state, sessions)
	intakeService := intake.NewService(apiClient)
	chatService := chat.NewService(apiClient)
	ratingService := rating.NewService(apiClient, matchingService)

	autosaveInterval := time.Duration(config.AppConfig.AutosaveSeconds) * time.Second
	wizard := signup.NewWizard(apiClient, state, sessions, autosaveInterval)

	clientDashboard := dashboard.NewClientDashboard(apiClient)
	providerDashboard := dashboard.NewProviderDashboard(apiClient)

	// Background workers: dashboard pollers and the wizard autosave loop.
	bgCtx, cancelBackground := context.WithCancel(context.Background())
	pollInterval := time.Duration(config.AppConfig.DashboardPollSeconds) * time.Second
	go clientDashboard.Run(bgCtx, pollInterval)
	go providerDashboard.Run(bgCtx, pollInterval)
	go wizard.Run(bgCtx)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &routes.HandlerBundle{
		Auth:      handlers.NewAuthHandler(apiClient, sessions, logger),
		Intake:    handlers.NewIntakeHandler(intakeService, logger),
		Matching:  handlers.NewMatchingHandler(matchingService, logger),
		Chat:      handlers.NewChatHandler(chatService, logger),
		Rating:    handlers.NewRatingHandler(ratingService, logger),
		Signup:    handlers.NewSignupHandler(wizard, logger),
		Dashboard: handlers.NewDashboardHandler(clientDashboard, providerDashboard, logger),
	}
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

	cancelBackground()
	wizard.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
