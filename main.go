// File: meetbot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetbot/config"
	"meetbot/handlers"
	"meetbot/middleware"
	"meetbot/routes"
	"meetbot/services/assistant"
	"meetbot/services/intelligence"
	"meetbot/services/scheduling"
	"meetbot/services/session"
	"meetbot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Session store: in-memory by default, Redis when configured.
	var sessionStore session.Store
	if config.AppConfig.SessionBackend == "redis" {
		ttl := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
		sessionStore = session.NewRedisStore(utils.GetSessionCacheClient(), ttl)
	} else {
		sessionStore = session.NewMemoryStore()
	}

	// Scheduling collaborator.
	calClient := scheduling.NewClient(
		config.AppConfig.CalBaseURL,
		config.AppConfig.CalAPIKey,
		config.AppConfig.CalUsername,
	)
	selector := &scheduling.Selector{API: calClient}
	matcher := &scheduling.Matcher{
		API:       calClient,
		Tolerance: time.Duration(config.AppConfig.SlotToleranceMin) * time.Minute,
	}

	// Language-model collaborator.
	classifier := intelligence.NewGeminiClassifier(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
	)

	assistantService := &assistant.DefaultService{
		API:             calClient,
		Selector:        selector,
		Matcher:         matcher,
		Classifier:      classifier,
		DefaultDuration: config.AppConfig.DefaultDurationMin,
		SuggestionLimit: config.AppConfig.SuggestionLimit,
	}

	chatHandler := handlers.NewChatHandler(assistantService, sessionStore, config.AppConfig.DefaultTimezone)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Register routes.
	routes.RegisterRoutes(router, chatHandler)

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
