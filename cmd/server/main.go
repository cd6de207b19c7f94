package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "gitcards/docs"
	"gitcards/internal/cache"
	"gitcards/internal/config"
	"gitcards/internal/github"
	"gitcards/internal/handler"
	md "gitcards/internal/middleware"
	"gitcards/internal/service"
	"gitcards/pkg/logger"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title GitCards Service
// @version 1.0.0
// @description Renders shareable SVG cards and aggregated stats for public GitHub profiles.
// @host localhost:8081
// @BasePath /v1
func main() {
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.LevelDebug)
	}

	// * Load configuration
	cfg, err := config.LoadConfiguration()
	if err != nil {
		logger.Error("‼️ Failed to load config: %v", err)
		os.Exit(1)
	}

	// * Initialize GitHub client and the card pipeline
	githubClient := github.NewClient(cfg.GitHubToken)
	profileService := service.NewProfileService(githubClient)
	cardCache := cache.NewCardCache(cfg.CacheTTL)

	// * Create API server
	apiHandler := handler.NewCardHandler(profileService, cardCache)
	router := mux.NewRouter()
	router.Use(md.LoggingMiddleware)
	api := router.PathPrefix("/v1").Subrouter()

	apiHandler.RegisterRoutes(api)
	router.PathPrefix("/v1/swagger/").Handler(httpSwagger.WrapHandler)

	server := &http.Server{
		Addr:    cfg.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Info("Starting API server on %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("API server error: %v", err)
			os.Exit(1)
		}
	}()

	// * Wait for termination signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}
