package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/repo-surfer/repo-surfer/internal/api"
	"github.com/repo-surfer/repo-surfer/internal/auth"
	"github.com/repo-surfer/repo-surfer/internal/config"
	"github.com/repo-surfer/repo-surfer/internal/github"

	_ "github.com/repo-surfer/repo-surfer/docs"
)

// @title Repo Surfer API
// @version 1.0
// @description GitHub account dashboard: browse your repositories and per-repository statistics
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	logger.SetOutput(os.Stdout)

	// Load configuration with defaults
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.GitHubClientID == "" || cfg.GitHubClientSecret == "" {
		// The server still starts; the login route reports the
		// configuration error to the user.
		logger.Warn("GITHUB_CLIENT_ID / GITHUB_CLIENT_SECRET not set; login will fail until configured")
	}

	// Initialize services
	provider := auth.NewGitHubProvider(cfg)
	githubService := github.NewService(&cfg.GitHub, logger)
	handler := api.NewHandler(provider, githubService, cfg, logger)

	router := api.SetupRouter(handler)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Info("Server exited properly")
}
