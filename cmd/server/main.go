package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Shariq7739/GitExplore/internal/config"
	"github.com/Shariq7739/GitExplore/internal/github"
	"github.com/Shariq7739/GitExplore/internal/handler"
	"github.com/Shariq7739/GitExplore/internal/middleware"
	"github.com/Shariq7739/GitExplore/internal/service"
)

// main is the single entry-point for the gateway API.
func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.GitHubToken == "" {
		// Not fatal: endpoints report the missing credential per-request.
		log.Printf("Warning: GITHUB_TOKEN is not set; API requests will fail")
	}

	// Initialize the upstream client and gateway service
	gh := github.NewClient(cfg.GitHubToken)
	exploreSvc := service.NewExploreService(gh, cfg.GitHubToken)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: handler.ErrorHandler,
	})

	// Add middleware
	app.Use(middleware.Logging())

	// Register routes
	handler.RegisterRoutes(app, exploreSvc)

	// Add health check
	handler.NewHealthHandler(cfg.GitHubToken != "").Register(app)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
