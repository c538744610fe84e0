package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"motosync-api/config"
	"motosync-api/database"
	"motosync-api/middleware"
	"motosync-api/repositories"
	"motosync-api/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize storage
	store, err := openStore(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}
	repo := repositories.NewSnapshotRepository(store)

	// Seed with development data (optional)
	if cfg.SeedData {
		if err := database.SeedData(repo); err != nil {
			log.Printf("Warning: Failed to seed data: %v", err)
		}
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(routes.SetupCORS())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(cfg.RequestsPerMinute, cfg.RateBurst))
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	// Setup routes
	routes.SetupRoutes(router, repo, cfg)

	// Start server
	log.Printf("Starting Motosync API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func openStore(cfg *config.Config) (repositories.Store, error) {
	switch cfg.StorageDriver {
	case "mysql":
		db, err := database.Initialize(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		return repositories.NewGormStore(db), nil
	default:
		return repositories.NewFileStore(cfg.DataDir)
	}
}
