package routes

import (
	"github.com/gin-gonic/gin"

	"motosync-api/config"
	"motosync-api/controllers"
	"motosync-api/middleware"
	"motosync-api/repositories"
)

func SetupRoutes(r *gin.Engine, repo *repositories.SnapshotRepository, cfg *config.Config) {
	// Controllers
	authController := controllers.NewAuthController(repo, cfg.JWTSecret)
	yardController := controllers.NewYardController(repo)
	spotController := controllers.NewSpotController(repo)
	motorcycleController := controllers.NewMotorcycleController(repo)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	api := r.Group("/api")
	api.Use(middleware.ValidateJSON())

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/auth/me", authController.GetProfile)

		yards := protected.Group("/patios")
		{
			yards.GET("", yardController.GetYards)
			yards.GET("/:id", yardController.GetYard)
			yards.POST("", yardController.CreateYard)
			yards.DELETE("/:id", yardController.DeleteYard)
		}

		spots := protected.Group("/vagas")
		{
			spots.GET("", spotController.GetSpots)
			spots.POST("", spotController.CreateSpot)
			spots.DELETE("/:id", spotController.DeleteSpot)
		}

		motorcycles := protected.Group("/motos")
		{
			motorcycles.GET("", motorcycleController.GetMotorcycles)
			motorcycles.POST("", motorcycleController.CreateMotorcycle)
			motorcycles.PUT("/:id", motorcycleController.UpdateMotorcycle)
			motorcycles.DELETE("/:id", motorcycleController.DeleteMotorcycle)
		}
	}
}

// SetupCORS allows the mobile client running on another origin.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
