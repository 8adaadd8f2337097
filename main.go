package main

import (
	"log"
	"time"

	"fintrack-be/internal/cache"
	"fintrack-be/internal/config"
	"fintrack-be/internal/controllers"
	"fintrack-be/internal/database"
	"fintrack-be/internal/jwt"
	"fintrack-be/internal/middleware"
	"fintrack-be/internal/repository"
	"fintrack-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close() // Close connection when program exits

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, categoryRepo, jwtService)
	categoryService := service.NewCategoryService(categoryRepo, transactionRepo, cacheClient)
	transactionService := service.NewTransactionService(transactionRepo, categoryRepo)
	analyticsService := service.NewAnalyticsService(transactionRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	categoryController := controllers.NewCategoryController(categoryService)
	transactionController := controllers.NewTransactionController(transactionService)
	analyticsController := controllers.NewAnalyticsController(analyticsService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Auth routes with stricter rate limiting
	auth := router.Group("/auth")
	auth.Use(authRateLimiter.LimitMiddleware())
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Protected routes - require JWT authentication
	protected := router.Group("")
	protected.Use(generalRateLimiter.LimitMiddleware())
	protected.Use(middleware.AuthMiddleware(jwtService))
	{
		protected.GET("/categories", categoryController.GetCategories)
		protected.POST("/categories", categoryController.CreateCategory)
		protected.DELETE("/categories/:id", categoryController.DeleteCategory)

		protected.GET("/transactions", transactionController.List)
		protected.POST("/transactions", transactionController.Create)
		protected.PUT("/transactions/:id", transactionController.Update)
		protected.DELETE("/transactions/:id", transactionController.Delete)

		protected.GET("/analytics", analyticsController.GetAnalytics)
	}

	// Start the server
	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
