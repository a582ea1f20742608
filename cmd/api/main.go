package main

import (
	"fmt"
	"net/http"
	"os"

	"rentadmin/internal/config"
	"rentadmin/internal/database"
	"rentadmin/internal/handlers"
	"rentadmin/internal/logger"
	"rentadmin/internal/middleware"
	"rentadmin/internal/services"
	"rentadmin/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "rentadmin/internal/docs" // Import swagger docs
)

// @title           Rentadmin API
// @version         1.0
// @description     Rentadmin is the moderation backend for car-rental listings: admins review, approve, reject, and edit listings, with every action recorded in an audit trail.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	adminService := services.NewAdminService(db)
	auditService := services.NewAuditService(db)
	listingService := services.NewListingService(db, auditService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(adminService)
	listingHandler := handlers.NewListingHandler(listingService)
	auditHandler := handlers.NewAuditHandler(auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, PATCH, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	// The listing overview, listing detail, and audit trail are read-only
	// and served without authentication, matching the original console.
	v1.GET("/listings", listingHandler.GetListings)
	v1.GET("/listings/:id", listingHandler.GetListingByID)
	v1.GET("/audit-logs", auditHandler.GetAuditLogs)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/listings/:id", listingHandler.UpdateListing)
	protected.PATCH("/listings/:id/status", listingHandler.ChangeStatus)

	log.Infof("Starting Rentadmin backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
