package main

import (
	"fmt"
	"net/http"
	"os"

	"patrimoine/internal/config"
	"patrimoine/internal/database"
	"patrimoine/internal/handlers"
	"patrimoine/internal/logger"
	"patrimoine/internal/middleware"
	"patrimoine/internal/services"
	"patrimoine/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "patrimoine/internal/docs" // Import swagger docs
)

// @title           Patrimoine API
// @version         1.0
// @description     Patrimoine is a wealth-management (CGP) backend that allows advisors to manage companies, customers, budget ledgers, fiscality records, and investor risk profiles.
// @termsOfService  http://swagger.io/terms/

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

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	advisorService := services.NewAdvisorService(db)
	companyService := services.NewCompanyService(db)
	customerService := services.NewCustomerService(db, companyService)
	auditService := services.NewAuditService(db)
	fiscalityService := services.NewFiscalityService(db)
	budgetService := services.NewBudgetService(db, fiscalityService)
	profileService := services.NewInvestorProfileService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(advisorService)
	companyHandler := handlers.NewCompanyHandler(companyService, auditService)
	customerHandler := handlers.NewCustomerHandler(customerService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	fiscalityHandler := handlers.NewFiscalityHandler(fiscalityService, auditService)
	profileHandler := handlers.NewInvestorProfileHandler(profileService, auditService)
	taxonomyHandler := handlers.NewTaxonomyHandler()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
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
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Advisor profile
	protected.GET("/profile", authHandler.GetProfile)

	// Taxonomy routes
	protected.GET("/taxonomy/categories", taxonomyHandler.GetCategories)

	// Company routes
	companies := protected.Group("/companies")
	companies.POST("", companyHandler.CreateCompany)
	companies.GET("", companyHandler.GetCompanies)
	companies.GET("/:id", companyHandler.GetCompany)

	// Customer routes
	customers := protected.Group("/customers")
	customers.POST("", customerHandler.CreateCustomer)
	customers.GET("", customerHandler.GetCustomers)
	customers.GET("/:id", customerHandler.GetCustomer)
	customers.PUT("/:id/liquidity", customerHandler.UpdateLiquidity)

	// Budget routes
	customers.GET("/:id/budget", budgetHandler.GetBudget)
	customers.POST("/:id/budget", budgetHandler.CreateBudgetItem)
	customers.DELETE("/:id/budget/:budgetID", budgetHandler.DeleteBudgetItem)

	// Fiscality routes
	customers.GET("/:id/fiscality", fiscalityHandler.GetFiscality)
	customers.PUT("/:id/fiscality", fiscalityHandler.UpdateFiscality)

	// Investor profile routes
	customers.GET("/:id/investor-profile", profileHandler.GetInvestorProfile)
	customers.PUT("/:id/investor-profile", profileHandler.UpdateInvestorProfile)

	log.Infof("Starting Patrimoine backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
