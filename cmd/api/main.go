package main

import (
	"fmt"
	"net/http"
	"os"

	"perawise/internal/analysis"
	"perawise/internal/catalog"
	"perawise/internal/config"
	"perawise/internal/database"
	"perawise/internal/handlers"
	"perawise/internal/identity"
	"perawise/internal/logger"
	"perawise/internal/middleware"
	"perawise/internal/services"
	"perawise/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "perawise/internal/docs" // Import swagger docs
)

// @title           PeraWise API
// @version         1.0
// @description     PeraWise is a personal finance education platform with guided onboarding, mock financial analysis, and curated learning content.
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
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open database for the resolved mode
	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	onboardingService := services.NewOnboardingService(db)
	profileService := services.NewProfileService(db)
	contentService := services.NewContentService(db)

	// Seed the content library
	if err := contentService.EnsureSeeded(catalog.ContentSeed()); err != nil {
		return fmt.Errorf("failed to seed content library: %w", err)
	}

	// Initialize handlers
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)
	profileHandler := handlers.NewProfileHandler(profileService)
	analysisHandler := handlers.NewAnalysisHandler(newFundAnalyzer(cfg), profileService)
	contentHandler := handlers.NewContentHandler(contentService)

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
		c.JSON(http.StatusOK, gin.H{"status": "ok", "mode": string(cfg.Mode)})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/analyze-user", analysisHandler.AnalyzeUser)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthRequired(newVerifier(cfg)))

	// Onboarding routes
	onboarding := protected.Group("/onboarding")
	onboarding.POST("/answer", onboardingHandler.SubmitAnswer)
	onboarding.POST("/complete", onboardingHandler.Complete)
	onboarding.POST("/skip", onboardingHandler.Skip)
	onboarding.POST("/reset", onboardingHandler.Reset)
	onboarding.POST("/privacy-consent", onboardingHandler.PrivacyConsent)
	onboarding.GET("/status", onboardingHandler.Status)
	onboarding.GET("/questions", onboardingHandler.Questions)

	// Profile routes
	protected.GET("/profile", profileHandler.GetProfile)
	protected.DELETE("/profile", profileHandler.Delete)
	protected.GET("/profile/export", profileHandler.Export)

	// Analysis routes
	protected.POST("/analyze-fund", analysisHandler.AnalyzeFund)
	protected.POST("/analyze-profile", analysisHandler.AnalyzeProfile)

	// Content routes
	protected.GET("/content", contentHandler.ListContent)

	log.Infof("Starting PeraWise backend server on port %s", cfg.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	return router.Run(":" + cfg.Port)
}

// newVerifier picks the token verification strategy for the resolved mode.
// MOCK accepts locally minted mock sessions; DEV/LIVE verify Supabase tokens,
// locally when the project's JWT secret is configured, otherwise against the
// GoTrue user endpoint.
func newVerifier(cfg *config.Config) identity.Verifier {
	if cfg.Mode == config.ModeMock {
		return identity.NewMockVerifier()
	}
	if cfg.SupabaseJWTSecret != "" {
		return identity.NewHSVerifier(cfg.SupabaseJWTSecret)
	}
	return identity.NewGoTrueVerifier(cfg.SupabaseURL, cfg.SupabaseAnonKey)
}

// newFundAnalyzer picks the fund analysis strategy. LIVE mode reserves the
// endpoint for the real AI backend and answers 501 until it exists.
func newFundAnalyzer(cfg *config.Config) handlers.FundAnalyzer {
	if cfg.Mode == config.ModeLive {
		return handlers.NewUnavailableFundAnalyzer()
	}
	return handlers.NewMockFundAnalyzer(analysis.NewFundScorer())
}
