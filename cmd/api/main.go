package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/smartinvoice/smartinvoice-api/internal/application/service"
	"github.com/smartinvoice/smartinvoice-api/internal/config"
	"github.com/smartinvoice/smartinvoice-api/internal/infrastructure/database"
	"github.com/smartinvoice/smartinvoice-api/internal/infrastructure/repository"
	"github.com/smartinvoice/smartinvoice-api/internal/presentation/http/handler"
	"github.com/smartinvoice/smartinvoice-api/internal/presentation/http/routes"
	"github.com/smartinvoice/smartinvoice-api/pkg/email"
	"github.com/smartinvoice/smartinvoice-api/pkg/oauth"
	"github.com/smartinvoice/smartinvoice-api/pkg/payment"
	"github.com/smartinvoice/smartinvoice-api/pkg/pdfrender"
	"github.com/smartinvoice/smartinvoice-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	exportRepo := repository.NewExportRecordRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUser,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromAddress,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize payment gateway
	paymentGateway := payment.NewZiinaService(payment.ZiinaConfig{
		BaseURL: cfg.Payment.BaseURL,
		APIKey:  cfg.Payment.APIKey,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, profileRepo, passwordResetRepo, jwtManager, emailService)
	profileService := service.NewProfileService(profileRepo, cfg.Billing.FreeDocLimit)
	documentService := service.NewDocumentService()
	exportService := service.NewExportService(profileService, profileRepo, exportRepo, documentService, pdfrender.NewFPDFRenderer())
	billingService := service.NewBillingService(paymentGateway, paymentRepo, profileRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService, googleOAuthService),
		Profile:  handler.NewProfileHandler(profileService),
		Document: handler.NewDocumentHandler(documentService, exportService),
		Billing:  handler.NewBillingHandler(billingService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
