package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartinvoice/smartinvoice-api/internal/config"
	domainRepo "github.com/smartinvoice/smartinvoice-api/internal/domain/repository"
	"github.com/smartinvoice/smartinvoice-api/internal/presentation/http/handler"
	"github.com/smartinvoice/smartinvoice-api/internal/presentation/http/middleware"
	"github.com/smartinvoice/smartinvoice-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Profile  *handler.ProfileHandler
	Document *handler.DocumentHandler
	Billing  *handler.BillingHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)
		v1.GET("/billing/plans", h.Billing.Plans)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Profile.GetProfile)
	protected.PUT("/profile", h.Profile.UpdateProfile)
	protected.GET("/profile/usage", h.Profile.GetUsage)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Documents
	protected.POST("/documents/totals", h.Document.Totals)
	protected.POST("/documents/export", h.Document.Export)
	protected.GET("/documents/exports", h.Document.ListExports)

	// Billing. Payment confirmation must not double-activate a plan when the
	// confirmation page retries, so it requires an idempotency key.
	protected.POST("/billing/checkout", h.Billing.Checkout)
	protected.POST("/billing/confirm",
		middleware.IdempotencyRequired(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}),
		h.Billing.Confirm,
	)
}
