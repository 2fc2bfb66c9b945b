package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/secbank/auth-gateway/docs"
	"github.com/secbank/auth-gateway/internal/api/handler"
	"github.com/secbank/auth-gateway/internal/api/middleware"
	"github.com/secbank/auth-gateway/internal/core/domain"
	"github.com/secbank/auth-gateway/internal/core/service"
	mongodb "github.com/secbank/auth-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/secbank/auth-gateway/internal/infrastructure/db/redis"
	"github.com/secbank/auth-gateway/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. Middleware order matters: abuse resistance runs ahead of
// the session gate, which runs ahead of the role gates.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.BodyLimit(cfg.BodyLimit))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "frame-ancestors 'self'",
	}))
	e.Use(middleware.HPP())
	e.Use(echoprometheus.NewMiddleware("authgw"))

	// --- Dependencies ---
	sessionStore := redisdb.NewSessionStore(rdb)
	sessions := service.NewSessionManager(sessionStore, cfg.SessionSecret, cfg.SessionTTL)
	limiter := redisdb.NewRateLimitCounter(rdb)

	credRepo := mongodb.NewCredentialRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)

	authService := service.NewAuthService(credRepo, cfg.BcryptCost)
	employeeService := service.NewEmployeeAuthService(employeeRepo, cfg.BcryptCost)
	paymentService := service.NewPaymentCaptureService(paymentRepo)

	cookie := handler.CookieConfig{Name: cfg.CookieName, Secure: cfg.CookieSecure}
	authHandler := handler.NewAuthHandler(authService, sessions, cookie)
	employeeHandler := handler.NewEmployeeAuthHandler(employeeService, sessions, cookie)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	csrfHandler := handler.NewCSRFHandler()

	sessionGate := middleware.Session(cfg.CookieName, sessions)
	customerOnly := middleware.RequireKind(domain.KindCustomer)
	employeeOnly := middleware.RequireKind(domain.KindEmployee)

	// --- API surface: rate limit + CSRF double submit ---
	apiGroup := e.Group("/api",
		middleware.RateLimit(middleware.RateLimitConfig{
			Counter: limiter,
			Window:  cfg.RateLimitWindow,
			Max:     cfg.RateLimitMax,
			Log:     log,
		}),
		echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
			TokenLookup:    "header:X-CSRF-Token",
			CookieName:     "_csrf",
			CookiePath:     "/",
			CookieSecure:   cfg.CookieSecure,
			CookieSameSite: http.SameSiteStrictMode,
		}),
	)

	apiGroup.GET("/csrf-token", csrfHandler.Token)

	// --- Customer auth ---
	auth := apiGroup.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	// Logout is deliberately ungated: clearing a dead cookie must work
	// even when the session behind it is expired, forged, or gone.
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, sessionGate)

	// --- Employee auth ---
	employeeAuth := apiGroup.Group("/employee/auth")
	employeeAuth.POST("/login", employeeHandler.Login)
	if cfg.EmployeeSignupEnabled {
		// Bootstrap aid only; employee onboarding is an external process.
		employeeAuth.POST("/signup", employeeHandler.Signup)
	}
	employeeAuth.POST("/logout", employeeHandler.Logout)
	employeeAuth.GET("/me", employeeHandler.Me, sessionGate)

	// --- Payments: customer capture, employee verification ---
	payments := apiGroup.Group("/payments", sessionGate, customerOnly)
	payments.POST("", paymentHandler.Create)
	payments.GET("", paymentHandler.ListOwn)

	employeePayments := apiGroup.Group("/employee/payments", sessionGate, employeeOnly)
	employeePayments.GET("", paymentHandler.ListPending)
	employeePayments.POST("/:id/verify", paymentHandler.Verify)

	// --- Health probes and ops endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
