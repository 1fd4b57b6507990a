package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/sistemasvip/client-portal/docs"
	"github.com/sistemasvip/client-portal/internal/api/handler"
	"github.com/sistemasvip/client-portal/internal/api/middleware"
	"github.com/sistemasvip/client-portal/internal/core/service"
	"github.com/sistemasvip/client-portal/internal/infrastructure/backend"
	"github.com/sistemasvip/client-portal/internal/infrastructure/config"
	"github.com/sistemasvip/client-portal/internal/infrastructure/db/redis"
	"github.com/sistemasvip/client-portal/internal/session"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *goredis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	// --- Dependencies ---
	sessions := session.NewManager(cfg.Session.TTL, cfg.JWTSecret, cfg.Session.Secure, log)
	client := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)

	authRepo := backend.NewAuthRepository(client)
	userRepo := backend.NewUserRepository(client)
	serviceRepo := backend.NewServiceRepository(client)
	orderRepo := backend.NewOrderRepository(client)
	transactionRepo := backend.NewTransactionRepository(client)

	attempts := redis.NewRegistrationStore(rdb, cfg.RegistrationTTL)
	catalogCache := redis.NewCatalogCache(rdb, cfg.CatalogCacheTTL, log)

	authService := service.NewAuthService(authRepo, attempts, log)
	userService := service.NewUserService(userRepo, log)
	catalogService := service.NewCatalogService(serviceRepo, orderRepo, catalogCache, log)
	orderService := service.NewOrderService(orderRepo, log)
	transactionService := service.NewTransactionService(transactionRepo, log)
	dashboardService := service.NewDashboardService(userService, orderService, log)

	authHandler := handler.NewAuthHandler(authService, sessions)
	userHandler := handler.NewUserHandler(userService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	e.HTTPErrorHandler = NewHTTPErrorHandler(sessions, log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))
	e.Use(middleware.Guard(middleware.GuardConfig{
		Sessions: sessions,
		AdminURL: cfg.AdminURL,
		Log:      log,
	}))

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.POST("/register", authHandler.Register)
	e.POST("/register/verify", authHandler.Verify)
	// Single-step signup kept for callers that predate code verification.
	e.POST("/auth/register", authHandler.RegisterLegacy)

	// --- Client area (guard resolves the session into context) ---
	e.GET("/dashboard/summary", dashboardHandler.Summary)
	e.GET("/dashboard/services", serviceHandler.List)
	e.POST("/dashboard/services/:id/purchase", serviceHandler.Purchase)
	e.GET("/dashboard/orders", orderHandler.List)
	e.GET("/dashboard/transactions", transactionHandler.List)
	e.GET("/dashboard/profile", userHandler.Profile)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(client, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
