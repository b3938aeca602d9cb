package api

import (
	"errors"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/hcmnotify/sandbox/docs"
	"github.com/hcmnotify/sandbox/internal/api/handler"
	"github.com/hcmnotify/sandbox/internal/api/middleware"
	"github.com/hcmnotify/sandbox/internal/core/ports"
	"github.com/hcmnotify/sandbox/internal/core/service"
	"github.com/hcmnotify/sandbox/internal/infrastructure/db/sqlite"
	"github.com/hcmnotify/sandbox/internal/pkg/config"
)

// Options carries everything the router wires together. DB, Limiter,
// Dispatcher and Config are required; Redis is only probed by readiness when set.
type Options struct {
	DB         *gorm.DB
	Redis      *redis.Client
	Limiter    ports.RateLimiter
	Dispatcher ports.WebhookDispatcher
	Config     *config.Config
	Logger     zerolog.Logger

	// Registry receives the HTTP metrics and backs /metrics. Defaults to the
	// prometheus default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) (*echo.Echo, error) {
	if opts.DB == nil || opts.Limiter == nil || opts.Dispatcher == nil || opts.Config == nil {
		return nil, errors.New("router: DB, Limiter, Dispatcher and Config are required")
	}
	cfg, log := opts.Config, opts.Logger

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}
	promMW, err := echoprometheus.MiddlewareConfig{
		Namespace:  "sandbox",
		Subsystem:  "http",
		Registerer: registerer,
	}.ToMiddleware()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(promMW)

	// --- Dependencies ---
	tenantRepo := sqlite.NewTenantRepository(opts.DB)
	hcmRepo := sqlite.NewHCMRepository(opts.DB)

	seeder := service.NewSeeder(sqlite.NewSeedRepository(opts.DB), log)
	tenantService := service.NewTenantService(tenantRepo, seeder, log)
	authService := service.NewAuthService(tenantRepo, sqlite.NewSessionRepository(opts.DB), service.AuthConfig{
		JWTSecret:       cfg.JWTSecret,
		SandboxUsername: cfg.Auth.SandboxUsername,
		SandboxPassword: cfg.Auth.SandboxPassword,
	}, log)
	resourceService := service.NewResourceService(tenantRepo, hcmRepo, log)
	webhookService := service.NewWebhookService(tenantRepo, sqlite.NewWebhookRepository(opts.DB), opts.Dispatcher, log)
	adminService, err := service.NewAdminService(sqlite.NewAdminSessionRepository(opts.DB), tenantRepo, cfg.Auth.AdminPassword, log)
	if err != nil {
		return nil, err
	}

	signupHandler := handler.NewSignupHandler(tenantService, cfg.BaseURL)
	authHandler := handler.NewAuthHandler(authService)
	reportHandler := handler.NewReportHandler(resourceService)
	importHandler := handler.NewImportHandler(service.NewImportService(log))
	employeeHandler := handler.NewEmployeeHandler(resourceService, cfg.BaseURL)
	webhookHandler := handler.NewWebhookHandler(webhookService)
	adminHandler := handler.NewAdminHandler(adminService)

	authMW := middleware.Auth(authService)
	apiLimit := middleware.RateLimit(opts.Limiter, ports.APIPolicy, log)
	signupLimit := middleware.RateLimit(opts.Limiter, ports.SignupPolicy, log)

	// --- Signup ---
	e.POST("/api/signup", signupHandler.Signup, signupLimit)

	// --- Vendor auth (anonymous, limited per IP) ---
	e.POST("/ta/rest/v1/login", authHandler.V1Login, apiLimit)
	e.POST("/ta/rest/v2/companies/:companyId/oauth2/token", authHandler.V2Token, apiLimit)

	// --- Vendor API (bearer token, limited per tenant) ---
	v1 := e.Group("/ta/rest/v1", authMW, apiLimit)
	v1.POST("/logout", authHandler.V1Logout)
	v1.GET("/report/saved/:reportId", reportHandler.Saved)
	v1.POST("/import/:importId", importHandler.Import)

	company := e.Group("/ta/rest/v2/companies/:companyId", authMW, apiLimit)
	company.GET("/employees", employeeHandler.List)
	company.GET("/employees/:employeeId", employeeHandler.Get)
	company.GET("/employees/:employeeId/pay", employeeHandler.Pay)
	company.GET("/employees/:employeeId/benefits", employeeHandler.Benefits)
	company.GET("/employees/:employeeId/time", employeeHandler.Time)
	company.GET("/employees/:employeeId/documents", employeeHandler.Documents)
	company.GET("/config", employeeHandler.Config)
	company.POST("/webhooks", webhookHandler.Register)
	company.GET("/webhooks", webhookHandler.List)

	// --- Admin ---
	e.POST("/api/admin/login", adminHandler.Login, apiLimit)
	admin := e.Group("/api/admin", middleware.AdminAuth(adminService))
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/tenants", adminHandler.Tenants)
	admin.GET("/export", adminHandler.Export)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(opts.DB, opts.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/api/health", healthHandler.Liveness)        // same, under the public API prefix
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Ops ---
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
