package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventra/event-console/internal/api/handler"
	"github.com/eventra/event-console/internal/api/middleware"
	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
	"github.com/eventra/event-console/internal/core/service"
)

// Providers bundles the data-provider implementations the router builds its
// services on. They come from either the fixtures or the mongo backend.
type Providers struct {
	Users      ports.UserRepository
	Events     ports.EventRepository
	Societies  ports.SocietyRepository
	Vendors    ports.VendorRepository
	Exhibitors ports.ExhibitorRepository
	Billing    ports.BillingRepository
}

// Options carries the runtime knobs the router needs beyond its providers.
type Options struct {
	JWTSecret    string
	AuthMode     string
	SharedSecret string
	SubmitDelay  time.Duration
	DraftTTL     time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
// The mongo database may be nil under the fixtures backend; it is only used
// by the readiness probe.
func NewRouter(p Providers, kv ports.KV, db *mongo.Database, rdb *redis.Client, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("console"))

	// --- Services ---
	sessions := service.NewSessionStore(kv, log)

	var verifier service.CredentialVerifier
	switch opts.AuthMode {
	case "bcrypt":
		verifier = service.BcryptVerifier{}
	default:
		verifier = service.SharedSecretVerifier{Secret: opts.SharedSecret}
	}

	authService := service.NewAuthService(p.Users, sessions, verifier, opts.JWTSecret, log)
	eventService := service.NewEventService(p.Events, log)
	catalogService := service.NewCatalogService(p.Societies, p.Vendors, p.Exhibitors, log)
	directoryService := service.NewDirectoryService(p.Users, log)
	billingService := service.NewBillingService(p.Billing, log)
	dashboardService := service.NewDashboardService(p.Events, p.Societies, p.Vendors, p.Exhibitors, p.Billing, log)
	eventWizard := service.NewEventWizard(kv, p.Events, opts.SubmitDelay, opts.DraftTTL, log)
	vendorWizard := service.NewVendorWizard(kv, p.Vendors, opts.SubmitDelay, opts.DraftTTL, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	eventHandler := handler.NewEventHandler(eventService)
	societyHandler := handler.NewSocietyHandler(catalogService)
	vendorHandler := handler.NewVendorHandler(catalogService)
	exhibitorHandler := handler.NewExhibitorHandler(catalogService, log)
	userHandler := handler.NewUserHandler(directoryService)
	billingHandler := handler.NewBillingHandler(billingService)
	eventWizardHandler := handler.NewEventWizardHandler(eventWizard)
	vendorWizardHandler := handler.NewVendorWizardHandler(vendorWizard)

	auth := middleware.Auth(opts.JWTSecret, authService)
	adminOnly := middleware.RBAC(domain.RoleSuperAdmin, domain.RoleAdmin)
	billingRoles := middleware.RBAC(domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleAccounting)
	eventWizardRoles := middleware.RBAC(domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleSupportTech, domain.RoleSociety)
	vendorWizardRoles := middleware.RBAC(domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleLogistics)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, auth)
	e.GET("/auth/me", authHandler.Me, auth)

	// --- Console routes ---
	v1 := e.Group("/v1", auth)

	v1.GET("/dashboard", dashboardHandler.Stats)

	v1.GET("/events", eventHandler.List)
	v1.GET("/events/status-counts", eventHandler.StatusCounts)
	v1.GET("/calendar", eventHandler.Month)
	v1.GET("/calendar/upcoming", eventHandler.Upcoming)

	v1.GET("/societies", societyHandler.List)

	v1.GET("/vendors", vendorHandler.List)
	v1.GET("/vendors/category-counts", vendorHandler.CategoryCounts)

	v1.GET("/exhibitors", exhibitorHandler.List)
	v1.GET("/exhibitors/summary", exhibitorHandler.Summary)
	v1.POST("/exhibitors/bulk", exhibitorHandler.BulkAction)

	v1.GET("/users", userHandler.List, adminOnly)
	v1.GET("/users/role-counts", userHandler.RoleCounts, adminOnly)
	v1.POST("/users", authHandler.Register, adminOnly)

	v1.GET("/billing/plans", billingHandler.Plans, billingRoles)
	v1.GET("/billing/invoices", billingHandler.Invoices, billingRoles)
	v1.GET("/billing/subscriptions", billingHandler.Subscriptions, billingRoles)
	v1.GET("/billing/summary", billingHandler.Summary, billingRoles)

	eventDrafts := v1.Group("/wizard/events", eventWizardRoles)
	eventDrafts.POST("", eventWizardHandler.Start)
	eventDrafts.GET("/:id", eventWizardHandler.Get)
	eventDrafts.PATCH("/:id", eventWizardHandler.Update)
	eventDrafts.POST("/:id/next", eventWizardHandler.Next)
	eventDrafts.POST("/:id/back", eventWizardHandler.Back)
	eventDrafts.POST("/:id/values", eventWizardHandler.AddValue)
	eventDrafts.DELETE("/:id/values", eventWizardHandler.RemoveValue)
	eventDrafts.POST("/:id/submit", eventWizardHandler.Submit)

	vendorDrafts := v1.Group("/wizard/vendors", vendorWizardRoles)
	vendorDrafts.POST("", vendorWizardHandler.Start)
	vendorDrafts.GET("/:id", vendorWizardHandler.Get)
	vendorDrafts.PATCH("/:id", vendorWizardHandler.Update)
	vendorDrafts.POST("/:id/next", vendorWizardHandler.Next)
	vendorDrafts.POST("/:id/back", vendorWizardHandler.Back)
	vendorDrafts.POST("/:id/values", vendorWizardHandler.AddValue)
	vendorDrafts.DELETE("/:id/values", vendorWizardHandler.RemoveValue)
	vendorDrafts.POST("/:id/submit", vendorWizardHandler.Submit)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
