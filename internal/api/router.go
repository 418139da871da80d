package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/glossario/glossary-api/docs"
	"github.com/glossario/glossary-api/internal/api/handler"
	"github.com/glossario/glossary-api/internal/api/middleware"
	"github.com/glossario/glossary-api/internal/core/domain"
	"github.com/glossario/glossary-api/internal/core/ports"
	"github.com/glossario/glossary-api/internal/core/service"
)

// Dependencies carries the repositories and settings the router wires into
// handlers. Stores are constructed at startup and passed by handle, never
// held as package-level state, so tests can build a fresh instance each.
type Dependencies struct {
	Users    ports.UserRepository
	Sessions ports.SessionStore
	Items    ports.ItemRepository
	Mongo    *mongo.Database // nil unless the mongo user-store backend is configured
	Cookie   string          // session cookie name
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// HTTP metrics go to a per-router registry so tests can build multiple
	// routers; /metrics also exposes the default registry (custom counters).
	reg := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "glossary",
		Registerer: reg,
	}))
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{
			prometheus.DefaultGatherer,
			reg,
		},
	}))

	// --- Dependencies ---
	authService := service.NewAuthService(deps.Users, deps.Sessions, deps.Logger)
	itemService := service.NewItemService(deps.Items, deps.Logger)
	authHandler := handler.NewAuthHandler(authService, deps.Cookie)
	itemHandler := handler.NewItemHandler(itemService)
	sessionRequired := middleware.Session(authService, deps.Cookie)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, sessionRequired)
	e.POST("/auth/reset-password", authHandler.ResetPassword, sessionRequired)

	// --- Item routes: listing is open, mutation is admin-gated ---
	e.GET("/v1/items", itemHandler.List)
	e.POST("/v1/items", itemHandler.Create, sessionRequired, adminOnly)
	e.PUT("/v1/items/:id", itemHandler.Update, sessionRequired, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- API docs ---
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
