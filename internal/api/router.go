package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/HairulDev/tsn-asia-next/docs"
	"github.com/HairulDev/tsn-asia-next/internal/api/handler"
	"github.com/HairulDev/tsn-asia-next/internal/api/middleware"
	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
	"github.com/HairulDev/tsn-asia-next/internal/core/ports"
	"github.com/HairulDev/tsn-asia-next/internal/infrastructure/config"
	"github.com/HairulDev/tsn-asia-next/internal/infrastructure/upstream"
)

// Deps carries everything the router needs wired.
type Deps struct {
	Config   *config.Config
	Upstream *upstream.Client
	Sessions ports.SessionStore
	Redis    *redis.Client
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("admin_portal"))

	// --- Dependencies ---
	registry := handler.NewRegistry(deps.Upstream, handler.NewDraftValidator(), deps.Log)
	authHandler := handler.NewAuthHandler(deps.Upstream.Auth(), deps.Sessions, registry,
		deps.Config.JWTSecret, deps.Config.SessionTTL, deps.Log)
	navHandler := handler.NewNavigationHandler()
	healthHandler := handler.NewHealthHandler(deps.Redis)
	sessionMW := middleware.Session(deps.Config.JWTSecret, deps.Sessions)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated routes ---
	authed := e.Group("", sessionMW)
	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/navigation", navHandler.Navigation)

	// --- Screens (role-gated, one handler instantiation per screen) ---
	companies := handler.NewScreenHandler(registry, handler.PickCompanies)
	companies.Register(authed.Group("/screens/companies",
		middleware.RequireScreen(domain.ScreenCompanies)), false)

	users := handler.NewScreenHandler(registry, handler.PickUsers)
	usersGroup := authed.Group("/screens/users", middleware.RequireScreen(domain.ScreenUsers))
	users.Register(usersGroup, false)
	usersGroup.GET("/company-options", users.CompanyOptions)

	announcements := handler.NewScreenHandler(registry, handler.PickAnnouncements)
	announcements.Register(authed.Group("/screens/announcements",
		middleware.RequireScreen(domain.ScreenAnnouncements)), false)

	feed := handler.NewScreenHandler(registry, handler.PickFeed)
	feed.Register(authed.Group("/screens/announcement-feed",
		middleware.RequireScreen(domain.ScreenAnnouncementFeed)), true)

	return e
}
