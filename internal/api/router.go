package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/skillsaathi/skill-swap/internal/api/docs"
	"github.com/skillsaathi/skill-swap/internal/api/handler"
	"github.com/skillsaathi/skill-swap/internal/api/middleware"
	"github.com/skillsaathi/skill-swap/internal/core/domain"
	"github.com/skillsaathi/skill-swap/internal/core/ports"
)

// Dependencies are the collaborators the HTTP surface calls into. Redis and
// Feed may be nil.
type Dependencies struct {
	Auth      ports.AuthService
	Directory ports.DirectoryService
	Swaps     ports.SwapService
	Admin     ports.AdminService
	Feed      handler.LiveFeed
	Redis     *redis.Client
	JWTSecret string
	Log       zerolog.Logger
	// Registry receives the HTTP metrics. Nil means the default registry.
	Registry  *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	promCfg := echoprometheus.MiddlewareConfig{Subsystem: "skillswap"}
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if deps.Registry != nil {
		promCfg.Registerer = deps.Registry
		gatherer = deps.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(promCfg))

	// --- Infra routes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/auth/login", authHandler.Login)

	// --- Member routes ---
	directoryHandler := handler.NewDirectoryHandler(deps.Directory)
	swapHandler := handler.NewSwapHandler(deps.Swaps)
	adminHandler := handler.NewAdminHandler(deps.Admin)
	feedHandler := handler.NewFeedHandler(deps.Feed, deps.Log)

	v1 := e.Group("/v1", middleware.Auth(deps.JWTSecret))

	v1.GET("/catalog", directoryHandler.Catalog)
	v1.GET("/me", directoryHandler.Me)
	v1.PUT("/me", directoryHandler.UpdateMe)
	v1.GET("/me/dashboard", directoryHandler.Dashboard)
	v1.POST("/me/skills/:kind", directoryHandler.AddSkill)
	v1.DELETE("/me/skills/:kind/:skill_id", directoryHandler.RemoveSkill)
	v1.GET("/users", directoryHandler.Browse)
	v1.GET("/users/:id", directoryHandler.Profile)

	v1.GET("/swaps", swapHandler.List)
	v1.POST("/swaps", swapHandler.Propose)
	v1.GET("/swaps/:id", swapHandler.Get)
	v1.DELETE("/swaps/:id", swapHandler.Withdraw)
	v1.POST("/swaps/:id/accept", swapHandler.Accept)
	v1.POST("/swaps/:id/reject", swapHandler.Reject)
	v1.POST("/swaps/:id/complete", swapHandler.Complete)

	v1.GET("/announcements", adminHandler.Announcements)
	v1.GET("/announcements/ws", feedHandler.Subscribe)

	// --- Admin routes ---
	admin := v1.Group("/admin", middleware.RBAC(domain.RoleAdmin))

	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.Users)
	admin.POST("/users/:id/ban", adminHandler.Ban)
	admin.POST("/users/:id/unban", adminHandler.Unban)
	admin.GET("/flags", adminHandler.Flags)
	admin.POST("/flags/:id/resolve", adminHandler.ResolveFlag)
	admin.GET("/announcements", adminHandler.Announcements)
	admin.POST("/announcements", adminHandler.Announce)
	admin.POST("/reports/:type", adminHandler.RequestReport)

	return e
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil || v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
