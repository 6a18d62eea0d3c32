// Package router assembles the gin engine, its middleware chain, and
// the API route groups.
package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/localhub/backend/internal/infrastructure/auth"
	"github.com/localhub/backend/internal/infrastructure/config"
	"github.com/localhub/backend/internal/infrastructure/logger"
	"github.com/localhub/backend/internal/interfaces/http/handler"
	"github.com/localhub/backend/internal/interfaces/http/middleware"
)

// Dependencies carries everything the router needs to wire routes
type Dependencies struct {
	Config     *config.Config
	Logger     *zap.Logger
	JWTService *auth.JWTService
	Blacklist  auth.TokenBlacklist

	SystemHandler  *handler.SystemHandler
	AuthHandler    *handler.AuthHandler
	AccountHandler *handler.AccountHandler
	ListingHandler *handler.ListingHandler
}

// New builds the gin engine with the full middleware chain and all
// routes registered. Route layout:
//
//	/health, /ready                  liveness and readiness
//	/api/v1/...                      public routes
//	/api/v1/... (+auth)              routes needing a valid token
//	/api/v1/admin/... (+auth +role)  admin routes
func New(deps Dependencies) (*gin.Engine, error) {
	if deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(deps.Config.HTTP.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(loggerInjector(deps.Logger))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(deps.Logger))
	engine.Use(middleware.Recovery(deps.Logger))
	engine.Use(middleware.CORS(deps.Config.HTTP))
	if deps.Config.Telemetry.Enabled {
		engine.Use(otelgin.Middleware(deps.Config.Telemetry.ServiceName))
	}

	deps.SystemHandler.RegisterRoutes(engine)

	api := engine.Group("/api/v1")

	requireAuth := middleware.RequireAuth(deps.JWTService, deps.Blacklist, deps.Logger)

	public := api.Group("")
	protected := api.Group("", requireAuth)
	admin := api.Group("/admin", requireAuth, middleware.RequireRole("admin"))

	deps.AuthHandler.RegisterRoutes(public, protected)
	deps.AccountHandler.RegisterRoutes(protected, admin)
	deps.ListingHandler.RegisterRoutes(public, protected, admin)

	return engine, nil
}

// loggerInjector seeds the request context with the base logger so
// downstream code can enrich it via logger.FromContext
func loggerInjector(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), log))
		c.Next()
	}
}
