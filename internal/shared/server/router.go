package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coach-backend/internal/services/health"
	"coach-backend/internal/shared/config"
	"coach-backend/internal/shared/metrics"
	"coach-backend/internal/shared/server/middleware"
	"coach-backend/internal/shared/server/respond"
	"coach-backend/internal/users"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config      config.Config
	UserHandler *users.Handler
	Health      *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.OK(c, gin.H{"ok": true})
			return
		}
		status, err := deps.Health.Status(c.Request.Context())
		if err != nil {
			respond.Error(c, http.StatusServiceUnavailable, "store_unavailable", "users store unreachable", status)
			return
		}
		respond.OK(c, status)
	})

	if deps.UserHandler != nil {
		hooks := api.Group("", middleware.WebhookAuth(deps.Config.WebhookJWTSecret))
		deps.UserHandler.RegisterRoutes(hooks)

		fn := r.Group("", middleware.WebhookAuth(deps.Config.WebhookJWTSecret))
		deps.UserHandler.RegisterFunctionRoute(fn)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
