// Package api provides the HTTP and WebSocket handlers for the steptrace
// service: grid sessions, search runs, trace replay and the algorithm
// catalog.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/algowalk/steptrace/internal/middleware"
	"github.com/algowalk/steptrace/internal/session"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Store       *session.Store
	CORSOrigins []string
	Version     string
}

// maxBodySize bounds request bodies; generous for hand-written graphs while
// keeping hostile payloads out.
const maxBodySize = 4 << 20 // 4 MB

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID())
	r.Use(requestLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(corsConfig(deps.CORSOrigins)))
	r.Use(middleware.Prometheus())
}

// corsConfig translates the configured origins into a gin-contrib/cors
// config. A lone "*" allows every origin, the open teaching-service default.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}

	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cfg
}

// registerRoutes sets up all route handlers. ctx bounds the lifetime of
// replay WebSocket connections, which outlive individual requests.
func registerRoutes(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	health := NewHealthHandler(deps.Store, deps.Version)
	r.GET("/healthz", health.Liveness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	grids := NewGridHandler(deps.Store, deps.Log)
	searches := NewSearchHandler(deps.Log)
	replays := NewReplayHandler(deps.Store, deps.CORSOrigins, deps.Log)

	api := r.Group("/api/v1")

	api.GET("/algorithms", Algorithms)

	api.POST("/grids", grids.Create)
	api.GET("/grids/:id", grids.Get)
	api.DELETE("/grids/:id", grids.Delete)
	api.PATCH("/grids/:id/cells", grids.PatchCell)
	api.POST("/grids/:id/search", grids.RunSearch)
	api.GET("/grids/:id/runs/:runID/replay", replays.Handle(ctx))

	api.POST("/search", searches.Run)
}

// NewRouter creates and configures the Gin engine with all middleware and
// routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(r, deps)
	registerRoutes(ctx, r, deps)

	return r
}
