// Package router wires the HTTP routes and middleware.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"film-forge-api/internal/config"
	"film-forge-api/internal/interfaces/http/dto"
	"film-forge-api/internal/interfaces/http/handler"
	"film-forge-api/internal/interfaces/http/middleware"
)

// Router HTTP router.
type Router struct {
	engine   *gin.Engine
	cfg      *config.Config
	handlers RouterHandlers
	limiter  middleware.RateLimiter
}

// RouterHandlers is every handler the router mounts.
type RouterHandlers struct {
	Film      *handler.FilmHandler
	Download  *handler.DownloadHandler
	Checkout  *handler.CheckoutHandler
	Webhook   *handler.WebhookHandler
	SoundJobs *handler.SoundJobHandler
	Debug     *handler.DebugHandler
	Health    *handler.HealthHandler
}

// NewWithDeps builds the engine. limiter may be nil, which disables rate limiting.
func NewWithDeps(cfg *config.Config, handlers RouterHandlers, limiter middleware.RateLimiter) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	dto.RegisterValidator()

	r := &Router{
		engine:   gin.New(),
		cfg:      cfg,
		handlers: handlers,
		limiter:  limiter,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine returns the gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CORS(r.cfg.Security.CORS))

	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}
}

func (r *Router) setupRoutes() {
	h := r.handlers

	r.engine.GET("/health", h.Health.Health)
	r.engine.GET("/ready", h.Health.Ready)
	r.engine.GET("/live", h.Health.Live)

	if r.cfg.Observability.Metrics.Enabled {
		path := r.cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.engine.GET(path, gin.WrapH(promhttp.Handler()))
	}

	registerRoutes(r.engine, r.cfg, h, r.limiter)
}
