package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"film-forge-api/internal/config"
	"film-forge-api/internal/interfaces/http/middleware"
)

const generateScope = "generate"

func registerRoutes(engine *gin.Engine, cfg *config.Config, h RouterHandlers, limiter middleware.RateLimiter) {
	limit := middleware.RateLimit(cfg.Security.RateLimit, limiter, generateScope)

	// text generation
	text := engine.Group("",
		middleware.NoCache(),
		middleware.Deadline(orDefault(cfg.Handlers.TextTimeout, 60*time.Second)),
		limit,
	)
	{
		text.POST("/script", h.Film.Script)
		text.POST("/budget", h.Film.Budget)
		text.POST("/locations", h.Film.Locations)
		text.POST("/schedule", h.Film.Schedule)
		text.POST("/sound", h.Film.Sound)
	}

	// steps that may call an image provider
	image := engine.Group("",
		middleware.NoCache(),
		middleware.Deadline(orDefault(cfg.Handlers.ImageTimeout, 120*time.Second)),
		limit,
	)
	{
		image.POST("/characters", h.Film.Characters)
		image.POST("/storyboard", h.Film.Storyboard)
	}

	archives := engine.Group("",
		middleware.NoCache(),
		middleware.Deadline(orDefault(cfg.Handlers.ArchiveTimeout, 120*time.Second)),
		limit,
	)
	{
		archives.POST("/download-characters", h.Download.Characters)
		archives.POST("/download-sound", h.Download.Sound)
	}

	engine.POST("/create-checkout-session", middleware.NoCache(), h.Checkout.Create)

	// provider callbacks, never rate limited
	engine.POST("/webhook-replicate", h.Webhook.Replicate)
	engine.POST("/webhook-stripe", h.Webhook.Stripe)

	jobs := engine.Group("/sound/jobs")
	{
		jobs.GET("", h.SoundJobs.List)
		jobs.GET("/:id", h.SoundJobs.Get)
	}

	if cfg.Features.DebugEndpoint {
		engine.GET("/debug", middleware.NoCache(), h.Debug.Debug)
	}
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
