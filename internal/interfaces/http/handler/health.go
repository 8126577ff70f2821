package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"film-forge-api/internal/domain/repository"
	"film-forge-api/internal/infrastructure/persistence"
	"film-forge-api/internal/infrastructure/persistence/redis"
)

// HealthHandler serves liveness and readiness.
type HealthHandler struct {
	store   *persistence.Store
	redis   *redis.Client
	version string
}

func NewHealthHandler(store *persistence.Store, redisClient *redis.Client, version string) *HealthHandler {
	return &HealthHandler{store: store, redis: redisClient, version: version}
}

// HealthResponse health body.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type readinessCheck struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
}

type readinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]*readinessCheck `json:"checks"`
}

// Health
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: h.version})
}

// Ready reports 503 when the configured store is unreachable. Redis only degrades.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]*readinessCheck{
		"store": {Status: "disabled"},
		"redis": {Status: "disabled"},
	}
	ready := true

	if h.store != nil && h.store.Health != nil {
		checks["store"] = probe(ctx, h.store.Health)
		if checks["store"].Status != "ok" {
			ready = false
		}
	}
	if h.redis != nil {
		checks["redis"] = probe(ctx, h.redis)
		if checks["redis"].Status != "ok" {
			checks["redis"].Status = "degraded"
		}
	}

	resp := readinessResponse{Status: "ok", Checks: checks}
	if !ready {
		resp.Status = "not_ready"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Live
// @Summary Liveness check
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func probe(ctx context.Context, hc repository.HealthChecker) *readinessCheck {
	start := time.Now()
	err := hc.HealthCheck(ctx)
	check := &readinessCheck{Status: "ok", LatencyMs: time.Since(start).Milliseconds()}
	if err != nil {
		check.Status = "error"
		check.Error = err.Error()
	}
	return check
}
