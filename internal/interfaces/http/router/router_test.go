package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"film-forge-api/internal/application/archive"
	"film-forge-api/internal/application/generation"
	"film-forge-api/internal/application/prompt"
	"film-forge-api/internal/config"
	"film-forge-api/internal/infrastructure/persistence"
	"film-forge-api/internal/interfaces/http/handler"
	"film-forge-api/internal/interfaces/http/middleware"
	"film-forge-api/internal/mocks"
)

func newTestRouter(t *testing.T, mutate func(*config.Config)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Observability.Metrics.Enabled = true
	cfg.Observability.Metrics.Path = "/metrics"
	if mutate != nil {
		mutate(cfg)
	}

	svc := generation.NewService(cfg, prompt.NewRegistry(),
		mocks.NewMockChatCompleter(t), mocks.NewMockImageGenerator(t), mocks.NewMockPredictionRunner(t))
	assets := mocks.NewMockAssetRecordRepository(t)
	checkout := mocks.NewMockCheckout(t)

	r := NewWithDeps(cfg, RouterHandlers{
		Film:      handler.NewFilmHandler(svc),
		Download:  handler.NewDownloadHandler(archive.NewAssembler(cfg, mocks.NewMockFetcher(t))),
		Checkout:  handler.NewCheckoutHandler(checkout),
		Webhook:   handler.NewWebhookHandler(cfg, assets, mocks.NewMockPurchaseRepository(t), checkout),
		SoundJobs: handler.NewSoundJobHandler(assets),
		Debug:     handler.NewDebugHandler(cfg),
		Health:    handler.NewHealthHandler(persistence.None(), nil, "test"),
	}, nil)
	return r.Engine()
}

func serve(engine http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestSystemRoutes(t *testing.T) {
	engine := newTestRouter(t, nil)

	w := serve(engine, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 8)

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/live", "").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/ready", "").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/metrics", "").Code)
}

func TestGenerationRoutesAreNotCached(t *testing.T) {
	engine := newTestRouter(t, nil)

	w := serve(engine, http.MethodPost, "/budget", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
}

func TestDebugRouteFollowsFeatureFlag(t *testing.T) {
	off := newTestRouter(t, nil)
	assert.Equal(t, http.StatusNotFound, serve(off, http.MethodGet, "/debug", "").Code)

	on := newTestRouter(t, func(cfg *config.Config) { cfg.Features.DebugEndpoint = true })
	assert.Equal(t, http.StatusOK, serve(on, http.MethodGet, "/debug", "").Code)
}

func TestWebhookRouteRequiresSignature(t *testing.T) {
	engine := newTestRouter(t, func(cfg *config.Config) { cfg.Providers.Replicate.WebhookSecret = "secret" })

	w := serve(engine, http.MethodPost, "/webhook-replicate", `{"status":"succeeded"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
