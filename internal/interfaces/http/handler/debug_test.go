package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"film-forge-api/internal/config"
	"film-forge-api/internal/infrastructure/persistence"
)

func TestDebug_NeverRevealsShortKeys(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.Providers.OpenAI.APIKey = "sk-proj-abcdefghijklmnopqrstuvwxyz"
	cfg.Providers.Replicate.APIToken = "r8_short"

	engine := newEngine()
	engine.GET("/debug", NewDebugHandler(cfg).Debug)

	w := get(engine, "/debug")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "abcdefghijklmnopqrstuvwxyz")
	assert.NotContains(t, w.Body.String(), "r8_short")

	assert.Equal(t, "sk-proj", credentialInfo("sk-proj-abcdefghijklmnopqrstuvwxyz").Prefix)
	assert.Empty(t, credentialInfo("r8_short").Prefix)
	assert.False(t, credentialInfo("  ").Present)
}

func TestHealth(t *testing.T) {
	h := NewHealthHandler(persistence.None(), nil, "v1.2.3")
	engine := newEngine()
	engine.GET("/health", h.Health)
	engine.GET("/ready", h.Ready)
	engine.GET("/live", h.Live)

	w := get(engine, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "v1.2.3", decode(t, w)["version"])

	w = get(engine, "/ready")
	require.Equal(t, http.StatusOK, w.Code)
	checks := decode(t, w)["checks"].(map[string]any)
	assert.Equal(t, "disabled", checks["store"].(map[string]any)["status"])

	assert.Equal(t, http.StatusOK, get(engine, "/live").Code)
}
