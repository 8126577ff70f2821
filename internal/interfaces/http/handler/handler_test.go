package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"film-forge-api/internal/application/generation"
	"film-forge-api/internal/application/prompt"
	"film-forge-api/internal/config"
	"film-forge-api/internal/interfaces/http/dto"
	"film-forge-api/internal/interfaces/http/middleware"
	"film-forge-api/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidator()
}

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	return r
}

type filmFixture struct {
	engine      *gin.Engine
	chat        *mocks.MockChatCompleter
	images      *mocks.MockImageGenerator
	predictions *mocks.MockPredictionRunner
}

func newFilmFixture(t *testing.T) *filmFixture {
	cfg := &config.Config{}
	cfg.Providers.Replicate.StoryboardModel = "black-forest-labs/flux-schnell"

	f := &filmFixture{
		engine:      newEngine(),
		chat:        mocks.NewMockChatCompleter(t),
		images:      mocks.NewMockImageGenerator(t),
		predictions: mocks.NewMockPredictionRunner(t),
	}
	h := NewFilmHandler(generation.NewService(cfg, prompt.NewRegistry(), f.chat, f.images, f.predictions))
	f.engine.POST("/script", h.Script)
	f.engine.POST("/budget", h.Budget)
	f.engine.POST("/characters", h.Characters)
	f.engine.POST("/locations", h.Locations)
	f.engine.POST("/schedule", h.Schedule)
	f.engine.POST("/sound", h.Sound)
	f.engine.POST("/storyboard", h.Storyboard)
	return f
}

func postJSON(t *testing.T, engine http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var raw []byte
	switch b := body.(type) {
	case string:
		raw = []byte(b)
	case []byte:
		raw = b
	default:
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func postRequest(t *testing.T, path, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(engine http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}
