package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"film-forge-api/internal/config"
	"film-forge-api/internal/interfaces/http/dto"
	apperrors "film-forge-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, dto.RequestID(c))
	})

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 8)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc_123-XYZ")
	w = do(r, req)
	assert.Equal(t, "abc_123-XYZ", w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>alert(1)</script>")
	w = do(r, req)
	assert.Len(t, w.Header().Get(RequestIDHeader), 8)
	assert.NotContains(t, w.Body.String(), "script")
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body.Error, "boom")
	assert.Equal(t, w.Header().Get(RequestIDHeader), body.RequestID)
}

func TestNoCache(t *testing.T) {
	r := gin.New()
	r.Use(NoCache())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
}

func TestDeadline(t *testing.T) {
	r := gin.New()
	r.Use(Deadline(20 * time.Millisecond))
	r.GET("/", func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(20*time.Millisecond), deadline, time.Second)
		<-c.Request.Context().Done()
		assert.ErrorIs(t, c.Request.Context().Err(), context.DeadlineExceeded)
		c.Status(http.StatusGatewayTimeout)
	})

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

type fakeLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (f *fakeLimiter) Allow(_ context.Context, key string, _ int, _ time.Duration) (bool, error) {
	f.keys = append(f.keys, key)
	return f.allowed, f.err
}

func rateLimited(limiter RateLimiter, enabled bool) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RateLimit(config.RateLimitConfig{Enabled: enabled, Requests: 2, Window: time.Minute}, limiter, "generate"))
	r.POST("/budget", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		l := &fakeLimiter{allowed: true}
		w := do(rateLimited(l, true), httptest.NewRequest(http.MethodPost, "/budget", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
		require.Len(t, l.keys, 1)
		assert.Contains(t, l.keys[0], "generate")
	})

	t.Run("rejected", func(t *testing.T) {
		w := do(rateLimited(&fakeLimiter{allowed: false}, true), httptest.NewRequest(http.MethodPost, "/budget", nil))
		require.Equal(t, http.StatusTooManyRequests, w.Code)
		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, string(apperrors.CodeTooManyRequests), body.Code)
		assert.NotEmpty(t, body.RequestID)
		assert.Equal(t, "60", w.Header().Get("Retry-After"))
	})

	t.Run("limiter failure lets the request through", func(t *testing.T) {
		w := do(rateLimited(&fakeLimiter{err: errors.New("redis down")}, true), httptest.NewRequest(http.MethodPost, "/budget", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("disabled", func(t *testing.T) {
		l := &fakeLimiter{allowed: false}
		w := do(rateLimited(l, false), httptest.NewRequest(http.MethodPost, "/budget", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, l.keys)
	})

	t.Run("no limiter", func(t *testing.T) {
		w := do(rateLimited(nil, true), httptest.NewRequest(http.MethodPost, "/budget", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS(config.CORSConfig{AllowedOrigins: []string{"https://app.example"}}))
	r.POST("/budget", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/budget", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := do(r, req)

	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/budget", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = do(r, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusNotFound, do(r, httptest.NewRequest(http.MethodGet, "/nope", nil)).Code)
	assert.Equal(t, http.StatusOK, do(r, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
}
