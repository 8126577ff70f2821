package replicate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"film-forge-api/internal/config"
	"film-forge-api/internal/domain/entity"
	apperrors "film-forge-api/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Providers.Replicate = config.ReplicateConfig{
		APIToken:     "r8_test",
		BaseURL:      srv.URL,
		PollInterval: 10 * time.Millisecond,
		Timeout:      5 * time.Second,
	}
	return NewClient(cfg)
}

func TestRun_OfficialModelCompletesOnCreate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/black-forest-labs/flux-schnell/predictions", r.URL.Path)
		assert.Equal(t, "Bearer r8_test", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sketch", body["input"].(map[string]any)["prompt"])
		assert.Empty(t, body["version"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "p1", "status": "succeeded", "output": ["https://cdn.example.com/frame.webp"]}`))
	})

	p, err := c.Run(context.Background(), "black-forest-labs/flux-schnell", map[string]any{"prompt": "sketch"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/frame.webp", p.FirstOutputURL())
}

func TestRun_VersionedModelPolls(t *testing.T) {
	var polls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost:
			assert.Equal(t, "/predictions", r.URL.Path)
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "abc123", body["version"])
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id": "p2", "status": "starting"}`))
		default:
			assert.Equal(t, "/predictions/p2", r.URL.Path)
			if atomic.AddInt32(&polls, 1) < 2 {
				_, _ = w.Write([]byte(`{"id": "p2", "status": "processing"}`))
				return
			}
			_, _ = w.Write([]byte(`{"id": "p2", "status": "succeeded", "output": "https://cdn.example.com/a.mp3"}`))
		}
	})

	p, err := c.Run(context.Background(), "meta/musicgen:abc123", map[string]any{"prompt": "rain"})
	require.NoError(t, err)
	assert.Equal(t, entity.PredictionSucceeded, p.Status)
	assert.Equal(t, "https://cdn.example.com/a.mp3", p.FirstOutputURL())
	assert.GreaterOrEqual(t, atomic.LoadInt32(&polls), int32(2))
}

func TestRun_FailedPredictionClassified(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "p3", "status": "failed", "error": "NSFW content detected"}`))
	})
	_, err := c.Run(context.Background(), "owner/model", nil)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeProviderRejected))

	c = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"title": "Invalid version", "detail": "version does not exist", "status": 422}`))
	})
	_, err = c.Run(context.Background(), "owner/model", nil)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeProviderFailed))
}

func TestRun_InvalidModelReference(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})
	_, err := c.Run(context.Background(), "musicgen", nil)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeProviderFailed))
}

func TestStart_SendsWebhook(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/meta/musicgen/predictions", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://app.example.com/webhook-replicate?requestId=abc", body["webhook"])
		assert.Equal(t, []any{"completed"}, body["webhook_events_filter"])
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "job-1", "status": "starting"}`))
	})

	p, err := c.Start(context.Background(), "meta/musicgen", map[string]any{"prompt": "x"}, "https://app.example.com/webhook-replicate?requestId=abc")
	require.NoError(t, err)
	assert.Equal(t, "job-1", p.ID)
	assert.Equal(t, entity.PredictionStarting, p.Status)
}

func TestMissingToken(t *testing.T) {
	c := NewClient(&config.Config{})
	_, err := c.Run(context.Background(), "owner/model", nil)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeConfigMissing))
}

func TestOutputURLs(t *testing.T) {
	assert.Nil(t, (&Prediction{}).OutputURLs())
	assert.Equal(t, []string{"a"}, (&Prediction{Output: json.RawMessage(`"a"`)}).OutputURLs())
	assert.Equal(t, []string{"a", "b"}, (&Prediction{Output: json.RawMessage(`["a", 1, "b"]`)}).OutputURLs())
	assert.Nil(t, (&Prediction{Output: json.RawMessage(`{"x": 1}`)}).OutputURLs())
}
