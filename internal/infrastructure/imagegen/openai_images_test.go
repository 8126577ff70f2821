package imagegen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"film-forge-api/internal/config"
	apperrors "film-forge-api/pkg/errors"
)

func newTestImages(t *testing.T, handler http.HandlerFunc) *OpenAIImages {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Providers.OpenAI = config.OpenAIConfig{
		APIKey:     "sk-test",
		BaseURL:    srv.URL + "/v1",
		ImageModel: "dall-e-3",
		ImageSize:  "1024x1024",
	}
	return NewOpenAIImages(cfg)
}

func TestGenerate_ReturnsURL(t *testing.T) {
	images := newTestImages(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/images/generations", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a portrait", body["prompt"])
		assert.Equal(t, "dall-e-3", body["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"created": 1, "data": [{"url": "https://img.example.com/p.png"}]}`))
	})

	url, err := images.Generate(context.Background(), "a portrait")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/p.png", url)
}

func TestGenerate_ContentPolicyIsRejection(t *testing.T) {
	images := newTestImages(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"code": "content_policy_violation", "message": "Your request was rejected as a result of our safety system.", "type": "invalid_request_error"}}`))
	})

	_, err := images.Generate(context.Background(), "something")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeProviderRejected))
	assert.Equal(t, http.StatusBadRequest, apperrors.AsAppError(err).HTTPStatus)
}

func TestGenerate_ServerErrorIsFailure(t *testing.T) {
	images := newTestImages(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "boom", "type": "server_error"}}`))
	})

	_, err := images.Generate(context.Background(), "something")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeProviderFailed))
}

func TestGenerate_MissingKey(t *testing.T) {
	images := NewOpenAIImages(&config.Config{})
	_, err := images.Generate(context.Background(), "x")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeConfigMissing))
}
