// Package imagegen generates character portraits through the OpenAI images API.
package imagegen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"film-forge-api/internal/config"
	"film-forge-api/internal/infrastructure/llm"
	apperrors "film-forge-api/pkg/errors"
	"film-forge-api/pkg/metrics"
	"film-forge-api/pkg/tracer"
)

const providerName = "openai"

var errNoImage = errors.New("image response contained no url")

// OpenAIImages wraps go-openai CreateImage.
type OpenAIImages struct {
	client *openai.Client
	cfg    config.OpenAIConfig
}

// NewOpenAIImages builds the client. A missing key is reported on first use.
func NewOpenAIImages(cfg *config.Config) *OpenAIImages {
	c := &OpenAIImages{cfg: cfg.Providers.OpenAI}
	if c.cfg.Configured() {
		clientCfg := openai.DefaultConfig(c.cfg.APIKey)
		if c.cfg.BaseURL != "" {
			clientCfg.BaseURL = c.cfg.BaseURL
		}
		c.client = openai.NewClientWithConfig(clientCfg)
	}
	return c
}

// MaxPromptLength is the longest prompt the image model accepts.
func (c *OpenAIImages) MaxPromptLength() int {
	return c.cfg.MaxImagePromptLength
}

// Generate returns the URL of one image rendered from prompt.
func (c *OpenAIImages) Generate(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", apperrors.ConfigMissing("OPENAI_API_KEY")
	}

	ctx, span := tracer.StartProvider(ctx, providerName, "image")
	start := time.Now()

	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          c.cfg.ImageModel,
		N:              1,
		Size:           c.cfg.ImageSize,
		Quality:        c.cfg.ImageQuality,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err == nil && (len(resp.Data) == 0 || resp.Data[0].URL == "") {
		err = errNoImage
	}

	metrics.ProviderCallDuration.WithLabelValues(providerName, "image").Observe(time.Since(start).Seconds())
	tracer.End(span, err)

	if err != nil {
		metrics.ProviderCallTotal.WithLabelValues(providerName, "image", "error").Inc()
		if isContentPolicy(err) {
			return "", apperrors.ProviderRejected(providerName, err)
		}
		return "", apperrors.ProviderFailed(providerName, err)
	}
	metrics.ProviderCallTotal.WithLabelValues(providerName, "image", "success").Inc()
	return resp.Data[0].URL, nil
}

func isContentPolicy(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.Code != nil {
		if fmt.Sprint(apiErr.Code) == "content_policy_violation" {
			return true
		}
	}
	return llm.IsContentPolicyError(err)
}
