package llm

import (
	"context"
	"strings"
	"time"

	openaiopts "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	einoobs "film-forge-api/internal/observability/eino"
	apperrors "film-forge-api/pkg/errors"
	"film-forge-api/pkg/logger"
	"film-forge-api/pkg/metrics"
	"film-forge-api/pkg/tracer"
)

const providerName = "openai"

// ChatClient runs one chat completion per call and returns the raw text.
type ChatClient struct {
	factory *EinoFactory
}

func NewChatClient(factory *EinoFactory) *ChatClient {
	return &ChatClient{factory: factory}
}

// Complete sends msgs and returns the assistant content. When jsonMode is set the
// json_object response format is requested, and dropped if the provider rejects it.
func (c *ChatClient) Complete(ctx context.Context, task string, msgs []*schema.Message, jsonMode bool) (string, error) {
	chatModel, err := c.factory.Get(ctx)
	if err != nil {
		return "", err
	}

	ctx = einoobs.WithTask(ctx, task)
	ctx, span := tracer.StartProvider(ctx, providerName, "chat."+task)
	start := time.Now()

	out, err := c.generate(ctx, chatModel, msgs, jsonMode)
	if err != nil && jsonMode && IsResponseFormatUnsupportedError(err) {
		logger.Warn(ctx, "response_format not supported, retrying without it", "task", task)
		out, err = c.generate(ctx, chatModel, msgs, false)
	}

	metrics.ProviderCallDuration.WithLabelValues(providerName, "chat").Observe(time.Since(start).Seconds())
	tracer.End(span, err)

	if err != nil {
		metrics.ProviderCallTotal.WithLabelValues(providerName, "chat", "error").Inc()
		if IsContentPolicyError(err) {
			return "", apperrors.ProviderRejected(providerName, err)
		}
		return "", apperrors.ProviderFailed(providerName, err)
	}
	metrics.ProviderCallTotal.WithLabelValues(providerName, "chat", "success").Inc()
	return out, nil
}

func (c *ChatClient) generate(ctx context.Context, chatModel model.BaseChatModel, msgs []*schema.Message, jsonMode bool) (string, error) {
	var opts []model.Option
	if jsonMode {
		opts = append(opts, openaiopts.WithExtraFields(map[string]any{
			"response_format": map[string]any{"type": "json_object"},
		}))
	}
	resp, err := chatModel.Generate(ctx, msgs, opts...)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", nil
	}
	return strings.TrimSpace(resp.Content), nil
}
