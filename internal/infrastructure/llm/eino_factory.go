// Package llm provides the chat completion client backed by eino.
package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"film-forge-api/internal/config"
	apperrors "film-forge-api/pkg/errors"
)

// EinoFactory lazily builds the eino ChatModel.
type EinoFactory struct {
	config config.OpenAIConfig
	model  model.BaseChatModel
	mu     sync.Mutex
}

// NewEinoFactory creates the factory. No network call is made until first use.
func NewEinoFactory(cfg *config.Config) *EinoFactory {
	return &EinoFactory{
		config: cfg.Providers.OpenAI,
	}
}

// Get returns the chat model, failing fast when no API key is configured.
func (f *EinoFactory) Get(ctx context.Context) (model.BaseChatModel, error) {
	if !f.config.Configured() {
		return nil, apperrors.ConfigMissing("OPENAI_API_KEY")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.model != nil {
		return f.model, nil
	}

	cfg := &openai.ChatModelConfig{
		APIKey:      f.config.APIKey,
		BaseURL:     f.config.BaseURL,
		Model:       f.config.ChatModel,
		Temperature: ptrFloat32(float32(f.config.Temperature)),
		Timeout:     f.config.Timeout,
	}
	if f.config.MaxTokens > 0 {
		cfg.MaxTokens = &f.config.MaxTokens
	}

	chatModel, err := openai.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create eino chat model: %w", err)
	}
	f.model = chatModel
	return chatModel, nil
}

// ModelName is the configured chat model.
func (f *EinoFactory) ModelName() string {
	return f.config.ChatModel
}

func ptrFloat32(f float32) *float32 {
	return &f
}
