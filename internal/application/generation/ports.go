// Package generation orchestrates prompt rendering, provider calls and normalization per task.
package generation

import (
	"context"

	"github.com/cloudwego/eino/schema"

	"film-forge-api/internal/infrastructure/replicate"
)

// ChatCompleter returns the raw text of one chat completion.
type ChatCompleter interface {
	Complete(ctx context.Context, task string, msgs []*schema.Message, jsonMode bool) (string, error)
}

// ImageGenerator produces one image URL per prompt.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	MaxPromptLength() int
}

// PredictionRunner runs models on the asynchronous media provider.
type PredictionRunner interface {
	Run(ctx context.Context, model string, input map[string]any) (*replicate.Prediction, error)
	Start(ctx context.Context, model string, input map[string]any, webhookURL string) (*replicate.Prediction, error)
	MaxPromptLength() int
}
