// Package replicate runs models on Replicate through the official SDK.
package replicate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	r8 "github.com/replicate/replicate-go"

	"film-forge-api/internal/config"
	"film-forge-api/internal/domain/entity"
	apperrors "film-forge-api/pkg/errors"
	"film-forge-api/pkg/metrics"
	"film-forge-api/pkg/tracer"
)

const (
	providerName = "replicate"

	defaultPollInterval = time.Second
)

// Prediction is the subset of a Replicate prediction this service reads.
// Webhook deliveries decode into it directly.
type Prediction struct {
	ID        string                  `json:"id"`
	Model     string                  `json:"model"`
	Version   string                  `json:"version"`
	Status    entity.PredictionStatus `json:"status"`
	Input     map[string]any          `json:"input,omitempty"`
	Output    json.RawMessage         `json:"output,omitempty"`
	Error     any                     `json:"error,omitempty"`
	CreatedAt string                  `json:"created_at,omitempty"`
}

// OutputURLs returns the output as a list of URLs. Output may be a single string or an array.
func (p *Prediction) OutputURLs() []string {
	if p == nil || len(p.Output) == 0 {
		return nil
	}
	var single string
	if err := json.Unmarshal(p.Output, &single); err == nil {
		if single == "" {
			return nil
		}
		return []string{single}
	}
	var many []any
	if err := json.Unmarshal(p.Output, &many); err == nil {
		out := make([]string, 0, len(many))
		for _, v := range many {
			if s, ok := v.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// FirstOutputURL returns the first output URL, or "".
func (p *Prediction) FirstOutputURL() string {
	if urls := p.OutputURLs(); len(urls) > 0 {
		return urls[0]
	}
	return ""
}

// ErrorMessage returns the provider error as text.
func (p *Prediction) ErrorMessage() string {
	if p == nil || p.Error == nil {
		return ""
	}
	if s, ok := p.Error.(string); ok {
		return s
	}
	b, _ := json.Marshal(p.Error)
	return string(b)
}

func fromSDK(p *r8.Prediction) *Prediction {
	if p == nil {
		return nil
	}
	out := &Prediction{
		ID:        p.ID,
		Model:     p.Model,
		Version:   p.Version,
		Status:    entity.PredictionStatus(p.Status),
		Input:     p.Input,
		Error:     p.Error,
		CreatedAt: p.CreatedAt,
	}
	if p.Output != nil {
		if raw, err := json.Marshal(p.Output); err == nil {
			out.Output = raw
		}
	}
	return out
}

// Client calls the Replicate API.
type Client struct {
	api          *r8.Client
	initErr      error
	cfg          config.ReplicateConfig
	pollInterval time.Duration
}

func NewClient(cfg *config.Config) *Client {
	rc := cfg.Providers.Replicate
	c := &Client{
		cfg:          rc,
		pollInterval: rc.PollInterval,
	}
	if c.pollInterval <= 0 {
		c.pollInterval = defaultPollInterval
	}
	if !rc.Configured() {
		return c
	}

	opts := []r8.ClientOption{
		r8.WithToken(rc.APIToken),
		r8.WithHTTPClient(&http.Client{Timeout: rc.Timeout}),
	}
	if base := strings.TrimRight(rc.BaseURL, "/"); base != "" {
		opts = append(opts, r8.WithBaseURL(base))
	}
	c.api, c.initErr = r8.NewClient(opts...)
	return c
}

// MaxPromptLength is the prompt cap applied to storyboard frames.
func (c *Client) MaxPromptLength() int {
	return c.cfg.MaxPromptLength
}

// Run creates a prediction and waits until it reaches a terminal state.
func (c *Client) Run(ctx context.Context, model string, input map[string]any) (*Prediction, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	ctx, span := tracer.StartProvider(ctx, providerName, "run")
	start := time.Now()

	sp, err := c.create(ctx, model, input, nil)
	if err == nil && !entity.PredictionStatus(sp.Status).Terminal() {
		err = c.api.Wait(ctx, sp, r8.WithPollingInterval(c.pollInterval))
	}
	p := fromSDK(sp)
	if err == nil {
		err = predictionError(p)
	}

	metrics.ProviderCallDuration.WithLabelValues(providerName, "run").Observe(time.Since(start).Seconds())
	tracer.End(span, err)
	return p, c.classify("run", err)
}

// Start creates a prediction that reports completion to webhookURL and returns immediately.
func (c *Client) Start(ctx context.Context, model string, input map[string]any, webhookURL string) (*Prediction, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	ctx, span := tracer.StartProvider(ctx, providerName, "start")
	start := time.Now()

	var hook *r8.Webhook
	if webhookURL != "" {
		hook = &r8.Webhook{
			URL:    webhookURL,
			Events: []r8.WebhookEventType{r8.WebhookEventCompleted},
		}
	}
	sp, err := c.create(ctx, model, input, hook)

	metrics.ProviderCallDuration.WithLabelValues(providerName, "start").Observe(time.Since(start).Seconds())
	tracer.End(span, err)
	return fromSDK(sp), c.classify("start", err)
}

func (c *Client) ready() error {
	if !c.cfg.Configured() {
		return apperrors.ConfigMissing("REPLICATE_API_TOKEN")
	}
	if c.initErr != nil {
		return apperrors.ProviderFailed(providerName, c.initErr)
	}
	return nil
}

// create targets a version when model is "owner/name:version", otherwise the model's latest deployment.
func (c *Client) create(ctx context.Context, model string, input map[string]any, hook *r8.Webhook) (*r8.Prediction, error) {
	if input == nil {
		input = map[string]any{}
	}
	if _, version, ok := strings.Cut(model, ":"); ok {
		return c.api.CreatePrediction(ctx, version, r8.PredictionInput(input), hook, false)
	}
	owner, name, ok := strings.Cut(model, "/")
	if !ok || owner == "" || name == "" {
		return nil, fmt.Errorf("replicate: invalid model reference %q", model)
	}
	return c.api.CreatePredictionWithModel(ctx, owner, name, r8.PredictionInput(input), hook, false)
}

func (c *Client) classify(operation string, err error) error {
	if err == nil {
		metrics.ProviderCallTotal.WithLabelValues(providerName, operation, "success").Inc()
		return nil
	}
	metrics.ProviderCallTotal.WithLabelValues(providerName, operation, "error").Inc()
	if isRejection(err) {
		return apperrors.ProviderRejected(providerName, err)
	}
	return apperrors.ProviderFailed(providerName, err)
}

// PredictionFailedError is a prediction that ended in failed or canceled.
type PredictionFailedError struct {
	ID      string
	Status  entity.PredictionStatus
	Message string
}

func (e *PredictionFailedError) Error() string {
	return fmt.Sprintf("replicate: prediction %s %s: %s", e.ID, e.Status, e.Message)
}

func predictionError(p *Prediction) error {
	if p == nil {
		return errors.New("replicate: empty prediction")
	}
	switch p.Status {
	case entity.PredictionSucceeded:
		if p.FirstOutputURL() == "" {
			return &PredictionFailedError{ID: p.ID, Status: p.Status, Message: "no output"}
		}
		return nil
	case entity.PredictionFailed, entity.PredictionCanceled:
		return &PredictionFailedError{ID: p.ID, Status: p.Status, Message: p.ErrorMessage()}
	default:
		return &PredictionFailedError{ID: p.ID, Status: p.Status, Message: "not finished"}
	}
}

var rejectionMarkers = []string{"nsfw", "sensitive", "content policy", "safety"}

func isRejection(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, m := range rejectionMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
