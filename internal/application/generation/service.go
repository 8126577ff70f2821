package generation

import (
	"context"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"film-forge-api/internal/application/normalize"
	"film-forge-api/internal/application/prompt"
	"film-forge-api/internal/config"
	"film-forge-api/internal/domain/entity"
	"film-forge-api/internal/infrastructure/webhook"
	apperrors "film-forge-api/pkg/errors"
	"film-forge-api/pkg/logger"
	"film-forge-api/pkg/metrics"
)

const (
	defaultRawOutputLimit = 2000
	audioJobConcurrency   = 4
)

// Service runs every generation task.
type Service struct {
	prompts     *prompt.Registry
	chat        ChatCompleter
	images      ImageGenerator
	predictions PredictionRunner

	storyboardModel string
	audioModel      string
	publicURL       string
	callbackSecret  string
	audioJobs       bool
	rawOutputLimit  int
}

func NewService(cfg *config.Config, prompts *prompt.Registry, chat ChatCompleter, images ImageGenerator, predictions PredictionRunner) *Service {
	limit := cfg.Observability.Logging.RawOutputLimit
	if limit <= 0 {
		limit = defaultRawOutputLimit
	}
	return &Service{
		prompts:         prompts,
		chat:            chat,
		images:          images,
		predictions:     predictions,
		storyboardModel: cfg.Providers.Replicate.StoryboardModel,
		audioModel:      cfg.Providers.Replicate.AudioModel,
		publicURL:       cfg.App.PublicURL,
		callbackSecret:  cfg.Providers.Replicate.WebhookSecret,
		audioJobs:       cfg.Features.SoundAudioJobs,
		rawOutputLimit:  limit,
	}
}

type ScriptInput struct {
	MovieIdea    string
	MovieGenre   string
	ScriptLength string
}

func (s *Service) Script(ctx context.Context, in ScriptInput) (*entity.Script, error) {
	if err := required(
		field{"movieIdea", in.MovieIdea},
		field{"movieGenre", in.MovieGenre},
		field{"scriptLength", in.ScriptLength},
	); err != nil {
		return nil, err
	}
	script, err := complete(ctx, s, prompt.KindScript, map[string]any{
		"movieIdea":    in.MovieIdea,
		"movieGenre":   in.MovieGenre,
		"scriptLength": in.ScriptLength,
	}, normalize.Script)
	if err != nil {
		return nil, err
	}
	script.Genre = in.MovieGenre
	script.Length = in.ScriptLength
	return script, nil
}

type BudgetInput struct {
	MovieGenre    string
	ScriptLength  string
	LowBudgetMode bool
}

func (s *Service) Budget(ctx context.Context, in BudgetInput) ([]entity.BudgetCategory, error) {
	if err := required(
		field{"movieGenre", in.MovieGenre},
		field{"scriptLength", in.ScriptLength},
	); err != nil {
		return nil, err
	}
	return complete(ctx, s, prompt.KindBudget, map[string]any{
		"movieGenre":    in.MovieGenre,
		"scriptLength":  in.ScriptLength,
		"lowBudgetMode": in.LowBudgetMode,
	}, normalize.Budget)
}

type CharactersInput struct {
	ScriptContent string
	Genre         string
}

func (s *Service) Characters(ctx context.Context, in CharactersInput) ([]entity.Character, error) {
	if err := required(
		field{"scriptContent", in.ScriptContent},
		field{"genre", in.Genre},
	); err != nil {
		return nil, err
	}
	return complete(ctx, s, prompt.KindCharacters, map[string]any{
		"scriptContent": in.ScriptContent,
		"genre":         in.Genre,
	}, normalize.Characters)
}

// PortraitResult is a generated character portrait.
type PortraitResult struct {
	ImageURL          string
	VisualDescription string
}

// Portrait generates one portrait for an already generated character.
func (s *Service) Portrait(ctx context.Context, c entity.Character) (*PortraitResult, error) {
	if err := required(field{"character.name", c.Name}); err != nil {
		return nil, err
	}
	p, visual := prompt.Portrait(c, s.images.MaxPromptLength())

	imageURL, err := s.images.Generate(ctx, p)
	if err != nil {
		return nil, s.fail(ctx, "portrait", err)
	}
	if imageURL == "" {
		return nil, s.fail(ctx, "portrait", apperrors.EmptyResult("no portrait was generated, try adding more visual detail"))
	}
	s.succeed("portrait")
	return &PortraitResult{ImageURL: imageURL, VisualDescription: visual}, nil
}

type LocationsInput struct {
	Script string
	Genre  string
}

func (s *Service) Locations(ctx context.Context, in LocationsInput) ([]entity.Location, error) {
	if err := required(
		field{"script", in.Script},
		field{"genre", in.Genre},
	); err != nil {
		return nil, err
	}
	return complete(ctx, s, prompt.KindLocations, map[string]any{
		"script": in.Script,
		"genre":  in.Genre,
	}, normalize.Locations)
}

type ScheduleInput struct {
	Script       string
	ScriptLength string
}

func (s *Service) Schedule(ctx context.Context, in ScheduleInput) ([]entity.ScheduleEntry, error) {
	if err := required(
		field{"script", in.Script},
		field{"scriptLength", in.ScriptLength},
	); err != nil {
		return nil, err
	}
	return complete(ctx, s, prompt.KindSchedule, map[string]any{
		"script":       in.Script,
		"scriptLength": in.ScriptLength,
	}, normalize.Schedule)
}

type SoundPlanInput struct {
	MovieIdea  string
	MovieGenre string
}

func (s *Service) SoundPlan(ctx context.Context, in SoundPlanInput) (*entity.SoundPlan, error) {
	if err := required(
		field{"movieIdea", in.MovieIdea},
		field{"movieGenre", in.MovieGenre},
	); err != nil {
		return nil, err
	}
	return complete(ctx, s, prompt.KindSoundPlan, map[string]any{
		"movieIdea":  in.MovieIdea,
		"movieGenre": in.MovieGenre,
	}, normalize.SoundPlan)
}

type SoundAssetsInput struct {
	Script string
	Genre  string
}

// SoundAssets generates the sound cue list. When audio jobs are enabled, one asynchronous
// audio job is started per cue; job failures are logged and leave that cue without a jobId.
func (s *Service) SoundAssets(ctx context.Context, in SoundAssetsInput) ([]entity.SoundAsset, error) {
	if err := required(
		field{"script", in.Script},
		field{"genre", in.Genre},
	); err != nil {
		return nil, err
	}
	assets, err := complete(ctx, s, prompt.KindSoundAssets, map[string]any{
		"script": in.Script,
		"genre":  in.Genre,
	}, normalize.SoundAssets)
	if err != nil {
		return nil, err
	}
	if s.audioJobs && s.publicURL != "" {
		s.startAudioJobs(ctx, assets)
	}
	return assets, nil
}

func (s *Service) startAudioJobs(ctx context.Context, assets []entity.SoundAsset) {
	requestID := logger.RequestID(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(audioJobConcurrency)
	for i := range assets {
		g.Go(func() error {
			a := assets[i]
			input := map[string]any{
				"prompt":   prompt.Truncate(a.Description, s.predictions.MaxPromptLength()),
				"duration": durationSeconds(a.Duration),
			}
			p, err := s.predictions.Start(gctx, s.audioModel, input, s.webhookURL(requestID, a.Name))
			if err != nil {
				logger.Error(gctx, "audio job start failed", err, "asset", a.Name)
				return nil
			}
			assets[i].JobID = p.ID
			return nil
		})
	}
	_ = g.Wait()
}

func (s *Service) webhookURL(requestID, asset string) string {
	q := url.Values{}
	q.Set("requestId", requestID)
	q.Set("asset", asset)
	if s.callbackSecret == "" {
		return s.publicURL + "/webhook-replicate?" + q.Encode()
	}
	return s.publicURL + "/webhook-replicate?" + webhook.SignCallback(q, s.callbackSecret)
}

type StoryboardShotsInput struct {
	SceneDescription string
	SceneNumber      int
	Genre            string
}

func (s *Service) StoryboardShots(ctx context.Context, in StoryboardShotsInput) ([]entity.StoryboardShot, error) {
	if err := required(
		field{"sceneDescription", in.SceneDescription},
		field{"genre", in.Genre},
	); err != nil {
		return nil, err
	}
	return complete(ctx, s, prompt.KindStoryboardShots, map[string]any{
		"sceneDescription": in.SceneDescription,
		"sceneNumber":      in.SceneNumber,
		"genre":            in.Genre,
	}, normalize.StoryboardShots)
}

// StoryboardFrame renders one pencil-sketch frame and returns its image URL.
func (s *Service) StoryboardFrame(ctx context.Context, imagePrompt string) (string, error) {
	if err := required(field{"imagePrompt", imagePrompt}); err != nil {
		return "", err
	}
	p := prompt.StoryboardFrame(imagePrompt, s.predictions.MaxPromptLength())

	pred, err := s.predictions.Run(ctx, s.storyboardModel, map[string]any{
		"prompt":        p,
		"aspect_ratio":  "16:9",
		"output_format": "png",
	})
	if err != nil {
		return "", s.fail(ctx, "storyboard_frame", err)
	}
	imageURL := pred.FirstOutputURL()
	if imageURL == "" {
		return "", s.fail(ctx, "storyboard_frame", apperrors.EmptyResult("no frame was generated, try a more concrete image prompt"))
	}
	s.succeed("storyboard_frame")
	return imageURL, nil
}

// complete renders kind, calls the chat provider in JSON mode and normalizes the output.
func complete[T any](ctx context.Context, s *Service, kind prompt.Kind, vars map[string]any, parse func(string) (T, error)) (T, error) {
	var zero T
	task := string(kind)

	msgs, err := s.prompts.Messages(ctx, kind, vars)
	if err != nil {
		return zero, s.fail(ctx, task, apperrors.Wrap(err, apperrors.CodeInternalError, "failed to build prompt"))
	}
	raw, err := s.chat.Complete(ctx, task, msgs, true)
	if err != nil {
		return zero, s.fail(ctx, task, err)
	}
	out, err := parse(raw)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeMalformedResponse) {
			appErr := apperrors.AsAppError(err)
			appErr.Detail = prompt.Truncate(raw, s.rawOutputLimit)
			logger.Warn(ctx, "unparseable provider output", "task", task, "raw", appErr.Detail)
		}
		return zero, s.fail(ctx, task, err)
	}
	s.succeed(task)
	return out, nil
}

func (s *Service) fail(ctx context.Context, task string, err error) error {
	status := "error"
	switch apperrors.AsAppError(err).Code {
	case apperrors.CodeProviderRejected:
		status = "rejected"
	case apperrors.CodeMalformedResponse:
		status = "malformed"
	case apperrors.CodeEmptyResult:
		status = "empty"
	case apperrors.CodeConfigMissing:
		status = "unconfigured"
	}
	metrics.GenerationTotal.WithLabelValues(task, status).Inc()
	logger.Debug(ctx, "generation failed", "task", task, "status", status)
	return err
}

func (s *Service) succeed(task string) {
	metrics.GenerationTotal.WithLabelValues(task, "success").Inc()
}

type field struct {
	name  string
	value string
}

// required rejects the first blank field before any provider is contacted.
func required(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.Validation(f.name + " is required")
		}
	}
	return nil
}
