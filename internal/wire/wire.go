//go:build wireinject
// +build wireinject

// Package wire holds the dependency injection graph.
package wire

import (
	"context"

	"github.com/google/wire"

	"film-forge-api/internal/application/archive"
	"film-forge-api/internal/application/generation"
	"film-forge-api/internal/application/prompt"
	"film-forge-api/internal/config"
	"film-forge-api/internal/infrastructure/fetch"
	"film-forge-api/internal/infrastructure/imagegen"
	"film-forge-api/internal/infrastructure/llm"
	"film-forge-api/internal/infrastructure/payment"
	"film-forge-api/internal/infrastructure/replicate"
	"film-forge-api/internal/interfaces/http/handler"
	"film-forge-api/internal/interfaces/http/router"
)

// InitializeApp builds the router with every dependency.
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		StoreSet,
		RedisSet,
		ProviderSet,
		GenerationSet,
		RouterSet,
	)
	return nil, nil, nil
}

// StoreSet document store.
var StoreSet = wire.NewSet(
	ProvideStore,
	ProvideAssetRepository,
	ProvidePurchaseRepository,
)

// RedisSet optional Redis and the rate limiter on top of it.
var RedisSet = wire.NewSet(
	ProvideRedisClientOptional,
	ProvideRateLimiter,
)

// ProviderSet external AI and payment providers.
var ProviderSet = wire.NewSet(
	llm.NewEinoFactory,
	llm.NewChatClient,
	imagegen.NewOpenAIImages,
	replicate.NewClient,
	payment.NewStripeCheckout,
	fetch.NewHTTPFetcher,
	wire.Bind(new(generation.ChatCompleter), new(*llm.ChatClient)),
	wire.Bind(new(generation.ImageGenerator), new(*imagegen.OpenAIImages)),
	wire.Bind(new(generation.PredictionRunner), new(*replicate.Client)),
	wire.Bind(new(handler.CheckoutCreator), new(*payment.StripeCheckout)),
	wire.Bind(new(handler.PurchaseEventParser), new(*payment.StripeCheckout)),
	wire.Bind(new(archive.Fetcher), new(*fetch.HTTPFetcher)),
)

// GenerationSet prompt rendering, orchestration and archives.
var GenerationSet = wire.NewSet(
	prompt.NewRegistry,
	generation.NewService,
	archive.NewAssembler,
	wire.Bind(new(handler.ArchiveBuilder), new(*archive.Assembler)),
)

// RouterSet handlers and router.
var RouterSet = wire.NewSet(
	handler.NewFilmHandler,
	handler.NewDownloadHandler,
	handler.NewCheckoutHandler,
	handler.NewWebhookHandler,
	handler.NewSoundJobHandler,
	handler.NewDebugHandler,
	ProvideHealthHandler,
	wire.Struct(new(router.RouterHandlers), "*"),
	router.NewWithDeps,
)
