package wire

import (
	"context"

	"film-forge-api/internal/config"
	"film-forge-api/internal/domain/repository"
	"film-forge-api/internal/infrastructure/persistence"
	"film-forge-api/internal/infrastructure/persistence/redis"
	"film-forge-api/internal/interfaces/http/handler"
	"film-forge-api/internal/interfaces/http/middleware"
	"film-forge-api/pkg/logger"
)

// ProvideStore opens the configured store. An unreachable backend degrades to the
// unconfigured store instead of failing startup.
func ProvideStore(ctx context.Context, cfg *config.Config) (*persistence.Store, func(), error) {
	store := persistence.Open(ctx, cfg)
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn(ctx, "failed to close store", "driver", store.Driver, "error", err.Error())
		}
	}
	return store, cleanup, nil
}

func ProvideAssetRepository(store *persistence.Store) repository.AssetRecordRepository {
	return store.Assets
}

func ProvidePurchaseRepository(store *persistence.Store) repository.PurchaseRepository {
	return store.Purchases
}

// ProvideRedisClientOptional connects to Redis when enabled; nil when disabled or unreachable.
func ProvideRedisClientOptional(ctx context.Context, cfg *config.Config) (*redis.Client, func(), error) {
	if !cfg.Cache.Redis.Enabled {
		return nil, func() {}, nil
	}
	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		logger.Warn(ctx, "redis not available, rate limiting disabled", "error", err.Error())
		return nil, func() {}, nil
	}
	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

// ProvideRateLimiter returns a nil interface without Redis.
func ProvideRateLimiter(client *redis.Client) middleware.RateLimiter {
	if client == nil {
		return nil
	}
	return redis.NewRateLimiter(client)
}

func ProvideHealthHandler(cfg *config.Config, store *persistence.Store, client *redis.Client) *handler.HealthHandler {
	return handler.NewHealthHandler(store, client, cfg.App.Version)
}
