// Package persistence selects the configured document store backend.
package persistence

import (
	"context"
	"fmt"
	"strings"

	"film-forge-api/internal/config"
	"film-forge-api/internal/domain/repository"
	"film-forge-api/internal/infrastructure/persistence/firestore"
	"film-forge-api/internal/infrastructure/persistence/nilstore"
	"film-forge-api/internal/infrastructure/persistence/postgres"
	"film-forge-api/pkg/logger"
)

const (
	DriverFirestore = "firestore"
	DriverPostgres  = "postgres"
	DriverNone      = "none"
)

// Store bundles the repositories of one backend.
type Store struct {
	Driver    string
	Assets    repository.AssetRecordRepository
	Purchases repository.PurchaseRepository
	// Health is nil for the none driver.
	Health repository.HealthChecker
	close  func() error
}

// Close releases the backend connection.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open connects the configured backend. A backend that cannot be reached degrades to the
// none driver so webhook deliveries are still acknowledged.
func Open(ctx context.Context, cfg *config.Config) *Store {
	driver := strings.ToLower(strings.TrimSpace(cfg.Store.Driver))

	switch driver {
	case DriverFirestore:
		client, err := firestore.NewClient(ctx, &cfg.Store.Firestore)
		if err != nil {
			logger.Error(ctx, "firestore unavailable, records will not be persisted", err)
			return None()
		}
		return &Store{
			Driver:    DriverFirestore,
			Assets:    firestore.NewAssetRecordRepository(client),
			Purchases: firestore.NewPurchaseRepository(client),
			Health:    client,
			close:     client.Close,
		}
	case DriverPostgres:
		client, err := postgres.NewClient(&cfg.Store.Postgres)
		if err != nil {
			logger.Error(ctx, "postgres unavailable, records will not be persisted", err)
			return None()
		}
		if cfg.Store.Postgres.AutoMigrate {
			if err := client.Migrate(ctx); err != nil {
				logger.Error(ctx, "postgres migration failed", err)
			}
		}
		return &Store{
			Driver:    DriverPostgres,
			Assets:    postgres.NewAssetRecordRepository(client),
			Purchases: postgres.NewPurchaseRepository(client),
			Health:    client,
			close:     client.Close,
		}
	case DriverNone, "":
		return None()
	default:
		logger.Warn(ctx, fmt.Sprintf("unknown store driver %q, records will not be persisted", driver))
		return None()
	}
}

// None returns a store whose operations report repository.ErrNotConfigured.
func None() *Store {
	s := nilstore.Store{}
	return &Store{
		Driver:    DriverNone,
		Assets:    s,
		Purchases: s.Purchases(),
	}
}
