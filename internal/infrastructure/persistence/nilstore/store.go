// Package nilstore is the store used when no backend is configured.
package nilstore

import (
	"context"

	"film-forge-api/internal/domain/entity"
	"film-forge-api/internal/domain/repository"
)

// Store fails every operation with repository.ErrNotConfigured.
type Store struct{}

func (Store) Create(context.Context, *entity.AudioAssetRecord) error {
	return repository.ErrNotConfigured
}

func (Store) GetByID(context.Context, string) (*entity.AudioAssetRecord, error) {
	return nil, repository.ErrNotConfigured
}

func (Store) ListByRequestID(context.Context, string) ([]*entity.AudioAssetRecord, error) {
	return nil, repository.ErrNotConfigured
}

// Purchases returns the purchase side of the store.
func (Store) Purchases() repository.PurchaseRepository {
	return purchases{}
}

type purchases struct{}

func (purchases) Create(context.Context, *entity.PurchaseRecord) error {
	return repository.ErrNotConfigured
}
