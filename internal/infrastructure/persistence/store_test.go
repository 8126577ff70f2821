package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"film-forge-api/internal/config"
	"film-forge-api/internal/domain/entity"
	"film-forge-api/internal/domain/repository"
)

func TestOpen_NoneDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Driver = "none"

	s := Open(context.Background(), cfg)
	assert.Equal(t, DriverNone, s.Driver)
	assert.Nil(t, s.Health)
	assert.NoError(t, s.Close())

	err := s.Assets.Create(context.Background(), &entity.AudioAssetRecord{ID: "p1"})
	assert.ErrorIs(t, err, repository.ErrNotConfigured)

	_, err = s.Assets.GetByID(context.Background(), "p1")
	assert.ErrorIs(t, err, repository.ErrNotConfigured)

	err = s.Purchases.Create(context.Background(), &entity.PurchaseRecord{ID: "cs_1"})
	assert.ErrorIs(t, err, repository.ErrNotConfigured)
}

func TestOpen_UnknownDriverDegrades(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Driver = "mongo"

	assert.Equal(t, DriverNone, Open(context.Background(), cfg).Driver)
}
