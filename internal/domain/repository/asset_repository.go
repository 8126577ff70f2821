package repository

import (
	"context"

	"film-forge-api/internal/domain/entity"
)

// AssetRecordRepository stores completed audio jobs. Writes are single-record inserts.
type AssetRecordRepository interface {
	Create(ctx context.Context, record *entity.AudioAssetRecord) error
	GetByID(ctx context.Context, id string) (*entity.AudioAssetRecord, error)
	ListByRequestID(ctx context.Context, requestID string) ([]*entity.AudioAssetRecord, error)
}
