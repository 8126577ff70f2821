package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"film-forge-api/internal/domain/entity"
	"film-forge-api/internal/domain/repository"
)

// AssetRecordRepository audio job results.
type AssetRecordRepository struct {
	client *Client
}

func NewAssetRecordRepository(client *Client) *AssetRecordRepository {
	return &AssetRecordRepository{client: client}
}

func (r *AssetRecordRepository) Create(ctx context.Context, record *entity.AudioAssetRecord) error {
	ctx, span := tracer.Start(ctx, "postgres.AssetRecordRepository.Create")
	defer span.End()

	if err := r.client.db.WithContext(ctx).Create(record).Error; err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create asset record: %w", err)
	}
	return nil
}

func (r *AssetRecordRepository) GetByID(ctx context.Context, id string) (*entity.AudioAssetRecord, error) {
	ctx, span := tracer.Start(ctx, "postgres.AssetRecordRepository.GetByID")
	defer span.End()

	var record entity.AudioAssetRecord
	if err := r.client.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get asset record: %w", err)
	}
	return &record, nil
}

func (r *AssetRecordRepository) ListByRequestID(ctx context.Context, requestID string) ([]*entity.AudioAssetRecord, error) {
	ctx, span := tracer.Start(ctx, "postgres.AssetRecordRepository.ListByRequestID")
	defer span.End()

	var records []*entity.AudioAssetRecord
	if err := r.client.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list asset records: %w", err)
	}
	return records, nil
}
