package firestore

import (
	"context"
	"errors"
	"fmt"

	gcfirestore "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"film-forge-api/internal/domain/entity"
	"film-forge-api/internal/domain/repository"
)

// AssetRecordRepository stores audio job results, one document per prediction id.
type AssetRecordRepository struct {
	client *Client
}

func NewAssetRecordRepository(client *Client) *AssetRecordRepository {
	return &AssetRecordRepository{client: client}
}

func (r *AssetRecordRepository) collection() *gcfirestore.CollectionRef {
	return r.client.fs.Collection(r.client.config.AssetCollection)
}

// Create inserts record; an existing document with the same id yields ErrAlreadyExists.
func (r *AssetRecordRepository) Create(ctx context.Context, record *entity.AudioAssetRecord) error {
	ctx, span := tracer.Start(ctx, "firestore.AssetRecordRepository.Create")
	defer span.End()

	if _, err := r.collection().Doc(record.ID).Create(ctx, record); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create asset record: %w", mapError(err))
	}
	return nil
}

func (r *AssetRecordRepository) GetByID(ctx context.Context, id string) (*entity.AudioAssetRecord, error) {
	ctx, span := tracer.Start(ctx, "firestore.AssetRecordRepository.GetByID")
	defer span.End()

	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		mapped := mapError(err)
		if !errors.Is(mapped, repository.ErrNotFound) {
			span.RecordError(err)
		}
		return nil, mapped
	}
	var record entity.AudioAssetRecord
	if err := snap.DataTo(&record); err != nil {
		return nil, fmt.Errorf("failed to decode asset record: %w", err)
	}
	return &record, nil
}

func (r *AssetRecordRepository) ListByRequestID(ctx context.Context, requestID string) ([]*entity.AudioAssetRecord, error) {
	ctx, span := tracer.Start(ctx, "firestore.AssetRecordRepository.ListByRequestID")
	defer span.End()

	iter := r.collection().Where("requestId", "==", requestID).Documents(ctx)
	defer iter.Stop()

	var records []*entity.AudioAssetRecord
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to list asset records: %w", err)
		}
		var record entity.AudioAssetRecord
		if err := snap.DataTo(&record); err != nil {
			return nil, fmt.Errorf("failed to decode asset record: %w", err)
		}
		records = append(records, &record)
	}
	return records, nil
}
