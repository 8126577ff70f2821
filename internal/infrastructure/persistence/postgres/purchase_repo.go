package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"film-forge-api/internal/domain/entity"
	"film-forge-api/internal/domain/repository"
)

// PurchaseRepository completed checkouts.
type PurchaseRepository struct {
	client *Client
}

func NewPurchaseRepository(client *Client) *PurchaseRepository {
	return &PurchaseRepository{client: client}
}

func (r *PurchaseRepository) Create(ctx context.Context, record *entity.PurchaseRecord) error {
	ctx, span := tracer.Start(ctx, "postgres.PurchaseRepository.Create")
	defer span.End()

	if err := r.client.db.WithContext(ctx).Create(record).Error; err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create purchase record: %w", err)
	}
	return nil
}
