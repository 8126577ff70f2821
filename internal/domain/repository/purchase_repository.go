package repository

import (
	"context"

	"film-forge-api/internal/domain/entity"
)

// PurchaseRepository stores completed checkouts.
type PurchaseRepository interface {
	Create(ctx context.Context, record *entity.PurchaseRecord) error
}
