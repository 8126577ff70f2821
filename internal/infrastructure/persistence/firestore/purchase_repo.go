package firestore

import (
	"context"
	"fmt"

	"film-forge-api/internal/domain/entity"
)

// PurchaseRepository stores completed checkouts keyed by checkout session id.
type PurchaseRepository struct {
	client *Client
}

func NewPurchaseRepository(client *Client) *PurchaseRepository {
	return &PurchaseRepository{client: client}
}

func (r *PurchaseRepository) Create(ctx context.Context, record *entity.PurchaseRecord) error {
	ctx, span := tracer.Start(ctx, "firestore.PurchaseRepository.Create")
	defer span.End()

	coll := r.client.fs.Collection(r.client.config.PurchaseCollection)
	if _, err := coll.Doc(record.ID).Create(ctx, record); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create purchase record: %w", mapError(err))
	}
	return nil
}
