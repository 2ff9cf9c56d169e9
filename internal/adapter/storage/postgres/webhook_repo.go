package postgres

import (
	"context"
	"fmt"

	"btc-payment-core/internal/core/domain"
)

// WebhookRepo records verified webhook deliveries.
type WebhookRepo struct {
	pool Pool
}

// NewWebhookRepo creates a new WebhookRepo.
func NewWebhookRepo(pool Pool) *WebhookRepo {
	return &WebhookRepo{pool: pool}
}

func (r *WebhookRepo) Create(ctx context.Context, log *domain.WebhookDeliveryLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO webhook_deliveries
		(id, delivery_id, store_id, invoice_id, event_type, redelivery, outcome, last_error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		log.ID, log.DeliveryID, log.StoreID, log.InvoiceID, string(log.EventType),
		log.Redelivery, string(log.Outcome), log.LastError, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook delivery: %w", err)
	}
	return nil
}
