package postgres

import (
	"context"
	"errors"
	"fmt"

	"btc-payment-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const merchantStoreColumns = `id, merchant_id, store_id, webhook_id, webhook_secret_enc, xpub_enc, created_at, updated_at`

// MerchantStoreRepo implements ports.MerchantStoreRepository.
type MerchantStoreRepo struct {
	pool Pool
}

// NewMerchantStoreRepo creates a new MerchantStoreRepo.
func NewMerchantStoreRepo(pool Pool) *MerchantStoreRepo {
	return &MerchantStoreRepo{pool: pool}
}

// Create inserts the merchant's processor store.
func (r *MerchantStoreRepo) Create(ctx context.Context, s *domain.MerchantStore) error {
	query := `INSERT INTO merchant_stores (` + merchantStoreColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.MerchantID, s.StoreID, s.WebhookID,
		s.WebhookSecretEnc, s.XpubEnc, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert merchant store: %w", err)
	}
	return nil
}

// GetByMerchantID fetches the store owned by a merchant.
func (r *MerchantStoreRepo) GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*domain.MerchantStore, error) {
	query := `SELECT ` + merchantStoreColumns + ` FROM merchant_stores WHERE merchant_id = $1`

	s, err := scanMerchantStore(r.pool.QueryRow(ctx, query, merchantID))
	if err != nil {
		return nil, fmt.Errorf("get merchant store by merchant: %w", err)
	}
	return s, nil
}

// GetByStoreID fetches a store by its processor-side id. Webhook
// verification uses this to find the signing secret.
func (r *MerchantStoreRepo) GetByStoreID(ctx context.Context, storeID string) (*domain.MerchantStore, error) {
	query := `SELECT ` + merchantStoreColumns + ` FROM merchant_stores WHERE store_id = $1`

	s, err := scanMerchantStore(r.pool.QueryRow(ctx, query, storeID))
	if err != nil {
		return nil, fmt.Errorf("get merchant store by store id: %w", err)
	}
	return s, nil
}

// UpdateXpub stores the sealed watch-only key for the merchant's store.
func (r *MerchantStoreRepo) UpdateXpub(ctx context.Context, merchantID uuid.UUID, xpubEnc string) error {
	query := `UPDATE merchant_stores SET xpub_enc = $1, updated_at = NOW() WHERE merchant_id = $2`

	tag, err := r.pool.Exec(ctx, query, xpubEnc, merchantID)
	if err != nil {
		return fmt.Errorf("update store xpub: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("merchant store not found: %s", merchantID)
	}
	return nil
}

func scanMerchantStore(row pgx.Row) (*domain.MerchantStore, error) {
	s := &domain.MerchantStore{}
	err := row.Scan(
		&s.ID, &s.MerchantID, &s.StoreID, &s.WebhookID,
		&s.WebhookSecretEnc, &s.XpubEnc, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}
