package postgres

import (
	"context"
	"errors"
	"fmt"

	"btc-payment-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProfileRepo reads processor settings from merchant_profiles. The profile
// store is owned by the merchant admin surface; this service only reads it.
type ProfileRepo struct {
	pool Pool
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(pool Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// GetProfile returns nil, nil for a merchant without a profile row.
func (r *ProfileRepo) GetProfile(ctx context.Context, merchantID uuid.UUID) (*domain.MerchantProfile, error) {
	query := `SELECT merchant_id, COALESCE(processor_url, ''), COALESCE(api_key_enc, '')
		FROM merchant_profiles WHERE merchant_id = $1`

	p := &domain.MerchantProfile{}
	err := r.pool.QueryRow(ctx, query, merchantID).Scan(&p.MerchantID, &p.ProcessorURL, &p.APIKeyEnc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant profile: %w", err)
	}
	return p, nil
}
