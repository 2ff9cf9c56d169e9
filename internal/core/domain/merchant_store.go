package domain

import (
	"time"

	"github.com/google/uuid"
)

// MerchantStore links a merchant to its store on the payment processor.
// A merchant has at most one store.
type MerchantStore struct {
	ID               uuid.UUID `json:"id"`
	MerchantID       uuid.UUID `json:"merchant_id"`
	StoreID          string    `json:"store_id"`
	WebhookID        string    `json:"webhook_id,omitempty"`
	WebhookSecretEnc string    `json:"-"` // Encrypted, never expose or log
	XpubEnc          *string   `json:"-"` // Encrypted canonical xpub, nil until wallet setup
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HasWallet reports whether an extended public key has been linked.
func (s *MerchantStore) HasWallet() bool {
	return s.XpubEnc != nil && *s.XpubEnc != ""
}

// HasWebhookSecret reports whether events for this store can be verified.
func (s *MerchantStore) HasWebhookSecret() bool {
	return s.WebhookSecretEnc != ""
}

// ProcessorCredentials is what the profile store knows about how a merchant
// reaches the processor.
type ProcessorCredentials struct {
	MerchantID uuid.UUID
	BaseURL    string
	APIKey     string
}

// MerchantProfile is the slice of the profile store this service reads.
type MerchantProfile struct {
	MerchantID   uuid.UUID
	ProcessorURL string
	APIKeyEnc    string // Encrypted
}
