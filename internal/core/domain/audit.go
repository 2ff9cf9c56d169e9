package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionCashOrder    AuditAction = "CASH_ORDER"
	AuditActionCryptoOrder  AuditAction = "CRYPTO_ORDER"
	AuditActionCancelOrder  AuditAction = "CANCEL_ORDER"
	AuditActionConfirmOrder AuditAction = "CONFIRM_ORDER"
	AuditActionStoreSetup   AuditAction = "STORE_SETUP"
	AuditActionLinkWallet   AuditAction = "LINK_WALLET"
	AuditActionGenerateKey  AuditAction = "GENERATE_WALLET"
	AuditActionSendFunds    AuditAction = "SEND_FUNDS"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	MerchantID   *uuid.UUID  `json:"merchant_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
