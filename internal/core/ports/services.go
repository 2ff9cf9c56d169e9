package ports

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"btc-payment-core/internal/core/domain"

	"github.com/google/uuid"
)

// EncryptionService seals small secrets at rest.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles webhook HMAC-SHA256 signatures.
type SignatureService interface {
	Sign(secret string, payload []byte) string
	Verify(secret string, payload []byte, header string) bool
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(merchantID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	MerchantID uuid.UUID
}

// DeliveryDeduper remembers webhook deliveries already handled.
type DeliveryDeduper interface {
	// Claim returns true if the key was not seen before and is now held.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release forgets a key so a redelivery can be processed again.
	Release(ctx context.Context, key string) error
}

// InvoiceCache holds terminal invoice snapshots. Get returns nil, nil on miss.
type InvoiceCache interface {
	Get(ctx context.Context, merchantID uuid.UUID, invoiceID string) (*domain.Invoice, error)
	Set(ctx context.Context, merchantID uuid.UUID, invoice *domain.Invoice, ttl time.Duration) error
}

// --- Processor egress ---

// GatewayClient is the only way out to the payment processor. Each method
// returns the parsed JSON body on 2xx.
type GatewayClient interface {
	Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, path string, body any, query url.Values) (json.RawMessage, error)
}

// GatewayFactory builds a client scoped to one merchant's credentials.
// It fails with a configuration error before any network activity when the
// credentials are incomplete.
type GatewayFactory interface {
	ForMerchant(creds domain.ProcessorCredentials) (GatewayClient, error)
}

// CredentialSource resolves a merchant's processor credentials.
type CredentialSource interface {
	Credentials(ctx context.Context, merchantID uuid.UUID) (domain.ProcessorCredentials, error)
}

// --- Service Ports (Business Logic) ---

// WalletService provisions stores and watch-only keys.
type WalletService interface {
	SetupStore(ctx context.Context, req StoreSetupRequest) (*domain.MerchantStore, error)
	LinkWallet(ctx context.Context, merchantID uuid.UUID, xpub string) (*domain.WalletKey, error)
	Generate(ctx context.Context, merchantID uuid.UUID) (*domain.WalletKey, error)
	SendFunds(ctx context.Context, req domain.TransferRequest) (json.RawMessage, error)
}

// StoreSetupRequest holds input for creating a merchant's processor store.
type StoreSetupRequest struct {
	MerchantID uuid.UUID
	Name       string
	Xpub       string // optional
}

// InvoiceService covers the invoice lifecycle on the processor.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, req InvoiceRequest) (*domain.Invoice, error)
	GetStatus(ctx context.Context, merchantID uuid.UUID, invoiceID string) (*domain.Invoice, error)
	ExtractPaymentDestination(invoice *domain.Invoice) (domain.PaymentDestination, error)
	ConfirmCryptoOrder(ctx context.Context, merchantID uuid.UUID, invoiceID string) (*domain.ReconcileResult, error)
	RecordStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus) error
	// ArchiveInvoice withdraws an invoice on the processor so it can no
	// longer be paid.
	ArchiveInvoice(ctx context.Context, merchantID uuid.UUID, invoiceID string) error
}

// InvoiceRequest holds validated input for invoice creation.
type InvoiceRequest struct {
	MerchantID  uuid.UUID
	Amount      string
	Currency    string
	Metadata    map[string]any
	RedirectURL string
}

// Reconciler applies terminal outcomes to orders exactly once.
type Reconciler interface {
	Confirm(ctx context.Context, orderID uuid.UUID) (*domain.ReconcileResult, error)
	Cancel(ctx context.Context, orderID uuid.UUID) (*domain.ReconcileResult, error)
	ConfirmByInvoice(ctx context.Context, invoiceID string) (*domain.ReconcileResult, error)
	CancelByInvoice(ctx context.Context, invoiceID string) (*domain.ReconcileResult, error)
}

// OrderService handles checkout.
type OrderService interface {
	CreateCashOrder(ctx context.Context, merchantID uuid.UUID, items []domain.LineItem) (*domain.Order, error)
	CreateCryptoOrder(ctx context.Context, req CryptoOrderRequest) (*CryptoCheckout, error)
	ConfirmOrder(ctx context.Context, merchantID, orderID uuid.UUID) (*domain.ReconcileResult, error)
	CancelOrder(ctx context.Context, merchantID, orderID uuid.UUID) (*domain.ReconcileResult, error)
}

// CryptoOrderRequest holds validated input for a crypto checkout.
type CryptoOrderRequest struct {
	MerchantID  uuid.UUID
	Items       []domain.LineItem
	Currency    string
	RedirectURL string
}

// CryptoCheckout is what the payer needs to pay a crypto order.
type CryptoCheckout struct {
	Order       *domain.Order             `json:"order"`
	Invoice     *domain.Invoice           `json:"invoice"`
	Destination domain.PaymentDestination `json:"destination"`
}

// WebhookService verifies and dispatches processor notifications.
type WebhookService interface {
	HandleWebhook(ctx context.Context, body []byte, signature string) error
}

// AuditService records audited actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
