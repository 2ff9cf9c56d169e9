package ports

import (
	"context"

	"btc-payment-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MerchantStoreRepository persists the merchant → processor store mapping.
// Getters return nil, nil when nothing matches.
type MerchantStoreRepository interface {
	Create(ctx context.Context, store *domain.MerchantStore) error
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*domain.MerchantStore, error)
	GetByStoreID(ctx context.Context, storeID string) (*domain.MerchantStore, error)
	UpdateXpub(ctx context.Context, merchantID uuid.UUID, xpubEnc string) error
}

// ProfileRepository reads a merchant's processor settings from the profile store.
type ProfileRepository interface {
	GetProfile(ctx context.Context, merchantID uuid.UUID) (*domain.MerchantProfile, error)
}

// InvoiceRepository keeps local snapshots of processor invoices.
type InvoiceRepository interface {
	Upsert(ctx context.Context, invoice *domain.Invoice) error
	UpdateStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus) error
	GetByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
}

// OrderRepository defines persistence operations for orders.
// TransitionStatus is a compare-and-swap: it only writes when the row still
// has the expected status and version, and reports whether it did.
type OrderRepository interface {
	Create(ctx context.Context, tx pgx.Tx, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	GetByInvoiceID(ctx context.Context, invoiceID string) (*domain.Order, error)
	LinkInvoice(ctx context.Context, id uuid.UUID, invoiceID string) error
	TransitionStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, from domain.OrderStatus, version int64, to domain.OrderStatus) (bool, error)
}

// InventoryStore adjusts product stock. Products belong to one merchant; a
// product owned by someone else is reported as domain.ErrProductNotFound.
// Decrement fails with domain.ErrInsufficientStock or domain.ErrProductNotFound.
// Restock runs in its own savepoint so one failing item leaves the outer
// transaction usable.
type InventoryStore interface {
	Decrement(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, productID string, qty int) error
	Restock(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, productID string, qty int) error
}

// WebhookRepository records verified webhook deliveries.
type WebhookRepository interface {
	Create(ctx context.Context, log *domain.WebhookDeliveryLog) error
}

// AuditRepository defines persistence for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
