package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"btc-payment-core/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// InvoiceRepo implements ports.InvoiceRepository. Rows are snapshots; the
// processor stays the source of truth.
type InvoiceRepo struct {
	pool Pool
}

// NewInvoiceRepo creates a new InvoiceRepo.
func NewInvoiceRepo(pool Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

// terminalStatuses lists the statuses an invoice never leaves.
const terminalStatuses = `('Settled', 'Expired', 'Invalid')`

// Upsert inserts the invoice or refreshes the mutable fields of an existing
// row. A row already in a terminal status is left as it is.
func (r *InvoiceRepo) Upsert(ctx context.Context, inv *domain.Invoice) error {
	methods, err := json.Marshal(inv.PaymentMethods)
	if err != nil {
		return fmt.Errorf("encode payment methods: %w", err)
	}
	var metadata []byte
	if len(inv.Metadata) > 0 {
		metadata = inv.Metadata
	}

	query := `INSERT INTO invoices
		(id, merchant_id, store_id, amount, currency, status, payment_methods, checkout_link, metadata, created_at, expires_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			payment_methods = EXCLUDED.payment_methods,
			checkout_link = EXCLUDED.checkout_link,
			expires_at = EXCLUDED.expires_at,
			updated_at = NOW()
		WHERE invoices.status NOT IN ` + terminalStatuses

	_, err = r.pool.Exec(ctx, query,
		inv.ID, inv.MerchantID, inv.StoreID, inv.Amount.String(), inv.Currency,
		string(inv.Status), methods, inv.CheckoutLink, metadata,
		inv.CreatedAt, inv.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("upsert invoice: %w", err)
	}
	return nil
}

// UpdateStatus sets the status of a known invoice. An invoice never
// snapshotted here, or one already terminal, is left alone without error.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus) error {
	query := `UPDATE invoices SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status NOT IN ` + terminalStatuses

	if _, err := r.pool.Exec(ctx, query, string(status), invoiceID); err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	return nil
}

// GetByID fetches a snapshot by processor invoice id.
func (r *InvoiceRepo) GetByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT id, merchant_id, store_id, amount::text, currency, status, payment_methods,
			checkout_link, metadata, created_at, expires_at
		FROM invoices WHERE id = $1`

	var (
		inv      domain.Invoice
		amount   string
		status   string
		methods  []byte
		metadata []byte
	)
	err := r.pool.QueryRow(ctx, query, invoiceID).Scan(
		&inv.ID, &inv.MerchantID, &inv.StoreID, &amount, &inv.Currency, &status,
		&methods, &inv.CheckoutLink, &metadata, &inv.CreatedAt, &inv.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by id: %w", err)
	}

	if inv.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("decode invoice amount: %w", err)
	}
	if inv.Status, err = domain.ParseInvoiceStatus(status); err != nil {
		return nil, fmt.Errorf("decode invoice status: %w", err)
	}
	if len(methods) > 0 {
		if err := json.Unmarshal(methods, &inv.PaymentMethods); err != nil {
			return nil, fmt.Errorf("decode payment methods: %w", err)
		}
	}
	if len(metadata) > 0 {
		inv.Metadata = metadata
	}
	return &inv, nil
}
