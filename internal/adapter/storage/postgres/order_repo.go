package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"btc-payment-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, merchant_id, kind, items, status, version, invoice_id, created_at, updated_at`

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create inserts a new order within a transaction.
func (r *OrderRepo) Create(ctx context.Context, tx pgx.Tx, o *domain.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	query := `INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = tx.Exec(ctx, query,
		o.ID, o.MerchantID, string(o.Kind), items, string(o.Status),
		o.Version, o.InvoiceID, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID fetches an order by its UUID.
func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	o, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return o, nil
}

// GetByInvoiceID fetches the order paid by a processor invoice.
func (r *OrderRepo) GetByInvoiceID(ctx context.Context, invoiceID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE invoice_id = $1`

	o, err := scanOrder(r.pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		return nil, fmt.Errorf("get order by invoice: %w", err)
	}
	return o, nil
}

// LinkInvoice records the invoice that pays an order.
func (r *OrderRepo) LinkInvoice(ctx context.Context, id uuid.UUID, invoiceID string) error {
	query := `UPDATE orders SET invoice_id = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, invoiceID, id)
	if err != nil {
		return fmt.Errorf("link order invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order not found: %s", id)
	}
	return nil
}

// TransitionStatus moves the order from one status to another only if the
// row still holds the expected status and version. It reports whether the
// row was written.
func (r *OrderRepo) TransitionStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, from domain.OrderStatus, version int64, to domain.OrderStatus) (bool, error) {
	query := `UPDATE orders SET status = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND status = $3 AND version = $4`

	tag, err := tx.Exec(ctx, query, string(to), id, string(from), version)
	if err != nil {
		return false, fmt.Errorf("transition order status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o            domain.Order
		kind, status string
		items        []byte
	)
	err := row.Scan(
		&o.ID, &o.MerchantID, &kind, &items, &status,
		&o.Version, &o.InvoiceID, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	o.Kind = domain.OrderKind(kind)
	o.Status = domain.OrderStatus(status)
	return &o, nil
}
