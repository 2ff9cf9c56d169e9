package postgres

import (
	"context"
	"fmt"

	"btc-payment-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InventoryRepo implements ports.InventoryStore on the products table.
type InventoryRepo struct{}

// NewInventoryRepo creates a new InventoryRepo. Every method runs on the
// caller's transaction.
func NewInventoryRepo() *InventoryRepo {
	return &InventoryRepo{}
}

// Decrement takes qty units of the merchant's product out of stock. The guard
// in the WHERE clause keeps stock from going negative under concurrent
// checkouts.
func (r *InventoryRepo) Decrement(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, productID string, qty int) error {
	query := `UPDATE products SET stock = stock - $1, updated_at = NOW()
		WHERE id = $2 AND merchant_id = $3 AND stock >= $1`

	tag, err := tx.Exec(ctx, query, qty, productID, merchantID)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	exists, err := productExists(ctx, tx, merchantID, productID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrProductNotFound
	}
	return domain.ErrInsufficientStock
}

// Restock puts qty units back inside a savepoint, so a failure here rolls
// back only this item and the outer transaction stays usable.
func (r *InventoryRepo) Restock(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, productID string, qty int) error {
	sp, err := tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("restock savepoint: %w", err)
	}

	query := `UPDATE products SET stock = stock + $1, updated_at = NOW() WHERE id = $2 AND merchant_id = $3`
	tag, err := sp.Exec(ctx, query, qty, productID, merchantID)
	if err != nil {
		_ = sp.Rollback(ctx)
		return fmt.Errorf("restock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		_ = sp.Rollback(ctx)
		return domain.ErrProductNotFound
	}
	if err := sp.Commit(ctx); err != nil {
		return fmt.Errorf("release restock savepoint: %w", err)
	}
	return nil
}

func productExists(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, productID string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1 AND merchant_id = $2)`,
		productID, merchantID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product: %w", err)
	}
	return exists, nil
}
