package service

import (
	"context"
	"errors"

	"btc-payment-core/internal/core/domain"
	"btc-payment-core/internal/core/ports"
	"btc-payment-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// ReconcilerImpl implements ports.Reconciler. Each transition is a
// compare-and-swap on the order row (status + version); the stock effect is
// written in the same database transaction, so it lands at most once no
// matter how many deliveries race for it.
type ReconcilerImpl struct {
	orders     ports.OrderRepository
	inventory  ports.InventoryStore
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewReconciler creates a new order reconciler.
func NewReconciler(
	orders ports.OrderRepository,
	inventory ports.InventoryStore,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *ReconcilerImpl {
	return &ReconcilerImpl{
		orders:     orders,
		inventory:  inventory,
		transactor: transactor,
		log:        log,
	}
}

// Confirm moves a pending order to CONFIRMED. Stock is untouched; it was
// committed when the order was created.
func (r *ReconcilerImpl) Confirm(ctx context.Context, orderID uuid.UUID) (*domain.ReconcileResult, error) {
	order, err := r.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return r.transition(ctx, order, domain.OrderStatusConfirmed)
}

// Cancel moves a pending order to CANCELLED and restocks every line item.
func (r *ReconcilerImpl) Cancel(ctx context.Context, orderID uuid.UUID) (*domain.ReconcileResult, error) {
	order, err := r.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return r.transition(ctx, order, domain.OrderStatusCancelled)
}

// ConfirmByInvoice confirms the order linked to invoiceID.
func (r *ReconcilerImpl) ConfirmByInvoice(ctx context.Context, invoiceID string) (*domain.ReconcileResult, error) {
	order, err := r.orders.GetByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return r.transition(ctx, order, domain.OrderStatusConfirmed)
}

// CancelByInvoice cancels the order linked to invoiceID.
func (r *ReconcilerImpl) CancelByInvoice(ctx context.Context, invoiceID string) (*domain.ReconcileResult, error) {
	order, err := r.orders.GetByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return r.transition(ctx, order, domain.OrderStatusCancelled)
}

func (r *ReconcilerImpl) transition(ctx context.Context, order *domain.Order, to domain.OrderStatus) (*domain.ReconcileResult, error) {
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}

	switch order.Status {
	case domain.OrderStatusConfirmed, domain.OrderStatusCancelled:
		return &domain.ReconcileResult{Order: order, Applied: false}, nil
	case domain.OrderStatusPending:
	default:
		return nil, apperror.InternalError(errors.New("order has unknown status " + string(order.Status)))
	}

	tx, err := r.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	swapped, err := r.orders.TransitionStatus(ctx, tx, order.ID, domain.OrderStatusPending, order.Version, to)
	if err != nil {
		return nil, apperror.ErrPersistence(err)
	}
	if !swapped {
		// Another delivery won the race; its effect is the only one.
		r.log.Debug().
			Str("order_id", order.ID.String()).
			Str("target", string(to)).
			Msg("order transition lost compare-and-swap, skipping")
		return &domain.ReconcileResult{Order: r.reload(ctx, order), Applied: false}, nil
	}

	result := &domain.ReconcileResult{Order: order, Applied: true}
	if to == domain.OrderStatusCancelled {
		result.Items = r.restock(ctx, tx, order)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrPersistence(err)
	}
	order.Status = to
	order.Version++

	evt := r.log.Info().
		Str("order_id", order.ID.String()).
		Str("status", string(to))
	if len(result.Items) > 0 {
		evt = evt.Int("items", len(result.Items)).Int("failed_items", result.FailedItems())
	}
	evt.Msg("order reconciled")

	if result.AllFailed() {
		return result, apperror.ErrRestockFailed()
	}
	return result, nil
}

// restock adds every line item back. One item failing does not stop the rest.
func (r *ReconcilerImpl) restock(ctx context.Context, tx pgx.Tx, order *domain.Order) []domain.ItemResult {
	items := make([]domain.ItemResult, 0, len(order.Items))
	for _, item := range order.Items {
		res := domain.ItemResult{ProductID: item.ProductID, Quantity: item.Quantity, Applied: true}
		if err := r.inventory.Restock(ctx, tx, order.MerchantID, item.ProductID, item.Quantity); err != nil {
			res.Applied = false
			res.Error = itemError(err)
			r.log.Warn().
				Err(err).
				Str("order_id", order.ID.String()).
				Str("product_id", item.ProductID).
				Msg("restock failed for line item")
		}
		items = append(items, res)
	}
	return items
}

func (r *ReconcilerImpl) reload(ctx context.Context, order *domain.Order) *domain.Order {
	fresh, err := r.orders.GetByID(ctx, order.ID)
	if err != nil || fresh == nil {
		return order
	}
	return fresh
}

func itemError(err error) string {
	if errors.Is(err, domain.ErrProductNotFound) {
		return "product not found"
	}
	return "restock failed"
}
