package service

import (
	"context"
	"errors"
	"time"

	"btc-payment-core/internal/core/domain"
	"btc-payment-core/internal/core/ports"
	"btc-payment-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderServiceImpl implements ports.OrderService. Stock is decremented once,
// when the order is created, for cash and crypto orders alike; confirmation
// never touches stock and cancellation restores it through the reconciler.
type OrderServiceImpl struct {
	orders     ports.OrderRepository
	inventory  ports.InventoryStore
	transactor ports.DBTransactor
	invoices   ports.InvoiceService
	reconciler ports.Reconciler
	log        zerolog.Logger
}

// NewOrderService creates the checkout service.
func NewOrderService(
	orders ports.OrderRepository,
	inventory ports.InventoryStore,
	transactor ports.DBTransactor,
	invoices ports.InvoiceService,
	reconciler ports.Reconciler,
	log zerolog.Logger,
) *OrderServiceImpl {
	return &OrderServiceImpl{
		orders:     orders,
		inventory:  inventory,
		transactor: transactor,
		invoices:   invoices,
		reconciler: reconciler,
		log:        log,
	}
}

// CreateCashOrder records a counter sale and takes its items out of stock.
// Either every item is decremented or none is.
func (s *OrderServiceImpl) CreateCashOrder(ctx context.Context, merchantID uuid.UUID, items []domain.LineItem) (*domain.Order, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}
	order, err := s.place(ctx, merchantID, domain.OrderKindCash, items)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("merchant_id", merchantID.String()).
		Str("total", order.Total().String()).
		Msg("cash order created")
	return order, nil
}

// CreateCryptoOrder commits stock, opens an invoice for the order total and
// links the two. If the invoice cannot be opened the order is cancelled,
// which puts the stock back. An invoice that cannot be linked is archived.
func (s *OrderServiceImpl) CreateCryptoOrder(ctx context.Context, req ports.CryptoOrderRequest) (*ports.CryptoCheckout, error) {
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}
	if req.Currency == "" {
		return nil, apperror.Validation("currency is required")
	}

	order, err := s.place(ctx, req.MerchantID, domain.OrderKindCrypto, req.Items)
	if err != nil {
		return nil, err
	}

	inv, err := s.invoices.CreateInvoice(ctx, ports.InvoiceRequest{
		MerchantID: req.MerchantID,
		Amount:     order.Total().String(),
		Currency:   req.Currency,
		Metadata: map[string]any{
			"orderId": order.ID.String(),
			"items":   order.Items,
		},
		RedirectURL: req.RedirectURL,
	})
	if err != nil {
		s.abandon(ctx, order, err)
		return nil, err
	}

	if err := s.orders.LinkInvoice(ctx, order.ID, inv.ID); err != nil {
		// An unlinked invoice could still be paid without ever confirming
		// the order, so it is withdrawn before the stock goes back.
		if archErr := s.invoices.ArchiveInvoice(context.WithoutCancel(ctx), req.MerchantID, inv.ID); archErr != nil {
			s.log.Error().
				Err(archErr).
				Str("order_id", order.ID.String()).
				Str("invoice_id", inv.ID).
				Msg("failed to archive unlinked invoice")
		}
		s.abandon(ctx, order, err)
		return nil, apperror.ErrPersistence(err)
	}
	order.InvoiceID = &inv.ID

	checkout := &ports.CryptoCheckout{Order: order, Invoice: inv}
	if dest, err := s.invoices.ExtractPaymentDestination(inv); err == nil {
		checkout.Destination = dest
	} else {
		s.log.Warn().Err(err).Str("invoice_id", inv.ID).Msg("invoice has no payment destination yet")
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("invoice_id", inv.ID).
		Str("total", order.Total().String()).
		Msg("crypto order created")
	return checkout, nil
}

// ConfirmOrder confirms a cash order. Crypto orders are confirmed by their
// invoice settling.
func (s *OrderServiceImpl) ConfirmOrder(ctx context.Context, merchantID, orderID uuid.UUID) (*domain.ReconcileResult, error) {
	order, err := s.owned(ctx, merchantID, orderID)
	if err != nil {
		return nil, err
	}
	switch order.Kind {
	case domain.OrderKindCash:
		return s.reconciler.Confirm(ctx, order.ID)
	case domain.OrderKindCrypto:
		return nil, apperror.Validation("crypto orders are confirmed by invoice settlement")
	}
	return nil, apperror.Validation("unknown order kind")
}

// CancelOrder cancels one of the merchant's orders and restocks it.
func (s *OrderServiceImpl) CancelOrder(ctx context.Context, merchantID, orderID uuid.UUID) (*domain.ReconcileResult, error) {
	order, err := s.owned(ctx, merchantID, orderID)
	if err != nil {
		return nil, err
	}
	return s.reconciler.Cancel(ctx, order.ID)
}

func (s *OrderServiceImpl) place(ctx context.Context, merchantID uuid.UUID, kind domain.OrderKind, items []domain.LineItem) (*domain.Order, error) {
	now := time.Now()
	order := &domain.Order{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Kind:       kind,
		Items:      items,
		Status:     domain.OrderStatusPending,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.orders.Create(ctx, dbTx, order); err != nil {
		return nil, apperror.ErrPersistence(err)
	}
	for _, item := range items {
		if err := s.inventory.Decrement(ctx, dbTx, merchantID, item.ProductID, item.Quantity); err != nil {
			switch {
			case errors.Is(err, domain.ErrInsufficientStock):
				return nil, apperror.ErrInsufficientStock(item.ProductID)
			case errors.Is(err, domain.ErrProductNotFound):
				return nil, apperror.ErrNotFound("product " + item.ProductID)
			}
			return nil, apperror.ErrPersistence(err)
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrPersistence(err)
	}
	return order, nil
}

// abandon cancels an order whose checkout failed after stock was committed.
func (s *OrderServiceImpl) abandon(ctx context.Context, order *domain.Order, cause error) {
	if _, err := s.reconciler.Cancel(context.WithoutCancel(ctx), order.ID); err != nil {
		s.log.Error().
			Err(err).
			AnErr("cause", cause).
			Str("order_id", order.ID.String()).
			Msg("failed to cancel order after checkout failure")
		return
	}
	s.log.Warn().
		AnErr("cause", cause).
		Str("order_id", order.ID.String()).
		Msg("checkout failed, order cancelled")
}

func (s *OrderServiceImpl) owned(ctx context.Context, merchantID, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if order == nil || order.MerchantID != merchantID {
		return nil, apperror.ErrNotFound("order")
	}
	return order, nil
}

func validateItems(items []domain.LineItem) error {
	if len(items) == 0 {
		return apperror.Validation("at least one line item is required")
	}
	for _, item := range items {
		if item.ProductID == "" {
			return apperror.Validation("product_id is required")
		}
		if item.Quantity <= 0 {
			return apperror.Validation("quantity must be positive")
		}
		if item.UnitPrice.IsNegative() {
			return apperror.Validation("unit_price must not be negative")
		}
	}
	return nil
}
