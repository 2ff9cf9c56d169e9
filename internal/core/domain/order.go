package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Inventory errors returned by the stock adapter.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// OrderKind distinguishes how an order is paid.
type OrderKind string

const (
	OrderKindCash   OrderKind = "CASH"
	OrderKindCrypto OrderKind = "CRYPTO"
)

// OrderStatus is monotonic: PENDING moves to exactly one terminal state.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsTerminal returns true if the status can no longer change.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusConfirmed, OrderStatusCancelled:
		return true
	case OrderStatusPending:
		return false
	}
	return false
}

// LineItem is one product line of an order.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Subtotal returns quantity × unit price.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is a cash or crypto sale. Version is bumped on every status write and
// guards the compare-and-swap transition.
type Order struct {
	ID         uuid.UUID   `json:"id"`
	MerchantID uuid.UUID   `json:"merchant_id"`
	Kind       OrderKind   `json:"kind"`
	Items      []LineItem  `json:"items"`
	Status     OrderStatus `json:"status"`
	Version    int64       `json:"version"`
	InvoiceID  *string     `json:"invoice_id,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// IsTerminal returns true if the order is in a final state.
func (o *Order) IsTerminal() bool {
	return o.Status.IsTerminal()
}

// Total sums the line items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ItemResult reports the stock effect for one line item.
type ItemResult struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Applied   bool   `json:"applied"`
	Error     string `json:"error,omitempty"`
}

// ReconcileResult is the outcome of a status transition. Applied is false
// when the order was already terminal and nothing was done.
type ReconcileResult struct {
	Order   *Order       `json:"order"`
	Applied bool         `json:"applied"`
	Items   []ItemResult `json:"items,omitempty"`
}

// FailedItems counts line items whose stock effect could not be applied.
func (r *ReconcileResult) FailedItems() int {
	n := 0
	for _, it := range r.Items {
		if !it.Applied {
			n++
		}
	}
	return n
}

// Partial reports a mix of applied and failed items.
func (r *ReconcileResult) Partial() bool {
	failed := r.FailedItems()
	return failed > 0 && failed < len(r.Items)
}

// AllFailed reports that no line item could be applied.
func (r *ReconcileResult) AllFailed() bool {
	return len(r.Items) > 0 && r.FailedItems() == len(r.Items)
}
