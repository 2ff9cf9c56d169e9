package dto

import (
	"btc-payment-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one product line of a checkout.
type LineItemRequest struct {
	ProductID string `json:"product_id" binding:"required,max=64,safe_id"`
	Quantity  int    `json:"quantity" binding:"required,gt=0,lte=10000"`
	UnitPrice string `json:"unit_price" binding:"required,positive_decimal"`
}

// CashOrderRequest is the request body for a cash sale.
type CashOrderRequest struct {
	Items []LineItemRequest `json:"items" binding:"required,min=1,max=100,dive"`
}

// CryptoOrderRequest is the request body for a checkout paid through an invoice.
type CryptoOrderRequest struct {
	Items       []LineItemRequest `json:"items" binding:"required,min=1,max=100,dive"`
	Currency    string            `json:"currency" binding:"required,min=3,max=5,alphanum"`
	RedirectURL string            `json:"redirect_url,omitempty" binding:"omitempty,max=2048,safe_url"`
}

// StoreSetupRequest is the request body for provisioning a processor store.
type StoreSetupRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Xpub string `json:"xpub,omitempty" binding:"omitempty,max=200,alphanum"`
}

// LinkWalletRequest is the request body for linking a watch-only key.
type LinkWalletRequest struct {
	Xpub string `json:"xpub" binding:"required,max=200,alphanum"`
}

// SendFundsRequest is the request body for a hot-wallet payout. An empty
// amount sweeps the balance.
type SendFundsRequest struct {
	Destination string `json:"destination" binding:"required,max=100,alphanum"`
	Amount      string `json:"amount,omitempty" binding:"omitempty,positive_decimal"`
	FeeRate     string `json:"fee_rate" binding:"required,positive_decimal"`
	SubtractFee bool   `json:"subtract_fee"`
}

// InvoiceResponse is an invoice together with where to pay it.
type InvoiceResponse struct {
	Invoice     *domain.Invoice           `json:"invoice"`
	Destination domain.PaymentDestination `json:"destination"`
}

// WalletKeyResponse exposes only the canonical public key.
type WalletKeyResponse struct {
	Xpub string `json:"xpub"`
}

// ToLineItems converts validated request lines into domain line items.
func ToLineItems(in []LineItemRequest) ([]domain.LineItem, error) {
	items := make([]domain.LineItem, 0, len(in))
	for _, it := range in {
		price, err := decimal.NewFromString(it.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, domain.LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: price,
		})
	}
	return items, nil
}

// ToTransfer converts a payout request for the given merchant.
func (r SendFundsRequest) ToTransfer(merchantID uuid.UUID) (domain.TransferRequest, error) {
	out := domain.TransferRequest{
		MerchantID:  merchantID,
		Destination: r.Destination,
		SubtractFee: r.SubtractFee,
	}

	fee, err := decimal.NewFromString(r.FeeRate)
	if err != nil {
		return out, err
	}
	out.FeeRate = &fee

	if r.Amount != "" {
		amount, err := decimal.NewFromString(r.Amount)
		if err != nil {
			return out, err
		}
		out.Amount = &amount
	}
	return out, nil
}
