package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the processor-reported lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusNew        InvoiceStatus = "New"
	InvoiceStatusProcessing InvoiceStatus = "Processing"
	InvoiceStatusSettled    InvoiceStatus = "Settled"
	InvoiceStatusExpired    InvoiceStatus = "Expired"
	InvoiceStatusInvalid    InvoiceStatus = "Invalid"
)

// ParseInvoiceStatus maps a processor status string onto the closed set of
// known statuses. Unknown values are an error rather than a silent default.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch InvoiceStatus(s) {
	case InvoiceStatusNew, InvoiceStatusProcessing, InvoiceStatusSettled,
		InvoiceStatusExpired, InvoiceStatusInvalid:
		return InvoiceStatus(s), nil
	}
	return "", fmt.Errorf("unknown invoice status %q", s)
}

// IsTerminal returns true once the processor will no longer change the status.
func (s InvoiceStatus) IsTerminal() bool {
	switch s {
	case InvoiceStatusSettled, InvoiceStatusExpired, InvoiceStatusInvalid:
		return true
	case InvoiceStatusNew, InvoiceStatusProcessing:
		return false
	}
	return false
}

// UnmarshalJSON rejects statuses outside the known set.
func (s *InvoiceStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParseInvoiceStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// PaymentMethod is one way of paying an invoice.
type PaymentMethod struct {
	PaymentMethodID string `json:"paymentMethodId"`
	Destination     string `json:"destination"`
	Amount          string `json:"amount"`
	PaymentLink     string `json:"paymentLink,omitempty"`
}

// IsOnChain reports whether the method pays to a Bitcoin on-chain address.
func (m PaymentMethod) IsOnChain() bool {
	switch strings.ToUpper(m.PaymentMethodID) {
	case "BTC", "BTC-CHAIN", "BTC-ONCHAIN", "BTC_ONCHAIN":
		return true
	}
	return false
}

// Invoice is a processor-tracked payment request.
type Invoice struct {
	ID             string          `json:"id"`
	MerchantID     uuid.UUID       `json:"merchant_id"`
	StoreID        string          `json:"store_id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Status         InvoiceStatus   `json:"status"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
	CheckoutLink   string          `json:"checkout_link"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	ExpiresAt      time.Time       `json:"expires_at"`
}

// IsTerminal returns true if the invoice is in a final state.
func (i *Invoice) IsTerminal() bool {
	return i.Status.IsTerminal()
}

// PaymentDestination is what a payer is shown: either an on-chain address
// with an amount, or a link to follow.
type PaymentDestination struct {
	Destination string `json:"destination,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Link        string `json:"link,omitempty"`
}

// IsOnChain reports whether the destination is a raw address.
func (d PaymentDestination) IsOnChain() bool {
	return d.Destination != ""
}
