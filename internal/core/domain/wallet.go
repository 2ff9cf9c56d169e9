package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletKey is a watch-only extended public key in its canonical encoding.
// Private key material never reaches this type.
type WalletKey struct {
	Canonical  string `json:"canonical"`
	Original   string `json:"-"`
	Ciphertext string `json:"-"` // base64(nonce ‖ ciphertext+tag)
}

// TransferRequest asks the processor to spend from the store's hot wallet.
// A nil Amount sweeps the whole balance.
type TransferRequest struct {
	MerchantID  uuid.UUID
	Destination string
	Amount      *decimal.Decimal
	FeeRate     *decimal.Decimal // sat/vB, required
	SubtractFee bool
}
