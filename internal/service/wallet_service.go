package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"btc-payment-core/internal/core/domain"
	"btc-payment-core/internal/core/ports"
	"btc-payment-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const onChainBTC = "payment-methods/onchain/BTC"

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	stores     ports.MerchantStoreRepository
	creds      ports.CredentialSource
	gateways   ports.GatewayFactory
	encSvc     ports.EncryptionService
	webhookURL string
	log        zerolog.Logger
}

// NewWalletService creates the wallet/store provisioning service.
// webhookURL is the public address the processor posts events to.
func NewWalletService(
	stores ports.MerchantStoreRepository,
	creds ports.CredentialSource,
	gateways ports.GatewayFactory,
	encSvc ports.EncryptionService,
	webhookURL string,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		stores:     stores,
		creds:      creds,
		gateways:   gateways,
		encSvc:     encSvc,
		webhookURL: webhookURL,
		log:        log,
	}
}

type storeResponse struct {
	ID string `json:"id"`
}

type webhookResponse struct {
	ID     string `json:"id"`
	Secret string `json:"secret"`
}

// generateResponse deliberately has no mnemonic field.
type generateResponse struct {
	DerivationScheme string `json:"derivationScheme"`
}

// SetupStore creates the merchant's processor store and registers the
// webhook. A merchant that already has a store gets it back unchanged, apart
// from linking xpub when none is on file yet.
func (s *WalletServiceImpl) SetupStore(ctx context.Context, req ports.StoreSetupRequest) (*domain.MerchantStore, error) {
	var canonical string
	if req.Xpub != "" {
		c, err := NormalizeXpub(req.Xpub)
		if err != nil {
			return nil, err
		}
		canonical = c
	}

	existing, err := s.stores.GetByMerchantID(ctx, req.MerchantID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if existing != nil {
		if canonical != "" && !existing.HasWallet() {
			if _, err := s.link(ctx, existing, req.Xpub, canonical); err != nil {
				return nil, err
			}
		}
		return existing, nil
	}

	if req.Name == "" {
		return nil, apperror.Validation("store name is required")
	}
	if s.webhookURL == "" {
		return nil, apperror.ErrConfiguration("Webhook URL is not configured")
	}

	client, err := processorClient(ctx, s.creds, s.gateways, req.MerchantID)
	if err != nil {
		return nil, err
	}

	raw, err := client.Post(ctx, "/api/v1/stores", map[string]any{"name": req.Name})
	if err != nil {
		return nil, err
	}
	var created storeResponse
	if err := json.Unmarshal(raw, &created); err != nil || created.ID == "" {
		return nil, apperror.ErrUpstreamRejected(fmt.Errorf("store response without id"))
	}

	raw, err = client.Post(ctx, storePath(created.ID, "webhooks"), map[string]any{
		"url":                 s.webhookURL,
		"enabled":             true,
		"automaticRedelivery": true,
		"authorizedEvents":    map[string]any{"everything": true},
	})
	if err != nil {
		return nil, err
	}
	var hook webhookResponse
	if err := json.Unmarshal(raw, &hook); err != nil || hook.Secret == "" {
		return nil, apperror.ErrUpstreamRejected(fmt.Errorf("webhook response without secret"))
	}

	secretEnc, err := s.encSvc.Encrypt(hook.Secret)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(err)
	}

	now := time.Now()
	store := &domain.MerchantStore{
		ID:               uuid.New(),
		MerchantID:       req.MerchantID,
		StoreID:          created.ID,
		WebhookID:        hook.ID,
		WebhookSecretEnc: secretEnc,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, apperror.ErrPersistence(err)
	}

	s.log.Info().
		Str("merchant_id", req.MerchantID.String()).
		Str("store_id", store.StoreID).
		Msg("processor store created")

	if canonical != "" {
		if _, err := s.link(ctx, store, req.Xpub, canonical); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// LinkWallet normalizes xpub and sets it as the store's on-chain wallet.
func (s *WalletServiceImpl) LinkWallet(ctx context.Context, merchantID uuid.UUID, xpub string) (*domain.WalletKey, error) {
	canonical, err := NormalizeXpub(xpub)
	if err != nil {
		return nil, err
	}
	store, err := s.requireStore(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	return s.link(ctx, store, xpub, canonical)
}

func (s *WalletServiceImpl) link(ctx context.Context, store *domain.MerchantStore, original, canonical string) (*domain.WalletKey, error) {
	client, err := processorClient(ctx, s.creds, s.gateways, store.MerchantID)
	if err != nil {
		return nil, err
	}
	if _, err := client.Put(ctx, storePath(store.StoreID, onChainBTC), map[string]any{
		"enabled":          true,
		"derivationScheme": canonical,
	}); err != nil {
		return nil, err
	}
	return s.persistKey(ctx, store, original, canonical)
}

func (s *WalletServiceImpl) persistKey(ctx context.Context, store *domain.MerchantStore, original, canonical string) (*domain.WalletKey, error) {
	ciphertext, err := s.encSvc.Encrypt(canonical)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(err)
	}
	if err := s.stores.UpdateXpub(ctx, store.MerchantID, ciphertext); err != nil {
		return nil, apperror.ErrPersistence(err)
	}
	store.XpubEnc = &ciphertext

	s.log.Info().
		Str("merchant_id", store.MerchantID.String()).
		Str("store_id", store.StoreID).
		Msg("watch-only wallet linked")

	return &domain.WalletKey{Canonical: canonical, Original: original, Ciphertext: ciphertext}, nil
}

// Generate asks the processor to create a hot wallet for the store and keeps
// only its public derivation scheme. A merchant that already has a key gets
// that key back.
func (s *WalletServiceImpl) Generate(ctx context.Context, merchantID uuid.UUID) (*domain.WalletKey, error) {
	store, err := s.requireStore(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if store.HasWallet() {
		canonical, err := s.encSvc.Decrypt(*store.XpubEnc)
		if err != nil {
			return nil, apperror.ErrEncryptionFailure(err)
		}
		return &domain.WalletKey{Canonical: canonical, Original: canonical, Ciphertext: *store.XpubEnc}, nil
	}

	client, err := processorClient(ctx, s.creds, s.gateways, merchantID)
	if err != nil {
		return nil, err
	}
	raw, err := client.Post(ctx, storePath(store.StoreID, onChainBTC, "generate"), map[string]any{
		"wordCount":        12,
		"scriptPubKeyType": "Segwit",
		"savePrivateKeys":  false,
		"importKeysToRPC":  false,
	})
	if err != nil {
		return nil, err
	}

	var gen generateResponse
	if err := json.Unmarshal(raw, &gen); err != nil || gen.DerivationScheme == "" {
		return nil, apperror.ErrUpstreamRejected(fmt.Errorf("generate response without derivation scheme"))
	}
	original := derivationKey(gen.DerivationScheme)
	canonical, err := NormalizeXpub(original)
	if err != nil {
		return nil, err
	}
	return s.persistKey(ctx, store, original, canonical)
}

type transferDestination struct {
	Destination        string           `json:"destination"`
	Amount             *decimal.Decimal `json:"amount,omitempty"`
	SubtractFromAmount bool             `json:"subtractFromAmount"`
}

type transferRequest struct {
	Destinations         []transferDestination `json:"destinations"`
	FeeRate              json.Number           `json:"feerate"`
	ProceedWithBroadcast bool                  `json:"proceedWithBroadcast"`
}

// SendFunds asks the processor to pay out from the store wallet. Signing and
// broadcast happen on the processor. The transaction record is returned as-is.
func (s *WalletServiceImpl) SendFunds(ctx context.Context, req domain.TransferRequest) (json.RawMessage, error) {
	if req.Destination == "" {
		return nil, apperror.Validation("destination is required")
	}
	if req.FeeRate == nil {
		return nil, apperror.Validation("feeRate is required")
	}
	if !req.FeeRate.IsPositive() {
		return nil, apperror.Validation("feeRate must be positive")
	}
	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, apperror.Validation("amount must be positive")
	}

	store, err := s.requireStore(ctx, req.MerchantID)
	if err != nil {
		return nil, err
	}
	client, err := processorClient(ctx, s.creds, s.gateways, req.MerchantID)
	if err != nil {
		return nil, err
	}

	raw, err := client.Post(ctx, storePath(store.StoreID, onChainBTC, "wallet", "transactions"), transferRequest{
		Destinations: []transferDestination{{
			Destination:        req.Destination,
			Amount:             req.Amount,
			SubtractFromAmount: req.SubtractFee,
		}},
		FeeRate:              json.Number(req.FeeRate.String()),
		ProceedWithBroadcast: true,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("merchant_id", req.MerchantID.String()).
		Bool("sweep", req.Amount == nil).
		Msg("payout requested")
	return raw, nil
}

func (s *WalletServiceImpl) requireStore(ctx context.Context, merchantID uuid.UUID) (*domain.MerchantStore, error) {
	store, err := s.stores.GetByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if store == nil {
		return nil, apperror.ErrNotFound("store")
	}
	return store, nil
}
