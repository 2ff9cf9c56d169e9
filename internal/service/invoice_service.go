package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"btc-payment-core/internal/core/domain"
	"btc-payment-core/internal/core/ports"
	"btc-payment-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// terminalInvoiceTTL bounds how long a settled/expired/invalid snapshot is
// served from cache.
const terminalInvoiceTTL = 24 * time.Hour

// InvoiceServiceImpl implements ports.InvoiceService.
type InvoiceServiceImpl struct {
	stores     ports.MerchantStoreRepository
	invoices   ports.InvoiceRepository
	cache      ports.InvoiceCache // nil = no caching
	creds      ports.CredentialSource
	gateways   ports.GatewayFactory
	reconciler ports.Reconciler
	log        zerolog.Logger
}

// NewInvoiceService creates the invoice lifecycle service.
func NewInvoiceService(
	stores ports.MerchantStoreRepository,
	invoices ports.InvoiceRepository,
	cache ports.InvoiceCache,
	creds ports.CredentialSource,
	gateways ports.GatewayFactory,
	reconciler ports.Reconciler,
	log zerolog.Logger,
) *InvoiceServiceImpl {
	return &InvoiceServiceImpl{
		stores:     stores,
		invoices:   invoices,
		cache:      cache,
		creds:      creds,
		gateways:   gateways,
		reconciler: reconciler,
		log:        log,
	}
}

// invoiceResponse is the processor's invoice representation.
type invoiceResponse struct {
	ID             string               `json:"id"`
	StoreID        string               `json:"storeId"`
	Amount         decimal.Decimal      `json:"amount"`
	Currency       string               `json:"currency"`
	Status         domain.InvoiceStatus `json:"status"`
	CheckoutLink   string               `json:"checkoutLink"`
	Metadata       json.RawMessage      `json:"metadata"`
	CreatedTime    int64                `json:"createdTime"`
	ExpirationTime int64                `json:"expirationTime"`
}

// paymentMethodResponse covers both the older ("paymentMethod") and newer
// ("paymentMethodId") processor field names.
type paymentMethodResponse struct {
	PaymentMethodID string `json:"paymentMethodId"`
	PaymentMethod   string `json:"paymentMethod"`
	Destination     string `json:"destination"`
	Amount          string `json:"amount"`
	Due             string `json:"due"`
	PaymentLink     string `json:"paymentLink"`
}

func (p paymentMethodResponse) toDomain() domain.PaymentMethod {
	id := p.PaymentMethodID
	if id == "" {
		id = p.PaymentMethod
	}
	amount := p.Amount
	if amount == "" {
		amount = p.Due
	}
	return domain.PaymentMethod{
		PaymentMethodID: id,
		Destination:     p.Destination,
		Amount:          amount,
		PaymentLink:     p.PaymentLink,
	}
}

// CreateInvoice opens an invoice on the merchant's store and returns it with
// whatever payment methods the processor already offers.
func (s *InvoiceServiceImpl) CreateInvoice(ctx context.Context, req ports.InvoiceRequest) (*domain.Invoice, error) {
	if strings.TrimSpace(req.Amount) == "" {
		return nil, apperror.Validation("amount is required")
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		return nil, apperror.Validation("currency is required")
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		return nil, apperror.Validation("amount must be a decimal number")
	}
	if !amount.IsPositive() {
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

	body := map[string]any{
		"amount":   amount.String(),
		"currency": currency,
	}
	if req.Metadata != nil {
		body["metadata"] = req.Metadata
	}
	if req.RedirectURL != "" {
		body["checkout"] = map[string]any{"redirectURL": req.RedirectURL}
	}

	raw, err := client.Post(ctx, storePath(store.StoreID, "invoices"), body)
	if err != nil {
		return nil, err
	}
	inv, err := decodeInvoice(raw, req.MerchantID, store.StoreID)
	if err != nil {
		return nil, err
	}
	inv.PaymentMethods = s.fetchPaymentMethods(ctx, client, store.StoreID, inv.ID)

	if err := s.invoices.Upsert(ctx, inv); err != nil {
		return nil, apperror.ErrPersistence(err)
	}

	s.log.Info().
		Str("merchant_id", req.MerchantID.String()).
		Str("invoice_id", inv.ID).
		Str("amount", inv.Amount.String()).
		Str("currency", inv.Currency).
		Msg("invoice created")
	return inv, nil
}

// GetStatus polls the processor for the invoice. It never changes orders.
func (s *InvoiceServiceImpl) GetStatus(ctx context.Context, merchantID uuid.UUID, invoiceID string) (*domain.Invoice, error) {
	if invoiceID == "" {
		return nil, apperror.Validation("invoice id is required")
	}
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, merchantID, invoiceID)
		if err != nil {
			s.log.Warn().Err(err).Str("invoice_id", invoiceID).Msg("invoice cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}
	if snap := s.terminalSnapshot(ctx, merchantID, invoiceID); snap != nil {
		s.cacheTerminal(ctx, merchantID, snap)
		return snap, nil
	}

	store, err := s.requireStore(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	client, err := processorClient(ctx, s.creds, s.gateways, merchantID)
	if err != nil {
		return nil, err
	}

	raw, err := client.Get(ctx, storePath(store.StoreID, "invoices", invoiceID), nil)
	if err != nil {
		return nil, err
	}
	inv, err := decodeInvoice(raw, merchantID, store.StoreID)
	if err != nil {
		return nil, err
	}
	inv.PaymentMethods = s.fetchPaymentMethods(ctx, client, store.StoreID, inv.ID)

	if err := s.invoices.Upsert(ctx, inv); err != nil {
		s.log.Warn().Err(err).Str("invoice_id", inv.ID).Msg("invoice snapshot not saved")
	}
	if inv.IsTerminal() {
		s.cacheTerminal(ctx, merchantID, inv)
	}
	return inv, nil
}

// terminalSnapshot returns the stored snapshot when it already reached a
// terminal status; those never change on the processor either.
func (s *InvoiceServiceImpl) terminalSnapshot(ctx context.Context, merchantID uuid.UUID, invoiceID string) *domain.Invoice {
	snap, err := s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		s.log.Warn().Err(err).Str("invoice_id", invoiceID).Msg("invoice snapshot read failed")
		return nil
	}
	if snap == nil || snap.MerchantID != merchantID || !snap.IsTerminal() {
		return nil
	}
	return snap
}

func (s *InvoiceServiceImpl) cacheTerminal(ctx context.Context, merchantID uuid.UUID, inv *domain.Invoice) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, merchantID, inv, terminalInvoiceTTL); err != nil {
		s.log.Warn().Err(err).Str("invoice_id", inv.ID).Msg("invoice cache write failed")
	}
}

// ExtractPaymentDestination picks what to show the payer: an on-chain
// address and amount, else a method payment link, else the checkout link.
func (s *InvoiceServiceImpl) ExtractPaymentDestination(inv *domain.Invoice) (domain.PaymentDestination, error) {
	if inv == nil {
		return domain.PaymentDestination{}, apperror.Validation("invoice is required")
	}
	for _, m := range inv.PaymentMethods {
		if m.IsOnChain() && m.Destination != "" {
			return domain.PaymentDestination{Destination: m.Destination, Amount: m.Amount}, nil
		}
	}
	for _, m := range inv.PaymentMethods {
		if m.PaymentLink != "" {
			return domain.PaymentDestination{Link: m.PaymentLink}, nil
		}
	}
	if inv.CheckoutLink != "" {
		return domain.PaymentDestination{Link: inv.CheckoutLink}, nil
	}
	return domain.PaymentDestination{}, apperror.ErrNotFound("payment destination")
}

// ConfirmCryptoOrder confirms the order linked to a settled invoice.
func (s *InvoiceServiceImpl) ConfirmCryptoOrder(ctx context.Context, merchantID uuid.UUID, invoiceID string) (*domain.ReconcileResult, error) {
	inv, err := s.GetStatus(ctx, merchantID, invoiceID)
	if err != nil {
		return nil, err
	}

	switch inv.Status {
	case domain.InvoiceStatusSettled:
		return s.reconciler.ConfirmByInvoice(ctx, inv.ID)
	case domain.InvoiceStatusNew, domain.InvoiceStatusProcessing,
		domain.InvoiceStatusExpired, domain.InvoiceStatusInvalid:
		return nil, apperror.ErrInvoiceNotSettled(string(inv.Status))
	}
	return nil, apperror.ErrInvoiceNotSettled(string(inv.Status))
}

// RecordStatus stores a status learned from a verified webhook.
func (s *InvoiceServiceImpl) RecordStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus) error {
	if err := s.invoices.UpdateStatus(ctx, invoiceID, status); err != nil {
		return apperror.ErrPersistence(err)
	}
	return nil
}

// ArchiveInvoice archives the invoice on the processor. An archived invoice
// is no longer offered to the payer.
func (s *InvoiceServiceImpl) ArchiveInvoice(ctx context.Context, merchantID uuid.UUID, invoiceID string) error {
	if invoiceID == "" {
		return apperror.Validation("invoice id is required")
	}
	store, err := s.requireStore(ctx, merchantID)
	if err != nil {
		return err
	}
	client, err := processorClient(ctx, s.creds, s.gateways, merchantID)
	if err != nil {
		return err
	}
	if _, err := client.Delete(ctx, storePath(store.StoreID, "invoices", invoiceID), nil, nil); err != nil {
		return err
	}
	s.log.Info().
		Str("merchant_id", merchantID.String()).
		Str("invoice_id", invoiceID).
		Msg("invoice archived")
	return nil
}

func (s *InvoiceServiceImpl) fetchPaymentMethods(ctx context.Context, client ports.GatewayClient, storeID, invoiceID string) []domain.PaymentMethod {
	raw, err := client.Get(ctx, storePath(storeID, "invoices", invoiceID, "payment-methods"), nil)
	if err != nil {
		// The checkout link still works without method details.
		s.log.Warn().Err(err).Str("invoice_id", invoiceID).Msg("payment methods unavailable")
		return nil
	}
	var resp []paymentMethodResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		s.log.Warn().Err(err).Str("invoice_id", invoiceID).Msg("payment methods not decodable")
		return nil
	}
	methods := make([]domain.PaymentMethod, 0, len(resp))
	for _, m := range resp {
		methods = append(methods, m.toDomain())
	}
	return methods
}

func (s *InvoiceServiceImpl) requireStore(ctx context.Context, merchantID uuid.UUID) (*domain.MerchantStore, error) {
	store, err := s.stores.GetByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if store == nil {
		return nil, apperror.ErrNotFound("store")
	}
	return store, nil
}

func decodeInvoice(raw json.RawMessage, merchantID uuid.UUID, storeID string) (*domain.Invoice, error) {
	var resp invoiceResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, apperror.ErrUpstreamRejected(fmt.Errorf("decoding invoice: %w", err))
	}
	if resp.ID == "" {
		return nil, apperror.ErrUpstreamRejected(fmt.Errorf("invoice response without id"))
	}
	if resp.Status == "" {
		return nil, apperror.ErrUpstreamRejected(fmt.Errorf("invoice %s has no status", resp.ID))
	}
	if resp.StoreID != "" {
		storeID = resp.StoreID
	}
	inv := &domain.Invoice{
		ID:           resp.ID,
		MerchantID:   merchantID,
		StoreID:      storeID,
		Amount:       resp.Amount,
		Currency:     resp.Currency,
		Status:       resp.Status,
		CheckoutLink: resp.CheckoutLink,
		Metadata:     resp.Metadata,
	}
	if resp.CreatedTime > 0 {
		inv.CreatedAt = time.Unix(resp.CreatedTime, 0).UTC()
	}
	if resp.ExpirationTime > 0 {
		inv.ExpiresAt = time.Unix(resp.ExpirationTime, 0).UTC()
	}
	return inv, nil
}
