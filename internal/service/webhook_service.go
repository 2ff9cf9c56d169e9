package service

import (
	"context"
	"encoding/json"
	"time"

	"btc-payment-core/internal/core/domain"
	"btc-payment-core/internal/core/ports"
	"btc-payment-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// deliveryDedupTTL covers the processor's redelivery window.
const deliveryDedupTTL = 72 * time.Hour

// WebhookServiceImpl implements ports.WebhookService. One endpoint serves
// every merchant; the signing secret is chosen by the payload's store id.
type WebhookServiceImpl struct {
	stores     ports.MerchantStoreRepository
	encSvc     ports.EncryptionService
	sigSvc     ports.SignatureService
	deduper    ports.DeliveryDeduper   // nil = rely on the reconciler alone
	deliveries ports.WebhookRepository // nil = no delivery log
	invoices   ports.InvoiceService
	reconciler ports.Reconciler
	log        zerolog.Logger
}

// NewWebhookService creates the webhook verifier and dispatcher.
func NewWebhookService(
	stores ports.MerchantStoreRepository,
	encSvc ports.EncryptionService,
	sigSvc ports.SignatureService,
	deduper ports.DeliveryDeduper,
	deliveries ports.WebhookRepository,
	invoices ports.InvoiceService,
	reconciler ports.Reconciler,
	log zerolog.Logger,
) *WebhookServiceImpl {
	return &WebhookServiceImpl{
		stores:     stores,
		encSvc:     encSvc,
		sigSvc:     sigSvc,
		deduper:    deduper,
		deliveries: deliveries,
		invoices:   invoices,
		reconciler: reconciler,
		log:        log,
	}
}

// HandleWebhook verifies body against signature and, only then, applies the
// event. Redelivered events are accepted without repeating any effect.
func (s *WebhookServiceImpl) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if signature == "" {
		return apperror.ErrInvalidSignature("missing signature header")
	}

	var envelope struct {
		StoreID string `json:"storeId"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.StoreID == "" {
		return apperror.ErrInvalidSignature("payload does not name a store")
	}

	store, err := s.stores.GetByStoreID(ctx, envelope.StoreID)
	if err != nil {
		return apperror.InternalError(err)
	}
	if store == nil {
		return apperror.ErrInvalidSignature("unknown store")
	}
	if !store.HasWebhookSecret() {
		return apperror.ErrInvalidSignature("store has no webhook secret")
	}
	secret, err := s.encSvc.Decrypt(store.WebhookSecretEnc)
	if err != nil {
		s.log.Error().Err(err).Str("store_id", store.StoreID).Msg("webhook secret could not be decrypted")
		return apperror.ErrInvalidSignature("webhook secret unavailable")
	}
	if !s.sigSvc.Verify(secret, body, signature) {
		s.log.Warn().Str("store_id", store.StoreID).Msg("webhook signature mismatch")
		return apperror.ErrInvalidSignature("signature mismatch")
	}

	var evt domain.WebhookEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return apperror.Validation("malformed webhook payload")
	}

	// Events without a delivery id skip the fast path; the reconciler's
	// compare-and-swap still applies each transition once.
	key := evt.DedupKey()
	dedup := s.deduper != nil && key != ""
	if dedup {
		claimed, err := s.deduper.Claim(ctx, key, deliveryDedupTTL)
		if err != nil {
			s.log.Warn().Err(err).Str("delivery", key).Msg("delivery dedup unavailable, continuing")
		} else if !claimed {
			s.log.Info().
				Str("delivery_id", evt.DeliveryID).
				Str("invoice_id", evt.InvoiceID).
				Msg("duplicate webhook delivery ignored")
			s.record(ctx, &evt, domain.WebhookOutcomeDuplicate, nil)
			return nil
		}
	}

	outcome, err := s.dispatch(ctx, &evt)
	if apperror.HasCode(err, apperror.CodeRestockFailed) {
		// The cancellation is committed and a redelivery would not restock
		// either, so the delivery is acknowledged and kept claimed.
		s.log.Error().
			Err(err).
			Str("invoice_id", evt.InvoiceID).
			Msg("order cancelled but no line item could be restocked")
		s.record(ctx, &evt, domain.WebhookOutcomeFailed, err)
		return nil
	}
	if err != nil {
		if dedup {
			// Let the processor's retry run the event again.
			if relErr := s.deduper.Release(context.WithoutCancel(ctx), key); relErr != nil {
				s.log.Warn().Err(relErr).Str("delivery", key).Msg("failed to release delivery key")
			}
		}
		s.record(ctx, &evt, domain.WebhookOutcomeFailed, err)
		return err
	}
	s.record(ctx, &evt, outcome, nil)
	return nil
}

func (s *WebhookServiceImpl) dispatch(ctx context.Context, evt *domain.WebhookEvent) (domain.WebhookOutcome, error) {
	status, known := evt.Type.InvoiceStatus()
	if !known {
		s.log.Info().Str("type", string(evt.Type)).Msg("unhandled webhook event type")
		return domain.WebhookOutcomeIgnored, nil
	}
	if evt.InvoiceID == "" {
		return "", apperror.Validation("invoice event without invoiceId")
	}
	if err := s.invoices.RecordStatus(ctx, evt.InvoiceID, status); err != nil {
		return "", err
	}

	var err error
	switch evt.Type {
	case domain.EventInvoiceSettled:
		_, err = s.reconciler.ConfirmByInvoice(ctx, evt.InvoiceID)
	case domain.EventInvoiceExpired, domain.EventInvoiceInvalid:
		_, err = s.reconciler.CancelByInvoice(ctx, evt.InvoiceID)
	case domain.EventInvoiceCreated, domain.EventInvoiceReceivedPayment,
		domain.EventInvoiceProcessing, domain.EventInvoicePaymentSettled:
		return domain.WebhookOutcomeProcessed, nil
	}
	if apperror.HasCode(err, apperror.CodeNotFound) {
		// Invoice opened outside checkout; nothing to reconcile.
		s.log.Info().Str("invoice_id", evt.InvoiceID).Msg("no order linked to invoice")
		return domain.WebhookOutcomeIgnored, nil
	}
	if err != nil {
		return "", err
	}

	s.log.Info().
		Str("type", string(evt.Type)).
		Str("invoice_id", evt.InvoiceID).
		Bool("redelivery", evt.IsRedelivery).
		Msg("webhook processed")
	return domain.WebhookOutcomeProcessed, nil
}

func (s *WebhookServiceImpl) record(ctx context.Context, evt *domain.WebhookEvent, outcome domain.WebhookOutcome, cause error) {
	if s.deliveries == nil {
		return
	}
	entry := &domain.WebhookDeliveryLog{
		ID:         uuid.New(),
		DeliveryID: evt.DeliveryID,
		StoreID:    evt.StoreID,
		InvoiceID:  evt.InvoiceID,
		EventType:  evt.Type,
		Redelivery: evt.IsRedelivery,
		Outcome:    outcome,
		CreatedAt:  time.Now(),
	}
	if cause != nil {
		msg := cause.Error()
		entry.LastError = &msg
	}
	if err := s.deliveries.Create(context.WithoutCancel(ctx), entry); err != nil {
		s.log.Warn().Err(err).Str("delivery_id", evt.DeliveryID).Msg("failed to record webhook delivery")
	}
}
