package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"btc-payment-core/internal/core/domain"
	"btc-payment-core/internal/core/ports/mocks"
	"btc-payment-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSigningSecret = "whsec_0b7e3f"

type webhookTestDeps struct {
	svc        *WebhookServiceImpl
	stores     *mocks.MockMerchantStoreRepository
	deduper    *mocks.MockDeliveryDeduper
	deliveries *mocks.MockWebhookRepository
	invoices   *mocks.MockInvoiceService
	reconciler *mocks.MockReconciler
	signer     *HMACSignatureService
	store      *domain.MerchantStore
	ctrl       *gomock.Controller
}

// setupWebhookService uses the real cipher and signer so signatures are
// checked for real; everything downstream of verification is mocked.
func setupWebhookService(t *testing.T) *webhookTestDeps {
	ctrl := gomock.NewController(t)
	cipher := newTestCipher(t)
	secretEnc, err := cipher.Encrypt(testSigningSecret)
	require.NoError(t, err)

	d := &webhookTestDeps{
		stores:     mocks.NewMockMerchantStoreRepository(ctrl),
		deduper:    mocks.NewMockDeliveryDeduper(ctrl),
		deliveries: mocks.NewMockWebhookRepository(ctrl),
		invoices:   mocks.NewMockInvoiceService(ctrl),
		reconciler: mocks.NewMockReconciler(ctrl),
		signer:     NewHMACSignatureService(),
		store: &domain.MerchantStore{
			ID:               uuid.New(),
			MerchantID:       uuid.New(),
			StoreID:          "s1",
			WebhookSecretEnc: secretEnc,
		},
		ctrl: ctrl,
	}
	d.svc = NewWebhookService(d.stores, cipher, d.signer, d.deduper, d.deliveries, d.invoices, d.reconciler, newTestLogger())
	return d
}

func eventBody(evtType domain.WebhookEventType, deliveryID string) []byte {
	return []byte(fmt.Sprintf(
		`{"deliveryId":%q,"webhookId":"w1","type":%q,"storeId":"s1","invoiceId":"inv1","timestamp":1708092000}`,
		deliveryID, evtType))
}

// expectLog captures the recorded outcome.
func (d *webhookTestDeps) expectLog(t *testing.T, outcome domain.WebhookOutcome) {
	d.deliveries.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.WebhookDeliveryLog) error {
		assert.Equal(t, outcome, e.Outcome)
		assert.Equal(t, "inv1", e.InvoiceID)
		return nil
	})
}

func TestWebhookService_SettledConfirmsOrder(t *testing.T) {
	d := setupWebhookService(t)
	ctx := context.Background()
	body := eventBody(domain.EventInvoiceSettled, "d1")

	d.stores.EXPECT().GetByStoreID(ctx, "s1").Return(d.store, nil)
	d.deduper.EXPECT().Claim(ctx, "s1:d1", deliveryDedupTTL).Return(true, nil)
	d.invoices.EXPECT().RecordStatus(ctx, "inv1", domain.InvoiceStatusSettled).Return(nil)
	d.reconciler.EXPECT().ConfirmByInvoice(ctx, "inv1").Return(&domain.ReconcileResult{Applied: true}, nil)
	d.expectLog(t, domain.WebhookOutcomeProcessed)

	err := d.svc.HandleWebhook(ctx, body, d.signer.Sign(testSigningSecret, body))
	require.NoError(t, err)
}

func TestWebhookService_ExpiredAndInvalidCancelOrder(t *testing.T) {
	for _, typ := range []domain.WebhookEventType{domain.EventInvoiceExpired, domain.EventInvoiceInvalid} {
		t.Run(string(typ), func(t *testing.T) {
			d := setupWebhookService(t)
			ctx := context.Background()
			body := eventBody(typ, "d2")
			status, _ := typ.InvoiceStatus()

			d.stores.EXPECT().GetByStoreID(ctx, "s1").Return(d.store, nil)
			d.deduper.EXPECT().Claim(ctx, "s1:d2", deliveryDedupTTL).Return(true, nil)
			d.invoices.EXPECT().RecordStatus(ctx, "inv1", status).Return(nil)
			d.reconciler.EXPECT().CancelByInvoice(ctx, "inv1").Return(&domain.ReconcileResult{Applied: true}, nil)
			d.expectLog(t, domain.WebhookOutcomeProcessed)

			require.NoError(t, d.svc.HandleWebhook(ctx, body, d.signer.Sign(testSigningSecret, body)))
		})
	}
}

func TestWebhookService_ProgressEventsOnlyRecordStatus(t *testing.T) {
	d := setupWebhookService(t)
	ctx := context.Background()
	body := eventBody(domain.EventInvoiceReceivedPayment, "d3")

	d.stores.EXPECT().GetByStoreID(ctx, "s1").Return(d.store, nil)
	d.deduper.EXPECT().Claim(ctx, "s1:d3", deliveryDedupTTL).Return(true, nil)
	d.invoices.EXPECT().RecordStatus(ctx, "inv1", domain.InvoiceStatusProcessing).Return(nil)
	d.expectLog(t, domain.WebhookOutcomeProcessed)

	require.NoError(t, d.svc.HandleWebhook(ctx, body, d.signer.Sign(testSigningSecret, body)))
}

func TestWebhookService_UnknownTypeIgnored(t *testing.T) {
	d := setupWebhookService(t)
	ctx := context.Background()
	body := eventBody("PayoutCreated", "d4")

	d.stores.EXPECT().GetByStoreID(ctx, "s1").Return(d.store, nil)
	d.deduper.EXPECT().Claim(ctx, "s1:d4", deliveryDedupTTL).Return(true, nil)
	d.expectLog(t, domain.WebhookOutcomeIgnored)

	require.NoError(t, d.svc.HandleWebhook(ctx, body, d.signer.Sign(testSigningSecret, body)))
}

func TestWebhookService_InvoiceWithoutOrderIgnored(t *testing.T) {
	d := setupWebhookService(t)
	ctx := context.Background()
	body := eventBody(domain.EventInvoiceSettled, "d5")

	d.stores.EXPECT().GetByStoreID(ctx, "s1").Return(d.store, nil)
	d.deduper.EXPECT().Claim(ctx, "s1:d5", deliveryDedupTTL).Return(true, nil)
	d.invoices.EXPECT().RecordStatus(ctx, "inv1", domain.InvoiceStatusSettled).Return(nil)
	d.reconciler.EXPECT().ConfirmByInvoice(ctx, "inv1").Return(nil, apperror.ErrNotFound("order"))
	d.expectLog(t, domain.WebhookOutcomeIgnored)

	require.NoError(t, d.svc.HandleWebhook(ctx, body, d.signer.Sign(testSigningSecret, body)))
}

func TestWebhookService_DuplicateDeliveryIsNoop(t *testing.T) {
	d := setupWebhookService(t)
	ctx := context.Background()
	body := eventBody(domain.EventInvoiceSettled, "d1")

	d.stores.EXPECT().GetByStoreID(ctx, "s1").Return(d.store, nil)
	d.deduper.EXPECT().Claim(ctx, "s1:d1", deliveryDedupTTL).Return(false, nil)
	d.expectLog(t, domain.WebhookOutcomeDuplicate)
	// No invoice or reconciler calls.

	require.NoError(t, d.svc.HandleWebhook(ctx, body, d.signer.Sign(testSigningSecret, body)))
}

func TestWebhookService_RedeliveryUsesOriginalID(t *testing.T) {
	d := setupWebhookService(t)
	ctx := context.Background()
	body := []byte(`{"deliveryId":"d9","originalDeliveryId":"d1","isRedelivery":true,"type":"InvoiceSettled","storeId":"s1","invoiceId":"inv1"}`)

	d.stores.EXPECT().GetByStoreID(ctx, "s1").Return(d.store, nil)
	d.deduper.EXPECT().Claim(ctx, "s1:d1", deliveryDedupTTL).Return(false, nil)
	d.expectLog(t, domain.WebhookOutcomeDuplicate)

	require.NoError(t, d.svc.HandleWebhook(ctx, body, d.signer.Sign(testSigningSecret, body)))
}

func TestWebhookService_FailureReleasesDelivery(t *testing.T) {
	d := setupWebhookService(t)
	ctx := context.Background()
	body := eventBody(domain.EventInvoiceSettled, "d6")

	d.stores.EXPECT().GetByStoreID(ctx, "s1").Return(d.store, nil)
	d.deduper.EXPECT().Claim(ctx, "s1:d6", deliveryDedupTTL).Return(true, nil)
	d.invoices.EXPECT().RecordStatus(ctx, "inv1", domain.InvoiceStatusSettled).Return(nil)
	d.reconciler.EXPECT().ConfirmByInvoice(ctx, "inv1").Return(nil, apperror.ErrPersistence(errors.New("db down")))
	d.deduper.EXPECT().Release(gomock.Any(), "s1:d6").Return(nil)
	d.expectLog(t, domain.WebhookOutcomeFailed)

	err := d.svc.HandleWebhook(ctx, body, d.signer.Sign(testSigningSecret, body))
	assertAppError(t, err, apperror.CodePersistence)
}

func TestWebhookService_EventsWithoutDeliveryIDAreNotDeduplicated(t *testing.T) {
	d := setupWebhookService(t)
	ctx := context.Background()
	d.stores.EXPECT().GetByStoreID(ctx, "s1").Return(d.store, nil).Times(2)
	// No Claim or Release: with no delivery id there is nothing to key on.

	for _, invoiceID := range []string{"invA", "invB"} {
		body := []byte(fmt.Sprintf(`{"type":"InvoiceExpired","storeId":"s1","invoiceId":%q}`, invoiceID))
		d.invoices.EXPECT().RecordStatus(ctx, invoiceID, domain.InvoiceStatusExpired).Return(nil)
		d.reconciler.EXPECT().CancelByInvoice(ctx, invoiceID).Return(&domain.ReconcileResult{Applied: true}, nil)
		d.deliveries.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.WebhookDeliveryLog) error {
			assert.Equal(t, domain.WebhookOutcomeProcessed, e.Outcome)
			assert.Equal(t, invoiceID, e.InvoiceID)
			return nil
		})

		require.NoError(t, d.svc.HandleWebhook(ctx, body, d.signer.Sign(testSigningSecret, body)))
	}
}

func TestWebhookService_RestockFailureIsAcknowledged(t *testing.T) {
	d := setupWebhookService(t)
	ctx := context.Background()
	body := eventBody(domain.EventInvoiceExpired, "d10")
	failed := &domain.ReconcileResult{
		Applied: true,
		Items:   []domain.ItemResult{{ProductID: "gone", Quantity: 1, Error: "product not found"}},
	}

	d.stores.EXPECT().GetByStoreID(ctx, "s1").Return(d.store, nil)
	d.deduper.EXPECT().Claim(ctx, "s1:d10", deliveryDedupTTL).Return(true, nil)
	d.invoices.EXPECT().RecordStatus(ctx, "inv1", domain.InvoiceStatusExpired).Return(nil)
	d.reconciler.EXPECT().CancelByInvoice(ctx, "inv1").Return(failed, apperror.ErrRestockFailed())
	// The claim is kept: a redelivery cannot restock either.
	d.deliveries.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.WebhookDeliveryLog) error {
		assert.Equal(t, domain.WebhookOutcomeFailed, e.Outcome)
		require.NotNil(t, e.LastError)
		assert.Contains(t, *e.LastError, apperror.CodeRestockFailed)
		return nil
	})

	require.NoError(t, d.svc.HandleWebhook(ctx, body, d.signer.Sign(testSigningSecret, body)))
}

func TestWebhookService_DedupOutageStillProcesses(t *testing.T) {
	d := setupWebhookService(t)
	ctx := context.Background()
	body := eventBody(domain.EventInvoiceSettled, "d7")

	d.stores.EXPECT().GetByStoreID(ctx, "s1").Return(d.store, nil)
	d.deduper.EXPECT().Claim(ctx, "s1:d7", deliveryDedupTTL).Return(false, errors.New("redis: connection refused"))
	d.invoices.EXPECT().RecordStatus(ctx, "inv1", domain.InvoiceStatusSettled).Return(nil)
	d.reconciler.EXPECT().ConfirmByInvoice(ctx, "inv1").Return(&domain.ReconcileResult{}, nil)
	d.expectLog(t, domain.WebhookOutcomeProcessed)

	require.NoError(t, d.svc.HandleWebhook(ctx, body, d.signer.Sign(testSigningSecret, body)))
}

// Every rejection below happens before any state is touched: the mocks carry
// no expectations beyond the store lookup, so any other call fails the test.
func TestWebhookService_Rejections(t *testing.T) {
	body := eventBody(domain.EventInvoiceSettled, "d1")

	t.Run("missing signature", func(t *testing.T) {
		d := setupWebhookService(t)
		err := d.svc.HandleWebhook(context.Background(), body, "")
		assertAppError(t, err, apperror.CodeInvalidSignature)
	})

	t.Run("no store in payload", func(t *testing.T) {
		d := setupWebhookService(t)
		raw := []byte(`{"deliveryId":"d1","type":"InvoiceSettled"}`)
		err := d.svc.HandleWebhook(context.Background(), raw, d.signer.Sign(testSigningSecret, raw))
		assertAppError(t, err, apperror.CodeInvalidSignature)
	})

	t.Run("not json", func(t *testing.T) {
		d := setupWebhookService(t)
		err := d.svc.HandleWebhook(context.Background(), []byte("hello"), "sha256=00")
		assertAppError(t, err, apperror.CodeInvalidSignature)
	})

	t.Run("unknown store", func(t *testing.T) {
		d := setupWebhookService(t)
		d.stores.EXPECT().GetByStoreID(gomock.Any(), "s1").Return(nil, nil)
		err := d.svc.HandleWebhook(context.Background(), body, d.signer.Sign(testSigningSecret, body))
		assertAppError(t, err, apperror.CodeInvalidSignature)
	})

	t.Run("store without secret", func(t *testing.T) {
		d := setupWebhookService(t)
		d.store.WebhookSecretEnc = ""
		d.stores.EXPECT().GetByStoreID(gomock.Any(), "s1").Return(d.store, nil)
		err := d.svc.HandleWebhook(context.Background(), body, d.signer.Sign(testSigningSecret, body))
		assertAppError(t, err, apperror.CodeInvalidSignature)
	})

	t.Run("undecryptable secret", func(t *testing.T) {
		d := setupWebhookService(t)
		d.store.WebhookSecretEnc = "bm90LXNlYWxlZA=="
		d.stores.EXPECT().GetByStoreID(gomock.Any(), "s1").Return(d.store, nil)
		err := d.svc.HandleWebhook(context.Background(), body, d.signer.Sign(testSigningSecret, body))
		assertAppError(t, err, apperror.CodeInvalidSignature)
	})

	t.Run("wrong secret", func(t *testing.T) {
		d := setupWebhookService(t)
		d.stores.EXPECT().GetByStoreID(gomock.Any(), "s1").Return(d.store, nil)
		err := d.svc.HandleWebhook(context.Background(), body, d.signer.Sign("other", body))
		assertAppError(t, err, apperror.CodeInvalidSignature)
	})

	t.Run("store lookup error", func(t *testing.T) {
		d := setupWebhookService(t)
		d.stores.EXPECT().GetByStoreID(gomock.Any(), "s1").Return(nil, errors.New("db down"))
		err := d.svc.HandleWebhook(context.Background(), body, d.signer.Sign(testSigningSecret, body))
		assertAppError(t, err, apperror.CodePersistence)
	})
}

func TestWebhookService_AnyBodyBitFlipRejected(t *testing.T) {
	d := setupWebhookService(t)
	body := eventBody(domain.EventInvoiceSettled, "d1")
	sig := d.signer.Sign(testSigningSecret, body)
	d.stores.EXPECT().GetByStoreID(gomock.Any(), gomock.Any()).Return(d.store, nil).AnyTimes()

	for i := range body {
		for bit := 0; bit < 8; bit++ {
			tampered := append([]byte(nil), body...)
			tampered[i] ^= 1 << bit
			err := d.svc.HandleWebhook(context.Background(), tampered, sig)
			require.Error(t, err, "byte %d bit %d", i, bit)
			assert.True(t, apperror.HasCode(err, apperror.CodeInvalidSignature), "byte %d bit %d: %v", i, bit, err)
		}
	}
}

func TestWebhookService_NoOptionalDependencies(t *testing.T) {
	d := setupWebhookService(t)
	svc := NewWebhookService(d.stores, newTestCipher(t), d.signer, nil, nil, d.invoices, d.reconciler, newTestLogger())
	ctx := context.Background()
	body := eventBody(domain.EventInvoiceExpired, "d8")

	d.stores.EXPECT().GetByStoreID(ctx, "s1").Return(d.store, nil)
	d.invoices.EXPECT().RecordStatus(ctx, "inv1", domain.InvoiceStatusExpired).Return(nil)
	d.reconciler.EXPECT().CancelByInvoice(ctx, "inv1").Return(&domain.ReconcileResult{}, nil)

	require.NoError(t, svc.HandleWebhook(ctx, body, d.signer.Sign(testSigningSecret, body)))
}
