package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"btc-payment-core/config"
	"btc-payment-core/internal/adapter/gateway"
	httpHandler "btc-payment-core/internal/adapter/http/handler"
	redisStorage "btc-payment-core/internal/adapter/storage/redis"
	"btc-payment-core/internal/core/domain"
	"btc-payment-core/internal/core/ports"
	"btc-payment-core/internal/service"
	"btc-payment-core/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const (
	testVaultKey   = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	testWebhookURL = "https://core.example/api/v1/webhooks/btcpay"
)

// testApp wires the real router, services, gateway and Redis stores (on
// miniredis) against in-memory repositories and a fake processor.
type testApp struct {
	server     *httptest.Server
	processor  *fakeProcessor
	redis      *miniredis.Miniredis
	orders     *inMemoryOrderStore
	invoices   *inMemoryInvoiceRepo
	stores     *inMemoryStoreRepo
	profiles   *inMemoryProfileRepo
	deliveries *inMemoryDeliveryRepo
	audit      *inMemoryAuditRepo
	encSvc     ports.EncryptionService
	sigSvc     ports.SignatureService
	tokenSvc   ports.TokenService
	xpub       string
}

// testXpub derives a mainnet account xpub from a fixed seed.
func testXpub(t *testing.T) string {
	t.Helper()
	seed := bytes.Repeat([]byte{0x42}, hdkeychain.RecommendedSeedLen)
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	require.NoError(t, err)
	account, err := master.Derive(hdkeychain.HardenedKeyStart + 84)
	require.NoError(t, err)
	pub, err := account.Neuter()
	require.NoError(t, err)
	return pub.String()
}

func newTestApp(t *testing.T, stock map[string]int) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	key, err := config.VaultConfig{Key: testVaultKey}.DecodeKey()
	require.NoError(t, err)
	encSvc, err := service.NewXChaChaEncryptionService(key)
	require.NoError(t, err)

	xpub := testXpub(t)
	app := &testApp{
		processor:  newFakeProcessor(t, xpub),
		redis:      mr,
		orders:     newInMemoryOrderStore(stock),
		invoices:   newInMemoryInvoiceRepo(),
		stores:     newInMemoryStoreRepo(),
		profiles:   newInMemoryProfileRepo(),
		deliveries: &inMemoryDeliveryRepo{},
		audit:      &inMemoryAuditRepo{},
		encSvc:     encSvc,
		sigSvc:     service.NewHMACSignatureService(),
		tokenSvc:   service.NewJWTTokenService("integration-jwt-secret", time.Hour, "btc-payment-core"),
		xpub:       xpub,
	}

	log := logger.NewWithWriter("debug", io.Discard)

	gateways, err := gateway.NewFactory(config.ProcessorConfig{Timeout: 5 * time.Second}, log,
		gateway.WithTransport(http.DefaultTransport))
	require.NoError(t, err)

	creds := service.NewCredentialSource(app.profiles, encSvc, "")
	reconciler := service.NewReconciler(app.orders, app.orders, inMemoryTransactor{}, log)
	invoiceSvc := service.NewInvoiceService(app.stores, app.invoices, redisStorage.NewInvoiceCache(rdb), creds, gateways, reconciler, log)
	orderSvc := service.NewOrderService(app.orders, app.orders, inMemoryTransactor{}, invoiceSvc, reconciler, log)
	walletSvc := service.NewWalletService(app.stores, creds, gateways, encSvc, testWebhookURL, log)
	webhookSvc := service.NewWebhookService(app.stores, encSvc, app.sigSvc, redisStorage.NewDeliveryDeduper(rdb), app.deliveries, invoiceSvc, reconciler, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		OrderSvc:       orderSvc,
		InvoiceSvc:     invoiceSvc,
		WalletSvc:      walletSvc,
		WebhookSvc:     webhookSvc,
		TokenSvc:       app.tokenSvc,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		AuditSvc:       service.NewAuditService(app.audit, log),
		Logger:         log,
	})
	app.server = httptest.NewServer(router)
	t.Cleanup(app.server.Close)
	return app
}

// merchant registers a merchant profile pointing at the fake processor and
// returns its id and a bearer token.
func (a *testApp) merchant(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	apiKeyEnc, err := a.encSvc.Encrypt(fakeAPIKey)
	require.NoError(t, err)
	a.profiles.put(&domain.MerchantProfile{MerchantID: id, ProcessorURL: a.processor.server.URL, APIKeyEnc: apiKeyEnc})

	token, _, err := a.tokenSvc.Generate(id)
	require.NoError(t, err)
	return id, token
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
	Message   string          `json:"message"`
}

func (a *testApp) call(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

// webhook posts a processor event signed with secret.
func (a *testApp) webhook(t *testing.T, secret string, event map[string]any) int {
	t.Helper()
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return a.postSigned(t, raw, a.sigSvc.Sign(secret, raw))
}

func (a *testApp) postSigned(t *testing.T, raw []byte, sig string) int {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, a.server.URL+"/api/v1/webhooks/btcpay", bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(httpHandler.HeaderBTCPaySig, sig)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp.StatusCode
}

func invoiceEvent(eventType, deliveryID, invoiceID string) map[string]any {
	return map[string]any{
		"deliveryId":   deliveryID,
		"webhookId":    "wh-1",
		"isRedelivery": false,
		"type":         eventType,
		"timestamp":    time.Now().Unix(),
		"storeId":      fakeStoreID,
		"invoiceId":    invoiceID,
	}
}

// setupStore provisions the merchant's store and links the test xpub.
func (a *testApp) setupStore(t *testing.T, token string) {
	t.Helper()
	status, env := a.call(t, http.MethodPost, "/api/v1/wallet/setup", token, map[string]any{"name": "Onion Shop", "xpub": a.xpub})
	require.Equal(t, http.StatusCreated, status, env.Message)
}

type checkoutData struct {
	Order struct {
		ID        uuid.UUID `json:"id"`
		Status    string    `json:"status"`
		InvoiceID string    `json:"invoice_id"`
	} `json:"order"`
	Invoice struct {
		ID           string `json:"id"`
		Status       string `json:"status"`
		CheckoutLink string `json:"checkout_link"`
	} `json:"invoice"`
	Destination struct {
		Destination string `json:"destination"`
		Amount      string `json:"amount"`
	} `json:"destination"`
}

func (a *testApp) cryptoOrder(t *testing.T, token string, items ...map[string]any) checkoutData {
	t.Helper()
	status, env := a.call(t, http.MethodPost, "/api/v1/orders/crypto", token, map[string]any{
		"items":    items,
		"currency": "USD",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var out checkoutData
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func line(productID string, qty int, price string) map[string]any {
	return map[string]any{"product_id": productID, "quantity": qty, "unit_price": price}
}
