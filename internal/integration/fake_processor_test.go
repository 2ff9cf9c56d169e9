package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

const (
	fakeAPIKey        = "greenfield-test-key"
	fakeStoreID       = "store-onion-1"
	fakeWebhookSecret = "whsec-from-processor"
	fakeAddress       = "bc1qfakedestination0000000000000000000"
)

// fakeProcessor answers the Greenfield calls the core makes.
type fakeProcessor struct {
	server *httptest.Server

	mu         sync.Mutex
	invoices   map[string]map[string]any
	nextID     int
	derivation string // returned by the generate endpoint
	linked     string // last derivation scheme PUT on the store
	calls      []string
}

func newFakeProcessor(t *testing.T, derivation string) *fakeProcessor {
	t.Helper()
	p := &fakeProcessor{invoices: make(map[string]map[string]any), derivation: derivation}
	p.server = httptest.NewServer(http.HandlerFunc(p.handle))
	t.Cleanup(p.server.Close)
	return p
}

func (p *fakeProcessor) setStatus(invoiceID, status string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.invoices[invoiceID]["status"] = status
}

func (p *fakeProcessor) callCount(prefix string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (p *fakeProcessor) handle(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "token "+fakeAPIKey {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"code": "unauthenticated", "message": "bad api key"})
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, r.Method+" "+r.URL.Path)

	body, _ := io.ReadAll(r.Body)
	storeBase := "/api/v1/stores/" + fakeStoreID

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/api/v1/stores":
		writeJSON(w, http.StatusOK, map[string]any{"id": fakeStoreID})

	case r.Method == http.MethodPost && r.URL.Path == storeBase+"/webhooks":
		writeJSON(w, http.StatusOK, map[string]any{"id": "wh-1", "secret": fakeWebhookSecret})

	case r.Method == http.MethodPut && r.URL.Path == storeBase+"/payment-methods/onchain/BTC":
		var req struct {
			DerivationScheme string `json:"derivationScheme"`
		}
		_ = json.Unmarshal(body, &req)
		p.linked = req.DerivationScheme
		writeJSON(w, http.StatusOK, map[string]any{"enabled": true, "derivationScheme": req.DerivationScheme})

	case r.Method == http.MethodPost && r.URL.Path == storeBase+"/payment-methods/onchain/BTC/generate":
		writeJSON(w, http.StatusOK, map[string]any{
			"enabled":          true,
			"derivationScheme": p.derivation,
			"mnemonic":         "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		})

	case r.Method == http.MethodPost && r.URL.Path == storeBase+"/invoices":
		var req map[string]any
		_ = json.Unmarshal(body, &req)
		p.nextID++
		id := fmt.Sprintf("inv-%d", p.nextID)
		now := time.Now().Unix()
		inv := map[string]any{
			"id":             id,
			"storeId":        fakeStoreID,
			"amount":         req["amount"],
			"currency":       req["currency"],
			"status":         "New",
			"checkoutLink":   p.server.URL + "/i/" + id,
			"metadata":       req["metadata"],
			"createdTime":    now,
			"expirationTime": now + 900,
		}
		p.invoices[id] = inv
		writeJSON(w, http.StatusOK, inv)

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, storeBase+"/invoices/"):
		rest := strings.TrimPrefix(r.URL.Path, storeBase+"/invoices/")
		id, sub, _ := strings.Cut(rest, "/")
		inv, ok := p.invoices[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"code": "invoice-not-found", "message": "not found"})
			return
		}
		if sub == "payment-methods" {
			writeJSON(w, http.StatusOK, []map[string]any{{
				"paymentMethodId": "BTC-CHAIN",
				"destination":     fakeAddress,
				"amount":          "0.00005",
				"paymentLink":     "bitcoin:" + fakeAddress + "?amount=0.00005",
			}})
			return
		}
		writeJSON(w, http.StatusOK, inv)

	case r.Method == http.MethodPost && r.URL.Path == storeBase+"/payment-methods/onchain/BTC/wallet/transactions":
		writeJSON(w, http.StatusOK, map[string]any{"transactionHash": "f00d"})

	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"code": "not-found", "message": r.URL.Path})
	}
}
