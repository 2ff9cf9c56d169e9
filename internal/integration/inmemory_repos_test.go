package integration

import (
	"context"
	"errors"
	"sync"

	"btc-payment-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// --- Transactions ---

// memTx journals undo steps so Rollback restores state like a database would.
type memTx struct {
	pgx.Tx
	mu        sync.Mutex
	undo      []func()
	committed bool
}

func (t *memTx) onRollback(f func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.undo = append(t.undo, f)
}

func (t *memTx) Commit(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.committed = true
	t.undo = nil
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.committed {
		return nil
	}
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
	return nil
}

type inMemoryTransactor struct{}

func (inMemoryTransactor) Begin(_ context.Context) (pgx.Tx, error) { return &memTx{}, nil }

// --- Orders + inventory ---

// Products without a recorded owner are shared by every merchant.
type inMemoryOrderStore struct {
	mu     sync.Mutex
	orders map[uuid.UUID]domain.Order
	stock  map[string]int
	owners map[string]uuid.UUID
}

func newInMemoryOrderStore(stock map[string]int) *inMemoryOrderStore {
	return &inMemoryOrderStore{
		orders: make(map[uuid.UUID]domain.Order),
		stock:  stock,
		owners: make(map[string]uuid.UUID),
	}
}

func (m *inMemoryOrderStore) own(productID string, merchantID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.owners[productID] = merchantID
}

func (m *inMemoryOrderStore) removeProduct(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stock, productID)
}

// visible reports whether merchantID may touch productID. Callers hold mu.
func (m *inMemoryOrderStore) visible(merchantID uuid.UUID, productID string) bool {
	if _, ok := m.stock[productID]; !ok {
		return false
	}
	owner, owned := m.owners[productID]
	return !owned || owner == merchantID
}

func (m *inMemoryOrderStore) Stock(productID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stock[productID]
}

func (m *inMemoryOrderStore) Order(id uuid.UUID) domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.orders[id]
}

func (m *inMemoryOrderStore) Create(_ context.Context, tx pgx.Tx, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[order.ID] = *order
	tx.(*memTx).onRollback(func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.orders, order.ID)
	})
	return nil
}

func (m *inMemoryOrderStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (m *inMemoryOrderStore) GetByInvoiceID(_ context.Context, invoiceID string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.InvoiceID != nil && *o.InvoiceID == invoiceID {
			return &o, nil
		}
	}
	return nil, nil
}

func (m *inMemoryOrderStore) LinkInvoice(_ context.Context, id uuid.UUID, invoiceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return errors.New("order not found")
	}
	o.InvoiceID = &invoiceID
	m.orders[id] = o
	return nil
}

func (m *inMemoryOrderStore) TransitionStatus(_ context.Context, tx pgx.Tx, id uuid.UUID, from domain.OrderStatus, version int64, to domain.OrderStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok || o.Status != from || o.Version != version {
		return false, nil
	}
	prev := o
	o.Status = to
	o.Version++
	m.orders[id] = o
	tx.(*memTx).onRollback(func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.orders[id] = prev
	})
	return true, nil
}

func (m *inMemoryOrderStore) Decrement(_ context.Context, tx pgx.Tx, merchantID uuid.UUID, productID string, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.visible(merchantID, productID) {
		return domain.ErrProductNotFound
	}
	have := m.stock[productID]
	if have < qty {
		return domain.ErrInsufficientStock
	}
	m.stock[productID] = have - qty
	tx.(*memTx).onRollback(func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.stock[productID] += qty
	})
	return nil
}

func (m *inMemoryOrderStore) Restock(_ context.Context, tx pgx.Tx, merchantID uuid.UUID, productID string, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.visible(merchantID, productID) {
		return domain.ErrProductNotFound
	}
	m.stock[productID] += qty
	tx.(*memTx).onRollback(func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.stock[productID] -= qty
	})
	return nil
}

// --- Merchant stores ---

type inMemoryStoreRepo struct {
	mu     sync.RWMutex
	stores map[uuid.UUID]*domain.MerchantStore
}

func newInMemoryStoreRepo() *inMemoryStoreRepo {
	return &inMemoryStoreRepo{stores: make(map[uuid.UUID]*domain.MerchantStore)}
}

func (r *inMemoryStoreRepo) Create(_ context.Context, s *domain.MerchantStore) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stores[s.MerchantID]; ok {
		return errors.New("store already exists")
	}
	cp := *s
	r.stores[s.MerchantID] = &cp
	return nil
}

func (r *inMemoryStoreRepo) GetByMerchantID(_ context.Context, merchantID uuid.UUID) (*domain.MerchantStore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.stores[merchantID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *inMemoryStoreRepo) GetByStoreID(_ context.Context, storeID string) (*domain.MerchantStore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.stores {
		if s.StoreID == storeID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryStoreRepo) UpdateXpub(_ context.Context, merchantID uuid.UUID, xpubEnc string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stores[merchantID]
	if !ok {
		return errors.New("store not found")
	}
	s.XpubEnc = &xpubEnc
	return nil
}

// --- Profiles ---

type inMemoryProfileRepo struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]*domain.MerchantProfile
}

func newInMemoryProfileRepo() *inMemoryProfileRepo {
	return &inMemoryProfileRepo{profiles: make(map[uuid.UUID]*domain.MerchantProfile)}
}

func (r *inMemoryProfileRepo) put(p *domain.MerchantProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.MerchantID] = p
}

func (r *inMemoryProfileRepo) GetProfile(_ context.Context, merchantID uuid.UUID) (*domain.MerchantProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[merchantID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// --- Invoices ---

type inMemoryInvoiceRepo struct {
	mu       sync.RWMutex
	invoices map[string]*domain.Invoice
}

func newInMemoryInvoiceRepo() *inMemoryInvoiceRepo {
	return &inMemoryInvoiceRepo{invoices: make(map[string]*domain.Invoice)}
}

func (r *inMemoryInvoiceRepo) Upsert(_ context.Context, inv *domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.invoices[inv.ID]; ok && prev.IsTerminal() {
		return nil
	}
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *inMemoryInvoiceRepo) UpdateStatus(_ context.Context, invoiceID string, status domain.InvoiceStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inv, ok := r.invoices[invoiceID]; ok && !inv.IsTerminal() {
		inv.Status = status
	}
	return nil
}

func (r *inMemoryInvoiceRepo) GetByID(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.invoices[invoiceID]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

// --- Webhook deliveries + audit ---

type inMemoryDeliveryRepo struct {
	mu   sync.Mutex
	logs []domain.WebhookDeliveryLog
}

func (r *inMemoryDeliveryRepo) Create(_ context.Context, log *domain.WebhookDeliveryLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *log)
	return nil
}

func (r *inMemoryDeliveryRepo) outcomes() []domain.WebhookOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.WebhookOutcome, 0, len(r.logs))
	for _, l := range r.logs {
		out = append(out, l.Outcome)
	}
	return out
}

type inMemoryAuditRepo struct {
	mu   sync.Mutex
	logs []domain.AuditLog
}

func (r *inMemoryAuditRepo) Create(_ context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *log)
	return nil
}

func (r *inMemoryAuditRepo) actions() []domain.AuditAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(r.logs))
	for _, l := range r.logs {
		out = append(out, l.Action)
	}
	return out
}
