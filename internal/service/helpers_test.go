package service

import (
	"context"
	"io"
	"sync"

	"btc-payment-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

// --- In-memory order + inventory store with real compare-and-swap ---

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

type memTransactor struct{}

func (memTransactor) Begin(_ context.Context) (pgx.Tx, error) { return &memTx{}, nil }

type memStore struct {
	mu      sync.Mutex
	orders  map[uuid.UUID]domain.Order
	stock   map[string]int
	linkErr error
}

func newMemStore(stock map[string]int) *memStore {
	return &memStore{orders: make(map[uuid.UUID]domain.Order), stock: stock}
}

func (m *memStore) Stock(productID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stock[productID]
}

func (m *memStore) Create(_ context.Context, tx pgx.Tx, order *domain.Order) error {
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

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (m *memStore) GetByInvoiceID(_ context.Context, invoiceID string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.InvoiceID != nil && *o.InvoiceID == invoiceID {
			return &o, nil
		}
	}
	return nil, nil
}

func (m *memStore) LinkInvoice(_ context.Context, id uuid.UUID, invoiceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.linkErr != nil {
		return m.linkErr
	}
	o := m.orders[id]
	o.InvoiceID = &invoiceID
	m.orders[id] = o
	return nil
}

func (m *memStore) TransitionStatus(_ context.Context, tx pgx.Tx, id uuid.UUID, from domain.OrderStatus, version int64, to domain.OrderStatus) (bool, error) {
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

func (m *memStore) Decrement(_ context.Context, tx pgx.Tx, _ uuid.UUID, productID string, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	have, ok := m.stock[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
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

func (m *memStore) Restock(_ context.Context, tx pgx.Tx, _ uuid.UUID, productID string, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.stock[productID]; !ok {
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
