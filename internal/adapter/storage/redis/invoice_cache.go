package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"btc-payment-core/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// InvoiceCache implements ports.InvoiceCache. Keys are scoped by merchant
// so one merchant can never read another's invoice through the cache.
type InvoiceCache struct {
	client *goredis.Client
	prefix string
}

// NewInvoiceCache creates a new Redis-backed invoice cache.
func NewInvoiceCache(client *goredis.Client) *InvoiceCache {
	return &InvoiceCache{
		client: client,
		prefix: "invoice:",
	}
}

func (c *InvoiceCache) key(merchantID uuid.UUID, invoiceID string) string {
	return c.prefix + merchantID.String() + ":" + invoiceID
}

// Get returns nil, nil on a miss.
func (c *InvoiceCache) Get(ctx context.Context, merchantID uuid.UUID, invoiceID string) (*domain.Invoice, error) {
	val, err := c.client.Get(ctx, c.key(merchantID, invoiceID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis invoice get: %w", err)
	}
	var inv domain.Invoice
	if err := json.Unmarshal(val, &inv); err != nil {
		return nil, fmt.Errorf("decode cached invoice: %w", err)
	}
	return &inv, nil
}

// Set stores an invoice snapshot with TTL.
func (c *InvoiceCache) Set(ctx context.Context, merchantID uuid.UUID, inv *domain.Invoice, ttl time.Duration) error {
	val, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("encode invoice: %w", err)
	}
	if err := c.client.Set(ctx, c.key(merchantID, inv.ID), val, ttl).Err(); err != nil {
		return fmt.Errorf("redis invoice set: %w", err)
	}
	return nil
}
