package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DeliveryDeduper implements ports.DeliveryDeduper with SET NX. It is the
// fast path for webhook redeliveries; the order version check is what makes
// effects exactly-once when Redis is unavailable.
type DeliveryDeduper struct {
	client *goredis.Client
	prefix string
}

// NewDeliveryDeduper creates a new Redis-backed delivery deduper.
func NewDeliveryDeduper(client *goredis.Client) *DeliveryDeduper {
	return &DeliveryDeduper{
		client: client,
		prefix: "webhook:delivery:",
	}
}

// Claim returns true if key was not held and now is.
func (d *DeliveryDeduper) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := d.client.SetArgs(ctx, d.prefix+key, time.Now().Unix(), goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis delivery claim: %w", err)
	}
	return result == "OK", nil
}

// Release drops a claim so the processor's next retry is processed.
func (d *DeliveryDeduper) Release(ctx context.Context, key string) error {
	if err := d.client.Del(ctx, d.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis delivery release: %w", err)
	}
	return nil
}
