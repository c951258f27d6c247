package cron

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Deduper guards against duplicate delivery of the same write event.
// Claim returns true the first time an event ID is seen. The guard is best
// effort: if it errors the worker proceeds, accepting the duplicate risk
// the reconciliation job exists to repair.
type Deduper interface {
	Claim(ctx context.Context, eventID string) (bool, error)
}

const dedupeKeyPrefix = "statsevent:"

// RedisDeduper claims event IDs with SETNX under a TTL; delivery retries
// arrive well inside the window, so expired claims are safe to drop.
type RedisDeduper struct {
	Client *redis.Client
	TTL    time.Duration
}

func (d *RedisDeduper) Claim(ctx context.Context, eventID string) (bool, error) {
	return d.Client.SetNX(ctx, dedupeKeyPrefix+eventID, 1, d.TTL).Result()
}

// MemoryDeduper is an in-process Deduper for tests and single-node tooling.
type MemoryDeduper struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewMemoryDeduper() *MemoryDeduper {
	return &MemoryDeduper{seen: make(map[string]struct{})}
}

func (d *MemoryDeduper) Claim(_ context.Context, eventID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[eventID]; ok {
		return false, nil
	}
	d.seen[eventID] = struct{}{}
	return true, nil
}
