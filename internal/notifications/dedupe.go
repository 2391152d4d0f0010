package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Deduplicator remembers which events were already notified so redelivered
// Kafka messages do not reach the visitor twice.
type Deduplicator interface {
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type redisDeduplicator struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisDeduplicator(rdb *redis.Client, ttl time.Duration) Deduplicator {
	return &redisDeduplicator{rdb: rdb, ttl: ttl, prefix: "leadg:notified:"}
}

func (d *redisDeduplicator) Claim(ctx context.Context, key string) (bool, error) {
	return d.rdb.SetNX(ctx, d.prefix+key, 1, d.ttl).Result()
}

func (d *redisDeduplicator) Release(ctx context.Context, key string) error {
	return d.rdb.Del(ctx, d.prefix+key).Err()
}

type memoryDeduplicator struct {
	mu   sync.Mutex
	ttl  time.Duration
	seen map[string]time.Time
	now  func() time.Time
}

func NewMemoryDeduplicator(ttl time.Duration) Deduplicator {
	return &memoryDeduplicator{
		ttl:  ttl,
		seen: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (d *memoryDeduplicator) Claim(_ context.Context, key string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	for k, at := range d.seen {
		if now.Sub(at) > d.ttl {
			delete(d.seen, k)
		}
	}

	if _, ok := d.seen[key]; ok {
		return false, nil
	}
	d.seen[key] = now
	return true, nil
}

func (d *memoryDeduplicator) Release(_ context.Context, key string) error {
	d.mu.Lock()
	delete(d.seen, key)
	d.mu.Unlock()
	return nil
}
