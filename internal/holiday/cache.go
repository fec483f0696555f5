package holiday

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Clock abstracts time.Now so cache expiry is testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// CacheEntry is one cached year of holidays with its computation time.
type CacheEntry struct {
	Holidays []Holiday `json:"holidays"`
	CachedAt time.Time `json:"cached_at"`
}

// CacheStore persists cache entries keyed by year.
type CacheStore interface {
	Get(ctx context.Context, year int) (*CacheEntry, error)
	Put(ctx context.Context, year int, entry CacheEntry) error
}

// Cache is an explicit TTL cache over a store and clock. Concurrent
// resolutions of the same uncached year are deliberately NOT deduplicated:
// both may fetch and both may write, last writer wins. Duplicate outbound
// calls are acceptable; corruption is not possible because entries for a
// year are interchangeable.
type Cache struct {
	store CacheStore
	clock Clock
	ttl   time.Duration
}

func NewCache(store CacheStore, clock Clock, ttl time.Duration) *Cache {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Cache{store: store, clock: clock, ttl: ttl}
}

// Get returns the cached holidays for a year when present and fresh.
func (c *Cache) Get(ctx context.Context, year int) ([]Holiday, bool) {
	entry, err := c.store.Get(ctx, year)
	if err != nil || entry == nil {
		return nil, false
	}
	if c.clock.Now().Sub(entry.CachedAt) > c.ttl {
		return nil, false
	}
	return entry.Holidays, true
}

// Put stores the holidays for a year, stamped with the current time.
func (c *Cache) Put(ctx context.Context, year int, holidays []Holiday) {
	_ = c.store.Put(ctx, year, CacheEntry{
		Holidays: holidays,
		CachedAt: c.clock.Now(),
	})
}

// MemoryStore is the default in-process CacheStore.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[int]CacheEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[int]CacheEntry)}
}

func (s *MemoryStore) Get(_ context.Context, year int) (*CacheEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[year]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (s *MemoryStore) Put(_ context.Context, year int, entry CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[year] = entry
	return nil
}

// RedisStore shares the cache across processes. The redis expiry mirrors
// the cache TTL so stale entries clean themselves up.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func redisKey(year int) string {
	return fmt.Sprintf("holidays:%d", year)
}

func (s *RedisStore) Get(ctx context.Context, year int) (*CacheEntry, error) {
	raw, err := s.rdb.Get(ctx, redisKey(year)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var entry CacheEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *RedisStore) Put(ctx context.Context, year int, entry CacheEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, redisKey(year), payload, s.ttl).Err()
}
