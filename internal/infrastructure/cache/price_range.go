package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopcore/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

// PriceRangeCache caches the published sub-product price range.
// Writers to sub-products call Invalidate after each committed change, which
// moves the cache to a new version. Get reports the version it read under and
// Set writes under the version it is given, so a range computed before an
// Invalidate never becomes visible after it.
type PriceRangeCache interface {
	Get(ctx context.Context) (pr catalog.PriceRange, version int64, ok bool, err error)
	Set(ctx context.Context, version int64, pr catalog.PriceRange) error
	Invalidate(ctx context.Context) error
}

const (
	priceRangeVersionKey = "shopcore:catalog:price-range:version"
	priceRangeKeyPrefix  = "shopcore:catalog:price-range:v"
)

func priceRangeKey(version int64) string {
	return priceRangeKeyPrefix + strconv.FormatInt(version, 10)
}

// RedisPriceRangeCache stores the price range as JSON in Redis
type RedisPriceRangeCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisPriceRangeCache creates a Redis-backed cache; entries expire after ttl
func NewRedisPriceRangeCache(client redis.Cmdable, ttl time.Duration) *RedisPriceRangeCache {
	return &RedisPriceRangeCache{client: client, ttl: ttl}
}

func (c *RedisPriceRangeCache) Get(ctx context.Context) (catalog.PriceRange, int64, bool, error) {
	version, err := c.client.Get(ctx, priceRangeVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return catalog.PriceRange{}, 0, false, fmt.Errorf("failed to read price range version: %w", err)
	}

	raw, err := c.client.Get(ctx, priceRangeKey(version)).Bytes()
	if errors.Is(err, redis.Nil) {
		return catalog.PriceRange{}, version, false, nil
	}
	if err != nil {
		return catalog.PriceRange{}, 0, false, fmt.Errorf("failed to read price range cache: %w", err)
	}

	var pr catalog.PriceRange
	if err := json.Unmarshal(raw, &pr); err != nil {
		return catalog.PriceRange{}, version, false, fmt.Errorf("failed to decode cached price range: %w", err)
	}
	return pr, version, true, nil
}

func (c *RedisPriceRangeCache) Set(ctx context.Context, version int64, pr catalog.PriceRange) error {
	raw, err := json.Marshal(pr)
	if err != nil {
		return fmt.Errorf("failed to encode price range: %w", err)
	}
	if err := c.client.Set(ctx, priceRangeKey(version), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write price range cache: %w", err)
	}
	return nil
}

// Invalidate bumps the version; entries under older versions expire on their own
func (c *RedisPriceRangeCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, priceRangeVersionKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate price range cache: %w", err)
	}
	return nil
}

// InMemoryPriceRangeCache is a process-local cache for single-instance runs and tests
type InMemoryPriceRangeCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	version   int64
	value     catalog.PriceRange
	expiresAt time.Time
	valid     bool
	now       func() time.Time
}

// NewInMemoryPriceRangeCache creates an in-memory cache; entries expire after ttl
func NewInMemoryPriceRangeCache(ttl time.Duration) *InMemoryPriceRangeCache {
	return &InMemoryPriceRangeCache{ttl: ttl, now: time.Now}
}

func (c *InMemoryPriceRangeCache) Get(_ context.Context) (catalog.PriceRange, int64, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid || c.now().After(c.expiresAt) {
		return catalog.PriceRange{}, c.version, false, nil
	}
	return c.value, c.version, true, nil
}

func (c *InMemoryPriceRangeCache) Set(_ context.Context, version int64, pr catalog.PriceRange) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version != c.version {
		return nil
	}
	c.value = pr
	c.expiresAt = c.now().Add(c.ttl)
	c.valid = true
	return nil
}

func (c *InMemoryPriceRangeCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	c.valid = false
	return nil
}

// NewPriceRangeCache returns a Redis cache when client is non-nil and an in-memory one otherwise
func NewPriceRangeCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) PriceRangeCache {
	if client == nil {
		logger.Warn("Redis not configured, using in-memory price range cache")
		return NewInMemoryPriceRangeCache(ttl)
	}
	return NewRedisPriceRangeCache(client, ttl)
}

var (
	_ PriceRangeCache = (*RedisPriceRangeCache)(nil)
	_ PriceRangeCache = (*InMemoryPriceRangeCache)(nil)
)
