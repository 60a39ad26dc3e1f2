package cache

import (
	"context"
	"testing"
	"time"

	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInMemoryPriceRangeCache(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryPriceRangeCache(time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }

	_, version, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	pr := catalog.NewPriceRange(decimal.NewFromInt(5), decimal.NewFromInt(50))
	require.NoError(t, c.Set(ctx, version, pr))

	got, _, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, pr, got)

	require.NoError(t, c.Invalidate(ctx))
	_, next, ok, _ := c.Get(ctx)
	assert.False(t, ok)
	assert.NotEqual(t, version, next)

	require.NoError(t, c.Set(ctx, next, catalog.EmptyPriceRange()))
	c.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, _, ok, _ = c.Get(ctx)
	assert.False(t, ok, "expired entries are misses")
}

func TestInMemoryPriceRangeCache_StaleFillIsDropped(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryPriceRangeCache(time.Minute)

	_, version, ok, err := c.Get(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	// a writer commits and invalidates while the reader is computing the range
	require.NoError(t, c.Invalidate(ctx))
	require.NoError(t, c.Set(ctx, version, catalog.NewPriceRange(decimal.NewFromInt(1), decimal.NewFromInt(2))))

	_, _, ok, err = c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewPriceRangeCache_FallsBackWithoutRedis(t *testing.T) {
	c := NewPriceRangeCache(nil, time.Minute, zap.NewNop())
	_, isMemory := c.(*InMemoryPriceRangeCache)
	assert.True(t, isMemory)
}
