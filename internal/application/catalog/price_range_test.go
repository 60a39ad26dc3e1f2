package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPriceRangeProvider_Get(t *testing.T) {
	ctx := context.Background()
	stored := catalog.NewPriceRange(decimal.NewFromInt(5), decimal.NewFromInt(50))

	t.Run("cache hit skips the store", func(t *testing.T) {
		f := newCatalogFixture(1)
		f.cache.On("Get", ctx).Return(stored, int64(3), true, nil)

		pr, err := f.prices.Get(ctx)
		require.NoError(t, err)
		assert.True(t, stored.Min.Equal(pr.Min))
		f.subs.AssertNotCalled(t, "PriceRange", ctx)
		assert.Equal(t, 1, f.metrics.hits)
	})

	t.Run("miss reads the store and fills the cache", func(t *testing.T) {
		f := newCatalogFixture(1)
		f.cache.On("Get", ctx).Return(catalog.PriceRange{}, int64(3), false, nil)
		f.subs.On("PriceRange", ctx).Return(stored, nil)
		f.cache.On("Set", ctx, int64(3), stored).Return(nil)

		pr, err := f.prices.Get(ctx)
		require.NoError(t, err)
		assert.True(t, stored.Max.Equal(pr.Max))
		f.cache.AssertCalled(t, "Set", ctx, int64(3), stored)
		assert.Equal(t, 1, f.metrics.misses)
	})

	t.Run("cache failure degrades to the store", func(t *testing.T) {
		f := newCatalogFixture(1)
		f.cache.On("Get", ctx).Return(catalog.PriceRange{}, int64(0), false, errors.New("redis down"))
		f.subs.On("PriceRange", ctx).Return(catalog.EmptyPriceRange(), nil)

		pr, err := f.prices.Get(ctx)
		require.NoError(t, err)
		assert.True(t, pr.Empty)
		assert.True(t, pr.Min.IsZero())
		f.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no cache configured", func(t *testing.T) {
		subs := new(MockSubProductRepository)
		subs.On("PriceRange", ctx).Return(stored, nil)
		provider := NewPriceRangeProvider(subs, nil, nil, zap.NewNop())

		pr, err := provider.Get(ctx)
		require.NoError(t, err)
		assert.False(t, pr.Empty)
		provider.Invalidate(ctx)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		subs := new(MockSubProductRepository)
		subs.On("PriceRange", ctx).Return(catalog.PriceRange{}, errors.New("boom"))
		provider := NewPriceRangeProvider(subs, nil, nil, zap.NewNop())

		_, err := provider.Get(ctx)
		assert.Error(t, err)
	})
}
