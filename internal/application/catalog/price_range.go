package catalog

import (
	"context"
	"fmt"

	"github.com/shopcore/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

// PriceRangeProvider reads the published sub-product price range through an optional cache.
// Cache failures degrade to a store read and are only logged.
type PriceRangeProvider struct {
	subs    catalog.SubProductRepository
	cache   PriceRangeCache
	metrics Metrics
	logger  *zap.Logger
}

// NewPriceRangeProvider creates a provider; cache and metrics may be nil
func NewPriceRangeProvider(subs catalog.SubProductRepository, cache PriceRangeCache, metrics Metrics, logger *zap.Logger) *PriceRangeProvider {
	if metrics == nil {
		metrics = NopMetrics()
	}
	return &PriceRangeProvider{subs: subs, cache: cache, metrics: metrics, logger: logger}
}

// Get returns the current price range; an empty catalog yields the zero sentinel
func (p *PriceRangeProvider) Get(ctx context.Context) (catalog.PriceRange, error) {
	var version int64
	fill := false
	if p.cache != nil {
		pr, v, ok, err := p.cache.Get(ctx)
		switch {
		case err != nil:
			p.logger.Warn("Price range cache read failed", zap.Error(err))
		case ok:
			p.metrics.ObservePriceCache(true)
			return pr, nil
		default:
			version, fill = v, true
		}
		p.metrics.ObservePriceCache(false)
	}

	pr, err := p.subs.PriceRange(ctx)
	if err != nil {
		return catalog.PriceRange{}, fmt.Errorf("compute price range: %w", err)
	}

	if fill {
		if err := p.cache.Set(ctx, version, pr); err != nil {
			p.logger.Warn("Price range cache write failed", zap.Error(err))
		}
	}
	return pr, nil
}

// Invalidate drops the cached range after a change to sub-products or their masters
func (p *PriceRangeProvider) Invalidate(ctx context.Context) {
	if p == nil || p.cache == nil {
		return
	}
	if err := p.cache.Invalidate(ctx); err != nil {
		p.logger.Warn("Price range cache invalidation failed", zap.Error(err))
	}
}
