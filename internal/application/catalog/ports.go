package catalog

import (
	"context"
	"time"

	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PriceRangeCache stores the catalog-wide price range. Get reports the version
// it looked under; a Set for a version that has since been invalidated is lost.
type PriceRangeCache interface {
	Get(ctx context.Context) (pr catalog.PriceRange, version int64, ok bool, err error)
	Set(ctx context.Context, version int64, pr catalog.PriceRange) error
	Invalidate(ctx context.Context) error
}

// Metrics receives catalog counters
type Metrics interface {
	ObserveCascade(kind string, err error, duration time.Duration)
	AddArchivedMasters(n int)
	AddPurgedSubProducts(n int64)
	ObservePriceCache(hit bool)
}

type nopMetrics struct{}

func (nopMetrics) ObserveCascade(string, error, time.Duration) {}
func (nopMetrics) AddArchivedMasters(int)                      {}
func (nopMetrics) AddPurgedSubProducts(int64)                  {}
func (nopMetrics) ObservePriceCache(bool)                      {}

// NopMetrics discards every observation
func NopMetrics() Metrics {
	return nopMetrics{}
}

// publish forwards events; a publisher failure never fails the committed operation
func publish(ctx context.Context, publisher shared.EventPublisher, logger *zap.Logger, events ...shared.DomainEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logger.Error("Failed to publish domain events", zap.Error(err))
	}
}

// publishAndClear publishes the aggregate's pending events and clears them
func publishAndClear(ctx context.Context, publisher shared.EventPublisher, logger *zap.Logger, agg shared.AggregateRoot) {
	publish(ctx, publisher, logger, agg.GetDomainEvents()...)
	agg.ClearDomainEvents()
}
