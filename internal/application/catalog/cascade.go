package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Cascade kinds reported to metrics
const (
	CascadeKindMasterProduct = "master_product"
	CascadeKindCategory      = "category"
)

// DefaultCascadeConcurrency bounds per-category fan-out when none is configured
const DefaultCascadeConcurrency = 4

// CascadeCoordinator deletes a record together with everything that depends on it.
// Steps are not wrapped in one transaction: a failure after a committed step is
// returned without compensation.
type CascadeCoordinator struct {
	categories  catalog.CategoryRepository
	masters     catalog.MasterProductRepository
	subs        catalog.SubProductRepository
	prices      *PriceRangeProvider
	events      shared.EventPublisher
	metrics     Metrics
	concurrency int
	logger      *zap.Logger
}

// NewCascadeCoordinator creates a coordinator; concurrency < 1 uses DefaultCascadeConcurrency
func NewCascadeCoordinator(
	categories catalog.CategoryRepository,
	masters catalog.MasterProductRepository,
	subs catalog.SubProductRepository,
	prices *PriceRangeProvider,
	events shared.EventPublisher,
	metrics Metrics,
	concurrency int,
	logger *zap.Logger,
) *CascadeCoordinator {
	if concurrency < 1 {
		concurrency = DefaultCascadeConcurrency
	}
	if metrics == nil {
		metrics = NopMetrics()
	}
	return &CascadeCoordinator{
		categories:  categories,
		masters:     masters,
		subs:        subs,
		prices:      prices,
		events:      events,
		metrics:     metrics,
		concurrency: concurrency,
		logger:      logger,
	}
}

// DeleteMasterProductAndDependents removes all sub-products of a published master product, then archives it
func (c *CascadeCoordinator) DeleteMasterProductAndDependents(ctx context.Context, id uuid.UUID) (result *CascadeResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "cascade", "delete_master_product", telemetry.AttrMasterProductID, id.String())
	start := time.Now()
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
		c.metrics.ObserveCascade(CascadeKindMasterProduct, err, time.Since(start))
	}()

	master, err := c.masters.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, masterProductNotFound(id)
		}
		return nil, err
	}
	if !master.IsPublished() {
		return nil, masterProductNotFound(id)
	}

	deleted, err := c.deleteMaster(ctx, master)
	if err != nil {
		return nil, err
	}
	telemetry.SetAttributes(span, telemetry.AttrSubProductCount, deleted)

	return &CascadeResult{
		ArchivedMasterProducts: 1,
		DeletedSubProducts:     deleted,
		Message:                "master product and its sub-products are deleted successfully",
	}, nil
}

// DeleteCategoryAndDependents cascades every published master product of the category with
// bounded concurrency, then removes the category. The first failure stops new cascades and
// leaves the category in place.
func (c *CascadeCoordinator) DeleteCategoryAndDependents(ctx context.Context, id uuid.UUID) (result *CascadeResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "cascade", "delete_category", telemetry.AttrCategoryID, id.String())
	start := time.Now()
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
		c.metrics.ObserveCascade(CascadeKindCategory, err, time.Since(start))
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	category, err := c.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.CodeNotFound, "Category not found for id "+id.String())
		}
		return nil, err
	}

	masters, err := c.masters.FindPublishedByCategory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list master products of category %s: %w", id, err)
	}
	telemetry.SetAttributes(span, telemetry.AttrMasterCount, len(masters))

	var archived atomic.Int64
	var deleted atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i := range masters {
		if gctx.Err() != nil {
			break
		}
		master := &masters[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, err := c.deleteMaster(gctx, master)
			if err != nil {
				return err
			}
			archived.Add(1)
			deleted.Add(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.logger.Warn("Category cascade aborted",
			zap.String("category_id", id.String()),
			zap.Int64("archived", archived.Load()),
			zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := c.categories.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete category %s after archiving %d master products: %w", id, archived.Load(), err)
	}

	category.MarkDeleted(int(archived.Load()))
	publishAndClear(ctx, c.events, c.logger, category)

	c.logger.Info("Category deleted with dependents",
		zap.String("category_id", id.String()),
		zap.Int64("archived_master_products", archived.Load()),
		zap.Int64("deleted_sub_products", deleted.Load()))

	return &CascadeResult{
		ArchivedMasterProducts: int(archived.Load()),
		DeletedSubProducts:     deleted.Load(),
		Message:                "category, master product and its sub-products are deleted successfully",
	}, nil
}

// deleteMaster purges sub-products then archives the master, publishing after each committed step
func (c *CascadeCoordinator) deleteMaster(ctx context.Context, master *catalog.MasterProduct) (int64, error) {
	deleted, err := c.subs.DeleteByMasterProduct(ctx, master.ID)
	if err != nil {
		return 0, fmt.Errorf("delete sub-products of master product %s: %w", master.ID, err)
	}
	c.metrics.AddPurgedSubProducts(deleted)
	if deleted > 0 {
		c.prices.Invalidate(ctx)
		publish(ctx, c.events, c.logger, catalog.NewSubProductsPurgedEvent(master.ID, deleted))
	}

	if err := c.masters.Archive(ctx, master.ID); err != nil {
		return deleted, fmt.Errorf("archive master product %s after deleting %d sub-products: %w", master.ID, deleted, err)
	}
	c.metrics.AddArchivedMasters(1)

	if err := master.Archive(); err == nil {
		publishAndClear(ctx, c.events, c.logger, master)
	}
	return deleted, nil
}
