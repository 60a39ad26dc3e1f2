package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/access"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockCategoryRepository is a mock implementation of catalog.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, plan shared.ListingPlan) ([]catalog.Category, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) Count(ctx context.Context, plan shared.ListingPlan) (int64, error) {
	args := m.Called(ctx, plan)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *catalog.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockMasterProductRepository is a mock implementation of catalog.MasterProductRepository
type MockMasterProductRepository struct {
	mock.Mock
}

func (m *MockMasterProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.MasterProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.MasterProduct), args.Error(1)
}

func (m *MockMasterProductRepository) FindAll(ctx context.Context, plan shared.ListingPlan) ([]catalog.MasterProduct, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.MasterProduct), args.Error(1)
}

func (m *MockMasterProductRepository) Count(ctx context.Context, plan shared.ListingPlan) (int64, error) {
	args := m.Called(ctx, plan)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMasterProductRepository) FindPublishedByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.MasterProduct, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.MasterProduct), args.Error(1)
}

func (m *MockMasterProductRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMasterProductRepository) ExistsBySKU(ctx context.Context, sku string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, sku, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMasterProductRepository) Create(ctx context.Context, product *catalog.MasterProduct) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockMasterProductRepository) Save(ctx context.Context, product *catalog.MasterProduct) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockMasterProductRepository) Archive(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockSubProductRepository is a mock implementation of catalog.SubProductRepository
type MockSubProductRepository struct {
	mock.Mock
}

func (m *MockSubProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.SubProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SubProduct), args.Error(1)
}

func (m *MockSubProductRepository) FindAll(ctx context.Context, plan shared.ListingPlan) ([]catalog.SubProduct, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.SubProduct), args.Error(1)
}

func (m *MockSubProductRepository) Count(ctx context.Context, plan shared.ListingPlan) (int64, error) {
	args := m.Called(ctx, plan)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubProductRepository) Create(ctx context.Context, product *catalog.SubProduct) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockSubProductRepository) Save(ctx context.Context, product *catalog.SubProduct) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockSubProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSubProductRepository) DeleteByMasterProduct(ctx context.Context, masterProductID uuid.UUID) (int64, error) {
	args := m.Called(ctx, masterProductID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubProductRepository) PriceRange(ctx context.Context) (catalog.PriceRange, error) {
	args := m.Called(ctx)
	return args.Get(0).(catalog.PriceRange), args.Error(1)
}

// MockPriceRangeCache is a mock implementation of PriceRangeCache
type MockPriceRangeCache struct {
	mock.Mock
}

func (m *MockPriceRangeCache) Get(ctx context.Context) (catalog.PriceRange, int64, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(catalog.PriceRange), args.Get(1).(int64), args.Bool(2), args.Error(3)
}

func (m *MockPriceRangeCache) Set(ctx context.Context, version int64, pr catalog.PriceRange) error {
	return m.Called(ctx, version, pr).Error(0)
}

func (m *MockPriceRangeCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockEventPublisher is a mock implementation of shared.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	return m.Called(ctx, events).Error(0)
}

// recordingMetrics counts observations; cascades call it from several goroutines
type recordingMetrics struct {
	mu       sync.Mutex
	cascades map[string][]error
	archived int
	purged   int64
	hits     int
	misses   int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{cascades: make(map[string][]error)}
}

func (r *recordingMetrics) ObserveCascade(kind string, err error, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cascades[kind] = append(r.cascades[kind], err)
}

func (r *recordingMetrics) AddArchivedMasters(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.archived += n
}

func (r *recordingMetrics) AddPurgedSubProducts(n int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purged += n
}

func (r *recordingMetrics) ObservePriceCache(hit bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if hit {
		r.hits++
	} else {
		r.misses++
	}
}

type catalogFixture struct {
	categories *MockCategoryRepository
	masters    *MockMasterProductRepository
	subs       *MockSubProductRepository
	cache      *MockPriceRangeCache
	events     *MockEventPublisher
	metrics    *recordingMetrics
	prices     *PriceRangeProvider
	cascade    *CascadeCoordinator
	policy     *access.Policy
}

func newCatalogFixture(concurrency int) *catalogFixture {
	f := &catalogFixture{
		categories: new(MockCategoryRepository),
		masters:    new(MockMasterProductRepository),
		subs:       new(MockSubProductRepository),
		cache:      new(MockPriceRangeCache),
		events:     new(MockEventPublisher),
		metrics:    newRecordingMetrics(),
		policy:     access.DefaultPolicy(),
	}
	f.events.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.cache.On("Invalidate", mock.Anything).Return(nil).Maybe()
	f.prices = NewPriceRangeProvider(f.subs, f.cache, f.metrics, zap.NewNop())
	f.cascade = NewCascadeCoordinator(f.categories, f.masters, f.subs, f.prices, f.events, f.metrics, concurrency, zap.NewNop())
	return f
}

func mustCategory(name string) *catalog.Category {
	c, err := catalog.NewCategory(name, []catalog.Attribute{{AttributeName: "Color", Value: "red"}})
	if err != nil {
		panic(err)
	}
	return c
}

func mustMaster(name, sku string, category *catalog.Category) *catalog.MasterProduct {
	p, err := catalog.NewMasterProduct(name, sku, "", category)
	if err != nil {
		panic(err)
	}
	p.ClearDomainEvents()
	return p
}
