package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/identity"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSubProductService(f *catalogFixture) *SubProductService {
	return NewSubProductService(f.subs, f.masters, f.prices, f.policy, f.events, zap.NewNop())
}

func mustSub(master *catalog.MasterProduct, status catalog.Status) *catalog.SubProduct {
	s, err := catalog.NewSubProduct(master, "Variant", nil, decimal.NewFromInt(10), status)
	if err != nil {
		panic(err)
	}
	return s
}

func TestSubProductService_GetAll_Visibility(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		role     identity.Role
		statuses []string
	}{
		{identity.RoleCustomer, []string{"PUBLISHED"}},
		{identity.Role(""), []string{"PUBLISHED"}},
		{identity.RoleManager, []string{"PUBLISHED", "DRAFT", "ARCHIVED"}},
		{identity.RoleSuperAdmin, []string{"PUBLISHED", "DRAFT", "ARCHIVED"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			f := newCatalogFixture(1)
			svc := newSubProductService(f)
			masterID, categoryID := uuid.New(), uuid.New()

			f.subs.On("FindAll", ctx, mock.MatchedBy(func(p shared.ListingPlan) bool {
				return assert.ObjectsAreEqual(tt.statuses, p.Statuses) && len(p.Filters) == 2
			})).Return([]catalog.SubProduct{}, nil)
			f.subs.On("Count", ctx, mock.Anything).Return(int64(0), nil)

			list, err := svc.GetAll(ctx, tt.role, ListQuery{
				Listing:          shared.DefaultListingInput(),
				MasterProductIDs: []uuid.UUID{masterID},
				CategoryIDs:      []uuid.UUID{categoryID},
			})
			require.NoError(t, err)
			assert.Empty(t, list.Items)
		})
	}
}

func TestSubProductService_GetByID(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture(1)
	svc := newSubProductService(f)
	master := mustMaster("Pixel", "PX-1", mustCategory("Phones"))
	draft := mustSub(master, catalog.StatusDraft)
	f.subs.On("FindByID", ctx, draft.ID).Return(draft, nil)
	f.masters.On("FindByID", ctx, master.ID).Return(master, nil)

	_, err := svc.GetByID(ctx, identity.RoleCustomer, draft.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	resp, err := svc.GetByID(ctx, identity.RoleManager, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "DRAFT", resp.Status)
}

func TestSubProductService_GetByID_ArchivedMaster(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture(1)
	svc := newSubProductService(f)
	master := mustMaster("Pixel", "PX-1", mustCategory("Phones"))
	published := mustSub(master, catalog.StatusPublished)
	require.NoError(t, master.Archive())
	f.subs.On("FindByID", ctx, published.ID).Return(published, nil)
	f.masters.On("FindByID", ctx, master.ID).Return(master, nil)

	_, err := svc.GetByID(ctx, identity.RoleCustomer, published.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	resp, err := svc.GetByID(ctx, identity.RoleAdmin, published.ID)
	require.NoError(t, err)
	assert.Equal(t, "PUBLISHED", resp.Status)
}

func TestSubProductService_GetByID_MissingMaster(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture(1)
	svc := newSubProductService(f)
	master := mustMaster("Pixel", "PX-1", mustCategory("Phones"))
	sub := mustSub(master, catalog.StatusPublished)
	f.subs.On("FindByID", ctx, sub.ID).Return(sub, nil)
	f.masters.On("FindByID", ctx, master.ID).Return(nil, shared.ErrNotFound)

	_, err := svc.GetByID(ctx, identity.RoleCustomer, sub.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestSubProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("staff creates under a published master", func(t *testing.T) {
		f := newCatalogFixture(1)
		svc := newSubProductService(f)
		master := mustMaster("Pixel", "PX-1", mustCategory("Phones"))
		f.masters.On("FindByID", ctx, master.ID).Return(master, nil)
		f.subs.On("Create", ctx, mock.AnythingOfType("*catalog.SubProduct")).Return(nil)

		resp, err := svc.Create(ctx, identity.RoleManager, CreateSubProductRequest{
			MasterProductID: master.ID,
			Price:           decimal.RequireFromString("19.99"),
			Attributes:      []AttributeInput{{AttributeName: "Color", Value: "blue"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Pixel", resp.SubProductName, "name defaults to the master's")
		assert.Equal(t, "PUBLISHED", resp.Status)
		f.cache.AssertCalled(t, "Invalidate", ctx)
	})

	t.Run("archived master is not found", func(t *testing.T) {
		f := newCatalogFixture(1)
		svc := newSubProductService(f)
		master := mustMaster("Pixel", "PX-1", mustCategory("Phones"))
		require.NoError(t, master.Archive())
		f.masters.On("FindByID", ctx, master.ID).Return(master, nil)

		_, err := svc.Create(ctx, identity.RoleAdmin, CreateSubProductRequest{MasterProductID: master.ID})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.subs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("customer is forbidden before any store access", func(t *testing.T) {
		f := newCatalogFixture(1)
		svc := newSubProductService(f)
		_, err := svc.Create(ctx, identity.RoleCustomer, CreateSubProductRequest{MasterProductID: uuid.New()})
		assert.ErrorIs(t, err, shared.ErrForbidden)
		f.masters.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("missing role is unauthenticated", func(t *testing.T) {
		f := newCatalogFixture(1)
		svc := newSubProductService(f)
		_, err := svc.Create(ctx, identity.Role(""), CreateSubProductRequest{MasterProductID: uuid.New()})
		assert.ErrorIs(t, err, shared.ErrUnauthenticated)
	})
}

func TestSubProductService_Update(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture(1)
	svc := newSubProductService(f)
	sub := mustSub(mustMaster("Pixel", "PX-1", mustCategory("Phones")), catalog.StatusDraft)
	f.subs.On("FindByID", ctx, sub.ID).Return(sub, nil)
	f.subs.On("Save", ctx, sub).Return(nil)

	price := decimal.NewFromInt(25)
	status := "PUBLISHED"
	resp, err := svc.Update(ctx, identity.RoleAdmin, sub.ID, UpdateSubProductRequest{Price: &price, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "PUBLISHED", resp.Status)
	assert.True(t, price.Equal(resp.Price))

	negative := decimal.NewFromInt(-1)
	_, err = svc.Update(ctx, identity.RoleAdmin, sub.ID, UpdateSubProductRequest{Price: &negative})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestSubProductService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes and publishes", func(t *testing.T) {
		f := newCatalogFixture(1)
		svc := newSubProductService(f)
		sub := mustSub(mustMaster("Pixel", "PX-1", mustCategory("Phones")), catalog.StatusPublished)
		f.subs.On("FindByID", ctx, sub.ID).Return(sub, nil)
		f.subs.On("Delete", ctx, sub.ID).Return(nil)

		_, err := svc.Delete(ctx, identity.RoleManager, sub.ID)
		require.NoError(t, err)
		f.events.AssertNumberOfCalls(t, "Publish", 1)
		f.cache.AssertCalled(t, "Invalidate", ctx)
	})

	t.Run("missing sub-product", func(t *testing.T) {
		f := newCatalogFixture(1)
		svc := newSubProductService(f)
		id := uuid.New()
		f.subs.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Delete(ctx, identity.RoleManager, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		f := newCatalogFixture(1)
		svc := newSubProductService(f)
		_, err := svc.Delete(ctx, identity.RoleCustomer, uuid.New())
		assert.ErrorIs(t, err, shared.ErrForbidden)
		f.subs.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}
