package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/identity"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCategoryService(f *catalogFixture) *CategoryService {
	return NewCategoryService(f.categories, f.cascade, f.policy, zap.NewNop())
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with attributes in order", func(t *testing.T) {
		f := newCatalogFixture(1)
		svc := newCategoryService(f)
		f.categories.On("ExistsByName", ctx, "Phones", (*uuid.UUID)(nil)).Return(false, nil)
		f.categories.On("Create", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

		resp, err := svc.Create(ctx, identity.RoleManager, CreateCategoryRequest{
			Name: " Phones ",
			Attributes: []AttributeInput{
				{AttributeName: "Color", Value: "black"},
				{AttributeName: "Storage", Value: "128GB"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Phones", resp.Name)
		require.Len(t, resp.Attributes, 2)
		assert.Equal(t, "Color", resp.Attributes[0].AttributeName)
		assert.Equal(t, "Storage", resp.Attributes[1].AttributeName)
		assert.NotEmpty(t, resp.Attributes[0].ID)
	})

	t.Run("duplicate name", func(t *testing.T) {
		f := newCatalogFixture(1)
		svc := newCategoryService(f)
		f.categories.On("ExistsByName", ctx, "Phones", (*uuid.UUID)(nil)).Return(true, nil)

		_, err := svc.Create(ctx, identity.RoleAdmin, CreateCategoryRequest{Name: "Phones"})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		f.categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		f := newCatalogFixture(1)
		svc := newCategoryService(f)
		_, err := svc.Create(ctx, identity.RoleCustomer, CreateCategoryRequest{Name: "Phones"})
		assert.ErrorIs(t, err, shared.ErrForbidden)
		f.categories.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCategoryService_List(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture(1)
	svc := newCategoryService(f)
	category := mustCategory("Phones")

	f.categories.On("FindAll", ctx, mock.MatchedBy(func(p shared.ListingPlan) bool {
		return p.Search == "pho" && len(p.Statuses) == 0 && p.SortOrder == shared.SortAsc
	})).Return([]catalog.Category{*category}, nil)
	f.categories.On("Count", ctx, mock.Anything).Return(int64(1), nil)

	list, err := svc.List(ctx, ListQuery{
		Listing:      shared.ListingInput{Page: 1, Limit: 10, Search: "Pho", SortOrder: "asc"},
		SearchFields: []string{"name"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.TotalCount)
	require.Len(t, list.Items, 1)
	assert.Equal(t, category.ID, list.Items[0].ID)

	_, err = svc.List(ctx, ListQuery{Listing: shared.ListingInput{Page: 0, Limit: 10}})
	de, ok := shared.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, "page", de.Field)
}

func TestCategoryService_Update(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture(1)
	svc := newCategoryService(f)
	category := mustCategory("Phones")
	f.categories.On("FindByID", ctx, category.ID).Return(category, nil)
	f.categories.On("ExistsByName", ctx, "Mobiles", &category.ID).Return(false, nil)
	f.categories.On("Save", ctx, category).Return(nil)

	name := "Mobiles"
	resp, err := svc.Update(ctx, identity.RoleAdmin, category.ID, UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Mobiles", resp.Name)
	assert.Len(t, resp.Attributes, 1, "nil attributes keep the current list")
}

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("runs the cascade", func(t *testing.T) {
		f := newCatalogFixture(1)
		svc := newCategoryService(f)
		category := mustCategory("Phones")
		f.categories.On("FindByID", mock.Anything, category.ID).Return(category, nil)
		f.masters.On("FindPublishedByCategory", mock.Anything, category.ID).Return([]catalog.MasterProduct{}, nil)
		f.categories.On("Delete", mock.Anything, category.ID).Return(nil)

		result, err := svc.Delete(ctx, identity.RoleSuperAdmin, category.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, result.Message)
	})

	t.Run("customer is forbidden before any store access", func(t *testing.T) {
		f := newCatalogFixture(1)
		svc := newCategoryService(f)
		_, err := svc.Delete(ctx, identity.RoleCustomer, uuid.New())
		assert.ErrorIs(t, err, shared.ErrForbidden)
		f.categories.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}
