package catalog

import (
	"errors"
	"testing"

	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubProduct(t *testing.T) {
	master, err := NewMasterProduct("Pixel", "PX", "", newTestCategory(t))
	require.NoError(t, err)

	t.Run("defaults name and status", func(t *testing.T) {
		sp, err := NewSubProduct(master, "", []Attribute{{AttributeName: "Color", Value: "blue"}}, decimal.NewFromInt(499), "")
		require.NoError(t, err)
		assert.Equal(t, master.ID, sp.MasterProductID)
		assert.Equal(t, "Pixel", sp.Name)
		assert.Equal(t, StatusPublished, sp.Status)
		assert.True(t, sp.Price.Equal(decimal.NewFromInt(499)))
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewSubProduct(master, "x", nil, decimal.NewFromInt(-1), StatusDraft)
		require.Error(t, err)
		de, ok := shared.AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, "price", de.Field)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := NewSubProduct(master, "x", nil, decimal.Zero, Status("SOLD"))
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("requires a published master", func(t *testing.T) {
		archived, err := NewMasterProduct("Old", "OLD", "", newTestCategory(t))
		require.NoError(t, err)
		require.NoError(t, archived.Archive())

		_, err = NewSubProduct(archived, "x", nil, decimal.Zero, "")
		assert.True(t, errors.Is(err, shared.ErrNotFound))

		_, err = NewSubProduct(nil, "x", nil, decimal.Zero, "")
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}

func TestSubProduct_Update(t *testing.T) {
	master, err := NewMasterProduct("Pixel", "PX", "", newTestCategory(t))
	require.NoError(t, err)
	sp, err := NewSubProduct(master, "Pixel Blue", nil, decimal.NewFromInt(10), "")
	require.NoError(t, err)

	price := decimal.RequireFromString("12.50")
	draft := StatusDraft
	require.NoError(t, sp.Update(nil, nil, &price, &draft))
	assert.True(t, sp.Price.Equal(price))
	assert.Equal(t, StatusDraft, sp.Status)

	negative := decimal.NewFromInt(-5)
	assert.Error(t, sp.Update(nil, nil, &negative, nil))
	assert.True(t, sp.Price.Equal(price))
}

func TestBuildListingPlan_DefaultsToPublished(t *testing.T) {
	plan, err := BuildListingPlan(shared.ListingInput{Page: 1, Limit: 10}, nil, MasterProductSearchFields, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"PUBLISHED"}, plan.Statuses)

	plan, err = BuildListingPlan(shared.ListingInput{Page: 1, Limit: 10}, nil, SubProductSearchFields, nil,
		[]Status{StatusPublished, StatusDraft})
	require.NoError(t, err)
	assert.Equal(t, []string{"PUBLISHED", "DRAFT"}, plan.Statuses)
}

func TestEmptyPriceRange(t *testing.T) {
	r := EmptyPriceRange()
	assert.True(t, r.Empty)
	assert.True(t, r.Min.IsZero())
	assert.True(t, r.Max.IsZero())
}
