package catalog

import (
	"errors"
	"testing"

	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("keeps attribute order and assigns ids", func(t *testing.T) {
		c, err := NewCategory(" Phones ", []Attribute{
			{AttributeName: "Color", Value: "black"},
			{ID: "fixed", AttributeName: " Storage ", Value: "128GB"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Phones", c.Name)
		require.Len(t, c.Attributes, 2)
		assert.Equal(t, "Color", c.Attributes[0].AttributeName)
		assert.NotEmpty(t, c.Attributes[0].ID)
		assert.Equal(t, "fixed", c.Attributes[1].ID)
		assert.Equal(t, "Storage", c.Attributes[1].AttributeName)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCategory("  ", nil)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("rejects duplicate attribute names", func(t *testing.T) {
		_, err := NewCategory("Phones", []Attribute{
			{AttributeName: "Color"},
			{AttributeName: "color"},
		})
		require.Error(t, err)
		de, ok := shared.AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, "attributes", de.Field)
	})
}

func TestCategory_SnapshotIsDetached(t *testing.T) {
	c, err := NewCategory("Phones", []Attribute{{AttributeName: "Color", Value: "black"}})
	require.NoError(t, err)

	snap := c.Snapshot()
	newName := "Mobiles"
	require.NoError(t, c.Update(&newName, []Attribute{{AttributeName: "Weight"}}))

	assert.Equal(t, "Phones", snap.Name)
	assert.Equal(t, "Color", snap.Attributes[0].AttributeName)
	assert.Equal(t, c.ID, snap.ID)
}
