package business_test

import (
	"testing"

	"entregaloya/internal/core/domain/model/business"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBusiness(t *testing.T) {
	t.Run("should create business with valid parameters", func(t *testing.T) {
		b, err := business.NewBusiness(42, "Panaderia Sol")

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Zero(t, b.ID())
		assert.Equal(t, int64(42), b.OwnerUserID())
		assert.Equal(t, "Panaderia Sol", b.Name())
		assert.Nil(t, b.CategoryID())
	})

	t.Run("should reject invalid input", func(t *testing.T) {
		b, err := business.NewBusiness(0, "Panaderia Sol")
		require.Error(t, err)
		assert.Nil(t, b)

		b, err = business.NewBusiness(42, "")
		require.Error(t, err)
		assert.Nil(t, b)
	})
}

func TestRestoreBusiness(t *testing.T) {
	t.Run("should rebuild business with id and category", func(t *testing.T) {
		categoryID := int64(2)

		b, err := business.RestoreBusiness(3, 42, "Panaderia Sol", &categoryID)

		require.NoError(t, err)
		assert.Equal(t, int64(3), b.ID())
		assert.Equal(t, int64(2), *b.CategoryID())
	})

	t.Run("should reject non-positive id", func(t *testing.T) {
		b, err := business.RestoreBusiness(0, 42, "Panaderia Sol", nil)

		require.Error(t, err)
		assert.Nil(t, b)
	})
}
