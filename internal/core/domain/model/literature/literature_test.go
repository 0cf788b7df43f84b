package literature_test

import (
	"testing"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/literature"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewLiterature(t *testing.T) {
	t.Run("creates_active_item", func(t *testing.T) {
		id := kernel.NewUUID()

		item, err := literature.NewLiterature(id, "Basic Text", "books", price(t, "25.99"))

		require.NoError(t, err)
		assert.True(t, item.ID().IsEqual(id))
		assert.Equal(t, "Basic Text", item.Title())
		assert.Equal(t, "books", item.Category())
		assert.Equal(t, "25.99", item.Price().String())
		assert.True(t, item.IsActive())
	})

	t.Run("allows_empty_category", func(t *testing.T) {
		item, err := literature.NewLiterature(kernel.NewUUID(), "Pamphlet", "", price(t, "0.50"))

		require.NoError(t, err)
		assert.Empty(t, item.Category())
	})

	t.Run("allows_zero_price", func(t *testing.T) {
		item, err := literature.NewLiterature(kernel.NewUUID(), "Free Flyer", "flyers", kernel.ZeroMoney())

		require.NoError(t, err)
		assert.True(t, item.Price().IsZero())
	})

	t.Run("rejects_empty_title", func(t *testing.T) {
		_, err := literature.NewLiterature(kernel.NewUUID(), "", "books", price(t, "1.00"))
		require.ErrorIs(t, err, literature.ErrTitleIsRequired)
	})

	t.Run("rejects_zero_id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := literature.NewLiterature(zero, "Basic Text", "books", price(t, "1.00"))
		require.Error(t, err)
	})
}

func TestLiterature_ChangePrice(t *testing.T) {
	t.Run("updates_current_price", func(t *testing.T) {
		item, _ := literature.NewLiterature(kernel.NewUUID(), "Basic Text", "books", price(t, "25.99"))

		require.NoError(t, item.ChangePrice(price(t, "27.50")))

		assert.Equal(t, "27.50", item.Price().String())
	})
}

func TestLiterature_Lifecycle(t *testing.T) {
	item, _ := literature.NewLiterature(kernel.NewUUID(), "Basic Text", "books", price(t, "25.99"))

	item.Deactivate()
	assert.False(t, item.IsActive())

	item.Activate()
	assert.True(t, item.IsActive())
}

func TestLiterature_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var item literature.Literature
		require.ErrorIs(t, item.Validate(), literature.ErrLiteratureIsNotConstructed)
	})
}
