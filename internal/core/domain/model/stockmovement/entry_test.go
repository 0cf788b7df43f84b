package stockmovement_test

import (
	"testing"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/stockmovement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewEntry(t *testing.T) {
	t.Run("creates_order_linked_outgoing_entry", func(t *testing.T) {
		fromID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		e, err := stockmovement.NewEntry(
			kernel.NewUUID(),
			stockmovement.Outgoing,
			&fromID,
			kernel.NewUUID(),
			kernel.NewUUID(),
			5,
			price(t, "10.00"),
			&orderID,
			"",
		)

		require.NoError(t, err)
		assert.Equal(t, stockmovement.Outgoing, e.Kind())
		assert.Equal(t, 5, e.Quantity())
		assert.True(t, e.TotalAmount().IsEqual(price(t, "50.00")))
		require.NotNil(t, e.OrderID())
		assert.True(t, e.OrderID().IsEqual(orderID))
		assert.False(t, e.CreatedAt().IsZero())
	})

	t.Run("creates_adjustment_without_source_or_order", func(t *testing.T) {
		e, err := stockmovement.NewEntry(
			kernel.NewUUID(),
			stockmovement.Adjustment,
			nil,
			kernel.NewUUID(),
			kernel.NewUUID(),
			-3,
			price(t, "2.00"),
			nil,
			"stocktake correction",
		)

		require.NoError(t, err)
		assert.Nil(t, e.FromOrganizationID())
		assert.Equal(t, -3, e.Quantity())
		// Total is value-weighted on the absolute quantity.
		assert.True(t, e.TotalAmount().IsEqual(price(t, "6.00")))
	})

	t.Run("rejects_zero_quantity", func(t *testing.T) {
		_, err := stockmovement.NewEntry(
			kernel.NewUUID(), stockmovement.Incoming, nil,
			kernel.NewUUID(), kernel.NewUUID(), 0, price(t, "1.00"), nil, "")
		require.Error(t, err)
	})

	t.Run("rejects_negative_quantity_for_order_movements", func(t *testing.T) {
		_, err := stockmovement.NewEntry(
			kernel.NewUUID(), stockmovement.Incoming, nil,
			kernel.NewUUID(), kernel.NewUUID(), -5, price(t, "1.00"), nil, "")
		require.Error(t, err)
	})

	t.Run("rejects_invalid_kind", func(t *testing.T) {
		_, err := stockmovement.NewEntry(
			kernel.NewUUID(), stockmovement.UnknownKind, nil,
			kernel.NewUUID(), kernel.NewUUID(), 1, price(t, "1.00"), nil, "")
		require.Error(t, err)
	})
}

func TestEntry_Reversal(t *testing.T) {
	t.Run("negates_unlinked_adjustment", func(t *testing.T) {
		orig, err := stockmovement.NewEntry(
			kernel.NewUUID(), stockmovement.Adjustment, nil,
			kernel.NewUUID(), kernel.NewUUID(), 10, price(t, "2.50"), nil, "intake")
		require.NoError(t, err)

		rev, err := orig.Reversal(kernel.NewUUID(), "undo intake")

		require.NoError(t, err)
		assert.Equal(t, stockmovement.Adjustment, rev.Kind())
		assert.Equal(t, -10, rev.Quantity())
		assert.True(t, rev.ToOrganizationID().IsEqual(orig.ToOrganizationID()))
		assert.True(t, rev.LiteratureID().IsEqual(orig.LiteratureID()))
		assert.Nil(t, rev.OrderID())
	})

	t.Run("refuses_order_linked_entries", func(t *testing.T) {
		orderID := kernel.NewUUID()
		linked, err := stockmovement.NewEntry(
			kernel.NewUUID(), stockmovement.Adjustment, nil,
			kernel.NewUUID(), kernel.NewUUID(), 4, price(t, "1.00"), &orderID, "")
		require.NoError(t, err)

		_, err = linked.Reversal(kernel.NewUUID(), "")

		require.ErrorIs(t, err, stockmovement.ErrEntryNotReversible)
	})

	t.Run("refuses_non_adjustment_entries", func(t *testing.T) {
		incoming, err := stockmovement.NewEntry(
			kernel.NewUUID(), stockmovement.Incoming, nil,
			kernel.NewUUID(), kernel.NewUUID(), 4, price(t, "1.00"), nil, "")
		require.NoError(t, err)

		_, err = incoming.Reversal(kernel.NewUUID(), "")

		require.ErrorIs(t, err, stockmovement.ErrEntryNotReversible)
	})
}

func TestKind(t *testing.T) {
	assert.Equal(t, "Incoming", stockmovement.Incoming.String())
	assert.Equal(t, "Outgoing", stockmovement.Outgoing.String())
	assert.Equal(t, "Adjustment", stockmovement.Adjustment.String())
	assert.Equal(t, "Unknown", stockmovement.UnknownKind.String())
	require.Error(t, stockmovement.UnknownKind.Validate())
}
