package inventory_test

import (
	"testing"
	"time"

	"litstock/internal/core/domain/model/inventory"
	"litstock/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(t *testing.T, quantity, reserved int) *inventory.Record {
	t.Helper()
	r, err := inventory.RestoreRecord(kernel.NewUUID(), kernel.NewUUID(), quantity, reserved, time.Now().UTC())
	require.NoError(t, err)
	return r
}

func TestNewRecord(t *testing.T) {
	t.Run("starts_empty", func(t *testing.T) {
		r, err := inventory.NewRecord(kernel.NewUUID(), kernel.NewUUID())

		require.NoError(t, err)
		assert.Zero(t, r.Quantity())
		assert.Zero(t, r.Reserved())
		assert.Zero(t, r.Available())
	})

	t.Run("rejects_zero_ids", func(t *testing.T) {
		var zero kernel.UUID
		_, err := inventory.NewRecord(zero, kernel.NewUUID())
		require.Error(t, err)

		_, err = inventory.NewRecord(kernel.NewUUID(), zero)
		require.Error(t, err)
	})
}

func TestRestoreRecord(t *testing.T) {
	t.Run("rejects_negative_quantity", func(t *testing.T) {
		_, err := inventory.RestoreRecord(kernel.NewUUID(), kernel.NewUUID(), -1, 0, time.Now())
		require.Error(t, err)
	})

	t.Run("rejects_reserved_above_quantity", func(t *testing.T) {
		_, err := inventory.RestoreRecord(kernel.NewUUID(), kernel.NewUUID(), 5, 6, time.Now())
		require.Error(t, err)
	})

	t.Run("accepts_reserved_equal_to_quantity", func(t *testing.T) {
		r, err := inventory.RestoreRecord(kernel.NewUUID(), kernel.NewUUID(), 5, 5, time.Now())
		require.NoError(t, err)
		assert.Zero(t, r.Available())
	})
}

func TestRecord_Reserve(t *testing.T) {
	t.Run("holds_available_stock", func(t *testing.T) {
		// Given quantity 100, nothing reserved
		r := newRecord(t, 100, 0)

		// When
		require.NoError(t, r.Reserve(30))

		// Then
		assert.Equal(t, 30, r.Reserved())
		assert.Equal(t, 70, r.Available())
	})

	t.Run("fails_when_exceeding_available", func(t *testing.T) {
		r := newRecord(t, 100, 30)

		err := r.Reserve(80)

		require.ErrorIs(t, err, inventory.ErrInsufficientStock)
		var stockErr *inventory.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 80, stockErr.Requested)
		assert.Equal(t, 70, stockErr.Available)
		// Reservation unchanged after the failure.
		assert.Equal(t, 30, r.Reserved())
	})

	t.Run("can_reserve_exactly_available", func(t *testing.T) {
		r := newRecord(t, 10, 4)
		require.NoError(t, r.Reserve(6))
		assert.Zero(t, r.Available())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		r := newRecord(t, 10, 0)
		require.Error(t, r.Reserve(0))
		require.Error(t, r.Reserve(-3))
	})
}

func TestRecord_Release(t *testing.T) {
	t.Run("frees_reserved_stock", func(t *testing.T) {
		r := newRecord(t, 50, 20)

		require.NoError(t, r.Release(15))

		assert.Equal(t, 5, r.Reserved())
		assert.Equal(t, 45, r.Available())
	})

	t.Run("fails_when_releasing_more_than_reserved", func(t *testing.T) {
		r := newRecord(t, 50, 10)

		err := r.Release(11)

		require.ErrorIs(t, err, inventory.ErrOverRelease)
		assert.Equal(t, 10, r.Reserved())
	})
}

func TestRecord_ReleaseClamped(t *testing.T) {
	t.Run("floors_at_zero", func(t *testing.T) {
		r := newRecord(t, 50, 10)

		r.ReleaseClamped(25)

		assert.Zero(t, r.Reserved())
		assert.Equal(t, 50, r.Quantity())
	})

	t.Run("ignores_non_positive_quantity", func(t *testing.T) {
		r := newRecord(t, 50, 10)
		r.ReleaseClamped(0)
		r.ReleaseClamped(-5)
		assert.Equal(t, 10, r.Reserved())
	})
}

func TestRecord_Adjust(t *testing.T) {
	t.Run("applies_positive_delta", func(t *testing.T) {
		r := newRecord(t, 10, 0)
		require.NoError(t, r.Adjust(5))
		assert.Equal(t, 15, r.Quantity())
	})

	t.Run("applies_negative_delta", func(t *testing.T) {
		r := newRecord(t, 10, 0)
		require.NoError(t, r.Adjust(-10))
		assert.Zero(t, r.Quantity())
	})

	t.Run("fails_when_result_negative", func(t *testing.T) {
		r := newRecord(t, 10, 0)

		err := r.Adjust(-11)

		require.ErrorIs(t, err, inventory.ErrNegativeQuantity)
		assert.Equal(t, 10, r.Quantity())
	})

	t.Run("fails_when_result_below_reserved", func(t *testing.T) {
		r := newRecord(t, 10, 8)

		err := r.Adjust(-5)

		require.ErrorIs(t, err, inventory.ErrInsufficientStock)
		assert.Equal(t, 10, r.Quantity())
	})
}

func TestRecord_ConsumeReserved(t *testing.T) {
	t.Run("removes_stock_and_reservation_together", func(t *testing.T) {
		r := newRecord(t, 20, 5)

		require.NoError(t, r.ConsumeReserved(5))

		assert.Equal(t, 15, r.Quantity())
		assert.Zero(t, r.Reserved())
	})

	t.Run("fails_beyond_reservation", func(t *testing.T) {
		r := newRecord(t, 20, 5)
		require.ErrorIs(t, r.ConsumeReserved(6), inventory.ErrOverRelease)
	})
}

func TestRecord_Receive(t *testing.T) {
	t.Run("adds_incoming_stock", func(t *testing.T) {
		r := newRecord(t, 3, 0)
		require.NoError(t, r.Receive(7))
		assert.Equal(t, 10, r.Quantity())
	})
}

// The core invariant holds after any sequence of successful mutations.
func TestRecord_InvariantUnderMixedOperations(t *testing.T) {
	r := newRecord(t, 100, 0)

	require.NoError(t, r.Reserve(40))
	require.NoError(t, r.Release(10))
	require.NoError(t, r.Adjust(-20))
	require.NoError(t, r.ConsumeReserved(30))
	require.NoError(t, r.Receive(5))

	assert.GreaterOrEqual(t, r.Reserved(), 0)
	assert.GreaterOrEqual(t, r.Quantity(), r.Reserved())
}

func TestRecord_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var r inventory.Record
		require.ErrorIs(t, r.Validate(), inventory.ErrRecordIsNotConstructed)
	})
}
