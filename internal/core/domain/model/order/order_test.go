package order_test

import (
	"testing"
	"time"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func draftOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		order.FormatNumber(time.Now(), 1),
		kernel.NewUUID(),
		kernel.NewUUID(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts_as_empty_draft", func(t *testing.T) {
		o := draftOrder(t)

		assert.Equal(t, order.Draft, o.Status())
		assert.Empty(t, o.Items())
		assert.True(t, o.TotalAmount().IsZero())
		assert.False(t, o.IsLocked())
	})

	t.Run("rejects_same_organization_on_both_sides", func(t *testing.T) {
		orgID := kernel.NewUUID()

		_, err := order.NewOrder(kernel.NewUUID(), order.FormatNumber(time.Now(), 1), orgID, orgID)

		require.ErrorIs(t, err, order.ErrSameOrganization)
	})

	t.Run("rejects_invalid_number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), order.Number("bogus"), kernel.NewUUID(), kernel.NewUUID())
		require.Error(t, err)
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("adds_line_and_recomputes_total", func(t *testing.T) {
		// Given a draft order
		o := draftOrder(t)
		litID := kernel.NewUUID()

		// When adding 2 units at 25.99
		require.NoError(t, o.AddItem(litID, 2, money(t, "25.99")))

		// Then the line exists and the total is 51.98
		require.Len(t, o.Items(), 1)
		assert.True(t, o.TotalAmount().IsEqual(money(t, "51.98")))
		assert.Equal(t, 2, o.Item(litID).Quantity())
	})

	t.Run("total_accumulates_across_lines", func(t *testing.T) {
		o := draftOrder(t)

		require.NoError(t, o.AddItem(kernel.NewUUID(), 2, money(t, "25.99")))
		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, money(t, "10.00")))

		assert.True(t, o.TotalAmount().IsEqual(money(t, "61.98")))
	})

	t.Run("rejects_duplicate_literature", func(t *testing.T) {
		o := draftOrder(t)
		litID := kernel.NewUUID()
		require.NoError(t, o.AddItem(litID, 1, money(t, "5.00")))

		err := o.AddItem(litID, 3, money(t, "5.00"))

		require.ErrorIs(t, err, order.ErrDuplicateItem)
		assert.Len(t, o.Items(), 1)
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		o := draftOrder(t)
		require.Error(t, o.AddItem(kernel.NewUUID(), 0, money(t, "5.00")))
	})

	t.Run("refused_outside_draft_and_pending", func(t *testing.T) {
		o := draftOrder(t)
		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, money(t, "5.00")))
		require.NoError(t, o.ChangeStatus(order.Pending))
		require.NoError(t, o.ChangeStatus(order.Approved))

		err := o.AddItem(kernel.NewUUID(), 1, money(t, "5.00"))

		require.ErrorIs(t, err, order.ErrOrderNotEditable)
	})

	t.Run("allowed_in_pending", func(t *testing.T) {
		o := draftOrder(t)
		require.NoError(t, o.ChangeStatus(order.Pending))
		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, money(t, "5.00")))
	})
}

func TestOrder_UpdateItem(t *testing.T) {
	t.Run("changes_quantity_and_keeps_price_snapshot", func(t *testing.T) {
		o := draftOrder(t)
		litID := kernel.NewUUID()
		require.NoError(t, o.AddItem(litID, 2, money(t, "25.99")))

		require.NoError(t, o.UpdateItem(litID, 3))

		assert.Equal(t, 3, o.Item(litID).Quantity())
		assert.True(t, o.Item(litID).UnitPrice().IsEqual(money(t, "25.99")))
		assert.True(t, o.TotalAmount().IsEqual(money(t, "77.97")))
	})

	t.Run("fails_for_missing_line", func(t *testing.T) {
		o := draftOrder(t)
		err := o.UpdateItem(kernel.NewUUID(), 3)
		require.Error(t, err)
	})
}

func TestOrder_RemoveItem(t *testing.T) {
	t.Run("removes_line_and_recomputes_total", func(t *testing.T) {
		o := draftOrder(t)
		litID := kernel.NewUUID()
		require.NoError(t, o.AddItem(litID, 2, money(t, "25.99")))
		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, money(t, "10.00")))

		require.NoError(t, o.RemoveItem(litID))

		assert.Len(t, o.Items(), 1)
		assert.True(t, o.TotalAmount().IsEqual(money(t, "10.00")))
	})

	t.Run("fails_for_missing_line", func(t *testing.T) {
		o := draftOrder(t)
		require.Error(t, o.RemoveItem(kernel.NewUUID()))
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("walks_the_full_fulfillment_path", func(t *testing.T) {
		o := draftOrder(t)
		require.NoError(t, o.AddItem(kernel.NewUUID(), 5, money(t, "10.00")))

		for _, next := range []order.Status{
			order.Pending, order.Approved, order.InAssembly,
			order.Shipped, order.Delivered, order.Completed,
		} {
			require.NoError(t, o.ChangeStatus(next))
			assert.Equal(t, next, o.Status())
		}
	})

	t.Run("refuses_jumps_outside_the_table", func(t *testing.T) {
		o := draftOrder(t)

		err := o.ChangeStatus(order.Completed)

		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Draft, o.Status())
	})

	t.Run("locked_order_can_only_be_rejected", func(t *testing.T) {
		o := draftOrder(t)
		require.NoError(t, o.Lock(kernel.NewUUID()))

		err := o.ChangeStatus(order.Pending)
		require.ErrorIs(t, err, order.ErrOrderIsLocked)

		require.NoError(t, o.ChangeStatus(order.Rejected))
		assert.Equal(t, order.Rejected, o.Status())
	})
}

func TestOrder_Lock(t *testing.T) {
	t.Run("locks_in_lockable_statuses", func(t *testing.T) {
		userID := kernel.NewUUID()
		o := draftOrder(t)

		require.NoError(t, o.Lock(userID))

		assert.True(t, o.IsLocked())
		require.NotNil(t, o.LockedBy())
		assert.True(t, o.LockedBy().IsEqual(userID))
		assert.NotNil(t, o.LockedAt())
	})

	t.Run("fails_when_already_locked", func(t *testing.T) {
		o := draftOrder(t)
		require.NoError(t, o.Lock(kernel.NewUUID()))

		err := o.Lock(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrOrderIsLocked)
	})

	t.Run("fails_in_non_lockable_status", func(t *testing.T) {
		o := draftOrder(t)
		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, money(t, "5.00")))
		require.NoError(t, o.ChangeStatus(order.Pending))
		require.NoError(t, o.ChangeStatus(order.Approved))
		require.NoError(t, o.ChangeStatus(order.InAssembly))

		err := o.Lock(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrOrderNotLockable)
	})

	t.Run("item_mutations_refused_while_locked", func(t *testing.T) {
		o := draftOrder(t)
		litID := kernel.NewUUID()
		require.NoError(t, o.AddItem(litID, 1, money(t, "5.00")))
		holder := kernel.NewUUID()
		require.NoError(t, o.Lock(holder))

		// Locked means locked for everyone, the holder included.
		require.ErrorIs(t, o.AddItem(kernel.NewUUID(), 1, money(t, "5.00")), order.ErrOrderIsLocked)
		require.ErrorIs(t, o.UpdateItem(litID, 2), order.ErrOrderIsLocked)
		require.ErrorIs(t, o.RemoveItem(litID), order.ErrOrderIsLocked)
	})
}

func TestOrder_Unlock(t *testing.T) {
	t.Run("holder_can_unlock", func(t *testing.T) {
		userID := kernel.NewUUID()
		o := draftOrder(t)
		require.NoError(t, o.Lock(userID))

		require.NoError(t, o.Unlock(userID, false))

		assert.False(t, o.IsLocked())
		assert.Nil(t, o.LockedBy())
	})

	t.Run("other_user_cannot_unlock", func(t *testing.T) {
		o := draftOrder(t)
		require.NoError(t, o.Lock(kernel.NewUUID()))

		err := o.Unlock(kernel.NewUUID(), false)

		require.ErrorIs(t, err, order.ErrNotLockOwner)
		assert.True(t, o.IsLocked())
	})

	t.Run("admin_can_unlock", func(t *testing.T) {
		o := draftOrder(t)
		require.NoError(t, o.Lock(kernel.NewUUID()))

		require.NoError(t, o.Unlock(kernel.NewUUID(), true))

		assert.False(t, o.IsLocked())
	})

	t.Run("unlocking_unlocked_order_is_noop", func(t *testing.T) {
		o := draftOrder(t)
		require.NoError(t, o.Unlock(kernel.NewUUID(), false))
	})
}

func TestOrder_EnsureDeletable(t *testing.T) {
	t.Run("unlocked_draft_is_deletable", func(t *testing.T) {
		require.NoError(t, draftOrder(t).EnsureDeletable())
	})

	t.Run("locked_draft_is_not", func(t *testing.T) {
		o := draftOrder(t)
		require.NoError(t, o.Lock(kernel.NewUUID()))
		require.ErrorIs(t, o.EnsureDeletable(), order.ErrOrderIsLocked)
	})

	t.Run("non_draft_is_not", func(t *testing.T) {
		o := draftOrder(t)
		require.NoError(t, o.ChangeStatus(order.Pending))
		require.ErrorIs(t, o.EnsureDeletable(), order.ErrOrderNotDeletable)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("recomputes_total_from_lines", func(t *testing.T) {
		item1, err := order.RestoreItem(kernel.NewUUID(), 2, money(t, "25.99"))
		require.NoError(t, err)
		item2, err := order.RestoreItem(kernel.NewUUID(), 1, money(t, "10.00"))
		require.NoError(t, err)

		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			order.Number("ORD-20260901-0007"),
			kernel.NewUUID(), kernel.NewUUID(),
			order.Approved,
			nil, nil,
			[]*order.Item{item1, item2},
		)

		require.NoError(t, err)
		assert.Equal(t, order.Approved, o.Status())
		assert.True(t, o.TotalAmount().IsEqual(money(t, "61.98")))
	})

	t.Run("restores_lock_state", func(t *testing.T) {
		lockedAt := time.Now().UTC()
		lockedBy := kernel.NewUUID()

		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			order.Number("ORD-20260901-0008"),
			kernel.NewUUID(), kernel.NewUUID(),
			order.Pending,
			&lockedAt, &lockedBy,
			nil,
		)

		require.NoError(t, err)
		assert.True(t, o.IsLocked())
	})

	t.Run("rejects_lock_fields_set_separately", func(t *testing.T) {
		lockedAt := time.Now().UTC()

		_, err := order.RestoreOrder(
			kernel.NewUUID(),
			order.Number("ORD-20260901-0009"),
			kernel.NewUUID(), kernel.NewUUID(),
			order.Pending,
			&lockedAt, nil,
			nil,
		)

		require.Error(t, err)
	})

	t.Run("rejects_duplicate_lines", func(t *testing.T) {
		litID := kernel.NewUUID()
		item1, _ := order.RestoreItem(litID, 1, money(t, "1.00"))
		item2, _ := order.RestoreItem(litID, 2, money(t, "1.00"))

		_, err := order.RestoreOrder(
			kernel.NewUUID(),
			order.Number("ORD-20260901-0010"),
			kernel.NewUUID(), kernel.NewUUID(),
			order.Draft,
			nil, nil,
			[]*order.Item{item1, item2},
		)

		require.ErrorIs(t, err, order.ErrDuplicateItem)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
