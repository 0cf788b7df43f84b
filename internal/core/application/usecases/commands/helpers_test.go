package commands_test

import (
	"testing"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/order"
	"litstock/internal/core/domain/model/organization"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

// newDraftOrder creates an order with a single line of 5 units at 10.00.
func newDraftOrder(t *testing.T) *order.Order {
	t.Helper()
	number, err := order.NewNumber("ORD-20250101-0001")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), number, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, o.AddItem(kernel.NewUUID(), 5, money(t, "10.00")))
	return o
}

// orderInStatus advances a fresh draft order along the happy path until it
// reaches the target status.
func orderInStatus(t *testing.T, target order.Status) *order.Order {
	t.Helper()
	o := newDraftOrder(t)
	for _, step := range []order.Status{
		order.Pending, order.Approved, order.InAssembly,
		order.Shipped, order.Delivered, order.Completed,
	} {
		if o.Status() == target {
			return o
		}
		require.NoError(t, o.ChangeStatus(step))
	}
	require.Equal(t, target, o.Status())
	return o
}

func newRegion(t *testing.T) *organization.Organization {
	t.Helper()
	org, err := organization.NewOrganization(kernel.NewUUID(), "North Region", organization.Region, nil)
	require.NoError(t, err)
	return org
}

func newLocality(t *testing.T, parent *organization.Organization) *organization.Organization {
	t.Helper()
	parentID := parent.ID()
	org, err := organization.NewOrganization(kernel.NewUUID(), "Riverside Locality", organization.Locality, &parentID)
	require.NoError(t, err)
	return org
}
