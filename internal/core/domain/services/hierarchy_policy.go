package services

import (
	"litstock/internal/core/domain/model/organization"
	"litstock/internal/pkg/errs"
)

// HierarchyPolicy is a domain service that decides whether two organizations
// may participate in an order and whether a child organization may be placed
// under a parent in the distribution tree.
//
// The rule tables themselves live on organization.Type; this service adds the
// cross-aggregate checks (both sides loaded, both active) that a single
// aggregate cannot decide on its own.
type HierarchyPolicy struct{}

// NewHierarchyPolicy creates a new HierarchyPolicy instance.
func NewHierarchyPolicy() HierarchyPolicy {
	return HierarchyPolicy{}
}

// CanOrder checks that from may place an order fulfilled by to.
// Both organizations must be valid and active, and the (fromType, toType) pair
// must be in the ordering rule table.
func (p HierarchyPolicy) CanOrder(from, to *organization.Organization) error {
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if !from.IsActive() {
		return errs.NewValueIsInvalidError("ordering organization is inactive")
	}
	if !to.IsActive() {
		return errs.NewValueIsInvalidError("fulfilling organization is inactive")
	}
	if !from.OrgType().CanOrderFrom(to.OrgType()) {
		return organization.NewInvalidHierarchyError("order", from.OrgType(), to.OrgType())
	}
	return nil
}

// CanBeChildOf checks that an organization of childType may be placed under the
// given parent. The parent must be valid and active.
func (p HierarchyPolicy) CanBeChildOf(childType organization.Type, parent *organization.Organization) error {
	if err := childType.Validate(); err != nil {
		return err
	}
	if err := parent.Validate(); err != nil {
		return err
	}
	if !parent.IsActive() {
		return errs.NewValueIsInvalidError("parent organization is inactive")
	}
	if !childType.CanBeChildOf(parent.OrgType()) {
		return organization.NewInvalidHierarchyError("placement", childType, parent.OrgType())
	}
	return nil
}
