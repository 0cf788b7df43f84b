package organization

import (
	"fmt"

	"litstock/internal/pkg/errs"
)

// Type represents the level of an organization in the distribution tree.
// The tree runs region -> locality -> group / local subcommittee; both rule
// tables below (ordering and placement) are keyed on this type.
type Type int

const (
	// UnknownType catches uninitialized Type values.
	UnknownType Type = iota

	// Group is a leaf organization served by its locality or region.
	Group

	// LocalSubcommittee is a leaf organization with the same ordering rights as a group.
	LocalSubcommittee

	// Locality sits between groups and regions.
	Locality

	// Region is the root level of the tree.
	Region
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType:       "Unknown",
		Group:             "Group",
		LocalSubcommittee: "LocalSubcommittee",
		Locality:          "Locality",
		Region:            "Region",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[Type]string{
		Group:             "Group",
		LocalSubcommittee: "LocalSubcommittee",
		Locality:          "Locality",
		Region:            "Region",
	}
}

// orderTargets is the ordering rule table: which organization types a requester
// of a given type may order from.
func orderTargets() map[Type][]Type {
	return map[Type][]Type{
		Group:             {Locality, Region},
		LocalSubcommittee: {Locality, Region},
		Locality:          {Region},
		Region:            {Region},
	}
}

// childPlacements is the tree-placement rule table: which child types each
// parent type may hold. Groups and local subcommittees have no children.
func childPlacements() map[Type][]Type {
	return map[Type][]Type{
		Region:            {Locality},
		Locality:          {Group, LocalSubcommittee},
		Group:             {},
		LocalSubcommittee: {},
	}
}

// TypeFromString maps a human-readable type name to its Type value.
func TypeFromString(s string) (Type, error) {
	for orgType, name := range getValidTypeStrings() {
		if name == s {
			return orgType, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause(
		"organization type is invalid",
		fmt.Errorf("%q is not a valid organization type", s),
	)
}

// Validate checks that the Type is one of the defined levels.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"organization type is invalid",
			fmt.Errorf("%d is not a valid organization type", t),
		)
	}
	return nil
}

// String returns the human-readable name of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// CanOrderFrom reports whether an organization of this type may place an order
// fulfilled by an organization of the target type.
func (t Type) CanOrderFrom(target Type) bool {
	for _, allowed := range orderTargets()[t] {
		if allowed == target {
			return true
		}
	}
	return false
}

// CanBeChildOf reports whether an organization of this type may be placed under
// a parent of the given type in the tree.
func (t Type) CanBeChildOf(parent Type) bool {
	for _, allowed := range childPlacements()[parent] {
		if allowed == t {
			return true
		}
	}
	return false
}
