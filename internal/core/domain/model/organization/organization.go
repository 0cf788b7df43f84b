package organization

import (
	"errors"
	"fmt"

	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/pkg/errs"
	"litstock/internal/pkg/guard"
)

// Domain errors for organization operations.
var (
	// ErrNameIsRequired is returned when attempting to create an organization without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrOrganizationIsNotConstructed is returned when using an improperly initialized Organization.
	ErrOrganizationIsNotConstructed = errors.New("Organization must be created via NewOrganization constructor")
	// ErrInvalidHierarchy is the sentinel for hierarchy rule violations.
	ErrInvalidHierarchy = errors.New("invalid organization hierarchy")
)

// InvalidHierarchyError reports a violation of the hierarchy rule tables,
// either an illegal ordering pair or an illegal tree placement.
type InvalidHierarchyError struct {
	Relation string
	From     Type
	To       Type
}

// NewInvalidHierarchyError creates an InvalidHierarchyError for the given relation
// ("order" or "placement") and type pair.
func NewInvalidHierarchyError(relation string, from, to Type) *InvalidHierarchyError {
	return &InvalidHierarchyError{Relation: relation, From: from, To: to}
}

func (e *InvalidHierarchyError) Error() string {
	return fmt.Sprintf("%s: %s from %s to %s is not allowed",
		ErrInvalidHierarchy, e.Relation, e.From, e.To)
}

func (e *InvalidHierarchyError) Unwrap() error {
	return ErrInvalidHierarchy
}

// Organization represents a node in the literature distribution tree.
// It carries the identity, level, optional parent reference and lifecycle flag;
// soft deletion is expressed by deactivating, never by removing the row.
//
// Invariants:
//   - Valid unique identifier and non-empty name
//   - Type is one of the defined levels
//   - Parent, when present, admits this type per the placement rule table
type Organization struct {
	id       kernel.UUID
	name     string
	orgType  Type
	parentID *kernel.UUID
	isActive bool

	guard guard.ConstructorGuard
}

// NewOrganization creates an active Organization with validated parameters.
// parentID is nil for root-level organizations; when set, the placement rule
// table is not consulted here because the parent's type is unknown to the
// aggregate — callers validate placement against the loaded parent.
func NewOrganization(id kernel.UUID, name string, orgType Type, parentID *kernel.UUID) (*Organization, error) {
	org := &Organization{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		org.setID(id),
		org.setName(name),
		org.setType(orgType),
		org.setParentID(parentID),
	); err != nil {
		return nil, err
	}

	return org, nil
}

// RestoreOrganization reconstructs an Organization from persistent storage,
// including its lifecycle flag.
func RestoreOrganization(
	id kernel.UUID,
	name string,
	orgType Type,
	parentID *kernel.UUID,
	isActive bool,
) (*Organization, error) {
	org := &Organization{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		org.setID(id),
		org.setName(name),
		org.setType(orgType),
		org.setParentID(parentID),
	); err != nil {
		return nil, err
	}

	return org, nil
}

// Validate checks that the Organization was created via a constructor.
func (o *Organization) Validate() error {
	if o == nil {
		return ErrOrganizationIsNotConstructed
	}
	return o.guard.Validate(ErrOrganizationIsNotConstructed)
}

// IsEqual compares two organizations by identifier.
func (o *Organization) IsEqual(other *Organization) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the organization's unique identifier.
func (o *Organization) ID() kernel.UUID {
	return o.id
}

// Name returns the organization's name.
func (o *Organization) Name() string {
	return o.name
}

// OrgType returns the organization's level in the tree.
func (o *Organization) OrgType() Type {
	return o.orgType
}

// ParentID returns the parent organization's ID, or nil for root-level organizations.
func (o *Organization) ParentID() *kernel.UUID {
	return o.parentID
}

// IsActive reports whether the organization is active.
// Inactive organizations are excluded from ordering and stock operations.
func (o *Organization) IsActive() bool {
	return o.isActive
}

// Deactivate flags the organization inactive. This is the only form of deletion;
// rows are never removed so historical orders and movements keep their references.
func (o *Organization) Deactivate() {
	o.isActive = false
}

// Activate flags the organization active again.
func (o *Organization) Activate() {
	o.isActive = true
}

func (o *Organization) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Organization) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	o.name = name
	return nil
}

func (o *Organization) setType(orgType Type) error {
	if err := orgType.Validate(); err != nil {
		return err
	}
	o.orgType = orgType
	return nil
}

func (o *Organization) setParentID(parentID *kernel.UUID) error {
	if parentID != nil {
		if err := parentID.Validate(); err != nil {
			return err
		}
	}
	o.parentID = parentID
	return nil
}
