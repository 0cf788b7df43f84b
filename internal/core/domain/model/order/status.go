package order

import (
	"errors"
	"fmt"
)

// Status represents the lifecycle state of an order. The allowed transitions
// form a linear fulfillment path with a rejection branch:
//
//	Draft ──> Pending ──> Approved ──> InAssembly ──> Shipped ──> Delivered ──> Completed
//	  │          │            │
//	  └──────────┴────────────┴──────> Rejected
//
// Completed and Rejected are terminal. The table is data (statusTransitions),
// so the state machine can be inspected and tested independently of the side
// effects fired on particular transitions.
type Status int

const (
	// UnknownStatus catches uninitialized Status values.
	UnknownStatus Status = iota

	// Draft is the initial status; the order is editable and deletable.
	Draft

	// Pending means the order has been submitted and awaits approval.
	Pending

	// Approved means stock has been reserved at the fulfilling warehouse.
	Approved

	// InAssembly means the warehouse is picking the order.
	InAssembly

	// Shipped means the order has left the warehouse.
	Shipped

	// Delivered means the requester confirmed receipt.
	Delivered

	// Completed means stock has moved between warehouses. Terminal.
	Completed

	// Rejected means the order was refused and reservations released. Terminal.
	Rejected
)

// ErrInvalidStatusTransition is the sentinel for transitions outside the table.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// InvalidStatusTransitionError reports a requested transition that is not in
// the transition table.
type InvalidStatusTransitionError struct {
	From Status
	To   Status
}

// NewInvalidStatusTransitionError creates an InvalidStatusTransitionError.
func NewInvalidStatusTransitionError(from, to Status) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{From: from, To: to}
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidStatusTransition, e.From, e.To)
}

func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Draft:         "Draft",
		Pending:       "Pending",
		Approved:      "Approved",
		InAssembly:    "InAssembly",
		Shipped:       "Shipped",
		Delivered:     "Delivered",
		Completed:     "Completed",
		Rejected:      "Rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:      "Draft",
		Pending:    "Pending",
		Approved:   "Approved",
		InAssembly: "InAssembly",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Completed:  "Completed",
		Rejected:   "Rejected",
	}
}

// statusTransitions is the single source of truth for allowed transitions.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:      {Pending, Rejected},
		Pending:    {Approved, Rejected},
		Approved:   {InAssembly, Rejected},
		InAssembly: {Shipped},
		Shipped:    {Delivered},
		Delivered:  {Completed},
		Completed:  {},
		Rejected:   {},
	}
}

// StatusFromString maps a human-readable status name to its Status value.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return UnknownStatus, fmt.Errorf("%w: %q is not a valid status", ErrInvalidStatusTransition, s)
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidStatusTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the table allows moving to the target status.
func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status when the table allows the move,
// otherwise an InvalidStatusTransitionError.
func (s Status) TransitionTo(to Status) (Status, error) {
	if !s.CanTransitionTo(to) {
		return 0, NewInvalidStatusTransitionError(s, to)
	}
	return to, nil
}

// IsTerminal reports whether no further transitions exist from this status.
func (s Status) IsTerminal() bool {
	return len(statusTransitions()[s]) == 0
}

// IsEditable reports whether item mutations are allowed in this status.
func (s Status) IsEditable() bool {
	return s == Draft || s == Pending
}

// IsLockable reports whether an advisory edit lock may be taken in this status.
func (s Status) IsLockable() bool {
	return s == Draft || s == Pending || s == Approved
}
