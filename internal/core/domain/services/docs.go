// Package services provides domain services that implement business rules
// spanning multiple aggregates.
//
// The package includes:
//   - HierarchyPolicy: decides order legality and tree placement between organizations
//
// Domain services stay free of persistence concerns; command handlers load the
// aggregates and pass them in.
package services
