// Package errs provides the standardized error types used across the application.
//
// Each error type follows the same pattern: a sentinel error variable for
// errors.Is classification, a struct type carrying failure details, constructor
// functions with and without a cause, an Error() method for formatting, and an
// Unwrap() method targeting the sentinel.
//
// Domain-specific failures (insufficient stock, invalid status transitions and
// the like) live in their owning domain packages but follow the same pattern.
package errs
