// Package kernel contains shared value objects used across the domain model:
// UUID identifiers and Money amounts. Value objects here are immutable, validate
// themselves, and are constructed only through their factory functions.
package kernel
