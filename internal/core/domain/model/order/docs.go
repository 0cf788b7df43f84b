// Package order contains the order aggregate: the lifecycle state machine,
// the order lines with their price snapshots, the advisory edit lock, and the
// order number format. The aggregate enforces every rule that can be decided
// from its own state; rules that need other aggregates (hierarchy legality,
// stock levels) are enforced by the command handlers that load them.
package order
