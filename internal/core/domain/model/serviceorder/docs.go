// Package serviceorder provides the central aggregate of the shop: the record
// of one vehicle's visit from intake to gated release. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns the primary status and intake data
//   - Status: A state machine with a closed, statically enumerable transition table
//
// Key business rules:
//   - Only Order methods write the status; sub-workflows report completion
//     through command handlers that call those methods
//   - The technician reference is set only while the status implies active work
//   - At most one billing record is ever attached to an order
//   - Cancellation is an explicit status, never abandonment of in-flight state
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package serviceorder
