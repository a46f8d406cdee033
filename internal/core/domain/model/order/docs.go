// Package order provides the Order aggregate and its lifecycle rules.
//
// The package includes:
//   - Order: aggregate root holding the client/restaurant references, the item snapshot,
//     the total and the lifecycle timestamps
//   - Item: immutable line item (quantity, unit price, description)
//   - Status: forward-only state machine PENDING -> IN_PROGRESS -> COMPLETED
//   - Event: domain events recorded on creation and on status changes
//
// Key business rules:
//   - An order is created with at least one item; the total is the exact sum of
//     quantity * unit price and is never recomputed afterwards
//   - Only the status changes after creation; items and total are a snapshot
//   - COMPLETED is terminal; completedAt is stamped once, on the first move into COMPLETED
//   - Requesting the current status again is a no-op
package order
