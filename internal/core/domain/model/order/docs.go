// Package order provides domain entities and business logic for customer orders
// within the fulfillment workflow. It implements the Order aggregate root with
// the lifecycle that the warehouse sees: eligible, claimed by a session, shipped.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, lines, and lifecycle
//   - Line: An immutable value object describing one ordered product position
//   - Status: A state machine covering Confirmed, InFulfillment, and Fulfilled
//
// Key business rules:
//   - Orders must have a valid unique identifier, number, and customer name
//   - Orders carry at least one line; lines never change after confirmation
//   - At most one fulfillment session may hold an order at a time
//   - Cancelled sessions release their orders back to the eligible pool
//   - Fulfilled is final and keeps the session reference for traceability
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
