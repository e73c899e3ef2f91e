// Package session provides domain entities and business logic for warehouse
// fulfillment sessions. It implements the Session aggregate root that turns a
// batch of confirmed orders into one consolidated pick list and redistributes
// the collected units back to individual orders during packing.
//
// The package includes:
//   - Session: The aggregate root that drives the fulfillment lifecycle
//   - Member: The participation of one order in a session, with label state
//   - PickRequirement: One row of the aggregated pick list
//   - PackingLine: One product's need and progress within one specific order
//   - PoolItem: The derived view of collected-but-not-yet-boxed units
//   - Status: The session lifecycle state machine
//
// Key business rules:
//   - The member order set is non-empty and fixed at session creation
//   - Picked and packed quantities never leave their allowed ranges
//   - The packing pool is always derived from line truth, never stored
//   - Labels are printed only for fully packed orders
//   - Completed and cancelled sessions reject every further mutation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package session
