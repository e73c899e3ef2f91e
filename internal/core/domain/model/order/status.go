package order

import (
	"fmt"

	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"
)

// Status represents the lifecycle state of a customer order as seen by the
// fulfillment workflow. It implements a state machine with defined transitions
// so orders cannot be claimed twice or shipped before they are packed.
//
// State transitions:
//
//	Confirmed ──> InFulfillment ──> Fulfilled
//	    ^              │
//	    └──────────────┘
//	 (released when the session is cancelled)
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Confirmed is the status of a paid order that is waiting for fulfillment.
	// Only confirmed orders are eligible for inclusion in a session.
	Confirmed

	// InFulfillment indicates the order has been claimed by a fulfillment session.
	// The order cannot join another session while in this status.
	InFulfillment

	// Fulfilled indicates the order has been packed and its session completed.
	// This is a final state with no further transitions allowed.
	Fulfilled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Confirmed:     "Confirmed",
		InFulfillment: "InFulfillment",
		Fulfilled:     "Fulfilled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Confirmed:     "Confirmed",
		InFulfillment: "InFulfillment",
		Fulfilled:     "Fulfilled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Confirmed, InFulfillment, Fulfilled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Confirmed", "InFulfillment", or "Fulfilled" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateStartFulfillment checks if the status allows the order to be claimed
// by a fulfillment session, without performing the transition.
//
// Only Confirmed orders can start fulfillment. InFulfillment orders are already
// claimed, Fulfilled orders are done, and Unknown is invalid.
//
// Returns:
//   - nil if the order can be claimed from the current status
//   - error with details if claiming is not allowed
func (s Status) ValidateStartFulfillment() error {
	if s != Confirmed {
		return errs.NewStateIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to start fulfillment", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveSession validates the consistency between order status and
// session membership. Enforces business rules about which statuses require
// a session reference.
//
// Business Rules:
//   - Confirmed orders must not reference a session
//   - InFulfillment orders must reference their session
//   - Fulfilled orders keep their session reference for traceability
//
// Parameters:
//   - inSession: whether the order references a fulfillment session
//
// Returns:
//   - error: validation error if status and session reference are inconsistent
func (s Status) ValidateCanHaveSession(inSession bool) error {
	if inSession && s != InFulfillment && s != Fulfilled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reference a session", s.String()),
		)
	}

	if !inSession && (s == InFulfillment || s == Fulfilled) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reference no session", s.String()),
		)
	}

	return nil
}

// StartFulfillment transitions the status to InFulfillment.
//
// Valid transitions:
//   - Confirmed -> InFulfillment (claimed by a session)
//
// Invalid transitions:
//   - InFulfillment -> InFulfillment (already claimed)
//   - Fulfilled -> InFulfillment (cannot re-fulfill shipped orders)
//   - Unknown -> InFulfillment (invalid initial state)
//
// Returns:
//   - (InFulfillment, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.EnterFulfillment() to enforce state transitions.
func (s Status) StartFulfillment() (Status, error) {
	if err := s.ValidateStartFulfillment(); err != nil {
		return 0, err
	}

	return InFulfillment, nil
}

// Release transitions the status back to Confirmed.
//
// Valid transitions:
//   - InFulfillment -> Confirmed (session cancelled, order eligible again)
//
// Returns:
//   - (Confirmed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.ReleaseFromFulfillment() when a session
// is cancelled and its member orders return to the eligible pool.
func (s Status) Release() (Status, error) {
	if s != InFulfillment {
		return 0, errs.NewStateIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to release", s.String()),
		)
	}

	return Confirmed, nil
}

// Fulfill transitions the status to Fulfilled.
//
// Valid transitions:
//   - InFulfillment -> Fulfilled (session completed with every unit packed)
//
// Returns:
//   - (Fulfilled, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.CompleteFulfillment() when the session
// holding the order completes.
func (s Status) Fulfill() (Status, error) {
	if s != InFulfillment {
		return 0, errs.NewStateIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to fulfill", s.String()),
		)
	}

	return Fulfilled, nil
}
