package session

import (
	"fmt"

	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"
)

// ErrSessionClosed is returned when any mutation is attempted on a session
// that has already reached a terminal status. Completed and cancelled
// sessions are immutable historical records.
var ErrSessionClosed = errs.NewStateIsInvalidError("session is closed")

// Status represents the lifecycle state of a fulfillment session.
// It implements a state machine with defined transitions so a session
// moves through the warehouse workflow in order: first collecting units
// from shelves, then distributing them into per-order boxes.
//
// State transitions:
//
//	Picking ──> Packing ──> Completed
//	   │           │
//	   └───────────┴──────> Cancelled
//
// Completed and Cancelled are terminal: no transition leaves them and
// every mutating operation on a terminal session fails with ErrSessionClosed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Picking is the initial status of a session. The picker walks the
	// warehouse collecting the aggregated units of all member orders.
	Picking

	// Packing indicates picking has finished and the collected units are
	// being distributed into per-order boxes.
	Packing

	// Completed indicates every member order was fully packed and the
	// session was closed successfully. This is a terminal state.
	Completed

	// Cancelled indicates the session was abandoned and its orders were
	// released back to the eligible pool. This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Picking:   "Picking",
		Packing:   "Packing",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Picking:   "Picking",
		Packing:   "Packing",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Picking, Packing, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is a final state.
// Terminal sessions reject every further mutation.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ValidatePicking checks whether picking progress may be recorded in the
// current status, without performing a transition.
//
// Returns:
//   - nil if the session is in Picking status
//   - ErrSessionClosed if the session is in a terminal status
//   - error with details for any other status
func (s Status) ValidatePicking() error {
	if s == Picking {
		return nil
	}
	if s.IsTerminal() {
		return ErrSessionClosed
	}
	return errs.NewStateIsInvalidErrorWithCause(
		"session status",
		fmt.Errorf("%s is not a valid status for picking", s.String()),
	)
}

// ValidatePacking checks whether packing progress may be recorded in the
// current status, without performing a transition.
//
// Returns:
//   - nil if the session is in Packing status
//   - ErrSessionClosed if the session is in a terminal status
//   - error with details for any other status
func (s Status) ValidatePacking() error {
	if s == Packing {
		return nil
	}
	if s.IsTerminal() {
		return ErrSessionClosed
	}
	return errs.NewStateIsInvalidErrorWithCause(
		"session status",
		fmt.Errorf("%s is not a valid status for packing", s.String()),
	)
}

// StartPacking transitions the status from Picking to Packing.
//
// Valid transitions:
//   - Picking -> Packing (pick list fully collected)
//
// Returns:
//   - (Packing, nil) on valid transition
//   - (0, ErrSessionClosed) if the session is in a terminal status
//   - (0, error) for any other status
//
// This method is used by Session.FinishPicking() to enforce state transitions.
func (s Status) StartPacking() (Status, error) {
	if s.IsTerminal() {
		return 0, ErrSessionClosed
	}
	if s != Picking {
		return 0, errs.NewStateIsInvalidErrorWithCause(
			"session status",
			fmt.Errorf("%s is not a valid status to finish picking", s.String()),
		)
	}

	return Packing, nil
}

// Complete transitions the status from Packing to Completed.
//
// Valid transitions:
//   - Packing -> Completed (every member order fully packed)
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, ErrSessionClosed) if the session is already in a terminal status
//   - (0, error) for any other status
//
// This method is used by Session.Complete() to enforce state transitions.
func (s Status) Complete() (Status, error) {
	if s.IsTerminal() {
		return 0, ErrSessionClosed
	}
	if s != Packing {
		return 0, errs.NewStateIsInvalidErrorWithCause(
			"session status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Picking -> Cancelled
//   - Packing -> Cancelled
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, ErrSessionClosed) if the session is already in a terminal status
//   - (0, error) for any other status
//
// This method is used by Session.Cancel() to enforce state transitions.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return 0, ErrSessionClosed
	}
	if s != Picking && s != Packing {
		return 0, errs.NewStateIsInvalidErrorWithCause(
			"session status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// ValidateCanHaveCompletedAt validates the consistency between session status
// and the completion timestamp.
//
// Business Rules:
//   - Completed sessions must carry a completion timestamp
//   - All other statuses must not carry one
//
// Parameters:
//   - hasCompletedAt: whether the session carries a completion timestamp
//
// Returns:
//   - error: validation error if status and timestamp are inconsistent
func (s Status) ValidateCanHaveCompletedAt(hasCompletedAt bool) error {
	if hasCompletedAt && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a completion timestamp", s.String()),
		)
	}

	if !hasCompletedAt && s == Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no completion timestamp", s.String()),
		)
	}

	return nil
}
