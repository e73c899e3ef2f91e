package services

import (
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/order"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/session"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"
)

// ErrNoOrdersSelected is returned when a session is planned over an empty
// order selection. A fulfillment session must cover at least one order.
var ErrNoOrdersSelected = errs.NewValueIsRequiredError("at least one order must be selected")

// SessionPlanner is a domain service that turns a batch of eligible orders
// into a new fulfillment session. It coordinates the two aggregates involved
// in session creation: the session being opened and the orders being claimed.
//
// Key responsibilities:
//   - Rejecting empty selections
//   - Building the session aggregate with its aggregated pick list
//   - Claiming every selected order for the new session
//
// Business rules:
//   - Every selected order must be eligible (Confirmed status)
//   - An order already held by another session cannot be claimed again
//   - Claiming is all-or-nothing: the caller persists the session and the
//     claimed orders in one transaction or not at all
//
// Example usage:
//
//	planner := services.NewSessionPlanner()
//	sess, err := planner.Plan(kernel.NewUUID(), code, orders)
//	if errors.Is(err, errs.ErrConflict) {
//	    // Some order is already part of an active session
//	    return
//	}
type SessionPlanner struct{}

// NewSessionPlanner creates a new SessionPlanner instance.
//
// Returns:
//   - SessionPlanner: A new instance ready for session planning operations
func NewSessionPlanner() SessionPlanner {
	return SessionPlanner{}
}

// Plan builds a new fulfillment session over the selected orders and claims
// each of them for it.
//
// Parameters:
//   - sessionID: Identifier for the new session
//   - code: Human-readable code for the new session
//   - orders: The selected orders (each must be valid and eligible)
//
// Returns:
//   - *session.Session: The opened session in Picking status
//   - error: ErrNoOrdersSelected for an empty selection, a conflict error if
//     an order is already claimed, or validation errors from either aggregate
//
// The session aggregate is built first so an invalid selection (duplicates,
// orders without lines) is rejected before any order is mutated.
func (p SessionPlanner) Plan(
	sessionID kernel.UUID,
	code kernel.Code,
	orders []*order.Order,
) (*session.Session, error) {
	if len(orders) == 0 {
		return nil, ErrNoOrdersSelected
	}

	sess, err := session.NewSession(sessionID, code, orders)
	if err != nil {
		return nil, err
	}

	for _, ord := range orders {
		if err := ord.EnterFulfillment(sessionID); err != nil {
			return nil, err
		}
	}

	return sess, nil
}
