package order

import (
	"errors"
	"fmt"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a confirmed customer order waiting to be fulfilled.
// It is the aggregate root that manages the order's fulfillment lifecycle:
// eligible (Confirmed), claimed by a session (InFulfillment) and shipped
// (Fulfilled).
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a human-readable number
//   - Must contain at least one line, each naming a distinct product
//   - Lines are immutable after confirmation; fulfillment never edits them
//   - At most one fulfillment session may hold the order at a time
//   - Status transitions follow defined business rules
//   - Can only be created through NewOrder or RestoreOrder constructors
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human-readable order number shown to operators
	number string

	// customerName identifies the buyer on pick lists and labels
	customerName string

	// status represents the current state in the fulfillment lifecycle
	status Status

	// sessionID references the fulfillment session holding the order (nil if unclaimed)
	sessionID *kernel.UUID

	// lines is the immutable snapshot of the ordered products
	lines []Line

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the entry point
// for confirmed orders arriving from the storefront, ensuring all business
// invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - number: Human-readable order number, e.g. "ORD-1042" (must not be empty)
//   - customerName: Name of the buyer (must not be empty)
//   - lines: Ordered products (at least one, distinct product IDs)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	line, _ := NewLine(productID, "Ceramic Mug", 2)
//	ord, err := NewOrder(kernel.NewUUID(), "ORD-1042", "Dana Smith", []Line{line})
//	if err != nil {
//	    // Handle validation error
//	}
//
// The constructor validates all inputs and ensures the order is created
// with Confirmed status and no session reference.
func NewOrder(id kernel.UUID, number string, customerName string, lines []Line) (*Order, error) {
	ord := &Order{
		status:        Confirmed,
		isConstructed: true,
	}

	if err := errors.Join(
		ord.setID(id),
		ord.setNumber(number),
		ord.setCustomerName(customerName),
		ord.setLines(lines),
	); err != nil {
		return nil, err
	}

	return ord, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts the full lifecycle state, including the status
// and an optional session reference, and verifies their consistency.
//
// Parameters:
//   - id: Unique identifier for the order
//   - number: Human-readable order number
//   - customerName: Name of the buyer
//   - status: Persisted lifecycle status
//   - sessionID: Session holding the order, nil when unclaimed
//   - lines: Ordered products
//
// Returns:
//   - *Order: The restored order if the persisted state is consistent
//   - error: Validation error if the stored data violates an invariant
func RestoreOrder(
	id kernel.UUID,
	number string,
	customerName string,
	status Status,
	sessionID *kernel.UUID,
	lines []Line,
) (*Order, error) {
	ord := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		ord.setID(id),
		ord.setNumber(number),
		ord.setCustomerName(customerName),
		ord.setStatus(status),
		ord.setSessionID(sessionID),
		ord.setLines(lines),
	); err != nil {
		return nil, err
	}

	return ord, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

// CustomerName returns the name of the buyer.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Session returns the ID of the fulfillment session holding the order.
// Returns nil if the order is not part of a session.
func (o *Order) Session() *kernel.UUID {
	return o.sessionID
}

// Lines returns the immutable snapshot of the ordered products.
// The returned slice is a copy to prevent external modification.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// EnterFulfillment claims the order for a fulfillment session and updates
// the status to InFulfillment.
//
// This method enforces the following business rules:
//   - The session ID must be valid
//   - The order must be in Confirmed status
//   - An order already held by a session cannot be claimed again
//
// Parameters:
//   - sessionID: The ID of the session claiming the order
//
// Returns:
//   - nil on successful claim
//   - a conflict error if the order is already part of a session
//   - error if the session ID is invalid or the status transition is not allowed
//
// After a successful claim the order's status becomes InFulfillment and
// Session() returns the claiming session's ID.
func (o *Order) EnterFulfillment(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	if o.status == InFulfillment {
		return errs.NewConflictErrorWithCause("order", o.id.String(),
			errors.New("order is already part of an active fulfillment session"))
	}

	newStatus, err := o.status.StartFulfillment()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.sessionID = &sessionID
	return nil
}

// ReleaseFromFulfillment returns the order to the eligible pool after its
// session was cancelled.
//
// This method enforces the following business rules:
//   - The order must be in InFulfillment status
//
// After a successful release the order's status becomes Confirmed again,
// the session reference is cleared, and the order can join a new session.
func (o *Order) ReleaseFromFulfillment() error {
	newStatus, err := o.status.Release()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.sessionID = nil
	return nil
}

// CompleteFulfillment marks the order as fulfilled after its session completed.
//
// This method enforces the following business rules:
//   - The order must be in InFulfillment status
//   - Fulfilled is a final state with no further transitions
//
// The session reference is kept for traceability, so it remains possible
// to tell which session packed a shipped order.
func (o *Order) CompleteFulfillment() error {
	newStatus, err := o.status.Fulfill()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setNumber validates and sets the human-readable order number.
// This is a private method used only during construction.
func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

// setCustomerName validates and sets the buyer's name.
// This is a private method used only during construction.
func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

// setStatus validates and sets the persisted lifecycle status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setSessionID validates and sets the optional session reference, checking
// its consistency with the already assigned status.
// This is a private method used only during restoration.
func (o *Order) setSessionID(sessionID *kernel.UUID) error {
	if sessionID != nil {
		if err := sessionID.Validate(); err != nil {
			return err
		}
	}

	if err := o.status.ValidateCanHaveSession(sessionID != nil); err != nil {
		return err
	}

	o.sessionID = sessionID
	return nil
}

// setLines validates and sets the ordered products.
// An order must contain at least one line and each line must name a
// distinct product.
// This is a private method used only during construction.
func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	seen := make(map[kernel.UUID]bool, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		if seen[line.ProductID()] {
			return errs.NewValueIsInvalidErrorWithCause("lines",
				fmt.Errorf("product %s appears in more than one line", line.ProductID()))
		}
		seen[line.ProductID()] = true
	}

	o.lines = lines
	return nil
}
