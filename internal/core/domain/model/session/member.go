package session

import (
	"errors"
	"time"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"
)

// ErrMemberIsNotConstructed indicates that the Member was not properly
// initialized through the NewMember constructor function.
var ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember constructor")

// Member records the participation of one customer order in a fulfillment
// session together with its shipping label state. The set of members is
// fixed when the session is created: orders can neither join nor leave a
// running session.
//
// Key business rules:
//   - Must be constructed through NewMember or RestoreMember
//   - A label is printed at most once; reprints keep the original timestamp
//   - The printed flag and its timestamp are always set together
type Member struct {
	// orderID identifies the member customer order
	orderID kernel.UUID

	// printed reports whether a shipping label was emitted for the order
	printed bool

	// printedAt is the time of the first label emission, nil if none
	printedAt *time.Time

	// guard ensures the entity was properly initialized
	guard kernel.ConstructorGuard
}

// NewMember creates a new session Member for the given order.
// New members start without a printed label.
//
// Parameters:
//   - orderID: Unique identifier of the member order (must be a valid UUID)
//
// Returns:
//   - *Member: Properly initialized member entity
//   - error: Validation error if the order ID is invalid
func NewMember(orderID kernel.UUID) (*Member, error) {
	member := &Member{
		guard: kernel.NewConstructorGuard(),
	}

	if err := member.setOrderID(orderID); err != nil {
		return nil, err
	}

	return member, nil
}

// RestoreMember reconstructs a Member entity from persistent storage,
// including its label state.
//
// Parameters:
//   - orderID: Unique identifier of the member order
//   - printed: Whether a shipping label was emitted
//   - printedAt: Time of the first label emission, nil if none
//
// Returns:
//   - *Member: Restored member entity
//   - error: Validation error if the persisted state is inconsistent
func RestoreMember(orderID kernel.UUID, printed bool, printedAt *time.Time) (*Member, error) {
	member := &Member{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		member.setOrderID(orderID),
		member.setPrintState(printed, printedAt),
	); err != nil {
		return nil, err
	}

	return member, nil
}

// IsEqual compares two members by their order identifiers.
func (m *Member) IsEqual(other *Member) bool {
	if other == nil {
		return false
	}
	return m.orderID.IsEqual(other.orderID)
}

// OrderID returns the identifier of the member order.
func (m *Member) OrderID() kernel.UUID {
	return m.orderID
}

// Printed reports whether a shipping label was emitted for the order.
func (m *Member) Printed() bool {
	return m.printed
}

// PrintedAt returns the time of the first label emission.
// Returns nil if no label has been printed.
func (m *Member) PrintedAt() *time.Time {
	return m.printedAt
}

// MarkPrinted records that a shipping label was emitted at the given time.
// Marking an already printed member is a no-op, so reprints keep the
// timestamp of the first emission.
func (m *Member) MarkPrinted(printedAt time.Time) {
	if m.printed {
		return
	}

	at := printedAt.UTC()
	m.printed = true
	m.printedAt = &at
}

// Validate checks if the Member entity is in a valid state.
//
// Returns:
//   - error: ErrMemberIsNotConstructed if not properly initialized
func (m *Member) Validate() error {
	if m == nil {
		return ErrMemberIsNotConstructed
	}
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

func (m *Member) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	m.orderID = orderID
	return nil
}

// setPrintState sets the label state for this member.
// Used during entity restoration; the flag and timestamp must be consistent.
func (m *Member) setPrintState(printed bool, printedAt *time.Time) error {
	if printed && printedAt == nil {
		return errs.NewValueIsRequiredError("printedAt")
	}
	if !printed && printedAt != nil {
		return errs.NewValueIsInvalidErrorWithCause("printedAt",
			errors.New("an unprinted member cannot have a print timestamp"))
	}

	m.printed = printed
	m.printedAt = printedAt
	return nil
}
