package commands

import (
	"errors"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/guard"
)

var (
	ErrUpdatePickingCommandIsNotConstructed = errors.New(
		"UpdatePickingCommand must be created via NewUpdatePickingCommand constructor",
	)
	ErrQuantityIsNegative = errors.New("quantity must not be negative")
)

// UpdatePickingCommand represents a request to record the absolute number of
// collected units for one product on a session's pick list.
//
// The quantity is the picker's full count ("I now have N units on the cart"),
// not an increment, so resending the same command after a lost acknowledgment
// is safe.
type UpdatePickingCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewUpdatePickingCommand creates a command to record picking progress.
// Validates that both identifiers are valid and the quantity is not negative.
// The upper bound depends on the session's pick list and is enforced by the
// aggregate.
func NewUpdatePickingCommand(
	sessionID kernel.UUID,
	productID kernel.UUID,
	quantity int,
) (UpdatePickingCommand, error) {
	command := UpdatePickingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSessionID(sessionID),
		command.setProductID(productID),
		command.setQuantity(quantity),
	); err != nil {
		return UpdatePickingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdatePickingCommandIsNotConstructed if validation fails.
func (c UpdatePickingCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePickingCommandIsNotConstructed)
}

// SessionID returns the identifier of the session being picked.
func (c UpdatePickingCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// ProductID returns the identifier of the product on the pick list.
func (c UpdatePickingCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the absolute number of collected units.
func (c UpdatePickingCommand) Quantity() int {
	return c.quantity
}

func (c *UpdatePickingCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *UpdatePickingCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdatePickingCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsNegative
	}

	c.quantity = quantity
	return nil
}
