package commands

import (
	"errors"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/guard"
)

var ErrPackUnitCommandIsNotConstructed = errors.New(
	"PackUnitCommand must be created via NewPackUnitCommand constructor",
)

// PackUnitCommand represents a request to move one collected unit of a product
// from the session's shared pool into one member order's box.
//
// This is the only mutating packing primitive. A "pack everything remaining
// for this order" bulk action is a caller-side loop issuing one PackUnitCommand
// per unit and stopping at the first failure.
type PackUnitCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	orderID   kernel.UUID
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPackUnitCommand creates a command to pack a single unit.
// Validates that all three identifiers are valid.
func NewPackUnitCommand(
	sessionID kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
) (PackUnitCommand, error) {
	command := PackUnitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSessionID(sessionID),
		command.setOrderID(orderID),
		command.setProductID(productID),
	); err != nil {
		return PackUnitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPackUnitCommandIsNotConstructed if validation fails.
func (c PackUnitCommand) Validate() error {
	return c.guard.Validate(ErrPackUnitCommandIsNotConstructed)
}

// SessionID returns the identifier of the packing session.
func (c PackUnitCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// OrderID returns the identifier of the member order receiving the unit.
func (c PackUnitCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the identifier of the product being packed.
func (c PackUnitCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *PackUnitCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *PackUnitCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PackUnitCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
