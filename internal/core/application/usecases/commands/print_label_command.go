package commands

import (
	"errors"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/guard"
)

var ErrPrintLabelCommandIsNotConstructed = errors.New(
	"PrintLabelCommand must be created via NewPrintLabelCommand constructor",
)

// PrintLabelCommand represents a request to emit the shipping label for a
// fully packed member order. Reprints are allowed and keep the timestamp of
// the first emission.
type PrintLabelCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewPrintLabelCommand creates a command to emit a shipping label.
// Validates that both identifiers are valid.
func NewPrintLabelCommand(sessionID kernel.UUID, orderID kernel.UUID) (PrintLabelCommand, error) {
	command := PrintLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSessionID(sessionID),
		command.setOrderID(orderID),
	); err != nil {
		return PrintLabelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPrintLabelCommandIsNotConstructed if validation fails.
func (c PrintLabelCommand) Validate() error {
	return c.guard.Validate(ErrPrintLabelCommandIsNotConstructed)
}

// SessionID returns the identifier of the packing session.
func (c PrintLabelCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// OrderID returns the identifier of the member order being labelled.
func (c PrintLabelCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *PrintLabelCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *PrintLabelCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
