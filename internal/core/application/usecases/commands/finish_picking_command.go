package commands

import (
	"errors"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/guard"
)

var ErrFinishPickingCommandIsNotConstructed = errors.New(
	"FinishPickingCommand must be created via NewFinishPickingCommand constructor",
)

// FinishPickingCommand represents a request to close a session's picking stage
// and move it to packing. Succeeds only once every pick requirement has been
// fully collected.
type FinishPickingCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinishPickingCommand creates a command to finish a session's picking stage.
// Validates that the session ID is valid.
func NewFinishPickingCommand(sessionID kernel.UUID) (FinishPickingCommand, error) {
	command := FinishPickingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSessionID(sessionID); err != nil {
		return FinishPickingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFinishPickingCommandIsNotConstructed if validation fails.
func (c FinishPickingCommand) Validate() error {
	return c.guard.Validate(ErrFinishPickingCommandIsNotConstructed)
}

// SessionID returns the identifier of the session finishing picking.
func (c FinishPickingCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *FinishPickingCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
