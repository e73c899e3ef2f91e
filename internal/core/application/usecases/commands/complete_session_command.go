package commands

import (
	"errors"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/guard"
)

var ErrCompleteSessionCommandIsNotConstructed = errors.New(
	"CompleteSessionCommand must be created via NewCompleteSessionCommand constructor",
)

// CompleteSessionCommand represents a request to close a session after every
// member order was fully packed. Completion advances the member orders to the
// Fulfilled stage.
type CompleteSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteSessionCommand creates a command to complete a session.
// Validates that the session ID is valid.
func NewCompleteSessionCommand(sessionID kernel.UUID) (CompleteSessionCommand, error) {
	command := CompleteSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSessionID(sessionID); err != nil {
		return CompleteSessionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteSessionCommandIsNotConstructed if validation fails.
func (c CompleteSessionCommand) Validate() error {
	return c.guard.Validate(ErrCompleteSessionCommandIsNotConstructed)
}

// SessionID returns the identifier of the session being completed.
func (c CompleteSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *CompleteSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
