package commands

import (
	"errors"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/guard"
)

var ErrCancelSessionCommandIsNotConstructed = errors.New(
	"CancelSessionCommand must be created via NewCancelSessionCommand constructor",
)

// CancelSessionCommand represents a request to abandon a running session.
// Cancellation releases every member order back to the eligible pool so it
// can join a new session.
type CancelSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelSessionCommand creates a command to cancel a session.
// Validates that the session ID is valid.
func NewCancelSessionCommand(sessionID kernel.UUID) (CancelSessionCommand, error) {
	command := CancelSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSessionID(sessionID); err != nil {
		return CancelSessionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelSessionCommandIsNotConstructed if validation fails.
func (c CancelSessionCommand) Validate() error {
	return c.guard.Validate(ErrCancelSessionCommandIsNotConstructed)
}

// SessionID returns the identifier of the session being cancelled.
func (c CancelSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *CancelSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
