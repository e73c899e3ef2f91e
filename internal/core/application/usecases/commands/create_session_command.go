package commands

import (
	"errors"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/guard"
)

var (
	ErrCreateSessionCommandIsNotConstructed = errors.New(
		"CreateSessionCommand must be created via NewCreateSessionCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order ID is required")
)

// CreateSessionCommand represents a request to open a new fulfillment session
// over a batch of eligible orders. Encapsulates the new session's identity and
// the caller's order selection.
//
// Example:
//
//	code, _ := kernel.GenerateCode()
//	cmd, err := NewCreateSessionCommand(kernel.NewUUID(), code, orderIDs)
//	if err != nil {
//	    return fmt.Errorf("invalid selection: %w", err)
//	}
//
//	handler := NewCreateSessionCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to open session: %w", err)
//	}
type CreateSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	code      kernel.Code
	orderIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateSessionCommand creates a command to open a fulfillment session.
// Validates that the session ID and code are valid and that at least one
// order ID was selected. Returns an error if any validation fails.
func NewCreateSessionCommand(
	sessionID kernel.UUID,
	code kernel.Code,
	orderIDs []kernel.UUID,
) (CreateSessionCommand, error) {
	command := CreateSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSessionID(sessionID),
		command.setCode(code),
		command.setOrderIDs(orderIDs),
	); err != nil {
		return CreateSessionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateSessionCommandIsNotConstructed if validation fails.
func (c CreateSessionCommand) Validate() error {
	return c.guard.Validate(ErrCreateSessionCommandIsNotConstructed)
}

// SessionID returns the identifier for the new session.
func (c CreateSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Code returns the human-readable code for the new session.
func (c CreateSessionCommand) Code() kernel.Code {
	return c.code
}

// OrderIDs returns the caller's order selection.
func (c CreateSessionCommand) OrderIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.orderIDs))
	copy(out, c.orderIDs)
	return out
}

func (c *CreateSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *CreateSessionCommand) setCode(code kernel.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}

func (c *CreateSessionCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}

	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = make([]kernel.UUID, len(orderIDs))
	copy(c.orderIDs, orderIDs)
	return nil
}
