package queries

import (
	"errors"
	"time"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/guard"
)

var (
	ErrGetSessionQueryIsNotConstructed = errors.New(
		"GetSessionQuery must be created via NewGetSessionQuery constructor",
	)
)

// GetSessionQuery retrieves the header of one fulfillment session by its
// identifier. The header tells a resuming client which stage-specific
// snapshot to load next.
//
// Example:
//
//	query, err := NewGetSessionQuery(sessionID)
//	if err != nil {
//	    return err
//	}
//
//	header, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get session: %w", err)
//	}
type GetSessionQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSessionQuery creates a query to retrieve a session header.
// Validates that the session ID is a properly constructed UUID.
func NewGetSessionQuery(sessionID kernel.UUID) (GetSessionQuery, error) {
	query := GetSessionQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSessionID(sessionID); err != nil {
		return GetSessionQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSessionQueryIsNotConstructed if validation fails.
func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

// SessionID returns the identifier of the requested session.
func (q GetSessionQuery) SessionID() kernel.UUID {
	return q.sessionID
}

func (q *GetSessionQuery) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	q.sessionID = sessionID
	return nil
}

// GetSessionQueryResponse represents a session header in the read model.
type GetSessionQueryResponse struct {
	ID          kernel.UUID
	Code        string
	Status      string
	CreatedAt   time.Time
	CompletedAt *time.Time
}
