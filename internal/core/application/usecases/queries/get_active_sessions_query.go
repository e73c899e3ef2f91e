package queries

import (
	"errors"
	"time"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/guard"
)

var (
	ErrGetActiveSessionsQueryIsNotConstructed = errors.New(
		"GetActiveSessionsQuery must be created via NewGetActiveSessionsQuery constructor",
	)
)

// GetActiveSessionsQuery retrieves all fulfillment sessions that are still
// running, i.e. in the Picking or Packing stage. Completed and cancelled
// sessions are excluded.
//
// Example:
//
//	query := NewGetActiveSessionsQuery()
//	handler := NewGetActiveSessionsQueryHandler(db)
//
//	sessions, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active sessions: %w", err)
//	}
//
//	for _, s := range sessions {
//	    fmt.Printf("Session %s (%s): %d orders\n", s.Code, s.Status, s.OrderCount)
//	}
type GetActiveSessionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveSessionsQuery creates a query to retrieve running sessions.
// This is a parameterless query that fetches every non-terminal session.
func NewGetActiveSessionsQuery() GetActiveSessionsQuery {
	return GetActiveSessionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveSessionsQueryIsNotConstructed if validation fails.
func (q GetActiveSessionsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveSessionsQueryIsNotConstructed)
}

// GetActiveSessionsQueryResponse represents one running session in the read
// model, with its member order count for the session list view.
type GetActiveSessionsQueryResponse struct {
	ID         kernel.UUID
	Code       string
	Status     string
	CreatedAt  time.Time
	OrderCount int
}
