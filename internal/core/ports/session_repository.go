// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/session"
)

// SessionRepository defines the persistence contract for session aggregates.
// Provides methods for storing and retrieving fulfillment sessions with their
// complete state: members, pick requirements and packing lines.
type SessionRepository interface {
	// Add persists a new session aggregate to storage.
	// The session must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *session.Session) error

	// Update persists changes to an existing session aggregate.
	// The session must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *session.Session) error

	// Get retrieves a session aggregate by its unique identifier.
	// Returns the complete session with all members, pick requirements
	// and packing lines.
	Get(ctx context.Context, id kernel.UUID) (*session.Session, error)

	// GetForUpdate retrieves a session aggregate and locks its row for the
	// duration of the surrounding transaction. Every mutating transition
	// loads the session through this method, which gives the engine its
	// single-writer-per-session guarantee: two concurrent transitions on
	// the same session serialize on the row lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*session.Session, error)
}
