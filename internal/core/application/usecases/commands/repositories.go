// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/T0MGL/0rdefy-sub010/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SessionRepoFactory provides access to the session repository within a transaction.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SessionUoW manages transactions for session-only operations.
	// Used by the transitions that stay inside one session aggregate:
	// recording picking progress, finishing picking and packing units.
	SessionUoW interface {
		TxManager
		SessionRepoFactory
	}

	// SessionUoWFactory creates new session unit of work instances.
	SessionUoWFactory interface {
		Create() SessionUoW
	}

	// UoW manages transactions across both session and order aggregates.
	// Used by the transitions that move order ownership: creating a session
	// (claiming orders), completing it (advancing orders), cancelling it
	// (releasing orders) and printing labels (reading order details).
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   sessionRepo := uow.SessionRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		SessionRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
