package ports

import (
	"context"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the fulfillment-facing
// slice of order aggregates. Provides methods for storing, retrieving and
// locking orders as they move through the fulfillment lifecycle.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its line snapshot and session reference.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByIDsForUpdate retrieves the orders with the given identifiers and
	// locks their rows for the duration of the surrounding transaction.
	// Rows are locked in a deterministic order so two overlapping selections
	// cannot deadlock. Returns a not-found error if any identifier has no
	// matching order.
	//
	// Used when a session claims its orders at creation and when a terminal
	// transition releases or advances them.
	GetByIDsForUpdate(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)
}
