// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/guard"
)

var (
	ErrGetEligibleOrdersQueryIsNotConstructed = errors.New(
		"GetEligibleOrdersQuery must be created via NewGetEligibleOrdersQuery constructor",
	)
)

// GetEligibleOrdersQuery retrieves the confirmed orders that can join a new
// fulfillment session. Orders already claimed by a session and orders that
// have shipped are excluded.
//
// Example:
//
//	query := NewGetEligibleOrdersQuery()
//	handler := NewGetEligibleOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get eligible orders: %w", err)
//	}
//
//	fmt.Printf("%d orders ready for fulfillment\n", len(orders))
type GetEligibleOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEligibleOrdersQuery creates a query to retrieve eligible orders.
// This is a parameterless query that fetches every confirmed order.
func NewGetEligibleOrdersQuery() GetEligibleOrdersQuery {
	return GetEligibleOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetEligibleOrdersQueryIsNotConstructed if validation fails.
func (q GetEligibleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetEligibleOrdersQueryIsNotConstructed)
}

// GetEligibleOrdersQueryResponse represents one eligible order in the read
// model, including its line snapshot so operators can judge the session size
// before opening it.
type GetEligibleOrdersQueryResponse struct {
	ID           kernel.UUID
	Number       string
	CustomerName string
	Lines        []OrderLineResponse
}

// OrderLineResponse represents one product position of an order.
type OrderLineResponse struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
}
