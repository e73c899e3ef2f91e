package queries

import (
	"errors"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/guard"
)

var (
	ErrGetPickingListQueryIsNotConstructed = errors.New(
		"GetPickingListQuery must be created via NewGetPickingListQuery constructor",
	)
)

// GetPickingListQuery retrieves the consolidated pick list of one session:
// per-product requirements with pick progress, plus the member orders the
// list was aggregated from.
//
// Example:
//
//	query, err := NewGetPickingListQuery(sessionID)
//	if err != nil {
//	    return err
//	}
//
//	list, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get picking list: %w", err)
//	}
//
//	for _, item := range list.Items {
//	    fmt.Printf("%s: %d/%d\n", item.ProductName, item.QuantityPicked, item.TotalQuantityNeeded)
//	}
type GetPickingListQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPickingListQuery creates a query to retrieve a session's pick list.
// Validates that the session ID is a properly constructed UUID.
func NewGetPickingListQuery(sessionID kernel.UUID) (GetPickingListQuery, error) {
	query := GetPickingListQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSessionID(sessionID); err != nil {
		return GetPickingListQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPickingListQueryIsNotConstructed if validation fails.
func (q GetPickingListQuery) Validate() error {
	return q.guard.Validate(ErrGetPickingListQueryIsNotConstructed)
}

// SessionID returns the identifier of the requested session.
func (q GetPickingListQuery) SessionID() kernel.UUID {
	return q.sessionID
}

func (q *GetPickingListQuery) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	q.sessionID = sessionID
	return nil
}

// GetPickingListQueryResponse represents the picking stage snapshot of a
// session: the header, the consolidated items and the member orders.
type GetPickingListQueryResponse struct {
	Session GetSessionQueryResponse
	Items   []PickingItemResponse
	Orders  []MemberOrderResponse
}

// PickingItemResponse represents one consolidated pick list position.
type PickingItemResponse struct {
	ProductID           kernel.UUID
	ProductName         string
	TotalQuantityNeeded int
	QuantityPicked      int
}

// MemberOrderResponse represents one member order of a session.
type MemberOrderResponse struct {
	ID           kernel.UUID
	Number       string
	CustomerName string
}
