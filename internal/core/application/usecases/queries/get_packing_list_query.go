package queries

import (
	"errors"
	"time"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/guard"
)

var (
	ErrGetPackingListQueryIsNotConstructed = errors.New(
		"GetPackingListQuery must be created via NewGetPackingListQuery constructor",
	)
)

// GetPackingListQuery retrieves the packing stage snapshot of one session:
// per-order packing lines with allocation progress, label state and the pool
// of picked units still available for allocation.
//
// Example:
//
//	query, err := NewGetPackingListQuery(sessionID)
//	if err != nil {
//	    return err
//	}
//
//	list, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get packing list: %w", err)
//	}
//
//	for _, item := range list.AvailableItems {
//	    fmt.Printf("%s: %d left in pool\n", item.ProductName, item.Remaining)
//	}
type GetPackingListQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPackingListQuery creates a query to retrieve a session's packing list.
// Validates that the session ID is a properly constructed UUID.
func NewGetPackingListQuery(sessionID kernel.UUID) (GetPackingListQuery, error) {
	query := GetPackingListQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSessionID(sessionID); err != nil {
		return GetPackingListQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPackingListQueryIsNotConstructed if validation fails.
func (q GetPackingListQuery) Validate() error {
	return q.guard.Validate(ErrGetPackingListQueryIsNotConstructed)
}

// SessionID returns the identifier of the requested session.
func (q GetPackingListQuery) SessionID() kernel.UUID {
	return q.sessionID
}

func (q *GetPackingListQuery) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	q.sessionID = sessionID
	return nil
}

// GetPackingListQueryResponse represents the packing stage snapshot of a
// session: the header, the member orders with their allocation progress and
// the pool of picked units still unallocated.
type GetPackingListQueryResponse struct {
	Session        GetSessionQueryResponse
	Orders         []PackingOrderResponse
	AvailableItems []PoolItemResponse
}

// PackingOrderResponse represents one member order during packing, including
// its packing lines and label state. Complete is true when every line of the
// order is satisfied.
type PackingOrderResponse struct {
	ID           kernel.UUID
	Number       string
	CustomerName string
	Printed      bool
	PrintedAt    *time.Time
	Complete     bool
	Lines        []PackingLineResponse
}

// PackingLineResponse represents one packing line of a member order.
type PackingLineResponse struct {
	ProductID      kernel.UUID
	ProductName    string
	QuantityNeeded int
	QuantityPacked int
}

// PoolItemResponse represents the pool state of one product: how many units
// were picked, how many are already allocated and how many remain.
type PoolItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	TotalPicked int
	TotalPacked int
	Remaining   int
}
