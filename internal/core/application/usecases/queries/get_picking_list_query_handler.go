package queries

import (
	"context"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPickingListQueryHandler retrieves the picking stage snapshot of one
// session from the database.
type GetPickingListQueryHandler struct {
	db *gorm.DB
}

// NewGetPickingListQueryHandler creates a handler for pick list queries.
// Requires a GORM database connection for query execution.
func NewGetPickingListQueryHandler(db *gorm.DB) GetPickingListQueryHandler {
	return GetPickingListQueryHandler{db: db}
}

// Handle executes the query to retrieve a session's pick list.
// Returns the session header, the consolidated items sorted by product name
// and the member orders sorted by order number. Returns a not-found error if
// the session does not exist.
func (h GetPickingListQueryHandler) Handle(
	ctx context.Context,
	query GetPickingListQuery,
) (GetPickingListQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPickingListQueryResponse{}, err
	}

	headerQuery, err := NewGetSessionQuery(query.SessionID())
	if err != nil {
		return GetPickingListQueryResponse{}, err
	}

	header, err := NewGetSessionQueryHandler(h.db).Handle(ctx, headerQuery)
	if err != nil {
		return GetPickingListQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query.SessionID())
	if err != nil {
		return GetPickingListQueryResponse{}, err
	}

	orders, err := loadMemberOrders(ctx, h.db, query.SessionID())
	if err != nil {
		return GetPickingListQueryResponse{}, err
	}

	return GetPickingListQueryResponse{
		Session: header,
		Items:   items,
		Orders:  orders,
	}, nil
}

func (h GetPickingListQueryHandler) loadItems(
	ctx context.Context,
	sessionID kernel.UUID,
) ([]PickingItemResponse, error) {
	items := make([]PickingItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			total_quantity_needed,
			quantity_picked
		FROM session_pick_requirements
		WHERE session_id = ?
		ORDER BY product_name, product_id
	`, sessionID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var productID uuid.UUID
		var productName string
		var needed, picked int

		err = rows.Scan(
			&productID,
			&productName,
			&needed,
			&picked,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, PickingItemResponse{
			ProductID:           id,
			ProductName:         productName,
			TotalQuantityNeeded: needed,
			QuantityPicked:      picked,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// loadMemberOrders fetches the member orders of a session, sorted by order
// number. Shared by the picking and packing snapshot handlers.
func loadMemberOrders(
	ctx context.Context,
	db *gorm.DB,
	sessionID kernel.UUID,
) ([]MemberOrderResponse, error) {
	orders := make([]MemberOrderResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.customer_name
		FROM session_members m
		JOIN orders o ON o.id = m.order_id
		WHERE m.session_id = ?
		ORDER BY o.number, o.id
	`, sessionID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var number, customerName string

		err = rows.Scan(
			&id,
			&number,
			&customerName,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, MemberOrderResponse{
			ID:           orderID,
			Number:       number,
			CustomerName: customerName,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
