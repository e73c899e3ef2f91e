package queries

import (
	"context"
	"time"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPackingListQueryHandler retrieves the packing stage snapshot of one
// session from the database. The pool column Remaining is derived from the
// requirement and line truth in SQL, mirroring the aggregate's derivation.
type GetPackingListQueryHandler struct {
	db *gorm.DB
}

// NewGetPackingListQueryHandler creates a handler for packing list queries.
// Requires a GORM database connection for query execution.
func NewGetPackingListQueryHandler(db *gorm.DB) GetPackingListQueryHandler {
	return GetPackingListQueryHandler{db: db}
}

// Handle executes the query to retrieve a session's packing list.
// Returns the session header, the member orders with their packing lines and
// label state, and the per-product pool. Returns a not-found error if the
// session does not exist.
func (h GetPackingListQueryHandler) Handle(
	ctx context.Context,
	query GetPackingListQuery,
) (GetPackingListQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackingListQueryResponse{}, err
	}

	headerQuery, err := NewGetSessionQuery(query.SessionID())
	if err != nil {
		return GetPackingListQueryResponse{}, err
	}

	header, err := NewGetSessionQueryHandler(h.db).Handle(ctx, headerQuery)
	if err != nil {
		return GetPackingListQueryResponse{}, err
	}

	orders, err := h.loadOrders(ctx, query.SessionID())
	if err != nil {
		return GetPackingListQueryResponse{}, err
	}

	availableItems, err := h.loadPool(ctx, query.SessionID())
	if err != nil {
		return GetPackingListQueryResponse{}, err
	}

	return GetPackingListQueryResponse{
		Session:        header,
		Orders:         orders,
		AvailableItems: availableItems,
	}, nil
}

// loadOrders fetches the member orders with their packing lines and label
// state. Line rows are folded into their parent order; an order is complete
// when no unsatisfied line was seen.
func (h GetPackingListQueryHandler) loadOrders(
	ctx context.Context,
	sessionID kernel.UUID,
) ([]PackingOrderResponse, error) {
	orders := make([]PackingOrderResponse, 0)
	indexByID := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.customer_name,
			m.printed,
			m.printed_at,
			l.product_id,
			l.product_name,
			l.quantity_needed,
			l.quantity_packed
		FROM session_members m
		JOIN orders o ON o.id = m.order_id
		JOIN session_packing_lines l
			ON l.session_id = m.session_id AND l.order_id = m.order_id
		WHERE m.session_id = ?
		ORDER BY o.number, o.id, l.product_name, l.product_id
	`, sessionID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, productID uuid.UUID
		var number, customerName, productName string
		var printed bool
		var printedAt *time.Time
		var needed, packed int

		err = rows.Scan(
			&id,
			&number,
			&customerName,
			&printed,
			&printedAt,
			&productID,
			&productName,
			&needed,
			&packed,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		lineProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		idx, seen := indexByID[orderID]
		if !seen {
			orders = append(orders, PackingOrderResponse{
				ID:           orderID,
				Number:       number,
				CustomerName: customerName,
				Printed:      printed,
				PrintedAt:    printedAt,
				Complete:     true,
				Lines:        make([]PackingLineResponse, 0, 1),
			})
			idx = len(orders) - 1
			indexByID[orderID] = idx
		}

		orders[idx].Lines = append(orders[idx].Lines, PackingLineResponse{
			ProductID:      lineProductID,
			ProductName:    productName,
			QuantityNeeded: needed,
			QuantityPacked: packed,
		})
		if packed < needed {
			orders[idx].Complete = false
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// loadPool derives the per-product pool from the stored requirement and line
// truth: remaining is picked minus packed, never a stored column.
func (h GetPackingListQueryHandler) loadPool(
	ctx context.Context,
	sessionID kernel.UUID,
) ([]PoolItemResponse, error) {
	items := make([]PoolItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.product_id,
			r.product_name,
			r.quantity_picked,
			COALESCE(SUM(l.quantity_packed), 0) AS total_packed
		FROM session_pick_requirements r
		LEFT JOIN session_packing_lines l
			ON l.session_id = r.session_id AND l.product_id = r.product_id
		WHERE r.session_id = ?
		GROUP BY r.product_id, r.product_name, r.quantity_picked
		ORDER BY r.product_name, r.product_id
	`, sessionID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var productID uuid.UUID
		var productName string
		var picked, packed int

		err = rows.Scan(
			&productID,
			&productName,
			&picked,
			&packed,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, PoolItemResponse{
			ProductID:   id,
			ProductName: productName,
			TotalPicked: picked,
			TotalPacked: packed,
			Remaining:   picked - packed,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
