package queries

import (
	"context"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetEligibleOrdersQueryHandler retrieves confirmed orders from the database.
// Filters out claimed and fulfilled orders to show the pool a new session
// can draw from.
type GetEligibleOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetEligibleOrdersQueryHandler creates a handler for eligible order queries.
// Requires a GORM database connection for query execution.
func NewGetEligibleOrdersQueryHandler(db *gorm.DB) GetEligibleOrdersQueryHandler {
	return GetEligibleOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all eligible orders with their lines.
// Returns orders in Confirmed status sorted by order number for consistent
// output; line rows are folded into their parent order.
func (h GetEligibleOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetEligibleOrdersQuery,
) ([]GetEligibleOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetEligibleOrdersQueryResponse, 0)
	indexByID := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.customer_name,
			l.product_id,
			l.product_name,
			l.quantity
		FROM orders o
		JOIN order_lines l ON l.order_id = o.id
		WHERE o.status = ?
		ORDER BY o.number, o.id, l.product_id
	`, order.Confirmed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, productID uuid.UUID
		var number, customerName, productName string
		var quantity int

		err = rows.Scan(
			&id,
			&number,
			&customerName,
			&productID,
			&productName,
			&quantity,
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
			orders = append(orders, GetEligibleOrdersQueryResponse{
				ID:           orderID,
				Number:       number,
				CustomerName: customerName,
				Lines:        make([]OrderLineResponse, 0, 1),
			})
			idx = len(orders) - 1
			indexByID[orderID] = idx
		}

		orders[idx].Lines = append(orders[idx].Lines, OrderLineResponse{
			ProductID:   lineProductID,
			ProductName: productName,
			Quantity:    quantity,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
