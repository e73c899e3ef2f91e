// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and session assignment.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Number       string         `gorm:"type:varchar(32);not null;index"`
	CustomerName string         `gorm:"type:varchar(255);not null"`
	Status       int            `gorm:"type:int;not null;index"`
	SessionID    *uuid.UUID     `gorm:"type:uuid;index"`
	Lines        []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one product position of an order. Lines are an
// immutable snapshot taken at confirmation, keyed by order and product.
type OrderLineDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Quantity    int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional session assignment and the
// line snapshot.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var sessionID *uuid.UUID
	if id := aggregate.Session(); id != nil {
		raw := id.Bytes()
		sessionID = &raw
	}

	domainLines := aggregate.Lines()
	lines := make([]OrderLineDTO, 0, len(domainLines))
	for _, line := range domainLines {
		lines = append(lines, OrderLineDTO{
			OrderID:     orderID,
			ProductID:   line.ProductID().Bytes(),
			ProductName: line.ProductName(),
			Quantity:    line.Quantity(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		Number:       aggregate.Number(),
		CustomerName: aggregate.CustomerName(),
		Status:       int(aggregate.Status()),
		SessionID:    sessionID,
		Lines:        lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, session assignment
// and the line snapshot using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var sessionID *kernel.UUID
	if dto.SessionID != nil {
		sID, sessionErr := kernel.UUIDFromBytes((*dto.SessionID)[:])
		if sessionErr != nil {
			return nil, sessionErr
		}

		sessionID = &sID
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		productID, lineErr := kernel.UUIDFromBytes(lineDto.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(productID, lineDto.ProductName, lineDto.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, dto.Number, dto.CustomerName, order.Status(dto.Status), sessionID, lines)
}
