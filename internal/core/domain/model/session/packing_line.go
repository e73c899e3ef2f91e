package session

import (
	"errors"
	"fmt"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"
)

var (
	// ErrPackingLineIsNotConstructed indicates that the PackingLine was not
	// properly initialized through the NewPackingLine constructor function.
	ErrPackingLineIsNotConstructed = errors.New("PackingLine must be created via NewPackingLine constructor")

	// ErrOrderLineSatisfied indicates that the order's need for the product is
	// already met, so no further unit may be packed into this line.
	ErrOrderLineSatisfied = errs.NewStateIsInvalidError("order line is already fully packed")
)

// PackingLine tracks how many units of one product have been placed into one
// member order's box. Lines are materialized from the order's line snapshot
// when the session is created and advance one unit at a time during packing.
//
// Key business rules:
//   - Must be constructed through NewPackingLine or RestorePackingLine
//   - The needed quantity is fixed for the session's lifetime
//   - The packed count only grows, one unit per operation
//   - The packed count never exceeds the needed quantity
//
// Example usage:
//
//	line, err := session.NewPackingLine(orderID, productID, "Ceramic Mug", 2)
//	if err != nil {
//	    return err
//	}
//
//	if err := line.PackOneUnit(); err != nil {
//	    return err
//	}
//	// line.QuantityPacked() == 1
type PackingLine struct {
	// orderID identifies the member order receiving the units
	orderID kernel.UUID

	// productID identifies the product being packed
	productID kernel.UUID

	// productName is the display name shown on the packing screen
	productName string

	// quantityNeeded is how many units this order requires of the product
	quantityNeeded int

	// quantityPacked is how many units have been placed into the box so far
	quantityPacked int

	// guard ensures the entity was properly initialized
	guard kernel.ConstructorGuard
}

// NewPackingLine creates a packing line for one product position of a member
// order. New lines start with nothing packed.
//
// Parameters:
//   - orderID: Unique identifier of the member order (must be a valid UUID)
//   - productID: Unique identifier of the product (must be a valid UUID)
//   - productName: Display name of the product (must not be empty)
//   - quantityNeeded: Units this order requires (must be positive)
//
// Returns:
//   - *PackingLine: Properly initialized packing line
//   - error: Aggregated validation errors, if any
func NewPackingLine(
	orderID kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantityNeeded int,
) (*PackingLine, error) {
	line := &PackingLine{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setOrderID(orderID),
		line.setProductID(productID),
		line.setProductName(productName),
		line.setQuantityNeeded(quantityNeeded),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestorePackingLine reconstructs a PackingLine from persistent storage,
// including its packing progress.
//
// Parameters:
//   - orderID: Unique identifier of the member order
//   - productID: Unique identifier of the product
//   - productName: Display name of the product
//   - quantityNeeded: Units this order requires of the product
//   - quantityPacked: Units packed so far (must lie within [0, quantityNeeded])
//
// Returns:
//   - *PackingLine: Restored packing line
//   - error: Validation error if the persisted state is inconsistent
func RestorePackingLine(
	orderID kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantityNeeded int,
	quantityPacked int,
) (*PackingLine, error) {
	line, err := NewPackingLine(orderID, productID, productName, quantityNeeded)
	if err != nil {
		return nil, err
	}

	if err := line.setQuantityPacked(quantityPacked); err != nil {
		return nil, err
	}

	return line, nil
}

// IsFor reports whether this line belongs to the given order and product pair.
func (l *PackingLine) IsFor(orderID kernel.UUID, productID kernel.UUID) bool {
	return l.orderID.IsEqual(orderID) && l.productID.IsEqual(productID)
}

// OrderID returns the identifier of the member order.
func (l *PackingLine) OrderID() kernel.UUID {
	return l.orderID
}

// ProductID returns the identifier of the product being packed.
func (l *PackingLine) ProductID() kernel.UUID {
	return l.productID
}

// ProductName returns the display name of the product.
func (l *PackingLine) ProductName() string {
	return l.productName
}

// QuantityNeeded returns how many units this order requires of the product.
func (l *PackingLine) QuantityNeeded() int {
	return l.quantityNeeded
}

// QuantityPacked returns how many units have been placed into the box so far.
func (l *PackingLine) QuantityPacked() int {
	return l.quantityPacked
}

// IsSatisfied reports whether the order's need for the product is fully met.
func (l *PackingLine) IsSatisfied() bool {
	return l.quantityPacked == l.quantityNeeded
}

// PackOneUnit records that one more unit of the product was placed into the
// order's box.
//
// Returns:
//   - nil on success
//   - ErrOrderLineSatisfied if the line is already fully packed
func (l *PackingLine) PackOneUnit() error {
	if l.quantityPacked >= l.quantityNeeded {
		return ErrOrderLineSatisfied
	}

	l.quantityPacked++
	return nil
}

// Validate checks if the PackingLine entity is in a valid state.
//
// Returns:
//   - error: ErrPackingLineIsNotConstructed if not properly initialized
func (l *PackingLine) Validate() error {
	if l == nil {
		return ErrPackingLineIsNotConstructed
	}
	return l.guard.Validate(ErrPackingLineIsNotConstructed)
}

func (l *PackingLine) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	l.orderID = orderID
	return nil
}

func (l *PackingLine) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	l.productID = productID
	return nil
}

func (l *PackingLine) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName is required")
	}

	l.productName = productName
	return nil
}

func (l *PackingLine) setQuantityNeeded(quantityNeeded int) error {
	if quantityNeeded <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantityNeeded is invalid",
			fmt.Errorf("%d is not greater than 0", quantityNeeded),
		)
	}

	l.quantityNeeded = quantityNeeded
	return nil
}

// setQuantityPacked sets the packing progress for this line.
// Used during entity restoration; the count must lie within [0, quantityNeeded].
func (l *PackingLine) setQuantityPacked(quantityPacked int) error {
	if quantityPacked < 0 || quantityPacked > l.quantityNeeded {
		return errs.NewValueIsOutOfRangeError("quantityPacked", quantityPacked, 0, l.quantityNeeded)
	}

	l.quantityPacked = quantityPacked
	return nil
}
