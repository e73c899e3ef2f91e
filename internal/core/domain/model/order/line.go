package order

import (
	"errors"
	"fmt"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory method.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is an immutable snapshot of one product position of a customer order.
// It captures what was sold at confirmation time: the product, its display
// name and how many units the customer bought.
//
// The product name is denormalized into the line so that pick lists and
// packing screens keep showing the name the customer ordered under, even
// if the catalog renames the product later.
//
// Line is a value object: two lines with the same product, name and quantity
// are interchangeable. The zero value is invalid - use NewLine.
type Line struct {
	productID   kernel.UUID
	productName string
	quantity    int
	guard       kernel.ConstructorGuard
}

// NewLine creates a new order Line with validation.
//
// Parameters:
//   - productID: Unique identifier of the product (must be a valid UUID)
//   - productName: Display name of the product (must not be empty)
//   - quantity: Number of units ordered (must be positive)
//
// Returns:
//   - Line: The created line if all validations pass
//   - error: Validation error if any parameter is invalid
func NewLine(productID kernel.UUID, productName string, quantity int) (Line, error) {
	line := Line{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setProductName(productName),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line instance was properly constructed through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductID returns the identifier of the ordered product.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// ProductName returns the display name of the ordered product.
func (l Line) ProductName() string {
	return l.productName
}

// Quantity returns the number of units ordered.
func (l Line) Quantity() int {
	return l.quantity
}

// setProductID validates and sets the line's product identifier.
// This is a private method used only during construction.
func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

// setProductName validates and sets the line's product name.
// This is a private method used only during construction.
func (l *Line) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	l.productName = productName
	return nil
}

// setQuantity validates and sets the line's quantity.
// Quantity must be positive (greater than 0).
// This is a private method used only during construction.
func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
