package session

import (
	"errors"
	"fmt"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"
)

// ErrPickRequirementIsNotConstructed indicates that the PickRequirement was
// not properly initialized through the NewPickRequirement constructor function.
var ErrPickRequirementIsNotConstructed = errors.New(
	"PickRequirement must be created via NewPickRequirement constructor")

// PickRequirement is one row of the session's aggregated pick list: how many
// units of a product the picker must collect across all member orders, and
// how many have been collected so far.
//
// The requirement is built once when the session is created, by summing the
// quantities of the product over every member order's lines. The total never
// changes afterwards; only the picked count moves, and it always stays within
// [0, total].
//
// Progress updates are absolute, not incremental. The picker reports "I now
// have N units of this product on the cart", so repeating a report or
// correcting a miscount needs no special handling.
type PickRequirement struct {
	// productID identifies the product to pick
	productID kernel.UUID

	// productName is the display name shown on the pick list
	productName string

	// totalQuantityNeeded is the summed demand across all member orders
	totalQuantityNeeded int

	// quantityPicked is the number of units collected so far
	quantityPicked int

	// guard ensures the entity was properly initialized
	guard kernel.ConstructorGuard
}

// NewPickRequirement creates a pick list row for a product.
// New requirements start with nothing picked.
//
// Parameters:
//   - productID: Unique identifier of the product (must be a valid UUID)
//   - productName: Display name of the product (must not be empty)
//   - totalQuantityNeeded: Summed demand across member orders (must be positive)
//
// Returns:
//   - *PickRequirement: Properly initialized pick requirement
//   - error: Aggregated validation errors, if any
func NewPickRequirement(productID kernel.UUID, productName string, totalQuantityNeeded int) (*PickRequirement, error) {
	requirement := &PickRequirement{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		requirement.setProductID(productID),
		requirement.setProductName(productName),
		requirement.setTotalQuantityNeeded(totalQuantityNeeded),
	); err != nil {
		return nil, err
	}

	return requirement, nil
}

// RestorePickRequirement reconstructs a PickRequirement from persistent
// storage, including its picking progress.
//
// Parameters:
//   - productID: Unique identifier of the product
//   - productName: Display name of the product
//   - totalQuantityNeeded: Summed demand across member orders
//   - quantityPicked: Units collected so far (must lie within [0, total])
//
// Returns:
//   - *PickRequirement: Restored pick requirement
//   - error: Validation error if the persisted state is inconsistent
func RestorePickRequirement(
	productID kernel.UUID,
	productName string,
	totalQuantityNeeded int,
	quantityPicked int,
) (*PickRequirement, error) {
	requirement := &PickRequirement{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		requirement.setProductID(productID),
		requirement.setProductName(productName),
		requirement.setTotalQuantityNeeded(totalQuantityNeeded),
	); err != nil {
		return nil, err
	}

	if err := requirement.SetPicked(quantityPicked); err != nil {
		return nil, err
	}

	return requirement, nil
}

// IsEqual compares two pick requirements by their product identifiers.
func (r *PickRequirement) IsEqual(other *PickRequirement) bool {
	if other == nil {
		return false
	}
	return r.productID.IsEqual(other.productID)
}

// ProductID returns the identifier of the product to pick.
func (r *PickRequirement) ProductID() kernel.UUID {
	return r.productID
}

// ProductName returns the display name of the product.
func (r *PickRequirement) ProductName() string {
	return r.productName
}

// TotalQuantityNeeded returns the summed demand across all member orders.
func (r *PickRequirement) TotalQuantityNeeded() int {
	return r.totalQuantityNeeded
}

// QuantityPicked returns the number of units collected so far.
func (r *PickRequirement) QuantityPicked() int {
	return r.quantityPicked
}

// IsSatisfied reports whether the full demand has been collected.
func (r *PickRequirement) IsSatisfied() bool {
	return r.quantityPicked == r.totalQuantityNeeded
}

// SetPicked records the absolute number of units collected for this product.
// The value replaces the previous count, so reporting the same number twice
// has no effect.
//
// Parameters:
//   - quantity: Units now on the picker's cart (must lie within [0, total])
//
// Returns:
//   - error: Out of range error if the quantity is negative or exceeds the demand
func (r *PickRequirement) SetPicked(quantity int) error {
	if quantity < 0 || quantity > r.totalQuantityNeeded {
		return errs.NewValueIsOutOfRangeError("quantityPicked", quantity, 0, r.totalQuantityNeeded)
	}

	r.quantityPicked = quantity
	return nil
}

// Validate checks if the PickRequirement entity is in a valid state.
//
// Returns:
//   - error: ErrPickRequirementIsNotConstructed if not properly initialized
func (r *PickRequirement) Validate() error {
	if r == nil {
		return ErrPickRequirementIsNotConstructed
	}
	return r.guard.Validate(ErrPickRequirementIsNotConstructed)
}

func (r *PickRequirement) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	r.productID = productID
	return nil
}

func (r *PickRequirement) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName is required")
	}

	r.productName = productName
	return nil
}

func (r *PickRequirement) setTotalQuantityNeeded(totalQuantityNeeded int) error {
	if totalQuantityNeeded <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalQuantityNeeded is invalid",
			fmt.Errorf("%d is not greater than 0", totalQuantityNeeded),
		)
	}

	r.totalQuantityNeeded = totalQuantityNeeded
	return nil
}
