package session

import (
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
)

// PoolItem is the derived per-product view of the shared packing pool: how
// many units of a product have been physically collected, how many of those
// already sit in order boxes, and how many remain available for allocation.
//
// Pool items are never stored. Session.PoolItems recomputes them from the
// pick requirement and packing line truth on every read, so the Remaining
// figure cannot drift from the line-level state. For every item,
// 0 <= TotalPacked <= TotalPicked and Remaining == TotalPicked - TotalPacked.
type PoolItem struct {
	// ProductID identifies the product
	ProductID kernel.UUID

	// ProductName is the display name shown on the packing screen
	ProductName string

	// TotalPicked is the number of units collected during picking
	TotalPicked int

	// TotalPacked is the number of units already placed into order boxes
	TotalPacked int

	// Remaining is the number of collected units still in the shared bin
	Remaining int
}
