package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/order"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/guard"
)

// Domain errors for session operations.
var (
	// ErrSessionIsNotConstructed is returned when using an improperly initialized Session.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

	// ErrOrderNotInSession indicates that the referenced order is not a member
	// of this session. Wrapped into the not-found error family at the call site.
	ErrOrderNotInSession = errors.New("order is not a member of the session")

	// ErrProductNotInOrder indicates that the member order has no line for the
	// referenced product. Wrapped into the not-found error family at the call site.
	ErrProductNotInOrder = errors.New("order has no line for the product")

	// ErrNoUnitsAvailable indicates that every collected unit of the product
	// has already been placed into an order box.
	ErrNoUnitsAvailable = errs.NewStateIsInvalidError("no picked units of the product remain in the pool")

	// ErrOrderNotFullyPacked indicates that a label was requested for an order
	// that still has unsatisfied packing lines.
	ErrOrderNotFullyPacked = errs.NewStateIsInvalidError("order is not fully packed")

	// ErrPickingIncomplete indicates that picking cannot finish while some
	// requirement is still short of its total.
	ErrPickingIncomplete = errs.NewStateIsInvalidError("pick list is not fully collected")

	// ErrOrdersIncomplete indicates that the session cannot complete while some
	// member order is not fully packed or the pool still holds units.
	ErrOrdersIncomplete = errs.NewStateIsInvalidError("not all orders are fully packed")
)

// Session represents one fulfillment attempt covering a fixed set of orders.
// It is the aggregate root that owns the consolidated pick list, the per-order
// packing lines and the member label state, and it enforces every mutation
// invariant of the fulfillment workflow.
//
// A session is created from a batch of eligible orders. At creation it
// aggregates all order lines into pick requirements (one per product, needed
// quantities summed) and materializes packing lines (one per product per
// order). That snapshot is authoritative for the session's lifetime: later
// edits to the underlying orders do not change what this session picks and
// packs.
//
// Key responsibilities:
//   - Driving the lifecycle state machine (Picking, Packing, Completed, Cancelled)
//   - Recording absolute picking progress per product
//   - Allocating collected units to member orders one at a time
//   - Deriving the shared pool view and per-order completion
//   - Gating label printing and session completion on packing completeness
//
// Business rules:
//   - The member set is non-empty and fixed at creation
//   - Picked quantities stay within [0, totalQuantityNeeded] per product
//   - Packed quantities stay within [0, quantityNeeded] per line
//   - A unit can only be packed while the pool still holds one
//   - Terminal sessions reject every further mutation with ErrSessionClosed
//
// Example usage:
//
//	code, _ := kernel.GenerateCode()
//	sess, err := session.NewSession(kernel.NewUUID(), code, orders)
//	if err != nil {
//	    // Handle construction error
//	}
//	// Session is in Picking status with an aggregated pick list
type Session struct {
	// id uniquely identifies the session
	id kernel.UUID
	// code is the short human-readable identifier shown to operators
	code kernel.Code
	// status is the current position in the session lifecycle
	status Status
	// members are the orders covered by this fulfillment attempt
	members []*Member
	// pickRequirements is the aggregated pick list, one row per product
	pickRequirements []*PickRequirement
	// packingLines track per-order packing progress, one row per product per order
	packingLines []*PackingLine
	// createdAt is the time the session was opened
	createdAt time.Time
	// completedAt is the time the session completed, nil before that
	completedAt *time.Time
	// guard ensures the session was properly constructed
	guard guard.ConstructorGuard
}

// NewSession creates a new fulfillment session covering the given orders.
// This is the only way to open a valid session.
//
// The constructor walks every order's line snapshot once, summing needed
// quantities per product into pick requirements and materializing one packing
// line per product per order. The resulting session starts in Picking status
// with nothing picked and nothing packed.
//
// Parameters:
//   - id: Unique identifier for the session (must be a valid UUID)
//   - code: Human-readable session code (must be a valid Code)
//   - orders: Orders to cover (at least one, no duplicates, each valid)
//
// Returns:
//   - *Session: A fully initialized session in Picking status
//   - error: Validation error if any parameter is invalid
//
// Business rules applied:
//   - Requires at least one order
//   - Rejects the same order appearing twice
//   - Pick requirement totals are the sums over all member orders' lines
//   - Claiming the orders for the session is the planner's concern, not this
//     constructor's; the session only records their identifiers
//
// Example:
//
//	code, _ := kernel.GenerateCode()
//	sess, err := session.NewSession(kernel.NewUUID(), code, []*order.Order{ord1, ord2})
//	if err != nil {
//	    log.Fatal("Failed to open session:", err)
//	}
//	fmt.Printf("Session %s covers %d orders", sess.Code(), len(sess.Members()))
func NewSession(id kernel.UUID, code kernel.Code, orders []*order.Order) (*Session, error) {
	session := &Session{
		status: Picking,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		session.setID(id),
		session.setCode(code),
		session.buildFromOrders(orders),
		session.setCreatedAt(time.Now().UTC()),
	); err != nil {
		return nil, err
	}

	return session, nil
}

// RestoreSession reconstructs a Session aggregate from persistent storage.
// Unlike NewSession which aggregates fresh orders, this constructor restores
// a session to its previously persisted state, including picking progress,
// packing progress and label state.
//
// Parameters:
//   - id: Unique identifier for the session
//   - code: Human-readable session code
//   - status: Persisted lifecycle status
//   - members: Member orders with their label state
//   - pickRequirements: Aggregated pick list with picking progress
//   - packingLines: Per-order packing lines with packing progress
//   - createdAt: Time the session was opened
//   - completedAt: Time the session completed, nil before that
//
// Returns:
//   - *Session: Restored session aggregate
//   - error: Validation error if the stored data violates an invariant
//
// Business rules:
//   - Status must be valid and consistent with the completion timestamp
//   - Must have at least one member
//   - All members, requirements and lines must be valid
//   - Members, requirements and lines must be mutually consistent: no
//     duplicates, every line belongs to a member and a pick list row, and
//     no product has more units packed than picked
func RestoreSession(
	id kernel.UUID,
	code kernel.Code,
	status Status,
	members []*Member,
	pickRequirements []*PickRequirement,
	packingLines []*PackingLine,
	createdAt time.Time,
	completedAt *time.Time,
) (*Session, error) {
	session := &Session{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		session.setID(id),
		session.setCode(code),
		session.setStatus(status),
		session.setMembers(members),
		session.setPickRequirements(pickRequirements),
		session.setPackingLines(packingLines),
		session.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if err := session.setCompletedAt(completedAt); err != nil {
		return nil, err
	}

	if err := session.validateConsistency(); err != nil {
		return nil, err
	}

	return session, nil
}

// IsEqual compares two sessions for equality based on their unique identifiers.
// Two sessions are considered equal if they have the same ID, regardless of
// other attributes.
func (s *Session) IsEqual(other *Session) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}

// Validate checks if the Session was properly constructed using the NewSession
// constructor. The zero value of Session is invalid and will fail this validation.
//
// Returns:
//   - error: ErrSessionIsNotConstructed if improperly initialized, nil if valid
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// ID returns the unique identifier of the session.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// Code returns the short human-readable identifier of the session.
func (s *Session) Code() kernel.Code {
	return s.code
}

// Status returns the current lifecycle status of the session.
func (s *Session) Status() Status {
	return s.status
}

// CreatedAt returns the time the session was opened.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// CompletedAt returns the time the session completed.
// Returns nil while the session is still open or was cancelled.
func (s *Session) CompletedAt() *time.Time {
	return s.completedAt
}

// Members returns the orders covered by this session together with their
// label state. The returned slice is a copy to prevent external modification.
func (s *Session) Members() []*Member {
	out := make([]*Member, len(s.members))
	copy(out, s.members)
	return out
}

// PickRequirements returns the aggregated pick list of the session.
// The returned slice is a copy to prevent external modification.
func (s *Session) PickRequirements() []*PickRequirement {
	out := make([]*PickRequirement, len(s.pickRequirements))
	copy(out, s.pickRequirements)
	return out
}

// PackingLines returns the per-order packing lines of the session.
// The returned slice is a copy to prevent external modification.
func (s *Session) PackingLines() []*PackingLine {
	out := make([]*PackingLine, len(s.packingLines))
	copy(out, s.packingLines)
	return out
}

// SetPicked records the absolute number of collected units for a product on
// the session's pick list.
//
// Progress is reported as "I now have N units on the cart" rather than as an
// increment, so a lost acknowledgment can be retried safely: setting the same
// value twice yields the same state as setting it once.
//
// Parameters:
//   - productID: Product on the pick list (must be a valid UUID)
//   - quantity: Units now collected (must lie within [0, totalQuantityNeeded])
//
// Returns:
//   - nil on success
//   - ErrSessionClosed if the session is in a terminal status
//   - invalid state error if the session is not in Picking status
//   - not-found error if the product is not on the pick list
//   - out of range error if the quantity is negative or exceeds the total
func (s *Session) SetPicked(productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	if err := s.status.ValidatePicking(); err != nil {
		return err
	}

	requirement := s.findPickRequirement(productID)
	if requirement == nil {
		return errs.NewObjectNotFoundError("productID", productID)
	}

	return requirement.SetPicked(quantity)
}

// IsFullyPicked reports whether every pick requirement has reached its total.
func (s *Session) IsFullyPicked() bool {
	for _, requirement := range s.pickRequirements {
		if !requirement.IsSatisfied() {
			return false
		}
	}
	return true
}

// FinishPicking transitions the session from Picking to Packing once the
// whole pick list has been collected.
//
// Returns:
//   - nil on success
//   - ErrSessionClosed if the session is in a terminal status
//   - invalid state error if the session is not in Picking status
//   - ErrPickingIncomplete if some requirement is still short of its total
//
// After a successful transition the collected units form the packing pool
// and PackOne becomes available.
func (s *Session) FinishPicking() error {
	newStatus, err := s.status.StartPacking()
	if err != nil {
		return err
	}

	if !s.IsFullyPicked() {
		return ErrPickingIncomplete
	}

	s.status = newStatus
	return nil
}

// PackOne moves a single collected unit of a product from the shared pool
// into one member order's box.
//
// The physical metaphor is one operator moving one item from a shared bin to
// one box at a time. Modeling packing as atomic single-unit transfers keeps
// the pool invariant trivially true after every operation and makes a failed
// operation safe to retry individually. Batch packing is a caller-side loop
// over this method, stopping at the first failure.
//
// Constraints are checked in order:
//  1. Session must be in Packing status
//  2. The order must be a member of the session
//  3. The order must have a line for the product
//  4. The line must not be satisfied already
//  5. The pool must still hold an unallocated unit of the product
//
// Parameters:
//   - orderID: Member order receiving the unit (must be a valid UUID)
//   - productID: Product being packed (must be a valid UUID)
//
// Returns:
//   - nil on success; the line's packed count grows by one
//   - ErrSessionClosed if the session is in a terminal status
//   - invalid state error if the session is not in Packing status
//   - not-found error if the order is not a member or has no such line
//   - ErrOrderLineSatisfied if the order's need for the product is already met
//   - ErrNoUnitsAvailable if every collected unit is already packed
func (s *Session) PackOne(orderID kernel.UUID, productID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), productID.Validate()); err != nil {
		return err
	}

	if err := s.status.ValidatePacking(); err != nil {
		return err
	}

	if s.findMember(orderID) == nil {
		return errs.NewObjectNotFoundErrorWithCause("orderID", orderID, ErrOrderNotInSession)
	}

	line := s.findPackingLine(orderID, productID)
	if line == nil {
		return errs.NewObjectNotFoundErrorWithCause("productID", productID, ErrProductNotInOrder)
	}

	if line.IsSatisfied() {
		return ErrOrderLineSatisfied
	}

	if s.poolRemaining(productID) <= 0 {
		return ErrNoUnitsAvailable
	}

	return line.PackOneUnit()
}

// IsOrderComplete reports whether every packing line of the given order is
// satisfied. Orders that are not members of this session are reported as
// incomplete.
func (s *Session) IsOrderComplete(orderID kernel.UUID) bool {
	found := false
	for _, line := range s.packingLines {
		if !line.OrderID().IsEqual(orderID) {
			continue
		}

		found = true
		if !line.IsSatisfied() {
			return false
		}
	}
	return found
}

// MarkPrinted records that a shipping label was emitted for a member order.
//
// A label may only be printed for an order whose every packing line is
// satisfied, so a box is never labelled while units are missing. Re-printing
// an already printed order is allowed but keeps the original timestamp.
//
// Parameters:
//   - orderID: Member order whose label was emitted (must be a valid UUID)
//
// Returns:
//   - nil on success
//   - ErrSessionClosed if the session is in a terminal status
//   - invalid state error if the session is not in Packing status
//   - not-found error if the order is not a member of the session
//   - ErrOrderNotFullyPacked if some line of the order is not satisfied
func (s *Session) MarkPrinted(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if err := s.status.ValidatePacking(); err != nil {
		return err
	}

	member := s.findMember(orderID)
	if member == nil {
		return errs.NewObjectNotFoundErrorWithCause("orderID", orderID, ErrOrderNotInSession)
	}

	if !s.IsOrderComplete(orderID) {
		return ErrOrderNotFullyPacked
	}

	member.MarkPrinted(time.Now())
	return nil
}

// PoolItems returns the derived per-product view of the shared packing pool.
//
// The view is recomputed from the pick requirement and packing line truth on
// every call rather than stored, so the remaining counts cannot drift from
// the line-level state. Items appear in pick list order.
func (s *Session) PoolItems() []PoolItem {
	items := make([]PoolItem, 0, len(s.pickRequirements))
	for _, requirement := range s.pickRequirements {
		totalPacked := s.totalPacked(requirement.ProductID())
		items = append(items, PoolItem{
			ProductID:   requirement.ProductID(),
			ProductName: requirement.ProductName(),
			TotalPicked: requirement.QuantityPicked(),
			TotalPacked: totalPacked,
			Remaining:   requirement.QuantityPicked() - totalPacked,
		})
	}
	return items
}

// Complete closes the session after every member order was fully packed.
//
// Returns:
//   - nil on success
//   - ErrSessionClosed if the session is already in a terminal status
//   - invalid state error if the session is not in Packing status
//   - ErrOrdersIncomplete if some order is not fully packed or the pool
//     still holds unallocated units
//
// After a successful transition the session is a closed historical record:
// its status is Completed, the completion time is set, and every further
// mutation fails. Releasing the member orders to the next workflow stage is
// the caller's concern.
func (s *Session) Complete() error {
	newStatus, err := s.status.Complete()
	if err != nil {
		return err
	}

	for _, member := range s.members {
		if !s.IsOrderComplete(member.OrderID()) {
			return ErrOrdersIncomplete
		}
	}

	for _, item := range s.PoolItems() {
		if item.Remaining != 0 {
			return ErrOrdersIncomplete
		}
	}

	now := time.Now().UTC()
	s.status = newStatus
	s.completedAt = &now
	return nil
}

// Cancel abandons the session from any non-terminal status.
//
// Returns:
//   - nil on success
//   - ErrSessionClosed if the session is already in a terminal status
//
// After a successful transition the session is a closed historical record
// in Cancelled status. Returning the member orders to the eligible pool is
// the caller's concern.
func (s *Session) Cancel() error {
	newStatus, err := s.status.Cancel()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// validateConsistency checks the cross-entity invariants of a restored
// session. Per-entity setters cannot see each other, so duplicate rows,
// orphaned lines and pools that would report a negative remaining count are
// caught here before the aggregate is handed out.
func (s *Session) validateConsistency() error {
	for i, member := range s.members {
		for _, other := range s.members[:i] {
			if member.OrderID().IsEqual(other.OrderID()) {
				return errs.NewValueIsInvalidErrorWithCause("members",
					fmt.Errorf("order %s appears more than once", member.OrderID()))
			}
		}
	}

	for i, requirement := range s.pickRequirements {
		for _, other := range s.pickRequirements[:i] {
			if requirement.ProductID().IsEqual(other.ProductID()) {
				return errs.NewValueIsInvalidErrorWithCause("pickRequirements",
					fmt.Errorf("product %s appears more than once", requirement.ProductID()))
			}
		}
	}

	for i, line := range s.packingLines {
		for _, other := range s.packingLines[:i] {
			if line.IsFor(other.OrderID(), other.ProductID()) {
				return errs.NewValueIsInvalidErrorWithCause("packingLines",
					fmt.Errorf("line for order %s and product %s appears more than once",
						line.OrderID(), line.ProductID()))
			}
		}

		if s.findMember(line.OrderID()) == nil {
			return errs.NewValueIsInvalidErrorWithCause("packingLines",
				fmt.Errorf("line belongs to order %s which is not a member", line.OrderID()))
		}

		if s.findPickRequirement(line.ProductID()) == nil {
			return errs.NewValueIsInvalidErrorWithCause("packingLines",
				fmt.Errorf("line names product %s which is not on the pick list", line.ProductID()))
		}
	}

	for _, requirement := range s.pickRequirements {
		if s.totalPacked(requirement.ProductID()) > requirement.QuantityPicked() {
			return errs.NewValueIsInvalidErrorWithCause("packingLines",
				fmt.Errorf("product %s has more units packed than picked", requirement.ProductID()))
		}
	}

	return nil
}

// buildFromOrders derives the member set, the aggregated pick list and the
// packing lines from the orders' line snapshots.
// This is a private method used only during construction.
func (s *Session) buildFromOrders(orders []*order.Order) error {
	if len(orders) == 0 {
		return errs.NewValueIsRequiredError("orders")
	}

	type productDemand struct {
		name  string
		total int
	}

	members := make([]*Member, 0, len(orders))
	lines := make([]*PackingLine, 0)
	demands := make(map[kernel.UUID]*productDemand)
	productIDs := make([]kernel.UUID, 0)

	for _, ord := range orders {
		if err := ord.Validate(); err != nil {
			return err
		}

		if s.memberExists(members, ord.ID()) {
			return errs.NewValueIsInvalidErrorWithCause("orders",
				fmt.Errorf("order %s appears more than once", ord.ID()))
		}

		member, err := NewMember(ord.ID())
		if err != nil {
			return err
		}
		members = append(members, member)

		for _, orderLine := range ord.Lines() {
			packingLine, err := NewPackingLine(
				ord.ID(),
				orderLine.ProductID(),
				orderLine.ProductName(),
				orderLine.Quantity(),
			)
			if err != nil {
				return err
			}
			lines = append(lines, packingLine)

			if demand, ok := demands[orderLine.ProductID()]; ok {
				demand.total += orderLine.Quantity()
				continue
			}
			demands[orderLine.ProductID()] = &productDemand{
				name:  orderLine.ProductName(),
				total: orderLine.Quantity(),
			}
			productIDs = append(productIDs, orderLine.ProductID())
		}
	}

	// Pick list rows keep the order in which products were first seen.
	requirements := make([]*PickRequirement, 0, len(productIDs))
	for _, productID := range productIDs {
		demand := demands[productID]
		requirement, err := NewPickRequirement(productID, demand.name, demand.total)
		if err != nil {
			return err
		}
		requirements = append(requirements, requirement)
	}

	s.members = members
	s.pickRequirements = requirements
	s.packingLines = lines
	return nil
}

// memberExists reports whether the order already appears in the member list
// being built.
func (s *Session) memberExists(members []*Member, orderID kernel.UUID) bool {
	for _, member := range members {
		if member.OrderID().IsEqual(orderID) {
			return true
		}
	}
	return false
}

// findMember locates the member entry for an order, nil if the order does
// not belong to this session.
func (s *Session) findMember(orderID kernel.UUID) *Member {
	for _, member := range s.members {
		if member.OrderID().IsEqual(orderID) {
			return member
		}
	}
	return nil
}

// findPickRequirement locates the pick list row for a product, nil if the
// product is not on the pick list.
func (s *Session) findPickRequirement(productID kernel.UUID) *PickRequirement {
	for _, requirement := range s.pickRequirements {
		if requirement.ProductID().IsEqual(productID) {
			return requirement
		}
	}
	return nil
}

// findPackingLine locates the packing line for an order and product pair,
// nil if the order has no line for the product.
func (s *Session) findPackingLine(orderID kernel.UUID, productID kernel.UUID) *PackingLine {
	for _, line := range s.packingLines {
		if line.IsFor(orderID, productID) {
			return line
		}
	}
	return nil
}

// totalPacked sums the packed units of a product across all packing lines.
func (s *Session) totalPacked(productID kernel.UUID) int {
	total := 0
	for _, line := range s.packingLines {
		if line.ProductID().IsEqual(productID) {
			total += line.QuantityPacked()
		}
	}
	return total
}

// poolRemaining derives how many collected units of a product are still
// unallocated. Always recomputed, never stored.
func (s *Session) poolRemaining(productID kernel.UUID) int {
	requirement := s.findPickRequirement(productID)
	if requirement == nil {
		return 0
	}
	return requirement.QuantityPicked() - s.totalPacked(productID)
}

// setID sets the session's unique identifier with validation.
// This is an internal setter used during session construction.
func (s *Session) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

// setCode sets the session's human-readable code with validation.
// This is an internal setter used during session construction.
func (s *Session) setCode(code kernel.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	s.code = code
	return nil
}

// setStatus sets the persisted lifecycle status with validation.
// This is an internal setter used during session restoration.
func (s *Session) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	s.status = status
	return nil
}

// setMembers sets the session's member collection.
// Used during restoration to establish the members from persistent state.
func (s *Session) setMembers(members []*Member) error {
	if len(members) == 0 {
		return errs.NewValueIsRequiredError("members are required")
	}

	for _, member := range members {
		if err := member.Validate(); err != nil {
			return err
		}
	}

	s.members = make([]*Member, len(members))
	copy(s.members, members)
	return nil
}

// setPickRequirements sets the session's aggregated pick list.
// Used during restoration to establish the pick list from persistent state.
func (s *Session) setPickRequirements(pickRequirements []*PickRequirement) error {
	for _, requirement := range pickRequirements {
		if err := requirement.Validate(); err != nil {
			return err
		}
	}

	s.pickRequirements = make([]*PickRequirement, len(pickRequirements))
	copy(s.pickRequirements, pickRequirements)
	return nil
}

// setPackingLines sets the session's packing lines.
// Used during restoration to establish the lines from persistent state.
func (s *Session) setPackingLines(packingLines []*PackingLine) error {
	for _, line := range packingLines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	s.packingLines = make([]*PackingLine, len(packingLines))
	copy(s.packingLines, packingLines)
	return nil
}

// setCreatedAt sets the session's creation time with validation.
// This is an internal setter used during session construction.
func (s *Session) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	s.createdAt = createdAt.UTC()
	return nil
}

// setCompletedAt sets the optional completion time, checking its consistency
// with the already assigned status.
// This is an internal setter used during session restoration.
func (s *Session) setCompletedAt(completedAt *time.Time) error {
	if err := s.status.ValidateCanHaveCompletedAt(completedAt != nil); err != nil {
		return err
	}

	if completedAt != nil {
		at := completedAt.UTC()
		s.completedAt = &at
	}
	return nil
}
