package commands

import (
	"context"
)

// PackUnitCommandHandler handles the business logic for packing a single unit.
// Locks the session row, moves one unit from the shared pool into the order's
// box and persists the session.
//
// Each unit is its own transaction, so a retried command never double-applies
// and the pool invariant (packed never exceeds picked) holds after every
// committed operation.
type PackUnitCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewPackUnitCommandHandler creates a handler for single-unit packing.
// Requires a SessionUoWFactory for transactional persistence.
func NewPackUnitCommandHandler(uowFactory SessionUoWFactory) PackUnitCommandHandler {
	return PackUnitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pack-unit command.
// The aggregate checks, in order: the session is in Packing status, the order
// is a member, the order has a line for the product, the line is unsatisfied
// and the pool still holds a unit. On any rejection the transaction rolls
// back and the stored state is unchanged.
func (h PackUnitCommandHandler) Handle(ctx context.Context, cmd PackUnitCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	sess, err := sessionRepo.GetForUpdate(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	if err = sess.PackOne(cmd.OrderID(), cmd.ProductID()); err != nil {
		return err
	}

	if err = sessionRepo.Update(ctx, sess); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
