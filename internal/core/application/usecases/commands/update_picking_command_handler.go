package commands

import (
	"context"
)

// UpdatePickingCommandHandler handles the business logic for recording picking
// progress. Locks the session row, applies the absolute quantity to the pick
// list and persists the session, so concurrent updates to the same session
// serialize on the row lock.
type UpdatePickingCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewUpdatePickingCommandHandler creates a handler for picking progress updates.
// Requires a SessionUoWFactory for transactional persistence.
func NewUpdatePickingCommandHandler(uowFactory SessionUoWFactory) UpdatePickingCommandHandler {
	return UpdatePickingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the picking progress command.
// The aggregate rejects quantities outside [0, totalQuantityNeeded], unknown
// products and sessions that are not in Picking status; on any rejection the
// transaction rolls back and the stored state is unchanged.
func (h UpdatePickingCommandHandler) Handle(ctx context.Context, cmd UpdatePickingCommand) error {
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

	if err = sess.SetPicked(cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = sessionRepo.Update(ctx, sess); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
