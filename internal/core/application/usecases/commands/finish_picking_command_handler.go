package commands

import (
	"context"
)

// FinishPickingCommandHandler handles the transition from picking to packing.
// Locks the session row, verifies the pick list is fully collected and moves
// the session to Packing status.
type FinishPickingCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewFinishPickingCommandHandler creates a handler for the finish-picking transition.
// Requires a SessionUoWFactory for transactional persistence.
func NewFinishPickingCommandHandler(uowFactory SessionUoWFactory) FinishPickingCommandHandler {
	return FinishPickingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finish-picking command.
// The aggregate rejects the transition while any requirement is short of its
// total, so the collected units always cover every member order's demand when
// packing begins.
func (h FinishPickingCommandHandler) Handle(ctx context.Context, cmd FinishPickingCommand) error {
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

	if err = sess.FinishPicking(); err != nil {
		return err
	}

	if err = sessionRepo.Update(ctx, sess); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
