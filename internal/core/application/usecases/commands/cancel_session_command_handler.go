package commands

import (
	"context"
)

// CancelSessionCommandHandler handles the business logic for abandoning a
// running session. Cancels the session aggregate and releases every member
// order back to the eligible pool in the same transaction, so no order stays
// claimed by a dead session.
type CancelSessionCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelSessionCommandHandler creates a handler for session cancellation.
// Requires a UoWFactory for coordinating transactional updates across the
// session and order repositories.
func NewCancelSessionCommandHandler(uowFactory UoWFactory) CancelSessionCommandHandler {
	return CancelSessionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the session cancellation command.
// Cancelling a terminal session fails with the session-closed error; picking
// and packing progress recorded so far is discarded with the session, and the
// released orders become eligible for a fresh session immediately.
func (h CancelSessionCommandHandler) Handle(ctx context.Context, cmd CancelSessionCommand) error {
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

	if err = sess.Cancel(); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetByIDsForUpdate(ctx, memberOrderIDs(sess))
	if err != nil {
		return err
	}

	for _, ord := range orders {
		if err = ord.ReleaseFromFulfillment(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, ord); err != nil {
			return err
		}
	}

	if err = sessionRepo.Update(ctx, sess); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
