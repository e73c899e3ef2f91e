package commands

import (
	"context"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/session"
)

// CompleteSessionCommandHandler handles the business logic for closing a
// fully packed session. Completes the session aggregate and advances every
// member order to the Fulfilled stage in the same transaction, so the session
// never closes with its orders left behind.
type CompleteSessionCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteSessionCommandHandler creates a handler for session completion.
// Requires a UoWFactory for coordinating transactional updates across the
// session and order repositories.
func NewCompleteSessionCommandHandler(uowFactory UoWFactory) CompleteSessionCommandHandler {
	return CompleteSessionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the session completion command.
// The aggregate rejects the transition while any member order is not fully
// packed or the pool still holds unallocated units.
func (h CompleteSessionCommandHandler) Handle(ctx context.Context, cmd CompleteSessionCommand) error {
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

	if err = sess.Complete(); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetByIDsForUpdate(ctx, memberOrderIDs(sess))
	if err != nil {
		return err
	}

	for _, ord := range orders {
		if err = ord.CompleteFulfillment(); err != nil {
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

// memberOrderIDs collects the order identifiers of a session's members.
func memberOrderIDs(sess *session.Session) []kernel.UUID {
	members := sess.Members()
	ids := make([]kernel.UUID, 0, len(members))
	for _, member := range members {
		ids = append(ids, member.OrderID())
	}
	return ids
}
