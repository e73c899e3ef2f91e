package commands

import (
	"context"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/services"
)

// CreateSessionCommandHandler handles the business logic for opening a
// fulfillment session. Loads and locks the selected orders, lets the
// SessionPlanner claim them and build the aggregated pick list, and persists
// the new session together with the claimed orders in one transaction.
//
// Example:
//
//	handler := NewCreateSessionCommandHandler(uowFactory)
//	cmd, _ := NewCreateSessionCommand(sessionID, code, orderIDs)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConflict):
//	    log.Println("An order is already part of another session")
//	case err != nil:
//	    log.Printf("Session creation failed: %v", err)
//	}
type CreateSessionCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateSessionCommandHandler creates a handler for session creation.
// Requires a UoWFactory for coordinating transactional updates across the
// session and order repositories.
func NewCreateSessionCommandHandler(uowFactory UoWFactory) CreateSessionCommandHandler {
	return CreateSessionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the session creation command.
// Locks the selected order rows, claims each order for the new session and
// persists everything atomically. The row locks make concurrent attempts to
// claim the same order serialize; the loser sees the order already in
// InFulfillment status and fails with a conflict error.
func (h CreateSessionCommandHandler) Handle(ctx context.Context, cmd CreateSessionCommand) error {
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

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetByIDsForUpdate(ctx, cmd.OrderIDs())
	if err != nil {
		return err
	}

	sess, err := services.NewSessionPlanner().Plan(cmd.SessionID(), cmd.Code(), orders)
	if err != nil {
		return err
	}

	if err = uow.SessionRepository().Add(ctx, sess); err != nil {
		return err
	}

	for _, ord := range orders {
		if err = orderRepo.Update(ctx, ord); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
