package commands

import (
	"context"
)

// PrintLabelCommandHandler handles the business logic for label emission.
// Locks the session row, lets the aggregate gate the print on packing
// completeness, builds the label document from the order details and persists
// the member's print state.
type PrintLabelCommandHandler struct {
	uowFactory UoWFactory
	emitter    LabelEmitter
}

// NewPrintLabelCommandHandler creates a handler for label emission.
// Requires a UoWFactory (the label needs order details alongside the session)
// and a LabelEmitter implementation from the adapters layer.
func NewPrintLabelCommandHandler(uowFactory UoWFactory, emitter LabelEmitter) PrintLabelCommandHandler {
	return PrintLabelCommandHandler{
		uowFactory: uowFactory,
		emitter:    emitter,
	}
}

// Handle processes the print-label command and returns the label document.
// The aggregate rejects the print while any packing line of the order is
// unsatisfied, so a box is never labelled with units missing. Reprinting an
// already printed order succeeds and keeps the original print timestamp.
func (h PrintLabelCommandHandler) Handle(ctx context.Context, cmd PrintLabelCommand) (LabelDocument, error) {
	if err := cmd.Validate(); err != nil {
		return LabelDocument{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LabelDocument{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	sess, err := sessionRepo.GetForUpdate(ctx, cmd.SessionID())
	if err != nil {
		return LabelDocument{}, err
	}

	if err = sess.MarkPrinted(cmd.OrderID()); err != nil {
		return LabelDocument{}, err
	}

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return LabelDocument{}, err
	}

	document, err := h.emitter.Emit(sess, ord)
	if err != nil {
		return LabelDocument{}, err
	}

	if err = sessionRepo.Update(ctx, sess); err != nil {
		return LabelDocument{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LabelDocument{}, err
	}

	return document, nil
}
