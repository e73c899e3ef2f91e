// Package labels renders shipping label documents for packed member orders.
// The emitter is a pure assembly step: the session aggregate has already
// gated the print on packing completeness before it is invoked.
package labels

import (
	"errors"

	"github.com/T0MGL/0rdefy-sub010/internal/core/application/usecases/commands"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/order"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/session"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"
)

// Emitter builds label documents from the session and order aggregates.
// Implements the commands.LabelEmitter port.
type Emitter struct{}

// NewEmitter creates a label emitter.
func NewEmitter() Emitter {
	return Emitter{}
}

// Emit builds the label document for the given member order. The document
// contents come from the session's packing lines rather than the order lines,
// so the label always lists exactly what was allocated into the box.
//
// Returns an error if the order is not a member of the session or if its
// label state was never set.
func (e Emitter) Emit(sess *session.Session, ord *order.Order) (commands.LabelDocument, error) {
	if err := sess.Validate(); err != nil {
		return commands.LabelDocument{}, err
	}
	if err := ord.Validate(); err != nil {
		return commands.LabelDocument{}, err
	}

	var member *session.Member
	for _, m := range sess.Members() {
		if m.OrderID() == ord.ID() {
			member = m
			break
		}
	}
	if member == nil {
		return commands.LabelDocument{}, errs.NewObjectNotFoundError("session member", ord.ID())
	}

	if member.PrintedAt() == nil {
		return commands.LabelDocument{}, errs.NewStateIsInvalidErrorWithCause("member",
			errors.New("label emission requires the member's print state to be set"))
	}

	lines := make([]commands.LabelLine, 0)
	for _, line := range sess.PackingLines() {
		if line.OrderID() != ord.ID() {
			continue
		}
		lines = append(lines, commands.LabelLine{
			ProductName: line.ProductName(),
			Quantity:    line.QuantityPacked(),
		})
	}

	return commands.LabelDocument{
		SessionCode:  sess.Code().String(),
		OrderNumber:  ord.Number(),
		CustomerName: ord.CustomerName(),
		PrintedAt:    *member.PrintedAt(),
		Lines:        lines,
	}, nil
}
