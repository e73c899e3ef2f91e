package commands

import (
	"time"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/order"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/session"
)

// LabelEmitter produces a printable shipping label for a fully packed member
// order. Implementations live in the adapters layer; the handler only invokes
// the emitter after the session aggregate has gated the print.
type LabelEmitter interface {
	// Emit builds the label document for the given member order.
	// The order must be a member of the session and fully packed.
	Emit(sess *session.Session, ord *order.Order) (LabelDocument, error)
}

// LabelDocument is the printable artifact handed back to the caller after a
// label is emitted. It carries everything the packing station needs to print:
// who the box is for, which session packed it and what is inside.
type LabelDocument struct {
	// SessionCode is the human-readable code of the packing session
	SessionCode string

	// OrderNumber is the human-readable number of the labelled order
	OrderNumber string

	// CustomerName identifies the recipient
	CustomerName string

	// PrintedAt is the time of the first label emission for the order
	PrintedAt time.Time

	// Lines list the packed contents of the box
	Lines []LabelLine
}

// LabelLine is one product position on a shipping label.
type LabelLine struct {
	// ProductName is the display name of the packed product
	ProductName string

	// Quantity is the number of packed units
	Quantity int
}
