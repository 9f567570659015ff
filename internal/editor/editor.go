// Package editor implements the document half of jot's state machine:
// an immutable text-buffer value and the pure transition over it.
//
// A State is a plain value; applying an action never mutates the input,
// it returns a fresh snapshot. The document model is deliberately a
// single string, the payload a tab carries, not a rich text engine.
package editor

import (
	"github.com/jotkit/jot/internal/errors"
)

// State is an immutable snapshot of a single document's text buffer.
type State struct {
	Text string
}

// New returns the initial document state: an empty buffer.
func New() State {
	return State{}
}

// Action is a document transition request. The set of variants is closed;
// anything outside it is rejected by Apply.
type Action interface {
	isAction()
}

// Change replaces the entire buffer with Text. Full replacement is the
// contract: nothing of the previous content survives.
type Change struct {
	Text string
}

func (Change) isAction() {}

// Apply reduces an action to a new document state. Change cannot fail;
// a nil or unrecognized action is a contract violation reported as an
// invalid-action error, with the input state returned unchanged.
func Apply(s State, a Action) (State, error) {
	switch act := a.(type) {
	case Change:
		return State{Text: act.Text}, nil
	default:
		return s, errors.UnknownAction("editor.Apply", act)
	}
}
