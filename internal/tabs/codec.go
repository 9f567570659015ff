package tabs

import (
	"encoding/json"
	"fmt"

	"github.com/jotkit/jot/internal/editor"
	"github.com/jotkit/jot/internal/errors"
)

// ringWire mirrors the persisted state shape. encoding/json emits struct
// fields in declaration order, so the order here is part of the format:
// leftTabs, currentTab, rightTabs.
type ringWire struct {
	Left    []tabWire `json:"leftTabs"`
	Current *tabWire  `json:"currentTab"`
	Right   []tabWire `json:"rightTabs"`
}

// tabWire carries one tab. The document payload stays raw so the editor
// package's own codec handles it in both directions.
type tabWire struct {
	Title  *string         `json:"title"`
	Editor json.RawMessage `json:"editorState"`
}

// Marshal encodes a ring into its persisted JSON form. Empty tab lists
// encode as [] rather than null.
func Marshal(r Ring) ([]byte, error) {
	left, err := marshalTabs(r.Left)
	if err != nil {
		return nil, err
	}
	current, err := marshalTab(r.Current)
	if err != nil {
		return nil, err
	}
	right, err := marshalTabs(r.Right)
	if err != nil {
		return nil, err
	}
	return json.Marshal(ringWire{Left: left, Current: &current, Right: right})
}

func marshalTabs(ts []Tab) ([]tabWire, error) {
	out := make([]tabWire, 0, len(ts))
	for _, t := range ts {
		w, err := marshalTab(t)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func marshalTab(t Tab) (tabWire, error) {
	doc, err := editor.Marshal(t.Doc)
	if err != nil {
		return tabWire{}, err
	}
	title := t.Title
	return tabWire{Title: &title, Editor: doc}, nil
}

// Unmarshal rehydrates a ring from its persisted form. Both tab arrays
// and the current tab must be present; every entry must be an object
// with a string title and a valid editorState. Anything else reports
// malformed data.
func Unmarshal(data []byte) (Ring, error) {
	var w ringWire
	if err := json.Unmarshal(data, &w); err != nil {
		return Ring{}, errors.E(errors.Op("tabs.Unmarshal"), errors.KindMalformedData, "invalid state shape", err)
	}
	if w.Left == nil {
		return Ring{}, errors.MalformedState("missing leftTabs array")
	}
	if w.Current == nil {
		return Ring{}, errors.MalformedState("missing currentTab")
	}
	if w.Right == nil {
		return Ring{}, errors.MalformedState("missing rightTabs array")
	}

	left, err := unmarshalTabs(w.Left)
	if err != nil {
		return Ring{}, err
	}
	current, err := unmarshalTab(*w.Current)
	if err != nil {
		return Ring{}, err
	}
	right, err := unmarshalTabs(w.Right)
	if err != nil {
		return Ring{}, err
	}
	return Ring{Left: left, Current: current, Right: right}, nil
}

func unmarshalTabs(ws []tabWire) ([]Tab, error) {
	if len(ws) == 0 {
		return nil, nil
	}
	out := make([]Tab, 0, len(ws))
	for _, w := range ws {
		t, err := unmarshalTab(w)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// unmarshalTab trusts the stored title verbatim instead of re-deriving
// it: a freshly opened tab persists with an empty title, and deriving
// here would not round-trip it.
func unmarshalTab(w tabWire) (Tab, error) {
	if w.Title == nil {
		return Tab{}, errors.MalformedState("tab missing title")
	}
	if w.Editor == nil {
		return Tab{}, errors.MalformedState("tab missing editorState")
	}
	doc, err := editor.Unmarshal(w.Editor)
	if err != nil {
		return Tab{}, err
	}
	return Tab{Title: *w.Title, Doc: doc}, nil
}

// Wire action type tags.
const (
	wireEdit     = "edit-tab"
	wireNewTab   = "new-tab"
	wireNavigate = "change-tab"
	wireClose    = "close-tab"
	wireChange   = "change"
)

// actionWire is the JSON shape of a single action:
//
//	{"type":"edit-tab","action":{"type":"change","text":...}}
//	{"type":"new-tab"}
//	{"type":"change-tab","direction":n}
//	{"type":"close-tab","direction":n}
type actionWire struct {
	Type      string          `json:"type"`
	Direction *int            `json:"direction,omitempty"`
	Action    *editActionWire `json:"action,omitempty"`
}

type editActionWire struct {
	Type string  `json:"type"`
	Text *string `json:"text,omitempty"`
}

// ParseAction decodes one wire action. An unrecognized type tag is an
// invalid-action error; a recognized tag with missing or mistyped
// fields is malformed data.
func ParseAction(data []byte) (Action, error) {
	var w actionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.E(errors.Op("tabs.ParseAction"), errors.KindMalformedData, "invalid action shape", err)
	}
	switch w.Type {
	case wireEdit:
		if w.Action == nil {
			return nil, errors.MalformedAction("edit-tab missing action")
		}
		if w.Action.Type != wireChange {
			return nil, errors.MalformedAction(fmt.Sprintf("unsupported edit action %q", w.Action.Type))
		}
		if w.Action.Text == nil {
			return nil, errors.MalformedAction("change action missing text")
		}
		return Edit{Action: editor.Change{Text: *w.Action.Text}}, nil
	case wireNewTab:
		return NewTab{}, nil
	case wireNavigate:
		if w.Direction == nil {
			return nil, errors.MalformedAction("change-tab missing direction")
		}
		return Navigate{Direction: *w.Direction}, nil
	case wireClose:
		if w.Direction == nil {
			return nil, errors.MalformedAction("close-tab missing direction")
		}
		return Close{Direction: *w.Direction}, nil
	default:
		return nil, errors.E(errors.Op("tabs.ParseAction"), errors.KindInvalidAction, fmt.Sprintf("unrecognized action type %q", w.Type))
	}
}

// MarshalAction encodes an action into its wire form, the mirror of
// ParseAction.
func MarshalAction(a Action) ([]byte, error) {
	switch act := a.(type) {
	case Edit:
		change, ok := act.Action.(editor.Change)
		if !ok {
			return nil, errors.UnknownAction("tabs.MarshalAction", act.Action)
		}
		text := change.Text
		return json.Marshal(actionWire{Type: wireEdit, Action: &editActionWire{Type: wireChange, Text: &text}})
	case NewTab:
		return json.Marshal(actionWire{Type: wireNewTab})
	case Navigate:
		d := act.Direction
		return json.Marshal(actionWire{Type: wireNavigate, Direction: &d})
	case Close:
		d := act.Direction
		return json.Marshal(actionWire{Type: wireClose, Direction: &d})
	default:
		return nil, errors.UnknownAction("tabs.MarshalAction", a)
	}
}
