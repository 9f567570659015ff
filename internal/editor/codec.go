package editor

import (
	"encoding/json"

	"github.com/jotkit/jot/internal/errors"
)

// wire is the persisted JSON shape of a document: {"text": string}.
// The pointer distinguishes a missing or null text from an empty one.
type wire struct {
	Text *string `json:"text"`
}

// Marshal encodes a document state into its wire form.
func Marshal(s State) ([]byte, error) {
	return json.Marshal(wire{Text: &s.Text})
}

// Unmarshal decodes the wire form back into a document state. The input
// must be a JSON object carrying a string text field; anything else is
// malformed data.
func Unmarshal(data []byte) (State, error) {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return State{}, errors.E(errors.Op("editor.Unmarshal"), errors.KindMalformedData, "invalid document shape", err)
	}
	if w.Text == nil {
		return State{}, errors.MalformedDocument("missing text field")
	}
	return State{Text: *w.Text}, nil
}
