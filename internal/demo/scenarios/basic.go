// Package scenarios contains built-in demo scenarios for jot.
package scenarios

import (
	"time"

	"github.com/jotkit/jot/internal/demo"
)

// Quicktour is a short first-look demo:
// - Typing a note into the scratchpad
// - Opening a second tab and typing another note
// - Jumping back to the first tab
var Quicktour = &demo.Scenario{
	Name:        "quicktour",
	Description: "Type a note, open a second tab, jump back",
	Width:       120,
	Height:      40,
	Steps: []demo.Step{
		// Initial view - a single empty tab
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// Type the first note; the tab titles itself from the first line
		demo.TypeWithDesc("groceries\n", "Title the first tab"),
		demo.Type("milk\neggs\ncoffee beans"),
		demo.Wait(800 * time.Millisecond),
		demo.Capture(),

		// Open a fresh tab
		demo.KeyWithDesc("ctrl+t", "Open a new tab"),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		// Type a second note
		demo.Type("standup notes\n"),
		demo.Type("- demo the new search\n- ask about release date"),
		demo.Wait(800 * time.Millisecond),
		demo.Capture(),

		// Jump back to the groceries tab
		demo.KeyWithDesc("ctrl+left", "Back to the previous tab"),
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// Final pause
		demo.Wait(2 * time.Second),
	},
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Quicktour,
		Walkthrough,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
