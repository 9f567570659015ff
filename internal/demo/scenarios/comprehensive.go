package scenarios

import (
	"time"

	"github.com/jotkit/jot/internal/demo"
)

// Walkthrough tours every major feature:
// - Notes across several tabs with markdown content
// - The rendered markdown preview
// - Fuzzy tab search and jumping between tabs
// - The help modal
// - Closing a tab with the confirmation dialog
var Walkthrough = &demo.Scenario{
	Name:        "walkthrough",
	Description: "Tabs, preview, search, help, and closing",
	Width:       120,
	Height:      40,
	Steps: []demo.Step{
		demo.Annotate("jot opens with a single empty tab"),
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// A markdown note to show off the preview later
		demo.TypeWithDesc("release checklist\n", "First line becomes the tab title"),
		demo.Type("- [ ] changelog\n- [ ] tag v1.2.0\n- [ ] announce in #general\n\n"),
		demo.Type("```sh\ngit tag v1.2.0 && git push --tags\n```"),
		demo.Wait(800 * time.Millisecond),
		demo.Capture(),

		// Rendered preview
		demo.Annotate("ctrl+r renders the note as markdown"),
		demo.Key("ctrl+r"),
		demo.Wait(1500 * time.Millisecond),
		demo.Capture(),
		demo.Key("esc"),
		demo.Wait(300 * time.Millisecond),

		// A couple more tabs
		demo.Key("ctrl+t"),
		demo.Type("meeting notes\nasked about the beta timeline"),
		demo.Wait(500 * time.Millisecond),
		demo.Key("ctrl+t"),
		demo.Type("scratch\ntemporary bits live here"),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		// Search across tabs
		demo.Annotate("ctrl+p searches titles and content"),
		demo.Key("ctrl+p"),
		demo.Wait(300 * time.Millisecond),
		demo.Type("beta"),
		demo.Wait(800 * time.Millisecond),
		demo.Capture(),
		demo.KeyWithDesc("enter", "Jump to the matching tab"),
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// Help modal
		demo.Annotate("ctrl+h lists every shortcut"),
		demo.Key("ctrl+h"),
		demo.Wait(1500 * time.Millisecond),
		demo.Capture(),
		demo.Key("esc"),
		demo.Wait(300 * time.Millisecond),

		// Close a tab, keeping the note safe behind a confirmation
		demo.Annotate("Closing a tab with text asks first"),
		demo.Key("ctrl+w"),
		demo.Wait(800 * time.Millisecond),
		demo.Capture(),
		demo.Key("down"),
		demo.Key("enter"),
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// Final pause
		demo.Wait(2 * time.Second),
	},
}
