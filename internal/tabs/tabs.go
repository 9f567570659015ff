package tabs

import (
	"github.com/jotkit/jot/internal/editor"
)

// Tab is one open tab: a display title and the document it holds. Title
// is derived from the document text on every edit, never set directly;
// a freshly opened tab carries an empty title until its first edit.
type Tab struct {
	Title string
	Doc   editor.State
}

// Ring is an immutable snapshot of the open tabs. Left is ordered with
// the tab closest to current last; Right with the closest first.
type Ring struct {
	Left    []Tab
	Current Tab
	Right   []Tab
}

// New returns the initial ring: no left or right tabs and a fresh empty
// current tab.
func New() Ring {
	return Ring{Current: Tab{Doc: editor.New()}}
}

// Len returns the total number of open tabs.
func (r Ring) Len() int {
	return len(r.Left) + 1 + len(r.Right)
}

// Index returns the position of the current tab in display order.
func (r Ring) Index() int {
	return len(r.Left)
}

// Tabs returns every tab in display order: left tabs, the current tab,
// then right tabs. The slice is freshly allocated.
func (r Ring) Tabs() []Tab {
	out := make([]Tab, 0, r.Len())
	out = append(out, r.Left...)
	out = append(out, r.Current)
	out = append(out, r.Right...)
	return out
}

// Action is a ring transition request. The set of variants is closed;
// anything outside it is rejected by Apply.
type Action interface {
	isAction()
}

// Edit applies a document action to the current tab.
type Edit struct {
	Action editor.Action
}

// NewTab opens a fresh empty tab and makes it current. The old current
// tab becomes the nearest left tab; right tabs are untouched.
type NewTab struct{}

// Navigate moves the current pointer Direction single steps: right for
// positive values, left for negative. Zero does nothing.
type Navigate struct {
	Direction int
}

// Close removes a tab. Direction 0 closes the current tab; a positive
// value addresses the right tabs outward from current (1 is nearest),
// a negative one the left tabs the same way.
type Close struct {
	Direction int
}

func (Edit) isAction()     {}
func (NewTab) isAction()   {}
func (Navigate) isAction() {}
func (Close) isAction()    {}

// The slice helpers below keep snapshots independent: every result is a
// fresh allocation, and empty results stay nil so rings compare
// structurally equal regardless of how they were reached.

func copyTabs(ts []Tab) []Tab {
	if len(ts) == 0 {
		return nil
	}
	out := make([]Tab, len(ts))
	copy(out, ts)
	return out
}

func appendTab(ts []Tab, t Tab) []Tab {
	out := make([]Tab, len(ts)+1)
	copy(out, ts)
	out[len(ts)] = t
	return out
}

func prependTab(t Tab, ts []Tab) []Tab {
	out := make([]Tab, len(ts)+1)
	out[0] = t
	copy(out[1:], ts)
	return out
}

func removeTab(ts []Tab, i int) []Tab {
	if len(ts) == 1 {
		return nil
	}
	out := make([]Tab, 0, len(ts)-1)
	out = append(out, ts[:i]...)
	out = append(out, ts[i+1:]...)
	return out
}
