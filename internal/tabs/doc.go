// Package tabs implements the tab-ring state machine at the heart of jot.
//
// # Overview
//
// A Ring holds the open tabs in three parts: the tabs left of the current
// one (closest to it last), the current tab, and the tabs right of it
// (closest first). Concatenating left, current, right yields display
// order. The ring is never without a current tab: closing the last one
// resets it to a single fresh empty tab.
//
// # Transitions
//
// Apply reduces one Action to a new Ring value. Snapshots are immutable:
// a transition freshly allocates whatever it changes and never mutates a
// slice it shares with its input, so callers may keep superseded
// snapshots indefinitely.
//
//   - Edit replaces the current document and re-derives the tab title.
//   - NewTab opens a fresh empty tab immediately right of the current one.
//   - Navigate moves the current pointer one step at a time, clamping at
//     the ends rather than wrapping.
//   - Close removes the current tab (direction 0) or a neighbor at a
//     signed offset; out-of-range offsets do nothing.
//
// # Persistence
//
// Marshal and Unmarshal convert a Ring to and from its persisted JSON
// shape, delegating each document to the editor package's own codec.
// ParseAction and MarshalAction do the same for single actions, which is
// how the replay command scripts the machine from a file.
package tabs
