package tabs

import (
	"github.com/jotkit/jot/internal/editor"
	"github.com/jotkit/jot/internal/errors"
)

// Apply reduces an action to a new ring snapshot. Every recognized
// action is total: out-of-range navigation and closes are no-ops, not
// errors. A nil or unrecognized action is a contract violation reported
// as an invalid-action error, with the input ring returned unchanged.
func Apply(r Ring, a Action) (Ring, error) {
	switch act := a.(type) {
	case Edit:
		doc, err := editor.Apply(r.Current.Doc, act.Action)
		if err != nil {
			return r, err
		}
		next := r
		next.Current = Tab{Title: DeriveTitle(doc.Text), Doc: doc}
		return next, nil
	case NewTab:
		next := r
		next.Left = appendTab(r.Left, r.Current)
		next.Current = Tab{Doc: editor.New()}
		return next, nil
	case Navigate:
		return navigate(r, act.Direction), nil
	case Close:
		return closeTab(r, act.Direction), nil
	default:
		return r, errors.UnknownAction("tabs.Apply", act)
	}
}

// navigate applies |direction| single steps. Each step checks for room
// on its own, so a move past the end clamps there instead of wrapping
// or failing.
func navigate(r Ring, direction int) Ring {
	for ; direction > 0; direction-- {
		r = stepRight(r)
	}
	for ; direction < 0; direction++ {
		r = stepLeft(r)
	}
	return r
}

func stepRight(r Ring) Ring {
	if len(r.Right) == 0 {
		return r
	}
	next := r
	next.Left = appendTab(r.Left, r.Current)
	next.Current = r.Right[0]
	next.Right = copyTabs(r.Right[1:])
	return next
}

func stepLeft(r Ring) Ring {
	if len(r.Left) == 0 {
		return r
	}
	next := r
	next.Left = copyTabs(r.Left[:len(r.Left)-1])
	next.Current = r.Left[len(r.Left)-1]
	next.Right = prependTab(r.Current, r.Right)
	return next
}

func closeTab(r Ring, direction int) Ring {
	switch {
	case direction == 0:
		return closeCurrent(r)
	case direction > 0:
		idx := direction - 1
		if idx >= len(r.Right) {
			return r
		}
		next := r
		next.Right = removeTab(r.Right, idx)
		return next
	default:
		// Offset -direction-1 counted outward from the end of Left
		// nearest current.
		idx := len(r.Left) + direction
		if idx < 0 {
			return r
		}
		next := r
		next.Left = removeTab(r.Left, idx)
		return next
	}
}

// closeCurrent promotes the nearest right tab, else the nearest left
// tab, and resets to a fresh ring when no other tab remains.
func closeCurrent(r Ring) Ring {
	switch {
	case len(r.Right) > 0:
		next := r
		next.Current = r.Right[0]
		next.Right = copyTabs(r.Right[1:])
		return next
	case len(r.Left) > 0:
		next := r
		next.Left = copyTabs(r.Left[:len(r.Left)-1])
		next.Current = r.Left[len(r.Left)-1]
		return next
	default:
		return New()
	}
}
