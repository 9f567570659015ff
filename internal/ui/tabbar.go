package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// UntitledTabLabel is shown for tabs whose document has no title yet
const UntitledTabLabel = "Untitled"

// TabBar represents the tab strip below the header.
// It shows every open tab in ring order with the current tab highlighted.
type TabBar struct {
	width       int
	titles      []string
	current     int
	showNumbers bool
}

// NewTabBar creates a new tab bar
func NewTabBar() *TabBar {
	return &TabBar{}
}

// SetWidth sets the tab bar width
func (t *TabBar) SetWidth(width int) {
	t.width = width
}

// SetTabs sets the tab titles in ring order and the index of the current tab
func (t *TabBar) SetTabs(titles []string, current int) {
	t.titles = titles
	t.current = current
}

// SetShowNumbers toggles the numeric prefix on each tab label
func (t *TabBar) SetShowNumbers(show bool) {
	t.showNumbers = show
}

// label builds the display label for the tab at index i (without styling)
func (t *TabBar) label(i int) string {
	title := t.titles[i]
	if title == "" {
		title = UntitledTabLabel
	}
	title = runewidth.Truncate(title, TabMaxTitleWidth, "…")
	if t.showNumbers {
		return fmt.Sprintf("%d:%s", i+1, title)
	}
	return title
}

// renderTab renders the tab at index i with the appropriate style
func (t *TabBar) renderTab(i int) string {
	if i == t.current {
		return TabActiveStyle.Render(t.label(i))
	}
	return TabStyle.Render(t.label(i))
}

// windowWidth measures the rendered width of the window [lo, hi] including
// separators and any overflow markers the window would need
func (t *TabBar) windowWidth(lo, hi int) int {
	w := 0
	for i := lo; i <= hi; i++ {
		w += lipgloss.Width(t.renderTab(i))
		if i < hi {
			w++ // separator
		}
	}
	if lo > 0 {
		w += lipgloss.Width(t.overflowMarker(lo, true)) + 1
	}
	if hi < len(t.titles)-1 {
		w += lipgloss.Width(t.overflowMarker(len(t.titles)-1-hi, false)) + 1
	}
	return w
}

// overflowMarker renders the hidden-tab count marker for one edge of the bar
func (t *TabBar) overflowMarker(hidden int, left bool) string {
	if left {
		return TabOverflowStyle.Render(fmt.Sprintf("« %d", hidden))
	}
	return TabOverflowStyle.Render(fmt.Sprintf("%d »", hidden))
}

// visibleRange computes the widest window of tabs around the current tab
// that fits in the bar width. The current tab is always included.
func (t *TabBar) visibleRange() (lo, hi int) {
	lo, hi = t.current, t.current

	// Grow outward, alternating sides, until neither direction fits
	for {
		grown := false
		if hi < len(t.titles)-1 && t.windowWidth(lo, hi+1) <= t.width {
			hi++
			grown = true
		}
		if lo > 0 && t.windowWidth(lo-1, hi) <= t.width {
			lo--
			grown = true
		}
		if !grown {
			return
		}
	}
}

// View renders the tab bar
func (t *TabBar) View() string {
	if len(t.titles) == 0 {
		return TabBarStyle.Width(t.width).Render("")
	}

	lo, hi := t.visibleRange()

	sep := lipgloss.NewStyle().Foreground(ColorBorder).Render("│")

	var parts []string
	if lo > 0 {
		parts = append(parts, t.overflowMarker(lo, true))
	}
	var tabs []string
	for i := lo; i <= hi; i++ {
		tabs = append(tabs, t.renderTab(i))
	}
	parts = append(parts, strings.Join(tabs, sep))
	if hi < len(t.titles)-1 {
		parts = append(parts, t.overflowMarker(len(t.titles)-1-hi, false))
	}

	return TabBarStyle.Width(t.width).Render(strings.Join(parts, " "))
}
